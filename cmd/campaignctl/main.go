// campaignctl is a terminal front end for the campaign tracker API. It
// drives the same transport client and view-models a graphical frontend
// would, so the filter, form and deletion semantics are identical.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/pkg/client"
	"campaign-tracker/pkg/viewmodel"
)

func apiClient() *client.Client {
	base := os.Getenv("CAMPAIGN_API_URL")
	if base == "" {
		base = "http://localhost:8000"
	}
	return client.New(base)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid campaign id %q", arg)
	}
	return id, nil
}

func printCampaign(c domain.Campaign) {
	fmt.Printf("#%d %s [%s]\n", c.ID, c.Name, c.Status)
	fmt.Printf("  budget:   %.2f\n", c.Budget)
	fmt.Printf("  schedule: %s .. %s\n", c.StartDate, c.EndDate)
	fmt.Printf("  platform: %s  category: %s\n", c.Platform, c.Category)
	if c.Description != "" {
		fmt.Printf("  %s\n", c.Description)
	}
}

func listCommand() *cobra.Command {
	var status, category, sortBy string
	var asc bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns with optional filters and sorting",
		RunE: func(cmd *cobra.Command, args []string) error {
			collection := viewmodel.NewCollection(apiClient())
			if status != "" {
				collection.SetStatusFilter(status)
			}
			if category != "" {
				collection.SetCategoryFilter(category)
			}
			if sortBy != "" {
				collection.ToggleSort(sortBy)
				if asc {
					collection.ToggleSort(sortBy)
				}
			}
			if err := collection.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s", collection.Err())
			}
			campaigns := collection.Campaigns()
			if len(campaigns) == 0 {
				fmt.Println("no campaigns")
				return nil
			}
			for _, c := range campaigns {
				printCampaign(c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft|active|paused|completed)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "sort column (budget|start_date)")
	cmd.Flags().BoolVar(&asc, "asc", false, "sort ascending instead of descending")
	return cmd
}

func getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			campaign, err := apiClient().GetCampaign(cmd.Context(), id)
			if err != nil {
				return err
			}
			printCampaign(campaign)
			return nil
		},
	}
}

// formFlags registers the writable campaign fields as flags and returns a
// function applying the ones the user actually set onto the form.
func formFlags(cmd *cobra.Command) func(*viewmodel.Form) error {
	flags := cmd.Flags()
	flags.String("name", "", "campaign name")
	flags.String("description", "", "campaign description")
	flags.String("status", "", "status (draft|active|paused|completed)")
	flags.Float64("budget", 0, "budget, non-negative")
	flags.String("start", "", "start date (YYYY-MM-DD)")
	flags.String("end", "", "end date (YYYY-MM-DD)")
	flags.String("platform", "", "platform (facebook|instagram|twitter|google|linkedin|email|other)")
	flags.String("category", "", "category (brand_awareness|lead_generation|sales|engagement|retention|other)")

	return func(form *viewmodel.Form) error {
		if flags.Changed("name") {
			v, _ := flags.GetString("name")
			form.SetName(v)
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			form.SetDescription(v)
		}
		if flags.Changed("status") {
			v, _ := flags.GetString("status")
			form.SetStatus(domain.Status(v))
		}
		if flags.Changed("budget") {
			v, _ := flags.GetFloat64("budget")
			form.SetBudget(v)
		}
		if flags.Changed("start") {
			v, _ := flags.GetString("start")
			date, err := domain.ParseDate(v)
			if err != nil {
				return err
			}
			form.SetStartDate(date)
		}
		if flags.Changed("end") {
			v, _ := flags.GetString("end")
			date, err := domain.ParseDate(v)
			if err != nil {
				return err
			}
			form.SetEndDate(date)
		}
		if flags.Changed("platform") {
			v, _ := flags.GetString("platform")
			form.SetPlatform(domain.Platform(v))
		}
		if flags.Changed("category") {
			v, _ := flags.GetString("category")
			form.SetCategory(domain.Category(v))
		}
		return nil
	}
}

func submitForm(cmd *cobra.Command, form *viewmodel.Form) error {
	if err := form.Submit(cmd.Context()); err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			for field, msg := range fieldErrs {
				fmt.Fprintf(os.Stderr, "%s: %s\n", field, msg)
			}
			return fmt.Errorf("validation failed")
		}
		return fmt.Errorf("%s", form.Err())
	}
	return nil
}

func createCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign",
	}
	apply := formFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		form := viewmodel.NewCreateForm(apiClient(), func(c domain.Campaign) {
			fmt.Printf("created campaign #%d\n", c.ID)
		})
		if err := apply(form); err != nil {
			return err
		}
		return submitForm(cmd, form)
	}
	return cmd
}

func updateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a campaign (unset flags keep their current values)",
		Args:  cobra.ExactArgs(1),
	}
	apply := formFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		api := apiClient()
		campaign, err := api.GetCampaign(cmd.Context(), id)
		if err != nil {
			return err
		}
		form := viewmodel.NewEditForm(api, campaign, func(c domain.Campaign) {
			fmt.Printf("updated campaign #%d\n", c.ID)
		})
		if err := apply(form); err != nil {
			return err
		}
		return submitForm(cmd, form)
	}
	return cmd
}

func deleteCommand() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a campaign after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			flow := viewmodel.NewDeleteFlow(apiClient(), id, func() {
				fmt.Printf("deleted campaign #%d\n", id)
			})
			flow.Request()
			if !yes {
				fmt.Printf("delete campaign #%d? [y/N] ", id)
				var answer string
				_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					flow.Cancel()
					fmt.Println("aborted")
					return nil
				}
			}
			if err := flow.Confirm(cmd.Context()); err != nil {
				return fmt.Errorf("%s", flow.Err())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}

func dashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash := viewmodel.NewDashboard(apiClient())
			if err := dash.Refresh(cmd.Context()); err != nil {
				return fmt.Errorf("%s", dash.Err())
			}
			s := dash.Summary()
			fmt.Printf("campaigns: %d (active %d)\n", s.TotalCampaigns, s.ActiveCampaigns)
			fmt.Printf("budget:    %.2f total, %.2f average\n", s.TotalBudget, s.AverageBudget)
			fmt.Println("by status:")
			for _, sc := range dash.StatusDistribution() {
				fmt.Printf("  %-10s %d\n", sc.Status, sc.Count)
			}
			fmt.Println("budget by category:")
			for _, cb := range dash.BudgetByCategory() {
				fmt.Printf("  %-16s %.2f\n", cb.Category, cb.TotalBudget)
			}
			fmt.Println("created over time:")
			for _, p := range dash.Timeline() {
				fmt.Printf("  %s  %d\n", p.Date, p.Count)
			}
			return nil
		},
	}
}

func newsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "news [keyword]",
		Short: "Show news articles, optionally matching a keyword",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}
			articles, err := apiClient().News(cmd.Context(), keyword)
			if err != nil {
				return err
			}
			for _, a := range articles {
				fmt.Printf("%s (%s)\n  %s\n", a.Title, a.Source, a.URL)
			}
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "campaignctl",
		Short:         "Manage marketing campaigns from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.AddCommand(
		listCommand(),
		getCommand(),
		createCommand(),
		updateCommand(),
		deleteCommand(),
		dashboardCommand(),
		newsCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
