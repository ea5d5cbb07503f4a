package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, name, description, status, budget, start_date, end_date, platform, category, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Status,
		&c.Budget,
		&c.StartDate.Time,
		&c.EndDate.Time,
		&c.Platform,
		&c.Category,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// List returns campaigns matching the filter. The WHERE and ORDER BY
// clauses are built dynamically; only whitelisted sort columns are ever
// interpolated into the query text.
func (r *CampaignRepository) List(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	query := fmt.Sprintf(`SELECT %s FROM campaigns`, campaignColumns)
	args := []interface{}{}

	where := ""
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = fmt.Sprintf(" WHERE status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		if where == "" {
			where = fmt.Sprintf(" WHERE category = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND category = $%d", len(args))
		}
	}
	query += where

	if filter.SortBy == port.SortByBudget || filter.SortBy == port.SortByStartDate {
		direction := "ASC"
		if filter.SortDesc {
			direction = "DESC"
		}
		query += fmt.Sprintf(" ORDER BY %s %s", filter.SortBy, direction)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`SELECT %s FROM campaigns WHERE id = $1`, campaignColumns), id)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, port.ErrCampaignNotFound
	}
	return c, err
}

// Create inserts a campaign; id and timestamps come back from the
// RETURNING clause.
func (r *CampaignRepository) Create(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`INSERT INTO campaigns
    (name, description, status, budget, start_date, end_date, platform, category, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
RETURNING %s`, campaignColumns),
		in.Name, in.Description, in.Status, in.Budget, in.StartDate.Time, in.EndDate.Time, in.Platform, in.Category)
	if err != nil {
		return domain.Campaign{}, err
	}
	return pgx.CollectOneRow(rows, scanCampaign)
}

// Update overwrites every writable field and bumps updated_at.
func (r *CampaignRepository) Update(ctx context.Context, id int64, in domain.CampaignInput) (domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`UPDATE campaigns SET
    name = $2, description = $3, status = $4, budget = $5,
    start_date = $6, end_date = $7, platform = $8, category = $9,
    updated_at = now()
WHERE id = $1
RETURNING %s`, campaignColumns),
		id, in.Name, in.Description, in.Status, in.Budget, in.StartDate.Time, in.EndDate.Time, in.Platform, in.Category)
	if err != nil {
		return domain.Campaign{}, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, port.ErrCampaignNotFound
	}
	return c, err
}

// Delete removes a campaign permanently.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// SummaryTotals returns campaign count, budget sum and active count in a
// single query.
func (r *CampaignRepository) SummaryTotals(ctx context.Context) (port.SummaryTotals, error) {
	var t port.SummaryTotals
	err := r.pool.QueryRow(ctx, `SELECT
    count(*),
    COALESCE(sum(budget), 0),
    count(*) FILTER (WHERE status = 'active')
FROM campaigns`).Scan(&t.TotalCampaigns, &t.TotalBudget, &t.ActiveCampaigns)
	return t, err
}

// StatusDistribution returns the campaign count per status.
func (r *CampaignRepository) StatusDistribution(ctx context.Context) ([]domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, count(*) FROM campaigns GROUP BY status`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StatusCount, error) {
		var sc domain.StatusCount
		err := row.Scan(&sc.Status, &sc.Count)
		return sc, err
	})
}

// BudgetByCategory returns the summed budget per category.
func (r *CampaignRepository) BudgetByCategory(ctx context.Context) ([]domain.CategoryBudget, error) {
	rows, err := r.pool.Query(ctx, `SELECT category, COALESCE(sum(budget), 0) FROM campaigns GROUP BY category`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryBudget, error) {
		var cb domain.CategoryBudget
		err := row.Scan(&cb.Category, &cb.TotalBudget)
		return cb, err
	})
}

// CampaignsOverTime buckets campaigns by creation date, oldest first.
func (r *CampaignRepository) CampaignsOverTime(ctx context.Context) ([]domain.TimeSeriesPoint, error) {
	rows, err := r.pool.Query(ctx, `SELECT to_char(created_at::date, 'YYYY-MM-DD'), count(*)
FROM campaigns GROUP BY created_at::date ORDER BY created_at::date`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TimeSeriesPoint, error) {
		var p domain.TimeSeriesPoint
		err := row.Scan(&p.Date, &p.Count)
		return p, err
	})
}
