package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-tracker/internal/core/domain"
)

// Seed inserts demo campaigns for local development. It is a no-op when
// the table already has rows so restarting with PSQL_SEED=true does not
// pile up duplicates.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var existing int64
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM campaigns`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := domain.Statuses()
	platforms := domain.Platforms()
	categories := domain.Categories()

	for i := 1; i <= 20; i++ {
		name := fmt.Sprintf("Demo Campaign %d", i)
		description := fmt.Sprintf("Seeded campaign %d for local development", i)
		status := statuses[r.Intn(len(statuses))]
		platform := platforms[r.Intn(len(platforms))]
		category := categories[r.Intn(len(categories))]
		budget := float64(r.Intn(100)+1) * 100
		start := time.Now().AddDate(0, 0, -r.Intn(60))
		end := start.AddDate(0, r.Intn(3)+1, 0)
		createdAt := time.Now().AddDate(0, 0, -r.Intn(30))

		_, err := pool.Exec(ctx, `INSERT INTO campaigns
    (name, description, status, budget, start_date, end_date, platform, category, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)`,
			name, description, status, budget, start, end, platform, category, createdAt)
		if err != nil {
			return err
		}
	}
	return nil
}
