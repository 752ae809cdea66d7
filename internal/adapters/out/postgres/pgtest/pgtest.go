// Package pgtest starts a throwaway PostgreSQL container with the warehouse
// schema applied, for the adapters' integration suites.
package pgtest

import (
	"context"
	"sync"
	"time"

	"warehouse/internal/adapters/out/postgres/migrations"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table the migrations create, children first.
var Tables = []string{
	"metrics_snapshots",
	"heatmap_snapshots",
	"bin_movements",
	"pick_routes",
	"order_pick_lines",
	"stock_quants",
	"locations",
	"zones",
	"layouts",
}

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine, applies the migrations and opens GORM on it.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	d := &Database{Container: container}
	if d.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	if err = migrations.Up(ctx, d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	d.DB, err = gorm.Open(postgresdriver.Open(d.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	return d, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate() error {
	stmt := "TRUNCATE TABLE "
	for i, t := range Tables {
		if i > 0 {
			stmt += ", "
		}
		stmt += t
	}
	return d.DB.Exec(stmt + " CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Tracker records TrackAggregate calls.
type Tracker struct {
	mu  sync.Mutex
	IDs []kernel.UUID
}

func (t *Tracker) TrackAggregate(id kernel.UUID, _ any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.IDs = append(t.IDs, id)
}
