package postgres

import (
	"context"
	"database/sql"
	"time"

	"procuraduria/internal/platform/errs"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const DefaultQueryTimeout = 5 * time.Second

type Options struct {
	MaxOpenConns int
	PingTimeout  time.Duration
}

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
// Cualquier falla se devuelve como errs.KindConnection.
func Open(dsn string, opts Options) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errs.Connection("postgres.open", err)
	}

	maxOpen := opts.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errs.Connection("postgres.ping", err)
	}

	return db, nil
}

// withTimeout aplica el timeout por consulta; la base no define ninguno.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = DefaultQueryTimeout
	}
	return context.WithTimeout(ctx, d)
}
