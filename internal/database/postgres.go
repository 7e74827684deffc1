// Package database executes the lab seed script against Postgres.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Executor runs SQL against the lab database. The provisioning step depends
// on this interface, not on pgx, so it can be tested without a server.
type Executor interface {
	ExecScript(ctx context.Context, script string) (int, error)
	Exec(ctx context.Context, stmt string, args ...any) error
	Close(ctx context.Context) error
}

// execConn is the slice of *pgx.Conn the executor uses.
type execConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Close(ctx context.Context) error
}

// Postgres executes statements on a single connection, matching the
// one-session-per-invocation model of the seed load.
type Postgres struct {
	conn execConn
	log  zerolog.Logger
}

// Connect opens one connection to the lab database.
func Connect(ctx context.Context, dsn string, log zerolog.Logger) (*Postgres, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &Postgres{conn: conn, log: log}, nil
}

// ExecScript splits script into statements and executes them in order,
// failing fast on the first error. Returns the number of statements that
// executed successfully. There is no transactional rollback across the
// script: statements before the failure stay applied.
func (p *Postgres) ExecScript(ctx context.Context, script string) (int, error) {
	stmts := SplitStatements(script)
	for i, stmt := range stmts {
		if _, err := p.conn.Exec(ctx, stmt); err != nil {
			return i, fmt.Errorf("execute statement %d of %d: %w", i+1, len(stmts), err)
		}
	}
	p.log.Info().Int("statements", len(stmts)).Msg("executed seed script")
	return len(stmts), nil
}

// Exec runs one parameterized statement.
func (p *Postgres) Exec(ctx context.Context, stmt string, args ...any) error {
	_, err := p.conn.Exec(ctx, stmt, args...)
	return err
}

// Close releases the connection.
func (p *Postgres) Close(ctx context.Context) error {
	return p.conn.Close(ctx)
}
