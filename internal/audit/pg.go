package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// PGRecorder persists records to Postgres, modeled on the teacher's ASCOM
// session-tracking schema (internal/engines/ascom's session table) but
// scoped to one row per dispatched transaction rather than one row per
// client session.
type PGRecorder struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPGRecorder(db *pgxpool.Pool, logger *zap.Logger) *PGRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PGRecorder{db: db, logger: logger.With(zap.String("component", "audit_pg_recorder"))}
}

// Schema is the DDL PGRecorder expects; callers are responsible for applying
// it via their migration tooling before using PGRecorder.
const Schema = `
CREATE TABLE IF NOT EXISTS transaction_audit (
	id                    UUID PRIMARY KEY,
	client_id             INTEGER NOT NULL,
	client_transaction_id BIGINT NOT NULL,
	server_transaction_id BIGINT NOT NULL,
	device_type           TEXT NOT NULL,
	device_number         INTEGER NOT NULL,
	action                TEXT NOT NULL,
	verb                  TEXT NOT NULL,
	started_at            TIMESTAMPTZ NOT NULL,
	finished_at           TIMESTAMPTZ NOT NULL,
	error_number          INTEGER NOT NULL,
	error_message         TEXT NOT NULL
)`

// Record inserts rec asynchronously; a failed insert is logged, never
// returned, since auditing must not affect the ASCOM response path.
func (p *PGRecorder) Record(ctx context.Context, rec Record) {
	go func() {
		query := `
			INSERT INTO transaction_audit (
				id, client_id, client_transaction_id, server_transaction_id,
				device_type, device_number, action, verb,
				started_at, finished_at, error_number, error_message
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		`
		_, err := p.db.Exec(context.Background(), query,
			rec.TransactionID, rec.ClientID, rec.ClientTransactionID, rec.ServerTransactionID,
			rec.DeviceType, rec.DeviceNumber, rec.Action, rec.Verb,
			rec.StartedAt, rec.FinishedAt, rec.ErrorNumber, rec.ErrorMessage)
		if err != nil {
			p.logger.Error("failed to persist audit record",
				zap.Error(err),
				zap.String("transaction_id", rec.TransactionID))
		}
	}()
}
