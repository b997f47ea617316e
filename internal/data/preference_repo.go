package data

import (
	"context"
	"database/sql"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bluelatex/blue-web/internal/data/pgxutil"
	apperrors "github.com/bluelatex/blue-web/internal/errors"
	"github.com/bluelatex/blue-web/internal/ports"
)

var _ ports.PreferenceStore = (*PreferenceRepo)(nil)

// PreferenceRepo stores browser profile preferences in Postgres.
type PreferenceRepo struct {
	DB    *sql.DB
	clock Clock
}

// NewPreferenceRepo creates a PreferenceRepo stamping rows with the wall clock.
func NewPreferenceRepo(db *sql.DB) *PreferenceRepo {
	return &PreferenceRepo{DB: db, clock: SystemClock{}}
}

// NewPreferenceRepoWithClock creates a PreferenceRepo with a custom clock (useful for tests).
func NewPreferenceRepoWithClock(db *sql.DB, clock Clock) *PreferenceRepo {
	return &PreferenceRepo{DB: db, clock: clock}
}

type preferenceRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

func checkProfileID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ValidationField("profile_id", ErrProfileIDInvalid.Error())
	}
	return nil
}

// GetAll returns every stored key for the profile.
func (r *PreferenceRepo) GetAll(ctx context.Context, profileID string) (map[string]string, error) {
	if err := checkProfileID(profileID); err != nil {
		return nil, err
	}

	var rows []preferenceRow
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		res, err := conn.Query(ctx, `SELECT key, value FROM preferences WHERE profile_id = $1`, profileID)
		if err != nil {
			return err
		}
		rows, err = pgx.CollectRows(res, pgx.RowToStructByName[preferenceRow])
		return err
	})
	if err != nil {
		return nil, apperrors.MapDBError(err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Set upserts the given keys in one transaction.
func (r *PreferenceRepo) Set(ctx context.Context, profileID string, values map[string]string) error {
	if err := checkProfileID(profileID); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	now := r.clock.Now().UTC()
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{
		Fn: func(tx pgx.Tx) error {
			batch := &pgx.Batch{}
			for _, key := range slices.Sorted(maps.Keys(values)) {
				batch.Queue(`
					INSERT INTO preferences (profile_id, key, value, updated_at)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (profile_id, key)
					DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
				`, profileID, key, values[key], now)
			}
			return tx.SendBatch(ctx, batch).Close()
		},
	})
	if err != nil {
		return apperrors.MapDBError(err)
	}
	return nil
}
