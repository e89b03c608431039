package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/rosabel/glambook/internal/model"
)

// AvailabilityRepo persists one availability ledger per artist as a
// single JSON document (artist_availability.entries) with an
// optimistic version counter.  Writes always replace the whole map,
// mirroring the source system's single-document update; the version
// column turns its silent lost-update race into an explicit
// ErrVersionConflict for the losing writer.
type AvailabilityRepo struct{ DB *sql.DB }

func NewAvailabilityRepo(db *sql.DB) *AvailabilityRepo { return &AvailabilityRepo{DB: db} }

// GetLedger loads an artist's ledger and its current version.  An
// absent row is an empty ledger at version 0, which is a valid state:
// every date is implicitly available.
func (r *AvailabilityRepo) GetLedger(ctx context.Context, artistID uint64) (model.Ledger, uint64, error) {
	var (
		raw     []byte
		version uint64
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT entries, version FROM artist_availability WHERE artist_id=? LIMIT 1",
		artistID).Scan(&raw, &version)
	if err == sql.ErrNoRows {
		return model.Ledger{}, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	ledger := model.Ledger{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ledger); err != nil {
			return nil, 0, err
		}
	}
	return ledger, version, nil
}

// ReplaceLedger writes the full ledger map for an artist, guarded by
// the version the caller read.  expectVersion 0 means the caller saw
// no row and an INSERT is attempted; a duplicate-key failure there
// means another session created the row first.  For updates, zero
// affected rows means the stored version moved on.  Either case
// returns ErrVersionConflict so the caller can re-fetch and merge.
func (r *AvailabilityRepo) ReplaceLedger(ctx context.Context, artistID uint64, ledger model.Ledger, expectVersion uint64) error {
	enc, err := json.Marshal(ledger)
	if err != nil {
		return err
	}
	if expectVersion == 0 {
		_, err := r.DB.ExecContext(ctx,
			"INSERT INTO artist_availability (artist_id, entries, version) VALUES (?,?,1)",
			artistID, enc)
		if err != nil {
			if strings.Contains(strings.ToLower(err.Error()), "1062") {
				return ErrVersionConflict
			}
			return err
		}
		return nil
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE artist_availability SET entries=?, version=version+1 WHERE artist_id=? AND version=?",
		enc, artistID, expectVersion)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}
