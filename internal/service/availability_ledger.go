// Package service holds the domain logic sitting between handlers and
// repositories: the availability ledger, the booking coordinator, the
// review aggregator and the saved-artist toggle.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rosabel/glambook/internal/model"
)

// LedgerStore is the persistence surface the ledger needs.  Implemented
// by repository.AvailabilityRepo.
type LedgerStore interface {
	GetLedger(ctx context.Context, artistID uint64) (model.Ledger, uint64, error)
	ReplaceLedger(ctx context.Context, artistID uint64, ledger model.Ledger, expectVersion uint64) error
}

// AvailabilityLedger manages one artist's per-date availability map.
// Reads used for booking validation go through a Redis snapshot cache;
// the cache is advisory, so a booking may still be validated against a
// ledger that an artist just changed.  The staleness window is bounded
// by the cache TTL plus invalidation on every write.
type AvailabilityLedger struct {
	store LedgerStore
	rdb   *redis.Client // nil disables the snapshot cache
	ttl   time.Duration
}

// NewAvailabilityLedger builds the ledger service.  rdb may be nil,
// in which case every read goes to the store.
func NewAvailabilityLedger(store LedgerStore, rdb *redis.Client, ttl time.Duration) *AvailabilityLedger {
	if store == nil {
		panic("nil store passed to NewAvailabilityLedger")
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &AvailabilityLedger{store: store, rdb: rdb, ttl: ttl}
}

func ledgerCacheKey(artistID uint64) string {
	return fmt.Sprintf("ledger:%d", artistID)
}

// Snapshot returns the artist's ledger, preferring the cached copy.
// Cache failures fall through to the database silently.
func (s *AvailabilityLedger) Snapshot(ctx context.Context, artistID uint64) (model.Ledger, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, ledgerCacheKey(artistID)).Bytes(); err == nil {
			ledger := model.Ledger{}
			if err := json.Unmarshal(raw, &ledger); err == nil {
				return ledger, nil
			}
		}
	}
	ledger, _, err := s.store.GetLedger(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if s.rdb != nil {
		if enc, err := json.Marshal(ledger); err == nil {
			_ = s.rdb.SetEx(ctx, ledgerCacheKey(artistID), enc, s.ttl).Err()
		}
	}
	return ledger, nil
}

// GetStatus returns the status of one date, StatusAvailable when the
// date has no explicit entry.
func (s *AvailabilityLedger) GetStatus(ctx context.Context, artistID uint64, date string) (model.Status, error) {
	if !model.ValidDate(date) {
		return "", model.ErrInvalidDate
	}
	ledger, err := s.Snapshot(ctx, artistID)
	if err != nil {
		return "", err
	}
	return ledger.Status(date), nil
}

// SetStatus upserts the entry for date using a read-modify-write of
// the whole map.  A concurrent writer who replaced the map since our
// read makes ReplaceLedger fail with repository.ErrVersionConflict;
// the caller should re-fetch and retry rather than silently losing
// the other session's dates.
func (s *AvailabilityLedger) SetStatus(ctx context.Context, artistID uint64, date string, status model.Status) error {
	if !model.ValidDate(date) {
		return model.ErrInvalidDate
	}
	ledger, version, err := s.store.GetLedger(ctx, artistID)
	if err != nil {
		return err
	}
	ledger[date] = status
	if err := s.store.ReplaceLedger(ctx, artistID, ledger, version); err != nil {
		return err
	}
	s.invalidate(ctx, artistID)
	return nil
}

// DeleteStatus removes the entry for date, reverting it to the
// implicit StatusAvailable.  Deleting an absent entry still writes the
// map back, matching the whole-document overwrite semantics.
func (s *AvailabilityLedger) DeleteStatus(ctx context.Context, artistID uint64, date string) error {
	if !model.ValidDate(date) {
		return model.ErrInvalidDate
	}
	ledger, version, err := s.store.GetLedger(ctx, artistID)
	if err != nil {
		return err
	}
	delete(ledger, date)
	if err := s.store.ReplaceLedger(ctx, artistID, ledger, version); err != nil {
		return err
	}
	s.invalidate(ctx, artistID)
	return nil
}

// ListEntries returns the artist's explicit entries sorted by date
// ascending, read from the authoritative store rather than the cache.
func (s *AvailabilityLedger) ListEntries(ctx context.Context, artistID uint64) ([]model.Entry, error) {
	ledger, _, err := s.store.GetLedger(ctx, artistID)
	if err != nil {
		return nil, err
	}
	return ledger.Entries(), nil
}

func (s *AvailabilityLedger) invalidate(ctx context.Context, artistID uint64) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, ledgerCacheKey(artistID)).Err()
	}
}
