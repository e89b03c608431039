package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rosabel/glambook/internal/model"
	"github.com/rosabel/glambook/internal/repository"
)

// fakeLedgerStore mimics the versioned whole-map persistence of the
// availability repository.  afterGet, when set, runs between the read
// and the write of a read-modify-write cycle so tests can interleave
// a competing writer.
type fakeLedgerStore struct {
	ledger   model.Ledger
	version  uint64
	afterGet func(f *fakeLedgerStore)
}

func (f *fakeLedgerStore) GetLedger(ctx context.Context, artistID uint64) (model.Ledger, uint64, error) {
	cp := model.Ledger{}
	for k, v := range f.ledger {
		cp[k] = v
	}
	version := f.version
	if hook := f.afterGet; hook != nil {
		f.afterGet = nil
		hook(f)
	}
	return cp, version, nil
}

func (f *fakeLedgerStore) ReplaceLedger(ctx context.Context, artistID uint64, ledger model.Ledger, expectVersion uint64) error {
	if expectVersion != f.version {
		return repository.ErrVersionConflict
	}
	f.ledger = ledger
	f.version++
	return nil
}

func TestLedgerSetAndGetStatus(t *testing.T) {
	store := &fakeLedgerStore{ledger: model.Ledger{}}
	ledger := NewAvailabilityLedger(store, nil, 0)
	ctx := context.Background()

	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-06-10", model.StatusUnavailable))

	got, err := ledger.GetStatus(ctx, 1, "2024-06-10")
	require.NoError(t, err)
	require.Equal(t, model.StatusUnavailable, got)

	// Neighboring dates stay implicitly available.
	got, err = ledger.GetStatus(ctx, 1, "2024-06-11")
	require.NoError(t, err)
	require.Equal(t, model.StatusAvailable, got)
}

func TestLedgerRejectsMalformedDate(t *testing.T) {
	store := &fakeLedgerStore{ledger: model.Ledger{}}
	ledger := NewAvailabilityLedger(store, nil, 0)
	ctx := context.Background()

	_, err := ledger.GetStatus(ctx, 1, "June 10")
	require.ErrorIs(t, err, model.ErrInvalidDate)
	require.ErrorIs(t, ledger.SetStatus(ctx, 1, "2024-6-1", model.StatusUnavailable), model.ErrInvalidDate)
	require.ErrorIs(t, ledger.DeleteStatus(ctx, 1, "nope"), model.ErrInvalidDate)
}

func TestLedgerDeleteRevertsToAvailable(t *testing.T) {
	store := &fakeLedgerStore{ledger: model.Ledger{}}
	ledger := NewAvailabilityLedger(store, nil, 0)
	ctx := context.Background()

	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-06-10", model.StatusUnavailable))
	require.NoError(t, ledger.DeleteStatus(ctx, 1, "2024-06-10"))

	got, err := ledger.GetStatus(ctx, 1, "2024-06-10")
	require.NoError(t, err)
	require.Equal(t, model.StatusAvailable, got)
}

func TestLedgerListEntriesSorted(t *testing.T) {
	store := &fakeLedgerStore{ledger: model.Ledger{}}
	ledger := NewAvailabilityLedger(store, nil, 0)
	ctx := context.Background()

	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-07-01", model.StatusUnavailable))
	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-06-02", model.StatusUnavailable))
	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-06-15", model.StatusAvailable))

	entries, err := ledger.ListEntries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "2024-06-02", entries[0].Date)
	require.Equal(t, "2024-06-15", entries[1].Date)
	require.Equal(t, "2024-07-01", entries[2].Date)
}

// Two sessions editing the same calendar from the same snapshot: the
// interleaved writer wins, the stale writer gets a conflict instead
// of silently erasing the other session's dates.
func TestLedgerConcurrentWriteConflict(t *testing.T) {
	store := &fakeLedgerStore{ledger: model.Ledger{}}
	ledger := NewAvailabilityLedger(store, nil, 0)
	ctx := context.Background()

	store.afterGet = func(f *fakeLedgerStore) {
		f.ledger = model.Ledger{"2024-06-20": model.StatusUnavailable}
		f.version++
	}

	err := ledger.SetStatus(ctx, 1, "2024-06-21", model.StatusUnavailable)
	require.ErrorIs(t, err, repository.ErrVersionConflict)

	// The competing write survives untouched; the stale write left
	// no trace.
	require.Equal(t, model.StatusUnavailable, store.ledger.Status("2024-06-20"))
	require.Equal(t, model.StatusAvailable, store.ledger.Status("2024-06-21"))

	// A retry from a fresh snapshot merges cleanly.
	require.NoError(t, ledger.SetStatus(ctx, 1, "2024-06-21", model.StatusUnavailable))
	require.Equal(t, model.StatusUnavailable, store.ledger.Status("2024-06-20"))
	require.Equal(t, model.StatusUnavailable, store.ledger.Status("2024-06-21"))
}
