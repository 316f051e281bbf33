package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fba-cost/core/engine"
	"fba-cost/core/types"
	"fba-cost/core/units"
	"fba-cost/internal/errors"
)

func sampleQuote(name string, price int64) *engine.Quote {
	e := engine.New(engine.WithClock(func() time.Time {
		return time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	}))
	return e.Quote(engine.ProductInput{
		Name:             name,
		Dimensions:       units.Dimensions{Length: 10, Width: 6, Height: 3},
		Weight:           1.2,
		WeightUnit:       types.Pound,
		Price:            decimal.NewFromInt(price),
		ReferralCategory: "toys_games",
		COGS:             decimal.NewFromInt(6),
		Quantity:         50,
	})
}

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileStore(filepath.Join(dir, "files"))
	require.NoError(t, err)
	sqlite, err := NewSQLiteStore(filepath.Join(dir, "history.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
		"sqlite": sqlite,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec := NewRecord(sampleQuote("desk lamp", 30), "flags")
			require.NoError(t, store.Save(ctx, rec))

			_, err := uuid.Parse(rec.ID)
			require.NoError(t, err)
			assert.False(t, rec.CreatedAt.IsZero())

			got, err := store.Get(ctx, rec.ID)
			require.NoError(t, err)
			assert.Equal(t, "desk lamp", got.Name)
			assert.Equal(t, "flags", got.Source)
			assert.Equal(t, rec.SizeTier, got.SizeTier)
			assert.True(t, rec.NetProfit.Equal(got.NetProfit))
			require.NotNil(t, got.Quote)
			assert.Equal(t, rec.Quote.SizeTier.Tier, got.Quote.SizeTier.Tier)
			assert.True(t, rec.Quote.Fulfillment.Total.Equal(got.Quote.Fulfillment.Total))

			require.NoError(t, store.Delete(ctx, rec.ID))
			_, err = store.Get(ctx, rec.ID)
			assert.True(t, errors.IsType(err, errors.TypeNotFound))
			assert.True(t, errors.IsType(store.Delete(ctx, rec.ID), errors.TypeNotFound))
		})
	}
}

func TestStore_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			inputs := []struct {
				name  string
				price int64
				at    time.Time
			}{
				{"mug", 20, base},
				{"travel mug", 25, base.Add(time.Hour)},
				{"loss leader", 7, base.Add(2 * time.Hour)},
			}
			for _, in := range inputs {
				rec := NewRecord(sampleQuote(in.name, in.price), "batch.hcl")
				rec.CreatedAt = in.at
				require.NoError(t, store.Save(ctx, rec))
			}

			all, err := store.List(ctx, nil)
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, "loss leader", all[0].Name)
			assert.Equal(t, "mug", all[2].Name)

			mugs, err := store.List(ctx, &Filter{Name: "MUG"})
			require.NoError(t, err)
			assert.Len(t, mugs, 2)

			recent, err := store.List(ctx, &Filter{Since: base.Add(30 * time.Minute)})
			require.NoError(t, err)
			assert.Len(t, recent, 2)

			losing, err := store.List(ctx, &Filter{Unprofitable: true})
			require.NoError(t, err)
			require.Len(t, losing, 1)
			assert.Equal(t, "loss leader", losing[0].Name)

			page, err := store.List(ctx, &Filter{Offset: 1, Limit: 1})
			require.NoError(t, err)
			require.Len(t, page, 1)
			assert.Equal(t, "travel mug", page[0].Name)

			none, err := store.List(ctx, &Filter{Offset: 10})
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestStore_SaveOverwritesExistingID(t *testing.T) {
	ctx := context.Background()
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec := NewRecord(sampleQuote("lamp", 30), "flags")
			require.NoError(t, store.Save(ctx, rec))

			rec.Name = "lamp v2"
			require.NoError(t, store.Save(ctx, rec))

			all, err := store.List(ctx, nil)
			require.NoError(t, err)
			require.Len(t, all, 1)
			assert.Equal(t, "lamp v2", all[0].Name)
		})
	}
}

func TestFileStore_RejectsNonUUIDAndSkipsJunk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	err = store.Save(ctx, &Record{ID: "../escape", Name: "x"})
	assert.True(t, errors.IsType(err, errors.TypeInput))

	_, err = store.Get(ctx, "../escape")
	assert.True(t, errors.IsType(err, errors.TypeNotFound))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0644))
	require.NoError(t, store.Save(ctx, NewRecord(sampleQuote("ok", 20), "")))

	all, err := store.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSQLiteStore_MigratesInMemory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	v, err := store.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestSQLiteStore_VersionAfterCloseIsStorageError(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Version(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage), "got %v", err)
}

func TestSQLiteStore_ReopenKeepsRecords(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "h.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	rec := NewRecord(sampleQuote("kept", 20), "")
	require.NoError(t, store.Save(ctx, rec))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()
	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "kept", got.Name)
}

func TestOpen(t *testing.T) {
	s, err := Open(Config{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(Config{Backend: BackendFile, Path: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open(Config{Backend: "postgres"})
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}
