package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"currency-registry/domain"
	"currency-registry/store"
)

func catalogSnapshot(t *testing.T, id string, codes ...string) *domain.Snapshot {
	t.Helper()
	cat := domain.NewCatalog(id)
	for _, code := range codes {
		c := domain.MustCurrency(domain.CurrencyParams{Code: code, Namespace: "CUSTOM", Digits: domain.MustFixed(2)})
		require.NoError(t, cat.HandleRegister(c))
	}
	snap, err := domain.CreateSnapshot(cat)
	require.NoError(t, err)
	return snap
}

func TestInMemorySnapshotStore_SaveAndGetSnapshot(t *testing.T) {
	ss := store.NewInMemorySnapshotStore()
	id := "custom"

	t.Run("GetNotFound", func(t *testing.T) {
		snap, found, err := ss.GetLatestSnapshot(id)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, snap)
	})

	t.Run("SaveAndGet", func(t *testing.T) {
		require.NoError(t, ss.SaveSnapshot(catalogSnapshot(t, id, "AAA", "BBB")))

		got, found, err := ss.GetLatestSnapshot(id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, id, got.StreamID)
		assert.Equal(t, 2, got.Version)

		restored, err := domain.ApplySnapshot(got)
		require.NoError(t, err)
		assert.True(t, restored.Contains("CUSTOM", "AAA"))
		assert.True(t, restored.Contains("CUSTOM", "BBB"))

		// callers get a copy
		got.State[0] = 'x'
		got.Version = 99
		again, _, _ := ss.GetLatestSnapshot(id)
		assert.Equal(t, 2, again.Version)
		_, err = domain.ApplySnapshot(again)
		assert.NoError(t, err)
	})

	t.Run("NewerReplaces", func(t *testing.T) {
		require.NoError(t, ss.SaveSnapshot(catalogSnapshot(t, id, "AAA", "BBB", "CCC")))
		got, _, _ := ss.GetLatestSnapshot(id)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("OlderIsIgnored", func(t *testing.T) {
		require.NoError(t, ss.SaveSnapshot(catalogSnapshot(t, id, "AAA")))
		got, _, _ := ss.GetLatestSnapshot(id)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("SaveNilSnapshot", func(t *testing.T) {
		assert.ErrorIs(t, ss.SaveSnapshot(nil), store.ErrNilSnapshot)
	})
}
