package persist_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/coffee-fueled-dev/statespace/internal/persist"
)

func TestPutGetRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := persist.Open(dir)
	require.NoError(t, err)
	defer store.Close()

	idx := big.NewInt(42)
	rec := persist.Record{Index: idx.String(), Predecessor: "7", Level: 2, Order: 5}
	require.NoError(t, store.Put(rec))

	got, ok, err := store.Get(idx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, rec, got)

	has, err := store.Has(idx)
	require.NoError(t, err)
	require.True(t, has)

	missing, err := store.Has(big.NewInt(999))
	require.NoError(t, err)
	require.False(t, missing)

	require.EqualValues(t, 1, store.Count())
}
