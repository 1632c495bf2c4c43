package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rigado/bluehci"
)

func TestNameCache_Store(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "names.cache")
	a := bluehci.ParseAddress("12:34:56:78:90:AB")

	c := New(fn)
	require.NoError(t, c.Store(a, "Thingy"))

	name, err := c.Load(a)
	require.NoError(t, err)
	require.Equal(t, "Thingy", name)

	// a second instance reads the same file
	name, err = New(fn).Load(a)
	require.NoError(t, err)
	require.Equal(t, "Thingy", name)

	require.NoError(t, c.Store(a, "Thingy 2"))
	entries, err := Entries(fn)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Thingy 2", entries["12:34:56:78:90:AB"].Name)
	require.False(t, entries["12:34:56:78:90:AB"].Updated.IsZero())
}

func TestNameCache_Missing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "names.cache")
	c := New(fn)

	_, err := c.Load(bluehci.ParseAddress("12:34:56:78:90:AB"))
	require.Error(t, err)

	require.Error(t, c.Store(bluehci.Address{}, "nobody"))

	// clearing a cache that was never written
	require.NoError(t, c.Clear())
}

func TestNameCache_Clear(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "names.cache")
	a := bluehci.ParseAddress("12:34:56:78:90:AB")

	c := New(fn)
	require.NoError(t, c.Store(a, "Thingy"))
	require.NoError(t, c.Clear())

	_, err := os.Stat(fn)
	require.True(t, os.IsNotExist(err))

	_, err = c.Load(a)
	require.Error(t, err)
}

func TestNameCache_Corrupt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "names.cache")
	require.NoError(t, os.WriteFile(fn, []byte("{not json"), 0644))

	c := New(fn)
	_, err := c.Load(bluehci.ParseAddress("12:34:56:78:90:AB"))
	require.Error(t, err)
	require.Error(t, c.Store(bluehci.ParseAddress("12:34:56:78:90:AB"), "Thingy"))
}
