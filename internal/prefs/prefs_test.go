package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	defer s.Close()

	// Unset keys read as empty, not as an error.
	v, err := s.Get(KeyLastPlan)
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, s.Set(KeyLastPlan, "7"))
	require.NoError(t, s.Set(KeyLastBranch, "B1"))

	v, err = s.Get(KeyLastPlan)
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	// Overwrites replace.
	require.NoError(t, s.Set(KeyLastPlan, "8"))
	v, err = s.Get(KeyLastPlan)
	require.NoError(t, err)
	assert.Equal(t, "8", v)
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(KeyLastTable, "earning"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(KeyLastTable)
	require.NoError(t, err)
	assert.Equal(t, "earning", v)
}
