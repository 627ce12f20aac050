package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Key string
	N   int
}

func encodePair(p pair) []string { return []string{p.Key, strconv.Itoa(p.N)} }

func decodePair(fields []string) (pair, error) {
	if len(fields) != 2 {
		return pair{}, fmt.Errorf("pair record has %d fields, want 2", len(fields))
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return pair{}, err
	}
	return pair{Key: fields[0], N: n}, nil
}

func newPairStore(t *testing.T) *Store[pair] {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "pairs.txt"), encodePair, decodePair)
}

func TestLoadAllMissingFile(t *testing.T) {
	s := newPairStore(t)
	recs, err := s.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	s := newPairStore(t)
	want := []pair{{Key: "a", N: 1}, {Key: "b", N: 2}, {Key: "c", N: 3}}
	require.NoError(t, s.SaveAll(want))

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Records end with a newline and join fields with commas.
	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "a,1\nb,2\nc,3\n", string(raw))
}

func TestSaveAllReplacesWholeFile(t *testing.T) {
	s := newPairStore(t)
	require.NoError(t, s.SaveAll([]pair{{Key: "a", N: 1}, {Key: "b", N: 2}}))
	require.NoError(t, s.SaveAll([]pair{{Key: "c", N: 3}}))

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "c", N: 3}}, got)
}

func TestAppendKeepsExistingLines(t *testing.T) {
	s := newPairStore(t)
	require.NoError(t, s.SaveAll([]pair{{Key: "a", N: 1}}))
	require.NoError(t, s.Append(pair{Key: "b", N: 2}))
	require.NoError(t, s.Append(pair{Key: "c", N: 3}))

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "a", N: 1}, {Key: "b", N: 2}, {Key: "c", N: 3}}, got)
}

func TestLoadAllSkipsCorruptRows(t *testing.T) {
	s := newPairStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("a,1\nnot-a-pair\nb,2\n"), 0o644))

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "a", N: 1}, {Key: "b", N: 2}}, got)
}

func TestLoadAllStrictFailsOnCorruptRow(t *testing.T) {
	s := newPairStore(t).Strict()
	require.NoError(t, os.WriteFile(s.Path(), []byte("a,1\nnot-a-pair\nb,2\n"), 0o644))

	_, err := s.LoadAll()
	assert.ErrorIs(t, err, ErrCorruptRow)
}

func TestLoadAllIgnoresBlankLines(t *testing.T) {
	s := newPairStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("a,1\n\n   \nb,2\n"), 0o644))

	got, err := s.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []pair{{Key: "a", N: 1}, {Key: "b", N: 2}}, got)
}
