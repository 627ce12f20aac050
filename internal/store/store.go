// Package store implements the flat-file persistence adapter.  Every
// entity lives in its own comma-delimited text file, one newline
// terminated record per line.  Stores are read fully into memory and
// rewritten whole on every mutation; a rewrite goes through a staging
// file followed by an atomic rename so a single file is never left half
// written.  Audit logs are the exception: they are append-only.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ErrCorruptRow marks a line that could not be decoded.  A missing file
// is an empty store, never an error; a malformed line is always
// distinguishable from one.
var ErrCorruptRow = errors.New("corrupt row")

// EncodeFunc flattens a record into its delimited fields.
type EncodeFunc[T any] func(rec T) []string

// DecodeFunc rebuilds a record from its delimited fields.
type DecodeFunc[T any] func(fields []string) (T, error)

// Store binds one record type to one file.  In strict mode LoadAll fails
// on the first corrupt row; otherwise corrupt rows are skipped and
// logged, which is the production default (tests run strict so schema
// regressions fail loudly).
type Store[T any] struct {
	path   string
	encode EncodeFunc[T]
	decode DecodeFunc[T]
	strict bool
}

// New returns a store bound to path with the given codec.
func New[T any](path string, enc EncodeFunc[T], dec DecodeFunc[T]) *Store[T] {
	return &Store[T]{path: path, encode: enc, decode: dec}
}

// Strict makes LoadAll fail on the first corrupt row instead of skipping it.
func (s *Store[T]) Strict() *Store[T] {
	s.strict = true
	return s
}

// Path returns the backing file path.
func (s *Store[T]) Path() string { return s.path }

// LoadAll reads every record from the backing file.  A missing file
// yields an empty slice and no error.
func (s *Store[T]) LoadAll() ([]T, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	var recs []T
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		rec, err := s.decode(strings.Split(raw, ","))
		if err != nil {
			if s.strict {
				return nil, fmt.Errorf("%s line %d: %w: %v", s.path, line, ErrCorruptRow, err)
			}
			log.Printf("store: skipping %s line %d: %v", s.path, line, err)
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return recs, nil
}

// SaveAll rewrites the backing file with exactly the given records.  The
// new content is staged next to the target and renamed over it, so
// readers see either the old file or the new one, never a prefix.
func (s *Store[T]) SaveAll(recs []T) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", s.path, err)
	}
	w := bufio.NewWriter(tmp)
	for _, rec := range recs {
		if _, err := w.WriteString(strings.Join(s.encode(rec), ",") + "\n"); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("flush %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}

// Append adds one record to the end of the backing file without touching
// existing lines.  Used for the refund audit logs, which are append-only.
func (s *Store[T]) Append(rec T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(s.path), err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(strings.Join(s.encode(rec), ",") + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", s.path, err)
	}
	return nil
}
