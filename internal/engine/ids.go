package engine

import (
	"strconv"
	"strings"
)

// nextID allocates the next ledger ID for a prefix by scanning existing
// IDs for the highest numeric suffix and adding one.  Gaps are allowed
// and numbers are never reused: a deleted T3 still pushes the next
// allocation past 3 as long as a higher ID exists, and the counter is
// re-derived from file contents on every call, matching the original
// rescan behaviour.  Malformed IDs are ignored.
func nextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[len(prefix):])
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return prefix + strconv.Itoa(max+1)
}
