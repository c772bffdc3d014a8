package minimax

import (
	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"

	"github.com/Zoidburgh/HEXPIXI/move"
)

// Bound types for table entries.
const (
	TTExact uint8 = iota + 1
	TTLower
	TTUpper
)

// entrySize approximates one cached position's footprint: the 8-byte
// hash key plus the 8-byte entry. Map bucket overhead is ignored, as the
// budget is a sizing hint rather than a ceiling.
const entrySize = 16

// TableEntry is one transposition table slot: the score and bound from a
// finished search of the position, the depth that search ran to, and the
// best move it found.
type TableEntry struct {
	score int32
	play  move.Move
	flag  uint8
	depth uint8
}

// TranspositionTable caches search results by position hash, with a
// depth-preferred replacement policy: an entry is only overwritten by
// one searched at least as deep. The map is pre-sized for the configured
// budget but allowed to grow past it, so deep results are never dropped.
type TranspositionTable struct {
	table   map[uint64]TableEntry
	maxSize int
	lookups uint64
	hits    uint64
}

// NewTranspositionTable returns a table budgeted at sizeMB megabytes.
// A zero or negative size derives a budget from system memory.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		sizeMB = int(memory.TotalMemory() / (32 * 1024 * 1024))
		if sizeMB < 128 {
			sizeMB = 128
		}
		if sizeMB > 1024 {
			sizeMB = 1024
		}
	}
	maxSize := sizeMB * 1024 * 1024 / entrySize
	log.Debug().Int("size-mb", sizeMB).Int("max-entries", maxSize).
		Msg("transposition-table-size")
	return &TranspositionTable{
		table:   make(map[uint64]TableEntry, maxSize),
		maxSize: maxSize,
	}
}

func (t *TranspositionTable) probe(hash uint64) (TableEntry, bool) {
	t.lookups++
	entry, ok := t.table[hash]
	if ok {
		t.hits++
	}
	return entry, ok
}

func (t *TranspositionTable) store(hash uint64, entry TableEntry) {
	if existing, ok := t.table[hash]; ok && entry.depth < existing.depth {
		return
	}
	t.table[hash] = entry
}

// Len returns the number of cached positions.
func (t *TranspositionTable) Len() int {
	return len(t.table)
}

// Hits returns how many probes found an entry.
func (t *TranspositionTable) Hits() uint64 {
	return t.hits
}

// Misses returns how many probes found nothing.
func (t *TranspositionTable) Misses() uint64 {
	return t.lookups - t.hits
}

// Clear drops every entry but keeps the allocated table.
func (t *TranspositionTable) Clear() {
	clear(t.table)
	t.lookups = 0
	t.hits = 0
}
