// Package lauvinko loads the Proto-Kasanic / Lauvinko dictionary and glosses
// Lauvinko text against it. The sound changes and morphology live in the pk
// and lv packages; this package ties them to dictionary entries.
package lauvinko

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownEntry is returned when an identifier is not in the dictionary.
var ErrUnknownEntry = errors.New("unknown dictionary entry")

// Dictionary holds every loaded entry, including the built-in prefixes.
// It is read-only once built and safe for concurrent use: the only mutable
// state is the lemma form caches, which guard themselves.
type Dictionary struct {
	// entries maps NormalizeIdent(ident) → *Entry.
	entries map[string]*Entry

	// idents lists the normalized identifiers in sorted order.
	idents []string
}

// NewDictionary indexes entries by identifier. Two entries with the same
// normalized identifier are an error.
func NewDictionary(entries ...*Entry) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		key := NormalizeIdent(e.Ident)
		if _, dup := d.entries[key]; dup {
			return nil, fmt.Errorf("duplicate entry %q", e.Ident)
		}
		d.entries[key] = e
		d.idents = append(d.idents, key)
	}
	slices.Sort(d.idents)
	return d, nil
}

// Entry looks up an entry by identifier.
func (d *Dictionary) Entry(ident string) (*Entry, error) {
	e, ok := d.entries[NormalizeIdent(ident)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntry, ident)
	}
	return e, nil
}

// Entries returns every entry sorted by identifier.
func (d *Dictionary) Entries() []*Entry {
	out := make([]*Entry, 0, len(d.idents))
	for _, k := range d.idents {
		out = append(out, d.entries[k])
	}
	return out
}

// Len is the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Where returns the sub-dictionary of entries satisfying f. The entries are
// shared, not copied.
func (d *Dictionary) Where(f func(*Entry) bool) *Dictionary {
	sub := &Dictionary{entries: make(map[string]*Entry)}
	for _, k := range d.idents {
		if e := d.entries[k]; f(e) {
			sub.entries[k] = e
			sub.idents = append(sub.idents, k)
		}
	}
	return sub
}
