package lauvinko

import (
	"fmt"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// PrefixEntries builds one uninflected Kasanic entry per built-in prefix,
// keyed by its gloss keyname.
func PrefixEntries() ([]*Entry, error) {
	prefixes := pk.AllPrefixes()
	out := make([]*Entry, 0, len(prefixes))
	for _, p := range prefixes {
		pl, err := pk.NewLemma(p.Ident(), p.Name, semantics.Uninflected, p.Morpheme, nil)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: %w", p.Name, err)
		}
		pl.Type = p.Type
		ll, err := lv.FromProto(pl, "", nil)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: %w", p.Name, err)
		}
		out = append(out, &Entry{
			Ident:    p.Ident(),
			Origin:   semantics.Kasanic,
			Category: semantics.Uninflected,
			Type:     p.Type,
			PK:       pl,
			LV:       ll,
		})
	}
	return out, nil
}
