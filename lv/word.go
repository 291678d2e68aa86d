package lv

import (
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/semantics"
)

// MSType implements semantics.Typed: a morpheme has the type of its lemma.
func (m Morpheme) MSType() semantics.MSType {
	if m.Lemma == nil {
		return semantics.Independent
	}
	return m.Lemma.Type
}

// Ident implements semantics.Typed.
func (m Morpheme) Ident() string {
	if m.Lemma == nil {
		return m.Informal()
	}
	return m.Lemma.Ident
}

// Word is a stem with its bucketed prefixes, joined with the accent on the
// stem.
type Word struct {
	Prefixes semantics.Buckets[Morpheme]
	Stem     Morpheme

	joined Morpheme
}

// NewWord buckets the prefixes, which should be in the Prefixed context, and
// joins them to stem.
func NewWord(prefixes []Morpheme, stem Morpheme) (Word, error) {
	b, err := semantics.BucketPrefixes(prefixes)
	if err != nil {
		return Word{}, err
	}
	w := Word{Prefixes: b, Stem: stem}
	ms := w.Morphemes()
	if w.joined, err = Join(ms, len(ms)-1); err != nil {
		return Word{}, fmt.Errorf("join word: %w", err)
	}
	return w, nil
}

// Morphemes lists the prefixes in slot order followed by the stem.
func (w Word) Morphemes() []Morpheme {
	return append(w.Prefixes.Flatten(), w.Stem)
}

// Morpheme is the joined word.
func (w Word) Morpheme() Morpheme { return w.joined }

// SurfaceForm is the joined word's surface form.
func (w Word) SurfaceForm() SurfaceForm { return w.joined.Surface }

// Falavay spells each morpheme from its own original form.
func (w Word) Falavay() string {
	var b strings.Builder
	for _, m := range w.Morphemes() {
		b.WriteString(m.Falavay())
	}
	return b.String()
}
