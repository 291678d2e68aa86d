package pk

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lauvinko/lauvinko/semantics"
)

// ErrAblautMismatch is returned when a generic morph's first vowel does not
// agree with its stem category: categories with a general form need a fully
// specified vowel, the others an ablaut slot.
var ErrAblautMismatch = errors.New("ablaut mismatch")

// lowAblauts gives the first-syllable vowel for each tense-aspect when the
// generic vowel is low. NoVowel (zero) keeps the generic syllable.
var lowAblauts = map[semantics.TenseAspect]Vowel{
	semantics.General:              0,
	semantics.Nonpast:              E,
	semantics.Past:                 O,
	semantics.ImperfectiveNonpast:  AA,
	semantics.ImperfectivePast:     O,
	semantics.Perfective:           E,
	semantics.Inceptive:            AA,
	semantics.FrequentativeNonpast: E,
	semantics.FrequentativePast:    O,
}

var highAblauts = func() map[semantics.TenseAspect]Vowel {
	m := make(map[semantics.TenseAspect]Vowel, len(lowAblauts))
	for ta, v := range lowAblauts {
		if v != 0 {
			v = Raise(v)
		}
		m[ta] = v
	}
	return m
}()

// AblautVowel returns the vowel that replaces a generic first vowel v under
// ta, and false if the generic syllable is kept as it is.
func AblautVowel(v Vowel, ta semantics.TenseAspect) (Vowel, bool) {
	table := highAblauts
	if v.Low() {
		table = lowAblauts
	}
	out := table[ta]
	return out, out != 0
}

var inceptivePrefix = MustParse("i+N")

// primaryPrefix returns the tense-aspect prefix, if any.
func primaryPrefix(ta semantics.TenseAspect) (JoinPart, bool) {
	switch ta {
	case semantics.Inceptive:
		return Normal(inceptivePrefix), true
	case semantics.FrequentativeNonpast, semantics.FrequentativePast:
		return Reduplicator, true
	}
	return JoinPart{}, false
}

// Stem is a realized tense-aspect stem: an optional primary prefix and the
// ablauted main morpheme.
type Stem struct {
	Prefix    JoinPart
	HasPrefix bool
	Main      Morpheme
}

// NewStem builds a stem without a prefix.
func NewStem(main Morpheme) Stem { return Stem{Main: main} }

func (s Stem) parts() ([]JoinPart, int) {
	if s.HasPrefix {
		return []JoinPart{s.Prefix, Normal(s.Main)}, 1
	}
	return []JoinPart{Normal(s.Main)}, 0
}

// SurfaceForm joins the prefix and main morpheme, stressing the main one.
func (s Stem) SurfaceForm() (SurfaceForm, error) {
	parts, stressed := s.parts()
	if s.Main.Empty() {
		stressed = NoStress
	}
	return Join(parts, stressed)
}

// Morpheme returns the stem as one morpheme carrying the main morpheme's end
// mutation.
func (s Stem) Morpheme() (Morpheme, error) {
	sf, err := s.SurfaceForm()
	if err != nil {
		return Morpheme{}, err
	}
	return Morpheme{Syllables: sf.Syllables, Mutation: s.Main.Mutation}, nil
}

// Realize builds the stem of generic for ta, without checking the category.
func Realize(generic Morpheme, ta semantics.TenseAspect) (Stem, error) {
	main := Morpheme{Syllables: append([]Syllable(nil), generic.Syllables...), Mutation: generic.Mutation}
	if len(main.Syllables) > 0 {
		first := main.Syllables[0]
		if v, ok := AblautVowel(first.Vowel, ta); ok {
			main.Syllables[0] = MakeValid(first.Onset, v)
		} else if first.Vowel.Underspecified() {
			return Stem{}, fmt.Errorf("%w: %s has no %s form", ErrAblautMismatch, generic, ta.Title())
		}
	}
	stem := Stem{Main: main}
	if p, ok := primaryPrefix(ta); ok {
		stem.Prefix, stem.HasPrefix = p, true
	}
	return stem, nil
}

// Lemma is a Proto-Kasanic dictionary lemma. Forms are realized on demand and
// cached; the cache is the only mutable part.
type Lemma struct {
	Ident      string
	Definition string
	Category   semantics.StemCategory
	Type       semantics.MSType
	Generic    Morpheme

	overrides map[semantics.TenseAspect]Stem

	mu    sync.Mutex
	cache map[semantics.TenseAspect]Stem
}

// NewLemma validates the generic morph against the category and every
// override's tense-aspect.
func NewLemma(ident, definition string, category semantics.StemCategory, generic Morpheme,
	overrides map[semantics.TenseAspect]Stem) (*Lemma, error) {
	if len(generic.Syllables) > 0 {
		underspecified := generic.Syllables[0].Vowel.Underspecified()
		if category.Has(semantics.General) == underspecified {
			if underspecified {
				return nil, fmt.Errorf("%w: %s stem %s must not contain an ablaut vowel", ErrAblautMismatch, category, generic)
			}
			return nil, fmt.Errorf("%w: %s stem %s must contain an ablaut vowel", ErrAblautMismatch, category, generic)
		}
	}
	for ta := range overrides {
		if err := category.Check(ta); err != nil {
			return nil, err
		}
	}
	return &Lemma{
		Ident:      ident,
		Definition: definition,
		Category:   category,
		Generic:    generic,
		overrides:  overrides,
		cache:      make(map[semantics.TenseAspect]Stem),
	}, nil
}

// Form returns the stem for ta, realizing and caching it on first use.
func (l *Lemma) Form(ta semantics.TenseAspect) (Stem, error) {
	if err := l.Category.Check(ta); err != nil {
		return Stem{}, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if s, ok := l.cache[ta]; ok {
		return s, nil
	}
	s, ok := l.overrides[ta]
	if !ok {
		var err error
		if s, err = Realize(l.Generic, ta); err != nil {
			return Stem{}, err
		}
	}
	l.cache[ta] = s
	return s, nil
}

// CitationForm returns the stem cited in the dictionary.
func (l *Lemma) CitationForm() (Stem, error) {
	return l.Form(l.Category.Citation())
}

// MSType implements semantics.Typed.
func (l *Lemma) MSType() semantics.MSType { return l.Type }

// Overridden reports whether ta has an explicit form.
func (l *Lemma) Overridden(ta semantics.TenseAspect) bool {
	_, ok := l.overrides[ta]
	return ok
}
