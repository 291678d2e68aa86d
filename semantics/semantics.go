// Package semantics defines the grammatical categories shared by both
// languages: primary tense-aspects, stem categories and morphosyntactic types.
package semantics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNonexistentForm is returned when a stem category has no form for the
// requested tense-aspect.
var ErrNonexistentForm = errors.New("nonexistent form")

// TenseAspect is a primary tense-aspect.
type TenseAspect int

const (
	General TenseAspect = iota
	Nonpast
	Past
	ImperfectiveNonpast
	ImperfectivePast
	Perfective
	Inceptive
	FrequentativeNonpast
	FrequentativePast
)

// AllTenseAspects lists every tense-aspect in canonical order.
var AllTenseAspects = []TenseAspect{
	General, Nonpast, Past, ImperfectiveNonpast, ImperfectivePast,
	Perfective, Inceptive, FrequentativeNonpast, FrequentativePast,
}

var taTitles = [...]string{
	"general", "nonpast", "past", "nonpast imperfective", "past imperfective",
	"perfective", "inceptive", "nonpast frequentative", "past frequentative",
}

var taAbbreviations = [...]string{"gn", "np", "pt", "imnp", "impt", "pf", "inc", "fqnp", "fqpt"}

// Title is the human-readable name used in error messages and dictionaries.
func (ta TenseAspect) Title() string { return taTitles[ta] }

// Abbreviation is the gloss/dictionary key, e.g. "impt".
func (ta TenseAspect) Abbreviation() string { return taAbbreviations[ta] }

func (ta TenseAspect) String() string { return ta.Abbreviation() }

// ParseTenseAspect resolves an abbreviation ("gn", "fqnp", ...). Gloss-style
// "$fqnp$" is accepted as well.
func ParseTenseAspect(s string) (TenseAspect, error) {
	s = strings.Trim(strings.ToLower(s), "$")
	for i, a := range taAbbreviations {
		if a == s {
			return TenseAspect(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tense-aspect %q", s)
}

// StemCategory determines which tense-aspects a stem has and which one is
// cited in the dictionary.
type StemCategory int

const (
	Fientive StemCategory = iota
	Punctual
	Stative
	Uninflected
)

// AllCategories lists every stem category.
var AllCategories = []StemCategory{Fientive, Punctual, Stative, Uninflected}

type categoryInfo struct {
	title    string
	aspects  []TenseAspect
	citation TenseAspect
}

var categories = [...]categoryInfo{
	Fientive: {"fientive", []TenseAspect{ImperfectiveNonpast, ImperfectivePast, Perfective,
		Inceptive, FrequentativeNonpast, FrequentativePast}, ImperfectivePast},
	Punctual:    {"punctual", []TenseAspect{Nonpast, Past, FrequentativeNonpast, FrequentativePast}, Nonpast},
	Stative:     {"stative", []TenseAspect{General, Past, Inceptive}, General},
	Uninflected: {"uninflected", []TenseAspect{General}, General},
}

func (c StemCategory) String() string { return categories[c].title }

// TenseAspects returns the supported tense-aspects in canonical order.
func (c StemCategory) TenseAspects() []TenseAspect {
	return append([]TenseAspect(nil), categories[c].aspects...)
}

// Citation is the tense-aspect used as the dictionary citation form.
func (c StemCategory) Citation() TenseAspect { return categories[c].citation }

// Has reports whether the category has a form for ta.
func (c StemCategory) Has(ta TenseAspect) bool {
	for _, a := range categories[c].aspects {
		if a == ta {
			return true
		}
	}
	return false
}

// Check returns a wrapped ErrNonexistentForm if the category lacks ta.
func (c StemCategory) Check(ta TenseAspect) error {
	if !c.Has(ta) {
		return fmt.Errorf("%w: %s stem has no %s form", ErrNonexistentForm, c, ta.Title())
	}
	return nil
}

// ParseStemCategory resolves a category title such as "fientive".
func ParseStemCategory(s string) (StemCategory, error) {
	for i, c := range categories {
		if c.title == s {
			return StemCategory(i), nil
		}
	}
	return 0, fmt.Errorf("invalid category %q", s)
}
