package pk

import (
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/semantics"
)

// Prefix is one of the closed-class verbal prefixes.
type Prefix struct {
	// Name is the table name; a trailing underscore marks a grammatical
	// (as opposed to lexical-looking) gloss, e.g. "T2P_".
	Name     string
	Type     semantics.MSType
	Morpheme Morpheme
}

// Ident is the gloss keyname: "$t2p$" for "T2P_", "if" for "IF".
func (p Prefix) Ident() string {
	if strings.HasSuffix(p.Name, "_") {
		return "$" + strings.ToLower(strings.TrimSuffix(p.Name, "_")) + "$"
	}
	return strings.ToLower(p.Name)
}

// MSType implements semantics.Typed.
func (p Prefix) MSType() semantics.MSType { return p.Type }

func (p Prefix) String() string { return p.Ident() }

func prefixTable(t semantics.MSType, pairs ...string) []Prefix {
	out := make([]Prefix, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, Prefix{Name: pairs[i], Type: t, Morpheme: MustParse(pairs[i+1])})
	}
	return out
}

// Prefix tables, in slot order.
var (
	ModalPrefixes = prefixTable(semantics.ModalPrefix,
		"IF", "tti+L",
		"IN_ORDER", "ki+L",
		"THUS", "iwo+F",
		"AFTER", "nyinyi",
		"SWRF_", "o+N",
		"NOT", "aara",
		"AGAIN", "tere",
		"WANT", "ewa",
		"LIKE", "mika",
		"CAN", "so+N",
		"MUST", "nosa+L",
		"VERY", "kora",
		"BUT", "caa",
	)
	TertiaryAspectPrefixes = prefixTable(semantics.TertiaryAspectPrefix,
		"PRO_", "mpi",
		"EXP_", "raa+F",
	)
	TopicAgreementPrefixes = prefixTable(semantics.TopicAgreementPrefix,
		"T1S_", "na",
		"T1P_", "ta",
		"T2S_", "i+F",
		"T2P_", "e+F",
		"T3AS_", "",
		"T3AP_", "aa",
		"T3IS_", "sa",
		"T3IP_", "aasa",
	)
	TopicCasePrefixes = prefixTable(semantics.TopicCasePrefix,
		"TVOL_", "",
		"TDAT_", "pa+N",
		"TLOC_", "posa",
		"DEP_", "eta",
	)
)

// AllPrefixes lists every prefix table in slot order.
func AllPrefixes() []Prefix {
	var out []Prefix
	for _, t := range [][]Prefix{ModalPrefixes, TertiaryAspectPrefixes, TopicAgreementPrefixes, TopicCasePrefixes} {
		out = append(out, t...)
	}
	return out
}

// LookupPrefix finds a prefix by its gloss keyname.
func LookupPrefix(ident string) (Prefix, bool) {
	for _, p := range AllPrefixes() {
		if p.Ident() == ident {
			return p, true
		}
	}
	return Prefix{}, false
}

// Word is a stem with its bucketed prefixes.
type Word struct {
	Prefixes semantics.Buckets[Prefix]
	Stem     Stem
}

// NewWord buckets prefixes into their slots.
func NewWord(prefixes []Prefix, stem Stem) (Word, error) {
	b, err := semantics.BucketPrefixes(prefixes)
	if err != nil {
		return Word{}, err
	}
	return Word{Prefixes: b, Stem: stem}, nil
}

// SurfaceForm joins the prefixes and the stem, stressing the stem's main
// morpheme.
func (w Word) SurfaceForm() (SurfaceForm, error) {
	var parts []JoinPart
	for _, p := range w.Prefixes.Flatten() {
		parts = append(parts, Normal(p.Morpheme))
	}
	stemParts, stressed := w.Stem.parts()
	stressed += len(parts)
	if w.Stem.Main.Empty() {
		stressed = NoStress
	}
	sf, err := Join(append(parts, stemParts...), stressed)
	if err != nil {
		return SurfaceForm{}, fmt.Errorf("join word: %w", err)
	}
	return sf, nil
}
