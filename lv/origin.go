package lv

import (
	"errors"
	"fmt"

	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// ErrInvalidOrigin marks a form that a lemma's origin cannot generate.
var ErrInvalidOrigin = errors.New("invalid origin")

// Origin generates the forms of a lemma that are not given explicitly.
type Origin interface {
	Generate(ta semantics.TenseAspect, ctx Context) (Morpheme, error)
	// Source is the origin language and, for loanwords, the source word.
	Source() (semantics.OriginLanguage, string)
}

// ProtoOrigin derives forms by evolving the stems of a Proto-Kasanic lemma.
type ProtoOrigin struct {
	Lemma *pk.Lemma
}

// Generate evolves the lemma's stem for ta in ctx. An empty stem without a
// prefix yields an empty morpheme.
func (o ProtoOrigin) Generate(ta semantics.TenseAspect, ctx Context) (Morpheme, error) {
	stem, err := o.Lemma.Form(ta)
	if err != nil {
		return Morpheme{}, err
	}
	if stem.Main.Empty() && !stem.HasPrefix {
		// zero morphemes such as the third person animate singular marker
		return Morpheme{Surface: SurfaceForm{Accent: NoAccent}, Original: pk.SurfaceForm{Stress: pk.NoStress},
			Mutation: stem.Main.Mutation, Context: ctx}, nil
	}
	sf, err := stem.SurfaceForm()
	if err != nil {
		return Morpheme{}, err
	}
	lsf, err := Evolve(sf, ctx)
	if err != nil {
		return Morpheme{}, err
	}
	return Morpheme{Surface: lsf, Original: sf, Mutation: stem.Main.Mutation, Context: ctx}, nil
}

// Source names the Proto-Kasanic lemma.
func (o ProtoOrigin) Source() (semantics.OriginLanguage, string) {
	return semantics.Kasanic, o.Lemma.Ident
}

// UnspecifiedOrigin is the origin of a lemma whose forms are all explicit.
type UnspecifiedOrigin struct{}

// Generate always fails with ErrInvalidOrigin.
func (UnspecifiedOrigin) Generate(ta semantics.TenseAspect, ctx Context) (Morpheme, error) {
	return Morpheme{}, fmt.Errorf("%w: a lemma with unspecified origin must have all forms explicitly specified (missing %s %s)",
		ErrInvalidOrigin, ta.Title(), ctx)
}

// Source reports Kasanic with no source word.
func (UnspecifiedOrigin) Source() (semantics.OriginLanguage, string) { return semantics.Kasanic, "" }

// GenericOrigin is a loanword. Its forms must all be explicit.
type GenericOrigin struct {
	Language semantics.OriginLanguage
	Word     string
}

// Generate always fails with ErrInvalidOrigin.
func (o GenericOrigin) Generate(ta semantics.TenseAspect, ctx Context) (Morpheme, error) {
	return Morpheme{}, fmt.Errorf("%w: a lemma with %s origin must have all forms explicitly specified (missing %s %s)",
		ErrInvalidOrigin, o.Language, ta.Title(), ctx)
}

// Source returns the loan language and word.
func (o GenericOrigin) Source() (semantics.OriginLanguage, string) { return o.Language, o.Word }
