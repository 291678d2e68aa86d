package lauvinko

import (
	"errors"
	"fmt"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// Entry is one dictionary entry: a Lauvinko lemma and, for inherited words,
// the Proto-Kasanic lemma it descends from.
type Entry struct {
	// Ident is the gloss keyname, e.g. "cut" or "$t1s$".
	Ident string
	// Origin is the source language of the Lauvinko lemma.
	Origin semantics.OriginLanguage
	// Category is the stem category shared by both lemmas.
	Category semantics.StemCategory
	// Type is the morphosyntactic type.
	Type semantics.MSType
	// PK is nil unless Origin is Kasanic.
	PK *pk.Lemma
	// LV is always set.
	LV *lv.Lemma
}

// Languages lists the languages the entry has a lemma in.
func (e *Entry) Languages() []semantics.Language {
	if e.PK != nil {
		return []semantics.Language{semantics.ProtoKasanic, semantics.Lauvinko}
	}
	return []semantics.Language{semantics.Lauvinko}
}

// Definition is the definition in lang, or "" if the entry has none there.
func (e *Entry) Definition(lang semantics.Language) string {
	switch {
	case lang == semantics.Lauvinko:
		return e.LV.Definition
	case lang == semantics.ProtoKasanic && e.PK != nil:
		return e.PK.Definition
	}
	return ""
}

// Citation is the Lauvinko citation form in the nonaugmented context.
func (e *Entry) Citation() (lv.Morpheme, error) {
	return e.LV.CitationForm(lv.NonAugmented)
}

// Form is one rendered cell of a paradigm.
type Form struct {
	// Language is the language of the cell.
	Language semantics.Language
	// TenseAspect is the primary tense-aspect.
	TenseAspect semantics.TenseAspect
	// Context is the Lauvinko context; unused for Proto-Kasanic.
	Context lv.Context
	// Historical is the Lauvinko historical transcription; empty for
	// Proto-Kasanic.
	Historical string
	// Broad and Narrow are the phonemic and phonetic transcriptions.
	Broad, Narrow string
	// Romanization is the Latin-script spelling.
	Romanization string
	// Falavay is the native-script spelling.
	Falavay string
	// Overridden reports whether the form is listed explicitly.
	Overridden bool
}

// Key is "ta" for Proto-Kasanic cells and "ta.ctx" for Lauvinko ones.
func (f Form) Key() string {
	if f.Language == semantics.ProtoKasanic {
		return f.TenseAspect.Abbreviation()
	}
	return lv.FormKey{TenseAspect: f.TenseAspect, Context: f.Context}.String()
}

// Paradigm renders every form of the entry. Loanword forms that the
// dictionary does not list are skipped; any other failure is returned.
func (e *Entry) Paradigm() ([]Form, error) {
	var out []Form
	tas := e.Category.TenseAspects()
	if e.PK != nil {
		for _, ta := range tas {
			stem, err := e.PK.Form(ta)
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", e.Ident, err)
			}
			sf, err := stem.SurfaceForm()
			if err != nil {
				return nil, fmt.Errorf("entry %s %s: %w", e.Ident, ta, err)
			}
			stressed := sf.Stressed()
			out = append(out, Form{
				Language:     semantics.ProtoKasanic,
				TenseAspect:  ta,
				Broad:        sf.BroadTranscription(),
				Narrow:       sf.NarrowTranscription(),
				Romanization: pk.Romanize(sf, stressed),
				Falavay:      pk.Falavay(sf, false),
				Overridden:   e.PK.Overridden(ta),
			})
		}
	}
	for _, ta := range tas {
		for _, ctx := range lv.Contexts {
			m, err := e.LV.Form(ta, ctx)
			if errors.Is(err, lv.ErrInvalidOrigin) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", e.Ident, err)
			}
			out = append(out, Form{
				Language:     semantics.Lauvinko,
				TenseAspect:  ta,
				Context:      ctx,
				Historical:   m.Surface.HistoricalTranscription(),
				Broad:        m.Surface.BroadTranscription(),
				Narrow:       m.Surface.NarrowTranscription(),
				Romanization: lv.Romanize(m.Surface),
				Falavay:      m.Falavay(),
				Overridden:   e.LV.Overridden(lv.FormKey{TenseAspect: ta, Context: ctx}),
			})
		}
	}
	return out, nil
}
