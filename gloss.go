package lauvinko

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/semantics"
)

// ErrInvalidGloss is returned for a gloss that cannot be parsed or resolved.
var ErrInvalidGloss = errors.New("invalid gloss")

// MorphemeSource is one morpheme of a gloss, "name[.ta[.ctx]]". A nil
// TenseAspect or Context takes the default for the morpheme's position.
type MorphemeSource struct {
	Name        string
	TenseAspect *semantics.TenseAspect
	Context     *lv.Context
}

// ParseMorphemeSource parses "cut.pf.au", "cut.pf" or "cut".
func ParseMorphemeSource(s string) (MorphemeSource, error) {
	pieces := strings.Split(s, ".")
	if len(pieces) > 3 {
		return MorphemeSource{}, fmt.Errorf("%w: too many pieces: %s", ErrInvalidGloss, s)
	}
	if pieces[0] == "" {
		return MorphemeSource{}, fmt.Errorf("%w: empty morpheme in %q", ErrInvalidGloss, s)
	}
	src := MorphemeSource{Name: pieces[0]}
	if len(pieces) > 1 {
		ta, err := semantics.ParseTenseAspect(pieces[1])
		if err != nil {
			return MorphemeSource{}, fmt.Errorf("%w: %w", ErrInvalidGloss, err)
		}
		src.TenseAspect = &ta
	}
	if len(pieces) > 2 {
		ctx, err := lv.ParseContext(pieces[2])
		if err != nil {
			return MorphemeSource{}, fmt.Errorf("%w: %w", ErrInvalidGloss, err)
		}
		src.Context = &ctx
	}
	return src, nil
}

func (s MorphemeSource) String() string {
	out := s.Name
	if s.TenseAspect != nil {
		out += "." + s.TenseAspect.Abbreviation()
	}
	if s.Context != nil {
		out += "." + s.Context.Abbreviation()
	}
	return out
}

// resolve looks the morpheme up. Prefixes default to the general form in
// the prefixed context, a stem to its citation form in the nonaugmented
// context.
func (s MorphemeSource) resolve(d *Dictionary, stem bool) (lv.Morpheme, error) {
	e, err := d.Entry(s.Name)
	if err != nil {
		return lv.Morpheme{}, err
	}
	ta, ctx := semantics.General, lv.Prefixed
	if stem {
		ta, ctx = e.Category.Citation(), lv.NonAugmented
	}
	if s.TenseAspect != nil {
		ta = *s.TenseAspect
	}
	if s.Context != nil {
		ctx = *s.Context
	}
	return e.LV.Form(ta, ctx)
}

// SyntacticWord is a stem with its prefixes, "pre-pre-stem".
type SyntacticWord struct {
	Sources []MorphemeSource
	Word    lv.Word
}

func parseSyntacticWord(d *Dictionary, source string) (SyntacticWord, error) {
	pieces := strings.Split(source, "-")
	sw := SyntacticWord{Sources: make([]MorphemeSource, len(pieces))}
	morphemes := make([]lv.Morpheme, len(pieces))
	for i, p := range pieces {
		src, err := ParseMorphemeSource(p)
		if err != nil {
			return SyntacticWord{}, err
		}
		m, err := src.resolve(d, i == len(pieces)-1)
		if err != nil {
			return SyntacticWord{}, fmt.Errorf("%w: %s: %w", ErrInvalidGloss, src, err)
		}
		sw.Sources[i], morphemes[i] = src, m
	}
	w, err := lv.NewWord(morphemes[:len(morphemes)-1], morphemes[len(morphemes)-1])
	if err != nil {
		return SyntacticWord{}, fmt.Errorf("%w: %s: %w", ErrInvalidGloss, source, err)
	}
	sw.Word = w
	return sw, nil
}

// Analysis is the gloss the word was parsed from.
func (w SyntacticWord) Analysis() string {
	out := make([]string, len(w.Sources))
	for i, s := range w.Sources {
		out[i] = s.String()
	}
	return strings.Join(out, "-")
}

// PhonologicalWord is one or more syntactic words joined as clitics,
// "word=word". The accent falls on the last accented syntactic word.
type PhonologicalWord struct {
	Words   []SyntacticWord
	Surface lv.SurfaceForm
}

func parsePhonologicalWord(d *Dictionary, source string) (PhonologicalWord, error) {
	var pw PhonologicalWord
	var sfs []lv.SurfaceForm
	host := -1
	for _, s := range strings.Split(source, "=") {
		sw, err := parseSyntacticWord(d, s)
		if err != nil {
			return PhonologicalWord{}, err
		}
		sf := sw.Word.SurfaceForm()
		if sf.Accented() {
			host = len(sfs)
		}
		pw.Words = append(pw.Words, sw)
		sfs = append(sfs, sf)
	}
	if len(sfs) == 1 {
		pw.Surface = sfs[0]
		return pw, nil
	}
	sf, err := lv.Cliticize(sfs, host)
	if err != nil {
		return PhonologicalWord{}, fmt.Errorf("%w: %s: %w", ErrInvalidGloss, source, err)
	}
	pw.Surface = sf
	return pw, nil
}

// Analysis is the gloss the word was parsed from.
func (w PhonologicalWord) Analysis() string {
	out := make([]string, len(w.Words))
	for i, sw := range w.Words {
		out[i] = sw.Analysis()
	}
	return strings.Join(out, "=")
}

// Falavay concatenates the spelling of every morpheme.
func (w PhonologicalWord) Falavay() string {
	var b strings.Builder
	for _, sw := range w.Words {
		b.WriteString(sw.Word.Falavay())
	}
	return b.String()
}

// Gloss is a parsed Lauvinko interlinear gloss: phonological words
// separated by whitespace.
type Gloss struct {
	Words []PhonologicalWord
}

// ParseGloss resolves every morpheme of text against d. Whitespace separates
// phonological words, "=" clitics, "-" morphemes and "." the tense-aspect and
// context of a morpheme. The last morpheme of each syntactic word is its stem.
func ParseGloss(d *Dictionary, text string) (*Gloss, error) {
	fields := strings.Fields(NormalizeGloss(text))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty gloss", ErrInvalidGloss)
	}
	g := &Gloss{Words: make([]PhonologicalWord, 0, len(fields))}
	for _, f := range fields {
		pw, err := parsePhonologicalWord(d, f)
		if err != nil {
			return nil, err
		}
		g.Words = append(g.Words, pw)
	}
	return g, nil
}

func (g *Gloss) join(sep string, f func(PhonologicalWord) string) string {
	out := make([]string, len(g.Words))
	for i, w := range g.Words {
		out[i] = f(w)
	}
	return strings.Join(out, sep)
}

// Analysis re-renders the gloss in canonical form.
func (g *Gloss) Analysis() string {
	return g.join(" ", PhonologicalWord.Analysis)
}

// BroadTranscription is the historical transcription of every word.
func (g *Gloss) BroadTranscription() string {
	return g.join(" ", func(w PhonologicalWord) string { return w.Surface.HistoricalTranscription() })
}

// NarrowTranscription is the phonetic transcription of every word.
func (g *Gloss) NarrowTranscription() string {
	return g.join(" ", func(w PhonologicalWord) string { return w.Surface.NarrowTranscription() })
}

// Romanization spells every word in the Latin script.
func (g *Gloss) Romanization() string {
	return g.join(" ", func(w PhonologicalWord) string { return lv.Romanize(w.Surface) })
}

// Falavay spells the gloss in the native script, which does not separate
// words.
func (g *Gloss) Falavay() string {
	return g.join("", PhonologicalWord.Falavay)
}
