package lv

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// FormKey addresses one form of a Lauvinko lemma.
type FormKey struct {
	TenseAspect semantics.TenseAspect
	Context     Context
}

func (k FormKey) String() string {
	return k.TenseAspect.Abbreviation() + "." + k.Context.Abbreviation()
}

// ParseFormKey resolves dictionary keys such as "imnp.na".
func ParseFormKey(s string) (FormKey, error) {
	t, c, ok := strings.Cut(s, ".")
	if !ok {
		return FormKey{}, fmt.Errorf("form key %q is not of the form ta.ctx", s)
	}
	ta, err := semantics.ParseTenseAspect(t)
	if err != nil {
		return FormKey{}, err
	}
	ctx, err := ParseContext(c)
	if err != nil {
		return FormKey{}, err
	}
	return FormKey{TenseAspect: ta, Context: ctx}, nil
}

// Lemma is a Lauvinko dictionary lemma. Forms missing from the overrides are
// generated by the origin and cached.
type Lemma struct {
	Ident      string
	Definition string
	Category   semantics.StemCategory
	Type       semantics.MSType
	Origin     Origin

	overrides map[FormKey]Morpheme

	mu    sync.Mutex
	cache map[FormKey]Morpheme
}

// NewLemma validates every override's tense-aspect against the category.
func NewLemma(ident, definition string, category semantics.StemCategory, mstype semantics.MSType,
	origin Origin, overrides map[FormKey]Morpheme) (*Lemma, error) {
	l := &Lemma{
		Ident:      ident,
		Definition: definition,
		Category:   category,
		Type:       mstype,
		Origin:     origin,
		overrides:  make(map[FormKey]Morpheme, len(overrides)),
		cache:      make(map[FormKey]Morpheme),
	}
	for k, m := range overrides {
		if err := category.Check(k.TenseAspect); err != nil {
			return nil, fmt.Errorf("lemma %s: %w", ident, err)
		}
		m.Lemma, m.Context = l, k.Context
		l.overrides[k] = m
	}
	return l, nil
}

// FromProto wraps a Proto-Kasanic lemma. An empty definition keeps the
// Proto-Kasanic one.
func FromProto(p *pk.Lemma, definition string, overrides map[FormKey]Morpheme) (*Lemma, error) {
	if definition == "" {
		definition = p.Definition
	}
	return NewLemma(p.Ident, definition, p.Category, p.Type, ProtoOrigin{Lemma: p}, overrides)
}

// Form returns the form for ta in ctx.
func (l *Lemma) Form(ta semantics.TenseAspect, ctx Context) (Morpheme, error) {
	if err := l.Category.Check(ta); err != nil {
		return Morpheme{}, err
	}
	key := FormKey{TenseAspect: ta, Context: ctx}
	l.mu.Lock()
	defer l.mu.Unlock()
	if m, ok := l.cache[key]; ok {
		return m, nil
	}
	m, ok := l.overrides[key]
	if !ok {
		var err error
		if m, err = l.Origin.Generate(ta, ctx); err != nil {
			return Morpheme{}, fmt.Errorf("lemma %s: %w", l.Ident, err)
		}
		m.Lemma = l
	}
	l.cache[key] = m
	return m, nil
}

// CitationForm is the dictionary form in ctx.
func (l *Lemma) CitationForm(ctx Context) (Morpheme, error) {
	return l.Form(l.Category.Citation(), ctx)
}

// MSType implements semantics.Typed.
func (l *Lemma) MSType() semantics.MSType { return l.Type }

// Overridden reports whether the form for key is explicit.
func (l *Lemma) Overridden(key FormKey) bool {
	_, ok := l.overrides[key]
	return ok
}
