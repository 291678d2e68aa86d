package lv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/phonology"
	"github.com/lauvinko/lauvinko/pk"
)

// ErrEvolution marks a Proto-Kasanic form the sound changes cannot apply to.
var ErrEvolution = errors.New("evolution failed")

// Context is the position a morpheme is evolved in.
type Context int

const (
	// Augmented forms keep the onset after the stressed syllable intact.
	Augmented Context = iota
	// NonAugmented forms lenite the onset after the stressed syllable.
	NonAugmented
	// Prefixed forms precede a stem and carry no stress of their own.
	Prefixed
)

// Contexts lists every context.
var Contexts = []Context{Augmented, NonAugmented, Prefixed}

var contextNames = [...]string{"au", "na", "pf"}

// Abbreviation is the dictionary key, e.g. "na".
func (c Context) Abbreviation() string { return contextNames[c] }

func (c Context) String() string {
	switch c {
	case Augmented:
		return "augmented"
	case NonAugmented:
		return "nonaugmented"
	}
	return "prefixed"
}

// ParseContext resolves "au", "na" or "pf".
func ParseContext(s string) (Context, error) {
	for i, n := range contextNames {
		if n == s {
			return Context(i), nil
		}
	}
	return 0, fmt.Errorf("unknown context %q", s)
}

// Tracer receives the working form after each named stage of Evolve.
type Tracer func(stage, form string)

// syllable is the working state of one syllable during evolution. Onset and
// coda are Lauvinko from the consonant stage on, the vowel only once the
// vowels are converted.
type syllable struct {
	protoOnset pk.Onset
	onset      Consonant
	vowel      pk.Vowel
	modern     Vowel
	coda       Consonant
	stressed   bool
}

type evolution struct {
	ctx       Context
	syllables []syllable
	// stressed records whether the input bore stress outside Prefixed
	stressed  bool
	falling   bool
	converted bool
	modern    bool
	trace     Tracer
}

func (e *evolution) String() string {
	parts := make([]string, len(e.syllables))
	for i, s := range e.syllables {
		var b strings.Builder
		if e.converted {
			b.WriteString(s.onset.IPA())
		} else {
			b.WriteString(s.protoOnset.IPA())
		}
		if e.modern {
			b.WriteString(s.modern.IPA())
		} else {
			b.WriteString(s.vowel.IPA())
		}
		if s.stressed {
			b.WriteString("*")
		}
		b.WriteString(s.coda.IPA())
		parts[i] = b.String()
	}
	return strings.Join(parts, ".")
}

func (e *evolution) stressIndex() int {
	for i, s := range e.syllables {
		if s.stressed {
			return i
		}
	}
	return NoAccent
}

// Evolve derives the Lauvinko reflex of a Proto-Kasanic surface form in ctx.
func Evolve(sf pk.SurfaceForm, ctx Context) (SurfaceForm, error) {
	return EvolveTraced(sf, ctx, nil)
}

// EvolveTraced is Evolve reporting every stage to trace, which may be nil.
func EvolveTraced(sf pk.SurfaceForm, ctx Context, trace Tracer) (SurfaceForm, error) {
	e := &evolution{ctx: ctx, trace: trace}
	stages := []struct {
		name string
		run  func() error
	}{
		{"genericize", func() error { return e.genericize(sf) }},
		{"break diphthongs", e.breakDiphthongs},
		{"transform consonants", e.transformConsonants},
		{"remove h", e.removeH},
		{"reduce vowels", e.reduceVowels},
		{"resolve vowel hiatus", e.resolveHiatus},
		{"resolve offglides", e.resolveOffglides},
		{"remove short vowels", e.removeShortVowels},
		{"resolve offglides", e.resolveOffglides},
		{"convert vowels", e.convertVowels},
	}
	for _, st := range stages {
		if err := st.run(); err != nil {
			return SurfaceForm{}, fmt.Errorf("%w: %s: %s: %w", ErrEvolution, pk.Romanize(sf, true), st.name, err)
		}
		if e.trace != nil {
			e.trace(st.name, e.String())
		}
	}
	out, err := e.degenericize()
	if err != nil {
		return SurfaceForm{}, fmt.Errorf("%w: %s: %w", ErrEvolution, pk.Romanize(sf, true), err)
	}
	if e.trace != nil {
		e.trace("degenericize", out.HistoricalTranscription())
	}
	return out, nil
}

func (e *evolution) genericize(sf pk.SurfaceForm) error {
	e.syllables = make([]syllable, 0, len(sf.Syllables)+2)
	e.stressed = sf.Stressed() && e.ctx != Prefixed
	for i, s := range sf.Syllables {
		if s.Vowel.Underspecified() {
			return errors.New("underspecified vowel")
		}
		e.syllables = append(e.syllables, syllable{
			protoOnset: s.Onset,
			vowel:      s.Vowel,
			stressed:   i == sf.Stress && e.ctx != Prefixed,
		})
	}
	return nil
}

func (e *evolution) breakDiphthongs() error {
	out := make([]syllable, 0, len(e.syllables))
	for _, s := range e.syllables {
		var second pk.Vowel
		switch s.vowel {
		case pk.AI:
			second = pk.I
		case pk.AU:
			second = pk.U
		default:
			out = append(out, s)
			continue
		}
		out = append(out,
			syllable{protoOnset: s.protoOnset, vowel: pk.AA},
			syllable{protoOnset: pk.NoOnset, vowel: second, stressed: s.stressed},
		)
	}
	e.syllables = out
	return nil
}

// consonantReflex gives the coda left on the previous syllable and the new
// onset for a Proto-Kasanic onset at index i.
func consonantReflex(o pk.Onset, i int) (Consonant, Consonant, error) {
	switch {
	case o == pk.NoOnset:
		return NoConsonant, NoConsonant, nil
	case o == pk.NC:
		if i == 0 {
			return NoConsonant, NoConsonant, errors.New("initial nc")
		}
		return N, C, nil
	}
	switch o.Manner() {
	case phonology.PrenasalizedStop, phonology.PreglottalizedStop:
		if i == 0 {
			c, _ := ProtoInitial(o)
			return NoConsonant, c, nil
		}
		coda, simple := breakProto(o)
		c, _ := ProtoInitial(simple)
		return coda, c, nil
	}
	c, _ := ProtoInitial(o)
	return NoConsonant, c, nil
}

func (e *evolution) transformConsonants() error {
	if len(e.syllables) > 0 && e.syllables[0].protoOnset == pk.NC {
		e.syllables = append([]syllable{{vowel: pk.AA}}, e.syllables...)
	}
	st := e.stressIndex()
	lenited := e.ctx == NonAugmented && st != NoAccent
	if lenited && st == len(e.syllables)-1 {
		e.falling = true
	}

	for i := range e.syllables {
		o := e.syllables[i].protoOnset
		coda, onset, err := consonantReflex(o, i)
		if err != nil {
			return err
		}
		if lenited && i == st+1 {
			var lc, lo Consonant
			if o == pk.NC {
				lc, lo = N, S
			} else if lc, lo, err = consonantReflex(pk.Lenition.Mutate(o), i); err != nil {
				return err
			}
			e.falling = lc == coda && lo == onset
			coda, onset = lc, lo
		}
		if coda != NoConsonant {
			prev := &e.syllables[i-1]
			if prev.coda != NoConsonant {
				return errors.New("double coda")
			}
			prev.coda = coda
		}
		e.syllables[i].onset = onset
	}
	e.converted = true
	return nil
}

func (e *evolution) removeH() error {
	for i := 1; i < len(e.syllables); i++ {
		if e.syllables[i].onset == H {
			e.syllables[i].onset = NoConsonant
		}
	}
	return nil
}

func (e *evolution) reduceVowels() error {
	if len(e.syllables) == 0 {
		return nil
	}
	if st := e.stressIndex(); e.ctx == NonAugmented && st != NoAccent && st+1 < len(e.syllables) {
		e.syllables[st+1].vowel = pk.Raise(e.syllables[st+1].vowel)
	}
	last := &e.syllables[len(e.syllables)-1]
	if !last.stressed && e.ctx != Prefixed {
		last.vowel = pk.Raise(last.vowel)
	}
	return nil
}

func (e *evolution) resolveHiatus() error {
	for {
		j := -1
		for k := 1; k < len(e.syllables); k++ {
			if e.syllables[k].onset == NoConsonant {
				j = k
				break
			}
		}
		if j < 0 {
			return nil
		}
		b, n := &e.syllables[j-1], &e.syllables[j]
		if b.coda != NoConsonant {
			if b.coda != AGlide {
				n.onset = b.coda
			}
			b.coda = NoConsonant
			continue
		}
		onsetNext := j+1 < len(e.syllables) && e.syllables[j+1].onset != NoConsonant
		switch resolveHiatus(b.vowel, n.vowel, n.coda != NoConsonant, n.stressed, onsetNext) {
		case absorb:
			b.coda = offglide(n.vowel)
			b.stressed = b.stressed || n.stressed
			e.remove(j)
		case fuse:
			b.vowel = fuseVowels(b.vowel, n.vowel)
			b.coda = n.coda
			b.stressed = b.stressed || n.stressed
			e.remove(j)
		case glide:
			g, ok := hiatusGlide(b.vowel, n.vowel)
			if !ok {
				return fmt.Errorf("no glide between %s and %s", b.vowel.IPA(), n.vowel.IPA())
			}
			n.onset = g
		}
	}
}

func (e *evolution) remove(i int) {
	e.syllables = append(e.syllables[:i], e.syllables[i+1:]...)
}

func (e *evolution) resolveOffglides() error {
	for i := range e.syllables {
		s := &e.syllables[i]
		switch {
		case s.coda == NoConsonant:
		case s.vowel == pk.A && s.coda == V:
			s.vowel, s.coda = pk.O, NoConsonant
		case s.vowel == pk.A && s.coda == Y:
			s.vowel, s.coda = pk.E, NoConsonant
		case s.coda == offglide(s.vowel):
			s.coda = NoConsonant
		}
	}
	return nil
}

// removeShortVowels never deletes the stressed syllable, including a
// stressed glide-onset syllable repeating its vowel's offglide. Merging that
// one backward with the stress promoted gives the same results over the
// diachronic corpus, but lv.Join does not model it.
func (e *evolution) removeShortVowels() error {
	for i := len(e.syllables) - 1; i >= 1; i-- {
		s, p := &e.syllables[i], &e.syllables[i-1]
		if s.coda != NoConsonant || p.coda != NoConsonant || s.stressed {
			continue
		}
		switch {
		case s.vowel == pk.A || s.vowel == pk.U:
			p.coda = s.onset
			e.remove(i)
		case s.onset != NoConsonant && s.onset == offglide(s.vowel):
			p.coda = s.onset
			e.remove(i)
		}
	}
	return nil
}

func (e *evolution) convertVowels() error {
	for i := range e.syllables {
		s := &e.syllables[i]
		s.modern = modernVowel(s.vowel, s.stressed)
		// an unstressed u becomes a, which may now repeat its ɐ̯ coda
		if s.coda == ownOffglide(s.modern) {
			s.coda = NoConsonant
		}
	}
	e.modern = true
	return nil
}

// degenericize builds the validated Lauvinko form.
func (e *evolution) degenericize() (SurfaceForm, error) {
	out := make([]Syllable, len(e.syllables))
	for i, s := range e.syllables {
		syl, err := NewSyllable(s.onset, s.modern, s.coda)
		if err != nil {
			return SurfaceForm{}, err
		}
		out[i] = syl
	}
	accent := e.stressIndex()
	if (accent != NoAccent) != e.stressed {
		return SurfaceForm{}, fmt.Errorf("accent %d does not match the input stress", accent)
	}
	return NewSurfaceForm(out, accent, e.falling)
}
