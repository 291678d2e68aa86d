package lv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/pk"
)

// ErrInvalidTranscription marks informal text that is not a Lauvinko
// morpheme.
var ErrInvalidTranscription = errors.New("invalid transcription")

var informalInitials = func() map[string]pk.Onset {
	m := make(map[string]pk.Onset, len(pk.Onsets)+2)
	for _, o := range pk.Onsets {
		m[strings.ToLower(o.Name())] = o
	}
	m["v"] = pk.W
	m["l"] = pk.R
	return m
}()

var informalConsonants = func() map[string]Consonant {
	m := make(map[string]Consonant, len(Consonants)+2)
	for _, c := range Consonants {
		m[strings.ToLower(c.Name())] = c
	}
	m["r"] = L
	m["u"] = V
	m["h"] = K
	return m
}()

var informalVowels = map[byte]Vowel{'a': A, 'e': E, 'i': I, 'o': O}

type readerState int

const (
	// the next character must be a vowel
	preVowel readerState = iota
	// a consonant or accent mark must follow
	postVowel
	// a consonant was read that may be a coda or the next onset
	postConsonant
)

type reader struct {
	text      string
	i         int
	state     readerState
	initial   pk.Onset
	syllables []Syllable
	pending   Consonant
	accent    int
	falling   bool
}

func (r *reader) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s in %q", ErrInvalidTranscription, fmt.Sprintf(format, args...), r.text)
}

func (r *reader) vowel() (Vowel, bool) {
	if r.i >= len(r.text) {
		return 0, false
	}
	v, ok := informalVowels[r.text[r.i]]
	return v, ok
}

func (r *reader) consonant() (Consonant, error) {
	for _, n := range []int{2, 1} {
		if r.i+n > len(r.text) {
			continue
		}
		if c, ok := informalConsonants[r.text[r.i:r.i+n]]; ok {
			r.i += n
			return c, nil
		}
	}
	return NoConsonant, r.errorf("expecting consonant at position %d", r.i)
}

func (r *reader) readInitial() error {
	for _, n := range []int{3, 2, 1} {
		if n > len(r.text) {
			continue
		}
		o, ok := informalInitials[r.text[:n]]
		if !ok {
			continue
		}
		r.initial, r.i = o, n
		if o == pk.NC {
			r.syllables = append(r.syllables, Syllable{Vowel: A, Coda: N})
			r.pending = C
		} else {
			r.pending, _ = ProtoInitial(o)
		}
		return nil
	}
	if _, ok := r.vowel(); !ok {
		return r.errorf("initial consonant is not a Proto-Kasanic onset")
	}
	return nil
}

func (r *reader) pushVowel(v Vowel) {
	r.syllables = append(r.syllables, Syllable{Onset: r.pending, Vowel: v})
	r.pending = NoConsonant
	r.state = postVowel
	r.i++
}

func (r *reader) read() error {
	if err := r.readInitial(); err != nil {
		return err
	}
	for r.i < len(r.text) {
		switch r.state {
		case preVowel:
			v, ok := r.vowel()
			if !ok {
				return r.errorf("expecting vowel at position %d", r.i)
			}
			r.pushVowel(v)
		case postVowel:
			if ch := r.text[r.i]; ch == '/' || ch == '\\' {
				if r.accent != NoAccent {
					return r.errorf("more than one accented syllable")
				}
				r.accent = len(r.syllables) - 1
				r.falling = ch == '\\'
				r.i++
				continue
			}
			c, err := r.consonant()
			if err != nil {
				return err
			}
			r.pending, r.state = c, postConsonant
		case postConsonant:
			if v, ok := r.vowel(); ok {
				r.pushVowel(v)
				continue
			}
			r.syllables[len(r.syllables)-1].Coda = r.pending
			c, err := r.consonant()
			if err != nil {
				return err
			}
			r.pending, r.state = c, preVowel
		}
	}
	switch r.state {
	case preVowel:
		return r.errorf("ends with two consonants")
	case postConsonant:
		r.syllables[len(r.syllables)-1].Coda = r.pending
	}
	return nil
}

// original builds the virtual original form: one syllable per Lauvinko
// syllable after the a that word-initial nc grew, the first one carrying the
// original initial.
func (r *reader) original() pk.SurfaceForm {
	syllables := r.syllables
	stress := r.accent
	if r.initial == pk.NC {
		syllables = syllables[1:]
		stress--
	}
	out := make([]pk.Syllable, len(syllables))
	for i, s := range syllables {
		out[i].Vowel = protoVowel(s.Vowel)
	}
	if len(out) > 0 {
		out[0].Onset = r.initial
	}
	if stress < 0 || stress >= len(out) {
		stress = pk.NoStress
	}
	return pk.SurfaceForm{Syllables: out, Stress: stress}
}

// ParseMorpheme reads a Lauvinko morpheme from informal transcription. The
// initial is written as the Proto-Kasanic onset it continues ("nc" stands for
// the ant͡s that initial nc became). Later consonants are Lauvinko, with "h"
// for a coda stop, "r" for l, "u" for ʋ and "a" for the ɐ̯ offglide. "/" or "\"
// after a vowel marks a rising or falling accent, and a trailing "+F", "+L"
// or "+N" gives the end mutation.
func ParseMorpheme(text string) (Morpheme, error) {
	mutation := pk.NoMutation
	if len(text) >= 2 {
		if m, ok := pk.ParseMutation(text[len(text)-2:]); ok {
			mutation, text = m, text[:len(text)-2]
		}
	}
	r := &reader{text: text, accent: NoAccent}
	if err := r.read(); err != nil {
		return Morpheme{}, err
	}
	for i, s := range r.syllables {
		if _, err := NewSyllable(s.Onset, s.Vowel, s.Coda); err != nil {
			return Morpheme{}, fmt.Errorf("%w: syllable %d of %q", err, i, text)
		}
	}
	sf, err := NewSurfaceForm(r.syllables, r.accent, r.falling)
	if err != nil {
		return Morpheme{}, fmt.Errorf("%w: %q", err, text)
	}
	return Morpheme{Surface: sf, Original: r.original(), Mutation: mutation}, nil
}

// MustParse is ParseMorpheme for static tables; it panics on error.
func MustParse(text string) Morpheme {
	m, err := ParseMorpheme(text)
	if err != nil {
		panic(err)
	}
	return m
}

func informalInitial(o pk.Onset) string {
	switch o {
	case pk.W:
		return "v"
	case pk.R:
		return "l"
	}
	return strings.ToLower(o.Name())
}

func informalCoda(c, next Consonant) string {
	switch c {
	case L:
		if next == L || next == Y {
			return "l"
		}
		return "r"
	case V:
		return "u"
	case AGlide:
		return "a"
	}
	return strings.ToLower(c.Name())
}

// Informal renders the morpheme in the notation ParseMorpheme reads.
func (m Morpheme) Informal() string {
	syllables := m.Surface.Syllables
	var b strings.Builder
	initial := ""
	if len(syllables) > 0 {
		initial = strings.ToLower(syllables[0].Onset.Name())
	}
	start := 0
	if len(m.Original.Syllables) > 0 {
		o := m.OriginalInitial()
		switch {
		case o != pk.NC:
			initial = informalInitial(o)
		case len(syllables) > 1 && m.Surface.Accent != 0 &&
			syllables[0] == Syllable{Vowel: A, Coda: N} && syllables[1].Onset == C:
			initial, start = "nc", 1
		}
	}
	b.WriteString(initial)
	for i := start; i < len(syllables); i++ {
		s := syllables[i]
		if i > start {
			b.WriteString(strings.ToLower(s.Onset.Name()))
		}
		b.WriteString(strings.ToLower(s.Vowel.Name()))
		if i == m.Surface.Accent {
			if m.Surface.Falling {
				b.WriteString(`\`)
			} else {
				b.WriteString("/")
			}
		}
		if s.Coda != NoConsonant {
			next := NoConsonant
			if i+1 < len(syllables) {
				next = syllables[i+1].Onset
			}
			b.WriteString(informalCoda(s.Coda, next))
		}
	}
	b.WriteString(m.Mutation.Notation())
	return b.String()
}

func (m Morpheme) String() string { return m.Informal() }
