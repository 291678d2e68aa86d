package pk

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrInvalidTranscription marks informal text that is not a Proto-Kasanic
	// morpheme.
	ErrInvalidTranscription = errors.New("invalid transcription")
	// ErrStressedZeroMorpheme marks a join that puts stress on a morpheme
	// contributing no syllables.
	ErrStressedZeroMorpheme = errors.New("stressed zero morpheme")
	// ErrDanglingReduplicator marks a reduplicator with nothing to copy.
	ErrDanglingReduplicator = errors.New("reduplicator has no following morpheme")
)

// Morpheme is a realized Proto-Kasanic morpheme: its syllables plus the
// mutation it applies to whatever follows.
type Morpheme struct {
	Syllables []Syllable
	Mutation  Mutation
}

// Empty reports whether the morpheme contributes no syllables.
func (m Morpheme) Empty() bool { return len(m.Syllables) == 0 }

// SurfaceForm returns the morpheme in isolation, stressed at stress. An empty
// morpheme asked for stress 0 is returned unstressed.
func (m Morpheme) SurfaceForm(stress int) (SurfaceForm, error) {
	if m.Empty() && stress == 0 {
		stress = NoStress
	}
	return NewSurfaceForm(append([]Syllable(nil), m.Syllables...), stress)
}

// Transcription renders the morpheme back into informal notation.
func (m Morpheme) Transcription() string {
	var b strings.Builder
	for i, s := range m.Syllables {
		on := strings.ToLower(s.Onset.Name())
		if on == "" && i > 0 {
			on = "'"
		}
		b.WriteString(on)
		b.WriteString(informalVowel(s.Vowel))
	}
	b.WriteString(m.Mutation.Notation())
	return b.String()
}

func (m Morpheme) String() string { return m.Transcription() }

var (
	morphemeRe = regexp.MustCompile(`^((?:[mngptckshryw']{0,3}[aeiou@~]{1,2})*)(\+[FLN])?$`)
	syllableRe = regexp.MustCompile(`([mngptckshryw']{0,3})([aeiou@~]{1,2})`)
)

var informalOnsets = func() map[string]Onset {
	m := make(map[string]Onset, len(Onsets))
	for _, o := range Onsets {
		m[strings.ToLower(o.Name())] = o
	}
	return m
}()

var informalVowels = map[string]Vowel{
	"a": A, "aa": AA, "i": I, "u": U, "e": E, "o": O, "ai": AI, "au": AU,
	"@": Low, "~": High,
}

func informalVowel(v Vowel) string {
	for s, iv := range informalVowels {
		if iv == v {
			return s
		}
	}
	return "?"
}

// ParseMorpheme reads the informal transcription used throughout the
// dictionary: "aa" is /a/, "a" is /ə/, "'" separates onsetless syllables, "@"
// and "~" are the low and high ablaut slots, and a trailing "+F", "+L" or
// "+N" gives the end mutation.
func ParseMorpheme(text string) (Morpheme, error) {
	match := morphemeRe.FindStringSubmatch(text)
	if match == nil {
		return Morpheme{}, fmt.Errorf("%w: does not match %q", ErrInvalidTranscription, text)
	}
	var syllables []Syllable
	for _, sm := range syllableRe.FindAllStringSubmatch(match[1], -1) {
		onset := NoOnset
		if sm[1] != "" && sm[1] != "'" {
			o, ok := informalOnsets[sm[1]]
			if !ok {
				return Morpheme{}, fmt.Errorf("%w: invalid onset %q in %q", ErrInvalidTranscription, sm[1], text)
			}
			onset = o
		}
		vowel, ok := informalVowels[sm[2]]
		if !ok {
			return Morpheme{}, fmt.Errorf("%w: invalid vowel %q in %q", ErrInvalidTranscription, sm[2], text)
		}
		s, err := NewSyllable(onset, vowel)
		if err != nil {
			return Morpheme{}, err
		}
		if len(syllables) > 0 && vowel.Underspecified() {
			return Morpheme{}, fmt.Errorf("%w: non-initial vowel is underspecified in %q", ErrInvalidSyllable, text)
		}
		syllables = append(syllables, s)
	}
	mut, _ := ParseMutation(match[2])
	return Morpheme{Syllables: syllables, Mutation: mut}, nil
}

// MustParse is ParseMorpheme for static tables; it panics on error.
func MustParse(text string) Morpheme {
	m, err := ParseMorpheme(text)
	if err != nil {
		panic(err)
	}
	return m
}

// JoinPart is an element of a join: either a normal morpheme or the
// reduplicator, which copies the first syllable of the next part.
type JoinPart struct {
	Morpheme     Morpheme
	reduplicator bool
}

// Reduplicator is the partial-reduplication placeholder.
var Reduplicator = JoinPart{reduplicator: true}

// Normal wraps a morpheme as a join part.
func Normal(m Morpheme) JoinPart { return JoinPart{Morpheme: m} }

// IsReduplicator reports whether p is the reduplicator.
func (p JoinPart) IsReduplicator() bool { return p.reduplicator }

func (p JoinPart) String() string {
	if p.reduplicator {
		return "<redup>"
	}
	return p.Morpheme.String()
}

// Parts wraps morphemes as normal join parts.
func Parts(ms ...Morpheme) []JoinPart {
	out := make([]JoinPart, len(ms))
	for i, m := range ms {
		out[i] = Normal(m)
	}
	return out
}

// Join concatenates parts into one surface form, applying each morpheme's end
// mutation to the next non-empty morpheme's first onset. A zero-syllable
// morpheme replaces the pending mutation with its own, if it has one.
// stressed indexes parts; NoStress leaves the result unstressed.
func Join(parts []JoinPart, stressed int) (SurfaceForm, error) {
	var syllables []Syllable
	stress := NoStress
	pending := NoMutation

	for i, p := range parts {
		if i == stressed {
			stress = len(syllables)
		}

		var add []Syllable
		mut := NoMutation
		switch {
		case p.reduplicator:
			if i+1 >= len(parts) || parts[i+1].reduplicator || parts[i+1].Morpheme.Empty() {
				if i == stressed {
					return SurfaceForm{}, fmt.Errorf("%w: reduplicator at %d", ErrStressedZeroMorpheme, i)
				}
				return SurfaceForm{}, fmt.Errorf("%w: at %d", ErrDanglingReduplicator, i)
			}
			add = append(add, parts[i+1].Morpheme.Syllables[0])
		case p.Morpheme.Empty():
			if p.Morpheme.Mutation != NoMutation {
				pending = p.Morpheme.Mutation
			}
			continue
		default:
			add = append(add, p.Morpheme.Syllables...)
			mut = p.Morpheme.Mutation
		}

		if pending != NoMutation {
			s, err := NewSyllable(pending.Mutate(add[0].Onset), add[0].Vowel)
			if err != nil {
				return SurfaceForm{}, err
			}
			add[0] = s
		}
		syllables = append(syllables, add...)
		pending = mut
	}

	if stress != NoStress && stress >= len(syllables) {
		return SurfaceForm{}, fmt.Errorf("%w: part %d", ErrStressedZeroMorpheme, stressed)
	}
	return NewSurfaceForm(syllables, stress)
}

// JoinMorphemes is Join over plain morphemes.
func JoinMorphemes(ms []Morpheme, stressed int) (SurfaceForm, error) {
	return Join(Parts(ms...), stressed)
}
