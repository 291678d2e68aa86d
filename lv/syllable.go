package lv

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/phonology"
)

var (
	// ErrInvalidSyllable marks a phonotactically illegal syllable.
	ErrInvalidSyllable = errors.New("invalid syllable")
	// ErrInvalidSurfaceForm marks a syllable sequence that is not a
	// Lauvinko word.
	ErrInvalidSurfaceForm = errors.New("invalid surface form")
)

// NoAccent is the accent position of an unaccented form.
const NoAccent = -1

// Syllable is an optional onset, a vowel and an optional coda.
type Syllable struct {
	Onset Consonant
	Vowel Vowel
	Coda  Consonant
}

// NewSyllable validates the onset, vowel and coda combination.
func NewSyllable(onset Consonant, vowel Vowel, coda Consonant) (Syllable, error) {
	s := Syllable{Onset: onset, Vowel: vowel, Coda: coda}
	switch {
	case onset == AGlide:
		return Syllable{}, fmt.Errorf("%w: ɐ̯ cannot begin a syllable", ErrInvalidSyllable)
	case coda == H:
		return Syllable{}, fmt.Errorf("%w: h cannot end a syllable", ErrInvalidSyllable)
	case coda == V && vowel == O,
		coda == Y && vowel.Frontness() == phonology.Front,
		coda == AGlide && vowel == A:
		return Syllable{}, fmt.Errorf("%w: %s%s", ErrInvalidSyllable, vowel.IPA(), coda.IPA())
	}
	return s, nil
}

func (s Syllable) String() string {
	return s.Onset.IPA() + s.Vowel.IPA() + s.Coda.IPA()
}

// SurfaceForm is a Lauvinko word: syllables, the accented syllable and the
// accent contour.
type SurfaceForm struct {
	Syllables []Syllable
	Accent    int
	Falling   bool
}

// NewSurfaceForm validates the accent index and that every syllable after the
// first has an onset other than h.
func NewSurfaceForm(syllables []Syllable, accent int, falling bool) (SurfaceForm, error) {
	if accent != NoAccent && (accent < 0 || accent >= len(syllables)) {
		return SurfaceForm{}, fmt.Errorf("%w: accent %d in %d syllables", ErrInvalidSurfaceForm, accent, len(syllables))
	}
	for i, s := range syllables {
		if i == 0 {
			continue
		}
		switch s.Onset {
		case H:
			return SurfaceForm{}, fmt.Errorf("%w: h cannot occur medially", ErrInvalidSurfaceForm)
		case NoConsonant:
			return SurfaceForm{}, fmt.Errorf("%w: non-initial syllable %d has no onset", ErrInvalidSurfaceForm, i)
		}
	}
	if accent == NoAccent {
		falling = false
	}
	return SurfaceForm{Syllables: syllables, Accent: accent, Falling: falling}, nil
}

// Accented reports whether the form carries an accent.
func (sf SurfaceForm) Accented() bool { return sf.Accent != NoAccent }

func accentMark(falling bool) string {
	if falling {
		return "\u0302"
	}
	return "\u0301"
}

func (sf SurfaceForm) phonemic(coda func(Consonant) string) string {
	parts := make([]string, len(sf.Syllables))
	for i, s := range sf.Syllables {
		accent := ""
		if i == sf.Accent {
			accent = accentMark(sf.Falling)
		}
		parts[i] = s.Onset.IPA() + s.Vowel.IPA() + accent + coda(s.Coda)
	}
	return strings.Join(parts, ".")
}

// HistoricalTranscription gives every coda as stored, so that distinctions
// collapsed in modern speech remain visible.
func (sf SurfaceForm) HistoricalTranscription() string {
	return sf.phonemic(Consonant.IPA)
}

// broadCoda collapses coda nasals to n and coda plain stops to h.
func broadCoda(c Consonant) string {
	switch {
	case c == NoConsonant:
		return ""
	case c.Manner() == phonology.Nasal:
		return "n"
	case c.Manner() == phonology.PlainStop:
		return "h"
	}
	return c.IPA()
}

// BroadTranscription is the phonemic transcription with coda collapses.
func (sf SurfaceForm) BroadTranscription() string {
	return sf.phonemic(broadCoda)
}

var (
	closedVowels       = map[Vowel]string{A: "ɐ", E: "ɛ", I: "ɪ", O: "ʊ"}
	accentedOpenVowels = map[Vowel]string{A: "ɑ", E: "e", I: "i", O: "o"}
)

func unaccentedOpenVowel(v Vowel, final bool) string {
	if v == E && !final {
		return closedVowels[I]
	}
	return closedVowels[v]
}

func narrowCoda(c Consonant) string {
	switch {
	case c == NoConsonant:
		return ""
	case c == C:
		return "s"
	case c == L:
		return "ɽ"
	case c == V:
		return "w"
	case c.Manner() == phonology.Nasal:
		return "ŋ"
	case c.Manner() == phonology.PlainStop:
		return "ʔ"
	}
	return c.IPA()
}

// geminate lengthens the first segment of ipa: "ɭ" becomes "ɭː", "t͡ɕ"
// becomes "tː͡ɕ".
func geminate(ipa string) string {
	r := []rune(ipa)
	return string(r[0]) + "ː" + string(r[1:])
}

func palatalized(coda Consonant) (string, bool) {
	switch {
	case coda == S:
		return "ɕ", true
	case coda == L:
		return "ʎ", true
	case coda == C, coda.Manner() == phonology.PlainStop:
		return "t͡ɕ", true
	case coda.Manner() == phonology.Nasal:
		return "ɲ", true
	}
	return "", false
}

var retroflexes = map[phonology.Manner]string{
	phonology.Nasal:       "ɳ",
	phonology.PlainStop:   "ʈ",
	phonology.Affricate:   "ʈ͡ʂ",
	phonology.Fricative:   "ʂ",
	phonology.Approximant: "ɭ",
}

// sandhi renders a medial coda and the onset that follows it.
func sandhi(coda, onset Consonant) string {
	if onset == Y {
		if p, ok := palatalized(coda); ok {
			return geminate(p)
		}
	}
	if coda == L && onset.Place() == phonology.Alveolar {
		return geminate(retroflexes[onset.Manner()])
	}
	switch coda.Manner() {
	case phonology.Nasal:
		nasal, _ := FindConsonant(onset.Place(), phonology.Nasal)
		return nasal.IPA() + onset.IPA()
	case phonology.PlainStop:
		if onset.Manner() == phonology.Nasal || onset.Manner() == phonology.Approximant {
			return "ɦ" + onset.IPA()
		}
		return geminate(onset.IPA())
	}
	return narrowCoda(coda) + onset.IPA()
}

// NarrowTranscription renders the vowel allophones, vowel length under a
// rising or falling accent, coda allophones and medial consonant sandhi.
func (sf SurfaceForm) NarrowTranscription() string {
	if len(sf.Syllables) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(sf.Syllables[0].Onset.IPA())
	last := len(sf.Syllables) - 1
	for i, s := range sf.Syllables {
		hasCoda, accented := s.Coda != NoConsonant, i == sf.Accent
		switch {
		case hasCoda:
			b.WriteString(closedVowels[s.Vowel])
		case accented:
			b.WriteString(accentedOpenVowels[s.Vowel])
		default:
			b.WriteString(unaccentedOpenVowel(s.Vowel, i == last))
		}
		if accented {
			b.WriteString(accentMark(sf.Falling))
			if !hasCoda {
				b.WriteString("ː")
			}
		}
		switch {
		case i == last:
			b.WriteString(narrowCoda(s.Coda))
		case !hasCoda:
			b.WriteString(sf.Syllables[i+1].Onset.IPA())
		default:
			b.WriteString(sandhi(s.Coda, sf.Syllables[i+1].Onset))
		}
	}
	return b.String()
}

// Cliticize joins syntactic words into one phonological word accented on
// sfs[accented]. An onsetless word-initial syllable takes the preceding coda,
// replaces a preceding unaccented a, merges with a preceding vowel of the
// same frontness, or gets a glide.
func Cliticize(sfs []SurfaceForm, accented int) (SurfaceForm, error) {
	if accented < 0 || accented >= len(sfs) || !sfs[accented].Accented() {
		return SurfaceForm{}, fmt.Errorf("%w: cliticized word has no accent", ErrInvalidSurfaceForm)
	}
	var syllables []Syllable
	accent := NoAccent
	falling := false

	for i, sf := range sfs {
		if i == accented {
			accent = len(syllables) + sf.Accent
			falling = sf.Falling
		}
		if len(sf.Syllables) == 0 {
			continue
		}
		ms := append([]Syllable(nil), sf.Syllables...)

		if ms[0].Onset == NoConsonant && len(syllables) > 0 {
			prev := &syllables[len(syllables)-1]
			dropPrev := false
			switch {
			case prev.Coda != NoConsonant:
				ms[0].Onset = prev.Coda
				prev.Coda = NoConsonant
			case prev.Vowel == A && accent != len(syllables)-1:
				ms[0].Onset = prev.Onset
				dropPrev = true
			case ms[0].Vowel.Frontness() == prev.Vowel.Frontness() && !ms[0].Vowel.Low():
				ms[0].Vowel = prev.Vowel
				ms[0].Onset = prev.Onset
				dropPrev = true
			case prev.Vowel.Frontness() == phonology.Front:
				ms[0].Onset = Y
			case prev.Vowel.Frontness() == phonology.Back:
				ms[0].Onset = V
			}
			if dropPrev {
				// the accent of the current word shifts with it
				if accent >= len(syllables) {
					accent--
				}
				syllables = syllables[:len(syllables)-1]
			}
		}
		syllables = append(syllables, ms...)
	}
	return NewSurfaceForm(syllables, accent, falling)
}
