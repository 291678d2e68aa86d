package pk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lauvinko/lauvinko/phonology"
)

var (
	// ErrInvalidSyllable marks a phonotactically illegal syllable.
	ErrInvalidSyllable = errors.New("invalid syllable")
	// ErrInvalidStress marks a stress index outside the syllables.
	ErrInvalidStress = errors.New("invalid stress")
)

// NoStress is the stress position of an unstressed form.
const NoStress = -1

// Syllable is an optional onset and a vowel.
type Syllable struct {
	Onset Onset
	Vowel Vowel
}

// NewSyllable validates the onset/vowel pairing.
func NewSyllable(o Onset, v Vowel) (Syllable, error) {
	if o != NoOnset && o.Place() == phonology.Labiovelar && v == U {
		return Syllable{}, fmt.Errorf("%w: wu", ErrInvalidSyllable)
	}
	if o == Y && v == I {
		return Syllable{}, fmt.Errorf("%w: yi", ErrInvalidSyllable)
	}
	return Syllable{Onset: o, Vowel: v}, nil
}

var delabialize = map[Onset]Onset{NGW: NG, KW: K, KKW: KK, NKW: NK, W: NoOnset}

// MakeValid adjusts the onset so that it can precede v: labiovelars lose
// their rounding before u and y is dropped before i.
func MakeValid(o Onset, v Vowel) Syllable {
	if v == U {
		if d, ok := delabialize[o]; ok {
			o = d
		}
	}
	if o == Y && v == I {
		o = NoOnset
	}
	return Syllable{Onset: o, Vowel: v}
}

func (s Syllable) String() string {
	return s.Onset.IPA() + s.Vowel.IPA()
}

// SurfaceForm is a sequence of syllables with an optional stress position.
type SurfaceForm struct {
	Syllables []Syllable
	Stress    int
}

// NewSurfaceForm validates the stress index and that only the first syllable
// may carry an underspecified vowel.
func NewSurfaceForm(syllables []Syllable, stress int) (SurfaceForm, error) {
	if stress != NoStress && (stress < 0 || stress >= len(syllables)) {
		return SurfaceForm{}, fmt.Errorf("%w: %d in %d syllables", ErrInvalidStress, stress, len(syllables))
	}
	for _, s := range syllables[min(1, len(syllables)):] {
		if s.Vowel.Underspecified() {
			return SurfaceForm{}, fmt.Errorf("%w: non-initial vowel is underspecified", ErrInvalidSyllable)
		}
	}
	return SurfaceForm{Syllables: syllables, Stress: stress}, nil
}

// Stressed reports whether the form has a stress position.
func (sf SurfaceForm) Stressed() bool { return sf.Stress != NoStress }

// BroadTranscription renders the form as dotted IPA syllables with ˈ before
// the stressed one.
func (sf SurfaceForm) BroadTranscription() string {
	parts := make([]string, len(sf.Syllables))
	for i, s := range sf.Syllables {
		if i == sf.Stress {
			parts[i] = "ˈ" + s.String()
		} else {
			parts[i] = s.String()
		}
	}
	return strings.Join(parts, ".")
}

// NarrowTranscription is the same as the broad one; Proto-Kasanic is only
// reconstructed phonemically.
func (sf SurfaceForm) NarrowTranscription() string { return sf.BroadTranscription() }

// AlphabeticalKey returns a string that sorts forms in dictionary order.
func (sf SurfaceForm) AlphabeticalKey() string {
	var b strings.Builder
	for _, s := range sf.Syllables {
		fmt.Fprintf(&b, "%02d%d", int(s.Onset), int(s.Vowel)-1)
	}
	return b.String()
}

// Equal reports whether two forms have the same syllables and stress.
func (sf SurfaceForm) Equal(o SurfaceForm) bool {
	if sf.Stress != o.Stress || len(sf.Syllables) != len(o.Syllables) {
		return false
	}
	for i, s := range sf.Syllables {
		if s != o.Syllables[i] {
			return false
		}
	}
	return true
}
