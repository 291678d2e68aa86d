// Package phonology holds the articulatory features shared by the Proto-Kasanic
// and Lauvinko phoneme inventories.
package phonology

// Place is a consonant's place of articulation.
type Place int

const (
	NoPlace Place = iota
	Labial
	Alveolar
	Palatal
	Velar
	Labiovelar
	Glottal
)

var placeNames = [...]string{"", "labial", "alveolar", "palatal", "velar", "labiovelar", "glottal"}

func (p Place) String() string {
	if int(p) < len(placeNames) {
		return placeNames[p]
	}
	return "place?"
}

// Manner is a consonant's manner of articulation.
type Manner int

const (
	NoManner Manner = iota
	PlainStop
	PreglottalizedStop
	PrenasalizedStop
	Affricate
	Nasal
	Approximant
	Fricative
)

var mannerNames = [...]string{"", "plain stop", "preglottalized stop", "prenasalized stop",
	"affricate", "nasal", "approximant", "fricative"}

func (m Manner) String() string {
	if int(m) < len(mannerNames) {
		return mannerNames[m]
	}
	return "manner?"
}

// Frontness is the frontness category of a vowel. Fronting and Backing mark
// diphthongs; Underspecified marks an unresolved ablaut slot.
type Frontness int

const (
	Mid Frontness = iota
	Front
	Back
	Fronting
	Backing
	Underspecified
)

var frontnessNames = [...]string{"mid", "front", "back", "fronting", "backing", "underspecified"}

func (f Frontness) String() string {
	if int(f) < len(frontnessNames) {
		return frontnessNames[f]
	}
	return "frontness?"
}
