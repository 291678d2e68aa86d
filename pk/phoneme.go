// Package pk implements the phonology and morphology of Proto-Kasanic:
// phoneme inventories, syllables, surface forms, consonant mutation, ablaut,
// morpheme joining and the informal transcription parser.
package pk

import "github.com/lauvinko/lauvinko/phonology"

// Onset is a Proto-Kasanic syllable onset. NoOnset is the empty onset.
type Onset int

const (
	NoOnset Onset = iota
	K
	KK
	NK
	NG
	C
	CC
	NC
	NY
	T
	TT
	NT
	N
	P
	KW
	PP
	KKW
	MP
	NKW
	M
	NGW
	Y
	R
	W
	S
	H
)

type onsetInfo struct {
	name   string
	ipa    string
	place  phonology.Place
	manner phonology.Manner
}

var onsets = [...]onsetInfo{
	NoOnset: {"", "", phonology.NoPlace, phonology.NoManner},
	K:       {"K", "k", phonology.Velar, phonology.PlainStop},
	KK:      {"KK", "ˀk", phonology.Velar, phonology.PreglottalizedStop},
	NK:      {"NK", "ᵑk", phonology.Velar, phonology.PrenasalizedStop},
	NG:      {"NG", "ŋ", phonology.Velar, phonology.Nasal},
	C:       {"C", "t͡ɕ", phonology.Palatal, phonology.PlainStop},
	CC:      {"CC", "ˀt͡ɕ", phonology.Palatal, phonology.PreglottalizedStop},
	NC:      {"NC", "ᶮt͡ɕ", phonology.Palatal, phonology.PrenasalizedStop},
	NY:      {"NY", "ɲ", phonology.Palatal, phonology.Nasal},
	T:       {"T", "t", phonology.Alveolar, phonology.PlainStop},
	TT:      {"TT", "ˀt", phonology.Alveolar, phonology.PreglottalizedStop},
	NT:      {"NT", "ⁿt", phonology.Alveolar, phonology.PrenasalizedStop},
	N:       {"N", "n", phonology.Alveolar, phonology.Nasal},
	P:       {"P", "p", phonology.Labial, phonology.PlainStop},
	KW:      {"KW", "kʷ", phonology.Labiovelar, phonology.PlainStop},
	PP:      {"PP", "ˀp", phonology.Labial, phonology.PreglottalizedStop},
	KKW:     {"KKW", "ˀkʷ", phonology.Labiovelar, phonology.PreglottalizedStop},
	MP:      {"MP", "ᵐp", phonology.Labial, phonology.PrenasalizedStop},
	NKW:     {"NKW", "ᵑkʷ", phonology.Labiovelar, phonology.PrenasalizedStop},
	M:       {"M", "m", phonology.Labial, phonology.Nasal},
	NGW:     {"NGW", "ŋʷ", phonology.Labiovelar, phonology.Nasal},
	Y:       {"Y", "j", phonology.Palatal, phonology.Approximant},
	R:       {"R", "r", phonology.Alveolar, phonology.Approximant},
	W:       {"W", "w", phonology.Labiovelar, phonology.Approximant},
	S:       {"S", "s", phonology.Alveolar, phonology.Fricative},
	H:       {"H", "h", phonology.Glottal, phonology.Fricative},
}

// Onsets lists the whole onset inventory (without NoOnset) in order.
var Onsets = func() []Onset {
	out := make([]Onset, 0, len(onsets)-1)
	for o := K; o <= H; o++ {
		out = append(out, o)
	}
	return out
}()

// Name is the enum name, e.g. "KKW".
func (o Onset) Name() string { return onsets[o].name }

// IPA is the phonemic symbol.
func (o Onset) IPA() string { return onsets[o].ipa }

// Place is the place of articulation.
func (o Onset) Place() phonology.Place { return onsets[o].place }

// Manner is the manner of articulation.
func (o Onset) Manner() phonology.Manner { return onsets[o].manner }

func (o Onset) String() string {
	if o == NoOnset {
		return "∅"
	}
	return o.Name()
}

type placeManner struct {
	place  phonology.Place
	manner phonology.Manner
}

var onsetByFeatures = func() map[placeManner]Onset {
	m := make(map[placeManner]Onset, len(onsets))
	for _, o := range Onsets {
		m[placeManner{o.Place(), o.Manner()}] = o
	}
	return m
}()

// FindOnset returns the onset with the given features, or NoOnset and false.
func FindOnset(place phonology.Place, manner phonology.Manner) (Onset, bool) {
	o, ok := onsetByFeatures[placeManner{place, manner}]
	return o, ok
}

// Vowel is a Proto-Kasanic vowel. Low and High are the underspecified ablaut
// slots.
type Vowel int

const (
	_ Vowel = iota
	A
	AA
	I
	U
	E
	O
	AI
	AU
	Low
	High
)

type vowelInfo struct {
	name      string
	ipa       string
	low       bool
	frontness phonology.Frontness
}

var vowels = [...]vowelInfo{
	A:    {"A", "ə", false, phonology.Mid},
	AA:   {"AA", "a", true, phonology.Mid},
	I:    {"I", "i", false, phonology.Front},
	U:    {"U", "u", false, phonology.Back},
	E:    {"E", "e", true, phonology.Front},
	O:    {"O", "o", true, phonology.Back},
	AI:   {"AI", "ai̯", true, phonology.Fronting},
	AU:   {"AU", "au̯", true, phonology.Backing},
	Low:  {"LOW", "A", true, phonology.Underspecified},
	High: {"HIGH", "I", false, phonology.Underspecified},
}

// Vowels lists the inventory in order, underspecified slots last.
var Vowels = []Vowel{A, AA, I, U, E, O, AI, AU, Low, High}

func (v Vowel) Name() string                  { return vowels[v].name }
func (v Vowel) IPA() string                   { return vowels[v].ipa }
func (v Vowel) Low() bool                     { return vowels[v].low }
func (v Vowel) Frontness() phonology.Frontness { return vowels[v].frontness }
func (v Vowel) String() string                { return v.Name() }

// Underspecified reports whether v is an ablaut placeholder.
func (v Vowel) Underspecified() bool { return v.Frontness() == phonology.Underspecified }

// FindVowel returns the vowel with the given frontness and height.
func FindVowel(f phonology.Frontness, low bool) (Vowel, bool) {
	for _, v := range Vowels {
		if v.Frontness() == f && v.Low() == low {
			return v, true
		}
	}
	return 0, false
}

// Raise returns the high counterpart of a low monophthong (a→ə, e→i, o→u);
// other vowels are returned unchanged.
func Raise(v Vowel) Vowel {
	switch v {
	case AA:
		return A
	case E:
		return I
	case O:
		return U
	}
	return v
}
