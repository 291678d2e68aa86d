// Package lv implements Lauvinko: its phonology and transcriptions, the
// diachronic derivation of Lauvinko forms from Proto-Kasanic, the synchronic
// morpheme join, the informal transcription reader and the Lauvinko lexicon.
package lv

import "github.com/lauvinko/lauvinko/phonology"

// Consonant is a Lauvinko consonant. NoConsonant is an empty onset or coda.
type Consonant int

const (
	NoConsonant Consonant = iota
	M
	N
	NG
	P
	T
	C
	K
	S
	H
	L
	Y
	V
	// AGlide is the non-syllabic ɐ̯ offglide. It has no place or manner.
	AGlide
)

type consonantInfo struct {
	name   string
	ipa    string
	place  phonology.Place
	manner phonology.Manner
}

var consonants = [...]consonantInfo{
	NoConsonant: {"", "", phonology.NoPlace, phonology.NoManner},
	M:           {"M", "m", phonology.Labial, phonology.Nasal},
	N:           {"N", "n", phonology.Alveolar, phonology.Nasal},
	NG:          {"NG", "ŋ", phonology.Velar, phonology.Nasal},
	P:           {"P", "p", phonology.Labial, phonology.PlainStop},
	T:           {"T", "t", phonology.Alveolar, phonology.PlainStop},
	C:           {"C", "t͡s", phonology.Alveolar, phonology.Affricate},
	K:           {"K", "k", phonology.Velar, phonology.PlainStop},
	S:           {"S", "s", phonology.Alveolar, phonology.Fricative},
	H:           {"H", "h", phonology.Glottal, phonology.Fricative},
	L:           {"L", "l", phonology.Alveolar, phonology.Approximant},
	Y:           {"Y", "j", phonology.Palatal, phonology.Approximant},
	V:           {"V", "ʋ", phonology.Labial, phonology.Approximant},
	AGlide:      {"A", "ɐ̯", phonology.NoPlace, phonology.NoManner},
}

// Consonants lists the inventory in order, AGlide last.
var Consonants = []Consonant{M, N, NG, P, T, C, K, S, H, L, Y, V, AGlide}

func (c Consonant) Name() string             { return consonants[c].name }
func (c Consonant) IPA() string              { return consonants[c].ipa }
func (c Consonant) Place() phonology.Place   { return consonants[c].place }
func (c Consonant) Manner() phonology.Manner { return consonants[c].manner }

func (c Consonant) String() string {
	if c == NoConsonant {
		return "∅"
	}
	return c.Name()
}

// FindConsonant returns the consonant with the given features.
func FindConsonant(place phonology.Place, manner phonology.Manner) (Consonant, bool) {
	for _, c := range Consonants {
		if c != AGlide && c.Place() == place && c.Manner() == manner {
			return c, true
		}
	}
	return NoConsonant, false
}

// Vowel is a Lauvinko vowel.
type Vowel int

const (
	_ Vowel = iota
	A
	E
	O
	I
)

type vowelInfo struct {
	name      string
	ipa       string
	low       bool
	frontness phonology.Frontness
}

var vowels = [...]vowelInfo{
	A: {"A", "a", true, phonology.Mid},
	E: {"E", "e", true, phonology.Front},
	O: {"O", "o", true, phonology.Back},
	I: {"I", "i", false, phonology.Front},
}

// Vowels lists the inventory in order.
var Vowels = []Vowel{A, E, O, I}

func (v Vowel) Name() string                   { return vowels[v].name }
func (v Vowel) IPA() string                    { return vowels[v].ipa }
func (v Vowel) Low() bool                      { return vowels[v].low }
func (v Vowel) Frontness() phonology.Frontness { return vowels[v].frontness }
func (v Vowel) String() string                 { return v.Name() }

// FindVowel returns the vowel with the given frontness and height.
func FindVowel(f phonology.Frontness, low bool) (Vowel, bool) {
	for _, v := range Vowels {
		if v.Frontness() == f && v.Low() == low {
			return v, true
		}
	}
	return 0, false
}
