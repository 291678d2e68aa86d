package lv

import (
	"github.com/lauvinko/lauvinko/phonology"
	"github.com/lauvinko/lauvinko/pk"
)

// protoInitials maps every Proto-Kasanic onset but NC to the Lauvinko
// consonant it became word-initially. Stops and preglottalized stops became
// plain stops (affricates at the palatal place), prenasalized stops became
// nasals, palatals other than y became alveolar and labiovelars labial.
var protoInitials = func() map[pk.Onset]Consonant {
	m := make(map[pk.Onset]Consonant, len(pk.Onsets))
	for _, o := range pk.Onsets {
		if o == pk.NC {
			continue
		}
		manner := o.Manner()
		switch manner {
		case phonology.PlainStop, phonology.PreglottalizedStop:
			manner = phonology.PlainStop
			if o.Place() == phonology.Palatal {
				manner = phonology.Affricate
			}
		case phonology.PrenasalizedStop:
			manner = phonology.Nasal
		}
		place := o.Place()
		switch {
		case place == phonology.Palatal && o.Manner() != phonology.Approximant:
			place = phonology.Alveolar
		case place == phonology.Labiovelar:
			place = phonology.Labial
		}
		c, ok := FindConsonant(place, manner)
		if !ok {
			panic("lv: no Lauvinko reflex for " + o.Name())
		}
		m[o] = c
	}
	return m
}()

// ProtoInitial returns the word-initial Lauvinko reflex of o. NC has none:
// word-initially it became the sequence ant͡s.
func ProtoInitial(o pk.Onset) (Consonant, bool) {
	c, ok := protoInitials[o]
	return c, ok
}

// breakProto splits a complex Proto-Kasanic onset into a Lauvinko coda for
// the preceding syllable and the simple Proto-Kasanic onset left behind.
// Prenasalized stops leave n, preglottalized stops a copy of the stop (t for
// the affricate). Other onsets are returned whole.
func breakProto(o pk.Onset) (Consonant, pk.Onset) {
	switch o.Manner() {
	case phonology.PrenasalizedStop:
		simple, _ := pk.FindOnset(o.Place(), phonology.PlainStop)
		return N, simple
	case phonology.PreglottalizedStop:
		simple, _ := pk.FindOnset(o.Place(), phonology.PlainStop)
		coda := protoInitials[simple]
		if coda.Manner() == phonology.Affricate {
			coda = T
		}
		return coda, simple
	}
	return NoConsonant, o
}

// offglide is the glide a vowel ends on: j for front vowels, ʋ for back ones
// and ɐ̯ otherwise.
func offglide(v pk.Vowel) Consonant {
	switch v.Frontness() {
	case phonology.Front:
		return Y
	case phonology.Back:
		return V
	}
	return AGlide
}

// ownOffglide is the coda a Lauvinko vowel cannot take because it would only
// repeat the vowel.
func ownOffglide(v Vowel) Consonant {
	switch {
	case v == O:
		return V
	case v.Frontness() == phonology.Front:
		return Y
	case v == A:
		return AGlide
	}
	return NoConsonant
}

// fuseVowels merges two vowels in hiatus. After ə the second vowel's quality
// survives as a low vowel; otherwise the second one's frontness wins unless
// it is mid, and the result is low if either was.
func fuseVowels(v1, v2 pk.Vowel) pk.Vowel {
	if v1 == pk.A {
		v, _ := pk.FindVowel(v2.Frontness(), true)
		return v
	}
	f := v2.Frontness()
	if f == phonology.Mid {
		f = v1.Frontness()
	}
	v, _ := pk.FindVowel(f, v1.Low() || v2.Low())
	return v
}

// hiatusGlide returns the glide inserted between v1 and v2: the first front
// or back vowel decides.
func hiatusGlide(v1, v2 pk.Vowel) (Consonant, bool) {
	for _, v := range []pk.Vowel{v1, v2} {
		switch v.Frontness() {
		case phonology.Front:
			return Y, true
		case phonology.Back:
			return V, true
		}
	}
	return NoConsonant, false
}

type hiatusAction int

const (
	absorb hiatusAction = iota
	fuse
	glide
)

// resolveHiatus chooses how v1 followed by an onsetless v2 is resolved.
// closed reports whether v2's syllable has a coda, stressed whether it is
// stressed and onsetNext whether the syllable after it has an onset.
func resolveHiatus(v1, v2 pk.Vowel, closed, stressed, onsetNext bool) hiatusAction {
	switch v2 {
	case pk.I, pk.U:
		switch {
		case closed:
			if v1 == pk.A || v1.Frontness() == v2.Frontness() {
				return fuse
			}
			return glide
		case stressed && onsetNext:
			return glide
		}
		return absorb
	case pk.A, pk.AA:
		if closed {
			return fuse
		}
		return absorb
	}
	switch {
	case v1 == pk.A || v1 == v2 || (v1 == pk.E && v2 == pk.O):
		return fuse
	case v1.Frontness() == phonology.Back && v2 == pk.E:
		return absorb
	}
	return glide
}

// modernVowel converts a Proto-Kasanic monophthong to its Lauvinko reflex:
// ə and u became e and o under stress and a elsewhere.
func modernVowel(v pk.Vowel, stressed bool) Vowel {
	switch v {
	case pk.A:
		if stressed {
			return E
		}
		return A
	case pk.U:
		if stressed {
			return O
		}
		return A
	case pk.AA:
		return A
	case pk.E:
		return E
	case pk.O:
		return O
	}
	return I
}

// protoVowel is the Proto-Kasanic vowel a Lauvinko vowel is assumed to
// continue when nothing better is known.
func protoVowel(v Vowel) pk.Vowel {
	switch v {
	case A:
		return pk.AA
	case E:
		return pk.E
	case O:
		return pk.O
	}
	return pk.I
}
