package lv

import (
	"fmt"

	"github.com/lauvinko/lauvinko/pk"
)

// Morpheme is a realized Lauvinko morpheme. Original is its virtual original
// form: the Proto-Kasanic syllables it is (or is assumed to be) descended
// from, which Join consults for mutations and vowel qualities lost in the
// modern form. Context is the context the morpheme was realized in and
// Lemma the lemma it is a form of, if any.
type Morpheme struct {
	Surface  SurfaceForm
	Original pk.SurfaceForm
	Mutation pk.Mutation
	Context  Context
	Lemma    *Lemma
}

// Empty reports whether the morpheme has no syllables.
func (m Morpheme) Empty() bool { return len(m.Surface.Syllables) == 0 }

// OriginalInitial is the first onset of the original form.
func (m Morpheme) OriginalInitial() pk.Onset {
	if len(m.Original.Syllables) == 0 {
		return pk.NoOnset
	}
	return m.Original.Syllables[0].Onset
}

// Falavay spells the morpheme from its original form.
func (m Morpheme) Falavay() string {
	return pk.Falavay(m.Original, false)
}

// firstVowel is the original initial vowel, the start of a diphthong.
func (m Morpheme) firstVowel() pk.Vowel {
	if len(m.Original.Syllables) == 0 {
		return protoVowel(m.Surface.Syllables[0].Vowel)
	}
	switch v := m.Original.Syllables[0].Vowel; v {
	case pk.AI, pk.AU:
		return pk.AA
	default:
		return v
	}
}

// lastVowel is the original final vowel, the end of a diphthong.
func (m Morpheme) lastVowel() pk.Vowel {
	if len(m.Original.Syllables) == 0 {
		return protoVowel(m.Surface.Syllables[len(m.Surface.Syllables)-1].Vowel)
	}
	switch v := m.Original.Syllables[len(m.Original.Syllables)-1].Vowel; v {
	case pk.AI:
		return pk.I
	case pk.AU:
		return pk.U
	default:
		return v
	}
}

func epentheticVowel(c Consonant) Vowel {
	switch c {
	case Y:
		return I
	case V:
		return O
	}
	return A
}

// Join concatenates morphemes the way the sound changes would have treated
// them had they been one word, accenting morphemes[accented]. At each
// boundary the following morpheme's original initial, mutated by the pending
// end mutation, is split over the boundary like a medial onset, a
// word-medial h is lost and onsetless syllables are resolved like vowels in
// hiatus.
func Join(morphemes []Morpheme, accented int) (Morpheme, error) {
	j := &joiner{accent: NoAccent}
	var original []pk.Syllable
	stress := pk.NoStress
	pending := pk.NoMutation
	previous := -1
	ctx := NonAugmented

	for i, m := range morphemes {
		macc := NoAccent
		if i == accented {
			ctx = m.Context
			macc = m.Surface.Accent
			if m.Original.Stressed() {
				stress = len(original) + m.Original.Stress
			}
		}
		original = append(original, m.Original.Syllables...)

		if m.Empty() {
			// a zero morpheme passes the pending mutation on unless it has its own
			if m.Mutation != pk.NoMutation {
				pending = m.Mutation
			}
			continue
		}
		cur := append([]Syllable(nil), m.Surface.Syllables...)
		if len(j.syllables) > 0 {
			var err error
			if cur, macc, err = j.boundary(morphemes[previous], m, pending, cur, macc); err != nil {
				return Morpheme{}, fmt.Errorf("join morpheme %d: %w", i, err)
			}
		}
		if i == accented && j.accent == NoAccent && macc != NoAccent {
			j.accent = len(j.syllables) + macc
			j.falling = m.Surface.Falling
		}
		j.syllables = append(j.syllables, cur...)
		pending = m.Mutation
		previous = i
	}

	sf, err := NewSurfaceForm(j.syllables, j.accent, j.falling)
	if err != nil {
		return Morpheme{}, err
	}
	return Morpheme{
		Surface:  sf,
		Original: pk.SurfaceForm{Syllables: original, Stress: stress},
		Mutation: pending,
		Context:  ctx,
	}, nil
}

type joiner struct {
	syllables []Syllable
	accent    int
	falling   bool
}

func (j *joiner) last() *Syllable { return &j.syllables[len(j.syllables)-1] }

// boundary resolves the boundary between the syllables joined so far and cur,
// the syllables of m, whose own accent is at macc. It may rewrite or extend
// the joined syllables and returns what is left of cur.
func (j *joiner) boundary(prevMorph, m Morpheme, pending pk.Mutation, cur []Syllable, macc int) ([]Syllable, int, error) {
	pc := pending.Mutate(m.OriginalInitial())
	if pc == pk.NC && m.OriginalInitial() == pk.NC && len(cur) > 1 && cur[0].Onset == NoConsonant {
		// a medial nc loses the a that word-initial nc grew
		cur = cur[1:]
		if macc > 0 {
			macc--
		}
	}
	if pc != pk.NoOnset {
		coda, onset := N, C
		if pc != pk.NC {
			var simple pk.Onset
			coda, simple = breakProto(pc)
			onset, _ = ProtoInitial(simple)
		}
		if coda != NoConsonant {
			if prev := j.last(); prev.Coda == NoConsonant {
				prev.Coda = coda
			} else {
				c := prev.Coda
				prev.Coda = NoConsonant
				j.syllables = append(j.syllables, Syllable{Onset: c, Vowel: epentheticVowel(c), Coda: coda})
			}
		}
		cur[0].Onset = onset
	}
	if cur[0].Onset == H {
		cur[0].Onset = NoConsonant
	}
	if cur[0].Onset != NoConsonant {
		return cur, macc, nil
	}

	prev := j.last()
	if prev.Coda == AGlide {
		prev.Coda = NoConsonant
	}
	if prev.Coda != NoConsonant {
		cur[0].Onset, prev.Coda = prev.Coda, NoConsonant
		return cur, macc, nil
	}

	v1, v2 := prevMorph.lastVowel(), m.firstVowel()
	nextStressed := macc == 0
	onsetNext := len(cur) > 1 && cur[1].Onset != NoConsonant
	action := resolveHiatus(v1, v2, cur[0].Coda != NoConsonant, nextStressed, onsetNext)
	if action == glide {
		g, ok := hiatusGlide(v1, v2)
		if !ok {
			return nil, 0, fmt.Errorf("%w: no glide between %s and %s", ErrEvolution, v1.IPA(), v2.IPA())
		}
		cur[0].Onset = g
		return cur, macc, nil
	}

	stressed := nextStressed || (j.accent != NoAccent && j.accent == len(j.syllables)-1)
	if action == absorb {
		v, g := v1, offglide(v2)
		switch {
		case v == pk.A && g == V:
			v, g = pk.O, NoConsonant
		case v == pk.A && g == Y:
			v, g = pk.E, NoConsonant
		case g == offglide(v):
			g = NoConsonant
		}
		prev.Vowel, prev.Coda = modernVowel(v, stressed), g
	} else {
		prev.Vowel, prev.Coda = modernVowel(fuseVowels(v1, v2), stressed), cur[0].Coda
	}
	cur = cur[1:]
	if macc != NoAccent {
		if nextStressed {
			j.accent = len(j.syllables) - 1
			j.falling = m.Surface.Falling
		}
		macc--
		if macc < 0 {
			macc = NoAccent
		}
	}
	return cur, macc, nil
}
