package pk

import (
	"math/rand/v2"

	"github.com/lauvinko/lauvinko/semantics"
)

type weighted[T any] struct {
	items   []T
	weights []int
	total   int
}

func newWeighted[T any](items []T, weights []int) weighted[T] {
	w := weighted[T]{items: items, weights: weights}
	for _, n := range weights {
		w.total += n
	}
	return w
}

func (w weighted[T]) draw(rng *rand.Rand) T {
	stop := rng.IntN(w.total)
	n := 0
	for i, weight := range w.weights {
		n += weight
		if n > stop {
			return w.items[i]
		}
	}
	return w.items[len(w.items)-1]
}

var consonantWeights = []struct {
	onset  Onset
	weight int
}{
	{M, 46}, {N, 100}, {NY, 24}, {NG, 31}, {NGW, 8},
	{P, 18}, {T, 77}, {C, 35}, {K, 88}, {KW, 11},
	{MP, 6}, {NT, 27}, {NC, 7}, {NK, 16}, {NKW, 4},
	{PP, 6}, {TT, 14}, {CC, 10}, {KK, 21}, {KKW, 5},
	{S, 68}, {H, 12},
	{R, 40}, {Y, 52}, {W, 59},
}

func onsetRaffle(emptyWeight int) weighted[Onset] {
	items := []Onset{NoOnset}
	weights := []int{emptyWeight}
	for _, cw := range consonantWeights {
		items = append(items, cw.onset)
		weights = append(weights, cw.weight)
	}
	return newWeighted(items, weights)
}

var (
	initialOnsets  = onsetRaffle(150)
	medialOnsets   = onsetRaffle(30)
	vowelRaffle    = newWeighted([]Vowel{AA, E, O, A, I, U, AI, AU}, []int{100, 72, 61, 52, 85, 44, 32, 27})
	ablautRaffle   = newWeighted([]Vowel{Low, High}, []int{5, 3})
	syllableCounts = newWeighted([]int{2, 3, 4}, []int{3, 7, 2})
)

// RandomMorpheme draws a plausible generic morph for category. Illegal
// onset/vowel pairs are redrawn.
func RandomMorpheme(rng *rand.Rand, category semantics.StemCategory) Morpheme {
	count := syllableCounts.draw(rng)
	syllables := make([]Syllable, 0, count)
	for len(syllables) < count {
		var o Onset
		if len(syllables) == 0 {
			o = initialOnsets.draw(rng)
		} else {
			o = medialOnsets.draw(rng)
		}
		var v Vowel
		if len(syllables) == 0 && !category.Has(semantics.General) {
			v = ablautRaffle.draw(rng)
		} else {
			v = vowelRaffle.draw(rng)
		}
		s, err := NewSyllable(o, v)
		if err != nil {
			continue
		}
		syllables = append(syllables, s)
	}
	return Morpheme{Syllables: syllables}
}

// RandomLemma wraps RandomMorpheme in an anonymous lemma.
func RandomLemma(rng *rand.Rand, category semantics.StemCategory) *Lemma {
	l, err := NewLemma("", "", category, RandomMorpheme(rng, category), nil)
	if err != nil {
		// RandomMorpheme always agrees with the category
		panic(err)
	}
	return l
}
