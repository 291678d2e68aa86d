package pk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhonemes(t *testing.T) {
	m := MustParse("siruwai+N")
	assert.Equal(t, R, m.Syllables[1].Onset)
	assert.Equal(t, AI, m.Syllables[2].Vowel)
	assert.Equal(t, Nasalization, m.Mutation)

	m = MustParse("kwaasa")
	assert.Equal(t, KW, m.Syllables[0].Onset)
	assert.Equal(t, AA, m.Syllables[0].Vowel)
	assert.Equal(t, A, m.Syllables[1].Vowel)

	m = MustParse("tt@+L")
	assert.Equal(t, TT, m.Syllables[0].Onset)
	assert.Equal(t, Low, m.Syllables[0].Vowel)

	m = MustParse("ngw~")
	assert.Equal(t, NGW, m.Syllables[0].Onset)
	assert.Equal(t, High, m.Syllables[0].Vowel)

	m = MustParse("a'a")
	require.Len(t, m.Syllables, 2)
	assert.Equal(t, NoOnset, m.Syllables[0].Onset)
	assert.Equal(t, NoOnset, m.Syllables[1].Onset)
}

func TestMutationParsing(t *testing.T) {
	tests := []struct {
		text string
		want Mutation
	}{
		{"ma+L", Lenition},
		{"sitaimo+F", Fortition},
		{"rauwaso+N", Nasalization},
		{"ma", NoMutation},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParse(tt.text).Mutation, tt.text)
	}
}

func TestZeroMorpheme(t *testing.T) {
	m := MustParse("")
	assert.True(t, m.Empty())
	assert.Equal(t, NoMutation, m.Mutation)

	m = MustParse("+F")
	assert.True(t, m.Empty())
	assert.Equal(t, Fortition, m.Mutation)
}

func TestInvalidTranscriptions(t *testing.T) {
	for _, text := range []string{"mmo", "mii", "ssu", "roi", "laala", "va", "umti", "ba", "da", "ga", "anwa", "ap"} {
		_, err := ParseMorpheme(text)
		assert.ErrorIs(t, err, ErrInvalidTranscription, text)
	}
}

func TestInvalidSyllables(t *testing.T) {
	_, err := ParseMorpheme("wuri")
	require.ErrorIs(t, err, ErrInvalidSyllable)
	assert.Equal(t, "invalid syllable: wu", err.Error())

	_, err = ParseMorpheme("ruyi")
	require.ErrorIs(t, err, ErrInvalidSyllable)
	assert.Equal(t, "invalid syllable: yi", err.Error())

	_, err = ParseMorpheme("war@")
	assert.ErrorIs(t, err, ErrInvalidSyllable)
}

func TestMakeValid(t *testing.T) {
	assert.Equal(t, Syllable{K, U}, MakeValid(KW, U))
	assert.Equal(t, Syllable{NoOnset, U}, MakeValid(W, U))
	assert.Equal(t, Syllable{NoOnset, I}, MakeValid(Y, I))
	assert.Equal(t, Syllable{KW, I}, MakeValid(KW, I))
}

func TestMutationTotality(t *testing.T) {
	for _, m := range []Mutation{NoMutation, Lenition, Fortition, Nasalization} {
		for _, o := range append([]Onset{NoOnset}, Onsets...) {
			got := m.Mutate(o)
			assert.LessOrEqual(t, int(got), int(H), "%s(%s)", m, o)
		}
	}
	assert.Equal(t, N, Nasalization.Mutate(NoOnset))
	assert.Equal(t, NoOnset, Lenition.Mutate(NoOnset))
	assert.Equal(t, NC, Lenition.Mutate(NC))
	assert.Equal(t, NKW, Nasalization.Mutate(KW))
}

func TestBroadTranscription(t *testing.T) {
	sf, err := MustParse("mpaari'okka").SurfaceForm(0)
	require.NoError(t, err)
	assert.Equal(t, "ˈᵐpa.ri.o.ˀkə", sf.BroadTranscription())

	sf, err = MustParse("ncewi").SurfaceForm(1)
	require.NoError(t, err)
	assert.Equal(t, "ᶮt͡ɕe.ˈwi", sf.BroadTranscription())

	sf, err = MustParse("tti").SurfaceForm(NoStress)
	require.NoError(t, err)
	assert.Equal(t, "ˀti", sf.BroadTranscription())
	assert.Equal(t, sf.BroadTranscription(), sf.NarrowTranscription())
}

func TestInvalidStress(t *testing.T) {
	_, err := MustParse("a").SurfaceForm(1)
	assert.ErrorIs(t, err, ErrInvalidStress)

	_, err = MustParse("").SurfaceForm(1)
	assert.ErrorIs(t, err, ErrInvalidStress)

	sf, err := MustParse("").SurfaceForm(0)
	require.NoError(t, err)
	assert.False(t, sf.Stressed())
}

func TestAlphabeticalKey(t *testing.T) {
	a, _ := MustParse("aka").SurfaceForm(0)
	b, _ := MustParse("kaa").SurfaceForm(0)
	c, _ := MustParse("kaata").SurfaceForm(0)
	assert.Less(t, a.AlphabeticalKey(), b.AlphabeticalKey())
	assert.Less(t, b.AlphabeticalKey(), c.AlphabeticalKey())
}
