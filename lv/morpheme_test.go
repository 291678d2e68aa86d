package lv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// evolvedPiece evolves one morpheme of a two-morpheme join the way it would
// be realized in front of or after the accented one.
func evolvedPiece(t *testing.T, m pk.Morpheme, accented, left bool, ctx Context) Morpheme {
	t.Helper()
	stress := 0
	switch {
	case accented:
	case left:
		ctx = Prefixed
	default:
		ctx, stress = Augmented, pk.NoStress
	}
	sf, err := m.SurfaceForm(stress)
	require.NoError(t, err)
	lsf, err := Evolve(sf, ctx)
	require.NoError(t, err, m.Transcription())
	return Morpheme{Surface: lsf, Original: sf, Mutation: m.Mutation, Context: ctx}
}

func TestJoinMatchesEvolution(t *testing.T) {
	tests := []struct {
		left, right string
		accented    int
		ctx         Context
	}{
		{"ke'e", "enye", 0, NonAugmented},
		{"kaakowaa", "aacuhaa", 0, NonAugmented},
		{"taamatau", "enaakike", 1, NonAugmented},
		{"nihama", "aayausu", 0, Augmented},
		{"umiyomi", "ncaunkimaa", 1, NonAugmented},
		{"wewe", "ncaacauyu", 1, Augmented},
		{"painkwaica", "ncaunyunamaa", 0, NonAugmented},
		{"kaamaani", "nceni", 0, NonAugmented},
		{"ceronai", "ntonaime", 1, NonAugmented},
		{"kkwamakotai", "nkwentutaunti", 0, Augmented},
		{"onaa", "nkwaarauni", 0, Augmented},
		{"naa'o", "kkenaayaa", 1, NonAugmented},
		{"kkaancaanga", "kanta", 0, Augmented},
		{"nkuse'aa", "yaakaakki", 1, NonAugmented},
		{"kesa", "kkwaiketaankaa", 0, NonAugmented},
		{"yamera", "ntaunusecai", 1, Augmented},
		{"tinga", "kkuttisai", 0, NonAugmented},
	}
	for _, tc := range tests {
		a, b := pk.MustParse(tc.left), pk.MustParse(tc.right)

		joined, err := pk.JoinMorphemes([]pk.Morpheme{a, b}, tc.accented)
		require.NoError(t, err)
		want, err := Evolve(joined, tc.ctx)
		require.NoError(t, err)

		pieces := []Morpheme{
			evolvedPiece(t, a, tc.accented == 0, true, tc.ctx),
			evolvedPiece(t, b, tc.accented == 1, false, tc.ctx),
		}
		got, err := Join(pieces, tc.accented)
		require.NoError(t, err, "%s+%s", tc.left, tc.right)

		assert.Equal(t, want.HistoricalTranscription(), got.Surface.HistoricalTranscription(),
			"%s+%s accented %d %s", tc.left, tc.right, tc.accented, tc.ctx)
		assert.Equal(t, pk.Falavay(joined, false), pieces[0].Falavay()+pieces[1].Falavay())
		assert.Len(t, got.Original.Syllables, len(joined.Syllables))
	}
}

func TestJoinEpenthesis(t *testing.T) {
	// a complex onset meeting a coda gets an epenthetic syllable
	prev := MustParse("pay")
	next := Morpheme{
		Surface:  MustParse("ka/").Surface,
		Original: pk.SurfaceForm{Syllables: []pk.Syllable{{Onset: pk.KK, Vowel: pk.AA}}, Stress: 0},
	}
	got, err := Join([]Morpheme{prev, next}, 1)
	require.NoError(t, err)
	assert.Equal(t, []Syllable{
		{Onset: P, Vowel: A},
		{Onset: Y, Vowel: I, Coda: K},
		{Onset: K, Vowel: A},
	}, got.Surface.Syllables)
	assert.Equal(t, 2, got.Surface.Accent)
}

func TestJoinMutation(t *testing.T) {
	// the pending mutation applies to the original initial of the next morpheme
	prefix := MustParse("i+N")
	stem := Morpheme{
		Surface:  MustParse("ta/").Surface,
		Original: pk.SurfaceForm{Syllables: []pk.Syllable{{Onset: pk.T, Vowel: pk.AA}}, Stress: 0},
	}
	got, err := Join([]Morpheme{prefix, stem}, 1)
	require.NoError(t, err)
	assert.Equal(t, "in.tá", got.Surface.HistoricalTranscription())
	assert.Equal(t, pk.NoMutation, got.Mutation)

	// an empty morpheme passes the mutation on
	empty := Morpheme{Mutation: pk.NoMutation}
	got, err = Join([]Morpheme{prefix, empty, stem}, 2)
	require.NoError(t, err)
	assert.Equal(t, "in.tá", got.Surface.HistoricalTranscription())
}

func TestJoinHiddenH(t *testing.T) {
	got, err := Join([]Morpheme{MustParse("pa"), MustParse("ho/")}, 1)
	require.NoError(t, err)
	require.True(t, got.Surface.Accented())
	for _, s := range got.Surface.Syllables {
		assert.NotEqual(t, H, s.Onset)
	}
}

func TestLemmaOverrides(t *testing.T) {
	p, err := pk.NewLemma("t@", "", semantics.Fientive, pk.MustParse("t@"), nil)
	require.NoError(t, err)
	override := MustParse("ta/ko")
	key := FormKey{TenseAspect: semantics.ImperfectiveNonpast, Context: NonAugmented}
	l, err := FromProto(p, "to cut", map[FormKey]Morpheme{key: override})
	require.NoError(t, err)
	assert.Equal(t, "to cut", l.Definition)
	assert.True(t, l.Overridden(key))

	got, err := l.Form(semantics.ImperfectiveNonpast, NonAugmented)
	require.NoError(t, err)
	assert.Equal(t, override.Surface, got.Surface)
	assert.Same(t, l, got.Lemma)

	generated, err := l.Form(semantics.ImperfectiveNonpast, Augmented)
	require.NoError(t, err)
	assert.NotEqual(t, override.Surface, generated.Surface)

	_, err = l.Form(semantics.General, Augmented)
	assert.True(t, errors.Is(err, semantics.ErrNonexistentForm))

	_, err = FromProto(p, "", map[FormKey]Morpheme{{TenseAspect: semantics.General}: override})
	assert.True(t, errors.Is(err, semantics.ErrNonexistentForm))
}

func TestLemmaCache(t *testing.T) {
	l := protoLemma(t, "paaraye+N", semantics.Uninflected)
	a, err := l.CitationForm(NonAugmented)
	require.NoError(t, err)
	b, err := l.CitationForm(NonAugmented)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, NonAugmented, a.Context)
}

func TestOrigins(t *testing.T) {
	unspecified, err := NewLemma("x", "", semantics.Uninflected, semantics.Independent, UnspecifiedOrigin{}, nil)
	require.NoError(t, err)
	_, err = unspecified.Form(semantics.General, Augmented)
	assert.True(t, errors.Is(err, ErrInvalidOrigin))
	assert.Contains(t, err.Error(), "missing general augmented")

	loan := GenericOrigin{Language: semantics.Malay, Word: "kopi"}
	key := FormKey{TenseAspect: semantics.General, Context: NonAugmented}
	l, err := NewLemma("kopi", "coffee", semantics.Uninflected, semantics.Independent, loan,
		map[FormKey]Morpheme{key: MustParse(`ko\pi`)})
	require.NoError(t, err)
	_, err = l.Form(semantics.General, NonAugmented)
	assert.NoError(t, err)
	_, err = l.Form(semantics.General, Augmented)
	assert.True(t, errors.Is(err, ErrInvalidOrigin))

	lang, word := l.Origin.Source()
	assert.Equal(t, semantics.Malay, lang)
	assert.Equal(t, "kopi", word)

	lang, word = ProtoOrigin{Lemma: pkLemmaFor(t, "okka")}.Source()
	assert.Equal(t, semantics.Kasanic, lang)
	assert.Equal(t, "okka", word)
}

func pkLemmaFor(t *testing.T, text string) *pk.Lemma {
	t.Helper()
	p, err := pk.NewLemma(text, "", semantics.Uninflected, pk.MustParse(text), nil)
	require.NoError(t, err)
	return p
}

func prefixLemma(t *testing.T, name, text string, mstype semantics.MSType) Morpheme {
	t.Helper()
	p := pkLemmaFor(t, text)
	p.Type = mstype
	l, err := FromProto(p, name, nil)
	require.NoError(t, err)
	l.Ident = name
	m, err := l.Form(semantics.General, Prefixed)
	require.NoError(t, err)
	return m
}

func TestWord(t *testing.T) {
	stem, err := protoLemma(t, "peca", semantics.Uninflected).Form(semantics.General, Augmented)
	require.NoError(t, err)
	modal := prefixLemma(t, "$may$", "ma", semantics.ModalPrefix)

	w, err := NewWord([]Morpheme{modal}, stem)
	require.NoError(t, err)
	assert.Len(t, w.Prefixes.Modal, 1)
	assert.Equal(t, []Morpheme{modal, stem}, w.Morphemes())

	sf := w.SurfaceForm()
	require.True(t, sf.Accented())
	assert.Equal(t, modal.Falavay()+stem.Falavay(), w.Falavay())

	agreement := prefixLemma(t, "$t1s$", "ka", semantics.TopicAgreementPrefix)
	_, err = NewWord([]Morpheme{agreement}, stem)
	assert.True(t, errors.Is(err, semantics.ErrMorphemeOrder))
}

func TestCases(t *testing.T) {
	dat, err := ParseCase("dat")
	require.NoError(t, err)
	assert.True(t, dat.Augment)
	assert.Equal(t, Augmented, dat.Context())

	abl, err := ParseCase("abl")
	require.NoError(t, err)
	assert.Equal(t, NonAugmented, abl.Context())

	_, err = ParseCase("gen")
	assert.Error(t, err)
	assert.Len(t, Cases, 9)
}

func TestFormKey(t *testing.T) {
	k, err := ParseFormKey("imnp.na")
	require.NoError(t, err)
	assert.Equal(t, FormKey{TenseAspect: semantics.ImperfectiveNonpast, Context: NonAugmented}, k)
	assert.Equal(t, "imnp.na", k.String())

	for _, bad := range []string{"imnp", "xx.na", "imnp.xx"} {
		_, err := ParseFormKey(bad)
		assert.Error(t, err, bad)
	}
}
