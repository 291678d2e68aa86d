package lv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

func TestParseMorpheme(t *testing.T) {
	m, err := ParseMorpheme("nca/ke+L")
	require.NoError(t, err)
	assert.Equal(t, []Syllable{
		{Vowel: A, Coda: N},
		{Onset: C, Vowel: A},
		{Onset: K, Vowel: E},
	}, m.Surface.Syllables)
	assert.Equal(t, 1, m.Surface.Accent)
	assert.False(t, m.Surface.Falling)
	assert.Equal(t, pk.Lenition, m.Mutation)

	// the virtual original form skips the a grown before nc
	assert.Equal(t, pk.SurfaceForm{
		Syllables: []pk.Syllable{{Onset: pk.NC, Vowel: pk.AA}, {Vowel: pk.E}},
		Stress:    0,
	}, m.Original)
}

func TestParseMorphemeInitials(t *testing.T) {
	tests := map[string]pk.Onset{
		"kwo/lenta": pk.KW,
		"nkwe/ke":   pk.NKW,
		"vo/k":      pk.W,
		"la/pam":    pk.R,
		"tte/n":     pk.TT,
		"nyayi/s":   pk.NY,
		"o/k":       pk.NoOnset,
	}
	for text, want := range tests {
		m, err := ParseMorpheme(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, m.OriginalInitial(), text)
	}
}

func TestParseMorphemeCodas(t *testing.T) {
	m, err := ParseMorpheme("pahtarau")
	require.NoError(t, err)
	assert.Equal(t, []Syllable{
		{Onset: P, Vowel: A, Coda: K},
		{Onset: T, Vowel: A},
		{Onset: L, Vowel: A, Coda: V},
	}, m.Surface.Syllables)
	assert.False(t, m.Surface.Accented())
}

func TestInvalidTranscriptions(t *testing.T) {
	tests := []string{
		"",
		"k",
		"nc",
		"xa",
		"pa/n/",
		"pa/\\",
		"pakt",
		"paaa",
		"pae",
		"+N",
	}
	for _, text := range tests {
		_, err := ParseMorpheme(text)
		require.Error(t, err, "%q", text)
		assert.True(t, errors.Is(err, ErrInvalidTranscription) ||
			errors.Is(err, ErrInvalidSyllable) ||
			errors.Is(err, ErrInvalidSurfaceForm), "%q: %v", text, err)
	}
}

func TestInformalRoundTrip(t *testing.T) {
	var texts []string
	for _, tc := range protoCorpus {
		texts = append(texts, tc.augmented, tc.nonaugmented)
	}
	texts = append(texts,
		"ta/u", "itta/u", "tette/u", "totto/", "inpe\\li", "kako\\li",
		"anca\\", "ancence\\", "ninti/lak", "nanto/lak",
		"ttayno+N", "socya\\ng+N", "se\\anor+F", "nca/ye+L",
	)
	for _, text := range texts {
		m, err := ParseMorpheme(text)
		require.NoError(t, err, text)
		assert.Equal(t, text, m.Informal())
	}
}

func TestInformalOfEvolvedForms(t *testing.T) {
	for _, tc := range protoCorpus {
		l := protoLemma(t, tc.proto, semantics.Uninflected)
		for _, ctx := range []Context{Augmented, NonAugmented} {
			m, err := l.Form(semantics.General, ctx)
			require.NoError(t, err)
			back, err := ParseMorpheme(m.Informal())
			require.NoError(t, err, m.Informal())
			assert.Equal(t, m.Surface.HistoricalTranscription(), back.Surface.HistoricalTranscription(), tc.proto)
			assert.Equal(t, m.OriginalInitial(), back.OriginalInitial(), tc.proto)
		}
	}
}

func TestRomanize(t *testing.T) {
	tests := []struct{ text, want string }{
		{"pa/le", "pále"},
		{"se\\anor", "sèanor"},
		{"nca/ke", "ancáke"},
		{"nca/y", "ancáy"},
		{"tte/kin", "téking"},
		{"tte/n", "téng"},
		{"vo/kka", "vókka"},
		{"vo/k", "vóh"},
		{"la/ppam", "láppang"},
		{"la/pam", "lápang"},
		{"a/nta", "ánta"},
		{"a/n", "áng"},
		{"a/nti", "ánti"},
		{"a/ni", "áni"},
		{"avo/nta", "avónta"},
		{"avo/n", "avóng"},
		{"pe/c", "pés"},
		{"pe/s", "pés"},
		{"pa/y", "páy"},
		{"o/kka", "ókka"},
		{"o/k", "óh"},
		{"o/p", "óh"},
		{"o/", "ó"},
		{"kwo/lenta", "pólenta"},
		{"kwo\\linta", "pòlinta"},
		{"co/ntes", "cóntes"},
		{"co/nis", "cónis"},
		{"nyayi\\s", "nayìs"},
		{"a/tli", "áhli"},
		{"a/lli", "álli"},
		{"yavo/ppami", "yavóppami"},
		{"yavo/pmi", "yavóhmi"},
		{"o/kay", "ókay"},
		{"o/ayi", "óayi"},
		{"nkwe/kke", "mékke"},
		{"nkwe/ke", "méke"},
		{"e/kkangi", "ékkangi"},
		{"e/kngi", "éhngi"},
		{"ka\\ming", "kàming"},
		{"i\\lay", "ìlay"},
		{"ngo\\yang", "ngòyang"},
		{"kwayi/nta", "payínta"},
		{"kwayi/n", "payíng"},
		{"he\\nacvi", "hènasvi"},
		{"ko/nkapir", "kónkapir"},
		{"ko/ngpir", "kómpir"},
		{"ma/tcop", "máccoh"},
		{"ma/cap", "mácah"},
		{"me\\k", "mèh"},
		{"ko/nca", "kónca"},
		{"ko/nsa", "kónsa"},
		{"o/ksan", "óssang"},
		{"o/asan", "óasang"},
		{"so\\y", "sòy"},
		{"so/kar", "sókar"},
		{"so/ala", "sóala"},
		{"to/pay", "tópay"},
		{"to/ve", "tóve"},
		{"atca", "acca"},
		{"acca", "asca"},
		{"acsa", "assa"},
		{"alya", "alya"},
		{"alla", "alla"},
		{"alva", "arva"},
		{"alnga", "arnga"},
		{"atya", "acya"},
		{"acya", "acya"},
		{"asya", "asya"},
	}
	for _, tc := range tests {
		m, err := ParseMorpheme(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, norm.NFC.String(tc.want), Romanize(m.Surface), tc.text)
	}
}
