package lauvinko

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

const dictionaryFile = "data/dictionary.json"

func loadTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	d, err := Load(dictionaryFile)
	require.NoError(t, err)
	return d
}

func historical(t *testing.T, text string) string {
	t.Helper()
	m, err := lv.ParseMorpheme(text)
	require.NoError(t, err, text)
	return m.Surface.HistoricalTranscription()
}

func TestLoad(t *testing.T) {
	d := loadTestDictionary(t)
	assert.Equal(t, len(pk.AllPrefixes())+9, d.Len())
	entries := d.Entries()
	for i := 1; i < len(entries); i++ {
		assert.Less(t, NormalizeIdent(entries[i-1].Ident), NormalizeIdent(entries[i].Ident), "entries not sorted at %d", i)
	}
}

func TestEntryLookup(t *testing.T) {
	d := loadTestDictionary(t)

	e, err := d.Entry(" Rice ")
	require.NoError(t, err)
	assert.Equal(t, semantics.Uninflected, e.Category)
	assert.Equal(t, semantics.Kasanic, e.Origin)
	assert.Equal(t, "husked rice", e.Definition(semantics.ProtoKasanic))
	assert.Equal(t, "rice", e.Definition(semantics.Lauvinko))

	_, err = d.Entry("nonesuch")
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestEntryForms(t *testing.T) {
	d := loadTestDictionary(t)
	tests := []struct {
		ident string
		ta    semantics.TenseAspect
		ctx   lv.Context
		want  string
	}{
		{"leaf", semantics.General, lv.Augmented, "pa/le+N"},
		{"leaf", semantics.General, lv.NonAugmented, `pa\le+N`},
		{"rice", semantics.General, lv.Augmented, "o/kka"},
		{"rice", semantics.General, lv.NonAugmented, "o/k"},
		{"cut", semantics.ImperfectiveNonpast, lv.NonAugmented, "ta/u"},
		{"cut", semantics.FrequentativePast, lv.NonAugmented, "totto/"},
		{"coffee", semantics.General, lv.NonAugmented, `ko\pi`},
	}
	for _, tc := range tests {
		e, err := d.Entry(tc.ident)
		require.NoError(t, err)
		m, err := e.LV.Form(tc.ta, tc.ctx)
		if !assert.NoError(t, err, "%s %s %s", tc.ident, tc.ta, tc.ctx) {
			continue
		}
		assert.Equal(t, historical(t, tc.want), m.Surface.HistoricalTranscription(), "%s %s %s", tc.ident, tc.ta, tc.ctx)
	}
}

func TestProtoOverrides(t *testing.T) {
	d := loadTestDictionary(t)
	e, err := d.Entry("grow")
	require.NoError(t, err)
	assert.True(t, e.PK.Overridden(semantics.ImperfectivePast))
	stem, err := e.PK.Form(semantics.ImperfectivePast)
	require.NoError(t, err)
	sf, err := stem.SurfaceForm()
	require.NoError(t, err)
	assert.Equal(t, "ˈpo.ro", sf.NarrowTranscription())

	key := lv.FormKey{TenseAspect: semantics.Inceptive, Context: lv.NonAugmented}
	assert.True(t, e.LV.Overridden(key), key.String())
	m, err := e.LV.Form(semantics.Inceptive, lv.NonAugmented)
	require.NoError(t, err)
	assert.Equal(t, historical(t, "se/yo"), m.Surface.HistoricalTranscription())
	assert.Equal(t, "to grow up", e.LV.Definition)
}

func TestLoanwordMissingForm(t *testing.T) {
	d := loadTestDictionary(t)
	e, err := d.Entry("coffee")
	require.NoError(t, err)
	assert.Nil(t, e.PK, "a loanword has no Proto-Kasanic lemma")
	_, err = e.LV.Form(semantics.General, lv.Prefixed)
	assert.ErrorIs(t, err, lv.ErrInvalidOrigin)
	lang, word := e.LV.Origin.Source()
	assert.Equal(t, semantics.Malay, lang)
	assert.Equal(t, "kopi", word)
}

func TestParadigm(t *testing.T) {
	d := loadTestDictionary(t)
	e, err := d.Entry("rice")
	require.NoError(t, err)
	forms, err := e.Paradigm()
	require.NoError(t, err)
	require.Len(t, forms, 1+len(lv.Contexts))
	assert.Equal(t, semantics.ProtoKasanic, forms[0].Language)
	assert.Equal(t, "gn", forms[0].Key())
	assert.NotEmpty(t, forms[0].Falavay)
	for _, f := range forms[1:] {
		assert.Equal(t, semantics.Lauvinko, f.Language)
		assert.NotEmpty(t, f.Historical, f.Key())
		// every Lauvinko form keeps the Proto-Kasanic spelling
		assert.Equal(t, forms[0].Falavay, f.Falavay, f.Key())
	}

	coffee, err := d.Entry("coffee")
	require.NoError(t, err)
	forms, err = coffee.Paradigm()
	require.NoError(t, err)
	assert.Len(t, forms, 2)
}

func TestPrefixEntries(t *testing.T) {
	d := loadTestDictionary(t)
	tests := map[string]semantics.MSType{
		"if":     semantics.ModalPrefix,
		"$swrf$": semantics.ModalPrefix,
		"$pro$":  semantics.TertiaryAspectPrefix,
		"$t1s$":  semantics.TopicAgreementPrefix,
		"$tdat$": semantics.TopicCasePrefix,
		"$dep$":  semantics.TopicCasePrefix,
	}
	for ident, want := range tests {
		e, err := d.Entry(ident)
		if !assert.NoError(t, err, ident) {
			continue
		}
		assert.Equal(t, want, e.Type, ident)
		assert.Equal(t, want, e.LV.Type, ident)
	}

	// the third person animate singular marker is a zero morpheme
	e, err := d.Entry("$t3as$")
	require.NoError(t, err)
	m, err := e.LV.Form(semantics.General, lv.Prefixed)
	require.NoError(t, err)
	assert.True(t, m.Empty(), m.Informal())
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"bad json":       `{`,
		"bad origin":     `{"x": {"origin": "klingon", "category": "uninflected", "languages": {}}}`,
		"bad category":   `{"x": {"origin": "malay", "category": "nounish", "languages": {}}}`,
		"missing pk":     `{"x": {"origin": "kasanic", "category": "uninflected", "languages": {"lv": {"forms": {}}}}}`,
		"missing gn":     `{"x": {"origin": "kasanic", "category": "uninflected", "languages": {"pk": {"forms": {}}}}}`,
		"ablaut":         `{"x": {"origin": "kasanic", "category": "fientive", "languages": {"pk": {"forms": {"gn": "toka"}}}}}`,
		"lv form key":    `{"x": {"origin": "malay", "category": "uninflected", "languages": {"lv": {"forms": {"gn": "ko/pi"}}}}}`,
		"lv tense":       `{"x": {"origin": "malay", "category": "uninflected", "languages": {"lv": {"forms": {"pf.na": "ko/pi"}}}}}`,
		"lv form":        `{"x": {"origin": "malay", "category": "uninflected", "languages": {"lv": {"forms": {"gn.na": "xx"}}}}}`,
		"duplicate":      `{"if": {"origin": "malay", "category": "uninflected", "languages": {}}}`,
		"pk override ta": `{"x": {"origin": "kasanic", "category": "uninflected", "languages": {"pk": {"forms": {"gn": "okka", "zz": "okka"}}}}}`,
	}
	for name, src := range tests {
		_, err := New(strings.NewReader(src))
		assert.Error(t, err, name)
	}

	_, err := New(strings.NewReader(tests["bad origin"]))
	assert.ErrorIs(t, err, lv.ErrInvalidOrigin)
	_, err = New(strings.NewReader(tests["lv tense"]))
	assert.ErrorIs(t, err, semantics.ErrNonexistentForm)
}

func TestWhere(t *testing.T) {
	d := loadTestDictionary(t)
	fientive := d.Where(func(e *Entry) bool { return e.Category == semantics.Fientive })
	assert.Equal(t, 5, fientive.Len())
	_, err := fientive.Entry("rice")
	assert.ErrorIs(t, err, ErrUnknownEntry)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "if-cut=rice", NormalizeGloss("if\u2011cut\uff1drice"))
	assert.Equal(t, "$t1s$", NormalizeIdent("  $T1S$ "))
}
