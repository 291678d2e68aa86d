package lauvinko

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/lauvinko/lauvinko/lv"
	"github.com/lauvinko/lauvinko/pk"
	"github.com/lauvinko/lauvinko/semantics"
)

// jsonEntry is one value of the top-level dictionary object, keyed by
// identifier.
type jsonEntry struct {
	Origin    string                  `json:"origin"`
	Category  string                  `json:"category"`
	MSType    string                  `json:"mstype,omitempty"`
	Source    string                  `json:"source,omitempty"`
	Languages map[string]jsonLanguage `json:"languages"`
}

type jsonLanguage struct {
	Definition string              `json:"definition"`
	Forms      map[string]jsonForm `json:"forms"`
}

// jsonForm is a transcription, written either as a bare string or as
// {"phonemic": "..."}.
type jsonForm struct {
	Phonemic string `json:"phonemic"`
}

func (f *jsonForm) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &f.Phonemic)
	}
	type plain jsonForm
	return json.Unmarshal(b, (*plain)(f))
}

// Load reads the dictionary file at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	d, err := New(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// New parses a JSON dictionary from r and adds the built-in prefixes.
func New(r io.Reader) (*Dictionary, error) {
	var raw map[string]jsonEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	entries, err := PrefixEntries()
	if err != nil {
		return nil, err
	}
	idents := make([]string, 0, len(raw))
	for ident := range raw {
		idents = append(idents, ident)
	}
	slices.Sort(idents)
	for _, ident := range idents {
		e, err := parseEntry(ident, raw[ident])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return NewDictionary(entries...)
}

func parseEntry(ident string, je jsonEntry) (*Entry, error) {
	origin, err := semantics.ParseOriginLanguage(je.Origin)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w: %w", ident, lv.ErrInvalidOrigin, err)
	}
	category, err := semantics.ParseStemCategory(je.Category)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", ident, err)
	}
	mstype, err := semantics.ParseMSType(je.MSType)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", ident, err)
	}
	lvJSON := je.Languages[string(semantics.Lauvinko)]
	overrides, err := parseLVForms(ident, category, lvJSON.Forms)
	if err != nil {
		return nil, err
	}

	e := &Entry{Ident: ident, Origin: origin, Category: category, Type: mstype}
	if origin != semantics.Kasanic {
		source := je.Source
		if source == "" {
			source = ident
		}
		e.LV, err = lv.NewLemma(ident, lvJSON.Definition, category, mstype,
			lv.GenericOrigin{Language: origin, Word: source}, overrides)
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	pkJSON, ok := je.Languages[string(semantics.ProtoKasanic)]
	if !ok {
		return nil, fmt.Errorf("entry %s: information for origin %s missing", ident, semantics.ProtoKasanic)
	}
	if e.PK, err = parsePKLemma(ident, category, pkJSON); err != nil {
		return nil, err
	}
	e.PK.Type = mstype
	if e.LV, err = lv.FromProto(e.PK, lvJSON.Definition, overrides); err != nil {
		return nil, err
	}
	return e, nil
}

func parsePKLemma(ident string, category semantics.StemCategory, lang jsonLanguage) (*pk.Lemma, error) {
	gn, ok := lang.Forms[semantics.General.Abbreviation()]
	if !ok {
		return nil, fmt.Errorf("entry %s: missing generic form %q", ident, semantics.General.Abbreviation())
	}
	generic, err := pk.ParseMorpheme(gn.Phonemic)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", ident, err)
	}
	overrides := make(map[semantics.TenseAspect]pk.Stem)
	for key, form := range lang.Forms {
		if key == semantics.General.Abbreviation() {
			continue
		}
		ta, err := semantics.ParseTenseAspect(key)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", ident, err)
		}
		m, err := pk.ParseMorpheme(form.Phonemic)
		if err != nil {
			return nil, fmt.Errorf("entry %s %s: %w", ident, key, err)
		}
		overrides[ta] = pk.NewStem(m)
	}
	l, err := pk.NewLemma(ident, lang.Definition, category, generic, overrides)
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", ident, err)
	}
	return l, nil
}

func parseLVForms(ident string, category semantics.StemCategory, forms map[string]jsonForm) (map[lv.FormKey]lv.Morpheme, error) {
	out := make(map[lv.FormKey]lv.Morpheme, len(forms))
	for key, form := range forms {
		k, err := lv.ParseFormKey(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", ident, err)
		}
		if err := category.Check(k.TenseAspect); err != nil {
			return nil, fmt.Errorf("entry %s: %w", ident, err)
		}
		m, err := lv.ParseMorpheme(form.Phonemic)
		if err != nil {
			return nil, fmt.Errorf("entry %s %s: %w", ident, key, err)
		}
		out[k] = m
	}
	return out, nil
}
