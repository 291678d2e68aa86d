package lv

import "fmt"

// Case is a Lauvinko topic case. Augment is whether the case prefix leaves
// the stem in the augmented context.
type Case struct {
	Abbreviation string
	Augment      bool
}

// Cases lists the Lauvinko cases.
var Cases = []Case{
	{"vol", true},
	{"ins", false},
	{"pat", false},
	{"dat", true},
	{"all", false},
	{"loc", true},
	{"abl", false},
	{"prl", false},
	{"par", false},
}

// Context is the stem context the case selects.
func (c Case) Context() Context {
	if c.Augment {
		return Augmented
	}
	return NonAugmented
}

func (c Case) String() string { return c.Abbreviation }

// ParseCase resolves a case abbreviation such as "dat".
func ParseCase(s string) (Case, error) {
	for _, c := range Cases {
		if c.Abbreviation == s {
			return c, nil
		}
	}
	return Case{}, fmt.Errorf("unknown case %q", s)
}
