package pk

import "github.com/lauvinko/lauvinko/phonology"

// Mutation is the consonant mutation a morpheme applies to the onset of the
// morpheme that follows it.
type Mutation int

const (
	NoMutation Mutation = iota
	Lenition
	Fortition
	Nasalization
)

var mutationNotation = [...]string{"", "+L", "+F", "+N"}

// Notation is the informal suffix, e.g. "+L".
func (m Mutation) Notation() string { return mutationNotation[m] }

func (m Mutation) String() string {
	switch m {
	case Lenition:
		return "lenition"
	case Fortition:
		return "fortition"
	case Nasalization:
		return "nasalization"
	}
	return "none"
}

// ParseMutation resolves "+F", "+L" or "+N".
func ParseMutation(s string) (Mutation, bool) {
	for i, n := range mutationNotation {
		if i > 0 && n == s {
			return Mutation(i), true
		}
	}
	return NoMutation, false
}

type mutationTable struct {
	onsets  map[Onset]Onset
	manners map[phonology.Manner]phonology.Manner
}

var mutationTables = map[Mutation]mutationTable{
	Lenition: {
		onsets: map[Onset]Onset{P: W, T: R, C: S, K: H, KW: W, NC: NC},
		manners: map[phonology.Manner]phonology.Manner{
			phonology.PrenasalizedStop:   phonology.Nasal,
			phonology.PreglottalizedStop: phonology.PlainStop,
		},
	},
	Fortition: {
		onsets: map[Onset]Onset{S: C},
		manners: map[phonology.Manner]phonology.Manner{
			phonology.PlainStop: phonology.PreglottalizedStop,
		},
	},
	Nasalization: {
		onsets: map[Onset]Onset{NoOnset: N},
		manners: map[phonology.Manner]phonology.Manner{
			phonology.Approximant: phonology.Nasal,
			phonology.PlainStop:   phonology.PrenasalizedStop,
		},
	},
}

// Mutate returns the image of o under m. An onset whose manner image does
// not exist at its place of articulation is left unchanged.
func (m Mutation) Mutate(o Onset) Onset {
	t, ok := mutationTables[m]
	if !ok {
		return o
	}
	if out, ok := t.onsets[o]; ok {
		return out
	}
	if o == NoOnset {
		return NoOnset
	}
	if manner, ok := t.manners[o.Manner()]; ok {
		if out, ok := FindOnset(o.Place(), manner); ok {
			return out
		}
	}
	return o
}
