package lv

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lauvinko/lauvinko/phonology"
)

func romanizeCoda(coda, next Consonant) string {
	switch {
	case coda == NoConsonant:
		return ""
	case coda.Manner() == phonology.Nasal:
		switch {
		case next == NoConsonant:
			return "ng"
		case next.Place() == phonology.Labial:
			return "m"
		}
		return "n"
	case coda.Manner() == phonology.PlainStop:
		switch {
		case next.Manner() == phonology.PlainStop, next == C, next == S:
			return strings.ToLower(next.Name())
		case next == Y:
			return "c"
		}
		return "h"
	case coda == C:
		if next == Y {
			return "c"
		}
		return "s"
	case coda == L:
		if next == L || next == Y {
			return "l"
		}
		return "r"
	case coda == V:
		return "u"
	}
	return strings.ToLower(coda.Name())
}

// Romanize spells the form in the Lauvinko Latin orthography: an acute
// accent marks a rising accent and a grave accent a falling one, and codas
// are written as they are pronounced before the next onset.
func Romanize(sf SurfaceForm) string {
	var b strings.Builder
	for i, s := range sf.Syllables {
		b.WriteString(strings.ToLower(s.Onset.Name()))
		b.WriteString(strings.ToLower(s.Vowel.Name()))
		if i == sf.Accent {
			if sf.Falling {
				b.WriteString("\u0300")
			} else {
				b.WriteString("\u0301")
			}
		}
		next := NoConsonant
		if i+1 < len(sf.Syllables) {
			next = sf.Syllables[i+1].Onset
		}
		b.WriteString(romanizeCoda(s.Coda, next))
	}
	return norm.NFC.String(b.String())
}
