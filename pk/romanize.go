package pk

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lauvinko/lauvinko/phonology"
)

func romanizeOnset(o Onset) string {
	if o == NoOnset {
		return ""
	}
	if o == NY {
		return "ñ"
	}
	s := strings.ToLower(o.Name())
	switch {
	case o.Manner() == phonology.PreglottalizedStop:
		s = "'" + s[1:]
	case o.Place() == phonology.Palatal:
		s = strings.ReplaceAll(s, "n", "ñ")
	case o.Place() == phonology.Velar || o.Place() == phonology.Labiovelar:
		s = strings.ReplaceAll(strings.ReplaceAll(s, "g", ""), "n", "ṅ")
	}
	return strings.ReplaceAll(s, "w", "v")
}

func romanizeVowel(v Vowel) string {
	switch v {
	case AA:
		return "a"
	case A:
		return "ə"
	}
	return strings.ToLower(v.Name())
}

// Romanize spells the form in the scholarly Latin orthography. With
// showStress the stressed vowel carries an acute accent.
func Romanize(sf SurfaceForm, showStress bool) string {
	var b strings.Builder
	for i, s := range sf.Syllables {
		b.WriteString(romanizeOnset(s.Onset))
		b.WriteString(romanizeVowel(s.Vowel))
		if showStress && i == sf.Stress {
			b.WriteString("\u0301")
		}
	}
	return norm.NFC.String(b.String())
}

var falavayConsonants = map[Onset]string{
	M: "m", N: "n", NY: "N", NG: "g", NGW: "m",
	P: "p", T: "t", C: "j", K: "k", KW: "p",
	MP: "p", NT: "t", NC: "j", NK: "k", NKW: "p",
	PP: "p", TT: "t", CC: "j", KK: "k", KKW: "p",
	S: "x", H: "h",
	R: "l", Y: "y", W: "v",
}

var falavayFreeVowels = map[Vowel]string{
	AA: "A", E: "E", O: "O", A: "Q", I: "I", U: "U", AI: "Y", AU: "W",
}

// falavayBoundVowels gives the signs written before and after the consonant.
var falavayBoundVowels = map[Vowel][2]string{
	AA: {"", "a"},
	E:  {"e", ""},
	O:  {"e", "o"},
	A:  {"", ""},
	I:  {"", "i"},
	U:  {"", "u"},
	AI: {"", "Y"},
	AU: {"", "W"},
}

const (
	falavayAugment = "G"
	falavaySerif   = "q"
)

func syllableFalavay(s Syllable) string {
	if s.Onset == NoOnset {
		return falavayFreeVowels[s.Vowel]
	}
	pre := ""
	switch s.Onset.Manner() {
	case phonology.PreglottalizedStop:
		pre = "H"
	case phonology.PrenasalizedStop:
		pre = "M"
	}
	cons := falavayConsonants[s.Onset]
	bound := falavayBoundVowels[s.Vowel]
	preVowel, postVowel := bound[0], bound[1]

	serif := ""
	if strings.Contains("hktx", cons) && !strings.ContainsAny(postVowel, "aou") {
		serif = falavaySerif
	}
	// wide consonants take the wide forms of i and u
	if strings.Contains("hklmtxy", cons) {
		switch postVowel {
		case "i":
			postVowel = "X"
		case "u":
			postVowel = "Z"
		}
	}
	return pre + preVowel + cons + serif + postVowel
}

// Falavay spells the form in the falavay script's ASCII encoding. With augment
// the augment sign follows the stressed syllable.
func Falavay(sf SurfaceForm, augment bool) string {
	var b strings.Builder
	for i, s := range sf.Syllables {
		b.WriteString(syllableFalavay(s))
		if augment && i == sf.Stress {
			b.WriteString(falavayAugment)
		}
	}
	return b.String()
}
