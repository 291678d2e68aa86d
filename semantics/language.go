package semantics

import "fmt"

// Language is one of the languages a dictionary entry can carry.
type Language string

const (
	ProtoKasanic Language = "pk"
	Lauvinko     Language = "lv"
)

// Title is the display name.
func (l Language) Title() string {
	switch l {
	case ProtoKasanic:
		return "Proto-Kasanic"
	case Lauvinko:
		return "Lauvinko"
	}
	return string(l)
}

// OriginLanguage is the source language of a Lauvinko lemma.
type OriginLanguage string

const (
	Kasanic    OriginLanguage = "kasanic"
	Malay      OriginLanguage = "malay"
	Javanese   OriginLanguage = "javanese"
	Sanskrit   OriginLanguage = "sanskrit"
	Tamil      OriginLanguage = "tamil"
	Arabic     OriginLanguage = "arabic"
	Hokkien    OriginLanguage = "hokkien"
	Portuguese OriginLanguage = "portuguese"
	Dutch      OriginLanguage = "dutch"
	English    OriginLanguage = "english"
)

var originCodes = map[OriginLanguage]string{
	Kasanic: "pk", Malay: "ms", Javanese: "jv", Sanskrit: "sa", Tamil: "ta",
	Arabic: "ar", Hokkien: "hk", Portuguese: "pt", Dutch: "nl", English: "en",
}

// Code is the short language code, e.g. "ms" for Malay.
func (o OriginLanguage) Code() string { return originCodes[o] }

// ParseOriginLanguage validates an origin name from the dictionary.
func ParseOriginLanguage(s string) (OriginLanguage, error) {
	o := OriginLanguage(s)
	if _, ok := originCodes[o]; !ok {
		return "", fmt.Errorf("invalid word origin %q", s)
	}
	return o, nil
}
