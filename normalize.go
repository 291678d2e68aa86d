package lauvinko

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// glossReplacer folds the typographic variants people paste into glosses
// back to the ASCII separators ParseGloss splits on.
var glossReplacer = strings.NewReplacer(
	"\u2010", "-", // hyphen
	"\u2011", "-", // non-breaking hyphen
	"\u2013", "-", // en dash
	"\u2212", "-", // minus sign
	"\uff1d", "=", // fullwidth equals
	"\u2027", ".", // hyphenation point
	"\u00a0", " ", // no-break space
)

// NormalizeGloss folds separator variants and applies NFC.
func NormalizeGloss(s string) string {
	return glossReplacer.Replace(norm.NFC.String(s))
}

// NormalizeIdent returns the lookup key for an entry identifier: trimmed,
// lowercased and NFC-composed. Prefix keynames such as "$t2p$" pass through
// unchanged.
func NormalizeIdent(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}
