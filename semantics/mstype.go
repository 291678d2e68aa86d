package semantics

import (
	"errors"
	"fmt"
)

// ErrMorphemeOrder is returned when prefixes cannot be assigned to the
// Kasanic prefix slots.
var ErrMorphemeOrder = errors.New("morpheme order")

// MSType is the morphosyntactic type of a lemma.
type MSType int

const (
	Independent MSType = iota
	ClassWord
	Adposition
	ModalPrefix
	TertiaryAspectPrefix
	TopicAgreementPrefix
	TopicCasePrefix
	NumberSuffix
)

var msTypeNames = [...]string{
	"independent", "class word", "adposition", "modal prefix",
	"tertiary aspect prefix", "topic agreement prefix", "topic case prefix", "number suffix",
}

func (t MSType) String() string { return msTypeNames[t] }

// ParseMSType resolves a morphosyntactic type name. The empty string is
// Independent.
func ParseMSType(s string) (MSType, error) {
	if s == "" {
		return Independent, nil
	}
	for i, n := range msTypeNames {
		if n == s {
			return MSType(i), nil
		}
	}
	return 0, fmt.Errorf("invalid morphosyntactic type %q", s)
}

// IsPrefix reports whether t occupies one of the verbal prefix slots.
func (t MSType) IsPrefix() bool {
	return t >= ModalPrefix && t <= TopicCasePrefix
}

// Typed is anything that can be placed in a prefix slot.
type Typed interface {
	MSType() MSType
	Ident() string
}

// DependentCase is the one topic case marker allowed without agreement.
const DependentCase = "$dep$"

// Buckets holds prefixes sorted into their slots.
type Buckets[T Typed] struct {
	Modal          []T
	TertiaryAspect *T
	TopicAgreement *T
	TopicCase      *T
}

// Flatten returns the bucketed prefixes in slot order.
func (b Buckets[T]) Flatten() []T {
	out := append([]T(nil), b.Modal...)
	for _, p := range []*T{b.TertiaryAspect, b.TopicAgreement, b.TopicCase} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

// BucketPrefixes assigns prefixes to the slots modal*, tertiary aspect?,
// topic agreement?, topic case?, in that order. Topic agreement needs a case
// marker, and every case marker but $dep$ needs agreement.
func BucketPrefixes[T Typed](prefixes []T) (Buckets[T], error) {
	var b Buckets[T]
	i := 0
	for i < len(prefixes) && prefixes[i].MSType() == ModalPrefix {
		b.Modal = append(b.Modal, prefixes[i])
		i++
	}
	take := func(t MSType) *T {
		if i < len(prefixes) && prefixes[i].MSType() == t {
			p := prefixes[i]
			i++
			return &p
		}
		return nil
	}
	b.TertiaryAspect = take(TertiaryAspectPrefix)
	b.TopicAgreement = take(TopicAgreementPrefix)
	b.TopicCase = take(TopicCasePrefix)

	if i < len(prefixes) {
		return Buckets[T]{}, fmt.Errorf("%w: invalid or out of order prefix %s", ErrMorphemeOrder, prefixes[i].Ident())
	}
	if b.TopicAgreement != nil && b.TopicCase == nil {
		return Buckets[T]{}, fmt.Errorf("%w: must have topic case marker", ErrMorphemeOrder)
	}
	if b.TopicCase != nil && (*b.TopicCase).Ident() != DependentCase && b.TopicAgreement == nil {
		return Buckets[T]{}, fmt.Errorf("%w: must have topic agreement marker", ErrMorphemeOrder)
	}
	return b, nil
}
