package shape

import "github.com/dkleszyk/java-function-extra/sig"

// Documentation strings use "~" as a non-breaking space inside javadoc
// inline tags, so the emitter's line wrapping never splits a tag. The
// emitter substitutes real spaces after wrapping.

// summary is the one-sentence description of the interface itself.
func summary(s sig.Signature, role Role) string {
	op := role.vocab().noun
	return "Represents " + aan(op) + " " + op + " that takes " + inputPhrase(s) + " and produces " + outputPhrase(s.Ret) + "."
}

func inputPhrase(s sig.Signature) string {
	argc := s.Argc()
	if argc == 0 {
		return "no arguments"
	}

	if argc == 1 {
		a := s.Args[0]
		switch {
		case a == sig.Object:
			return "a single argument"
		case a == sig.ObjectArray:
			return "an array argument with start and end indices"
		case a.IsArray():
			kw := a.Elem().Keyword()
			return aan(kw) + " {@code~" + kw + "}-valued array argument with start and end indices"
		default:
			return "a single {@code~" + a.Keyword() + "}-valued argument"
		}
	}

	if len(s.ArgSet()) == 1 {
		a := s.Args[0]
		cnt := cntOrdinals[argc-1]
		switch {
		case a == sig.Object:
			return cnt + " arguments"
		case a == sig.ObjectArray:
			return cnt + " array arguments, each with start and end indices"
		case a.IsArray():
			return cnt + " {@code~" + a.Elem().Keyword() + "}-valued array arguments, each with start and end indices"
		default:
			return cnt + " {@code~" + a.Keyword() + "}-valued arguments"
		}
	}

	// A leading object argument plus one other type.
	a := s.Args[1]
	phrase := "an object-valued argument and "
	switch {
	case a == sig.ObjectArray:
		return phrase + "an array argument with start and end indices"
	case a.IsArray():
		kw := a.Elem().Keyword()
		return phrase + aan(kw) + " {@code~" + kw + "}-valued array argument with start and end indices"
	default:
		kw := a.Keyword()
		return phrase + aan(kw) + " {@code~" + kw + "}-valued argument"
	}
}

func outputPhrase(ret sig.Type) string {
	switch ret {
	case sig.Void:
		return "no result"
	case sig.Object:
		return "a result"
	default:
		kw := ret.Keyword()
		return aan(kw) + " {@code~" + kw + "}-valued result"
	}
}

// supplyPhrase is the noun phrase for what a supplier supplies.
func supplyPhrase(ret sig.Type) string {
	if ret == sig.Object {
		return "value"
	}
	return "{@code~" + ret.Keyword() + "} value"
}
