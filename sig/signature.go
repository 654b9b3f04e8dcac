package sig

import "strings"

// Signature is an ordered argument-type tuple plus a return type, the unit
// of enumeration. Args never contains Void; Ret may be Void, indicating no
// result. A Signature is immutable once enumerated.
type Signature struct {
	Args []Type
	Ret  Type
}

// Argc returns the number of arguments.
func (s Signature) Argc() int {
	return len(s.Args)
}

// ArgSet returns the distinct argument types, in catalog order.
func (s Signature) ArgSet() []Type {
	var set [numTypes]bool
	for _, a := range s.Args {
		set[a] = true
	}
	distinct := make([]Type, 0, len(s.Args))
	for t := Type(0); t < numTypes; t++ {
		if set[t] {
			distinct = append(distinct, t)
		}
	}
	return distinct
}

// Uniform returns the single argument type when all arguments share one
// type, and reports whether that is the case. It reports false for a
// zero-argument signature.
func (s Signature) Uniform() (Type, bool) {
	if len(s.Args) == 0 {
		return 0, false
	}
	t := s.Args[0]
	for _, a := range s.Args[1:] {
		if a != t {
			return 0, false
		}
	}
	return t, true
}

// AllArgs reports whether the signature has at least one argument and every
// argument is of type t.
func (s Signature) AllArgs(t Type) bool {
	u, ok := s.Uniform()
	return ok && u == t
}

// HasArg reports whether t appears among the arguments.
func (s Signature) HasArg(t Type) bool {
	for _, a := range s.Args {
		if a == t {
			return true
		}
	}
	return false
}

// CountArg returns the number of arguments of type t.
func (s Signature) CountArg(t Type) int {
	n := 0
	for _, a := range s.Args {
		if a == t {
			n++
		}
	}
	return n
}

// ArrayArgs returns the number of array-segment arguments.
func (s Signature) ArrayArgs() int {
	n := 0
	for _, a := range s.Args {
		if a.IsArray() {
			n++
		}
	}
	return n
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, a := range s.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(") ")
	b.WriteString(s.Ret.String())
	return b.String()
}
