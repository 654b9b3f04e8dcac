package sig

// A Rule is one independent admission predicate over candidate signatures.
// Rules are conjunctive and order-independent: a candidate survives only if
// every rule admits it.
type Rule struct {
	Name  string
	Admit func(Signature) bool
}

// DefaultRules returns the admission rules that prune the candidate space
// down to the supported subset. The reserved-name check is not a Rule; it
// depends on name synthesis and is applied by the generation driver after
// naming.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "mixed-args", Admit: admitMixedArgs},
		{Name: "arity", Admit: admitArity},
		{Name: "array-arity", Admit: admitArrayArity},
		{Name: "array-return", Admit: admitArrayReturn},
		{Name: "scalar-return", Admit: admitScalarReturn},
	}
}

// Admit reports whether every rule admits the signature.
func Admit(s Signature, rules []Rule) bool {
	for _, r := range rules {
		if !r.Admit(s) {
			return false
		}
	}
	return true
}

// admitMixedArgs caps argument heterogeneity: with more than one argument,
// the distinct argument types must be a singleton, or exactly {Object, X}
// with the Object argument leading and all remaining arguments sharing X.
func admitMixedArgs(s Signature) bool {
	if s.Argc() <= 1 || len(s.ArgSet()) == 1 {
		return true
	}
	if s.Args[0] != Object {
		return false
	}
	rest := Signature{Args: s.Args[1:]}
	return len(rest.ArgSet()) == 1
}

// admitArity excludes more than two arguments unless all are Object.
func admitArity(s Signature) bool {
	return s.Argc() <= 2 || s.AllArgs(Object)
}

// admitArrayArity excludes more than one array-segment argument.
func admitArrayArity(s Signature) bool {
	return s.ArrayArgs() <= 1
}

// admitArrayReturn rejects array-segment returns outright, and restricts
// what signatures with an array-segment argument may return: Object,
// boolean, void, plus int and long for returning indices or counts and
// double for returning aggregates. A type whose array form appears among
// the arguments may also be returned, enabling return-an-element shapes.
func admitArrayReturn(s Signature) bool {
	if s.Ret.IsArray() {
		return false
	}
	if s.ArrayArgs() == 0 {
		return true
	}
	switch s.Ret {
	case Object, Boolean, Void, Int, Long, Double:
		return true
	}
	arr, ok := s.Ret.Array()
	return ok && s.HasArg(arr)
}

// admitScalarReturn restricts multi-argument signatures without array
// arguments: the return must be Object, boolean, void, or one of the
// argument types. All-Object signatures are special-cased: up to two
// arguments may return anything, more than two may return only Object or
// boolean.
func admitScalarReturn(s Signature) bool {
	if s.ArrayArgs() > 0 {
		return true
	}
	allObj := s.AllArgs(Object)
	if s.Argc() > 1 {
		switch s.Ret {
		case Object, Boolean, Void:
		default:
			if !s.HasArg(s.Ret) && (s.Argc() > 2 || !allObj) {
				return false
			}
		}
	}
	if s.Argc() > 2 && s.Ret != Object && s.Ret != Boolean {
		return false
	}
	return true
}
