package shape

import (
	"github.com/dkleszyk/java-function-extra/sig"
)

// Capability tags the derived combinator methods a descriptor may carry.
type Capability uint8

const (
	// CapPrimary marks the descriptor's single abstract method.
	CapPrimary Capability = iota
	// CapIdentity is the static factory returning an operator that returns
	// its argument unchanged.
	CapIdentity
	// CapNegated is logical complement: the static factory on the boolean
	// unary operator, or the instance negation on predicates.
	CapNegated
	// CapAndThen sequences this shape with another.
	CapAndThen
	// CapCompose applies a transformation before this shape runs.
	CapCompose
	// CapAnd is short-circuit logical intersection of predicates.
	CapAnd
	// CapOr is short-circuit logical union of predicates.
	CapOr
)

var capabilityNames = [...]string{
	CapPrimary:  "primary",
	CapIdentity: "identity",
	CapNegated:  "negated",
	CapAndThen:  "andThen",
	CapCompose:  "compose",
	CapAnd:      "and",
	CapOr:       "or",
}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "unknown"
}

// DocParam is one @param entry of a method's documentation.
type DocParam struct {
	Name string
	Desc string
}

// MethodDoc is the rendered-independent documentation of a method.
type MethodDoc struct {
	Desc   string
	Params []DocParam
	Result string
}

// Param is one declared parameter of a derived method.
type Param struct {
	JavaType string
	Name     string
}

// Method is one method of an emitted interface: the single abstract primary
// method, or a derived static or default combinator. A Method references
// only the descriptor's own declared method and arguments, never private
// state.
type Method struct {
	Capability Capability
	Name       string
	Static     bool
	Abstract   bool
	Doc        MethodDoc
	Generics   string // method-level type parameters, e.g. "<S>"
	Returns    string
	Params     []Param
	NullChecks []string
	Body       *Lambda // nil for the abstract primary method
	Imports    []string
}

const (
	importObjects  = "java.util.Objects"
	importFunction = "java.util.function.Function"
)

// title capitalizes the first letter of s. Vocabulary words are ASCII.
func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// PrimaryMethod builds the descriptor's single abstract method.
func (d *Descriptor) PrimaryMethod() Method {
	v := d.Role.vocab()
	s := d.Signature

	var desc string
	switch {
	case s.Argc() == 0 && s.Ret != sig.Void:
		desc = title(v.present) + " a " + supplyPhrase(s.Ret) + "."
	case s.Argc() == 0:
		desc = title(v.present) + " the " + v.noun + "."
	default:
		argsWord, _, _ := d.argWords()
		desc = title(v.present) + " the " + v.noun + " " + v.prep + " the given " + argsWord + "."
	}

	var result string
	if s.Argc() > 0 && s.Ret == sig.Boolean && !s.AllArgs(sig.Boolean) {
		argsWord, match, _ := d.argWords()
		result = "A {@code~true}-or-{@code~false} value indicating whether the " + argsWord + " " + match + " the " + v.noun + "."
	} else if s.Ret != sig.Void {
		result = "The result of the " + v.noun + "."
	}

	params := make([]DocParam, len(d.Args))
	declared := make([]Param, len(d.Args))
	for i, a := range d.Args {
		params[i] = DocParam{Name: a.Name, Desc: a.Desc}
		declared[i] = Param{JavaType: a.JavaType, Name: a.Name}
	}

	return Method{
		Capability: CapPrimary,
		Name:       d.Method,
		Abstract:   true,
		Doc:        MethodDoc{Desc: desc, Params: params, Result: result},
		Returns:    d.Result,
		Params:     declared,
	}
}

// Capabilities derives the combinator methods applicable to the descriptor.
// Admission is decided here and only here; the emitter renders whatever is
// returned.
func (d *Descriptor) Capabilities() []Method {
	var out []Method

	if m, ok := d.identity(); ok {
		out = append(out, m)
	}
	if m, ok := d.negatedStatic(); ok {
		out = append(out, m)
	}
	if m, ok := d.andThen(); ok {
		out = append(out, m)
	}
	if m, ok := d.compose(); ok {
		out = append(out, m)
	}
	out = append(out, d.predicateMethods()...)

	return out
}

// identity is admitted for the unary operator shapes only: one argument,
// non-object return, argument type equal to the return type.
func (d *Descriptor) identity() (Method, bool) {
	if d.Role != RoleOperator || d.Signature.Argc() != 1 {
		return Method{}, false
	}
	op := d.Role.vocab().noun

	return Method{
		Capability: CapIdentity,
		Name:       "identity",
		Static:     true,
		Doc: MethodDoc{
			Desc:   "Returns " + aan(op) + " " + op + " that always returns its input argument.",
			Result: aanCap(op) + " " + op + " that always returns its input argument.",
		},
		Returns: d.Name,
		Body:    &Lambda{Params: d.argAbbrs(), Expr: ArgRef(d.Args[0].Abbr)},
	}, true
}

// negatedStatic is admitted for the boolean unary operator only.
func (d *Descriptor) negatedStatic() (Method, bool) {
	s := d.Signature
	if s.Argc() != 1 || s.Ret != sig.Boolean || !s.AllArgs(sig.Boolean) {
		return Method{}, false
	}
	op := d.Role.vocab().noun

	return Method{
		Capability: CapNegated,
		Name:       "negated",
		Static:     true,
		Doc: MethodDoc{
			Desc:   "Returns " + aan(op) + " " + op + " that always returns the logical negation of its input argument.",
			Result: aanCap(op) + " " + op + " that always returns the logical negation its input argument.",
		},
		Returns: d.Name,
		Body:    &Lambda{Params: d.argAbbrs(), Expr: Not{X: ArgRef(d.Args[0].Abbr)}},
	}, true
}

func (d *Descriptor) andThen() (Method, bool) {
	v := d.Role.vocab()
	op := v.noun
	s := d.Signature
	argsWord, _, those := d.argWords()
	this := Call{Name: d.Method, Args: d.argRefs()}

	switch {
	case s.Ret == sig.Void:
		var desc string
		if s.Argc() == 0 {
			desc = "Returns a compound " + op + " that first " + v.present + " this " + op + " and then " + v.present + " the given " + op + "."
		} else {
			desc = "Returns a compound " + op + " that first " + v.present + " this " + op + " " + v.prep + " its input " + argsWord +
				" and then " + v.present + " the given " + op + " " + v.prep + " " + those + " same " + argsWord + "."
		}
		return Method{
			Capability: CapAndThen,
			Name:       "andThen",
			Doc: MethodDoc{
				Desc: desc,
				Params: []DocParam{
					{Name: "after", Desc: "The " + op + " to " + v.infin + " after this " + op + "."},
				},
				Result: "A compound " + op + " that first " + v.present + " this " + op + " and then " + v.present + " the {@code~after} " + op + ".",
			},
			Returns:    d.Name + d.GenericDecl(),
			Params:     []Param{{JavaType: d.Name + d.genericWildcards(), Name: "after"}},
			NullChecks: []string{"after"},
			Body: &Lambda{Params: d.argAbbrs(), Stmts: []Expr{
				this,
				Call{Recv: "after", Name: d.Method, Args: d.argRefs()},
			}},
			Imports: []string{importObjects},
		}, true

	case s.Ret == sig.Object:
		o1, o2 := outputParams[0], outputParams[1]
		var desc, result string
		if s.Argc() == 0 {
			desc = "Returns a compound " + op + " that first " + v.present + " a " + supplyPhrase(s.Ret) + " and then applies the given function to produce a transformed result."
			result = "A compound " + op + " that first " + v.present + " a " + supplyPhrase(s.Ret) + " and then applies the {@code~after} function."
		} else {
			desc = "Returns a compound " + op + " that first " + v.present + " this " + op + " " + v.prep + " its input " + argsWord + " and then applies the given function to produce a transformed result."
			result = "A compound " + op + " that first " + v.present + " this " + op + " and then applies the {@code~after} function."
		}
		return Method{
			Capability: CapAndThen,
			Name:       "andThen",
			Doc: MethodDoc{
				Desc: desc,
				Params: []DocParam{
					{Name: "<" + o2 + ">", Desc: "The type of the result of the compound " + op + "."},
					{Name: "after", Desc: "A function to apply to the result of this " + op + "."},
				},
				Result: result,
			},
			Generics:   "<" + o2 + ">",
			Returns:    d.Name + d.genericSubst(o1, o2),
			Params:     []Param{{JavaType: "Function<? super " + o1 + ", ? extends " + o2 + ">", Name: "after"}},
			NullChecks: []string{"after"},
			Body: &Lambda{Params: d.argAbbrs(), Expr: Call{
				Recv: "after", Name: "apply", Args: []Expr{this},
			}},
			Imports: []string{importObjects, importFunction},
		}, true

	case s.Argc() == 1 && s.AllArgs(s.Ret):
		// Unary operator: chain another operator of identical shape.
		return Method{
			Capability: CapAndThen,
			Name:       "andThen",
			Doc: MethodDoc{
				Desc: "Returns a compound " + op + " that first " + v.present + " this " + op + " " + v.prep + " its input " + argsWord +
					" and then " + v.present + " the given " + op + " to produce a transformed result.",
				Params: []DocParam{
					{Name: "after", Desc: aanCap(op) + " " + op + " to " + v.infin + " " + v.prep + " the result of this " + op + "."},
				},
				Result: "A compound " + op + " that first " + v.present + " this " + op + " and then " + v.present + " the {@code~after} " + op + ".",
			},
			Returns:    d.Name,
			Params:     []Param{{JavaType: d.Name, Name: "after"}},
			NullChecks: []string{"after"},
			Body: &Lambda{Params: d.argAbbrs(), Expr: Call{
				Recv: "after", Name: d.Method, Args: []Expr{this},
			}},
			Imports: []string{importObjects},
		}, true
	}

	return Method{}, false
}

func (d *Descriptor) compose() (Method, bool) {
	v := d.Role.vocab()
	op := v.noun
	s := d.Signature
	if s.Argc() != 1 {
		return Method{}, false
	}

	switch {
	case s.AllArgs(sig.Object):
		i1, i2 := inputParams[0], inputParams[1]
		var desc string
		if s.Ret == sig.Void {
			desc = "Returns a compound " + op + " that first applies the given function to its input argument and then " + v.present + " this " + op + " " + v.prep + " its result."
		} else {
			desc = "Returns a compound " + op + " that first applies the given function to its input argument and then " + v.present + " this " + op + " to produce a transformed result."
		}
		return Method{
			Capability: CapCompose,
			Name:       "compose",
			Doc: MethodDoc{
				Desc: desc,
				Params: []DocParam{
					{Name: "<" + i2 + ">", Desc: "The type of the input to the compound " + op + "."},
					{Name: "before", Desc: "A function to apply to produce the input to this " + op + "."},
				},
				Result: "A compound " + op + " that first applies the {@code~before} function and then " + v.present + " this " + op + ".",
			},
			Generics:   "<" + i2 + ">",
			Returns:    d.Name + d.genericSubst(i1, i2),
			Params:     []Param{{JavaType: "Function<? super " + i2 + ", ? extends " + i1 + ">", Name: "before"}},
			NullChecks: []string{"before"},
			Body: &Lambda{Params: d.argAbbrs(), Expr: Call{
				Name: d.Method,
				Args: []Expr{Call{Recv: "before", Name: "apply", Args: d.argRefs()}},
			}},
			Imports: []string{importObjects, importFunction},
		}, true

	case s.AllArgs(s.Ret) && s.Ret != sig.Object:
		// Unary operator: the other operator runs first, feeding this one.
		return Method{
			Capability: CapCompose,
			Name:       "compose",
			Doc: MethodDoc{
				Desc: "Returns a compound " + op + " that first " + v.present + " the given " + op + " " + v.prep + " its input argument and then " + v.present + " this " + op + " to produce a transformed result.",
				Params: []DocParam{
					{Name: "before", Desc: aanCap(op) + " " + op + " to " + v.infin + " to produce the input to this " + op + "."},
				},
				Result: "A compound " + op + " that first " + v.present + " the {@code~before} " + op + " and then " + v.present + " this " + op + ".",
			},
			Returns:    d.Name,
			Params:     []Param{{JavaType: d.Name, Name: "before"}},
			NullChecks: []string{"before"},
			Body: &Lambda{Params: d.argAbbrs(), Expr: Call{
				Name: d.Method,
				Args: []Expr{Call{Recv: "before", Name: d.Method, Args: d.argRefs()}},
			}},
			Imports: []string{importObjects},
		}, true
	}

	return Method{}, false
}

// predicateMethods derives and/or/negated for genuine predicates: boolean
// return over non-boolean input. All-boolean shapes classify as operators
// and never receive these combinators.
func (d *Descriptor) predicateMethods() []Method {
	v := d.Role.vocab()
	op := v.noun
	s := d.Signature
	if s.Argc() == 0 || s.Ret != sig.Boolean || s.AllArgs(sig.Boolean) {
		return nil
	}

	this := Call{Name: d.Method, Args: d.argRefs()}
	other := Call{Recv: "other", Name: d.Method, Args: d.argRefs()}
	combined := func(noun, participle, shortCircuit string) MethodDoc {
		return MethodDoc{
			Desc: "Returns a compound " + op + " that represents the logical " + noun + " of this " + op + " and the given " + op + ". " +
				"The compound " + op + " " + v.present + " this " + op + " first; the other " + op + " is not " + v.past +
				" if the result of this " + op + " is {@code~" + shortCircuit + "}.",
			Params: []DocParam{
				{Name: "other", Desc: aanCap(op) + " " + op + " to be " + participle + " with this " + op + "."},
			},
			Result: "A compound " + op + " that represents the logical " + noun + " of this " + op + " and the {@code~other} " + op + ".",
		}
	}

	return []Method{
		{
			Capability: CapAnd,
			Name:       "and",
			Doc:        combined("intersection", "intersected", "false"),
			Returns:    d.Name + d.GenericDecl(),
			Params:     []Param{{JavaType: d.Name + d.genericWildcards(), Name: "other"}},
			NullChecks: []string{"other"},
			Body:       &Lambda{Params: d.argAbbrs(), Expr: AndAnd{X: this, Y: other}},
			Imports:    []string{importObjects},
		},
		{
			Capability: CapOr,
			Name:       "or",
			Doc:        combined("union", "unioned", "true"),
			Returns:    d.Name + d.GenericDecl(),
			Params:     []Param{{JavaType: d.Name + d.genericWildcards(), Name: "other"}},
			NullChecks: []string{"other"},
			Body:       &Lambda{Params: d.argAbbrs(), Expr: OrOr{X: this, Y: other}},
			Imports:    []string{importObjects},
		},
		{
			Capability: CapNegated,
			Name:       "negated",
			Doc: MethodDoc{
				Desc:   "Returns " + aan(op) + " " + op + " that represents the logical negation of this " + op + ".",
				Result: aanCap(op) + " " + op + " that represents the logical negation of this " + op + ".",
			},
			Returns: d.Name + d.GenericDecl(),
			Body:    &Lambda{Params: d.argAbbrs(), Expr: Not{X: this}},
		},
	}
}
