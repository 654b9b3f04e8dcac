package shape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkleszyk/java-function-extra/sig"
)

// ParamKind distinguishes the three kinds of generic parameter a descriptor
// may carry.
type ParamKind uint8

const (
	// ParamIn is the type of an object-valued argument.
	ParamIn ParamKind = iota
	// ParamElem is the element type of an object-array argument.
	ParamElem
	// ParamOut is the type of an object-valued result.
	ParamOut
)

// TypeParam is one generic parameter of a descriptor, with the prose used to
// document it.
type TypeParam struct {
	Symbol string
	Kind   ParamKind
	Desc   string
}

// Arg is one declared parameter of the descriptor's primary method. Array
// arguments expand into three Args: the array itself, then the inclusive
// start and exclusive end indices.
type Arg struct {
	// JavaType is the Java spelling of the parameter type: a keyword such
	// as "int" or "long[]", or a generic symbol such as "T" or "E[]".
	JavaType string
	// Name is the full parameter name used in declarations.
	Name string
	// Abbr is the abbreviated name used in lambda bodies.
	Abbr string
	Desc string
}

// Group is the target grouping of a descriptor, determining which package
// the emitted interface lands in.
type Group uint8

const (
	// GroupCore holds shapes over object and the int/long/double scalars.
	GroupCore Group = iota
	// GroupPrimitive holds shapes involving the remaining scalar kinds.
	GroupPrimitive
	// GroupArray holds shapes with an array-segment argument.
	GroupArray
)

var groupNames = [...]string{
	GroupCore:      "core",
	GroupPrimitive: "primitive",
	GroupArray:     "array",
}

func (g Group) String() string {
	if int(g) < len(groupNames) {
		return groupNames[g]
	}
	return "unknown"
}

// Descriptor is the durable record synthesized for one surviving signature:
// its canonical name, role, generic parameters, expanded argument list, and
// target grouping.
type Descriptor struct {
	Signature  sig.Signature
	Role       Role
	Name       string
	Method     string
	Result     string // Java spelling of the result: "void", "int", "R", ...
	Summary    string // one-sentence description of the shape
	TypeParams []TypeParam
	Args       []Arg
	Group      Group
}

// Parameter symbol banks, in the fixed order symbols are assigned.
var (
	inputParams  = [...]string{"T", "U", "V", "W"}
	outputParams = [...]string{"R", "S", "Q", "P"}
	elemParams   = [...]string{"E", "F", "G", "H"}
)

// Name ordinals, indexed by argc-1.
var (
	fnOrdinals  = [...]string{"", "Bi", "Tri", "Tetra"}
	opOrdinals  = [...]string{"Unary", "Binary", "Ternary", "Quaternary"}
	posOrdinals = [...]string{"first", "second", "third", "fourth"}
	cntOrdinals = [...]string{"", "two", "three", "four"}
)

// aan returns the indefinite article for s.
func aan(s string) string {
	if s != "" && strings.ContainsRune("AEIOUaeiou", rune(s[0])) {
		return "an"
	}
	return "a"
}

// aanCap is aan with an initial capital.
func aanCap(s string) string {
	if aan(s) == "an" {
		return "An"
	}
	return "A"
}

// Synthesize derives the descriptor for a filter-admitted signature. It is
// total over the admitted space: an error indicates an inconsistency between
// the filter rules and the role table, which is a defect, and callers must
// abort the run rather than skip the signature.
func Synthesize(s sig.Signature) (*Descriptor, error) {
	if s.Argc() > sig.MaxArgc {
		return nil, fmt.Errorf("signature %s: more than %d arguments", s, sig.MaxArgc)
	}
	if s.HasArg(sig.Void) {
		return nil, fmt.Errorf("signature %s: void in argument position", s)
	}

	role, name, method := classify(s)
	if name == "" || method == "" {
		return nil, fmt.Errorf("signature %s: no role produced a name", s)
	}

	op := role.vocab().noun
	result := s.Ret.Keyword()
	if s.Ret == sig.Object {
		result = outputParams[0]
	}

	return &Descriptor{
		Signature:  s,
		Role:       role,
		Name:       name,
		Method:     method,
		Result:     result,
		Summary:    summary(s, role),
		TypeParams: typeParams(s, op),
		Args:       arguments(s, role, op),
		Group:      groupOf(s),
	}, nil
}

// classify applies the role table; the first matching rule wins.
func classify(s sig.Signature) (Role, string, string) {
	argc := s.Argc()
	switch {
	case argc == 0 && s.Ret == sig.Void:
		return RoleAction, "Runnable", "run"
	case argc == 0:
		frag := s.Ret.Fragment()
		method := "get"
		if s.Ret != sig.Object {
			method = "getAs" + frag
		}
		return RoleSupplier, frag + "Supplier", method
	case s.Ret == sig.Void:
		return RoleConsumer, suffixedName(s, "Consumer"), "accept"
	case s.Ret != sig.Object && s.AllArgs(s.Ret):
		frag := s.Ret.Fragment()
		return RoleOperator, frag + opOrdinals[argc-1] + "Operator", "applyAs" + frag
	case s.Ret == sig.Boolean:
		return RolePredicate, suffixedName(s, "Predicate"), "test"
	case s.Ret == sig.Object:
		return RoleFunction, suffixedName(s, "Function"), "apply"
	default:
		frag := s.Ret.Fragment()
		var name string
		if len(s.ArgSet()) == 1 {
			name = s.Args[0].Fragment() + "To" + frag + fnOrdinals[argc-1] + "Function"
		} else {
			name = concatFragments(s) + "To" + frag + "Function"
		}
		return RoleToFunction, name, "applyAs" + frag
	}
}

// suffixedName builds a consumer-style name: argument fragment plus arity
// ordinal when all arguments share one type, concatenated per-argument
// fragments otherwise.
func suffixedName(s sig.Signature, suffix string) string {
	if len(s.ArgSet()) == 1 {
		return s.Args[0].Fragment() + fnOrdinals[s.Argc()-1] + suffix
	}
	return concatFragments(s) + suffix
}

// concatFragments joins the argument fragments in order, with object
// arguments contributing the fixed "Obj" fragment.
func concatFragments(s sig.Signature) string {
	var b strings.Builder
	for _, a := range s.Args {
		if a == sig.Object {
			b.WriteString("Obj")
		} else {
			b.WriteString(a.Fragment())
		}
	}
	return b.String()
}

// typeParams introduces generic parameters in fixed order: one per object
// argument, one per object-array element type, then one for an object
// result.
func typeParams(s sig.Signature, op string) []TypeParam {
	inCnt := s.CountArg(sig.Object)
	elemCnt := s.CountArg(sig.ObjectArray)
	var out []TypeParam

	for n := 0; n < inCnt; n++ {
		pos := ""
		if inCnt > 1 {
			pos = posOrdinals[n] + " "
		}
		typ := ""
		if inCnt < s.Argc() {
			typ = "object-valued "
		}
		out = append(out, TypeParam{
			Symbol: inputParams[n],
			Kind:   ParamIn,
			Desc:   "The type of the " + pos + typ + "argument to the " + op + ".",
		})
	}

	for n := 0; n < elemCnt; n++ {
		pos := ""
		if elemCnt > 1 {
			pos = posOrdinals[n] + " "
		}
		out = append(out, TypeParam{
			Symbol: elemParams[n],
			Kind:   ParamElem,
			Desc:   "The type of the elements of the " + pos + "array argument to the " + op + ".",
		})
	}

	if s.Ret == sig.Object {
		out = append(out, TypeParam{
			Symbol: outputParams[0],
			Kind:   ParamOut,
			Desc:   "The type of the result of the " + op + ".",
		})
	}

	return out
}

// arguments expands the signature into the primary method's declared
// parameter list.
func arguments(s sig.Signature, role Role, op string) []Arg {
	argc := s.Argc()
	if argc == 0 {
		return nil
	}

	if s.AllArgs(sig.Object) {
		out := make([]Arg, argc)
		for n := range out {
			p := inputParams[n]
			pos := ""
			if argc > 1 {
				pos = posOrdinals[n] + " "
			}
			out[n] = Arg{
				JavaType: p,
				Name:     strings.ToLower(p),
				Abbr:     strings.ToLower(p),
				Desc:     "The " + pos + "argument to the " + op + ".",
			}
		}
		return out
	}

	if argc <= 2 && len(s.ArgSet()) == 1 && s.ArrayArgs() == 0 {
		kw := s.Args[0].Keyword()
		if argc == 1 {
			name := "value"
			if role == RoleOperator {
				name = "operand"
			}
			return []Arg{{JavaType: kw, Name: name, Abbr: "x", Desc: "The argument to the " + op + "."}}
		}
		return []Arg{
			{JavaType: kw, Name: "left", Abbr: "x", Desc: "The first argument to the " + op + "."},
			{JavaType: kw, Name: "right", Abbr: "y", Desc: "The second argument to the " + op + "."},
		}
	}

	// Remaining cases: a leading object argument plus one other type, or
	// uniform arguments involving an array segment.
	var out []Arg
	elemIdx := 0

	if s.Args[0] == sig.Object {
		out = append(out, Arg{
			JavaType: inputParams[0],
			Name:     "obj",
			Abbr:     "obj",
			Desc:     "The object-valued argument to the " + op + ".",
		})
		a := s.Args[1]
		var typ string
		switch {
		case a == sig.ObjectArray:
			typ = "array "
		case a.IsArray():
			typ = "{@code~" + a.Elem().Keyword() + "}-valued array "
		default:
			typ = "{@code~" + a.Keyword() + "}-valued "
		}
		return appendArg(out, a, "", "", typ, &elemIdx, op)
	}

	for n := 0; n < argc; n++ {
		a := s.Args[n]
		suf, pos := "", ""
		if argc > 1 {
			suf = strconv.Itoa(n + 1)
			pos = posOrdinals[n] + " "
		}
		typ := ""
		if a.IsArray() {
			typ = "array "
		}
		out = appendArg(out, a, suf, pos, typ, &elemIdx, op)
	}
	return out
}

// appendArg appends the Arg for one declared argument, expanding array
// segments into array plus inclusive-start/exclusive-end index slots.
func appendArg(out []Arg, a sig.Type, suf, pos, typ string, elemIdx *int, op string) []Arg {
	var jt, name, abbr string
	if a.IsArray() {
		name, abbr = "array"+suf, "arr"+suf
		if a == sig.ObjectArray {
			jt = elemParams[*elemIdx] + "[]"
			*elemIdx++
		} else {
			jt = a.Keyword()
		}
	} else {
		name, abbr = "value"+suf, "val"+suf
		jt = a.Keyword()
	}

	out = append(out, Arg{JavaType: jt, Name: name, Abbr: abbr, Desc: "The " + pos + typ + "argument to the " + op + "."})

	if a.IsArray() {
		out = append(out,
			Arg{JavaType: "int", Name: "fromIndex" + suf, Abbr: "from" + suf, Desc: "The start index in {@code~array" + suf + "}, inclusive."},
			Arg{JavaType: "int", Name: "toIndex" + suf, Abbr: "to" + suf, Desc: "The end index in {@code~array" + suf + "}, exclusive."},
		)
	}
	return out
}

var coreReturns = map[sig.Type]bool{
	sig.Object:  true,
	sig.Int:     true,
	sig.Long:    true,
	sig.Double:  true,
	sig.Boolean: true,
	sig.Void:    true,
}

func groupOf(s sig.Signature) Group {
	core := coreReturns[s.Ret]
	for _, a := range s.Args {
		switch a {
		case sig.Object, sig.Int, sig.Long, sig.Double:
		default:
			core = false
		}
	}
	if core {
		return GroupCore
	}
	if s.ArrayArgs() > 0 {
		return GroupArray
	}
	return GroupPrimitive
}

// GenericDecl renders the descriptor's generic parameter list, e.g.
// "<T, R>", or an empty string when the descriptor has none.
func (d *Descriptor) GenericDecl() string {
	return d.genericList(func(p TypeParam) string { return p.Symbol })
}

// genericWildcards renders the parameter list with use-site variance, for
// positions where another instance of the same shape is consumed.
func (d *Descriptor) genericWildcards() string {
	return d.genericList(func(p TypeParam) string {
		switch p.Kind {
		case ParamIn:
			return "? super " + p.Symbol
		case ParamOut:
			return "? extends " + p.Symbol
		default:
			return p.Symbol
		}
	})
}

// genericSubst renders the parameter list with one symbol replaced, for
// compound shapes that introduce a fresh input or output type.
func (d *Descriptor) genericSubst(from, to string) string {
	return d.genericList(func(p TypeParam) string {
		if p.Symbol == from {
			return to
		}
		return p.Symbol
	})
}

func (d *Descriptor) genericList(f func(TypeParam) string) string {
	if len(d.TypeParams) == 0 {
		return ""
	}
	parts := make([]string, len(d.TypeParams))
	for i, p := range d.TypeParams {
		parts[i] = f(p)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// argAbbrs returns the abbreviated argument names, the lambda parameter
// list shared by every derived method body.
func (d *Descriptor) argAbbrs() []string {
	abbrs := make([]string, len(d.Args))
	for i, a := range d.Args {
		abbrs[i] = a.Abbr
	}
	return abbrs
}

// argWords returns the prose for referring to the descriptor's arguments
// collectively: the noun, the agreement form of "match", and the
// demonstrative used in "those same arguments". All empty when argc is 0.
func (d *Descriptor) argWords() (arguments, match, those string) {
	switch {
	case d.Signature.Argc() == 0:
		return "", "", ""
	case d.Signature.Argc() == 1 && !d.Signature.Args[0].IsArray():
		return "argument", "matches", "that"
	default:
		return "arguments", "match", "those"
	}
}

// argRefs builds ArgRef expressions over the descriptor's abbreviated
// argument names.
func (d *Descriptor) argRefs() []Expr {
	refs := make([]Expr, len(d.Args))
	for i, a := range d.Args {
		refs[i] = ArgRef(a.Abbr)
	}
	return refs
}
