// Package shape synthesizes interface descriptors from admitted signatures
// and derives the optional combinator methods each descriptor supports.
package shape

// Role is the semantic category of a descriptor, governing naming, prose,
// and capability eligibility.
type Role uint8

const (
	// RoleAction is the zero-argument, no-result shape.
	RoleAction Role = iota
	// RoleSupplier takes no arguments and produces a result.
	RoleSupplier
	// RoleConsumer takes arguments and produces no result.
	RoleConsumer
	// RoleOperator takes arguments of its own result type.
	RoleOperator
	// RolePredicate takes arguments and produces a boolean.
	RolePredicate
	// RoleFunction takes arguments and produces an object result.
	RoleFunction
	// RoleToFunction takes arguments and produces a scalar result of a type
	// distinct from its argument types.
	RoleToFunction
)

var roleNames = [...]string{
	RoleAction:     "action",
	RoleSupplier:   "supplier",
	RoleConsumer:   "consumer",
	RoleOperator:   "operator",
	RolePredicate:  "predicate",
	RoleFunction:   "function",
	RoleToFunction: "to-function",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// vocab carries the prose vocabulary used when documenting a shape: the noun
// for the shape itself, the conjugations of its verb, and the preposition
// that connects the verb to the shape's arguments (empty when the shape
// takes none, or supplies rather than consumes).
type vocab struct {
	noun    string // "operation", "operator", "predicate", "function"
	present string // "performs"
	infin   string // "perform"
	past    string // "performed"
	prep    string // "using", "to", "against"
}

var vocabs = [...]vocab{
	RoleAction:     {noun: "operation", present: "performs", infin: "perform", past: "performed"},
	RoleSupplier:   {noun: "operation", present: "supplies", infin: "supply", past: "supplied"},
	RoleConsumer:   {noun: "operation", present: "performs", infin: "perform", past: "performed", prep: "using"},
	RoleOperator:   {noun: "operator", present: "applies", infin: "apply", past: "applied", prep: "to"},
	RolePredicate:  {noun: "predicate", present: "evaluates", infin: "evaluate", past: "evaluated", prep: "against"},
	RoleFunction:   {noun: "function", present: "applies", infin: "apply", past: "applied", prep: "to"},
	RoleToFunction: {noun: "function", present: "applies", infin: "apply", past: "applied", prep: "to"},
}

func (r Role) vocab() vocab {
	return vocabs[r]
}
