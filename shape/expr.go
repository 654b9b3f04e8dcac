package shape

// Expr is a node in a method-body expression tree. Bodies are structured
// rather than interpolated text; the emitter renders them.
type Expr interface {
	exprNode()
}

// ArgRef references a lambda parameter by its abbreviated name.
type ArgRef string

// Call invokes a method. An empty Recv means the enclosing instance.
type Call struct {
	Recv string
	Name string
	Args []Expr
}

// Not is logical complement.
type Not struct {
	X Expr
}

// AndAnd is short-circuit logical intersection.
type AndAnd struct {
	X, Y Expr
}

// OrOr is short-circuit logical union.
type OrOr struct {
	X, Y Expr
}

func (ArgRef) exprNode() {}
func (Call) exprNode()   {}
func (Not) exprNode()    {}
func (AndAnd) exprNode() {}
func (OrOr) exprNode()   {}

// Lambda is a closure over the descriptor's own argument list. Exactly one
// of Expr and Stmts is set: Expr for a single-expression body, Stmts for a
// statement body evaluated in order for effect.
type Lambda struct {
	Params []string
	Expr   Expr
	Stmts  []Expr
}
