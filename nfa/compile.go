package nfa

import (
	"fmt"

	"github.com/relgraph/proppath/ast"
)

// CompilerConfig configures NFA compilation behavior.
type CompilerConfig struct {
	// MaxRecursionDepth limits AST recursion depth during compilation,
	// guarding against pathological nesting of grouped expressions.
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns sensible defaults.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{MaxRecursionDepth: 200}
}

// Compiler translates an ast.Node tree into a Thompson NFA, following
// the per-operator fragment table in spec §4.D. Each compiled fragment
// has exactly one start state and one end state (the classic Thompson
// construction invariant): Sequence, Alternative, and the quantifiers
// all stitch fragments together purely through epsilon transitions,
// never by merging or duplicating states.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int
}

// NewCompiler creates a Compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxRecursionDepth <= 0 {
		config.MaxRecursionDepth = 200
	}
	return &Compiler{config: config, builder: NewBuilder()}
}

// NewDefaultCompiler creates a Compiler with default configuration.
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile compiles node into a complete NFA whose final set is the
// singleton end state of the top-level fragment.
func (c *Compiler) Compile(node ast.Node) (*NFA, error) {
	c.builder = NewBuilder()
	c.depth = 0
	start, end, err := c.compileNode(node)
	if err != nil {
		return nil, err
	}
	return c.builder.Build(start, []StateID{end})
}

func (c *Compiler) compileNode(node ast.Node) (start, end StateID, err error) {
	c.depth++
	defer func() { c.depth-- }()
	if c.depth > c.config.MaxRecursionDepth {
		return InvalidState, InvalidState, &CompileError{
			NodeKind: "expression",
			Err:      fmt.Errorf("nesting exceeds MaxRecursionDepth (%d)", c.config.MaxRecursionDepth),
		}
	}

	switch n := node.(type) {
	case ast.Predicate:
		return c.compilePredicate(n)
	case ast.Inverse:
		return c.compileInverse(n)
	case ast.Sequence:
		return c.compileSequence(n)
	case ast.Alternative:
		return c.compileAlternative(n)
	case ast.ZeroOrMore:
		return c.compileZeroOrMore(n)
	case ast.OneOrMore:
		return c.compileOneOrMore(n)
	case ast.ZeroOrOne:
		return c.compileZeroOrOne(n)
	case ast.Group:
		return c.compileGroup(n)
	default:
		return InvalidState, InvalidState, &CompileError{
			NodeKind: fmt.Sprintf("%T", node),
			Err:      fmt.Errorf("unknown AST node kind"),
		}
	}
}

// compilePredicate builds "s --p--> f" per spec §4.D.
func (c *Compiler) compilePredicate(p ast.Predicate) (start, end StateID, err error) {
	s := c.builder.AddState()
	f := c.builder.AddState()
	if err := c.builder.AddTransition(s, Pred(p.IRI), f); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "Predicate", Err: err}
	}
	return s, f, nil
}

// compileSequence chains A's end to B's start with an epsilon edge.
func (c *Compiler) compileSequence(seq ast.Sequence) (start, end StateID, err error) {
	as, ae, err := c.compileNode(seq.Left)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	bs, be, err := c.compileNode(seq.Right)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	if err := c.builder.AddEpsilon(ae, bs); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "Sequence", Err: err}
	}
	return as, be, nil
}

// compileAlternative builds a fresh initial state epsilon-branching to
// both alternatives, and a fresh join state both alternatives
// epsilon-converge on.
func (c *Compiler) compileAlternative(alt ast.Alternative) (start, end StateID, err error) {
	as, ae, err := c.compileNode(alt.Left)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	bs, be, err := c.compileNode(alt.Right)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	s := c.builder.AddState()
	f := c.builder.AddState()
	for _, edge := range [][2]StateID{{s, as}, {s, bs}, {ae, f}, {be, f}} {
		if err := c.builder.AddEpsilon(edge[0], edge[1]); err != nil {
			return InvalidState, InvalidState, &CompileError{NodeKind: "Alternative", Err: err}
		}
	}
	return s, f, nil
}

// compileZeroOrMore builds the classic Kleene-star fragment: a fresh
// entry/exit pair with epsilon edges that let the loop be skipped
// entirely, taken once, or taken repeatedly.
func (c *Compiler) compileZeroOrMore(z ast.ZeroOrMore) (start, end StateID, err error) {
	as, ae, err := c.compileNode(z.Child)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	s := c.builder.AddState()
	f := c.builder.AddState()
	for _, edge := range [][2]StateID{{s, as}, {s, f}, {ae, as}, {ae, f}} {
		if err := c.builder.AddEpsilon(edge[0], edge[1]); err != nil {
			return InvalidState, InvalidState, &CompileError{NodeKind: "ZeroOrMore", Err: err}
		}
	}
	return s, f, nil
}

// compileOneOrMore is ZeroOrMore without the skip-entirely edge: the
// child's own start is the fragment's start, so it must be traversed
// at least once.
func (c *Compiler) compileOneOrMore(o ast.OneOrMore) (start, end StateID, err error) {
	as, ae, err := c.compileNode(o.Child)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	f := c.builder.AddState()
	if err := c.builder.AddEpsilon(ae, as); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "OneOrMore", Err: err}
	}
	if err := c.builder.AddEpsilon(ae, f); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "OneOrMore", Err: err}
	}
	return as, f, nil
}

// compileZeroOrOne adds a fresh entry state that can either enter the
// child or skip straight to the child's existing end.
func (c *Compiler) compileZeroOrOne(q ast.ZeroOrOne) (start, end StateID, err error) {
	as, ae, err := c.compileNode(q.Child)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	s := c.builder.AddState()
	if err := c.builder.AddEpsilon(s, as); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "ZeroOrOne", Err: err}
	}
	if err := c.builder.AddEpsilon(s, ae); err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "ZeroOrOne", Err: err}
	}
	return s, ae, nil
}

// compileGroup is semantically transparent: a Group carries no meaning
// of its own beyond its child.
func (c *Compiler) compileGroup(g ast.Group) (start, end StateID, err error) {
	return c.compileNode(g.Child)
}

// compileInverse compiles Child in an isolated sub-compilation, builds
// it into a standalone NFA, applies the §4.C inversion contract to that
// NFA, and splices the inverted fragment into the outer automaton being
// built. This keeps inversion a property of a complete, well-formed
// sub-NFA (matching how spec §4.D states the rule: "compile A, then
// apply NFA inversion") rather than a transition-by-transition rewrite
// interleaved with construction.
func (c *Compiler) compileInverse(inv ast.Inverse) (start, end StateID, err error) {
	sub := NewCompiler(c.config)
	sub.depth = c.depth
	cs, ce, err := sub.compileNode(inv.Child)
	if err != nil {
		return InvalidState, InvalidState, err
	}
	subNFA, err := sub.builder.Build(cs, []StateID{ce})
	if err != nil {
		return InvalidState, InvalidState, &CompileError{NodeKind: "Inverse", Err: err}
	}
	inverted := subNFA.Invert()
	idMap := c.builder.Append(inverted)
	return idMap[cs], idMap[ce], nil
}
