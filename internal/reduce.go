package internal

// Reducible reports whether node still has evaluation work left. Numbers,
// booleans, do-nothing, closures and pairs of values are normal forms.
func Reducible(node Node) bool {
	switch n := node.(type) {
	case *numberNode, *booleanNode, *doNothingNode, *closureNode:
		return false
	case *pairNode:
		return Reducible(n.first) || Reducible(n.second)
	}
	return true
}

// Reduce rewrites node by exactly one step. Reducing a normal form, or a
// call, fails with ErrUnhandledTerm.
func Reduce(node Node, env *Env) (result Node, err error) {
	if env == nil {
		env = NewEnv()
	}
	defer catch(&err)
	return node.accept(&reducer{env: env}), nil
}

// reducer performs a single leftmost-innermost rewrite
type reducer struct {
	env *Env
}

func (r *reducer) reduce(node Node) Node {
	return node.accept(r)
}

func (r *reducer) visitNumberNode(n *numberNode) Node {
	runtimeErr(ErrUnhandledTerm, n)
	return nil
}

func (r *reducer) visitBooleanNode(n *booleanNode) Node {
	runtimeErr(ErrUnhandledTerm, n)
	return nil
}

func (r *reducer) visitDoNothingNode(n *doNothingNode) Node {
	runtimeErr(ErrUnhandledTerm, n)
	return nil
}

func (r *reducer) visitClosureNode(n *closureNode) Node {
	runtimeErr(ErrUnhandledTerm, n)
	return nil
}

// Calls have no small-step rule.
func (r *reducer) visitCallNode(n *callNode) Node {
	runtimeErr(ErrUnhandledTerm, n)
	return nil
}

func (r *reducer) visitIsDoNothingNode(n *isDoNothingNode) Node {
	if Reducible(n.term) {
		return IsDoNothing(r.reduce(n.term))
	}
	return Boolean(IsNothing(n.term))
}

func (r *reducer) visitAddNode(n *addNode) Node {
	return r.binary(n)
}

func (r *reducer) visitSubtractNode(n *subtractNode) Node {
	return r.binary(n)
}

func (r *reducer) visitMultiplyNode(n *multiplyNode) Node {
	return r.binary(n)
}

func (r *reducer) visitLessNode(n *lessNode) Node {
	return r.binary(n)
}

func (r *reducer) visitEqualNode(n *equalNode) Node {
	return r.binary(n)
}

func (r *reducer) binary(node Node) Node {
	op, left, right, _ := binaryOperator(node)
	switch {
	case Reducible(left):
		return rebuild(op, r.reduce(left), right)
	case Reducible(right):
		return rebuild(op, left, r.reduce(right))
	}
	return numberOperations[op](left, right)
}

func (r *reducer) visitGreaterNode(n *greaterNode) Node {
	return LT(n.right, n.left)
}

func (r *reducer) visitVariableNode(n *variableNode) Node {
	value, err := r.env.Get(n.name)
	must(err)
	return value
}

func (r *reducer) visitAssignNode(n *assignNode) Node {
	if Reducible(n.value) {
		return Assign(n.name, r.reduce(n.value))
	}
	r.env.Add(n.name, n.value)
	return nothing
}

func (r *reducer) visitIfNode(n *ifNode) Node {
	if Reducible(n.condition) {
		return If(r.reduce(n.condition), n.consequence, n.alternative)
	}
	if condition(n.condition) {
		return n.consequence
	}
	return n.alternative
}

// A finished head is dropped whatever its value, matching the evaluator
// which discards it.
func (r *reducer) visitSequenceNode(n *sequenceNode) Node {
	if !Reducible(n.head) {
		return n.rest
	}
	return Sequence(r.reduce(n.head), n.rest)
}

func (r *reducer) visitWhileNode(n *whileNode) Node {
	return If(n.condition, Sequence(n.body, n), nothing)
}

func (r *reducer) visitPairNode(n *pairNode) Node {
	if Reducible(n.first) {
		return Pair(r.reduce(n.first), n.second)
	}
	return Pair(n.first, r.reduce(n.second))
}

func (r *reducer) visitFstNode(n *fstNode) Node {
	if Reducible(n.pair) {
		return Fst(r.reduce(n.pair))
	}
	return r.project(n.pair).first
}

func (r *reducer) visitSndNode(n *sndNode) Node {
	if Reducible(n.pair) {
		return Snd(r.reduce(n.pair))
	}
	return r.project(n.pair).second
}

func (r *reducer) project(value Node) *pairNode {
	p, ok := value.(*pairNode)
	if !ok {
		typeErr("pair", value)
	}
	return p
}

// Capture happens here exactly as in the evaluator.
func (r *reducer) visitFunNode(n *funNode) Node {
	return Closure(r.env.Snapshot(), n)
}
