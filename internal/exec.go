package internal

import "github.com/sirupsen/logrus"

// exec is the big-step evaluator. It computes values directly by walking
// the term.
type exec struct {
	options

	env   *Env
	depth int
	frees map[*funNode][]string
}

// Evaluate computes the value of node. Assignments write into env; a nil
// env starts empty. The evaluation is aborted on the first runtime error.
func Evaluate(node Node, env *Env, opts ...Option) (result Node, err error) {
	if env == nil {
		env = NewEnv()
	}
	e := &exec{
		options: newOptions(opts),
		env:     env,
		frees:   make(map[*funNode][]string),
	}
	defer catch(&err)
	return e.evaluate(node), nil
}

func (e *exec) evaluate(node Node) Node {
	if e.tracing() {
		e.log.WithFields(logrus.Fields{
			"term":  node.String(),
			"depth": e.depth,
		}).Debug("evaluate")
	}
	e.depth++
	value := node.accept(e)
	e.depth--
	return value
}

func (e *exec) visitNumberNode(n *numberNode) Node {
	return n
}

func (e *exec) visitBooleanNode(n *booleanNode) Node {
	return n
}

func (e *exec) visitDoNothingNode(n *doNothingNode) Node {
	return n
}

func (e *exec) visitIsDoNothingNode(n *isDoNothingNode) Node {
	return Boolean(IsNothing(e.evaluate(n.term)))
}

func (e *exec) visitAddNode(n *addNode) Node {
	return e.binary(opAdd, n.left, n.right)
}

func (e *exec) visitSubtractNode(n *subtractNode) Node {
	return e.binary(opSub, n.left, n.right)
}

func (e *exec) visitMultiplyNode(n *multiplyNode) Node {
	return e.binary(opMul, n.left, n.right)
}

func (e *exec) visitLessNode(n *lessNode) Node {
	return e.binary(opLt, n.left, n.right)
}

func (e *exec) visitEqualNode(n *equalNode) Node {
	return e.binary(opEq, n.left, n.right)
}

func (e *exec) visitGreaterNode(n *greaterNode) Node {
	return e.evaluate(LT(n.right, n.left))
}

func (e *exec) binary(op operator, left, right Node) Node {
	l := e.evaluate(left)
	r := e.evaluate(right)
	return numberOperations[op](l, r)
}

func (e *exec) visitVariableNode(n *variableNode) Node {
	value, err := e.env.Get(n.name)
	must(err)
	return value
}

func (e *exec) visitAssignNode(n *assignNode) Node {
	value := e.evaluate(n.value)
	e.env.Add(n.name, value)
	return nothing
}

func (e *exec) visitIfNode(n *ifNode) Node {
	if condition(e.evaluate(n.condition)) {
		return e.evaluate(n.consequence)
	}
	return e.evaluate(n.alternative)
}

// Sequences nest to the right, so the spine is walked in a loop.
func (e *exec) visitSequenceNode(n *sequenceNode) Node {
	for {
		e.evaluate(n.head)
		rest, ok := n.rest.(*sequenceNode)
		if !ok {
			return e.evaluate(n.rest)
		}
		n = rest
	}
}

func (e *exec) visitWhileNode(n *whileNode) Node {
	for condition(e.evaluate(n.condition)) {
		e.evaluate(n.body)
	}
	return nothing
}

func (e *exec) visitPairNode(n *pairNode) Node {
	first := e.evaluate(n.first)
	second := e.evaluate(n.second)
	return Pair(first, second)
}

func (e *exec) visitFstNode(n *fstNode) Node {
	return e.evaluate(e.pair(n.pair).first)
}

func (e *exec) visitSndNode(n *sndNode) Node {
	return e.evaluate(e.pair(n.pair).second)
}

func (e *exec) pair(node Node) *pairNode {
	value := e.evaluate(node)
	p, ok := value.(*pairNode)
	if !ok {
		typeErr("pair", value)
	}
	return p
}

func (e *exec) visitFunNode(n *funNode) Node {
	return Closure(e.env.Snapshot(), n)
}

func (e *exec) visitClosureNode(n *closureNode) Node {
	return n
}
