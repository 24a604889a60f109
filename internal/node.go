package internal

//go:generate sh -c "go run ../cmd/nodegen Node > node_gen.go"

import (
	"fmt"
	"strconv"
)

var nothing Node = &doNothingNode{}

// Number creates an integer literal
func Number(value int64) Node { return &numberNode{value: value} }

// Boolean creates a boolean literal
func Boolean(value bool) Node { return &booleanNode{value: value} }

// DoNothing returns the unit value
func DoNothing() Node { return nothing }

// IsDoNothing tests whether term evaluates to the unit value
func IsDoNothing(term Node) Node { return &isDoNothingNode{term: term} }

// Add creates left + right
func Add(left, right Node) Node { return &addNode{left: left, right: right} }

// Subtract creates left - right
func Subtract(left, right Node) Node { return &subtractNode{left: left, right: right} }

// Multiply creates left * right
func Multiply(left, right Node) Node { return &multiplyNode{left: left, right: right} }

// LT creates left < right
func LT(left, right Node) Node { return &lessNode{left: left, right: right} }

// EQ creates left == right
func EQ(left, right Node) Node { return &equalNode{left: left, right: right} }

// GT creates left > right. It is always rewritten to LT(right, left)
// before being computed.
func GT(left, right Node) Node { return &greaterNode{left: left, right: right} }

// Variable creates a reference to a binding
func Variable(name string) Node { return &variableNode{name: name} }

// Assign creates name = value
func Assign(name string, value Node) Node { return &assignNode{name: name, value: value} }

// If creates a conditional with both branches
func If(condition, consequence, alternative Node) Node {
	return &ifNode{condition: condition, consequence: consequence, alternative: alternative}
}

// Sequence creates head; rest
func Sequence(head, rest Node) Node { return &sequenceNode{head: head, rest: rest} }

// Block folds terms into right nested sequences. An empty block is DoNothing.
func Block(terms ...Node) Node {
	if len(terms) == 0 {
		return nothing
	}
	out := terms[len(terms)-1]
	for i := len(terms) - 2; i >= 0; i-- {
		out = Sequence(terms[i], out)
	}
	return out
}

// While creates a loop
func While(condition, body Node) Node { return &whileNode{condition: condition, body: body} }

// Pair creates a 2-tuple
func Pair(first, second Node) Node { return &pairNode{first: first, second: second} }

// Fst projects the first component of a pair
func Fst(pair Node) Node { return &fstNode{pair: pair} }

// Snd projects the second component of a pair
func Snd(pair Node) Node { return &sndNode{pair: pair} }

// Fun creates a function literal. An empty param makes a zero argument
// function, an empty self makes it anonymous.
func Fun(self, param string, body Node) Node {
	return &funNode{self: self, param: param, body: body}
}

// Closure pairs a function term with the environment it captured.
// env must not be shared with any live scope.
func Closure(env *Env, fun Node) Node {
	if env == nil {
		env = NewEnv()
	}
	return &closureNode{env: env, fun: fun}
}

// Call applies callee to argument
func Call(callee, argument Node) Node { return &callNode{callee: callee, argument: argument} }

// FromInts builds a list of nested pairs terminated by DoNothing
func FromInts(values []int64) Node {
	list := nothing
	for i := len(values) - 1; i >= 0; i-- {
		list = Pair(Number(values[i]), list)
	}
	return list
}

// IntValue returns the integer held by a Number
func IntValue(n Node) (int64, error) {
	if num, ok := n.(*numberNode); ok {
		return num.value, nil
	}
	return 0, &RuntimeError{Err: ErrTypeMismatch, Expected: "number", Term: n}
}

// BoolValue returns the boolean held by a Boolean
func BoolValue(n Node) (bool, error) {
	if b, ok := n.(*booleanNode); ok {
		return b.value, nil
	}
	return false, &RuntimeError{Err: ErrTypeMismatch, Expected: "boolean", Term: n}
}

// IsNothing reports whether n is the unit value
func IsNothing(n Node) bool {
	_, ok := n.(*doNothingNode)
	return ok
}

// Equal compares two terms structurally. Closures are equal when their
// functions and captured environments are.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *numberNode:
		b, ok := b.(*numberNode)
		return ok && a.value == b.value
	case *booleanNode:
		b, ok := b.(*booleanNode)
		return ok && a.value == b.value
	case *doNothingNode:
		return IsNothing(b)
	case *isDoNothingNode:
		b, ok := b.(*isDoNothingNode)
		return ok && Equal(a.term, b.term)
	case *addNode:
		b, ok := b.(*addNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *subtractNode:
		b, ok := b.(*subtractNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *multiplyNode:
		b, ok := b.(*multiplyNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *lessNode:
		b, ok := b.(*lessNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *equalNode:
		b, ok := b.(*equalNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *greaterNode:
		b, ok := b.(*greaterNode)
		return ok && Equal(a.left, b.left) && Equal(a.right, b.right)
	case *variableNode:
		b, ok := b.(*variableNode)
		return ok && a.name == b.name
	case *assignNode:
		b, ok := b.(*assignNode)
		return ok && a.name == b.name && Equal(a.value, b.value)
	case *ifNode:
		b, ok := b.(*ifNode)
		return ok && Equal(a.condition, b.condition) &&
			Equal(a.consequence, b.consequence) &&
			Equal(a.alternative, b.alternative)
	case *sequenceNode:
		b, ok := b.(*sequenceNode)
		return ok && Equal(a.head, b.head) && Equal(a.rest, b.rest)
	case *whileNode:
		b, ok := b.(*whileNode)
		return ok && Equal(a.condition, b.condition) && Equal(a.body, b.body)
	case *pairNode:
		b, ok := b.(*pairNode)
		return ok && Equal(a.first, b.first) && Equal(a.second, b.second)
	case *fstNode:
		b, ok := b.(*fstNode)
		return ok && Equal(a.pair, b.pair)
	case *sndNode:
		b, ok := b.(*sndNode)
		return ok && Equal(a.pair, b.pair)
	case *funNode:
		b, ok := b.(*funNode)
		return ok && a.self == b.self && a.param == b.param && Equal(a.body, b.body)
	case *closureNode:
		b, ok := b.(*closureNode)
		return ok && a.env.Equal(b.env) && Equal(a.fun, b.fun)
	case *callNode:
		b, ok := b.(*callNode)
		return ok && Equal(a.callee, b.callee) && Equal(a.argument, b.argument)
	}
	return false
}

func (n *numberNode) String() string    { return strconv.FormatInt(n.value, 10) }
func (n *booleanNode) String() string   { return strconv.FormatBool(n.value) }
func (n *doNothingNode) String() string { return "do-nothing" }
func (n *variableNode) String() string  { return n.name }

func (n *isDoNothingNode) String() string {
	return fmt.Sprintf("is-do-nothing(%s)", n.term)
}

func (n *addNode) String() string      { return fmt.Sprintf("%s + %s", n.left, n.right) }
func (n *subtractNode) String() string { return fmt.Sprintf("%s - %s", n.left, n.right) }
func (n *multiplyNode) String() string { return fmt.Sprintf("%s * %s", n.left, n.right) }
func (n *lessNode) String() string     { return fmt.Sprintf("%s < %s", n.left, n.right) }
func (n *equalNode) String() string    { return fmt.Sprintf("%s == %s", n.left, n.right) }
func (n *greaterNode) String() string  { return fmt.Sprintf("%s > %s", n.left, n.right) }

func (n *assignNode) String() string {
	return fmt.Sprintf("%s = %s", n.name, n.value)
}

func (n *ifNode) String() string {
	return fmt.Sprintf("if (%s) %s else %s", n.condition, n.consequence, n.alternative)
}

func (n *sequenceNode) String() string {
	return fmt.Sprintf("%s; %s", n.head, n.rest)
}

func (n *whileNode) String() string {
	return fmt.Sprintf("while (%s) %s", n.condition, n.body)
}

func (n *pairNode) String() string {
	return fmt.Sprintf("pair (%s, %s)", n.first, n.second)
}

func (n *fstNode) String() string { return fmt.Sprintf("fst (%s)", n.pair) }
func (n *sndNode) String() string { return fmt.Sprintf("snd (%s)", n.pair) }

func (n *funNode) String() string {
	if n.self == "" {
		return fmt.Sprintf("function (%s) %s", n.param, n.body)
	}
	return fmt.Sprintf("function %s (%s) %s", n.self, n.param, n.body)
}

func (n *closureNode) String() string {
	return fmt.Sprintf("closure %s with %s", n.fun, n.env)
}

func (n *callNode) String() string {
	return fmt.Sprintf("%s(%s)", n.callee, n.argument)
}
