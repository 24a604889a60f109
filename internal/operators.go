package internal

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opMul operator = "mul"
	opLt  operator = "lt"
	opEq  operator = "eq"
)

// operatorApply folds two values into one. Both arguments must already be
// values; a non-number aborts with a type mismatch.
type operatorApply func(left, right Node) Node

var numberOperations = map[operator]operatorApply{
	opAdd: func(left, right Node) Node {
		l, r := numbers(left, right)
		return Number(l + r)
	},
	opSub: func(left, right Node) Node {
		l, r := numbers(left, right)
		return Number(l - r)
	},
	opMul: func(left, right Node) Node {
		l, r := numbers(left, right)
		return Number(l * r)
	},
	opLt: func(left, right Node) Node {
		l, r := numbers(left, right)
		return Boolean(l < r)
	},
	opEq: func(left, right Node) Node {
		l, r := numbers(left, right)
		return Boolean(l == r)
	},
}

func numbers(left, right Node) (int64, int64) {
	l, ok := left.(*numberNode)
	if !ok {
		typeErr("number", left)
	}
	r, ok := right.(*numberNode)
	if !ok {
		typeErr("number", right)
	}
	return l.value, r.value
}

// condition extracts the boolean that decides an If or While
func condition(value Node) bool {
	b, ok := value.(*booleanNode)
	if !ok {
		typeErr("boolean", value)
	}
	return b.value
}

func binaryOperator(node Node) (operator, Node, Node, bool) {
	switch n := node.(type) {
	case *addNode:
		return opAdd, n.left, n.right, true
	case *subtractNode:
		return opSub, n.left, n.right, true
	case *multiplyNode:
		return opMul, n.left, n.right, true
	case *lessNode:
		return opLt, n.left, n.right, true
	case *equalNode:
		return opEq, n.left, n.right, true
	}
	return "", nil, nil, false
}

func rebuild(op operator, left, right Node) Node {
	switch op {
	case opAdd:
		return Add(left, right)
	case opSub:
		return Subtract(left, right)
	case opMul:
		return Multiply(left, right)
	case opLt:
		return LT(left, right)
	case opEq:
		return EQ(left, right)
	}
	runtimeErr(ErrUnhandledTerm, nil)
	return nil
}
