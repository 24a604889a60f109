package internal

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type nameSet map[string]struct{}

// FreeVariables returns, sorted, the names fun reads that are neither its
// own name, its parameter nor assigned inside it before being read.
func FreeVariables(fun Node) []string {
	free := nameSet{}
	collectFree(fun, nameSet{}, free)
	names := lo.Keys(free)
	slices.Sort(names)
	return names
}

// collectFree walks node in evaluation order. Assignments extend bound for
// the rest of the walk. A nested function gets its own copy of bound so its
// locals do not leak outwards.
func collectFree(node Node, bound, free nameSet) {
	switch n := node.(type) {
	case *numberNode, *booleanNode, *doNothingNode:
	case *isDoNothingNode:
		collectFree(n.term, bound, free)
	case *fstNode:
		collectFree(n.pair, bound, free)
	case *sndNode:
		collectFree(n.pair, bound, free)
	case *addNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *subtractNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *multiplyNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *lessNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *equalNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *greaterNode:
		collectFree(n.left, bound, free)
		collectFree(n.right, bound, free)
	case *sequenceNode:
		collectFree(n.head, bound, free)
		collectFree(n.rest, bound, free)
	case *whileNode:
		collectFree(n.condition, bound, free)
		collectFree(n.body, bound, free)
	case *pairNode:
		collectFree(n.first, bound, free)
		collectFree(n.second, bound, free)
	case *callNode:
		collectFree(n.callee, bound, free)
		collectFree(n.argument, bound, free)
	case *ifNode:
		collectFree(n.condition, bound, free)
		collectFree(n.consequence, bound, free)
		collectFree(n.alternative, bound, free)
	case *variableNode:
		if _, ok := bound[n.name]; !ok {
			free[n.name] = struct{}{}
		}
	case *assignNode:
		collectFree(n.value, bound, free)
		bound[n.name] = struct{}{}
	case *funNode:
		inner := lo.Assign(bound)
		inner[n.self] = struct{}{}
		if n.param != "" {
			inner[n.param] = struct{}{}
		}
		collectFree(n.body, inner, free)
	case *closureNode:
		collectFree(n.fun, bound, free)
	}
}
