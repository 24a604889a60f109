package internal

import "github.com/sirupsen/logrus"

// The argument is evaluated in the caller's environment before the callee.
func (e *exec) visitCallNode(n *callNode) Node {
	argument := e.evaluate(n.argument)
	callee := e.evaluate(n.callee)
	closure, ok := callee.(*closureNode)
	if !ok {
		typeErr("closure", callee)
	}
	fun, ok := closure.fun.(*funNode)
	if !ok {
		typeErr("function", closure.fun)
	}
	return e.call(closure, fun, argument)
}

func (e *exec) call(closure *closureNode, fun *funNode, argument Node) Node {
	env := newFrame(closure, fun, e.freeVariables(fun), argument)
	if e.tracing() {
		e.log.WithFields(logrus.Fields{
			"function": fun.self,
			"frame":    env.String(),
		}).Debug("call")
	}

	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env

	return e.evaluate(fun.body)
}

func (e *exec) freeVariables(fun *funNode) []string {
	if names, ok := e.frees[fun]; ok {
		return names
	}
	names := FreeVariables(fun)
	e.frees[fun] = names
	return names
}

// newFrame builds the environment a call runs in: the free variables read
// from the captured environment, the function bound to its own name and the
// parameter bound to the argument.
func newFrame(closure *closureNode, fun *funNode, free []string, argument Node) *Env {
	env := NewEnv()
	for _, name := range free {
		value, err := closure.env.Get(name)
		must(err)
		env.Add(name, value)
	}
	if fun.self != "" {
		env.Add(fun.self, closure)
	}
	if fun.param != "" {
		env.Add(fun.param, argument)
	}
	return env
}
