package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func checkMachine(t *testing.T, node Node, env *Env, expected Node) *Machine {
	t.Helper()
	machine := NewMachine(node, env)
	result, err := machine.Run()
	if err != nil {
		t.Errorf("Error on: \n%s\n\tunexpected error: %v", node, err)
		return machine
	}
	if Reducible(result) {
		t.Errorf("Error on: \n%s\n\t%s is not a normal form", node, result)
	}
	if !Equal(result, expected) {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			node,
			expected,
			result,
		)
	}
	return machine
}

func checkMachineError(t *testing.T, node Node, env *Env, target error) {
	t.Helper()
	result, err := NewMachine(node, env).Run()
	if !errors.Is(err, target) {
		t.Errorf(
			"Error on: \n%s\n\tExpected error %v, found result %v and error %v",
			node,
			target,
			result,
			err,
		)
	}
}

func checkReduce(t *testing.T, node Node, env *Env, expected Node) {
	t.Helper()
	result, err := Reduce(node, env)
	if err != nil {
		t.Errorf("Error on: \n%s\n\tunexpected error: %v", node, err)
		return
	}
	if !Equal(result, expected) {
		t.Errorf("%s should reduce to %s instead of %s", node, expected, result)
	}
}

func TestReducible(t *testing.T) {
	values := []Node{
		Number(3),
		Boolean(false),
		DoNothing(),
		Pair(Number(1), Pair(Boolean(true), DoNothing())),
		Closure(NewEnv(), Fun("f", "x", Variable("x"))),
		FromInts([]int64{1, 2, 3}),
	}
	for _, value := range values {
		if Reducible(value) {
			t.Errorf("%s should not be reducible", value)
		}
		if _, err := Reduce(value, nil); !errors.Is(err, ErrUnhandledTerm) {
			t.Errorf("reducing %s should fail with %v, found %v", value, ErrUnhandledTerm, err)
		}
	}

	terms := []Node{
		Add(Number(1), Number(2)),
		Variable("x"),
		Pair(Number(1), Add(Number(1), Number(2))),
		Fun("f", "", DoNothing()),
		IsDoNothing(DoNothing()),
		While(Boolean(false), DoNothing()),
	}
	for _, term := range terms {
		if !Reducible(term) {
			t.Errorf("%s should be reducible", term)
		}
	}
}

func TestReduceOneStep(t *testing.T) {
	two := Multiply(Number(1), Number(2))
	twelve := Multiply(Number(3), Number(4))
	checkReduce(t, Add(two, twelve), nil, Add(Number(2), twelve))
	checkReduce(t, Add(Number(2), twelve), nil, Add(Number(2), Number(12)))
	checkReduce(t, Add(Number(2), Number(12)), nil, Number(14))

	checkReduce(t, GT(Variable("a"), Variable("b")), nil, LT(Variable("b"), Variable("a")))

	loop := While(LT(Variable("x"), Number(5)), Assign("x", Number(5)))
	checkReduce(t, loop, nil, If(LT(Variable("x"), Number(5)), Sequence(Assign("x", Number(5)), loop), DoNothing()))

	checkReduce(t, If(Boolean(true), Add(Number(1), Number(1)), Number(0)), nil, Add(Number(1), Number(1)))
	checkReduce(t, Sequence(DoNothing(), Variable("x")), nil, Variable("x"))
	checkReduce(t, Pair(Number(1), Add(Number(1), Number(1))), nil, Pair(Number(1), Number(2)))
	checkReduce(t, IsDoNothing(DoNothing()), nil, Boolean(true))
}

func TestReduceStatement(t *testing.T) {
	statement := Assign("x", Add(Variable("x"), Number(1)))
	env := newEnvWith(map[string]Node{"x": Number(2)})

	expected := []Node{
		Assign("x", Add(Number(2), Number(1))),
		Assign("x", Number(3)),
		DoNothing(),
	}
	for _, next := range expected {
		if !Reducible(statement) {
			t.Fatalf("%s should be reducible", statement)
		}
		var err error
		statement, err = Reduce(statement, env)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(statement, next) {
			t.Fatalf("expected %s instead of %s", next, statement)
		}
	}
	if Reducible(statement) {
		t.Errorf("%s should be a normal form", statement)
	}
	checkBinding(t, env, "x", Number(3))
}

func TestMachineArithmetic(t *testing.T) {
	m := Add(Multiply(Number(1), Number(2)), Multiply(Number(3), Number(4)))
	machine := checkMachine(t, m, nil, Number(14))
	if machine.Steps() != 3 {
		t.Errorf("expected 3 steps instead of %d", machine.Steps())
	}

	checkMachine(t, LT(Number(5), Add(Number(2), Number(2))), nil, Boolean(false))

	env := newEnvWith(map[string]Node{"x": Number(3), "y": Number(4)})
	checkMachine(t, Add(Variable("x"), Variable("y")), env, Number(7))
}

func TestMachineIf(t *testing.T) {
	env := newEnvWith(map[string]Node{"x": Boolean(true)})
	machine := checkMachine(t, If(
		Variable("x"),
		Assign("y", Number(1)),
		Assign("y", Number(2)),
	), env, DoNothing())
	checkBinding(t, machine.Env(), "y", Number(1))

	env = newEnvWith(map[string]Node{"x": Boolean(false)})
	machine = checkMachine(t, If(Variable("x"), Assign("y", Number(1)), DoNothing()), env, DoNothing())
	if _, err := machine.Env().Get("y"); !errors.Is(err, ErrUnboundVariable) {
		t.Errorf("y should be unbound, found %v", err)
	}
}

func TestMachineSequence(t *testing.T) {
	machine := checkMachine(t, Sequence(
		Assign("x", Add(Number(1), Number(1))),
		Assign("y", Add(Variable("x"), Number(3))),
	), nil, DoNothing())
	checkBinding(t, machine.Env(), "x", Number(2))
	checkBinding(t, machine.Env(), "y", Number(5))

	checkMachine(t, Sequence(Number(1), Number(2)), nil, Number(2))
}

func TestMachineWhile(t *testing.T) {
	env := newEnvWith(map[string]Node{"x": Number(1)})
	machine := checkMachine(t, While(
		LT(Variable("x"), Number(5)),
		Assign("x", Multiply(Variable("x"), Number(3))),
	), env, DoNothing())
	checkBinding(t, machine.Env(), "x", Number(9))
}

func TestMachinePair(t *testing.T) {
	env := newEnvWith(map[string]Node{
		"p": Pair(Add(Number(3), Number(4)), Multiply(Number(5), Number(6))),
	})
	machine := checkMachine(t, Sequence(
		Assign("y", Fst(Variable("p"))),
		Assign("z", Snd(Variable("p"))),
	), env, DoNothing())
	checkBinding(t, machine.Env(), "y", Number(7))
	checkBinding(t, machine.Env(), "z", Number(30))
}

func TestMachineFunctions(t *testing.T) {
	env := newEnvWith(map[string]Node{"x": Number(3)})
	machine := checkMachine(t, Block(
		Assign("f", Fun("f", "y", Add(Variable("x"), Variable("y")))),
		Assign("x", Number(5)),
	), env, DoNothing())
	value, err := machine.Env().Get("f")
	if err != nil {
		t.Fatal(err)
	}
	closure, ok := value.(*closureNode)
	if !ok {
		t.Fatalf("f should be bound to a closure instead of %s", value)
	}
	checkBinding(t, closure.env, "x", Number(3))

	checkMachineError(t, Call(Fun("const", "", Number(42)), DoNothing()), nil, ErrUnhandledTerm)
}

func TestMachineErrors(t *testing.T) {
	checkMachineError(t, Variable("z"), nil, ErrUnboundVariable)
	checkMachineError(t, Add(Number(1), Boolean(true)), nil, ErrTypeMismatch)
	checkMachineError(t, If(Number(1), Number(2), Number(3)), nil, ErrTypeMismatch)
	checkMachineError(t, Fst(Number(3)), nil, ErrTypeMismatch)
	checkMachineError(t, Snd(Add(Number(1), Number(2))), nil, ErrTypeMismatch)
}

func TestMachineStep(t *testing.T) {
	machine := NewMachine(Number(1), nil)
	reduced, err := machine.Step()
	if err != nil || reduced {
		t.Errorf("a normal form should not step, found %v %v", reduced, err)
	}

	machine = NewMachine(Add(Number(1), Number(2)), nil)
	reduced, err = machine.Step()
	if err != nil || !reduced {
		t.Fatalf("expected one step, found %v %v", reduced, err)
	}
	if !Equal(machine.Term(), Number(3)) {
		t.Errorf("expected 3 instead of %s", machine.Term())
	}
}

func TestMachineTrace(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	machine := NewMachine(Sequence(Assign("x", Number(1)), Variable("x")), nil, WithLogger(logger))
	if _, err := machine.Run(); err != nil {
		t.Fatal(err)
	}
	entries := hook.AllEntries()
	if len(entries) != machine.Steps() {
		t.Fatalf("expected one entry per step, found %d for %d steps", len(entries), machine.Steps())
	}
	first := entries[0]
	if first.Message != "reduce" || first.Data["step"] != 1 || first.Data["term"] != "do-nothing; x" {
		t.Errorf("unexpected first entry %s %v", first.Message, first.Data)
	}
	if first.Data["env"] != "{x = 1}" {
		t.Errorf("unexpected environment in trace %v", first.Data["env"])
	}
}

// Both engines must agree on the result and on the final environment for
// every program that does not call functions.
func TestEnginesAgree(t *testing.T) {
	programs := []struct {
		name string
		env  map[string]Node
		term Node
	}{
		{"arithmetic", nil, Add(Multiply(Number(1), Number(2)), Multiply(Number(3), Number(4)))},
		{"comparison", nil, EQ(Subtract(Number(10), Number(4)), Number(6))},
		{"sugar", map[string]Node{"x": Number(5)}, If(
			GT(Variable("x"), Number(3)),
			Assign("big", Boolean(true)),
			Assign("big", Boolean(false)),
		)},
		{"sequence", nil, Sequence(
			Assign("x", Add(Number(1), Number(1))),
			Assign("y", Add(Variable("x"), Number(3))),
		)},
		{"while", map[string]Node{"x": Number(1)}, While(
			LT(Variable("x"), Number(5)),
			Assign("x", Multiply(Variable("x"), Number(3))),
		)},
		{"factorial loop", map[string]Node{"n": Number(6), "acc": Number(1)}, While(
			GT(Variable("n"), Number(1)),
			Sequence(
				Assign("acc", Multiply(Variable("acc"), Variable("n"))),
				Assign("n", Subtract(Variable("n"), Number(1))),
			),
		)},
		{"pair", nil, Pair(Add(Number(1), Number(2)), LT(Number(4), Number(3)))},
		{"projection", map[string]Node{
			"p": Pair(Add(Number(3), Number(4)), Multiply(Number(5), Number(6))),
		}, Block(
			Assign("y", Fst(Variable("p"))),
			Assign("z", Snd(Variable("p"))),
			Add(Variable("y"), Variable("z")),
		)},
		{"list", nil, Block(
			Assign("l", FromInts([]int64{1, 2, 3, 4})),
			Assign("sum", Number(0)),
			While(If(IsDoNothing(Variable("l")), Boolean(false), Boolean(true)), Sequence(
				Assign("sum", Add(Variable("sum"), Fst(Variable("l")))),
				Assign("l", Snd(Variable("l"))),
			)),
			Variable("sum"),
		)},
		{"closure", map[string]Node{"x": Number(3)}, Block(
			Assign("f", Fun("f", "y", Add(Variable("x"), Variable("y")))),
			Assign("x", Number(5)),
		)},
		{"discarded values", nil, Block(Number(1), Boolean(true), Number(2))},
	}

	for _, program := range programs {
		t.Run(program.name, func(t *testing.T) {
			bigEnv := newEnvWith(program.env)
			smallEnv := newEnvWith(program.env)

			big, err := Evaluate(program.term, bigEnv)
			if err != nil {
				t.Fatalf("evaluator failed: %v", err)
			}
			small, err := NewMachine(program.term, smallEnv).Run()
			if err != nil {
				t.Fatalf("machine failed: %v", err)
			}
			if !Equal(big, small) {
				t.Errorf("evaluator gave %s, machine gave %s", big, small)
			}
			if !bigEnv.Equal(smallEnv) {
				t.Errorf("evaluator left %s, machine left %s", bigEnv, smallEnv)
			}
		})
	}
}

func TestEnginesAgreeOnDecodedEnv(t *testing.T) {
	source := `
p: {add: [1, 2]}
q: {pair: [{mul: [2, 3]}, {lt: [1, 2]}]}
`
	programs := []struct {
		term     Node
		expected Node
	}{
		{Variable("p"), Number(3)},
		{Variable("q"), Pair(Number(6), Boolean(true))},
		{Add(Variable("p"), Fst(Variable("q"))), Number(9)},
		{Snd(Variable("q")), Boolean(true)},
		{Sequence(Assign("r", Multiply(Variable("p"), Variable("p"))), Variable("r")), Number(9)},
	}

	for _, program := range programs {
		bigEnv, err := DecodeEnv(strings.NewReader(source))
		if err != nil {
			t.Fatal(err)
		}
		smallEnv, err := DecodeEnv(strings.NewReader(source))
		if err != nil {
			t.Fatal(err)
		}
		checkEval(t, program.term, bigEnv, program.expected)
		checkMachine(t, program.term, smallEnv, program.expected)
		if !bigEnv.Equal(smallEnv) {
			t.Errorf("evaluator left %s, machine left %s", bigEnv, smallEnv)
		}
	}
}
