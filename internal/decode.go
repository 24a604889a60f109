package internal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Term wraps a Node so it can be decoded from YAML, either on its own or as
// part of a larger document.
//
// Scalars decode to literals: integers to Number, true/false to Boolean,
// null to DoNothing and any other string to Variable. A single key mapping
// names any other variant, e.g. {add: [x, 1]}, {assign: [x, 3]},
// {fun: [fact, n, body]}. A bare sequence is a block of statements.
type Term struct {
	Node Node
}

// UnmarshalYAML implements yaml.Unmarshaler
func (t *Term) UnmarshalYAML(value *yaml.Node) error {
	node, err := decodeTerm(value)
	if err != nil {
		return err
	}
	t.Node = node
	return nil
}

// DecodeTerm reads one term from r. It returns io.EOF when r holds no
// document.
func DecodeTerm(r io.Reader) (Node, error) {
	var t Term
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	if t.Node == nil {
		return nothing, nil
	}
	return t.Node, nil
}

// ParseTerm decodes a term held in a string
func ParseTerm(source string) (Node, error) {
	return DecodeTerm(strings.NewReader(source))
}

// DecodeEnv reads a mapping of names to terms. Each term is evaluated on
// its own in an empty environment so that only values get bound. An empty
// document is an empty environment.
func DecodeEnv(r io.Reader, opts ...Option) (*Env, error) {
	var bindings map[string]Term
	if err := yaml.NewDecoder(r).Decode(&bindings); err != nil {
		if errors.Is(err, io.EOF) {
			return NewEnv(), nil
		}
		return nil, err
	}
	env := NewEnv()
	for name, t := range bindings {
		if t.Node == nil {
			env.Add(name, nothing)
			continue
		}
		value, err := Evaluate(t.Node, NewEnv(), opts...)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		env.Add(name, value)
	}
	return env, nil
}

func malformed(value *yaml.Node, format string, a ...interface{}) error {
	return fmt.Errorf("line %d: %w: %s", value.Line, ErrMalformedTerm, fmt.Sprintf(format, a...))
}

func decodeTerm(value *yaml.Node) (Node, error) {
	switch value.Kind {
	case yaml.DocumentNode:
		if len(value.Content) == 0 {
			return nothing, nil
		}
		return decodeTerm(value.Content[0])
	case yaml.AliasNode:
		return decodeTerm(value.Alias)
	case yaml.ScalarNode:
		return decodeScalar(value)
	case yaml.SequenceNode:
		terms, err := decodeTerms(value.Content)
		if err != nil {
			return nil, err
		}
		return Block(terms...), nil
	case yaml.MappingNode:
		if len(value.Content) != 2 {
			return nil, malformed(value, "expected a single key mapping, found %d keys", len(value.Content)/2)
		}
		return decodeVariant(value.Content[0], value.Content[1])
	}
	return nil, malformed(value, "unexpected yaml node")
}

func decodeScalar(value *yaml.Node) (Node, error) {
	switch value.ShortTag() {
	case "!!int":
		n, err := strconv.ParseInt(value.Value, 0, 64)
		if err != nil {
			return nil, malformed(value, "%v", err)
		}
		return Number(n), nil
	case "!!bool":
		b, err := strconv.ParseBool(value.Value)
		if err != nil {
			return nil, malformed(value, "%v", err)
		}
		return Boolean(b), nil
	case "!!null":
		return nothing, nil
	case "!!str":
		if value.Value == "" {
			return nil, malformed(value, "empty variable name")
		}
		return Variable(value.Value), nil
	}
	return nil, malformed(value, "unsupported scalar %q", value.Value)
}

func decodeTerms(content []*yaml.Node) ([]Node, error) {
	terms := make([]Node, len(content))
	for i, item := range content {
		term, err := decodeTerm(item)
		if err != nil {
			return nil, err
		}
		terms[i] = term
	}
	return terms, nil
}

// decodeArgs decodes the operands of a variant, which must be a sequence of
// exactly n items
func decodeArgs(key, value *yaml.Node, n int) ([]Node, error) {
	if value.Kind == yaml.AliasNode {
		value = value.Alias
	}
	if value.Kind != yaml.SequenceNode || len(value.Content) != n {
		return nil, malformed(value, "%s expects %d operands", key.Value, n)
	}
	return decodeTerms(value.Content)
}

func decodeName(value *yaml.Node, optional bool) (string, error) {
	if value.Kind == yaml.ScalarNode {
		switch value.ShortTag() {
		case "!!null":
			if optional {
				return "", nil
			}
		case "!!str":
			if optional || value.Value != "" {
				return value.Value, nil
			}
		}
	}
	return "", malformed(value, "expected a name")
}

var binaryVariants = map[string]func(left, right Node) Node{
	"add": Add,
	"sub": Subtract,
	"mul": Multiply,
	"lt":  LT,
	"eq":  EQ,
	"gt":  GT,
}

var unaryVariants = map[string]func(term Node) Node{
	"fst":         Fst,
	"snd":         Snd,
	"isdonothing": IsDoNothing,
}

func decodeVariant(key, value *yaml.Node) (Node, error) {
	if build, ok := binaryVariants[key.Value]; ok {
		operands, err := decodeArgs(key, value, 2)
		if err != nil {
			return nil, err
		}
		return build(operands[0], operands[1]), nil
	}
	if build, ok := unaryVariants[key.Value]; ok {
		term, err := decodeTerm(value)
		if err != nil {
			return nil, err
		}
		return build(term), nil
	}

	switch key.Value {
	case "num":
		if value.ShortTag() != "!!int" {
			return nil, malformed(value, "num expects an integer")
		}
		return decodeScalar(value)
	case "bool":
		if value.ShortTag() != "!!bool" {
			return nil, malformed(value, "bool expects true or false")
		}
		return decodeScalar(value)
	case "donothing":
		return nothing, nil
	case "var":
		n, err := decodeName(value, false)
		if err != nil {
			return nil, err
		}
		return Variable(n), nil
	case "assign":
		if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
			return nil, malformed(value, "assign expects [name, term]")
		}
		n, err := decodeName(value.Content[0], false)
		if err != nil {
			return nil, err
		}
		term, err := decodeTerm(value.Content[1])
		if err != nil {
			return nil, err
		}
		return Assign(n, term), nil
	case "if":
		operands, err := decodeArgs(key, value, 3)
		if err != nil {
			return nil, err
		}
		return If(operands[0], operands[1], operands[2]), nil
	case "while":
		operands, err := decodeArgs(key, value, 2)
		if err != nil {
			return nil, err
		}
		return While(operands[0], operands[1]), nil
	case "pair":
		operands, err := decodeArgs(key, value, 2)
		if err != nil {
			return nil, err
		}
		return Pair(operands[0], operands[1]), nil
	case "seq":
		if value.Kind != yaml.SequenceNode || len(value.Content) == 0 {
			return nil, malformed(value, "seq expects at least one term")
		}
		terms, err := decodeTerms(value.Content)
		if err != nil {
			return nil, err
		}
		return Block(terms...), nil
	case "fun":
		if value.Kind != yaml.SequenceNode || len(value.Content) != 3 {
			return nil, malformed(value, "fun expects [self, param, body]")
		}
		self, err := decodeName(value.Content[0], true)
		if err != nil {
			return nil, err
		}
		param, err := decodeName(value.Content[1], true)
		if err != nil {
			return nil, err
		}
		body, err := decodeTerm(value.Content[2])
		if err != nil {
			return nil, err
		}
		return Fun(self, param, body), nil
	case "call":
		if value.Kind != yaml.SequenceNode || len(value.Content) < 1 || len(value.Content) > 2 {
			return nil, malformed(value, "call expects [callee] or [callee, argument]")
		}
		terms, err := decodeTerms(value.Content)
		if err != nil {
			return nil, err
		}
		if len(terms) == 1 {
			return Call(terms[0], nothing), nil
		}
		return Call(terms[0], terms[1]), nil
	case "list":
		if value.Kind != yaml.SequenceNode {
			return nil, malformed(value, "list expects a sequence of integers")
		}
		values := make([]int64, len(value.Content))
		for i, item := range value.Content {
			n, err := strconv.ParseInt(item.Value, 0, 64)
			if item.ShortTag() != "!!int" || err != nil {
				return nil, malformed(item, "list expects integers")
			}
			values[i] = n
		}
		return FromInts(values), nil
	}
	return nil, fmt.Errorf("line %d: %w: %s", key.Line, ErrUnknownTerm, key.Value)
}
