package internal

import "github.com/sirupsen/logrus"

// Machine drives the small-step reducer until its term is a normal form.
// It owns its environment.
type Machine struct {
	options

	env   *Env
	term  Node
	steps int
}

// NewMachine prepares term for reduction in env. A nil env starts empty.
func NewMachine(term Node, env *Env, opts ...Option) *Machine {
	if env == nil {
		env = NewEnv()
	}
	return &Machine{
		options: newOptions(opts),
		env:     env,
		term:    term,
	}
}

// Step performs one reduction. It returns false once the term is a normal
// form.
func (m *Machine) Step() (reduced bool, err error) {
	if !Reducible(m.term) {
		return false, nil
	}
	defer catch(&err)
	m.term = m.term.accept(&reducer{env: m.env})
	m.steps++
	if m.tracing() {
		m.log.WithFields(logrus.Fields{
			"step": m.steps,
			"term": m.term.String(),
			"env":  m.env.String(),
		}).Debug("reduce")
	}
	return true, nil
}

// Run reduces until a normal form is reached and returns it
func (m *Machine) Run() (Node, error) {
	for {
		reduced, err := m.Step()
		if err != nil {
			return nil, err
		}
		if !reduced {
			return m.term, nil
		}
	}
}

// Term returns the current term
func (m *Machine) Term() Node {
	return m.term
}

// Env returns the machine's environment
func (m *Machine) Env() *Env {
	return m.env
}

// Steps returns how many reductions have been performed
func (m *Machine) Steps() int {
	return m.steps
}
