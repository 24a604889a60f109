package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Engine selects how a program is run
type Engine string

const (
	// BigStep evaluates terms directly
	BigStep Engine = "big"
	// SmallStep rewrites terms until they reach a normal form
	SmallStep Engine = "small"
)

// ParseEngine validates an engine name
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case BigStep, SmallStep:
		return Engine(s), nil
	}
	return "", fmt.Errorf("unknown engine %q, expected %q or %q", s, BigStep, SmallStep)
}

// Config controls RunWithPrinter
type Config struct {
	Engine  Engine
	ShowEnv bool
	Color   bool
	Logger  *logrus.Logger
}

// Run executes root with the configured engine and returns its normal form
func (c Config) Run(root Node, env *Env) (Node, error) {
	var opts []Option
	if c.Logger != nil {
		opts = append(opts, WithLogger(c.Logger))
	}
	if c.Engine == SmallStep {
		return NewMachine(root, env, opts...).Run()
	}
	return Evaluate(root, env, opts...)
}

// RunWithPrinter runs root on env and prints the result, unless it is
// do-nothing, followed by the environment when requested. Runtime errors
// are printed instead. It returns false if the run failed.
func RunWithPrinter(root Node, env *Env, cfg Config, p IPrinter) bool {
	if env == nil {
		env = NewEnv()
	}
	paint := color.New()
	if !cfg.Color {
		paint.Disable()
	}

	result, err := cfg.Run(root, env)
	if err != nil {
		p.Fprintln(os.Stderr, paint.Red("Runtime Error: "+err.Error()))
		return false
	}

	if !IsNothing(result) {
		p.Println(paint.Green(result.String()))
	}
	if cfg.ShowEnv {
		p.Println(paint.Cyan(env.Pretty(0)))
	}
	return true
}
