package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"twostep/internal"
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: twostep [flags] /path/to/program.yaml")
	fmt.Fprintln(os.Stderr, "       twostep [flags] -repl")
	flag.PrintDefaults()
}

func main() {
	engineName := flag.String("engine", string(internal.BigStep), "evaluation engine: big or small")
	envPath := flag.String("env", "", "yaml file with the initial environment")
	showEnv := flag.Bool("show-env", false, "print the final environment")
	noColor := flag.Bool("no-color", false, "disable colored output")
	trace := flag.Bool("trace", false, "log every evaluation or reduction step")
	logLevel := flag.String("log-level", "warn", "log level")
	repl := flag.Bool("repl", false, "start an interactive session")
	flag.Usage = usage
	flag.Parse()

	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(level)
	if *trace {
		log.SetLevel(logrus.DebugLevel)
	}
	if *noColor {
		color.Disable()
	}

	engine, err := internal.ParseEngine(*engineName)
	if err != nil {
		log.Fatal(err)
	}

	env := internal.NewEnv()
	if *envPath != "" {
		env = loadEnv(log, *envPath)
	}

	cfg := internal.Config{
		Engine:  engine,
		ShowEnv: *showEnv,
		Color:   !*noColor,
		Logger:  log,
	}

	if *repl {
		runRepl(cfg, env)
		return
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	root := loadProgram(log, flag.Arg(0))
	if !internal.RunWithPrinter(root, env, cfg, stdPrinter{}) {
		os.Exit(1)
	}
}

func loadProgram(log *logrus.Logger, path string) internal.Node {
	absPath, err := filepath.Abs(path)
	if err != nil {
		log.Fatal(err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	root, err := internal.DecodeTerm(file)
	if err != nil {
		log.WithField("path", absPath).Fatal(err)
	}
	log.WithField("path", absPath).Debug("program loaded")
	return root
}

func loadEnv(log *logrus.Logger, path string) *internal.Env {
	file, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	env, err := internal.DecodeEnv(file, internal.WithLogger(log))
	if err != nil {
		log.WithField("path", path).Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"path":     path,
		"bindings": env.Len(),
	}).Debug("environment loaded")
	return env
}
