package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"

	"twostep/internal"
)

const (
	historyFile = ".twostep_history"
	promptMain  = "twostep> "
	promptCont  = "   ...> "
)

// runRepl reads one yaml term per entry and runs it on a shared
// environment, so assignments persist between entries.
func runRepl(cfg internal.Config, env *internal.Env) {
	fmt.Printf("twostep (%s-step engine). Enter terms in yaml flow style, :env to show bindings, :quit to exit.\n", cfg.Engine)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		source, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return
		}
		switch strings.TrimSpace(source) {
		case "":
			continue
		case ":quit":
			return
		case ":env":
			fmt.Println(color.Cyan(env.Pretty(0)))
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))

		root, err := internal.ParseTerm(source)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			continue
		}
		internal.RunWithPrinter(root, env, cfg, stdPrinter{})
	}
}

// readEntry keeps prompting until the brackets of the entry balance
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			}
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if balanced(b.String()) {
			return b.String(), true
		}
	}
}

// balanced reports whether every bracket opened in source is closed.
// Brackets inside quoted scalars do not count. A quote only opens a scalar
// at the start of a token, so apostrophes inside plain words are text.
func balanced(source string) bool {
	depth := 0
	var quote rune
	runes := []rune(source)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case quote == '"' && r == '\\':
			i++
		case quote == '\'' && r == '\'' && i+1 < len(runes) && runes[i+1] == '\'':
			i++
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case (r == '"' || r == '\'') && (i == 0 || strings.ContainsRune(" \t\n[{,:-", runes[i-1])):
			quote = r
		case r == '[' || r == '{':
			depth++
		case r == ']' || r == '}':
			depth--
		}
	}
	return quote == 0 && depth <= 0
}
