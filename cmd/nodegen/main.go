package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: nodegen Node")
		os.Exit(2)
	}
	var out string
	switch os.Args[1] {
	case "Node":
		out = generateNodes("Node", []string{
			"Number: value int64",
			"Boolean: value bool",
			"DoNothing:",
			"IsDoNothing: term Node",
			"Add: left Node, right Node",
			"Subtract: left Node, right Node",
			"Multiply: left Node, right Node",
			"Less: left Node, right Node",
			"Equal: left Node, right Node",
			"Greater: left Node, right Node",
			"Variable: name string",
			"Assign: name string, value Node",
			"If: condition Node, consequence Node, alternative Node",
			"Sequence: head Node, rest Node",
			"While: condition Node, body Node",
			"Pair: first Node, second Node",
			"Fst: pair Node",
			"Snd: pair Node",
			"Fun: self string, param string, body Node",
			"Closure: env *Env, fun Node",
			"Call: callee Node, argument Node",
		})
	default:
		fmt.Fprintf(os.Stderr, "Unknown base type %s\n", os.Args[1])
		os.Exit(2)
	}
	src, err := format.Source([]byte(out))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Stdout.Write(src)
}

func generateNodes(baseName string, types []string) string {
	out := "// Code generated by cmd/nodegen; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Base interface
	out += "type " + baseName + " interface {\n"
	out += "\taccept(" + lowerFirst(baseName) + "Visitor) " + baseName + "\n"
	out += "\tString() string\n"
	out += "}\n\n"

	// Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", lowerFirst(baseName))
	for _, t := range types {
		name := strings.TrimSpace(strings.Split(t, ":")[0])
		structType := lowerFirst(name) + baseName
		out += "\tvisit" + name + baseName + "(" + lowerFirst(baseName) + " *" + structType + ") " + baseName + "\n"
	}
	out += "}\n\n"

	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}

	return out
}

func generateType(baseName, name, fields string) string {
	structName := lowerFirst(name) + baseName
	out := "type " + structName + " struct"
	if fields == "" {
		out += "{}\n\n"
	} else {
		out += " {\n"
		for _, field := range strings.Split(fields, ",") {
			out += "\t" + strings.TrimSpace(field) + "\n"
		}
		out += "}\n\n"
	}

	out += "func (n *" + structName + ") accept(visitor " + lowerFirst(baseName) + "Visitor) " + baseName + " {\n"
	out += "\treturn visitor.visit" + name + baseName + "(n)\n"
	out += "}\n\n"

	return out
}

func lowerFirst(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}
