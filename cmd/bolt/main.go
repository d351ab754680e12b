// Command bolt is the CLI entry point for the Bolt interpreter:
// zero arguments opens a REPL, one argument runs a script file, anything
// else is rejected.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/boltlang/bolt/internal/interpreter"
	"github.com/boltlang/bolt/internal/parser"
	"github.com/boltlang/bolt/internal/scanner"
)

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		runPrompt()
	case 1:
		runFile(args[0])
	default:
		fmt.Fprintln(os.Stderr, "Usage: bolt [script]")
		os.Exit(64)
	}
}

func runFile(path string) {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(color.RedString("Can't open file at %q: %v", path, err))
		os.Exit(1)
	}

	interp := interpreter.New(os.Stdout)
	if err := execute(interp, string(contents)); err != nil {
		fmt.Println(color.RedString(err.Error()))
		os.Exit(1)
	}
}

// runPrompt implements the REPL loop: each line runs against a
// persistent interpreter, so variables and functions defined on one line
// are visible to the next. Errors are printed and execution continues.
func runPrompt() {
	interp := interpreter.New(os.Stdout)
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, readErr := reader.ReadString('\n')
		if len(line) <= 2 {
			return
		}
		if runErr := execute(interp, line); runErr != nil {
			fmt.Println(color.RedString(runErr.Error()))
		}
		if readErr != nil {
			return
		}
	}
}

func execute(interp *interpreter.Interpreter, source string) error {
	tokens, err := scanner.Scan(source)
	if err != nil {
		return err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	return interp.Interpret(stmts)
}
