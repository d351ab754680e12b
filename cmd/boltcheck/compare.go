package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const width = 80

var divider = strings.Repeat("-", width)

// printResult prints one line for a passing case, or a full diff block for
// a failing one. Returns true if the case failed.
func printResult(tc *TestCase) bool {
	if tc.Actual.Stdout == tc.Expected {
		fmt.Printf("  [%s] %s\n", color.GreenString("passed"), tc.Name)
		return false
	}

	fmt.Println(divider)
	fmt.Printf("  [%s] %s\n", color.RedString("failed"), tc.Name)
	fmt.Println("expected:")
	printIndented(tc.Expected)
	fmt.Println("actual:")
	printIndented(tc.Actual.Stdout)
	if tc.Actual.Stderr != "" {
		fmt.Println("stderr:")
		printIndented(tc.Actual.Stderr)
	}
	fmt.Println(divider)
	return true
}

func printIndented(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		fmt.Println("    " + line)
	}
}
