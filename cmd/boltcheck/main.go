// Command boltcheck is a golden-fixture conformance runner: it diffs the
// built bolt binary's stdout against testdata/*.out golden files matching
// testdata/*.bolt scripts.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// TestCase is a single golden fixture: a Bolt script and its expected
// stdout.
type TestCase struct {
	Name     string // e.g. "closures.bolt"
	Script   string // path to the .bolt source
	Golden   string // path to the matching .out file
	Actual   ExecutionResult
	Expected string
}

// ExecutionResult holds what running the bolt binary against a script
// produced.
type ExecutionResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

var (
	boltBinary  = flag.String("bolt", "./bolt", "path to the built bolt binary")
	testdataDir = flag.String("testdata", "testdata", "directory of .bolt/.out golden fixtures")
)

func main() {
	flag.Parse()

	cases, err := collectCases(*testdataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	sort.Slice(cases, func(i, j int) bool { return cases[i].Name < cases[j].Name })

	failed := 0
	for i := range cases {
		tc := &cases[i]
		executeCase(*boltBinary, tc)
		if printResult(tc) {
			failed++
		}
	}

	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("Tests run: %d, failed: %d\n", len(cases), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func collectCases(dir string) ([]TestCase, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading testdata dir: %w", err)
	}

	var cases []TestCase
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".bolt") {
			continue
		}
		scriptPath := filepath.Join(dir, entry.Name())
		goldenPath := strings.TrimSuffix(scriptPath, ".bolt") + ".out"
		if _, err := os.Stat(goldenPath); err != nil {
			continue
		}
		cases = append(cases, TestCase{Name: entry.Name(), Script: scriptPath, Golden: goldenPath})
	}
	return cases, nil
}
