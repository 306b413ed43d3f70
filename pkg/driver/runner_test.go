package driver

import (
	"path/filepath"
	"testing"
)

const arithmeticFixture = `{
	"type": "Program",
	"expressions": [
		{"type": "Assign",
		 "target": {"type": "Variable", "name": "n"},
		 "value": {"type": "IntegerLiteral", "value": 6}},
		{"type": "Print",
		 "operand": {"type": "Multiply",
		  "left": {"type": "Variable", "name": "n"},
		  "right": {"type": "IntegerLiteral", "value": 7}}}
	]
}`

const divideByZeroFixture = `{
	"type": "Divide",
	"left": {"type": "IntegerLiteral", "value": 1},
	"right": {"type": "IntegerLiteral", "value": 0}
}`

func writeSmokeSuite(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, "programs", "arithmetic.json"), arithmeticFixture)
	writeFile(t, filepath.Join(dir, "programs", "div0.json"), divideByZeroFixture)
	writeFile(t, filepath.Join(dir, "suite.yml"), `
name: smoke
programs:
  - name: arithmetic
    fixture: programs/arithmetic.json
    expect:
      stdout: |
        42
      value: "42"
      type: Integer
  - name: divide-by-zero
    fixture: programs/div0.json
    expect:
      error: arithmetic
`)
}

func TestRunSuite(t *testing.T) {
	dir := t.TempDir()
	writeSmokeSuite(t, dir)

	suite, err := LoadSuite(dir)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	results, err := RunSuite(suite)
	if err != nil {
		t.Fatalf("RunSuite: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, result := range results {
		if !result.Passed {
			t.Fatalf("program %s failed: %s", result.Name, result.Detail)
		}
	}
}

func TestRunSuiteReportsDivergence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "programs", "div0.json"), divideByZeroFixture)
	writeFile(t, filepath.Join(dir, "suite.yml"), `
name: divergent
programs:
  - name: wrong-kind
    fixture: programs/div0.json
    expect:
      error: type
`)
	suite, err := LoadSuite(dir)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	results, err := RunSuite(suite)
	if err != nil {
		t.Fatalf("RunSuite: %v", err)
	}
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected one failing result, got %+v", results)
	}
}

func TestRunSuiteMissingFixtureIsError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "suite.yml"), `
name: broken
programs:
  - name: ghost
    fixture: programs/ghost.json
`)
	suite, err := LoadSuite(dir)
	if err != nil {
		t.Fatalf("LoadSuite: %v", err)
	}
	if _, err := RunSuite(suite); err == nil {
		t.Fatalf("expected error for missing fixture")
	}
}
