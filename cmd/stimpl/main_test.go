package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sumFixture = `{
  "type": "Program",
  "expressions": [
    {
      "type": "Print",
      "operand": {
        "type": "Add",
        "left": {"type": "IntegerLiteral", "value": 2},
        "right": {"type": "IntegerLiteral", "value": 3}
      }
    }
  ]
}`

const divideByZeroFixture = `{
  "type": "Program",
  "expressions": [
    {
      "type": "Divide",
      "left": {"type": "IntegerLiteral", "value": 1},
      "right": {"type": "IntegerLiteral", "value": 0}
    }
  ]
}`

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith(nil, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage: stimpl") {
		t.Errorf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"frobnicate"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), `unknown command "frobnicate"`) {
		t.Errorf("expected unknown command message, got %q", stderr.String())
	}
}

func TestVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	if got := strings.TrimSpace(stdout.String()); got != cliToolVersion {
		t.Errorf("expected %q, got %q", cliToolVersion, got)
	}
}

func TestRunFixture(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "sum.json", sumFixture)

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"run", fixture}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	want := "5\n(5, Integer)\n"
	if got := stdout.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRunFixtureDebug(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "sum.json", sumFixture)

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"run", fixture, "--debug"}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "final_value: (5, Integer)") {
		t.Errorf("expected debug summary in output, got %q", out)
	}
	if !strings.HasPrefix(out, "5\n") {
		t.Errorf("expected print output before the debug summary, got %q", out)
	}
}

func TestRunFixtureEvaluationError(t *testing.T) {
	dir := t.TempDir()
	fixture := writeFixture(t, dir, "boom.json", divideByZeroFixture)

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"run", fixture}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "arithmetic error") {
		t.Errorf("expected arithmetic error on stderr, got %q", stderr.String())
	}
}

func TestRunMissingFixture(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"run", filepath.Join(t.TempDir(), "absent.json")}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to load program") {
		t.Errorf("expected load failure on stderr, got %q", stderr.String())
	}
}

func TestRunRequiresFixture(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"run"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "requires a fixture file") {
		t.Errorf("expected argument error, got %q", stderr.String())
	}
}

func TestSuitePasses(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "sum.json", sumFixture)
	writeFixture(t, dir, "suite.yml", `name: smoke
programs:
  - name: sum
    fixture: sum.json
    expect:
      stdout: "5\n"
      value: "5"
      type: Integer
`)

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"suite", dir}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, got %d (stderr: %s)", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "ok   sum") {
		t.Errorf("expected passing program line, got %q", out)
	}
	if !strings.Contains(out, "suite smoke: 1 passed, 0 failed") {
		t.Errorf("expected summary line, got %q", out)
	}
}

func TestSuiteReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "sum.json", sumFixture)
	writeFixture(t, dir, "suite.yml", `name: smoke
programs:
  - name: sum
    fixture: sum.json
    expect:
      stdout: "5\n"
      value: "6"
      type: Integer
`)

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"suite", dir}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	out := stdout.String()
	if !strings.Contains(out, "FAIL sum") {
		t.Errorf("expected failing program line, got %q", out)
	}
	if !strings.Contains(out, "suite smoke: 0 passed, 1 failed") {
		t.Errorf("expected summary line, got %q", out)
	}
}

func TestSuiteInvalidManifest(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "suite.yml", "name: broken\nprograms: []\n")

	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"suite", dir}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to load suite") {
		t.Errorf("expected load failure on stderr, got %q", stderr.String())
	}
}

func TestFetchRequiresURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := runWith([]string{"fetch"}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "requires a git url") {
		t.Errorf("expected argument error, got %q", stderr.String())
	}
}

func TestResolveSuiteCacheHonorsStimplHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("STIMPL_HOME", home)
	got, err := resolveSuiteCache()
	if err != nil {
		t.Fatalf("resolveSuiteCache: %v", err)
	}
	if want := filepath.Join(home, "suites"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
