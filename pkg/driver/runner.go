package driver

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"stimpl/interpreter-go/pkg/ast"
	"stimpl/interpreter-go/pkg/interpreter"
	"stimpl/interpreter-go/pkg/runtime"
)

// Result reports the outcome of one suite program.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunSuite replays every program in the suite and compares observables
// against its expectations. A fixture that fails to load is a suite
// error; a program that merely diverges from its expectations is a
// failed Result.
func RunSuite(suite *Suite) ([]Result, error) {
	results := make([]Result, 0, len(suite.Programs))
	for _, prog := range suite.Programs {
		fixturePath := prog.Fixture
		if !filepath.IsAbs(fixturePath) {
			fixturePath = filepath.Join(suite.Dir(), fixturePath)
		}
		program, err := interpreter.LoadProgram(fixturePath)
		if err != nil {
			return nil, fmt.Errorf("suite %s: program %s: %w", suite.Name, prog.Name, err)
		}
		results = append(results, runProgram(prog, program))
	}
	return results, nil
}

func runProgram(spec *ProgramSpec, program ast.Expression) Result {
	var out bytes.Buffer
	interp := &interpreter.Interpreter{Stdout: &out}
	val, typ, _, err := interp.Run(program, spec.Debug)

	result := Result{Name: spec.Name, Passed: true}
	fail := func(format string, args ...any) {
		result.Passed = false
		if result.Detail != "" {
			result.Detail += "; "
		}
		result.Detail += fmt.Sprintf(format, args...)
	}

	if spec.Expect.Error != "" {
		if err == nil {
			fail("expected %s error, evaluation succeeded", spec.Expect.Error)
			return result
		}
		if kind := errorKind(err); kind != spec.Expect.Error {
			fail("expected %s error, got %s: %v", spec.Expect.Error, kind, err)
		}
		return result
	}
	if err != nil {
		fail("evaluation failed: %v", err)
		return result
	}
	if spec.Expect.Value != "" {
		if got := runtime.FormatValue(val); got != spec.Expect.Value {
			fail("value mismatch: got %q, want %q", got, spec.Expect.Value)
		}
	}
	if spec.Expect.Type != "" {
		if got := typ.String(); got != spec.Expect.Type {
			fail("type mismatch: got %q, want %q", got, spec.Expect.Type)
		}
	}
	if spec.Expect.Stdout != "" || out.Len() > 0 {
		if got := out.String(); got != spec.Expect.Stdout && !spec.Debug {
			fail("stdout mismatch: got %q, want %q", got, spec.Expect.Stdout)
		}
	}
	return result
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, interpreter.ErrSyntax):
		return ExpectSyntaxError
	case errors.Is(err, interpreter.ErrType):
		return ExpectTypeError
	case errors.Is(err, interpreter.ErrArithmetic):
		return ExpectArithmeticError
	default:
		return "unknown"
	}
}
