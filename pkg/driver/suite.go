package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite represents the parsed contents of suite.yml: a named list of
// fixture programs with the observables each one is expected to produce.
type Suite struct {
	Path     string
	Name     string
	Programs []*ProgramSpec
}

// ProgramSpec describes one fixture program in a suite.
type ProgramSpec struct {
	Name    string
	Fixture string
	Debug   bool
	Expect  Expectation
}

// Expectation captures the observable outcome of running a program:
// either an error of a given kind, or a final value/type (rendered the
// way the debug dump renders them) plus whatever print output the
// program emits.
type Expectation struct {
	Stdout string
	Value  string
	Type   string
	Error  string
}

// Error kinds a suite may expect.
const (
	ExpectSyntaxError     = "syntax"
	ExpectTypeError       = "type"
	ExpectArithmeticError = "arithmetic"
)

// ValidationError aggregates suite validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "suite: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("suite validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadSuite parses suite.yml from disk, returning a validated suite.
// path may name the file itself or a directory containing it.
func LoadSuite(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("suite: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	if info, statErr := os.Stat(absPath); statErr == nil && info.IsDir() {
		absPath = filepath.Join(absPath, "suite.yml")
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw suiteFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("suite: %s is empty", absPath)
		}
		return nil, fmt.Errorf("suite: parse %s: %w", absPath, err)
	}

	suite := raw.toSuite(absPath)
	if err := suite.validate(); err != nil {
		return nil, err
	}
	return suite, nil
}

// Dir returns the directory fixture paths resolve against.
func (s *Suite) Dir() string {
	return filepath.Dir(s.Path)
}

func (s *Suite) validate() error {
	var errs ValidationError
	if s.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if len(s.Programs) == 0 {
		errs.Issues = append(errs.Issues, "programs must not be empty")
	}
	seen := make(map[string]struct{}, len(s.Programs))
	for idx, prog := range s.Programs {
		if prog == nil {
			continue
		}
		label := prog.Name
		if label == "" {
			label = fmt.Sprintf("programs[%d]", idx)
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s must have a name", label))
		}
		if _, dup := seen[prog.Name]; dup && prog.Name != "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("program %q declared twice", prog.Name))
		}
		seen[prog.Name] = struct{}{}
		if prog.Fixture == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("%s must name a fixture file", label))
		}
		if prog.Expect.Error != "" {
			switch prog.Expect.Error {
			case ExpectSyntaxError, ExpectTypeError, ExpectArithmeticError:
			default:
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s has unknown error kind %q", label, prog.Expect.Error))
			}
			if prog.Expect.Value != "" || prog.Expect.Type != "" {
				errs.Issues = append(errs.Issues, fmt.Sprintf("%s cannot expect both an error and a result", label))
			}
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type suiteFile struct {
	Name     string         `yaml:"name"`
	Programs []*programYAML `yaml:"programs"`
}

type programYAML struct {
	Name    string          `yaml:"name"`
	Fixture string          `yaml:"fixture"`
	Debug   bool            `yaml:"debug"`
	Expect  expectationYAML `yaml:"expect"`
}

type expectationYAML struct {
	Stdout string `yaml:"stdout"`
	Value  string `yaml:"value"`
	Type   string `yaml:"type"`
	Error  string `yaml:"error"`
}

func (sf suiteFile) toSuite(path string) *Suite {
	suite := &Suite{
		Path:     path,
		Name:     strings.TrimSpace(sf.Name),
		Programs: make([]*ProgramSpec, 0, len(sf.Programs)),
	}
	for _, prog := range sf.Programs {
		if prog == nil {
			continue
		}
		suite.Programs = append(suite.Programs, &ProgramSpec{
			Name:    strings.TrimSpace(prog.Name),
			Fixture: strings.TrimSpace(prog.Fixture),
			Debug:   prog.Debug,
			Expect: Expectation{
				Stdout: prog.Expect.Stdout,
				Value:  strings.TrimSpace(prog.Expect.Value),
				Type:   strings.TrimSpace(prog.Expect.Type),
				Error:  strings.TrimSpace(strings.ToLower(prog.Expect.Error)),
			},
		})
	}
	return suite
}
