package script

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is a sequence of collection calls read from YAML:
//
//	name: basics
//	steps:
//	  - op: new
//	    target: coll
//	    args: [false, false, true]
//	  - op: add
//	    target: coll
//	    args: [key1, value1, key2, null]
//	  - op: length
//	    target: coll
//	    expect: "1"
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Op     string  `yaml:"op"`
	Target string  `yaml:"target"`
	Args   []any   `yaml:"args"`
	Into   string  `yaml:"into"`
	Print  string  `yaml:"print"`
	Expect *string `yaml:"expect"`
}

//go:embed demo.yaml
var demoYAML []byte

func Parse(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, step := range s.Steps {
		if step.Op == "" {
			return nil, fmt.Errorf("step %d: %w: missing op", i+1, ErrBadArgs)
		}
	}
	return s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Demo walks through every collection operation, printing as it goes, in the
// order of the classic Collection sample.
func Demo() (*Script, error) {
	return Parse(demoYAML)
}

func (st Step) label() string {
	args := make([]string, 0, len(st.Args))
	for _, a := range st.Args {
		args = append(args, renderArg(a))
	}
	return fmt.Sprintf("%s.%s(%s)", st.Target, st.Op, strings.Join(args, ", "))
}

func renderArg(a any) string {
	switch v := a.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}
