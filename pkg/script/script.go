// Package script drives named ordered maps from a YAML list of
// steps. Keys are integers and values are strings.
//
//	steps:
//	  - {op: insert, map: a, key: 9, value: Edward}
//	  - {op: lookup, map: a, key: 9, expect: Edward}
//	  - {op: copy, map: b, from: a}
//	  - {op: tree, map: b}
package script

import (
	"os"

	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// Op names a step operation.
type Op string

const (
	OpInsert  Op = "insert"
	OpRemove  Op = "remove"
	OpLookup  Op = "lookup"
	OpLen     Op = "len"
	OpCopy    Op = "copy"
	OpMove    Op = "move"
	OpEntries Op = "entries"
	OpTree    Op = "tree"
	OpClose   Op = "close"
)

// Step is a single operation against the map called Map.
type Step struct {
	Op     Op      `yaml:"op"`
	Map    string  `yaml:"map"`
	Key    *int    `yaml:"key,omitempty"`
	Value  *string `yaml:"value,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
	Absent bool    `yaml:"absent,omitempty"`
	Count  *int    `yaml:"count,omitempty"`
	From   string  `yaml:"from,omitempty"`
}

type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	s := new(Script)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, merry.Prepend(err, "script: parse")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the script file at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prepend(err, "script: load")
	}
	return Parse(data)
}

// Validate checks that every step names a known op and carries the
// fields that op needs.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return ErrNoSteps
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return stepError(err, i, string(st.Op))
		}
	}
	return nil
}

func (st *Step) validate() error {
	missing := func(field string) error {
		return merry.WithMessagef(ErrMissingField, "script: %s needs %s", st.Op, field)
	}
	if st.Map == "" {
		return missing("map")
	}
	switch st.Op {
	case OpInsert:
		if st.Key == nil {
			return missing("key")
		}
		if st.Value == nil {
			return missing("value")
		}
	case OpRemove:
		if st.Key == nil {
			return missing("key")
		}
	case OpLookup:
		if st.Key == nil {
			return missing("key")
		}
		if st.Expect == nil && !st.Absent {
			return missing("expect or absent")
		}
	case OpLen:
		if st.Count == nil {
			return missing("count")
		}
	case OpCopy, OpMove:
		if st.From == "" {
			return missing("from")
		}
	case OpEntries, OpTree, OpClose:
	default:
		return merry.WithMessagef(ErrUnknownOp, "script: unknown op %q", st.Op)
	}
	return nil
}
