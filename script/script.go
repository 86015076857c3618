// Package script replays YAML-described operation sequences against ring lists.
package script

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/containers"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/ringlist"
)

// Op names accepted in scripts.
const (
	OpAdd      = "add"
	OpInsert   = "insert"
	OpSet      = "set"
	OpGet      = "get"
	OpRemove   = "remove"
	OpContains = "contains"
	OpEmpty    = "empty"
	OpSize     = "size"
	OpClear    = "clear"
	OpValues   = "values"
)

var (
	// ErrUnexpectedOutput is reported when the output of an op differs from the expected one.
	ErrUnexpectedOutput = errors.New("unexpected output")

	errUnknownOp       = errors.New("unknown op")
	errMissingArgument = errors.New("missing argument")
)

// Script is a named sequence of ops executed on a list seeded with Values.
type Script struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values,omitempty"`
	Ops    []Op     `yaml:"ops"`
}

// Op is a single list operation.
type Op struct {
	Op     string  `yaml:"op"`
	Index  *int    `yaml:"index,omitempty"`
	Value  *string `yaml:"value,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
}

// Step is the outcome of a single op.
type Step struct {
	Op     Op
	Output string
	Err    error
}

// Report is the outcome of the whole script. List is the list left after the last op.
type Report struct {
	Index int
	Name  string
	Steps []Step
	List  containers.Container[string]
	Err   error
}

// Parse decodes script from YAML. Name is used when the script does not name itself.
func Parse(name, text string) (Script, error) {
	var s Script
	if err := yaml.Unmarshal([]byte(text), &s); err != nil {
		return Script{}, errors.Wrapf(err, "decoding script %q failed", name)
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// Replay runs all the ops of the script on a fresh list. Failing ops do not stop the replay.
func Replay(s Script) Report {
	l := ringlist.Of(s.Values...)

	report := Report{
		Name:  s.Name,
		Steps: make([]Step, 0, len(s.Ops)),
	}
	for i, op := range s.Ops {
		output, err := apply(l, op)
		if err == nil && op.Expect != nil && *op.Expect != output {
			err = errors.Wrapf(ErrUnexpectedOutput, "expected %q, got %q", *op.Expect, output)
		}
		if err != nil {
			report.Err = multierr.Append(report.Err, errors.WithMessagef(err, "step %d (%s)", i, op.Op))
		}
		report.Steps = append(report.Steps, Step{
			Op:     op,
			Output: output,
			Err:    err,
		})
	}
	report.List = l

	return report
}

func apply(seq ringlist.Sequence[string], op Op) (string, error) {
	switch op.Op {
	case OpAdd:
		value, err := requireValue(op)
		if err != nil {
			return "", err
		}
		seq.Add(value)
		return "", nil
	case OpInsert:
		index, value, err := requireIndexValue(op)
		if err != nil {
			return "", err
		}
		return "", seq.Insert(index, value)
	case OpSet:
		index, value, err := requireIndexValue(op)
		if err != nil {
			return "", err
		}
		return "", seq.Set(index, value)
	case OpGet:
		index, err := requireIndex(op)
		if err != nil {
			return "", err
		}
		return seq.Get(index)
	case OpRemove:
		index, err := requireIndex(op)
		if err != nil {
			return "", err
		}
		return "", seq.Remove(index)
	case OpContains:
		value, err := requireValue(op)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(seq.Contains(value)), nil
	case OpEmpty:
		return strconv.FormatBool(seq.Empty()), nil
	case OpSize:
		return strconv.Itoa(seq.Size()), nil
	case OpClear:
		seq.Clear()
		return "", nil
	case OpValues:
		return strings.Join(seq.Values(), ","), nil
	default:
		return "", errors.Wrapf(errUnknownOp, "op %q", op.Op)
	}
}

func requireIndex(op Op) (int, error) {
	if op.Index == nil {
		return 0, errors.Wrapf(errMissingArgument, "op %q requires index", op.Op)
	}
	return *op.Index, nil
}

func requireValue(op Op) (string, error) {
	if op.Value == nil {
		return "", errors.Wrapf(errMissingArgument, "op %q requires value", op.Op)
	}
	return *op.Value, nil
}

func requireIndexValue(op Op) (int, string, error) {
	index, err := requireIndex(op)
	if err != nil {
		return 0, "", err
	}
	value, err := requireValue(op)
	if err != nil {
		return 0, "", err
	}
	return index, value, nil
}
