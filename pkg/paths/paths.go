// Package paths resolves the fixed filesystem layout the judge reads case
// inputs from and writes case outputs and the result file to, switching
// between the production roots and DEV-mode relative roots.
package paths

import (
	"fmt"
	"path/filepath"
)

// Resolver resolves the three filesystem roots the judge touches: case
// inputs, case outputs, and the result file. Production roots are absolute
// (/case, /output, /result); DEV remaps each to a relative directory under
// the current working directory.
type Resolver struct {
	CaseRoot   string
	OutputRoot string
	ResultRoot string
}

// NewResolver returns the production resolver, or the DEV resolver when dev
// is true.
func NewResolver(dev bool) Resolver {
	if dev {
		return Resolver{CaseRoot: "./case", OutputRoot: "./output", ResultRoot: "./result"}
	}
	return Resolver{CaseRoot: "/case", OutputRoot: "/output", ResultRoot: "/result"}
}

// CaseInput returns the path to case i's input file.
func (r Resolver) CaseInput(i int) string {
	return filepath.Join(r.CaseRoot, fmt.Sprintf("%d.in", i))
}

// CaseOutput returns the path to case i's captured-stdout file.
func (r Resolver) CaseOutput(i int) string {
	return filepath.Join(r.OutputRoot, fmt.Sprintf("%d.out", i))
}

// ResultFile returns the path to the result vector file.
func (r Resolver) ResultFile() string {
	return filepath.Join(r.ResultRoot, "info.json")
}
