// Package emit turns a project into the script the calling shell evaluates.
//
// The order of actions is decided once by Plan and ResetPlan; the Emitter
// renders those steps for a dialect and Preview describes them for display.
package emit

import (
	"switchcraft/internal/catalog"
	"switchcraft/internal/integration"
)

// Request describes one switch. Path and Venv are already resolved.
type Request struct {
	Project catalog.Project
	Path    string
	Venv    string
	NoEnv   bool
}

type Op uint8

const (
	OpActivate Op = iota
	OpDeactivate
	OpSetEnv
)

func (o Op) String() string {
	switch o {
	case OpActivate:
		return "activate"
	case OpDeactivate:
		return "deactivate"
	case OpSetEnv:
		return "setenv"
	}
	return "unknown"
}

// Step is one abstract action. Name is only set for OpSetEnv.
type Step struct {
	Op    Op
	Key   integration.Key
	Name  string
	Value string
}

// switched are activated when configured and deactivated otherwise.
var switched = []integration.Key{integration.Kubernetes, integration.GCloud, integration.AWS}

// Plan orders the actions of a switch. The venv is cleared first and
// activated last; the cd is always the final step.
func Plan(req Request) []Step {
	var steps []Step
	if !req.NoEnv {
		p := req.Project
		steps = append(steps, Step{Op: OpDeactivate, Key: integration.Venv})
		for _, key := range switched {
			if v := p.Value(key); v != "" {
				steps = append(steps, Step{Op: OpActivate, Key: key, Value: v})
			} else {
				steps = append(steps, Step{Op: OpDeactivate, Key: key})
			}
		}
		// Activating azure only clears the account, so both branches emit the same line.
		if p.Azure != "" {
			steps = append(steps, Step{Op: OpActivate, Key: integration.Azure, Value: p.Azure})
		} else {
			steps = append(steps, Step{Op: OpDeactivate, Key: integration.Azure})
		}
		for _, e := range p.Env {
			steps = append(steps, Step{Op: OpSetEnv, Name: e.Key, Value: e.Value})
		}
		if req.Venv != "" {
			steps = append(steps, Step{Op: OpActivate, Key: integration.Venv, Value: req.Venv})
		}
	}
	return append(steps, Step{Op: OpActivate, Key: integration.Path, Value: req.Path})
}

var resetOrder = []integration.Key{
	integration.Venv,
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
}

// ResetPlan clears every integration and returns to dir.
func ResetPlan(dir string) []Step {
	steps := make([]Step, 0, len(resetOrder)+1)
	for _, key := range resetOrder {
		steps = append(steps, Step{Op: OpDeactivate, Key: key})
	}
	return append(steps, Step{Op: OpActivate, Key: integration.Path, Value: dir})
}
