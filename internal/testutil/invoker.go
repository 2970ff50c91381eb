// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"strings"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// Line renders the call as a command line.
func (c Call) Line() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Invoker records every Run and answers with Respond. A nil Respond makes
// every call succeed with exit code 0.
type Invoker struct {
	Respond func(call Call) (int, error)

	mu    sync.Mutex
	calls []Call
}

// Run implements runner.Invoker.
func (f *Invoker) Run(_ context.Context, name string, args ...string) (int, error) {
	call := Call{Name: name, Args: append([]string(nil), args...)}

	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Respond == nil {
		return 0, nil
	}
	return f.Respond(call)
}

// Calls returns a copy of the recorded calls.
func (f *Invoker) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Lines returns the recorded calls as command lines.
func (f *Invoker) Lines() []string {
	calls := f.Calls()
	lines := make([]string, 0, len(calls))
	for _, c := range calls {
		lines = append(lines, c.Line())
	}
	return lines
}
