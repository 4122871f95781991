package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement names an external binary wikiturtles may launch.
type Requirement struct {
	Name    string
	Command string
}

// Status is a Requirement after lookup. On success Command holds the
// resolved path; otherwise Detail says what is wrong.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Check resolves the requirement's command on PATH.
func (r Requirement) Check() Status {
	r.Command = strings.TrimSpace(r.Command)
	status := Status{Requirement: r}

	if r.Command == "" {
		status.Detail = "command not configured"
		return status
	}
	resolved, err := exec.LookPath(r.Command)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", r.Command)
		return status
	}
	status.Command = resolved
	status.Available = true
	return status
}
