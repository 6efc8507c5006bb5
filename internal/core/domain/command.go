package domain

import (
	"maps"
	"slices"
)

// CommandSpec is a fully built invocation of the external tool.
type CommandSpec struct {
	// Args is the argument vector; Args[0] is the program to start.
	Args []string
	// Env holds variables added on top of the inherited environment.
	Env map[string]string
}

// WithTarget returns a copy of the spec with path appended as the final positional argument.
func (c CommandSpec) WithTarget(path string) CommandSpec {
	args := make([]string, 0, len(c.Args)+1)
	args = append(args, c.Args...)
	args = append(args, path)
	return CommandSpec{Args: args, Env: maps.Clone(c.Env)}
}

// Program returns the program name, or an empty string for an empty spec.
func (c CommandSpec) Program() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Equal reports whether two specs have the same arguments and environment.
func (c CommandSpec) Equal(other CommandSpec) bool {
	return slices.Equal(c.Args, other.Args) && maps.Equal(c.Env, other.Env)
}
