package spawn

import "strings"

// Options holds the per-invocation process settings.
// Zero values defer to the defaults configured on the Spawn.
type Options struct {
	// Dir is the working directory of the child.
	Dir string

	// Env holds environment variables for the child.
	// When no environment is configured at all the child inherits the parent's.
	Env map[string]string

	// InheritEnv merges the parent environment under Env.
	InheritEnv *bool

	// DisableColors sets common color-disabling variables.
	DisableColors *bool
}

// clone returns a deep copy of the options.
func (o Options) clone() Options {
	clone := Options{Dir: o.Dir}
	if o.Env != nil {
		clone.Env = make(map[string]string, len(o.Env))
		for k, v := range o.Env {
			clone.Env[k] = v
		}
	}
	if o.InheritEnv != nil {
		val := *o.InheritEnv
		clone.InheritEnv = &val
	}
	if o.DisableColors != nil {
		val := *o.DisableColors
		clone.DisableColors = &val
	}
	return clone
}

// Request is the structured form of an invocation.
type Request struct {
	Cmd        string
	Args       []string
	Options    Options
	MuteErrors bool
}

// Invocation is a single immutable execution request.
// Build one with FromRequest or FromArgs.
type Invocation struct {
	cmd        string
	args       []string
	options    Options
	muteErrors bool
}

// FromRequest builds an Invocation from the structured request form.
func FromRequest(req Request) Invocation {
	return Invocation{
		cmd:        req.Cmd,
		args:       append([]string(nil), req.Args...),
		options:    req.Options.clone(),
		muteErrors: req.MuteErrors,
	}
}

// FromArgs builds an Invocation from a command name and plain arguments,
// with default options and errors not muted.
func FromArgs(cmd string, args ...string) Invocation {
	return Invocation{
		cmd:  cmd,
		args: append([]string(nil), args...),
	}
}

// Cmd returns the command name.
func (i Invocation) Cmd() string {
	return i.cmd
}

// Args returns a copy of the arguments.
func (i Invocation) Args() []string {
	return append([]string(nil), i.args...)
}

// Options returns a copy of the process options.
func (i Invocation) Options() Options {
	return i.options.clone()
}

// MuteErrors reports whether a non-zero exit is turned into a muted success.
func (i Invocation) MuteErrors() bool {
	return i.muteErrors
}

// String renders the command line for log records.
func (i Invocation) String() string {
	if len(i.args) == 0 {
		return i.cmd
	}
	return i.cmd + " " + strings.Join(i.args, " ")
}
