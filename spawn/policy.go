package spawn

const (
	// WarningOutputMuted is logged when stdout was produced but never displayed.
	WarningOutputMuted = "Output muted (set appropriate values for starflow_shell__SPAWN_DISPLAY_OUTPUT and starflow_shell__SPAWN_DEPTH_LIMIT)"

	// WarningErrorsMuted is logged when a non-zero exit was muted by the invocation.
	WarningErrorsMuted = "Errors detected but muted by the task parameters"
)

// completion is everything the policy looks at once the child has exited.
type completion struct {
	exitCode   int
	muteErrors bool
	stdout     string
	// displayed is true if any stdout chunk was echoed during the run.
	displayed bool
}

// verdict is the terminal state of a run plus the warnings to log, in order.
type verdict struct {
	state    State
	warnings []string
}

// decide applies the completion policy.
func decide(c completion) verdict {
	if c.exitCode != 0 && !c.muteErrors {
		return verdict{state: StateFailed}
	}

	v := verdict{state: StateSucceeded}
	if c.stdout != "" && !c.displayed {
		v.warnings = append(v.warnings, WarningOutputMuted)
	}
	if c.exitCode != 0 {
		v.state = StateMutedFailure
		v.warnings = append(v.warnings, WarningErrorsMuted)
	}
	return v
}
