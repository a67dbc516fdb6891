package spawn

import (
	"os"
	"sort"
)

// defaults holds the process settings configured on a Spawn.
// Invocation options are layered over them for every run.
type defaults struct {
	env           map[string]string
	dir           string
	inheritEnv    bool
	disableColors bool
}

func newDefaults() *defaults {
	return &defaults{
		env: make(map[string]string),
	}
}

// processConfig is the effective configuration of a single run.
type processConfig struct {
	dir string
	// env is nil when the child should inherit the parent environment untouched.
	env []string
}

// resolve merges the invocation options over the defaults.
// Local settings override global settings.
func (d *defaults) resolve(local Options) processConfig {
	cfg := processConfig{dir: d.dir}
	if local.Dir != "" {
		cfg.dir = local.Dir
	}

	inherit := d.inheritEnv
	if local.InheritEnv != nil {
		inherit = *local.InheritEnv
	}

	disableColors := d.disableColors
	if local.DisableColors != nil {
		disableColors = *local.DisableColors
	}

	env := make(map[string]string, len(d.env)+len(local.Env))
	for k, v := range d.env {
		env[k] = v
	}
	for k, v := range local.Env {
		env[k] = v
	}

	if disableColors {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
	}

	explicit := len(d.env) > 0 || local.Env != nil || disableColors
	if !explicit {
		return cfg
	}

	// Color variables alone keep the parent environment.
	colorsOnly := len(d.env) == 0 && local.Env == nil
	if inherit || colorsOnly {
		cfg.env = os.Environ()
	} else {
		cfg.env = []string{}
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cfg.env = append(cfg.env, k+"="+env[k])
	}

	return cfg
}
