package spawn

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestResolve_NothingConfiguredInherits(t *testing.T) {
	cfg := newDefaults().resolve(Options{})
	assert.Nil(t, cfg.env)
	assert.Equal(t, "", cfg.dir)
}

func TestResolve_LocalDirOverridesGlobal(t *testing.T) {
	d := newDefaults()
	d.dir = "/global"

	assert.Equal(t, "/global", d.resolve(Options{}).dir)
	assert.Equal(t, "/local", d.resolve(Options{Dir: "/local"}).dir)
}

func TestResolve_ExplicitEnvOnly(t *testing.T) {
	d := newDefaults()
	d.env["A"] = "global"
	d.env["B"] = "global"

	cfg := d.resolve(Options{Env: map[string]string{"B": "local"}})
	assert.Equal(t, []string{"A=global", "B=local"}, cfg.env)
}

func TestResolve_EmptyExplicitEnv(t *testing.T) {
	cfg := newDefaults().resolve(Options{Env: map[string]string{}})
	assert.NotNil(t, cfg.env)
	assert.Empty(t, cfg.env)
}

func TestResolve_InheritEnv(t *testing.T) {
	t.Setenv("STARFLOW_RESOLVE_VAR", "parent")
	d := newDefaults()

	cfg := d.resolve(Options{Env: map[string]string{"A": "1"}, InheritEnv: boolPtr(true)})
	assert.Contains(t, cfg.env, "STARFLOW_RESOLVE_VAR=parent")
	assert.Equal(t, "A=1", cfg.env[len(cfg.env)-1])
	assert.Len(t, cfg.env, len(os.Environ())+1)
}

func TestResolve_LocalInheritOverridesGlobal(t *testing.T) {
	d := newDefaults()
	d.inheritEnv = true

	cfg := d.resolve(Options{Env: map[string]string{"A": "1"}, InheritEnv: boolPtr(false)})
	assert.Equal(t, []string{"A=1"}, cfg.env)
}

func TestResolve_DisableColorsKeepsParentEnv(t *testing.T) {
	t.Setenv("STARFLOW_RESOLVE_VAR", "parent")
	d := newDefaults()
	d.disableColors = true

	cfg := d.resolve(Options{})
	assert.Contains(t, cfg.env, "STARFLOW_RESOLVE_VAR=parent")
	assert.Contains(t, cfg.env, "NO_COLOR=1")
	assert.Contains(t, cfg.env, "TERM=dumb")
	assert.Contains(t, cfg.env, "FORCE_COLOR=0")

	cfg = d.resolve(Options{DisableColors: boolPtr(false)})
	assert.Nil(t, cfg.env)
}
