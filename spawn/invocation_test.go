package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromArgs(t *testing.T) {
	inv := FromArgs("cat", "a.txt", "b.txt")

	assert.Equal(t, "cat", inv.Cmd())
	assert.Equal(t, []string{"a.txt", "b.txt"}, inv.Args())
	assert.False(t, inv.MuteErrors())
	assert.Equal(t, Options{}, inv.Options())
	assert.Equal(t, "cat a.txt b.txt", inv.String())
}

func TestFromArgs_NoArgs(t *testing.T) {
	inv := FromArgs("true")
	assert.Empty(t, inv.Args())
	assert.Equal(t, "true", inv.String())
}

func TestFromRequest(t *testing.T) {
	inherit := true
	inv := FromRequest(Request{
		Cmd:        "make",
		Args:       []string{"test"},
		Options:    Options{Dir: "/src", Env: map[string]string{"K": "V"}, InheritEnv: &inherit},
		MuteErrors: true,
	})

	assert.Equal(t, "make", inv.Cmd())
	assert.Equal(t, []string{"test"}, inv.Args())
	assert.True(t, inv.MuteErrors())
	assert.Equal(t, "/src", inv.Options().Dir)
	assert.Equal(t, map[string]string{"K": "V"}, inv.Options().Env)
	assert.True(t, *inv.Options().InheritEnv)
}

func TestInvocation_IsImmutable(t *testing.T) {
	args := []string{"one"}
	env := map[string]string{"K": "V"}
	inherit := false
	inv := FromRequest(Request{Cmd: "echo", Args: args, Options: Options{Env: env, InheritEnv: &inherit}})

	args[0] = "changed"
	env["K"] = "changed"
	inherit = true

	assert.Equal(t, []string{"one"}, inv.Args())
	assert.Equal(t, "V", inv.Options().Env["K"])
	assert.False(t, *inv.Options().InheritEnv)

	got := inv.Args()
	got[0] = "mutated"
	assert.Equal(t, []string{"one"}, inv.Args())

	opts := inv.Options()
	opts.Env["K"] = "mutated"
	assert.Equal(t, "V", inv.Options().Env["K"])
}
