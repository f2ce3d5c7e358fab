package assistant

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandBackend_EchoesStdin(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	b := &CommandBackend{Command: "cat", Timeout: 5 * time.Second}
	require.NoError(t, b.Ready())

	out, err := b.Generate(context.Background(), Request{Prompt: "  hello there  \n"})
	require.NoError(t, err)
	assert.Equal(t, "hello there", out)
}

func TestCommandBackend_EmptyOutput(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	b := &CommandBackend{Command: "true"}
	_, err := b.Generate(context.Background(), Request{Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = b.Generate(context.Background(), Request{Prompt: "x", Probe: true})
	assert.NoError(t, err, "probe only needs a clean exit")
}

func TestCommandBackend_Failure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	b := &CommandBackend{Command: "sh", Args: []string{"-c", "echo oops >&2; exit 3"}}
	_, err := b.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
}

func TestCommandBackend_Timeout(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}

	b := &CommandBackend{Command: "sleep", Args: []string{"5"}, Timeout: 50 * time.Millisecond}
	_, err := b.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "timed out"), err.Error())
}

func TestCommandBackend_NotFound(t *testing.T) {
	b := &CommandBackend{Command: "definitely-not-a-real-binary-uniqyou"}
	assert.Error(t, b.Ready())

	empty := &CommandBackend{}
	assert.Error(t, empty.Ready())
}

func TestSetCleanEnv(t *testing.T) {
	t.Setenv("TMPDIR", "/somewhere/else")
	cmd := exec.Command("true")
	setCleanEnv(cmd)

	count := 0
	for _, env := range cmd.Env {
		if strings.HasPrefix(env, "TMPDIR=") {
			count++
			assert.True(t, strings.HasSuffix(env, "uniqyou-assistant"), env)
		}
	}
	assert.Equal(t, 1, count)
}
