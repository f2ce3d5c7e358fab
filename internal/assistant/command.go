package assistant

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/uniqyou/internal/config"
)

// CommandBackend runs a local reasoning CLI, writing the prompt to its stdin
// and reading the reply from stdout.
type CommandBackend struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewCommandBackend creates a CommandBackend from the assistant config.
func NewCommandBackend(cfg config.AssistantConfig) *CommandBackend {
	return &CommandBackend{
		Command: cfg.Command,
		Args:    cfg.Args,
		Timeout: cfg.Timeout,
	}
}

// Ready checks that the command can be found.
func (b *CommandBackend) Ready() error {
	if b.Command == "" {
		return fmt.Errorf("no assistant command configured")
	}
	if _, err := exec.LookPath(b.Command); err != nil {
		return fmt.Errorf("assistant command not found: %w", err)
	}
	return nil
}

// Generate runs the command once. Sampling options in req are ignored; the
// CLI uses its own.
func (b *CommandBackend) Generate(ctx context.Context, req Request) (string, error) {
	if err := b.Ready(); err != nil {
		return "", err
	}

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, b.Command, b.Args...)
	cmd.Stdin = strings.NewReader(req.Prompt)
	setCleanEnv(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("assistant command timed out after %v", b.Timeout)
		}
		return "", fmt.Errorf("assistant command failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	out := strings.TrimSpace(stdout.String())
	if out == "" && !req.Probe {
		return "", ErrInvalidResponse
	}
	return out, nil
}

// setCleanEnv gives the command a private TMPDIR so stray sockets or files
// in the user's temp directory cannot interfere with it.
func setCleanEnv(cmd *exec.Cmd) {
	tmp := filepath.Join(os.TempDir(), "uniqyou-assistant")
	os.MkdirAll(tmp, 0700)

	cmd.Env = os.Environ()
	for i, env := range cmd.Env {
		if strings.HasPrefix(env, "TMPDIR=") {
			cmd.Env[i] = "TMPDIR=" + tmp
			return
		}
	}
	cmd.Env = append(cmd.Env, "TMPDIR="+tmp)
}
