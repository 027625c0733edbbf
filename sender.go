package notifme

import (
	"context"
	"errors"
	"os/exec"
)

// DefaultBinary is the sender executable used when none is configured.
const DefaultBinary = "notify-send"

var (
	lookPath       = exec.LookPath
	commandContext = exec.CommandContext
)

// Sender runs the external notification sender with the given arguments.
// It returns the exit status, or an error when no status is available.
type Sender interface {
	Send(ctx context.Context, args []string) (int, error)
}

// CommandSender runs a notification executable as a child process.
type CommandSender struct {
	binary string
}

// NewCommandSender returns a sender for binary, or notify-send when empty.
func NewCommandSender(binary string) *CommandSender {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CommandSender{binary: binary}
}

// Binary returns the executable name or path.
func (c *CommandSender) Binary() string {
	return c.binary
}

// Send starts the executable and waits for it. The child's output goes to
// the null device.
func (c *CommandSender) Send(ctx context.Context, args []string) (int, error) {
	path, err := lookPath(c.binary)
	if err != nil {
		return -1, &Error{Kind: KindNotFound, Binary: c.binary, Err: err}
	}

	cmd := commandContext(ctx, path, args...) //nolint:gosec
	if err := cmd.Start(); err != nil {
		return -1, &Error{Kind: KindSpawn, Binary: c.binary, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return -1, &Error{Kind: KindWait, Binary: c.binary, Err: err}
		}
		if exitErr.ExitCode() < 0 {
			// terminated by a signal: the sender ran but did not succeed
			return -1, &Error{Kind: KindExit, Binary: c.binary, ExitCode: -1, Err: exitErr}
		}
		return exitErr.ExitCode(), nil
	}
	return 0, nil
}
