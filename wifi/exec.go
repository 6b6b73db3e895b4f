package wifi

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/evilsocket/islazy/str"
)

var (
	ErrNoCommand = errors.New("no command specified")
	// how long to wait for the output pipes once the command is killed
	WaitDelay = 2 * time.Second
)

// Runner executes an external command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	if name == "" {
		return nil, ErrNoCommand
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = WaitDelay

	out, err := cmd.Output()
	if err = commandError(ctx, name, err); err != nil {
		return nil, err
	}
	return out, nil
}

func commandError(ctx context.Context, name string, err error) error {
	if err == nil {
		return nil
	} else if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("%s timed out", name)
	} else if exitErr, ok := err.(*exec.ExitError); ok {
		if stderr := str.Trim(string(exitErr.Stderr)); stderr != "" {
			return fmt.Errorf("%s: %v: %s", name, err, stderr)
		}
		return fmt.Errorf("%s: %v", name, err)
	}
	return err
}
