//go:build windows

package relaunch

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Exec approximates process replacement on Windows, which has no true exec
// syscall: it runs the host, waits, and exits with the host's status, so
// control still never returns to the caller on success.
//
// The command line is assembled by hand because CreateProcess takes a
// single string; tokens containing spaces (the driver script usually lives
// under a path with spaces) must be quoted or the host will mis-split them.
func (e *RealExecutor) Exec(binary string, args []string, env []string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return err
	}

	cmd := exec.Command(path)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: BuildCmdLine(append([]string{binary}, args...)),
	}
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}

	os.Exit(0)
	return nil
}
