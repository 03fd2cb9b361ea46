//go:build unix

package relaunch

import (
	"os/exec"
	"syscall"
)

// RealExecutor is the production implementation.
type RealExecutor struct{}

// Exec replaces the current process with the host invocation using
// syscall.Exec. It only returns on failure.
func (e *RealExecutor) Exec(binary string, args []string, env []string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return err
	}

	argv := append([]string{binary}, args...)
	// #nosec G204 -- intentional: relaunching ourselves under the host
	// binary is the whole point of this package.
	return syscall.Exec(path, argv, env)
}
