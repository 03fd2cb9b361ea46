// Package relaunch re-executes the program under the host binary when the
// host API is not available in the current process.
package relaunch

import (
	"fmt"
	"os"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/argsplit"
)

// Executor replaces the current process image with the given invocation.
// On success Exec never returns; any return value is a failure to start the
// host. argv[0] is the program name by convention.
type Executor interface {
	Exec(binary string, argv []string, env []string) error
}

// Relauncher builds and performs the host invocation.
type Relauncher struct {
	HostBinary string                 // host executable name, resolved via PATH
	ExtraArgs  []string               // extra host flags, inserted before --python
	Executor   Executor               // defaults to RealExecutor
	SelfPath   func() (string, error) // defaults to os.Executable
}

func (r *Relauncher) executor() Executor {
	if r.Executor != nil {
		return r.Executor
	}
	return &RealExecutor{}
}

func (r *Relauncher) selfPath() (string, error) {
	if r.SelfPath != nil {
		return r.SelfPath()
	}
	return os.Executable()
}

// BuildArgv constructs the full host argument vector: the host binary, its
// headless flags, the embedded driver script, the separator token, then
// every original argument after the program name, in original order.
func (r *Relauncher) BuildArgv(driver string, origArgs []string) []string {
	argv := []string{r.HostBinary, "--background", "--factory-startup"}
	argv = append(argv, r.ExtraArgs...)
	argv = append(argv, "--python", driver, argsplit.Separator)
	argv = append(argv, origArgs...)
	return argv
}

// Relaunch resolves the program's own absolute path, exports it to the
// driver through env, and replaces the current process with the host
// invocation. On success this call never returns; the new process redoes
// the host probe from scratch. A returned error always means the host
// could not be started, which is fatal: a missing host installation is not
// transient, so there is no retry.
func (r *Relauncher) Relaunch(driver string, origArgs []string, env []string) error {
	self, err := r.selfPath()
	if err != nil {
		return fmt.Errorf("cannot resolve own executable path: %w", err)
	}

	env = append(append([]string(nil), env...), EnvSelfExe+"="+self)
	argv := r.BuildArgv(driver, origArgs)

	if err := r.executor().Exec(r.HostBinary, argv[1:], env); err != nil {
		return fmt.Errorf("couldn't exec %s: %w", r.HostBinary, err)
	}
	return nil
}

// EnvSelfExe tells the driver script which binary to re-run inside the
// host. Set just before the process image is replaced.
const EnvSelfExe = "BLENDER_CLI_EXE"
