// Command blendercli loads a Wavefront OBJ, attaches a subdivision-surface
// modifier to every object, and exports the result by driving a headless
// Blender. Run it like any normal program:
//
//	blendercli rose.obj rose-subsurf.obj --levels 3
//
// When started outside Blender it re-execs itself under
// `blender --background --factory-startup --python <driver> -- <args>`;
// the driver re-runs this binary inside Blender with a live bridge to bpy.
// The blender executable needs to be in your path (or configured, see
// pkg/config).
package main

import (
	"os"

	"github.com/google/uuid"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/argsplit"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/blender"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/config"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/output"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/relaunch"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	cfg, err := config.Load(os.Getenv(config.EnvConfig))
	if err != nil {
		output.Errorf("%v", err)
		return 1
	}
	minVersion, err := cfg.Minimum()
	if err != nil {
		output.Errorf("%v", err)
		return 1
	}

	acq := blender.AcquirerFromEnv(minVersion)
	return runWith(acq, argv, func() int { return relaunchUnderHost(cfg, argv) })
}

// runWith performs the host handshake and, once embedded, hands the
// program's own arguments to the CLI. relaunchFn is called only when the
// probe says the host is absent, and returns only on failure.
func runWith(acq hostapi.Acquirer, argv []string, relaunchFn func() int) int {
	avail, api, err := hostapi.Probe(acq)
	if avail != hostapi.Available {
		output.Notef("not running under blender (%s)", avail.Reason())
		return relaunchFn()
	}
	if err != nil {
		// A live host answered but the handshake failed (version gate,
		// protocol mismatch). Relaunching would loop forever.
		output.Errorf("blender handshake failed: %v", err)
		return 1
	}
	defer func() { _ = api.Close() }()

	ownArgs, err := argsplit.Split(api.HostArgv())
	if err != nil {
		output.Errorf("%v (was the relaunch performed correctly?)", err)
		return 1
	}

	return execute(api.Scene(), ownArgs)
}

// relaunchUnderHost replaces this process with a blender invocation that
// re-runs the same binary embedded. It returns only when blender could not
// be started.
func relaunchUnderHost(cfg config.Config, argv []string) int {
	output.Notef("re-execing myself under blender (blender must exist in path)...")

	driver, err := blender.WriteDriver(os.TempDir())
	if err != nil {
		output.Errorf("%v", err)
		return 1
	}

	env := append(os.Environ(), blender.EnvToken+"="+uuid.NewString())
	r := &relaunch.Relauncher{
		HostBinary: cfg.HostBinary(),
		ExtraArgs:  cfg.ExtraArgs,
	}
	if err := r.Relaunch(driver, argv[1:], env); err != nil {
		output.Errorf("%v", err)
	}
	return 1
}
