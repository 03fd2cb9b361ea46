package main

import (
	"github.com/spf13/cobra"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/output"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/pipeline"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	levels    int
	verbosity int
)

var rootCmd = &cobra.Command{
	Use:     "blendercli <input> <output>",
	Short:   "Do some simple thing with blender, from the CLI",
	Long:    "Loads an OBJ file, adds a subsurf modifier to every object, and exports the updated model as an OBJ.",
	Version: Version,
	Args:    cobra.ExactArgs(2),
	RunE:    runPipeline,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVar(&levels, "levels", 2, "number of subdivision levels to add")
	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase verbosity level (-v for info, -vv for debug)")
}

// activeScene is injected by execute before the command runs; tests swap
// in a mock.
var activeScene hostapi.Scene

func runPipeline(_ *cobra.Command, args []string) error {
	log := newLogger(verbosity)

	r := &pipeline.Runner{
		Scene: activeScene,
		FS:    &pipeline.RealFileSystem{},
		Log:   log,
	}
	opts := pipeline.Options{Input: args[0], Output: args[1], Levels: levels}
	if err := r.Run(opts); err != nil {
		return err
	}

	log.Info("DONE!", "input", args[0], "output", args[1])
	return nil
}

// execute parses the program's own arguments and drives the pipeline
// against the given scene. The process exit status is the sole
// machine-readable success signal, so every failure maps to 1.
func execute(scene hostapi.Scene, args []string) int {
	activeScene = scene
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		output.Errorf("%v", err)
		return 1
	}
	return 0
}
