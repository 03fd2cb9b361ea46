// Package pipeline performs the reset -> load -> transform -> save sequence
// against the host's scene.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
)

// SubsurfKind is the modifier kind attached to every imported object.
const SubsurfKind = "SUBSURF"

// ErrInputNotFound is returned when the input path does not name an
// existing regular file. The scene is untouched in that case; callers map
// it to exit code 1.
var ErrInputNotFound = errors.New("input file does not exist or is not a regular file")

// Options describe one pipeline run.
type Options struct {
	Input  string // asset to load
	Output string // path to export to, overwritten if present
	Levels int    // subdivision depth applied to every object
}

// Runner drives one scene through a single run. It does not own the scene;
// after a successful run the scene is intentionally left populated with the
// loaded and modified asset.
type Runner struct {
	Scene hostapi.Scene
	FS    FileSystem // defaults to RealFileSystem
	Log   *slog.Logger
}

func (r *Runner) fs() FileSystem {
	if r.FS != nil {
		return r.FS
	}
	return &RealFileSystem{}
}

func (r *Runner) log() *slog.Logger {
	if r.Log != nil {
		return r.Log
	}
	return slog.Default()
}

// Run executes one full pass. The input precondition is checked before any
// scene mutation so a missing input leaves the scene exactly as it was.
// Every other failure propagates as-is and is fatal for the invocation.
func (r *Runner) Run(opts Options) error {
	log := r.log()
	log.Debug("starting run", "input", opts.Input, "output", opts.Output, "levels", opts.Levels)

	info, err := r.fs().Stat(opts.Input)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %q", ErrInputNotFound, opts.Input)
	}

	if err := r.reset(); err != nil {
		return err
	}

	log.Debug("loading obj file", "path", opts.Input)
	if err := r.Scene.ImportOBJ(opts.Input); err != nil {
		return fmt.Errorf("import %q: %w", opts.Input, err)
	}
	log.Debug("loaded obj file", "path", opts.Input)

	// Clear selection left over from import so nothing downstream is
	// accidentally selection-scoped.
	if err := r.Scene.DeselectAll(); err != nil {
		return err
	}

	if err := r.subdivide(opts.Levels); err != nil {
		return err
	}

	log.Debug("saving obj file", "path", opts.Output)
	err = r.Scene.ExportOBJ(opts.Output, hostapi.ExportOptions{
		Overwrite:      true,
		SelectionOnly:  false,
		Animation:      false,
		ApplyModifiers: true,
	})
	if err != nil {
		return fmt.Errorf("export %q: %w", opts.Output, err)
	}
	log.Debug("saved obj file", "path", opts.Output)

	return nil
}

// reset brings the scene to a known-empty state. Destructive removal only
// happens once the host is out of any interaction mode.
func (r *Runner) reset() error {
	active, err := r.Scene.HasActiveObject()
	if err != nil {
		return err
	}
	if active {
		if err := r.Scene.SetMode(hostapi.ObjectMode); err != nil {
			return err
		}
	}
	return r.Scene.RemoveAllObjects()
}

// subdivide attaches one subsurf modifier to every top-level object, with
// no per-object filtering.
func (r *Runner) subdivide(levels int) error {
	objects, err := r.Scene.Objects()
	if err != nil {
		return err
	}
	for _, name := range objects {
		if err := r.Scene.AddModifier(name, SubsurfKind, levels); err != nil {
			return fmt.Errorf("add %s modifier to %q: %w", SubsurfKind, name, err)
		}
	}
	r.log().Debug("subdivided objects", "count", len(objects), "levels", levels)
	return nil
}
