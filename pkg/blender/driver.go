package blender

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

//go:embed driver.py
var driverScript []byte

// WriteDriver writes the embedded driver script into dir and returns its
// path. The filename is derived from the script's content hash, so repeat
// relaunches reuse the file and a stale copy left by a different build of
// this binary can never be picked up by mistake.
func WriteDriver(dir string) (string, error) {
	sum := blake3.Sum256(driverScript)
	name := fmt.Sprintf("blendercli-driver-%x.py", sum[:8])
	path := filepath.Join(dir, name)

	if info, err := os.Stat(path); err == nil && info.Size() == int64(len(driverScript)) {
		return path, nil
	}
	if err := os.WriteFile(path, driverScript, 0o644); err != nil {
		return "", fmt.Errorf("write driver script: %w", err)
	}
	return path, nil
}
