// Package blender implements the host API over a local bridge socket
// served by the embedded Python driver running inside Blender.
package blender

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"

	"github.com/tidwall/gjson"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
)

// Env names shared with the driver script and the relauncher.
const (
	// EnvBridgeAddr is set by the driver for the re-run binary. Its
	// absence means the process is not running under the host.
	EnvBridgeAddr = "BLENDER_CLI_BRIDGE_ADDR"

	// EnvToken carries the per-relaunch session token. The relauncher
	// sets it; the driver checks it during the hello exchange so a stale
	// bridge from an unrelated session is never mistaken for ours.
	EnvToken = "BLENDER_CLI_TOKEN"
)

// Bridge is a connected host API handle. All calls are synchronous
// request/reply over newline-delimited JSON; the driver serves exactly one
// client, so no locking is needed.
type Bridge struct {
	conn    net.Conn
	r       *bufio.Reader
	nextID  int
	version string
	argv    []string
}

func (b *Bridge) call(op string, params map[string]any) (gjson.Result, error) {
	b.nextID++
	req := map[string]any{"id": b.nextID, "op": op}
	if len(params) > 0 {
		req["params"] = params
	}

	data, err := json.Marshal(req)
	if err != nil {
		return gjson.Result{}, err
	}
	if _, err := b.conn.Write(append(data, '\n')); err != nil {
		return gjson.Result{}, fmt.Errorf("bridge write: %w", err)
	}

	line, err := b.r.ReadString('\n')
	if err != nil {
		return gjson.Result{}, fmt.Errorf("bridge read: %w", err)
	}
	if !gjson.Valid(line) {
		return gjson.Result{}, fmt.Errorf("bridge sent invalid JSON: %q", line)
	}

	reply := gjson.Parse(line)
	if !reply.Get("ok").Bool() {
		msg := reply.Get("error").String()
		if msg == "" {
			msg = "unknown host error"
		}
		return gjson.Result{}, fmt.Errorf("%s: %s", op, msg)
	}
	return reply.Get("result"), nil
}

// Scene returns the host scene handle. The bridge itself is the scene; one
// connection drives one document.
func (b *Bridge) Scene() hostapi.Scene { return b }

// HostVersion reports the Blender version learned during the handshake.
func (b *Bridge) HostVersion() string { return b.version }

// HostArgv is Blender's full argument vector, separator included.
func (b *Bridge) HostArgv() []string { return append([]string(nil), b.argv...) }

// Close drops the bridge connection. The driver notices EOF, waits for
// this process to exit, and quits Blender with the same status.
func (b *Bridge) Close() error { return b.conn.Close() }

// HasActiveObject reports whether the host is mid-interaction.
func (b *Bridge) HasActiveObject() (bool, error) {
	res, err := b.call("scene.active", nil)
	if err != nil {
		return false, err
	}
	return res.Get("active").Bool(), nil
}

// SetMode switches the host's interaction mode.
func (b *Bridge) SetMode(mode string) error {
	_, err := b.call("scene.mode", map[string]any{"mode": mode})
	return err
}

// RemoveAllObjects deletes every object from the scene.
func (b *Bridge) RemoveAllObjects() error {
	_, err := b.call("scene.clear", nil)
	return err
}

// Objects returns the names of all top-level objects.
func (b *Bridge) Objects() ([]string, error) {
	res, err := b.call("scene.objects", nil)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, v := range res.Get("objects").Array() {
		names = append(names, v.String())
	}
	return names, nil
}

// DeselectAll clears any selection state.
func (b *Bridge) DeselectAll() error {
	_, err := b.call("scene.deselect", nil)
	return err
}

// ImportOBJ loads a Wavefront OBJ into the scene.
func (b *Bridge) ImportOBJ(path string) error {
	_, err := b.call("import.obj", map[string]any{"path": path})
	return err
}

// AddModifier attaches a modifier to the named object.
func (b *Bridge) AddModifier(object, kind string, levels int) error {
	_, err := b.call("modifier.add", map[string]any{
		"object": object,
		"kind":   kind,
		"levels": levels,
	})
	return err
}

// ExportOBJ writes the scene to path.
func (b *Bridge) ExportOBJ(path string, opts hostapi.ExportOptions) error {
	_, err := b.call("export.obj", map[string]any{
		"path":            path,
		"overwrite":       opts.Overwrite,
		"selection_only":  opts.SelectionOnly,
		"animation":       opts.Animation,
		"apply_modifiers": opts.ApplyModifiers,
	})
	return err
}
