package blendercli_test

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/argsplit"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/blender"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/pipeline"
	"github.com/alinsavix/blender-example-cli-cmd/pkg/relaunch"
)

// Integration tests wire the real components together against a simulated
// driver; unit tests in each package cover the edge cases. Only Blender
// itself is faked.

// simDriver emulates the Python driver with a tiny in-memory scene.
type simDriver struct {
	ln    net.Listener
	token string
	argv  []string

	mu      sync.Mutex
	objects []string
	mods    map[string]int
	ops     []string
}

func startSimDriver(t *testing.T, token string, argv []string) *simDriver {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	d := &simDriver{ln: ln, token: token, argv: argv, mods: map[string]int{}}
	t.Cleanup(func() { _ = ln.Close() })
	go d.serve()
	return d
}

func (d *simDriver) serve() {
	conn, err := d.ln.Accept()
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		req := gjson.Parse(scanner.Text())
		reply := d.handle(req)
		data, _ := json.Marshal(reply)
		if _, err := conn.Write(append(data, '\n')); err != nil {
			return
		}
	}
}

func (d *simDriver) handle(req gjson.Result) map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()

	op := req.Get("op").String()
	d.ops = append(d.ops, op)
	ok := func(result any) map[string]any {
		return map[string]any{"id": req.Get("id").Int(), "ok": true, "result": result}
	}

	switch op {
	case "hello":
		if req.Get("params.token").String() != d.token {
			return map[string]any{"id": req.Get("id").Int(), "ok": false, "error": "token mismatch"}
		}
		return ok(map[string]any{"version": "4.2.1", "context": true, "argv": d.argv})
	case "scene.active":
		return ok(map[string]any{"active": len(d.objects) > 0})
	case "scene.mode", "scene.deselect":
		return ok(map[string]any{})
	case "scene.clear":
		d.objects = nil
		d.mods = map[string]int{}
		return ok(map[string]any{})
	case "scene.objects":
		return ok(map[string]any{"objects": d.objects})
	case "import.obj":
		base := filepath.Base(req.Get("params.path").String())
		d.objects = append(d.objects, base+":mesh")
		return ok(map[string]any{})
	case "modifier.add":
		d.mods[req.Get("params.object").String()] = int(req.Get("params.levels").Int())
		return ok(map[string]any{})
	case "export.obj":
		return ok(map[string]any{})
	}
	return map[string]any{"id": req.Get("id").Int(), "ok": false, "error": "unknown op: " + op}
}

func (d *simDriver) seenOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.ops...)
}

func TestIntegration_EmbeddedRun(t *testing.T) {
	input := filepath.Join(t.TempDir(), "rose.obj")
	if err := os.WriteFile(input, []byte("v 0 0 0\n"), 0o600); err != nil {
		t.Fatalf("write input: %v", err)
	}

	hostArgv := []string{
		"blender", "--background", "--factory-startup",
		"--python", "/tmp/driver.py", "--",
		input, "rose-subsurf.obj", "--levels", "3",
	}
	d := startSimDriver(t, "session-token", hostArgv)

	acq := &blender.Acquirer{
		Addr:   d.ln.Addr().String(),
		Token:  "session-token",
		Dialer: &blender.RealDialer{},
	}

	avail, api, err := hostapi.Probe(acq)
	if avail != hostapi.Available || err != nil {
		t.Fatalf("Probe() = %v, %v", avail, err)
	}
	defer func() { _ = api.Close() }()

	ownArgs, err := argsplit.Split(api.HostArgv())
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []string{input, "rose-subsurf.obj", "--levels", "3"}
	if fmt.Sprint(ownArgs) != fmt.Sprint(want) {
		t.Fatalf("Split() = %v, want %v", ownArgs, want)
	}

	// ownArgs would normally go through the CLI; drive the runner with the
	// values it would parse out of them.
	r := &pipeline.Runner{Scene: api.Scene()}
	if err := r.Run(pipeline.Options{Input: input, Output: "rose-subsurf.obj", Levels: 3}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := d.mods["rose.obj:mesh"]; got != 3 {
		t.Errorf("modifier levels = %d, want 3", got)
	}

	wantOps := []string{"hello", "scene.active", "scene.clear", "import.obj", "scene.deselect", "scene.objects", "modifier.add", "export.obj"}
	if fmt.Sprint(d.seenOps()) != fmt.Sprint(wantOps) {
		t.Errorf("ops = %v, want %v", d.seenOps(), wantOps)
	}
}

func TestIntegration_TwoRunsAreIndependent(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.obj")
	second := filepath.Join(dir, "second.obj")
	for _, p := range []string{first, second} {
		if err := os.WriteFile(p, []byte("v 0 0 0\n"), 0o600); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}

	d := startSimDriver(t, "", nil)
	acq := &blender.Acquirer{Addr: d.ln.Addr().String(), Dialer: &blender.RealDialer{}}
	_, api, err := hostapi.Probe(acq)
	if err != nil {
		t.Fatalf("Probe() error = %v", err)
	}
	defer func() { _ = api.Close() }()

	r := &pipeline.Runner{Scene: api.Scene()}
	if err := r.Run(pipeline.Options{Input: first, Output: "a.obj", Levels: 1}); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	if err := r.Run(pipeline.Options{Input: second, Output: "b.obj", Levels: 4}); err != nil {
		t.Fatalf("second Run() error = %v", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.objects) != 1 || d.objects[0] != "second.obj:mesh" {
		t.Errorf("scene after second run = %v, want only the second import", d.objects)
	}
	if _, leftover := d.mods["first.obj:mesh"]; leftover {
		t.Error("modifier from the first run survived the reset")
	}
	if d.mods["second.obj:mesh"] != 4 {
		t.Errorf("second run levels = %d, want 4", d.mods["second.obj:mesh"])
	}
}

// inertExecutor implements relaunch.Executor without replacing anything.
type inertExecutor struct {
	binary string
	args   []string
}

func (e *inertExecutor) Exec(binary string, args []string, env []string) error {
	e.binary = binary
	e.args = args
	return nil
}

func TestIntegration_RelaunchArgvRoundTrips(t *testing.T) {
	// The argument vector built for the host must split back into exactly
	// the original arguments.
	orig := []string{"rose.obj", "rose-subsurf.obj", "--levels", "3", "-vv"}

	ex := &inertExecutor{}
	r := &relaunch.Relauncher{
		HostBinary: "blender",
		Executor:   ex,
		SelfPath:   func() (string, error) { return "/usr/local/bin/blendercli", nil },
	}
	if err := r.Relaunch("/tmp/driver.py", orig, nil); err != nil {
		t.Fatalf("Relaunch() error = %v", err)
	}

	hostArgv := append([]string{ex.binary}, ex.args...)
	got, err := argsplit.Split(hostArgv)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	if fmt.Sprint(got) != fmt.Sprint(orig) {
		t.Errorf("round-tripped args = %v, want %v", got, orig)
	}
}
