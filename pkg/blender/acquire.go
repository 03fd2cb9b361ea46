package blender

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/alinsavix/blender-example-cli-cmd/pkg/hostapi"
)

const defaultDialTimeout = 5 * time.Second

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialTimeout(network, address string, timeout time.Duration) (net.Conn, error)
}

// RealDialer uses the real net package.
type RealDialer struct{}

// DialTimeout dials the network address with a timeout.
func (d *RealDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(network, address, timeout)
}

// Acquirer obtains a live Bridge, or classifies why it cannot. Acquiring
// is side-effect idempotent: a failed attempt closes everything it opened.
type Acquirer struct {
	Addr       string          // bridge address; empty when not under the host
	Token      string          // session token the driver must recognize
	MinVersion *semver.Version // nil disables the version gate
	Dialer     Dialer          // injected for testing
	Timeout    time.Duration   // dial timeout (default 5s)
}

// AcquirerFromEnv builds an Acquirer from the driver-provided environment.
func AcquirerFromEnv(minVersion *semver.Version) *Acquirer {
	return &Acquirer{
		Addr:       os.Getenv(EnvBridgeAddr),
		Token:      os.Getenv(EnvToken),
		MinVersion: minVersion,
		Dialer:     &RealDialer{},
	}
}

// Acquire dials the bridge and runs the hello exchange. It returns
// hostapi.ErrNoAPI when no bridge is reachable at all, hostapi.ErrNoContext
// when a bridge answers but has no live bpy context behind it (or rejects
// our token), and a plain error when a live host fails the handshake, such
// as a version below the supported minimum.
func (a *Acquirer) Acquire() (hostapi.API, error) {
	if a.Addr == "" {
		return nil, fmt.Errorf("%s not set: %w", EnvBridgeAddr, hostapi.ErrNoAPI)
	}

	timeout := a.Timeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}

	conn, err := a.Dialer.DialTimeout("tcp", a.Addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %v: %w", a.Addr, err, hostapi.ErrNoAPI)
	}

	b := &Bridge{conn: conn, r: bufio.NewReader(conn)}
	res, err := b.call("hello", map[string]any{"token": a.Token})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("hello failed (%v): %w", err, hostapi.ErrNoContext)
	}
	if !res.Get("context").Bool() {
		_ = conn.Close()
		return nil, fmt.Errorf("bridge at %s has no live context: %w", a.Addr, hostapi.ErrNoContext)
	}

	b.version = res.Get("version").String()
	for _, v := range res.Get("argv").Array() {
		b.argv = append(b.argv, v.String())
	}

	if a.MinVersion != nil {
		if err := checkVersion(b.version, a.MinVersion); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return b, nil
}

// checkVersion gates on the host's reported version. Blender reports
// strings like "4.2.1" or "2.83.20 (sub 1)"; only the leading version part
// is compared.
func checkVersion(reported string, minimum *semver.Version) error {
	field := strings.Fields(strings.TrimSpace(reported))
	if len(field) == 0 {
		return fmt.Errorf("host reported empty version")
	}
	v, err := semver.NewVersion(field[0])
	if err != nil {
		return fmt.Errorf("unparseable host version %q: %w", reported, err)
	}
	if v.LessThan(minimum) {
		return fmt.Errorf("host version %s below minimum %s", v, minimum)
	}
	return nil
}
