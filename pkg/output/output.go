// Package output prints user-facing status and error lines.
package output

import (
	"fmt"

	"github.com/jwalton/go-supportscolor"
)

var (
	red   = "\033[31m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		red, reset = "", ""
	}
}

// Notef prints a plain status line, used for the diagnostics written
// before a relaunch or exit.
func Notef(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Errorf prints an ERROR line.
func Errorf(format string, args ...interface{}) {
	fmt.Printf("%sERROR:%s %s\n", red, reset, fmt.Sprintf(format, args...))
}
