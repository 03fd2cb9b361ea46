// Package argsplit recovers the program's own arguments from the host's
// combined argument vector.
//
// When the program runs embedded in Blender, the argument vector it sees is
// Blender's full command line: host flags, the driver script path, a "--"
// separator, and finally the arguments that belong to this program. Split
// returns the part after the separator.
package argsplit

import "errors"

// Separator divides host-consumed arguments from program-consumed ones.
const Separator = "--"

// ErrNoSeparator means the host argument vector had no "--" marker. The
// relaunch step always inserts one, so a missing separator indicates the
// program was started under the host by hand with the wrong arguments.
// Callers treat it as fatal.
var ErrNoSeparator = errors.New(`separator "--" not found in host argument vector`)

// Split returns the subsequence after the first Separator in argv,
// unchanged in order and content.
func Split(argv []string) ([]string, error) {
	for i, a := range argv {
		if a == Separator {
			return argv[i+1:], nil
		}
	}
	return nil, ErrNoSeparator
}
