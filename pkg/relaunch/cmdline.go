package relaunch

import "strings"

// BuildCmdLine joins argv into a single Windows-style command line,
// quoting any token that contains spaces. Kept platform-neutral so the
// quoting rules are testable everywhere.
func BuildCmdLine(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// quoteArg wraps a token in double quotes when it contains whitespace or
// is empty, escaping embedded quotes and the backslash runs that precede
// them per the MSVCRT parsing rules.
func quoteArg(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\"") {
		return s
	}

	var b strings.Builder
	b.WriteByte('"')
	backslashes := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			backslashes++
		case '"':
			// Backslashes before a quote must be doubled, plus one to
			// escape the quote itself.
			b.WriteString(strings.Repeat(`\`, backslashes*2+1))
			b.WriteByte('"')
			backslashes = 0
		default:
			if backslashes > 0 {
				b.WriteString(strings.Repeat(`\`, backslashes))
				backslashes = 0
			}
			b.WriteByte(s[i])
		}
	}
	// Trailing backslashes must be doubled so the closing quote survives.
	b.WriteString(strings.Repeat(`\`, backslashes*2))
	b.WriteByte('"')
	return b.String()
}
