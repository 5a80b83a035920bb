package desktop

import "strings"

// StripFieldCodes removes desktop field codes (%u, %f, %F, ...) from a
// command line. A '%' and the character following it are dropped as a pair;
// a lone trailing '%' is dropped by itself. Surrounding text is preserved
// verbatim, so stripping can leave doubled spaces behind. The operation is
// idempotent and never grows the string.
func StripFieldCodes(command string) string {
	if !strings.ContainsRune(command, '%') {
		return command
	}
	var b strings.Builder
	b.Grow(len(command))
	for i := 0; i < len(command); i++ {
		if command[i] == '%' {
			i++ // also consume the field code character, if any
			continue
		}
		b.WriteByte(command[i])
	}
	return b.String()
}
