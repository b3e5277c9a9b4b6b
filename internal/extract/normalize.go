package extract

import "strings"

// Normalize cleans raw extractor output: unify line endings, drop NULs and
// other control noise OCR tends to emit, trim trailing whitespace per line.
// Offsets reported by the detector are relative to this normalized text.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\x00' || (r < 0x20 && r != '\n' && r != '\t' && r != '\f') {
			return -1
		}
		return r
	}, s)
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	return strings.Join(lines, "\n")
}
