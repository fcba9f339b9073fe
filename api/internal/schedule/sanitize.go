package schedule

import (
	"strings"
	"unicode"
)

// SafeFolderName turns an employee name into a filesystem-safe directory
// key: lower-cased, alphanumerics kept, everything else replaced with "_".
func SafeFolderName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, strings.ToLower(name))
}
