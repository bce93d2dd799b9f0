package model

import (
	"regexp"
	"strings"
)

// ImageExtensions lists the extensions stripped from display names, in the
// order they are tried.
var ImageExtensions = []string{"png", "gif", "jpg", "jpeg", "webp"}

var (
	timestampPrefix = regexp.MustCompile(`^\d{8}-\d{6}-`)
	versionSuffix   = regexp.MustCompile(`-v\d+$`)
)

// TransparentSuffix is the literal marker removed from display names
const TransparentSuffix = "-transparent"

// DisplayName derives a human readable name from an image filename.
// "20240101-123456-Sunset-transparent-v3.png" becomes "Sunset".
// The transparent marker may sit on either side of the version suffix, so it
// is trimmed once before and once after it.
func DisplayName(filename string) string {
	name := filename
	for _, ext := range ImageExtensions {
		if trimmed, ok := trimSuffixFold(name, "."+ext); ok {
			name = trimmed
			break
		}
	}

	name = timestampPrefix.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, TransparentSuffix)
	name = versionSuffix.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, TransparentSuffix)

	return name
}

// trimSuffixFold removes suffix from s ignoring ASCII case
func trimSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) {
		return s, false
	}
	if strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}
