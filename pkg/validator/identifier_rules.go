package validator

import (
	"regexp"
	"strings"
)

var (
	slugRegex   = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexRegex    = regexp.MustCompile(`^[0-9A-Fa-f]+$`)
	base64Regex = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)
	semverRegex = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
	labelRegex  = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)
	tldRegex    = regexp.MustCompile(`^[A-Za-z]{2,}$`)
)

// Identifier presets for use with Matching.
var (
	Slug   Matcher = slugRegex
	Hex    Matcher = hexRegex
	Base64 Matcher = MatcherFunc(func(s string) bool { return s != "" && base64Regex.MatchString(s) })
	SemVer Matcher = semverRegex
	Domain Matcher = MatcherFunc(isDomain)
)

// isDomain accepts host names of at least two labels, each 1-63 characters without
// leading or trailing hyphens, ending in an alphabetic TLD.
func isDomain(value string) bool {
	if value == "" || len(value) > 253 {
		return false
	}
	labels := strings.Split(value, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if len(label) > 63 || !labelRegex.MatchString(label) {
			return false
		}
	}
	return tldRegex.MatchString(labels[len(labels)-1])
}
