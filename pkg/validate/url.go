package validate

import (
	"net/url"
	"strings"
)

const maxURLLength = 2048

// IsURL reports whether s is an absolute http(s) URL with a host that fits the url columns.
func IsURL(s string) bool {
	if s == "" || len(s) > maxURLLength || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
