package site

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/idna"
)

const pagesDomain = "github.io"

// DerivePath returns the base path /<project>/ and the origin https://<organization>.github.io.
// It performs no I/O and always returns the same output for the same input.
func DerivePath(organization, project string) (basePath, siteURL string) {
	return "/" + project + "/", "https://" + strings.ToLower(organization) + "." + pagesDomain
}

// segmentProblem describes why s cannot be used as a single URL path segment, or returns "".
func segmentProblem(s string) string {
	switch {
	case s == "":
		return "must not be empty"
	case s == "." || s == "..":
		return "must not be a relative path element"
	case strings.IndexFunc(s, unicode.IsSpace) >= 0:
		return "must not contain whitespace"
	case strings.ContainsAny(s, `/\?#%`):
		return `must not contain '/', '\', '?', '#' or '%'`
	}
	return ""
}

// hostProblem checks that the organization forms a single valid host label under the pages
// domain.
func hostProblem(organization string) string {
	if strings.Contains(organization, ".") {
		return "must be a single host label without '.' unless an explicit url is set"
	}
	if _, err := idna.Lookup.ToASCII(strings.ToLower(organization) + "." + pagesDomain); err != nil {
		return "is not usable as a host name label: " + err.Error()
	}
	return ""
}

// originProblem checks an explicit site URL: absolute http(s), a host, nothing after it.
func originProblem(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "is not a valid URL"
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return "must use http or https"
	case u.Host == "":
		return "must include a host"
	case u.Path != "" && u.Path != "/":
		return "must not include a path; the base path is derived from the project"
	case u.RawQuery != "" || u.Fragment != "" || u.User != nil:
		return "must not include credentials, query or fragment"
	}
	return ""
}

func trimOrigin(raw string) string { return strings.TrimSuffix(raw, "/") }
