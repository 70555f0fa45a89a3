// Package urlutil converts URLs found in scraped markup into absolute form.
package urlutil

import (
	"net/url"
	"strings"
)

// Resolve makes ref absolute against base. Already-absolute refs pass
// through unchanged; scheme-relative refs take the base's scheme;
// root-relative refs take the base's scheme and host; everything else is
// resolved against the base's directory with dot segments collapsed.
// A malformed base returns ref unchanged.
func Resolve(base, ref string) string {
	if ref == "" {
		return base
	}

	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if u.IsAbs() {
		return ref
	}

	b, err := url.Parse(base)
	if err != nil || b.Scheme == "" {
		return ref
	}

	if strings.HasPrefix(ref, "//") {
		return b.Scheme + ":" + ref
	}

	return b.ResolveReference(u).String()
}

// IsAbsolute reports whether s carries a scheme.
func IsAbsolute(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}
