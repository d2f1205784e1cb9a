package urn

import (
	"net/url"
	"strings"
)

// ResolverBaseURL is the public resolver for national bibliography URNs.
const ResolverBaseURL = "https://nbn-resolving.org/"

// Validate reports whether pubID is syntactically a URN: it must start with
// "urn:" and have a segment after the first colon. Registry resolvability is
// not checked.
func Validate(pubID string) bool {
	parts := strings.SplitN(pubID, ":", 2)
	return len(parts) == 2 && strings.HasPrefix(pubID, "urn:")
}

// ResolvingURL returns the resolver link for pubID. The identifier is
// query-escaped and not validated.
func ResolvingURL(pubID string) string {
	return ResolverBaseURL + url.QueryEscape(pubID)
}

// VerifySuffix checks a custom suffix submitted through the editor form.
// No rule is enforced yet: uniqueness checking across objects is an open
// product decision, so every value is accepted.
func VerifySuffix(value string) error {
	return nil
}
