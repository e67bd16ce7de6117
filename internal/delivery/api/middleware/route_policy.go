package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// Decision is the outcome of classifying a request against a RoutePolicy.
type Decision int

const (
	DecisionProtected Decision = iota
	DecisionPreflight
	DecisionPublic
	DecisionStaticAsset
)

func (d Decision) String() string {
	switch d {
	case DecisionPreflight:
		return "preflight"
	case DecisionPublic:
		return "public"
	case DecisionStaticAsset:
		return "static"
	default:
		return "protected"
	}
}

// staticAssetPattern matches paths that end in a file extension.
var staticAssetPattern = regexp.MustCompile(`.*\.[a-zA-Z0-9]+$`)

// RoutePolicy declares which requests may pass without a bearer token. It depends only on
// the method and path.
type RoutePolicy struct {
	// PublicPaths are matched exactly.
	PublicPaths []string
	// ProtectedPatterns always require a token. A trailing "/*" matches every sub-path.
	ProtectedPatterns []string
	// StaticAsset matches paths served from the frontend directory.
	StaticAsset *regexp.Regexp
}

// DefaultRoutePolicy is the policy of the HTTP API.
func DefaultRoutePolicy() RoutePolicy {
	return RoutePolicy{
		PublicPaths:       []string{"/", "/health", "/login", "/register"},
		ProtectedPatterns: []string{"/api/ai/*", "/ai/*", "/me", "/me/*"},
		StaticAsset:       staticAssetPattern,
	}
}

// Classify evaluates, in order: preflight, explicit protected pattern, public path,
// static asset. Anything else is protected.
func (p RoutePolicy) Classify(method, path string) Decision {
	if method == http.MethodOptions {
		return DecisionPreflight
	}

	for _, pattern := range p.ProtectedPatterns {
		if matchPattern(pattern, path) {
			return DecisionProtected
		}
	}

	for _, public := range p.PublicPaths {
		if path == public {
			return DecisionPublic
		}
	}

	if p.StaticAsset != nil && p.StaticAsset.MatchString(path) {
		return DecisionStaticAsset
	}

	return DecisionProtected
}

func matchPattern(pattern, path string) bool {
	prefix, wildcard := strings.CutSuffix(pattern, "*")
	if !wildcard {
		return path == pattern
	}

	return strings.HasPrefix(path, prefix)
}
