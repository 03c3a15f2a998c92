package ratelimit

import (
	"net/http"
	"strings"
)

// exempt requests are health checks and Prometheus scrapes
var exempt = map[string]struct{}{
	http.MethodGet + " /health":  {},
	http.MethodGet + " /metrics": {},
}

// unlimited is returned for exempt requests. Its zero Limit disables limiting.
var unlimited = EndpointConfig{}

// MatchEndpoint returns the config governing a request, or nil when the
// request falls into the default bucket. A config path ending in "/" covers
// every path below it. When several configs apply the longest path wins, so
// an exact path beats a prefix.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	method = strings.ToUpper(method)
	if _, ok := exempt[method+" "+path]; ok {
		u := unlimited
		return &u
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if !strings.EqualFold(c.Method, method) || !covers(c.Path, path) {
			continue
		}
		if best == nil || len(c.Path) > len(best.Path) {
			best = c
		}
	}
	return best
}

func covers(pattern, path string) bool {
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern)
	}
	return pattern == path
}
