package handler

import (
	"regexp"
	"strings"
)

// OriginPolicy decides which browser origins may call the API.
// Entries without "*" match by exact string equality. In an entry such as
// "https://*.up.railway.app" the "*" stands for one or more DNS labels.
type OriginPolicy struct {
	exact    map[string]struct{}
	patterns []*regexp.Regexp
}

const labelsPattern = `[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*`

// NewOriginPolicy builds a policy from exact origins and wildcard entries.
func NewOriginPolicy(entries []string) *OriginPolicy {
	p := &OriginPolicy{exact: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		e = strings.TrimRight(strings.TrimSpace(e), "/")
		if e == "" {
			continue
		}
		if !strings.Contains(e, "*") {
			p.exact[e] = struct{}{}
			continue
		}
		expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(e), `\*`, labelsPattern) + "$"
		p.patterns = append(p.patterns, regexp.MustCompile(expr))
	}
	return p
}

// Allowed reports whether origin may receive cross-origin responses.
// Requests without an Origin header (curl, server-to-server) are allowed.
func (p *OriginPolicy) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	if _, ok := p.exact[origin]; ok {
		return true
	}
	for _, re := range p.patterns {
		if re.MatchString(origin) {
			return true
		}
	}
	return false
}
