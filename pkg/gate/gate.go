// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gate

import (
	"strings"

	"github.com/canonical/event-crm/internal/roles"
	"github.com/canonical/event-crm/internal/types"
)

type Outcome string

const (
	Allow    Outcome = "ALLOW"
	Redirect Outcome = "REDIRECT"
)

// Decision is the result of evaluating a path. Target is only set for
// redirects.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	Target  string  `json:"target,omitempty"`
}

func allow() Decision {
	return Decision{Outcome: Allow}
}

func redirect(target string) Decision {
	return Decision{Outcome: Redirect, Target: target}
}

// Gate decides whether a request may reach its route. It holds no state
// beyond its configuration and is safe for concurrent use.
type Gate struct {
	config *Config
}

// Decide evaluates the rules in a fixed order, the first match wins.
func (g *Gate) Decide(path string, principal *types.Principal) Decision {
	path = normalize(path)

	if g.IsPublic(path) {
		return allow()
	}

	if principal == nil {
		return redirect(g.config.SignInPath)
	}

	inPortal := g.inPortal(path)

	if principal.Role == roles.ClientExternal {
		if inPortal {
			return allow()
		}
		return redirect(g.config.ClientPortalPath)
	}

	administrative := roles.IsAdministrative(principal.Role)

	if administrative && inPortal {
		return redirect(g.config.DashboardPath)
	}

	if principal.Role == roles.SuperAdmin && path == normalize(g.config.DashboardPath) {
		return redirect(g.config.SuperAdminHome)
	}

	if !administrative {
		return redirect(g.config.SignInPath)
	}

	if g.config.RequireVerifiedEmail && !principal.EmailVerified {
		return redirect(g.config.VerifyRequestPath)
	}

	return allow()
}

// IsPublic reports whether path falls under one of the public prefixes.
func (g *Gate) IsPublic(path string) bool {
	path = normalize(path)

	for _, p := range g.config.PublicPaths {
		if strings.TrimSpace(p) == "" {
			continue
		}

		if matchPrefix(path, p) {
			return true
		}
	}

	return false
}

func (g *Gate) inPortal(path string) bool {
	if matchPrefix(path, g.config.ClientPortalPath) {
		return true
	}

	for _, p := range g.config.ClientPortalPrefixes {
		if matchPrefix(path, p) {
			return true
		}
	}

	return false
}

// IsAPI reports whether path is served as JSON rather than as a page.
func (g *Gate) IsAPI(path string) bool {
	return matchPrefix(normalize(path), g.config.APIPrefix)
}

func (g *Gate) SignInPath() string {
	return g.config.SignInPath
}

func (g *Gate) VerifyRequestPath() string {
	return g.config.VerifyRequestPath
}

// matchPrefix is segment aware: "/auth" matches "/auth" and "/auth/x" but
// not "/authors".
func matchPrefix(path, prefix string) bool {
	prefix = normalize(prefix)

	if prefix == "/" {
		return true
	}

	if path == prefix {
		return true
	}

	return strings.HasPrefix(path, prefix+"/")
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}

	return path
}

func NewGate(config *Config) *Gate {
	g := new(Gate)
	g.config = config

	return g
}
