package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateRedirectsProtectedWhenUnauthenticated(t *testing.T) {
	login := Route{Name: "login"}
	gate := NewGate(StaticToken(""), login)

	for _, target := range []string{"dashboard", "logs", "pinned-areas", "user-management"} {
		resolved := gate.Resolve(Route{Name: target, Protected: true})
		assert.Equal(t, login, resolved, "protected route %q must land on login", target)
	}
	assert.False(t, gate.Authenticated())
}

func TestGatePreservesTargetWhenAuthenticated(t *testing.T) {
	gate := NewGate(StaticToken("jwt-abc"), Route{Name: "login"})

	target := Route{Name: "dashboard", Protected: true}
	assert.Equal(t, target, gate.Resolve(target))
	assert.True(t, gate.Authenticated())
}

func TestGatePassesUnprotectedRoutesThrough(t *testing.T) {
	gate := NewGate(StaticToken(""), Route{Name: "login"})

	target := Route{Name: "login"}
	assert.Equal(t, target, gate.Resolve(target))
}
