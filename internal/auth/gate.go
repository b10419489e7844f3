package auth

// Route is a navigation target. Protected routes require a stored token.
type Route struct {
	Name      string
	Protected bool
}

// Gate decides, per navigation request, whether the stored credential permits
// entry. It checks token presence only; validity against the backend is the
// server's problem on the first real request.
type Gate struct {
	tokens TokenProvider
	login  Route
}

// NewGate builds a gate that redirects unauthenticated protected navigation
// to the given login route.
func NewGate(tokens TokenProvider, login Route) *Gate {
	return &Gate{tokens: tokens, login: login}
}

// Authenticated reports whether a non-empty token is currently stored.
func (g *Gate) Authenticated() bool {
	return g.tokens.Token() != ""
}

// Resolve returns the route navigation should actually land on: the login
// route when the target is protected and no token is stored, otherwise the
// requested target unchanged. One-shot check, no polling.
func (g *Gate) Resolve(target Route) Route {
	if target.Protected && !g.Authenticated() {
		return g.login
	}
	return target
}
