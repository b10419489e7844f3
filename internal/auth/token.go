package auth

// TokenProvider is the narrow credential capability injected into the gate
// and the transport clients. The token itself is owned by an external
// collaborator (the viper config in this CLI); this layer only reads it.
type TokenProvider interface {
	Token() string
	Clear()
}

// StaticToken is a fixed-value TokenProvider, mainly for tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }
func (s StaticToken) Clear()        {}
