package domain

// Identity is the pseudonymous identity derived from a visitor's seed.
// ShortID is a display handle only: at 7 hex characters (28 bits) collisions
// are plausible at scale, which is accepted for brevity. Nothing in the board
// treats it as an access-control token.
type Identity struct {
	HashedSeed string
	ShortID    string
}
