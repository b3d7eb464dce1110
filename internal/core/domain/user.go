package domain

// RoleSpeaker is the only role the board assigns. Every visitor who posts is
// registered as a speaker; there is no moderation hierarchy.
const RoleSpeaker = "speaker"

// User is a pseudonymous visitor. A row is created the first time a username
// posts and is never updated or deleted afterwards. HashedSeed is the full
// sha256 digest of the seed the visitor typed; it is stored for continuity,
// not verified as a credential.
type User struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	HashedSeed string `json:"hashed_seed"`
}

func NewUser(username string, identity Identity) *User {
	return &User{
		Username:   username,
		Role:       RoleSpeaker,
		HashedSeed: identity.HashedSeed,
	}
}
