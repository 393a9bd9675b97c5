package user

// User is an account record. Password holds the bcrypt hash, never the
// cleartext value; the hash is included in API payloads to mirror the
// original contract.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}
