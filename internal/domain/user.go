package domain

// User is the domain model for registered accounts. PasswordHash only ever
// holds the bcrypt digest, never the submitted plaintext.
type User struct {
	ID           int64
	DisplayName  string
	Email        string
	PasswordHash string
}
