package domain

// Session pairs an issued bearer token with its server-side record. A row's
// existence is necessary but not sufficient for authentication: the token
// must also verify cryptographically and be unexpired. Deleting the row is
// the only revocation mechanism; expiry is enforced lazily at check time.
type Session struct {
	ID    int64
	Token string
}
