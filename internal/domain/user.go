package domain

// User is the domain entity for an account. The normalized username is the
// primary key; there is no surrogate id and nothing mutates after creation.
type User struct {
	Username     string
	PasswordHash string
}
