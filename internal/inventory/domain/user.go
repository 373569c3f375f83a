package domain

type User struct {
	ID       int64
	Username string
	Password string // argon2id PHC string; plain text on rows from the legacy app
}
