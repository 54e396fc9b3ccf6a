package models

// User is an account owning journal entries.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose the hash
}
