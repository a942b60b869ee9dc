package models

// Operator is the till account allowed to sign in. There is exactly one,
// configured at startup; nothing is stored outside the process.
type Operator struct {
	Login        string
	PasswordHash string
	Role         string
}
