package auth

// RoleAdmin is the only role a token is ever issued for.
const RoleAdmin = "ADMIN"

// Admin is a configured operator allowed to use the admin forms.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}

// Claims are the identity fields carried by a token.
type Claims struct {
	Subject string
	Email   string
	Role    string
}
