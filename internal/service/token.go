package service

// TokenService verifies operator tokens for privileged routes
type TokenService interface {
	CreateToken(subject string) (string, error)
	VerifyToken(tokenString string) (string, error)
}
