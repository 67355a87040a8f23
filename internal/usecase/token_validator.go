package usecase

import "book-catalog/internal/pkg/jwt"

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/token_validator_mock.go -package=mock_usecase

// TokenValidator lets the auth middleware verify bearer tokens without
// depending on the concrete signer.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return service
}
