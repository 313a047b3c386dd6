package auth

import (
	"fmt"
	"unicode"

	"chat-relay/domain"
	"chat-relay/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validator turns an opaque bearer credential into a verified identity.
// It has no side effects and no dependency on user-record storage,
// display data travels inside the claims.
type Validator struct{}

func NewValidator() Validator { return Validator{} }

func (v Validator) Validate(credential string) (domain.Identity, error) {
	claims, err := ValidateToken(credential)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", errors.ErrAuth, err)
	}
	return domain.Identity{
		UserID:      domain.UserID(claims.UserID),
		DisplayName: claims.DisplayName,
	}, nil
}

type RegisterRequest struct {
	Email       string `validate:"required,email"`
	DisplayName string `validate:"required,min=2,max=64"`
	Password    string `validate:"required,min=12,max=72"`
}

func ValidateRegister(req RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}

	if !isPasswordComplex(req.Password) {
		return errors.ErrInvalidPassword
	}
	return nil
}

// SendRequest mirrors the sendMessage surface, validated before any
// routing work happens.
type SendRequest struct {
	ChatType string `validate:"required,oneof=private group"`
	TargetID string `validate:"required"`
	Content  string `validate:"required,max=4096"`
}

func ValidateSend(req SendRequest) error {
	return validate.Struct(req)
}

func isPasswordComplex(s string) bool {
	var (
		hasUpper   = false
		hasLower   = false
		hasNumber  = false
		hasSpecial = false
	)
	for _, char := range s {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}
