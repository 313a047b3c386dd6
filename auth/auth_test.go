package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"chat-relay/errors"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/argon2"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Test de la comparaison négative (mauvais mot de passe)
	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_Uses_Parameters_From_The_Hash(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	// Hash produced under cheaper historical settings than the current
	// constants; login must still verify it
	salt := make([]byte, 16)
	legacy := argon2.IDKey([]byte(password), salt, 1, 32*1024, 1, 32)
	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, 32*1024, 1, 1,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(legacy))

	match, err := ComparePassword(password, encoded)
	req.NoError(err)
	req.True(match)

	_, err = ComparePassword(password, "not-an-encoded-hash")
	req.Error(err)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"test@example.com", "Tester", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"notanemail", "Tester", "ComplexPass123!"}, true},
		{"Missing display name", RegisterRequest{"test@example.com", "", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"test@example.com", "Tester", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"test@example.com", "Tester", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"test@example.com", "Tester", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"test@example.com", "Tester", "nouppercase12345!"}, true},
		{"Password too long (edge case)", RegisterRequest{"test@example.com", "Tester", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", "Alice", []string{"user"}, time.Hour)
	req.NoError(err)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.Equal("Alice", claims.DisplayName)
	req.Equal([]string{"user"}, claims.Roles)
}

func TestValidator_RejectsGarbageAndExpired(t *testing.T) {
	req := require.New(t)
	v := NewValidator()

	_, err := v.Validate("not-a-jwt")
	req.ErrorIs(err, errors.ErrAuth)

	// Expired tokens are rejected unconditionally
	expired, err := GenerateToken("user-42", "Alice", []string{"user"}, -time.Minute)
	req.NoError(err)
	_, err = v.Validate(expired)
	req.ErrorIs(err, errors.ErrAuth)
}

func TestSendValidation(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateSend(SendRequest{ChatType: "private", TargetID: "bob", Content: "hi"}))
	req.NoError(ValidateSend(SendRequest{ChatType: "group", TargetID: "g1", Content: "hi"}))
	req.Error(ValidateSend(SendRequest{ChatType: "broadcast", TargetID: "g1", Content: "hi"}))
	req.Error(ValidateSend(SendRequest{ChatType: "private", TargetID: "", Content: "hi"}))
	req.Error(ValidateSend(SendRequest{ChatType: "private", TargetID: "bob", Content: ""}))
	req.Error(ValidateSend(SendRequest{ChatType: "private", TargetID: "bob", Content: strings.Repeat("x", 4097)}))
}

// BenchmarkHashPassword permet de mesurer l'impact CPU/RAM (Crucial pour K8s)
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
