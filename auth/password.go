package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost parameters for the registration path. They are baked in
// rather than read from Config: every stored hash embeds its own
// parameters, so raising a cost here only affects accounts registered
// afterwards and never invalidates existing credentials. Values follow
// the OWASP recommendation for argon2id.
const (
	HashMemoryKiB  uint32 = 64 * 1024
	HashIterations uint32 = 3
	HashThreads    uint8  = 2

	saltLength = 16
	keyLength  = 32
)

// HashPassword derives an argon2id hash for a new account and encodes it
// in the standard `$argon2id$...` form that AuthService stores on the
// user record.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, HashIterations, HashMemoryKiB, HashThreads, keyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, HashMemoryKiB, HashIterations, HashThreads, b64Salt, b64Hash), nil
}

// ComparePassword checks a login attempt against a stored hash. The cost
// parameters come from the hash itself, not from the current constants,
// so accounts registered under older settings keep verifying.
func ComparePassword(password, encodedHash string) (bool, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("malformed password hash")
	}

	var version int
	var memory, iterations, parallelism int
	fmt.Sscanf(parts[2], "v=%d", &version)
	fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism)

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}

	storedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding hash: %w", err)
	}

	candidate := argon2.IDKey([]byte(password), salt,
		uint32(iterations), uint32(memory), uint8(parallelism), uint32(len(storedHash)))

	// Constant time, une comparaison directe fuirait le préfixe commun
	return subtle.ConstantTimeCompare(storedHash, candidate) == 1, nil
}
