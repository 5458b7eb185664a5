package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Password hashing parameters. The stored format is the passlib
// pbkdf2_sha256 modular-crypt string, so hashes stay interchangeable with
// the previous deployment's user table.
const (
	pbkdf2Rounds  = 29000
	pbkdf2SaltLen = 16
	pbkdf2KeyLen  = 32
)

var errMalformedHash = errors.New("malformed password hash")

// HashPassword derives a PBKDF2-HMAC-SHA256 hash of the password with a
// random salt. The result looks like:
//
//	$pbkdf2-sha256$29000$<salt>$<hash>
func HashPassword(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Rounds, pbkdf2KeyLen, sha256.New)
	return fmt.Sprintf("$pbkdf2-sha256$%d$%s$%s",
		pbkdf2Rounds, ab64Encode(salt), ab64Encode(key)), nil
}

// CheckPassword verifies a plaintext password against a stored hash. It
// returns false for any mismatch, including malformed stored hashes.
func CheckPassword(hashedPassword, password string) bool {
	rounds, salt, key, err := parseHash(hashedPassword)
	if err != nil {
		return false
	}

	derived := pbkdf2.Key([]byte(password), salt, rounds, len(key), sha256.New)
	return subtle.ConstantTimeCompare(derived, key) == 1
}

func parseHash(hash string) (rounds int, salt, key []byte, err error) {
	parts := strings.Split(hash, "$")
	// Leading '$' yields an empty first element
	if len(parts) != 5 || parts[0] != "" || parts[1] != "pbkdf2-sha256" {
		return 0, nil, nil, errMalformedHash
	}

	rounds, err = strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 {
		return 0, nil, nil, errMalformedHash
	}

	salt, err = ab64Decode(parts[3])
	if err != nil {
		return 0, nil, nil, errMalformedHash
	}
	key, err = ab64Decode(parts[4])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, errMalformedHash
	}

	return rounds, salt, key, nil
}

// passlib's "adapted base64": standard alphabet with '.' instead of '+',
// no padding.
func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
