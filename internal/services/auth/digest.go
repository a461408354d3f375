package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// DefaultSalt is the fixed secret suffix mixed into every credential
// digest. Login matches the stored digest by equality in the remote
// query, so the digest must be deterministic; the salt only ensures the
// stored value is not a bare hash of the password.
const DefaultSalt = "lombaku_salt_2025"

// HashPassword returns the hex-encoded SHA-256 digest of password+salt.
// It is one-way: there is no decryption path.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
