package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionHash fingerprints a password hash. The fingerprint rides inside every
// token as the "sh" claim, so changing the password invalidates all previously
// issued tokens while the one minted during the change keeps working.
func SessionHash(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}

// IssueToken creates a signed 7-day HS256 token for the given user.
func IssueToken(userID, passwordHash string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"sh":      SessionHash(passwordHash),
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
