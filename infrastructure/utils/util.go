package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// TokenAccountName extracts a display name from a Microsoft access token
// without verifying the signature. Graph tokens are JWTs carrying
// preferred_username/name claims; verification is the resource server's
// job, we only surface the identity to the user.
func TokenAccountName(accessToken string) string {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(accessToken, claims); err != nil {
		return ""
	}
	for _, key := range []string{"preferred_username", "upn", "name"} {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
