package utils

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

// AdminLocalsKey is the fiber.Locals key under which the authenticated admin is stored.
const AdminLocalsKey = "admin"

// AdminClaims is the signed payload of the admin session cookie.
// SessionID points at the server-side session record, which is the source of truth.
type AdminClaims struct {
	SessionID string `json:"sid"`
	AdminID   uint   `json:"admin_id"`
	Username  string `json:"username"`
	jwt.RegisteredClaims
}

// AdminContext is what the admin gate hands to downstream handlers.
type AdminContext struct {
	SessionID string
	AdminID   uint
	Username  string
}

// GenerateSessionToken signs an HS256 token for the given session that expires at expiresAt.
func GenerateSessionToken(sessionID string, adminID uint, username string, expiresAt time.Time, secret string) (string, error) {
	claims := AdminClaims{
		SessionID: sessionID,
		AdminID:   adminID,
		Username:  username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   username,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString, secret string) (*AdminClaims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func GetAdminFromContext(c *fiber.Ctx) (*AdminContext, error) {
	admin, ok := c.Locals(AdminLocalsKey).(*AdminContext)
	if !ok || admin == nil {
		return nil, errors.New("admin not found in context")
	}
	return admin, nil
}
