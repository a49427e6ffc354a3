package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token was genuine but is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers everything else: bad signature, wrong algorithm,
	// malformed structure, missing claims.
	ErrTokenInvalid = errors.New("invalid token")
)

// Tokens stay valid for 30 days. There is no revocation: a token issued
// before an account change keeps working until it expires naturally.
const tokenTTL = 30 * 24 * time.Hour

// Claims is the identity a verified token carries.
type Claims struct {
	UserID int64
	Email  string
}

// TokenService signs and verifies bearer tokens. The signing key comes from
// the config object built at startup; nothing in here reads the environment.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue creates a new JWT for the given user.
func (s *TokenService) Issue(userID int64, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the identity inside.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than our HMAC family.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	// JSON numbers arrive as float64; convert back to the user ID.
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &Claims{UserID: int64(userIDFloat), Email: email}, nil
}
