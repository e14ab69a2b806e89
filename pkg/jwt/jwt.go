package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/medilab/lab-api/config"
)

// Claims carries the session payload: who is logged in and with which
// role. TokenID identifies the session in the revocation store.
type Claims struct {
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	TokenID string `json:"token_id"`
	jwt.RegisteredClaims
}

type SessionService struct {
	config config.SessionConfig
}

func NewSessionService(cfg config.SessionConfig) *SessionService {
	return &SessionService{config: cfg}
}

// GenerateSessionToken signs a session token for the given user.
// Returns the signed token and its token ID.
func (s *SessionService) GenerateSessionToken(userID int, name, role string) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:  userID,
		Name:    name,
		Role:    role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *SessionService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *SessionService) GetExpiry() time.Duration {
	return s.config.Expiry
}

func (s *SessionService) CookieName() string {
	return s.config.CookieName
}
