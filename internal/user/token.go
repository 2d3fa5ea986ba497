package user

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// SessionTTL is the validity window of a session credential.
const SessionTTL = 7 * 24 * time.Hour

type claims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 session credentials.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
}

func NewTokens(secret string, ttl time.Duration, log *zap.Logger) *Tokens {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, log: log.Named("tokens")}
}

func (t *Tokens) TTL() time.Duration { return t.ttl }

func (t *Tokens) Issue(userID string, role Role) (string, error) {
	now := time.Now()
	c := claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify returns nil for any token that is malformed, expired, tampered
// with or carries an unknown role. It never fails loudly.
func (t *Tokens) Verify(token string) *Principal {
	if token == "" {
		return nil
	}
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		t.log.Debug("session verification failed", zap.Error(err))
		return nil
	}
	if c.UserID == "" || !c.Role.Valid() {
		t.log.Debug("session carries invalid claims", zap.String("role", string(c.Role)))
		return nil
	}
	return &Principal{UserID: c.UserID, Role: c.Role}
}
