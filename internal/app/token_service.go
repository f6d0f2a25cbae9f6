package app

import (
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

// TableTokenService mints short-lived HS256 tokens that let a client rejoin
// its seat at a running table or spectate one.
type TableTokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

const (
	TableTokenActionRejoin   = "rejoin"
	TableTokenActionSpectate = "spectate"

	defaultTableTokenTTL = time.Hour
)

func NewTableTokenService(secret, issuer string) *TableTokenService {
	return &TableTokenService{
		secret: secret,
		issuer: issuer,
		ttl:    defaultTableTokenTTL,
	}
}

// GenerateToken signs a token for the given user and action. Rejoin tokens
// are bound to a seat; spectate tokens carry seat 0.
func (s *TableTokenService) GenerateToken(user, action, matchID string, seat int) (string, error) {
	if s == nil {
		return "", fmt.Errorf("table token service is nil")
	}
	if user == "" {
		return "", fmt.Errorf("user is required")
	}
	if matchID == "" {
		return "", fmt.Errorf("match id is required")
	}
	if s.secret == "" || s.issuer == "" {
		return "", fmt.Errorf("table token config is incomplete")
	}

	switch action {
	case TableTokenActionRejoin:
		if seat < 1 || seat > Seats {
			return "", fmt.Errorf("rejoin token needs a seat in 1..%d, got %d", Seats, seat)
		}
	case TableTokenActionSpectate:
		seat = 0
	default:
		return "", fmt.Errorf("unsupported table token action: %s", action)
	}

	claims := jwt.MapClaims{
		"iss":  s.issuer,
		"sub":  user,
		"exp":  time.Now().Add(s.ttl).Unix(),
		"act":  action,
		"mid":  matchID,
		"seat": seat,
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}
