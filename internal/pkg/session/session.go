package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session expired")
)

// Identity is the typed replacement for an ambient session dictionary: who the
// visitor is and how far through the booking steps they have come.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Room  string
	Month string
	Day   int
}

func (i Identity) IsIdentified() bool {
	return i.Name != "" && i.Room != ""
}

// HasDate is only true once identity is also present; a date without a visitor is ignored.
func (i Identity) HasDate() bool {
	return i.IsIdentified() && i.Month != "" && i.Day > 0
}

// WithoutDate drops the in-progress selection.
func (i Identity) WithoutDate() Identity {
	i.Month = ""
	i.Day = 0
	return i
}

type Claims struct {
	Name  string `json:"name"`
	Room  string `json:"room"`
	Month string `json:"month,omitempty"`
	Day   int    `json:"day,omitempty"`
	jwt.RegisteredClaims
}

type Service struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Encode(id Identity) (string, error) {
	if id.ID == uuid.Nil {
		id.ID = uuid.New()
	}
	now := s.now()
	claims := Claims{
		Name:  id.Name,
		Room:  id.Room,
		Month: id.Month,
		Day:   id.Day,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) Decode(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	sid, err := uuid.Parse(claims.ID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		ID:    sid,
		Name:  claims.Name,
		Room:  claims.Room,
		Month: claims.Month,
		Day:   claims.Day,
	}, nil
}
