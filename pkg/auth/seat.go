package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SeatClaims represents JWT claims for a seat token
type SeatClaims struct {
	Seat   string `json:"seat"`    // "red" or "yellow"
	SeatID string `json:"seat_id"` // changes every time the seat is claimed
	jwt.RegisteredClaims
}

// SeatSigner issues and validates HS256 seat tokens.
type SeatSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSeatSigner(secret string, ttl time.Duration) *SeatSigner {
	return &SeatSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// IssueSeatToken creates a token that lets its holder play the given seat
func (s *SeatSigner) IssueSeatToken(seat, seatID string) (string, error) {
	now := s.now()
	claims := &SeatClaims{
		Seat:   seat,
		SeatID: seatID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSeatToken validates a seat token and returns its claims
func (s *SeatSigner) ValidateSeatToken(tokenString string) (*SeatClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SeatClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SeatClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid seat token")
}
