package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSeatTokenRoundTrip(t *testing.T) {
	signer := NewSeatSigner("test-secret", time.Hour)

	token, err := signer.IssueSeatToken("yellow", "seat-1")
	if err != nil {
		t.Fatalf("IssueSeatToken returned error: %v", err)
	}

	claims, err := signer.ValidateSeatToken(token)
	if err != nil {
		t.Fatalf("ValidateSeatToken returned error: %v", err)
	}
	if claims.Seat != "yellow" || claims.SeatID != "seat-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSeatTokenRejectsOtherSecret(t *testing.T) {
	token, err := NewSeatSigner("one", time.Hour).IssueSeatToken("red", "seat-1")
	if err != nil {
		t.Fatalf("IssueSeatToken returned error: %v", err)
	}
	if _, err := NewSeatSigner("two", time.Hour).ValidateSeatToken(token); err == nil {
		t.Fatalf("expected a token signed with another secret to fail")
	}
}

func TestSeatTokenExpires(t *testing.T) {
	signer := NewSeatSigner("test-secret", time.Minute)
	issued := time.Now()
	signer.now = func() time.Time { return issued }

	token, err := signer.IssueSeatToken("red", "seat-1")
	if err != nil {
		t.Fatalf("IssueSeatToken returned error: %v", err)
	}

	signer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := signer.ValidateSeatToken(token); err == nil {
		t.Fatalf("expected an expired token to fail")
	}
}

func TestSeatTokenRejectsUnsignedAlgorithm(t *testing.T) {
	claims := &SeatClaims{
		Seat:   "red",
		SeatID: "seat-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString returned error: %v", err)
	}

	if _, err := NewSeatSigner("test-secret", time.Hour).ValidateSeatToken(token); err == nil {
		t.Fatalf("expected an alg=none token to fail")
	}
}
