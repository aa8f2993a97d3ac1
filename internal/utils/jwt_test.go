package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseTokenExpiry_Success(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": 1700000000}).
		SignedString([]byte("portal-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	exp, err := ParseTokenExpiry(signed)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if !exp.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("expiry = %v, want %v", exp, time.Unix(1700000000, 0))
	}
}

func TestParseTokenExpiry_PaddedSegments(t *testing.T) {
	// {"alg":"HS256"} / {"exp":1700000000,"u":"a"} with standard padding kept, bogus signature
	token := "eyJhbGciOiJIUzI1NiJ9.eyJleHAiOjE3MDAwMDAwMDAsInUiOiJhIn0=.c2ln"

	exp, err := ParseTokenExpiry(token)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if exp.Unix() != 1700000000 {
		t.Errorf("expiry = %d, want 1700000000", exp.Unix())
	}
}

func TestParseTokenExpiry_OpaqueSegments(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"header is not base64", "x.eyJleHAiOjE3MDAwMDAwMDB9.y"},
		{"header without alg", "eyJ0eXAiOiJKV1QifQ.eyJleHAiOjE3MDAwMDAwMDB9.c2ln"},
		{"unknown alg", "eyJhbGciOiJYWVoifQ.eyJleHAiOjE3MDAwMDAwMDB9.c2ln"},
		{"standard alphabet with slash", "x.eyJleHAiOjE3MDAwMDAwMDAsIm4iOiI/Pz4+In0=.y"},
		{"standard alphabet unpadded", "x.eyJleHAiOjE3MDAwMDAwMDAsIm4iOiJ+fn4ifQ.y"},
		{"url alphabet", "x.eyJleHAiOjE3MDAwMDAwMDAsIm4iOiI_Pz4-In0.y"},
		{"no signature segment", "x.eyJleHAiOjE3MDAwMDAwMDB9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := ParseTokenExpiry(tt.token)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if exp.Unix() != 1700000000 {
				t.Errorf("expiry = %d, want 1700000000", exp.Unix())
			}
		})
	}
}

func TestParseTokenExpiry_Errors(t *testing.T) {
	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"}).
		SignedString([]byte("k"))

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"two segments", "abc.def", nil},
		{"garbage middle", "eyJhbGciOiJIUzI1NiJ9.!!!.sig", nil},
		{"no exp claim", noExp, ErrTokenWithoutExpiry},
		{"empty", "", ErrMalformedToken},
		{"single segment", "eyJleHAiOjE3MDAwMDAwMDB9", ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenExpiry(tt.token)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	signed, err := IssueToken("member-1", time.Now().Add(time.Hour), "sign-key")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if strings.Count(signed, ".") != 2 {
		t.Fatalf("expected three segments, got %q", signed)
	}

	subject, err := ValidateToken(signed, "sign-key")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject != "member-1" {
		t.Errorf("subject = %q, want member-1", subject)
	}

	if _, err = ValidateToken(signed, "other-key"); err == nil {
		t.Error("expected signature error with wrong key")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	signed, err := IssueToken("member-1", time.Now().Add(-time.Minute), "sign-key")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = ValidateToken(signed, "sign-key")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestIssueToken_InvalidParams(t *testing.T) {
	if _, err := IssueToken("", time.Now(), "k"); err == nil {
		t.Error("expected error for empty subject")
	}
	if _, err := IssueToken("s", time.Now(), ""); err == nil {
		t.Error("expected error for empty sign key")
	}
}
