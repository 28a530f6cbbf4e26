package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

func TestValidateTokenExpiry(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name    string
		claims  jwt.MapClaims
		wantErr bool
	}{
		{"masih berlaku", jwt.MapClaims{"exp": float64(now.Add(time.Hour).Unix())}, false},
		{"sudah lewat", jwt.MapClaims{"exp": float64(now.Add(-time.Hour).Unix())}, true},
		{"dalam toleransi skew", jwt.MapClaims{"exp": float64(now.Add(-10 * time.Second).Unix())}, false},
		{"tanpa exp", jwt.MapClaims{}, true},
		{"tipe exp aneh", jwt.MapClaims{"exp": "besok"}, true},
	}
	for _, tc := range cases {
		err := validateTokenExpiry(tc.claims, 30*time.Second)
		if tc.wantErr && err == nil {
			t.Errorf("%s: error = nil, want error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("%s: error = %v, want nil", tc.name, err)
		}
	}
}

// Round-trip: token yang ditandatangani controller login harus lolos jalur
// parse + validasi yang dipakai middleware.
func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("rahasia-test")
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       uint(42),
		"user_name": "admin",
		"iat":       now.Unix(),
		"exp":       now.Add(time.Hour).Unix(),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return secret, nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		t.Fatalf("exp: %v", err)
	}
	id, err := extractUserID(claims)
	if err != nil {
		t.Fatalf("user id: %v", err)
	}
	if id != 42 {
		t.Fatalf("id = %d, want 42", id)
	}

	// Secret salah harus gagal parse.
	if _, err := parser.ParseWithClaims(signed, jwt.MapClaims{}, func(tok *jwt.Token) (interface{}, error) {
		return []byte("secret-lain"), nil
	}); err == nil {
		t.Fatal("parse dengan secret salah harus gagal")
	}
}

func TestExtractUserID(t *testing.T) {
	cases := []struct {
		name    string
		claims  jwt.MapClaims
		want    uint
		wantErr bool
	}{
		{"sub float64", jwt.MapClaims{"sub": float64(42)}, 42, false},
		{"sub string", jwt.MapClaims{"sub": "7"}, 7, false},
		{"fallback user_id", jwt.MapClaims{"user_id": float64(9)}, 9, false},
		{"sub nol", jwt.MapClaims{"sub": float64(0)}, 0, true},
		{"sub bukan angka", jwt.MapClaims{"sub": "budi"}, 0, true},
		{"tanpa klaim", jwt.MapClaims{}, 0, true},
	}
	for _, tc := range cases {
		got, err := extractUserID(tc.claims)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: error = nil, want error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: error = %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: id = %d, want %d", tc.name, got, tc.want)
		}
	}
}
