package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT("secret", userID, "shopkeeper", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ParseJWT("secret", token)
	if err != nil {
		t.Fatalf("ParseJWT failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("claims user_id = %v, want %v", claims.UserID, userID)
	}
	if claims.Username != "shopkeeper" {
		t.Errorf("claims username = %q, want shopkeeper", claims.Username)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret", uuid.New(), "shopkeeper", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Error("ParseJWT accepted a token signed with a different secret")
	}
}

func TestJWTGarbageToken(t *testing.T) {
	if _, err := ParseJWT("secret", "not-a-token"); err == nil {
		t.Error("ParseJWT accepted garbage")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Error("hash equals the plaintext password")
	}

	if !CheckPassword(hash, "hunter2") {
		t.Error("CheckPassword rejected the correct password")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
