package authUtils

import (
	"testing"

	"ecowaste-be/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("64f1c0ffee0000000000abcd", models.RoleWorker)
	if err != nil {
		t.Fatal(err)
	}

	userID, role, err := ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if userID != "64f1c0ffee0000000000abcd" {
		t.Errorf("user id = %s", userID)
	}
	if role != models.RoleWorker {
		t.Errorf("role = %s, want worker", role)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, _, err := ParseToken("not-a-token"); err == nil {
		t.Error("garbage token should not parse")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateToken("64f1c0ffee0000000000abcd", models.RoleCitizen)
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, _, err := ParseToken(token); err == nil {
		t.Error("token signed with a different secret should not parse")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("64f1c0ffee0000000000abcd", models.RoleCitizen); err == nil {
		t.Error("missing JWT_SECRET should fail")
	}
}
