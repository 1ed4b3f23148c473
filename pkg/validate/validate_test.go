package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/bazaar/pkg/validate"
)

type registerInput struct {
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Email:                "john@example.com",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestAllFailuresCollected(t *testing.T) {
	errs := validate.Struct(registerInput{
		Email:                "not-an-email",
		Password:             "short",
		PasswordConfirmation: "different",
	})
	if len(errs) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(errs), errs)
	}
	for _, field := range []string{"email", "password", "password_confirmation"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error for %s", field)
		}
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestConfirmedComparesSibling(t *testing.T) {
	errs := validate.Struct(registerInput{
		Email:                "john@example.com",
		Password:             "abcdefgh",
		PasswordConfirmation: "abcdefgX",
	})
	if _, ok := errs["password_confirmation"]; !ok {
		t.Errorf("expected confirmation mismatch error, got: %v", errs)
	}
}

func TestNumericRules(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gte=0"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail gte=0")
	}
	if errs := validate.Struct(in{Price: 9.99}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestNullableSkipsEmpty(t *testing.T) {
	type in struct {
		Site string `json:"site" validate:"nullable,email"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Site: "nope"}); !validate.HasErrors(errs) {
		t.Error("expected non-empty nullable field to be validated")
	}
}
