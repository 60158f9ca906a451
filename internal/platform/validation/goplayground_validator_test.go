package validation_test

import (
	"testing"

	"github.com/ferdiebergado/regtoken/internal/platform/validation"
)

func TestGoplaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type registration struct {
		Email string `json:"email" validate:"required,email"`
	}

	type signature struct {
		Algorithm string `json:"algorithm" validate:"oneof=HS256 HS384 HS512"`
	}

	tests := []struct {
		name     string
		given    any
		field    string
		hasError bool
		errMsg   string
	}{
		{"Valid email", registration{Email: "a@b.com"}, "email", false, ""},
		{"Missing email", registration{}, "email", true, "email is required"},
		{"Malformed email", registration{Email: "a@b"}, "email", true, "email must be a valid email address"},
		{"Supported algorithm", signature{Algorithm: "HS512"}, "algorithm", false, ""},
		{"Unsupported algorithm", signature{Algorithm: "RS256"}, "algorithm", true, "algorithm must be one of: HS256 HS384 HS512"},
		{"Field without json tag", struct {
			Name string `validate:"required"`
		}{}, "Name", true, "Name is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v := validation.NewGoPlaygroundValidator()

			errs := v.ValidateStruct(tc.given)
			if gotErr := errs != nil; gotErr != tc.hasError {
				t.Errorf("v.ValidateStruct(%+v) = %v, want error: %t", tc.given, errs, tc.hasError)
			}

			if gotMsg, wantMsg := errs[tc.field], tc.errMsg; gotMsg != wantMsg {
				t.Errorf("errs[%q] = %q, want: %q", tc.field, gotMsg, wantMsg)
			}
		})
	}
}
