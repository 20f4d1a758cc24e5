package users

import (
	"testing"

	"github.com/UserHub/userhub-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestValidateSignUp_Valid(t *testing.T) {
	t.Parallel()

	req, errs := ValidateSignUp(SignUpRequest{
		Name:     "  Ann  ",
		Email:    "Ann@X.com",
		Password: "secret12",
	})
	require.Empty(t, errs)
	assert.Equal(t, "Ann", req.Name)
	assert.Equal(t, "ann@x.com", req.Email, "email must be normalized to lowercase")
	assert.Equal(t, auth.RoleUser, req.Role, "role defaults to user")
}

func TestValidateSignUp_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       SignUpRequest
		wantField string
	}{
		{"missing name", SignUpRequest{Email: "a@b.com", Password: "x"}, "name"},
		{"short name", SignUpRequest{Name: "A", Email: "a@b.com", Password: "x"}, "name"},
		{"missing email", SignUpRequest{Name: "Ann", Password: "x"}, "email"},
		{"bad email", SignUpRequest{Name: "Ann", Email: "not-an-email", Password: "x"}, "email"},
		{"missing password", SignUpRequest{Name: "Ann", Email: "a@b.com"}, "password"},
		{"unknown role", SignUpRequest{Name: "Ann", Email: "a@b.com", Password: "x", Role: "root"}, "role"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateSignUp(tc.req)
			require.NotEmpty(t, errs)
			assert.Contains(t, fieldNames(errs), tc.wantField)
		})
	}
}

func TestValidateSignUp_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, errs := ValidateSignUp(SignUpRequest{})
	names := fieldNames(errs)
	assert.Contains(t, names, "name")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "password")
}

func TestValidateSignIn(t *testing.T) {
	t.Parallel()

	req, errs := ValidateSignIn(SignInRequest{Email: "ANN@x.com", Password: "pw"})
	require.Empty(t, errs)
	assert.Equal(t, "ann@x.com", req.Email)

	_, errs = ValidateSignIn(SignInRequest{})
	assert.Len(t, errs, 2)
}

func TestValidateUserID(t *testing.T) {
	t.Parallel()

	id, errs := ValidateUserID("5")
	require.Empty(t, errs)
	assert.Equal(t, int64(5), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, errs := ValidateUserID(raw)
		assert.NotEmpty(t, errs, "id %q must fail validation", raw)
	}
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()

	name := "New Name"
	email := "NEW@Example.com"
	role := auth.RoleAdmin

	updates, errs := ValidateUpdate(UpdateUserRequest{Name: &name, Email: &email, Role: &role})
	require.Empty(t, errs)
	require.NotNil(t, updates.Email)
	assert.Equal(t, "new@example.com", *updates.Email)
	assert.True(t, updates.HasRoleChange())

	// All fields optional: empty payload is a valid no-op.
	updates, errs = ValidateUpdate(UpdateUserRequest{})
	require.Empty(t, errs)
	assert.True(t, updates.IsEmpty())

	bad := "x"
	_, errs = ValidateUpdate(UpdateUserRequest{Name: &bad})
	assert.NotEmpty(t, errs)
}

func TestNormalizeEmail_CaseFolds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ann@x.com", NormalizeEmail("  ANN@X.COM "))
	assert.Equal(t, NormalizeEmail("Ann@x.com"), NormalizeEmail("aNN@X.com"))
}

func TestUpdates_WithoutRole(t *testing.T) {
	t.Parallel()

	role := auth.RoleAdmin
	name := "Ann"
	u := Updates{Name: &name, Role: &role}.WithoutRole()
	assert.Nil(t, u.Role)
	assert.NotNil(t, u.Name)
}
