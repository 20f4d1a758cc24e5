package users

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/UserHub/userhub-backend/internal/auth"
	"golang.org/x/text/cases"
)

// FieldError is one (field, message) pair from a failed validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NormalizeEmail trims and case-folds an address the same way the
// validator does, so every directory lookup sees the canonical form.
// The Caser is built per call; a shared one is not safe for concurrent use.
func NormalizeEmail(email string) string {
	return cases.Fold().String(strings.TrimSpace(email))
}

func validateName(name string, required bool, errs []FieldError) (string, []FieldError) {
	name = strings.TrimSpace(name)
	if name == "" {
		if required {
			errs = append(errs, FieldError{Field: "name", Message: "name is required"})
		}
		return name, errs
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 255 {
		errs = append(errs, FieldError{Field: "name", Message: "name must be between 2 and 255 characters"})
	}
	return name, errs
}

func validateEmail(email string, errs []FieldError) (string, []FieldError) {
	email = NormalizeEmail(email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
		return email, errs
	}
	if len(email) > 255 {
		errs = append(errs, FieldError{Field: "email", Message: "email must be at most 255 characters"})
		return email, errs
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email address"})
	}
	return email, errs
}

func validateRole(role string, errs []FieldError) (string, []FieldError) {
	switch role {
	case auth.RoleUser, auth.RoleAdmin:
		return role, errs
	default:
		errs = append(errs, FieldError{Field: "role", Message: "role must be one of: user, admin"})
		return role, errs
	}
}

// ValidateSignUp checks and normalizes a signup payload. A non-empty error
// list means the request must be rejected before any business logic runs.
func ValidateSignUp(req SignUpRequest) (SignUpRequest, []FieldError) {
	var errs []FieldError

	req.Name, errs = validateName(req.Name, true, errs)
	req.Email, errs = validateEmail(req.Email, errs)

	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}

	if req.Role == "" {
		req.Role = auth.RoleUser
	} else {
		req.Role, errs = validateRole(req.Role, errs)
	}

	return req, errs
}

func ValidateSignIn(req SignInRequest) (SignInRequest, []FieldError) {
	var errs []FieldError

	req.Email, errs = validateEmail(req.Email, errs)
	if req.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}

	return req, errs
}

// ValidateUserID coerces a path parameter into a positive integer id.
func ValidateUserID(raw string) (int64, []FieldError) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, []FieldError{{Field: "id", Message: "id must be a positive integer"}}
	}
	return id, nil
}

// ValidateUpdate checks the optional fields of an update payload.
// An empty result is valid: the operation degenerates to a fetch.
func ValidateUpdate(req UpdateUserRequest) (Updates, []FieldError) {
	var (
		updates Updates
		errs    []FieldError
	)

	if req.Name != nil {
		name, nameErrs := validateName(*req.Name, true, nil)
		errs = append(errs, nameErrs...)
		updates.Name = &name
	}
	if req.Email != nil {
		email, emailErrs := validateEmail(*req.Email, nil)
		errs = append(errs, emailErrs...)
		updates.Email = &email
	}
	if req.Role != nil {
		role, roleErrs := validateRole(*req.Role, nil)
		errs = append(errs, roleErrs...)
		updates.Role = &role
	}

	if len(errs) > 0 {
		return Updates{}, errs
	}
	return updates, nil
}
