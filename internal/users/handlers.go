package users

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/UserHub/userhub-backend/internal/auth"
	"github.com/UserHub/userhub-backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	svc     *Service
	tokens  *auth.TokenService
	cookies auth.SessionCookies
}

func NewHandler(svc *Service, tokens *auth.TokenService, cookies auth.SessionCookies) *Handler {
	return &Handler{svc: svc, tokens: tokens, cookies: cookies}
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func respondValidationFailed(w http.ResponseWriter, details []FieldError) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": details,
	})
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondServiceError maps a classified service error to its status code.
// Unclassified errors are logged and answered with a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	kind := KindOf(err)
	if kind == KindInternal {
		log.Printf("internal error: %v", err)
	}
	respondMessage(w, statusForKind(kind), MessageOf(err))
}

func (h *Handler) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	req, details := ValidateSignUp(req)
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("internal error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.cookies.Attach(w, token)

	log.Printf("User registration successful for email: %s", user.Email)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    user,
	})
}

func (h *Handler) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	req, details := ValidateSignIn(req)
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	user, err := h.svc.AuthenticateUser(r.Context(), req)
	if err != nil {
		// A missing account and a wrong password both answer 401 here,
		// whatever the service classified them as.
		switch KindOf(err) {
		case KindNotFound, KindUnauthorized:
			respondMessage(w, http.StatusUnauthorized, MessageOf(err))
		default:
			respondServiceError(w, err)
		}
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("internal error: %v", err)
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	h.cookies.Attach(w, token)

	log.Printf("User signed in successfully: %s", user.Email)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User signed in successfully",
		"user":    user,
	})
}

func (h *Handler) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	h.cookies.Detach(w)
	respondMessage(w, http.StatusOK, "User signed out successfully")
}

func (h *Handler) FetchAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.GetAllUsers(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Users fetched successfully",
		"users":   all,
		"count":   len(all),
	})
}

func (h *Handler) GetUserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, details := ValidateUserID(chi.URLParam(r, "id"))
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	user, err := h.svc.GetUserByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User fetched successfully",
		"user":    user,
	})
}

func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, details := ValidateUserID(chi.URLParam(r, "id"))
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	updates, details := ValidateUpdate(req)
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	requester, _ := utils.GetRequesterFromContext(r.Context())
	if denial := auth.CanModify(requester, id, updates.HasRoleChange()); denial != nil {
		respondMessage(w, denial.Status, denial.Message)
		return
	}
	if !requester.IsAdmin() {
		updates = updates.WithoutRole()
	}

	user, err := h.svc.UpdateUser(r.Context(), id, updates)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("User updated successfully: id=%d by=%d", id, requester.ID)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, details := ValidateUserID(chi.URLParam(r, "id"))
	if len(details) > 0 {
		respondValidationFailed(w, details)
		return
	}

	requester, _ := utils.GetRequesterFromContext(r.Context())
	if denial := auth.CanDelete(requester, id); denial != nil {
		respondMessage(w, denial.Status, denial.Message)
		return
	}

	if err := h.svc.DeleteUser(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	log.Printf("User deleted successfully: id=%d by=%d", id, requester.ID)
	respondMessage(w, http.StatusOK, "User deleted successfully")
}
