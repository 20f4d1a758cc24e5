package users

import (
	"net/http"

	"github.com/UserHub/userhub-backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) AuthRoutes() http.Handler {
	r := chi.NewRouter()

	r.Post("/SignUp", h.SignUpHandler)
	r.Post("/SignIn", h.SignInHandler)
	r.Post("/SignOut", h.SignOutHandler)

	return r
}

func (h *Handler) UserRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.FetchAllUsersHandler)
	r.Get("/{id}", h.GetUserByIDHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.tokens, h.cookies))
		r.Put("/{id}", h.UpdateUserHandler)
		r.Delete("/{id}", h.DeleteUserHandler)
	})

	return r
}
