package users

import (
	"context"
	"log"

	"github.com/UserHub/userhub-backend/internal/auth"
)

// dummyHash gives signin a hash to verify against when the email has no
// account, keeping response timing flat either way.
var dummyHash, _ = auth.HashPassword("equalize-timing")

// Service orchestrates signup, signin and user CRUD over the directory.
// It holds no mutable state; every call operates only on its inputs.
type Service struct {
	dir Directory
}

func NewService(dir Directory) *Service {
	return &Service{dir: dir}
}

// CreateUser registers a new account. The email pre-check is a fast path
// only; the directory's unique constraint is the real duplicate guard.
func (s *Service) CreateUser(ctx context.Context, req SignUpRequest) (PublicUser, error) {
	existing, err := s.dir.FindByEmail(ctx, req.Email)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to create user", err)
	}
	if existing != nil {
		return PublicUser{}, ErrConflict("User already exists")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to create user", err)
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
	}
	if err := s.dir.Create(ctx, user); err != nil {
		return PublicUser{}, err
	}

	log.Printf("User created: id=%d email=%s", user.ID, user.Email)
	return user.Public(), nil
}

func (s *Service) AuthenticateUser(ctx context.Context, req SignInRequest) (PublicUser, error) {
	user, err := s.dir.FindByEmail(ctx, req.Email)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to authenticate user", err)
	}
	if user == nil {
		// Burn a comparison anyway so a missing account is not
		// distinguishable from a wrong password by response time.
		_, _ = auth.VerifyPassword(req.Password, dummyHash)
		return PublicUser{}, ErrNotFound("User not found")
	}

	ok, err := auth.VerifyPassword(req.Password, user.Password)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to authenticate user", err)
	}
	if !ok {
		return PublicUser{}, ErrUnauthorized("Invalid password")
	}

	log.Printf("User authenticated: id=%d email=%s", user.ID, user.Email)
	return user.Public(), nil
}

func (s *Service) GetAllUsers(ctx context.Context) ([]PublicUser, error) {
	all, err := s.dir.All(ctx)
	if err != nil {
		return nil, ErrInternal("failed to fetch users", err)
	}
	public := make([]PublicUser, 0, len(all))
	for _, u := range all {
		public = append(public, u.Public())
	}
	return public, nil
}

func (s *Service) GetUserByID(ctx context.Context, id int64) (PublicUser, error) {
	user, err := s.dir.FindByID(ctx, id)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to fetch user", err)
	}
	if user == nil {
		return PublicUser{}, ErrNotFound("User not found")
	}
	return user.Public(), nil
}

// UpdateUser applies the sanitized updates. An empty update set degenerates
// to a fetch of the current state and still succeeds.
func (s *Service) UpdateUser(ctx context.Context, id int64, updates Updates) (PublicUser, error) {
	user, err := s.dir.FindByID(ctx, id)
	if err != nil {
		return PublicUser{}, ErrInternal("failed to update user", err)
	}
	if user == nil {
		return PublicUser{}, ErrNotFound("User not found")
	}
	if updates.IsEmpty() {
		return user.Public(), nil
	}

	updated, err := s.dir.Update(ctx, id, updates)
	if err != nil {
		return PublicUser{}, err
	}
	if updated == nil {
		return PublicUser{}, ErrNotFound("User not found")
	}

	log.Printf("User updated: id=%d", id)
	return updated.Public(), nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.dir.FindByID(ctx, id)
	if err != nil {
		return ErrInternal("failed to delete user", err)
	}
	if user == nil {
		return ErrNotFound("User not found")
	}

	if err := s.dir.Delete(ctx, id); err != nil {
		return ErrInternal("failed to delete user", err)
	}

	log.Printf("User deleted: id=%d", id)
	return nil
}
