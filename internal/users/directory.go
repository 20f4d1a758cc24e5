package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Directory is the persistence capability for user records. Lookups return
// (nil, nil) when no record matches; errors are reserved for real failures.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	All(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, id int64, updates Updates) (*User, error)
	Delete(ctx context.Context, id int64) error
}

// GormDirectory implements Directory against the users table.
type GormDirectory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (d *GormDirectory) FindByID(ctx context.Context, id int64) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (d *GormDirectory) All(ctx context.Context) ([]User, error) {
	var all []User
	if err := d.db.WithContext(ctx).Order("id").Find(&all).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return all, nil
}

// Create inserts the record. The unique index on email is the authoritative
// duplicate guard: a unique violation surfaces as the same Conflict the
// existence pre-check produces, closing the check-then-insert race.
func (d *GormDirectory) Create(ctx context.Context, user *User) error {
	if err := d.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict("User already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (d *GormDirectory) Update(ctx context.Context, id int64, updates Updates) (*User, error) {
	fields := map[string]interface{}{}
	if updates.Name != nil {
		fields["name"] = *updates.Name
	}
	if updates.Email != nil {
		fields["email"] = *updates.Email
	}
	if updates.Role != nil {
		fields["role"] = *updates.Role
	}

	if len(fields) > 0 {
		err := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrConflict("Email already in use")
			}
			return nil, fmt.Errorf("update user: %w", err)
		}
	}

	return d.FindByID(ctx, id)
}

func (d *GormDirectory) Delete(ctx context.Context, id int64) error {
	if err := d.db.WithContext(ctx).Where("id = ?", id).Delete(&User{}).Error; err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
