package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/marketpulse/marketpulse-api/infrastructure/database/postgres"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
)

const (
	usersTable = "users u"

	userColumns = "u.id, u.name, u.email, u.password_hash, u.active, u.created_at"
)

var ErrDuplicateEmail = fmt.Errorf("email already registered")

type UserRepository interface {
	Create(user *domain.User) error
	GetByEmail(email string) (*domain.User, error)
	GetByID(id string) (*domain.User, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) Create(user *domain.User) error {
	if user.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("generating user id: %w", err)
		}
		user.ID = id
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "active", "created_at").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Active, user.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"u.email": email})
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	return r.getBy(squirrel.Eq{"u.id": id})
}

func (r *userRepository) getBy(where squirrel.Eq) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}
