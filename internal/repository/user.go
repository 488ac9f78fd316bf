package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/KikiG13/travelife/internal/db"
	"github.com/KikiG13/travelife/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
	INSERT INTO user
	(id, email, hashed_password)
	VALUES(uuid_to_bin(?), ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.HashedPassword,
	)

	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
	SELECT BIN_TO_UUID(id) as id, email, hashed_password, created_at, updated_at FROM user WHERE email = ?;
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetOneByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
	SELECT BIN_TO_UUID(id) as id, email, hashed_password, created_at, updated_at FROM user WHERE id = uuid_to_bin(?);
	`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user by id failed: %w", err)
	}
	return &user, nil
}

// GetManyByIDs skips ids that have no user row.
func (r *userRepository) GetManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	binIDs := make([][]byte, len(ids))
	for i, id := range ids {
		binIDs[i] = id[:]
	}

	query, args, err := sqlx.In(`
	SELECT BIN_TO_UUID(id) as id, email, hashed_password, created_at, updated_at FROM user WHERE id IN (?);
	`, binIDs)
	if err != nil {
		return nil, fmt.Errorf("build select users by ids failed: %w", err)
	}

	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select users by ids failed: %w", err)
	}
	return users, nil
}
