package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/KikiG13/travelife/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type refreshSessionRepository struct {
	db *sqlx.DB
}

func newRefreshSessionRepository(db *sqlx.DB) *refreshSessionRepository {
	return &refreshSessionRepository{
		db: db,
	}
}

func (r *refreshSessionRepository) Create(ctx context.Context, session *domain.RefreshSession) error {
	const query = `
				INSERT INTO refresh_session (id, user_id, refresh_token, user_agent, ip, expires_in)
				VALUES (uuid_to_bin(?), uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?)
				`
	_, err := r.db.ExecContext(ctx, query, session.ID, session.UserID, session.RefreshToken, session.UserAgent, session.IP, session.ExpiresIn)

	if err != nil {
		return fmt.Errorf("db insert refresh session: %w", err)
	}

	return nil
}

func (r *refreshSessionRepository) GetByRefreshToken(ctx context.Context, refreshToken uuid.UUID) (*domain.RefreshSession, error) {
	const query = `
	SELECT BIN_TO_UUID(id) as id, BIN_TO_UUID(user_id) as user_id, BIN_TO_UUID(refresh_token) as refresh_token,
		user_agent, ip, expires_in, created_at
	FROM refresh_session WHERE refresh_token = uuid_to_bin(?);
	`
	var session domain.RefreshSession
	if err := r.db.GetContext(ctx, &session, query, refreshToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select refresh session by token failed: %w", err)
	}
	return &session, nil
}

func (r *refreshSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM refresh_session WHERE id = uuid_to_bin(?)`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db delete refresh session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
