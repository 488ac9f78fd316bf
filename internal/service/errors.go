package service

import (
	"fmt"

	"github.com/KikiG13/travelife/internal/domain"
)

var (
	ErrInvalidCredentials   = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	ErrTokenRevoked         = fmt.Errorf("%w: token revoked", domain.ErrUnauthorized)
	ErrRefreshSessionExpiry = fmt.Errorf("%w: refresh session expired", domain.ErrUnauthorized)
	ErrUserAlreadyExist     = fmt.Errorf("%w: user already exist", domain.ErrDuplicateEntry)
)
