package v1

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KikiG13/travelife/internal/domain"
	"github.com/KikiG13/travelife/pkg/auth"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "user"
	claimsCtx           = "claims"
)

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	token, err := parseAuthHeader(c)
	if err != nil {
		_ = c.Error(fmt.Errorf("%w: %w", domain.ErrUnauthorized, err))
		c.Abort()
		return
	}

	user, claims, err := h.services.Users.Authenticate(c.Request.Context(), token)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	c.Set(userCtx, user)
	c.Set(claimsCtx, claims)
	c.Next()
}

func parseAuthHeader(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}

func getUser(c *gin.Context) (*domain.User, error) {
	v, ok := c.Get(userCtx)
	if !ok {
		return nil, fmt.Errorf("%w: user not found in context", domain.ErrUnauthorized)
	}
	user, ok := v.(*domain.User)
	if !ok || user == nil {
		return nil, fmt.Errorf("%w: user is of invalid type", domain.ErrUnauthorized)
	}
	return user, nil
}

func getClaims(c *gin.Context) (*auth.Claims, error) {
	v, ok := c.Get(claimsCtx)
	if !ok {
		return nil, fmt.Errorf("%w: claims not found in context", domain.ErrUnauthorized)
	}
	claims, ok := v.(*auth.Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("%w: claims are of invalid type", domain.ErrUnauthorized)
	}
	return claims, nil
}
