package auth

import (
	"context"
	"strings"

	"github.com/fekuna/agritrace-service/internal/apperr"
	"github.com/fekuna/agritrace-service/internal/lifecycle"
	"google.golang.org/grpc/metadata"
)

type UserContext struct {
	StakeholderID string
	Role          lifecycle.Role
	IsAdmin       bool
}

type userContextKey struct{}

func WithUser(ctx context.Context, u UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, u)
}

func UserFromContext(ctx context.Context) (UserContext, bool) {
	u, ok := ctx.Value(userContextKey{}).(UserContext)
	return u, ok
}

// GetStakeholderID returns the authenticated stakeholder, or "" for anonymous calls.
func GetStakeholderID(ctx context.Context) string {
	if u, ok := UserFromContext(ctx); ok {
		return u.StakeholderID
	}
	return ""
}

// bearerFromMetadata reads "authorization: Bearer <token>" from incoming grpc metadata.
func bearerFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get("authorization")
	if len(vals) == 0 {
		return ""
	}
	return bearerToken(vals[0])
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireStakeholder returns the caller of a request made with a stakeholder token.
func RequireStakeholder(ctx context.Context) (UserContext, error) {
	u, ok := UserFromContext(ctx)
	if !ok || u.StakeholderID == "" {
		return UserContext{}, apperr.New(apperr.KindUnauthorized, "stakeholder token required")
	}
	return u, nil
}

// RequireAdmin fails unless the request carried the administrator key.
func RequireAdmin(ctx context.Context) error {
	if u, ok := UserFromContext(ctx); ok && u.IsAdmin {
		return nil
	}
	return apperr.New(apperr.KindForbidden, "administrator access required")
}
