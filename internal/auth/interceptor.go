package auth

import (
	"context"
	"crypto/subtle"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Authenticator resolves the caller of a request from a bearer token or the admin key.
type Authenticator struct {
	tokens   *TokenManager
	adminKey string
	public   map[string]bool
}

// NewAuthenticator builds an authenticator. publicMethods are reachable without credentials;
// for grpc they are full method names, for http "METHOD path" pairs.
func NewAuthenticator(tokens *TokenManager, adminKey string, publicMethods ...string) *Authenticator {
	public := make(map[string]bool, len(publicMethods))
	for _, m := range publicMethods {
		public[m] = true
	}
	return &Authenticator{tokens: tokens, adminKey: adminKey, public: public}
}

func (a *Authenticator) isAdminKey(key string) bool {
	if a.adminKey == "" || key == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a.adminKey), []byte(key)) == 1
}

// resolve returns the caller for a token/admin key pair. ok is false when a token was
// supplied but is invalid.
func (a *Authenticator) resolve(token, adminKey string) (UserContext, bool) {
	u := UserContext{IsAdmin: a.isAdminKey(adminKey)}
	if token == "" {
		return u, true
	}
	claims, err := a.tokens.Parse(token)
	if err != nil {
		return u, false
	}
	u.StakeholderID = claims.Subject
	u.Role = claims.Role
	return u, true
}

// UnaryInterceptor puts the caller into the context. Calls without credentials are only
// allowed for public methods.
func (a *Authenticator) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		adminKey := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-admin-key"); len(vals) > 0 {
				adminKey = vals[0]
			}
		}

		u, ok := a.resolve(bearerFromMetadata(ctx), adminKey)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		if u.StakeholderID == "" && !u.IsAdmin && !a.public[info.FullMethod] {
			return nil, status.Error(codes.Unauthenticated, "missing credentials")
		}

		return handler(WithUser(ctx, u), req)
	}
}
