package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"library-service/internal/infrastructure/auth"
	"library-service/internal/pkg/errors"
	"library-service/internal/pkg/httputil"
)

// ContextKey type for context values
type ContextKey string

const (
	// ContextKeyMemberID stores the authenticated member's ID
	ContextKeyMemberID ContextKey = "member_id"
	// ContextKeyMemberEmail stores the authenticated member's email
	ContextKeyMemberEmail ContextKey = "member_email"
	// ContextKeyClaims stores the JWT claims
	ContextKeyClaims ContextKey = "jwt_claims"
)

// AuthMiddleware handles JWT authentication for protected routes
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate is a middleware that validates JWT tokens
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := m.validateAndExtractClaims(w, r)
		if claims == nil {
			return
		}

		ctx := addClaimsToContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateAndExtractClaims validates the JWT token and returns claims.
// If validation fails, it writes an error response and returns nil.
func (m *AuthMiddleware) validateAndExtractClaims(w http.ResponseWriter, r *http.Request) *auth.Claims {
	token := m.extractToken(r)
	if token == "" {
		m.respondError(w, errors.ErrUnauthorized.WithDetails("reason", "missing or invalid authorization header"))
		return nil
	}

	claims, err := m.jwtService.ValidateToken(token)
	if err != nil {
		m.respondError(w, errors.ErrUnauthorized.WithDetails("reason", err.Error()))
		return nil
	}

	return claims
}

// addClaimsToContext adds JWT claims to the request context
func addClaimsToContext(ctx context.Context, claims *auth.Claims) context.Context {
	ctx = context.WithValue(ctx, ContextKeyMemberID, claims.MemberID)
	ctx = context.WithValue(ctx, ContextKeyMemberEmail, claims.Email)
	ctx = context.WithValue(ctx, ContextKeyClaims, claims)
	return ctx
}

// extractToken extracts the JWT token from the Authorization header
func (m *AuthMiddleware) extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// respondError sends an error response
func (m *AuthMiddleware) respondError(w http.ResponseWriter, err error) {
	w.Header().Set(httputil.HeaderContentType, httputil.ContentTypeJSON)

	status := errors.GetHTTPStatus(err)
	w.WriteHeader(status)

	response := errors.FromError(err)
	_ = json.NewEncoder(w).Encode(response)
}

// GetMemberIDFromContext extracts member ID from context
func GetMemberIDFromContext(ctx context.Context) (string, bool) {
	memberID, ok := ctx.Value(ContextKeyMemberID).(string)
	return memberID, ok
}

// GetMemberEmailFromContext extracts member email from context
func GetMemberEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ContextKeyMemberEmail).(string)
	return email, ok
}

// GetClaimsFromContext extracts JWT claims from context
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*auth.Claims)
	return claims, ok
}
