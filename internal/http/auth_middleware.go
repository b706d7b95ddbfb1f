package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/endoforge/appforge/internal/repository"
)

type authContextKey string

type authInfo struct {
	UserID string
	Email  string
	Token  string
}

const contextKeyAuth authContextKey = "appforge-auth-info"

type contextSetter interface {
	SetContext(context.Context)
}

// requireAuth ensures the request carries a token with a live session
// before invoking the handler. The session store lookup is the sole
// authorization check; token signatures are not re-verified here.
func (r *Router) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		ctx, _, ok := r.ensureAuth(w, req)
		if !ok {
			return
		}
		if setter, ok := w.(contextSetter); ok {
			setter.SetContext(ctx)
		}
		next(w, req.WithContext(ctx))
	}
}

// ensureAuth validates the Authorization header and enriches the context.
// Missing, malformed, expired and revoked tokens all produce the same 401;
// store failures surface as 503 instead so an outage cannot masquerade as
// a revoked session.
func (r *Router) ensureAuth(w http.ResponseWriter, req *http.Request) (context.Context, authInfo, bool) {
	token, err := bearerToken(req.Header.Get("Authorization"))
	if err != nil {
		r.logger.Warn("authorization header invalid", "error", err, "path", req.URL.Path)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return req.Context(), authInfo{}, false
	}
	session, err := r.auth.Resolve(req.Context(), token)
	if err != nil {
		// Only a definitive "no such session" is an authentication
		// failure; a store outage must not read as a revoked session.
		if errors.Is(err, repository.ErrNotFound) {
			r.logger.Warn("session lookup failed", "error", err, "path", req.URL.Path)
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return req.Context(), authInfo{}, false
		}
		r.logger.Error("session store unavailable", "error", err, "path", req.URL.Path)
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
		return req.Context(), authInfo{}, false
	}
	info := authInfo{UserID: session.UserID, Email: session.Email, Token: token}
	ctx := context.WithValue(req.Context(), contextKeyAuth, info)
	return ctx, info, true
}

// authInfoFromContext extracts auth metadata from context.
func authInfoFromContext(ctx context.Context) (authInfo, bool) {
	value := ctx.Value(contextKeyAuth)
	if value == nil {
		return authInfo{}, false
	}
	info, ok := value.(authInfo)
	return info, ok
}

func bearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}
