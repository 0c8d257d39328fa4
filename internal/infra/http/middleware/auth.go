package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/session"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the typed per-request identity placed on the context by the
// access gate.
type Session struct {
	Token   string
	Email   string
	IsAdmin bool
}

// SessionFromContext returns the session the gate attached, if any.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}

// AccessGate protects every marketplace route. The whitelist lookup is
// repeated on every request: revoking an email takes effect on the victim's
// very next call, at which point their session is deleted too.
type AccessGate struct {
	Sessions   usecase.SessionStore
	Users      entity.AuthorizedUserRepositoryInterface
	AdminEmail string
	Log        zerolog.Logger
}

func NewAccessGate(sessions usecase.SessionStore, users entity.AuthorizedUserRepositoryInterface, adminEmail string, log zerolog.Logger) *AccessGate {
	return &AccessGate{
		Sessions:   sessions,
		Users:      users,
		AdminEmail: adminEmail,
		Log:        log.With().Str("component", "access_gate").Logger(),
	}
}

// Protect rejects the request unless it carries a live session whose email
// is still on the whitelist.
func (g *AccessGate) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			RecordAuthorizationDenied()
			writeAuthError(w, http.StatusUnauthorized, "missing session")
			return
		}

		email, err := g.Sessions.Get(r.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				RecordAuthorizationDenied()
				writeAuthError(w, http.StatusUnauthorized, "session expired or access revoked")
				return
			}
			// A broken session store is not the same as "not signed in".
			g.Log.Error().Err(err).Msg("session store unavailable")
			writeAuthError(w, http.StatusInternalServerError, "session store unavailable")
			return
		}

		if _, err := g.Users.FindByEmail(r.Context(), email); err != nil {
			if errors.Is(err, entity.ErrUserNotFound) {
				// Kicked off the whitelist mid-session: tear the session down.
				if delErr := g.Sessions.Delete(r.Context(), token); delErr != nil {
					g.Log.Warn().Err(delErr).Msg("failed to delete revoked session")
				}
				RecordAuthorizationDenied()
				writeAuthError(w, http.StatusUnauthorized, "session expired or access revoked")
				return
			}
			g.Log.Error().Err(err).Msg("whitelist lookup failed")
			writeAuthError(w, http.StatusInternalServerError, "authorization check failed")
			return
		}

		sess := &Session{
			Token:   token,
			Email:   email,
			IsAdmin: email == g.AdminEmail,
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
	})
}

// RequireAdmin stacks on Protect: only the configured admin identity may
// pass.
func (g *AccessGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		if !ok || !sess.IsAdmin {
			RecordAuthorizationDenied()
			writeAuthError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
