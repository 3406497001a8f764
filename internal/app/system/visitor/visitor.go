// Package visitor assigns every browser an anonymous session identity.
//
// There are no accounts and no sign-in anywhere in the portfolio. The only
// thing we need to tell visitors apart for is scoping their own ephemeral
// evidence uploads, so the middleware hands each browser a random id in a
// session cookie and injects it into the request context.
package visitor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const idKey = "visitor_id"

type ctxKey string

const currentVisitorKey ctxKey = "currentVisitor"

// Manager issues and reads visitor session cookies.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager around a cookie store.
//
// hashKey signs the session cookie; when empty, a random key is generated,
// which invalidates existing cookies on every restart. That only costs
// visitors their in-flight uploads, so it is acceptable outside production.
func NewManager(hashKey, cookieName, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	if cookieName == "" {
		return nil, fmt.Errorf("visitor: cookie name is required")
	}
	key := []byte(hashKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("visitor: could not generate a session key")
		}
		if logger != nil {
			logger.Warn("no session key configured, using a random key; visitor sessions will not survive restarts")
		}
	} else if len(key) < 32 {
		return nil, fmt.Errorf("visitor: session key must be at least 32 bytes, got %d", len(key))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: cookieName, log: logger}, nil
}

// ID returns the visitor id previously attached to the request context.
func ID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(currentVisitorKey).(string)
	return id, ok && id != ""
}

// WithTestVisitor returns r with the given visitor id attached to its
// context, bypassing the cookie round trip. Test helper.
func WithTestVisitor(r *http.Request, id string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentVisitorKey, id))
}

// Attach is middleware that ensures the request carries a visitor id,
// minting one and setting the cookie on first contact.
func (m *Manager) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil && m.log != nil {
			// A bad or stale cookie just means a fresh session.
			m.log.Debug("visitor session reset", zap.Error(err))
		}

		id, _ := sess.Values[idKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[idKey] = id
			if err := sess.Save(r, w); err != nil && m.log != nil {
				m.log.Warn("could not save visitor session", zap.Error(err))
			}
		}

		ctx := context.WithValue(r.Context(), currentVisitorKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
