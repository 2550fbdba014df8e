package session

import (
	"crypto/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-supra/internal/pkg/cache"
)

const (
	CookieName = "supra_session"

	idKey      = "sid"
	contextKey = "sessionID"
)

// Store keeps one server-side value per browser. The browser only holds a
// signed cookie carrying a uuid; idle values expire after the TTL.
type Store[T any] struct {
	values *cache.UnifiedCache[T]
	create func() T
	cookie cookie.Store
	logger *zap.Logger
}

// NewStore builds a store. An empty secret gets a random per-process key,
// which is enough because the values live in this process only.
func NewStore[T any](ttl time.Duration, secret []byte, create func() T, logger *zap.Logger) *Store[T] {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(err)
		}
	}

	cs := cookie.NewStore(secret)
	cs.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return &Store[T]{
		values: cache.NewUnifiedCache[T](ttl, "sessions", logger),
		create: create,
		cookie: cs,
		logger: logger,
	}
}

// Middleware loads the signed session cookie and makes sure it carries a
// valid id, issuing a new one when missing or malformed.
func (s *Store[T]) Middleware() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		sessions.Sessions(CookieName, s.cookie),
		func(c *gin.Context) {
			sess := sessions.Default(c)
			id, _ := sess.Get(idKey).(string)
			if uuid.Validate(id) != nil {
				id = uuid.NewString()
				s.logger.Debug("Issuing new session", zap.String("session_id", id))
			}
			// Saving on every request slides the cookie expiry.
			sess.Set(idKey, id)
			if err := sess.Save(); err != nil {
				s.logger.Warn("Failed to save session cookie", zap.Error(err))
			}
			c.Set(contextKey, id)
			c.Next()
		},
	}
}

// ID returns the session id attached by Middleware, or "" without it.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}

// Get returns the value for the request's session, creating it on first use.
// Every access pushes the expiry forward.
func (s *Store[T]) Get(c *gin.Context) T {
	id := ID(c)
	if id == "" {
		return s.create()
	}
	v := s.values.GetOrCreate(id, s.create)
	s.values.Set(id, v)
	return v
}

func (s *Store[T]) Len() int {
	return s.values.Size()
}
