package session

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const contextKey = "session"

const flashKey = "_flashes"

// Session is an in-request handle on the visitor's session data. Mutations
// are flushed to the store by the middleware once the handler returns.
type Session struct {
	id      string
	data    map[string]any
	changed bool
}

// Flash is a one-shot message surfaced to the visitor on their next page
// load and removed once consumed.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Middleware attaches a Session to every request. A missing or unknown
// cookie gets a fresh id; the cookie is written up front so handlers can
// stream responses freely.
func Middleware(store Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := ctx.Cookie(CookieName)
		if err != nil || id == "" {
			id, err = newID()
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to start session"})
				return
			}
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(CookieName, id, int(TTL.Seconds()), "/", "", false, true)
		}

		data, err := store.Get(ctx.Request.Context(), id)
		if err != nil {
			log.Println("Session load error:", err)
			data = map[string]any{}
		}

		sess := &Session{id: id, data: data}
		ctx.Set(contextKey, sess)

		ctx.Next()

		if sess.changed {
			if err := store.Set(ctx.Request.Context(), sess.id, sess.data); err != nil {
				log.Println("Session save error:", err)
			}
		}
	}
}

// FromContext returns the request's session. The middleware guarantees it
// exists on every route it wraps.
func FromContext(ctx *gin.Context) *Session {
	value, _ := ctx.Get(contextKey)
	sess, _ := value.(*Session)
	return sess
}

func (s *Session) Get(key string) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetUint reads a numeric value, tolerating the float64 form JSON
// deserialization produces.
func (s *Session) GetUint(key string) (uint, bool) {
	v, ok := s.data[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return uint(n), true
	case int:
		return uint(n), true
	case uint:
		return n, true
	}
	return 0, false
}

func (s *Session) Set(key string, value any) {
	s.data[key] = value
	s.changed = true
}

func (s *Session) Delete(key string) {
	if _, ok := s.data[key]; ok {
		delete(s.data, key)
		s.changed = true
	}
}

// Clear wipes all session data, cart and identity included.
func (s *Session) Clear() {
	s.data = map[string]any{}
	s.changed = true
}

// AddFlash queues a one-shot message for the next page load.
func (s *Session) AddFlash(level, message string) {
	flashes, _ := s.data[flashKey].([]any)
	s.data[flashKey] = append(flashes, map[string]any{"level": level, "message": message})
	s.changed = true
}

// ConsumeFlashes returns queued messages and removes them.
func (s *Session) ConsumeFlashes() []Flash {
	raw, ok := s.data[flashKey].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		level, _ := m["level"].(string)
		message, _ := m["message"].(string)
		flashes = append(flashes, Flash{Level: level, Message: message})
	}
	delete(s.data, flashKey)
	s.changed = true
	return flashes
}
