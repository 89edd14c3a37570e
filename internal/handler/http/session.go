package handler

import (
	"encoding/json"
	"net/http"

	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/autosave"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/models"
	"github.com/nsdeveloper33/Al-Qadir-sub000/internal/session"
	"go.uber.org/zap"
)

const sessionCookieName = "storefront_session"

// SessionStore is the live-session registry consumed by the handlers
type SessionStore interface {
	Get(id string) (*session.Session, bool)
	GetOrStart(id string) *session.Session
	End(id string)
}

// currentSession returns the caller's session, nil when the request
// carries no known session cookie
func currentSession(store SessionStore, r *http.Request) *session.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	s, ok := store.Get(cookie.Value)
	if !ok {
		return nil
	}
	return s
}

// SessionHandler represents HTTP handler for session-related requests
type SessionHandler struct {
	store  SessionStore
	logger *zap.Logger
}

// NewSessionHandler creates new SessionHandler instance
func NewSessionHandler(store SessionStore, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{store: store, logger: logger}
}

// GetSession returns the current session state, starting a session when
// the request carries none
// 200 — успешная обработка запроса.
func (sh *SessionHandler) GetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			id = cookie.Value
		}

		sess := sh.store.GetOrStart(id)
		if sess.ID != id {
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(sess.State()); err != nil {
			return
		}
	}
}

// UpdateForm replaces the session's form snapshot with the submitted
// field values
// 200 — успешная обработка запроса;
// 400 — неверный формат запроса;
// 401 — сессия не найдена.
func (sh *SessionHandler) UpdateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(sh.store, r)
		if sess == nil {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		form := models.Draft{}
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		sess.SetForm(form)

		w.WriteHeader(http.StatusOK)
	}
}

type lifecycleEventReq struct {
	Event string `json:"event"`
}

// LifecycleEvent maps a page-lifecycle event to an autosave flush.
// The teardown event also ends the session.
// 200 — событие обработано;
// 400 — неизвестное событие;
// 401 — сессия не найдена.
func (sh *SessionHandler) LifecycleEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := currentSession(sh.store, r)
		if sess == nil {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		req := lifecycleEventReq{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		switch req.Event {
		case "hidden":
			sess.Scheduler().Flush(r.Context(), autosave.TriggerHidden)
		case "unload":
			sess.Scheduler().Flush(r.Context(), autosave.TriggerUnload)
		case "teardown":
			sh.store.End(sess.ID)
		default:
			http.Error(w, "unknown event", http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
