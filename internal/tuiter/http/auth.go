package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// AuthHandler exposes the signup/login/profile/logout lifecycle. Every auth
// failure maps to a bare 403 regardless of its kind; the distinction lives in
// the service error taxonomy, not on the wire.
type AuthHandler struct {
	AuthService *service.AuthService
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var in service.NewUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	profile, token, err := h.AuthService.Signup(r.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token, h.AuthService.SessionTTL)
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	profile, token, err := h.AuthService.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	setSessionCookie(w, token, h.AuthService.SessionTTL)
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.AuthService.Profile(r.Context(), readSessionToken(r))
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), readSessionToken(r)); err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	clearSessionCookie(w)
	httpx.WriteStatus(w, http.StatusOK)
}
