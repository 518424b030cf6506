package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// UsersHandler exposes user CRUD on profile projections.
type UsersHandler struct {
	UserService *service.UserService
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.UserService.ListProfiles(r.Context())
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profiles)
}

func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.UserService.GetProfileByID(r.Context(), r.PathValue("uid"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in service.NewUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.CreateUser(r.Context(), in)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in service.NewUser
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	profile, err := h.UserService.UpdateProfile(r.Context(), r.PathValue("uid"), in)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profile)
}

func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("uid")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteStatus(w, http.StatusOK)
}
