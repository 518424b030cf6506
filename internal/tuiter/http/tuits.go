package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// TuitsHandler exposes tuit CRUD. The author path parameter accepts the
// literal "session", which resolves to the caller's session profile.
type TuitsHandler struct {
	TuitService *service.TuitService
	AuthService *service.AuthService
}

// resolveUserID maps the "session" placeholder to the authenticated user's
// ID. Any other value passes through untouched.
func (h *TuitsHandler) resolveUserID(r *http.Request, uid string) (string, error) {
	if uid != "session" {
		return uid, nil
	}

	profile, err := h.AuthService.Profile(r.Context(), readSessionToken(r))
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

type tuitRequest struct {
	Tuit string `json:"tuit"`
}

func (h *TuitsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, r.URL.Query().Get("uid"))
}

func (h *TuitsHandler) HandleCreateByUser(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, r.PathValue("uid"))
}

func (h *TuitsHandler) create(w http.ResponseWriter, r *http.Request, uid string) {
	authorID, err := h.resolveUserID(r, uid)
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	var in tuitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	tuit, err := h.TuitService.CreateTuit(r.Context(), authorID, in.Tuit)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTuit) {
			httpx.WriteStatus(w, http.StatusBadRequest)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuit)
}

func (h *TuitsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tuits, err := h.TuitService.ListTuits(r.Context())
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuits)
}

func (h *TuitsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tuit, err := h.TuitService.GetTuitByID(r.Context(), r.PathValue("tid"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuit)
}

func (h *TuitsHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUserID(r, r.PathValue("uid"))
	if err != nil {
		if errors.Is(err, service.ErrNoSession) {
			httpx.WriteStatus(w, http.StatusForbidden)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}

	tuits, err := h.TuitService.ListTuitsByUser(r.Context(), userID)
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuits)
}

func (h *TuitsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var in tuitRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	tuit, err := h.TuitService.UpdateTuit(r.Context(), r.PathValue("tid"), in.Tuit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyTuit):
			httpx.WriteStatus(w, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteStatus(w, http.StatusNotFound)
		default:
			httpx.WriteStatus(w, http.StatusInternalServerError)
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuit)
}

func (h *TuitsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.TuitService.DeleteTuit(r.Context(), r.PathValue("tid")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteStatus(w, http.StatusOK)
}
