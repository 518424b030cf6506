package http

import (
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// FollowsHandler exposes the follow graph.
type FollowsHandler struct {
	FollowService *service.FollowService
}

func (h *FollowsHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	follow, err := h.FollowService.Follow(r.Context(), r.PathValue("uid"), r.PathValue("uidf"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, follow)
}

func (h *FollowsHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	if err := h.FollowService.Unfollow(r.Context(), r.PathValue("uid"), r.PathValue("uidf")); err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteStatus(w, http.StatusOK)
}

func (h *FollowsHandler) HandleListFollowing(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.FollowService.ListFollowing(r.Context(), r.PathValue("uid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profiles)
}

func (h *FollowsHandler) HandleListFollowers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.FollowService.ListFollowers(r.Context(), r.PathValue("uid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profiles)
}
