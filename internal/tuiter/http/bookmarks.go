package http

import (
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// BookmarksHandler exposes bookmark edges between users and tuits.
type BookmarksHandler struct {
	BookmarkService *service.BookmarkService
}

func (h *BookmarksHandler) HandleBookmark(w http.ResponseWriter, r *http.Request) {
	bookmark, err := h.BookmarkService.Bookmark(r.Context(), r.PathValue("uid"), r.PathValue("tid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookmark)
}

func (h *BookmarksHandler) HandleUnbookmark(w http.ResponseWriter, r *http.Request) {
	if err := h.BookmarkService.Unbookmark(r.Context(), r.PathValue("uid"), r.PathValue("tid")); err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteStatus(w, http.StatusOK)
}

func (h *BookmarksHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	tuits, err := h.BookmarkService.ListTuitsBookmarkedByUser(r.Context(), r.PathValue("uid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tuits)
}

func (h *BookmarksHandler) HandleListByTuit(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.BookmarkService.ListUsersWhoBookmarkedTuit(r.Context(), r.PathValue("tid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, profiles)
}

func (h *BookmarksHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.BookmarkService.ListBookmarks(r.Context())
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bookmarks)
}
