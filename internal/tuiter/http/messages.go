package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuiterhq/tuiter/internal/tuiter/service"
	"github.com/tuiterhq/tuiter/internal/tuiter/store"
	"github.com/tuiterhq/tuiter/pkg/httpx"
)

// MessagesHandler exposes direct messages.
type MessagesHandler struct {
	MessageService *service.MessageService
}

func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteStatus(w, http.StatusBadRequest)
		return
	}

	message, err := h.MessageService.SendMessage(r.Context(), r.PathValue("uid"), r.PathValue("uidf"), in.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			httpx.WriteStatus(w, http.StatusBadRequest)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, message)
}

func (h *MessagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.MessageService.DeleteMessage(r.Context(), r.PathValue("mid")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteStatus(w, http.StatusNotFound)
			return
		}
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteStatus(w, http.StatusOK)
}

func (h *MessagesHandler) HandleListSent(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageService.ListMessagesSent(r.Context(), r.PathValue("uid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messages)
}

func (h *MessagesHandler) HandleListReceived(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageService.ListMessagesReceived(r.Context(), r.PathValue("uid"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messages)
}

func (h *MessagesHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageService.ListMessages(r.Context())
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messages)
}

func (h *MessagesHandler) HandleListSentTo(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageService.ListMessagesSentTo(r.Context(), r.PathValue("uid"), r.PathValue("uidf"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messages)
}

func (h *MessagesHandler) HandleListReceivedFrom(w http.ResponseWriter, r *http.Request) {
	messages, err := h.MessageService.ListMessagesReceivedFrom(r.Context(), r.PathValue("uid"), r.PathValue("uidf"))
	if err != nil {
		httpx.WriteStatus(w, http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, messages)
}
