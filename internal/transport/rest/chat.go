package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/techconnect-india/backend/internal/domain"
	"github.com/techconnect-india/backend/internal/service/chat"
)

// chatService defines the minimal interface needed by ChatHandler.
type chatService interface {
	Send(ctx context.Context, input chat.SendInput) (*domain.Message, error)
	GetConversation(ctx context.Context, peerEmail string) ([]domain.Message, error)
}

// ChatHandler serves messaging endpoints.
type ChatHandler struct {
	svc chatService
	log *slog.Logger
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(svc chatService, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{svc: svc, log: logger.With("handler", "chat")}
}

type sendRequest struct {
	Body string `json:"body"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type conversationResponse struct {
	Messages []messageResponse `json:"messages"`
}

// Send handles POST /v1/chat/{email}.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.svc.Send(r.Context(), chat.SendInput{
		ReceiverEmail: r.PathValue("email"),
		Body:          req.Body,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMessageResponse(msg))
}

// Conversation handles GET /v1/chat/{email}.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	messages, err := h.svc.GetConversation(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := conversationResponse{Messages: make([]messageResponse, 0, len(messages))}
	for i := range messages {
		out.Messages = append(out.Messages, toMessageResponse(&messages[i]))
	}

	writeJSON(w, http.StatusOK, out)
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID.String(),
		Sender:    m.Sender,
		Receiver:  m.Receiver,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
