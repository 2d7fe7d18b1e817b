package handler

import (
	"github.com/labstack/echo/v4"

	"cambiazo/internal/usecase"
	"cambiazo/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type sendMessageRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Text        string `json:"text" validate:"required"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	senderID := c.Get("uid").(string)

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), senderID, req.RecipientID, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

// GetConversation returns the most recent window of the caller's
// conversation with the peer, oldest first.
func (h *ChatHandler) GetConversation(c echo.Context) error {
	userID := c.Get("uid").(string)
	peerID := c.Param("peerId")

	messages, err := h.chatUseCase.GetConversation(c.Request().Context(), userID, peerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}
