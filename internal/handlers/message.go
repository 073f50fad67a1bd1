package handlers

import (
	"errors"
	"net/http"

	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"
	"github.com/rezsam09/remuncandygramdatabase/internal/dto"
	"github.com/rezsam09/remuncandygramdatabase/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles sending candygrams, inbox listing, and the
// operator dump.
type MessageHandler struct {
	svc *service.MailboxService
}

// NewMessageHandler returns a new MessageHandler.
func NewMessageHandler(svc *service.MailboxService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// Send godoc
// @Summary      Send a candygram
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendRequest  true  "Candygram"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /send [post]
func (h *MessageHandler) Send(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required.")
		return
	}
	_, err := h.svc.Send(c.Request.Context(), req.From, req.To, req.Alias, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFieldsRequired):
			fail(c, http.StatusBadRequest, "All fields are required.")
		case errors.Is(err, service.ErrSenderNotFound):
			fail(c, http.StatusNotFound, "Sender does not exist.")
		case errors.Is(err, service.ErrRecipientNotFound):
			fail(c, http.StatusNotFound, "Recipient does not exist.")
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Candygram sent!"})
}

// Inbox godoc
// @Summary      List a user's inbox, newest first
// @Tags         messages
// @Produce      json
// @Param        username  path  string  true  "Recipient username"
// @Success      200  {object}  dto.InboxResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /inbox/{username} [get]
func (h *MessageHandler) Inbox(c *gin.Context) {
	list, err := h.svc.Inbox(c.Request.Context(), c.Param("username"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.InboxResponse{Success: true, Messages: toInboxMessages(list)})
}

// AllMessages godoc
// @Summary      Dump every message (operator escape hatch)
// @Tags         admin
// @Produce      json
// @Param        key  query  string  true  "Shared admin key"
// @Success      200  {object}  dto.AdminMessagesResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/messages [get]
func (h *MessageHandler) AllMessages(c *gin.Context) {
	list, err := h.svc.AllMessages(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminMessagesResponse{Success: true, Messages: toAdminMessages(list)})
}

func toInboxMessages(list []dom.Message) []dto.InboxMessage {
	out := make([]dto.InboxMessage, len(list))
	for i, m := range list {
		out[i] = dto.InboxMessage{Alias: m.Alias, Content: m.Content, Timestamp: m.Timestamp}
	}
	return out
}

func toAdminMessages(list []dom.Message) []dto.AdminMessage {
	out := make([]dto.AdminMessage, len(list))
	for i, m := range list {
		out[i] = dto.AdminMessage{
			ID:        m.ID,
			Sender:    m.Sender,
			Recipient: m.Recipient,
			Alias:     m.Alias,
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
	}
	return out
}
