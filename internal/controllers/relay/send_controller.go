package relay

import (
	"context"
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/clients/graphapi"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type MessageSender interface {
	SendText(ctx context.Context, to, body string) (*graphapi.SendResponse, error)
}

// SendController forwards outbound messages to the provider's send API.
type SendController struct {
	sender MessageSender
}

func NewSendController(sender MessageSender) *SendController {
	return &SendController{sender: sender}
}

// SendMessage godoc
// @Summary      Send a WhatsApp message
// @Description  Forwards a text message to the provider's send API through the configured phone number.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        request  body      SendMessageRequest   true  "Recipient and message body"
// @Success      200      {object}  SendMessageResponse  "Message accepted by the provider"
// @Failure      400      "Invalid request payload"
// @Failure      502      "Provider rejected the send"
// @Router       /api/send-whatsapp [post]
func (s *SendController) SendMessage(c *fiber.Ctx) error {
	var payload SendMessageRequest
	if err := c.BodyParser(&payload); err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid request payload",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}
	if payload.To == "" || payload.Message == "" {
		return richerrors.Error{
			ExternalMsg: "Fields to and message are required",
			Err:         errors.New("missing to or message"),
			Code:        fiber.StatusBadRequest,
		}
	}

	resp, err := s.sender.SendText(c.UserContext(), payload.To, payload.Message)
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to send message",
			Err:         err,
			Code:        fiber.StatusBadGateway,
		}
	}

	var messageID string
	if len(resp.Messages) > 0 {
		messageID = resp.Messages[0].ID
	}
	zerolog.Ctx(c.UserContext()).Info().Str("to", payload.To).Str("messageId", messageID).Msg("Outbound message sent")
	return c.JSON(SendMessageResponse{Success: true, MessageID: messageID})
}
