package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/ingest"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const handshakeSubscribeMode = "subscribe"

type IngestProcessor interface {
	Process(ctx context.Context, envelope *ingest.Envelope) (int, error)
}

// WebhookController handles the provider handshake and inbound message
// deliveries.
type WebhookController struct {
	processor   IngestProcessor
	verifyToken string
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(processor IngestProcessor, verifyToken string) *WebhookController {
	return &WebhookController{
		processor:   processor,
		verifyToken: verifyToken,
	}
}

// VerifyWebhook godoc
// @Summary      Verify webhook subscription
// @Description  One-time handshake used by the provider to confirm webhook ownership. Echoes the challenge when the mode is "subscribe" and the token matches.
// @Tags         Webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "Handshake mode"
// @Param        hub.verify_token  query  string  true  "Shared verification token"
// @Param        hub.challenge     query  string  true  "Challenge to echo back"
// @Success      200  {string}  string  "Challenge value"
// @Failure      400  "Missing mode or token"
// @Failure      403  "Token mismatch"
// @Router       /webhook [get]
func (w *WebhookController) VerifyWebhook(c *fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		return richerrors.Error{
			ExternalMsg: "Missing hub.mode or hub.verify_token",
			Err:         errors.New("incomplete handshake request"),
			Code:        fiber.StatusBadRequest,
		}
	}

	if mode != handshakeSubscribeMode || token != w.verifyToken {
		return c.Status(fiber.StatusForbidden).Send(nil)
	}

	zerolog.Ctx(c.UserContext()).Info().Msg("Webhook verified")
	return c.Status(fiber.StatusOK).SendString(challenge)
}

// HandleIncoming godoc
// @Summary      Receive messages
// @Description  Accepts an inbound notification envelope, normalizes its messages and appends them to the store. Per-message media failures are dropped without failing the delivery.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Success      200  {object}  StatusResponse  "Delivery accepted"
// @Failure      404  {object}  ErrorResponse   "Invalid payload"
// @Failure      500  "Internal server error"
// @Router       /webhook [post]
func (w *WebhookController) HandleIncoming(c *fiber.Ctx) error {
	var envelope ingest.Envelope
	if err := c.BodyParser(&envelope); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Invalid payload"})
	}

	stored, err := w.processor.Process(c.UserContext(), &envelope)
	if err != nil {
		if errors.Is(err, ingest.ErrInvalidEnvelope) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "Invalid payload"})
		}
		return fmt.Errorf("failed to process webhook envelope: %w", err)
	}

	zerolog.Ctx(c.UserContext()).Info().Int("stored", stored).Msg("Webhook delivery processed")
	return c.Status(fiber.StatusOK).JSON(StatusResponse{Status: "received"})
}
