package relay

import (
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/messagestore"
	"github.com/gofiber/fiber/v2"
)

// MessageController exposes the in-memory store for reads.
type MessageController struct {
	store *messagestore.Store
}

func NewMessageController(store *messagestore.Store) *MessageController {
	return &MessageController{store: store}
}

// ListMessages godoc
// @Summary      List received messages
// @Description  Returns every normalized message received during the process lifetime, in arrival order.
// @Tags         Messages
// @Produce      json
// @Success      200  {object}  MessagesResponse
// @Router       /api/messages [get]
func (m *MessageController) ListMessages(c *fiber.Ctx) error {
	return c.JSON(MessagesResponse{Messages: m.store.Snapshot()})
}
