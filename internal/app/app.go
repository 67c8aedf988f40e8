package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/clients/graphapi"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/config"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/controllers/relay"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/ingest"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/mediastorage"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/messagestore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

// CreateServers wires the graph API client, storage strategy, message store
// and ingest pipeline, then builds the Fiber app.
func CreateServers(_ context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	graphClient, err := graphapi.New(settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create graph API client: %w", err)
	}

	storage, err := mediastorage.NewFromSettings(settings, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media storage: %w", err)
	}

	store := messagestore.New()
	processor := ingest.NewProcessor(store, graphClient, storage)

	return CreateFiberApp(logger, processor, store, graphClient, storage, settings)
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger,
	processor relay.IngestProcessor,
	store *messagestore.Store,
	sender relay.MessageSender,
	storage ingest.MediaStorage,
	settings *config.Settings) (*fiber.App, error) {
	logger.Info().Msg("Starting WhatsApp Relay API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("WhatsApp relay API is running")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := relay.NewWebhookController(processor, settings.VerifyToken)
	messageController := relay.NewMessageController(store)
	sendController := relay.NewSendController(sender)
	uploadController := relay.NewUploadController(storage)
	logger.Info().Msg("Registering routes...")

	// Provider webhook
	app.Get("/webhook", webhookController.VerifyWebhook)
	app.Post("/webhook", webhookController.HandleIncoming)

	// Read and send
	app.Get("/api/messages", messageController.ListMessages)
	app.Post("/api/send-whatsapp", sendController.SendMessage)

	// Manual test upload
	app.Post("/upload", uploadController.Upload)

	return app, nil
}
