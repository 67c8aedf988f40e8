// Package ingest normalizes inbound webhook envelopes into stored message
// records, fetching and persisting media for image payloads.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/mediastorage"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/messagestore"
	"github.com/rs/zerolog"
)

// ErrInvalidEnvelope marks an envelope missing its required top-level
// fields; nothing is stored for such a request.
var ErrInvalidEnvelope = errors.New("envelope missing object or entry")

// mediaPlaceholderPrefix marks a record's text as a media reference rather
// than message content.
const mediaPlaceholderPrefix = "[image] "

type MediaDownloader interface {
	DownloadMedia(ctx context.Context, mediaID string) ([]byte, string, error)
}

type MediaStorage interface {
	Persist(ctx context.Context, data []byte, mimeType string) (mediastorage.Object, error)
}

// Processor flattens webhook envelopes into message records.
type Processor struct {
	store      *messagestore.Store
	downloader MediaDownloader
	storage    MediaStorage
}

func NewProcessor(store *messagestore.Store, downloader MediaDownloader, storage MediaStorage) *Processor {
	return &Processor{
		store:      store,
		downloader: downloader,
		storage:    storage,
	}
}

// Process appends one record per usable message and returns the number
// stored. Per-message media failures are logged and skipped; the envelope
// as a whole still succeeds so the provider does not redeliver.
// Only entry[0].changes[0] is inspected.
func (p *Processor) Process(ctx context.Context, envelope *Envelope) (int, error) {
	logger := zerolog.Ctx(ctx)

	if envelope == nil || envelope.Object == "" || len(envelope.Entry) == 0 {
		return 0, ErrInvalidEnvelope
	}

	entry := envelope.Entry[0]
	if len(entry.Changes) == 0 {
		return 0, nil
	}
	value := entry.Changes[0].Value

	for _, status := range value.Statuses {
		logger.Debug().
			Str("messageId", status.ID).
			Str("status", status.Status).
			Str("recipient", status.RecipientID).
			Msg("Status callback received")
	}

	stored := 0
	for _, msg := range value.Messages {
		switch {
		case msg.Text != nil && msg.Text.Body != "":
			p.store.Append(messagestore.Record{
				From:      msg.From,
				Kind:      messagestore.KindText,
				Text:      msg.Text.Body,
				Timestamp: time.Now().UTC(),
			})
			stored++
		case msg.Image != nil && msg.Image.ID != "":
			if err := p.processImage(ctx, msg); err != nil {
				logger.Error().Err(err).
					Str("from", msg.From).
					Str("mediaId", msg.Image.ID).
					Msg("Failed to process image message, skipping")
				continue
			}
			stored++
		default:
			logger.Debug().
				Str("from", msg.From).
				Str("type", msg.Type).
				Msg("Skipping message with no text body or image id")
		}
	}

	return stored, nil
}

func (p *Processor) processImage(ctx context.Context, msg Message) error {
	data, mimeType, err := p.downloader.DownloadMedia(ctx, msg.Image.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch media: %w", err)
	}

	obj, err := p.storage.Persist(ctx, data, mimeType)
	if err != nil {
		return fmt.Errorf("failed to persist media: %w", err)
	}

	p.store.Append(messagestore.Record{
		From:      msg.From,
		Kind:      messagestore.KindImage,
		Text:      mediaPlaceholderPrefix + obj.Reference,
		Timestamp: time.Now().UTC(),
		MediaID:   msg.Image.ID,
		StorageID: obj.ID,
	})
	return nil
}
