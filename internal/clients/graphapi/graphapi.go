// Package graphapi is a client for the WhatsApp Business Cloud API: media
// metadata lookup, binary download and outbound message sends.
package graphapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Ujjwal-John/MetaWhatsapp/internal/config"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const (
	defaultGraphAPIBase = "https://graph.facebook.com/v21.0"

	defaultRequestTimeout = 30 * time.Second
	// Meta download URLs expire after roughly five minutes; cache metadata
	// a little under that so redeliveries reuse the same URL.
	mediaMetadataTTL = 4 * time.Minute
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Client for the WhatsApp graph API.
type Client struct {
	baseURL              string
	token                string
	phoneNumberID        string
	authenticateDownload bool
	metadata             *cache.Cache
	logger               zerolog.Logger
	httpClient           *http.Client
}

// New creates a new Client.
func New(settings *config.Settings, logger zerolog.Logger) (*Client, error) {
	base := settings.GraphAPIBaseURL
	if base == "" {
		base = defaultGraphAPIBase
	}
	parsedURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse graph API URL: %w", err)
	}

	timeout := settings.MediaRequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		baseURL:              parsedURL.String(),
		token:                settings.WhatsAppToken,
		phoneNumberID:        settings.PhoneNumberID,
		authenticateDownload: settings.AuthenticateMediaDownload,
		metadata:             cache.New(mediaMetadataTTL, 2*mediaMetadataTTL),
		logger:               logger,
		httpClient:           &http.Client{Timeout: timeout},
	}, nil
}

// MediaMetadata resolves a media identifier to its short-lived download URL.
func (c *Client) MediaMetadata(ctx context.Context, mediaID string) (*MediaMetadata, error) {
	if cached, found := c.metadata.Get(mediaID); found {
		c.logger.Debug().Str("mediaId", mediaID).Msg("Media metadata cache hit")
		return cached.(*MediaMetadata), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+url.PathEscape(mediaID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create media metadata request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch media metadata: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, fmt.Errorf("media metadata request returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	var meta MediaMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode media metadata: %w", err)
	}
	if meta.URL == "" {
		return nil, fmt.Errorf("media metadata for %q missing url field", mediaID)
	}

	c.metadata.Set(mediaID, &meta, 0)
	return &meta, nil
}

// DownloadMedia fetches the raw bytes for a media identifier. Returns the
// bytes and the mime type reported by the provider.
func (c *Client) DownloadMedia(ctx context.Context, mediaID string) ([]byte, string, error) {
	meta, err := c.MediaMetadata(ctx, mediaID)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, meta.URL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create media download request: %w", err)
	}
	if c.authenticateDownload {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, "", fmt.Errorf("media download returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media body: %w", err)
	}

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = resp.Header.Get("Content-Type")
	}
	return data, mimeType, nil
}

// SendText sends an outbound text message through the configured phone number.
func (c *Client) SendText(ctx context.Context, to, body string) (*SendResponse, error) {
	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text":              map[string]string{"body": body},
	}
	reqBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send payload: %w", err)
	}

	sendURL := c.baseURL + "/" + url.PathEscape(c.phoneNumberID) + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to POST message send: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, fmt.Errorf("message send returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	var sendResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return nil, fmt.Errorf("failed to decode send response: %w", err)
	}
	return &sendResp, nil
}
