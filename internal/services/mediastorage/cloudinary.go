package mediastorage

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/Ujjwal-John/MetaWhatsapp/internal/config"
)

const (
	cloudinaryUploadBase = "https://api.cloudinary.com/v1_1"

	defaultUploadTimeout = 30 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// Cloudinary uploads media bytes to a Cloudinary folder using the signed
// upload API and returns the service-provided public URL.
type Cloudinary struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	uploadURL string
	client    *http.Client
}

func NewCloudinary(settings *config.Settings, client *http.Client) *Cloudinary {
	if client == nil {
		client = &http.Client{Timeout: defaultUploadTimeout}
	}
	return &Cloudinary{
		cloudName: settings.CloudinaryCloudName,
		apiKey:    settings.CloudinaryAPIKey,
		apiSecret: settings.CloudinaryAPISecret,
		folder:    settings.CloudinaryFolder,
		uploadURL: cloudinaryUploadBase,
		client:    client,
	}
}

type cloudinaryUploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

func (c *Cloudinary) Persist(ctx context.Context, data []byte, mimeType string) (Object, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "upload"+extensionForMime(mimeType))
	if err != nil {
		return Object{}, fmt.Errorf("failed to create multipart file field: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return Object{}, fmt.Errorf("failed to write multipart payload: %w", err)
	}

	fields := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": timestamp,
		"signature": c.signature(timestamp),
	}
	if c.folder != "" {
		fields["folder"] = c.folder
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return Object{}, fmt.Errorf("failed to write multipart field %q: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return Object{}, fmt.Errorf("failed to finalize multipart payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/auto/upload", c.uploadURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return Object{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return Object{}, fmt.Errorf("failed to POST to cloudinary: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return Object{}, fmt.Errorf("cloudinary upload returned status code %d: %s", resp.StatusCode, string(respBody))
	}

	var uploaded cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		return Object{}, fmt.Errorf("failed to decode cloudinary response: %w", err)
	}
	if uploaded.SecureURL == "" {
		return Object{}, fmt.Errorf("cloudinary response missing secure_url")
	}

	return Object{Reference: uploaded.SecureURL, ID: uploaded.PublicID}, nil
}

// signature is the Cloudinary signed-upload signature: the sorted
// non-credential params joined with '&', then the API secret, SHA-1 hashed.
func (c *Cloudinary) signature(timestamp string) string {
	params := "timestamp=" + timestamp
	if c.folder != "" {
		params = "folder=" + c.folder + "&" + params
	}
	sum := sha1.Sum([]byte(params + c.apiSecret))
	return hex.EncodeToString(sum[:])
}
