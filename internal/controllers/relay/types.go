package relay

import "github.com/Ujjwal-John/MetaWhatsapp/internal/services/messagestore"

// StatusResponse acknowledges a processed webhook delivery.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body returned for rejected webhook payloads.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessagesResponse wraps the message store snapshot.
type MessagesResponse struct {
	Messages []messagestore.Record `json:"messages"`
}

// SendMessageRequest is the body for the outbound send endpoint.
type SendMessageRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type SendMessageResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// UploadResponse is the body for the manual test-upload endpoint.
type UploadResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}
