package graphapi

// MediaMetadata is the graph API response for a media identifier lookup.
// The URL is short-lived and must be exchanged for bytes promptly.
type MediaMetadata struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	FileSize int64  `json:"file_size"`
}

// SendResponse is the graph API response to an outbound message send.
type SendResponse struct {
	MessagingProduct string        `json:"messaging_product"`
	Contacts         []SendContact `json:"contacts"`
	Messages         []SentMessage `json:"messages"`
}

type SendContact struct {
	Input string `json:"input"`
	WaID  string `json:"wa_id"`
}

type SentMessage struct {
	ID string `json:"id"`
}
