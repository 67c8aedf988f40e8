package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	GraphAPIBaseURL string `env:"GRAPH_API_BASE_URL"`
	WhatsAppToken   string `env:"WHATSAPP_TOKEN"`
	PhoneNumberID   string `env:"PHONE_NUMBER_ID"`
	VerifyToken     string `env:"VERIFY_TOKEN"`

	// Some graph API versions require the bearer token on the binary
	// download hop, others reject it.
	AuthenticateMediaDownload bool          `env:"AUTHENTICATE_MEDIA_DOWNLOAD"`
	MediaRequestTimeout       time.Duration `env:"MEDIA_REQUEST_TIMEOUT"`

	StorageDriver string `env:"STORAGE_DRIVER"`
	UploadDir     string `env:"UPLOAD_DIR"`

	CloudinaryCloudName string `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `env:"CLOUDINARY_FOLDER"`
}
