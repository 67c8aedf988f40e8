package relay

import (
	"fmt"
	"io"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/Ujjwal-John/MetaWhatsapp/internal/services/ingest"
	"github.com/gofiber/fiber/v2"
)

// UploadController accepts manual test uploads through the active storage
// strategy.
type UploadController struct {
	storage ingest.MediaStorage
}

func NewUploadController(storage ingest.MediaStorage) *UploadController {
	return &UploadController{storage: storage}
}

// Upload godoc
// @Summary      Upload a file
// @Description  Persists a manually uploaded file through the active storage strategy. Intended for testing the storage configuration.
// @Tags         Media
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to persist"
// @Success      200   {object}  UploadResponse
// @Failure      400   "Missing file field"
// @Failure      500   "Persistence failure"
// @Router       /upload [post]
func (u *UploadController) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Missing file field",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close() // nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	obj, err := u.storage.Persist(c.UserContext(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		return fmt.Errorf("failed to persist uploaded file: %w", err)
	}

	return c.JSON(UploadResponse{Success: true, Filename: obj.ID, Path: obj.Reference})
}
