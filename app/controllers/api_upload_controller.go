package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/internal/pkg/assetstore"
	"github.com/juanrengga/seido-web/internal/pkg/upload"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// UploadController handles image uploads into the asset store
type UploadController struct {
	assets *assetstore.Client
}

var uploadController *UploadController

// InitializeUploadController wires the controller
func InitializeUploadController(assets *assetstore.Client) {
	uploadController = &UploadController{assets: assets}
}

// GetUploadController returns the initialized controller
func GetUploadController() *UploadController {
	return uploadController
}

// bucketForTarget maps the upload target to its bucket. Unknown targets
// fall back to the blog bucket.
func bucketForTarget(target string) string {
	if target == "portfolio" {
		return assetstore.BucketPortfolios
	}
	return assetstore.BucketBlogImages
}

// HandleUpload validates and stores one image, returning its public URL.
// Auth is checked here in the handler, independent of anything the client
// UI enforces, because a mutating network call cannot trust the client.
// Validation runs before any byte reaches the store.
func (uc *UploadController) HandleUpload(c *fiber.Ctx) error {
	user := usercontext.GetUserContext(c)
	if !user.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	if uc.assets == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "asset store not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no file provided"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cannot read file"})
	}
	defer file.Close()

	// Sniff the first bytes for type detection
	head := make([]byte, 512)
	n, _ := file.Read(head)

	contentType, err := upload.ValidateImage(fileHeader.Filename, fileHeader.Size, head[:n])
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if _, err := file.Seek(0, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "cannot rewind file"})
	}

	bucket := bucketForTarget(c.FormValue("target"))
	key := assetstore.NewObjectKey(fileHeader.Filename)

	url, err := uc.assets.Upload(c.UserContext(), bucket, key, file, contentType, fileHeader.Size)
	if err != nil {
		fiberlog.Errorf("upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("upload failed: %v", err),
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
