package handlers

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	config "github.com/mwangiben/skill_share/configs"
)

const maxImageSize = 5 << 20 // 5MB

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

func storageRoot() string {
	dir := config.Config("STORAGE_DIR")
	if dir == "" {
		dir = "storage/public"
	}
	return dir
}

// ServeStorageFile serves uploaded files from the public storage root.
// Anything resolving outside the root is refused.
func ServeStorageFile(c *fiber.Ctx) error {
	rel, err := filepath.Rel("/", "/"+c.Params("*"))
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Forbidden"})
	}

	root, err := filepath.Abs(storageRoot())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Storage unavailable"})
	}

	full := filepath.Join(root, rel)
	if full != root && !strings.HasPrefix(full, root+string(filepath.Separator)) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Forbidden"})
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "File not found"})
	}

	return c.SendFile(full)
}

// SaveUpload stores an uploaded image under the storage root and returns its
// public /storage/... URL.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > maxImageSize {
		return "", errors.New("Image must not exceed 5MB")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", errors.New("Image must be JPEG, PNG, JPG, or GIF")
	}

	name := uuid.New().String() + ext
	dir := filepath.Join(storageRoot(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/storage/" + folder + "/" + name, nil
}

// DeleteStoredFile removes a previously stored file given its public URL.
// Missing files are ignored.
func DeleteStoredFile(publicURL string) {
	if !strings.HasPrefix(publicURL, "/storage/") {
		return
	}
	rel := strings.TrimPrefix(publicURL, "/storage/")
	os.Remove(filepath.Join(storageRoot(), filepath.FromSlash(rel)))
}
