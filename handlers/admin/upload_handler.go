package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"groupeatlas.com/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUploadSize est la taille maximale acceptée pour une image (5 Mo).
const maxUploadSize = 5 << 20

// allowedImageTypes associe les types MIME acceptés à leur extension.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadHandler enregistre les images du back-office sous un nom aléatoire
// dans le répertoire public. Un envoi réussi dont la sauvegarde de métadonnées
// échoue ensuite laisse le fichier orphelin: aucune compensation n'existe.
type UploadHandler struct {
	dir string
}

// NewUploadHandler crée un UploadHandler sur le répertoire UPLOAD_DIR
// (./public/uploads par défaut).
func NewUploadHandler() *UploadHandler {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./public/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		configslog.Log.Error("Upload: création du répertoire impossible", zap.String("dir", dir), zap.Error(err))
	}
	return &UploadHandler{dir: dir}
}

// Upload reçoit un fichier multipart "file" (jpeg/png/gif/webp, 5 Mo max) et
// retourne son URL publique et son nom généré.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Aucun fichier reçu"})
	}

	if fileHeader.Size > maxUploadSize {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Fichier trop volumineux (5 Mo maximum)"})
	}

	ext, ok := allowedImageTypes[fileHeader.Header.Get("Content-Type")]
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": "Format non supporté (jpeg, png, gif ou webp attendu)"})
	}

	filename := uuid.NewString() + ext
	if err := c.SaveFile(fileHeader, filepath.Join(h.dir, filename)); err != nil {
		configslog.Log.Error("Upload: écriture du fichier impossible", zap.String("filename", filename), zap.Error(err))
		return ServerError(c)
	}

	return c.JSON(fiber.Map{
		"url":      "/uploads/" + filename,
		"filename": filename,
	})
}
