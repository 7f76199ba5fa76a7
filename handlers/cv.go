package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cvinsight/config"
	"cvinsight/parsers"
	"cvinsight/services"
	"cvinsight/utils"
)

// allowedExtensions is the upload allowlist, matching the formats the text
// extractor supports.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".rtf":  true,
	".html": true,
	".htm":  true,
}

// CVHandler serves the resume upload and parse endpoint.
type CVHandler struct {
	parser  *parsers.CVParser
	storage *services.StorageService
	cfg     config.AppConfig
	log     zerolog.Logger
}

// NewCVHandler creates the handler. storage may be nil when archival is not
// configured.
func NewCVHandler(parser *parsers.CVParser, storage *services.StorageService, cfg config.AppConfig, log zerolog.Logger) *CVHandler {
	return &CVHandler{parser: parser, storage: storage, cfg: cfg, log: log}
}

// Upload accepts a multipart resume file, runs the extraction pipeline, and
// returns the structured profile.
func (h *CVHandler) Upload(c *gin.Context) {
	start := time.Now()

	file, err := c.FormFile("cv")
	if err != nil {
		utils.BadRequestError(c, "No resume file in request", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		utils.UnsupportedMediaError(c, fmt.Sprintf("Unsupported file type %q", ext), nil)
		return
	}
	if file.Size > h.cfg.MaxUploadSize {
		utils.BadRequestError(c, "File too large", nil)
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		utils.InternalServerError(c, "Failed to prepare upload directory", err)
		return
	}
	savedName := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.NewString(), ext)
	savedPath := filepath.Join(h.cfg.UploadDir, savedName)
	if err := c.SaveUploadedFile(file, savedPath); err != nil {
		utils.InternalServerError(c, "Failed to save file", err)
		return
	}
	defer os.Remove(savedPath)

	profile, err := h.parser.ParseDocument(savedPath)
	if err != nil {
		if errors.Is(err, parsers.ErrUnsupportedFormat) {
			utils.UnsupportedMediaError(c, "Could not extract text from this file type", err)
			return
		}
		utils.BadRequestError(c, "Could not read the uploaded file", err)
		return
	}

	if !h.cfg.IncludeRawText {
		profile.RawText = ""
	}

	h.archive(savedPath, savedName)

	h.log.Info().
		Str("file", file.Filename).
		Str("name", profile.Name).
		Int("skills", len(profile.Skills)).
		Bool("complex_format", profile.ComplexFormatDetected).
		Bool("fallback", profile.FallbackUsed).
		Dur("elapsed", time.Since(start)).
		Msg("resume parsed")

	c.JSON(http.StatusOK, gin.H{
		"profile":         profile,
		"processing_time": time.Since(start).Seconds(),
	})
}

// archive stores the original upload in S3 when configured. Failures are
// logged, never surfaced; archival is best effort.
func (h *CVHandler) archive(path, name string) {
	if h.storage == nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		h.log.Warn().Err(err).Str("file", name).Msg("could not read upload for archival")
		return
	}
	url, err := h.storage.ArchiveResume(data, name)
	if err != nil {
		h.log.Warn().Err(err).Str("file", name).Msg("resume archival failed")
		return
	}
	h.log.Debug().Str("url", url).Msg("resume archived")
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
