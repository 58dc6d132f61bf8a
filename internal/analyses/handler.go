// Package analyses exposes the resume analysis engine over HTTP.
package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-checker/internal/analyzer"
	"resume-checker/internal/extract"
	"resume-checker/internal/shared/server/respond"
	"resume-checker/internal/shared/telemetry"
	"resume-checker/internal/shared/util"
)

// Handler serves analysis requests.
type Handler struct {
	analyzer       *analyzer.Analyzer
	maxUploadBytes int64
}

// NewHandler builds a Handler around the given engine.
func NewHandler(a *analyzer.Analyzer, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = extract.MaxFileSize
	}
	return &Handler{analyzer: a, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the analysis endpoints to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.create)
}

type createResponse struct {
	AnalysisID string `json:"analysisId"`
	analyzer.Report
}

// create accepts a multipart form with "resume" and "vacancy" file parts,
// extracts text from both, and returns the analysis report. Each request is
// independent; nothing is persisted.
func (h *Handler) create(c *gin.Context) {
	resumeText, ok := h.readPart(c, "resume")
	if !ok {
		return
	}
	vacancyText, ok := h.readPart(c, "vacancy")
	if !ok {
		return
	}

	result, err := h.analyzer.Analyze(resumeText, vacancyText)
	if err != nil {
		if errors.Is(err, analyzer.ErrEmptyResume) || errors.Is(err, analyzer.ErrEmptyVacancy) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		telemetry.Error("analyses.analyze.failed", map[string]any{
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		return
	}

	analysisID := uuid.NewString()
	telemetry.Info("analyses.complete", map[string]any{
		"analysis_id":    analysisID,
		"score":          result.Score,
		"sections_found": result.ATSCompatibility.StandardSectionsFound,
		"request_id":     c.GetString("requestId"),
	})

	respond.OK(c, createResponse{AnalysisID: analysisID, Report: result.Report()})
}

// readPart reads and extracts one named file part. It writes the error
// response itself and reports success through the second return value.
func (h *Handler) readPart(c *gin.Context, part string) (string, bool) {
	fileHeader, err := c.FormFile(part)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", part+" file is required", nil)
		return "", false
	}
	if fileHeader.Size > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", part+" file exceeds the size limit", nil)
		return "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read "+part+" file", nil)
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read "+part+" file", nil)
		return "", false
	}
	if int64(len(data)) > h.maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", part+" file exceeds the size limit", nil)
		return "", false
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid "+part+" file name", nil)
		return "", false
	}
	contentType := fileHeader.Header.Get("Content-Type")

	text, err := extract.FromBytes(data, contentType, fileName)
	if err != nil {
		// Collaborator failures propagate with their original message.
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return "", false
	}

	if meta, err := extract.Describe(data, contentType, fileName); err == nil {
		telemetry.Info("analyses.file.extracted", map[string]any{
			"part":       part,
			"file_name":  meta.FileName,
			"file_type":  meta.Kind,
			"size":       meta.Size,
			"request_id": c.GetString("requestId"),
		})
	}

	return text, true
}
