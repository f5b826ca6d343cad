// handlers.go - HTTP handlers for document upload, validation, and extraction

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/taxmitra/tax-doc-recon/configs"
	"github.com/taxmitra/tax-doc-recon/internal/common"
	"github.com/taxmitra/tax-doc-recon/internal/model"
	"github.com/taxmitra/tax-doc-recon/internal/ratelimit"
	"github.com/taxmitra/tax-doc-recon/internal/recon"
)

// ServiceVersion is reported by the health endpoint.
const ServiceVersion = "1.0.0"

var pdfMagic = []byte("%PDF-")

// Runner is the extraction pipeline behind the handler.
type Runner interface {
	Run(ctx context.Context, docs recon.Documents) model.CombinedResult
}

// ExtractResponse is the body of a successful POST /extract. Findings are
// advisory reconciliation results, not request failures; the request
// succeeds even when every document fails to extract.
type ExtractResponse struct {
	RequestID string               `json:"requestId"`
	F16Data   model.Form16Record   `json:"f16Data"`
	As26Data  model.Form26ASRecord `json:"as26Data"`
	AISData   model.AISRecord      `json:"aisData"`
	Findings  []model.Finding      `json:"findings"`
	Warnings  []model.Warning      `json:"warnings"`
}

// Handler serves the extraction API.
type Handler struct {
	runner  Runner
	limiter *ratelimit.ClientLimiter

	// validatePDF is swappable so handler tests do not need real PDFs.
	validatePDF func(data []byte) error
}

// NewHandler creates a handler over the given pipeline and rate limiter.
func NewHandler(runner Runner, limiter *ratelimit.ClientLimiter) *Handler {
	return &Handler{
		runner:      runner,
		limiter:     limiter,
		validatePDF: validatePDFDocument,
	}
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "tax-doc-recon",
		"version":   ServiceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Extract handles POST /extract: multipart form with up to three PDF file
// fields (f16, as26, ais). Per-document extraction failures never fail the
// request; the client always gets a 200 with best-effort partial data.
func (h *Handler) Extract(c *gin.Context) {
	if ok, retryAfter := h.limiter.Allow(c.ClientIP()); !ok {
		seconds := int(retryAfter.Seconds()) + 1
		c.Header("Retry-After", fmt.Sprintf("%d", seconds))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":             "Too many requests",
			"retryAfterSeconds": seconds,
		})
		return
	}

	// Missing credential is a configuration error: fixed 500 before any
	// extraction is attempted.
	if configs.GEMINI_API_KEY == "" {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Extraction backend is not configured",
		})
		return
	}

	reqCtx := common.NewRequestContext(c.ClientIP())

	reqCtx.StartStep("validate_upload")
	docs, uploaded, err := h.readDocuments(c)
	if err != nil {
		reqCtx.EndStep("failed", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestId": reqCtx.RequestID,
		})
		return
	}
	if uploaded == 0 {
		err := errors.New("at least one document must be uploaded (f16, as26 or ais)")
		reqCtx.EndStep("failed", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestId": reqCtx.RequestID,
		})
		return
	}
	reqCtx.EndStep("success", nil)
	reqCtx.LogInfo("%d document(s) accepted", uploaded)

	// Client disconnects cancel in-flight extractions via the request
	// context; there is no partial state to clean up.
	ctx, cancel := context.WithTimeout(c.Request.Context(),
		time.Duration(configs.EXTRACTION_TIMEOUT_SEC)*time.Second)
	defer cancel()

	reqCtx.StartStep("extract_and_reconcile")
	result := h.runner.Run(ctx, docs)
	reqCtx.EndStep("success", nil)
	reqCtx.LogInfo("done in %.2fs: %d finding(s), %d warning(s)",
		reqCtx.TotalDuration().Seconds(), len(result.Findings), len(result.Warnings))

	c.JSON(http.StatusOK, ExtractResponse{
		RequestID: reqCtx.RequestID,
		F16Data:   result.Form16,
		As26Data:  result.Form26AS,
		AISData:   result.AIS,
		Findings:  result.Findings,
		Warnings:  result.Warnings,
	})
}

// readDocuments pulls the three optional file fields out of the multipart
// form and validates each present one.
func (h *Handler) readDocuments(c *gin.Context) (recon.Documents, int, error) {
	var docs recon.Documents
	uploaded := 0

	slots := []struct {
		field string
		dest  *[]byte
	}{
		{"f16", &docs.Form16},
		{"as26", &docs.Form26AS},
		{"ais", &docs.AIS},
	}

	for _, slot := range slots {
		header, err := c.FormFile(slot.field)
		if err != nil {
			// Absent slot; the orchestrator tolerates any subset.
			continue
		}
		data, err := h.readDocument(header)
		if err != nil {
			return recon.Documents{}, 0, fmt.Errorf("invalid %s upload: %w", slot.field, err)
		}
		*slot.dest = data
		uploaded++
	}

	return docs, uploaded, nil
}

// readDocument loads one uploaded file into memory, enforcing the size
// limit and PDF validity. Bytes live only for the request's duration.
func (h *Handler) readDocument(header *multipart.FileHeader) ([]byte, error) {
	maxBytes := int64(configs.MAX_FILE_SIZE_MB) << 20
	if header.Size > maxBytes {
		return nil, fmt.Errorf("file exceeds the %d MB limit", configs.MAX_FILE_SIZE_MB)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("file exceeds the %d MB limit", configs.MAX_FILE_SIZE_MB)
	}

	if err := h.validatePDF(data); err != nil {
		return nil, err
	}
	return data, nil
}

// validatePDFDocument checks the magic bytes, then runs pdfcpu's structural
// validation so corrupt uploads are rejected before any extraction call.
func validatePDFDocument(data []byte) error {
	if !bytes.HasPrefix(data, pdfMagic) {
		return errors.New("file is not a PDF")
	}
	conf := pdfmodel.NewDefaultConfiguration()
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return fmt.Errorf("file is not a valid PDF: %w", err)
	}
	return nil
}
