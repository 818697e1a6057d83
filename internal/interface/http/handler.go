package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	"github.com/naufalrizky/healthscan/internal/domain/history"
	"github.com/naufalrizky/healthscan/internal/infra/config"
	"github.com/naufalrizky/healthscan/internal/infra/kvstore"
	apperrors "github.com/naufalrizky/healthscan/pkg/errors"
)

const dateLayout = "2006-01-02"

// Handler wires the HTTP transport to domain services.
type Handler struct {
	diagnosisSvc diagnosis.Service
	historySvc   history.Service
	store        kvstore.Store
	darkModeKey  string
	logger       *slog.Logger
	now          func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(diagnosisSvc diagnosis.Service, historySvc history.Service, store kvstore.Store, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		diagnosisSvc: diagnosisSvc,
		historySvc:   historySvc,
		store:        store,
		darkModeKey:  kvstore.Key(cfg.Storage.Prefix, "dark_mode"),
		logger:       logger.With("component", "http.handler"),
		now:          time.Now,
	}
}

// Symptoms serves the fixed catalog.
func (h *Handler) Symptoms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"symptoms":      diagnosis.Symptoms(),
		"maxSelectable": diagnosis.MaxSymptoms,
	})
}

// Diagnose runs the diagnosis pipeline and appends the history entry
// on success.
func (h *Handler) Diagnose(c *gin.Context) {
	var req diagnosis.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.diagnosisSvc.Diagnose(c.Request.Context(), req.Symptoms)
	if err != nil {
		abortWithError(c, diagnosisError(err))
		return
	}

	historyID := ""
	if entry, appendErr := h.historySvc.Append(c.Request.Context(), req.Symptoms, result); appendErr != nil {
		h.logger.Warn("history append failed", "error", appendErr)
	} else {
		historyID = entry.ID
	}

	c.JSON(http.StatusOK, gin.H{
		"diagnosis": result,
		"historyId": historyID,
	})
}

// Facilities returns model-suggested health facilities. The lookup
// degrades to an empty list and never reports an error.
func (h *Handler) Facilities(c *gin.Context) {
	facilities := h.diagnosisSvc.LookupFacilities(c.Request.Context(), c.Query("location"))
	if facilities == nil {
		facilities = []diagnosis.HealthFacility{}
	}
	c.JSON(http.StatusOK, gin.H{"facilities": facilities})
}

// HistoryList returns entries matching the optional search text and
// date range.
func (h *Handler) HistoryList(c *gin.Context) {
	filter := history.Filter{Search: c.Query("search")}

	if raw := c.Query("start"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "start must be formatted as YYYY-MM-DD", err))
			return
		}
		filter.Start = parsed
	}
	if raw := c.Query("end"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "end must be formatted as YYYY-MM-DD", err))
			return
		}
		filter.End = parsed
	}

	entries, err := h.historySvc.Query(c.Request.Context(), filter)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_failed", apperrors.UserMessage(err), err))
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// HistoryDelete removes one entry by position.
func (h *Handler) HistoryDelete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "index must be an integer", err))
		return
	}

	if err := h.historySvc.Delete(c.Request.Context(), index); err != nil {
		status := http.StatusInternalServerError
		code := "history_failed"
		if apperrors.IsCode(err, "not_found") {
			status = http.StatusNotFound
			code = "not_found"
		}
		abortWithError(c, NewHTTPError(status, code, apperrors.UserMessage(err), err))
		return
	}
	c.Status(http.StatusNoContent)
}

type reportRequest struct {
	Symptoms  []string            `json:"symptoms"`
	Diagnosis diagnosis.Diagnosis `json:"diagnosis"`
}

// ExportDiagnosis streams the plain-text report as a download named
// after the current date.
func (h *Handler) ExportDiagnosis(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	now := h.now()
	report := diagnosis.BuildReport(req.Diagnosis, req.Symptoms, now)
	c.Header("Content-Disposition", `attachment; filename="`+diagnosis.ReportFilename(now)+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report))
}

// ShareDiagnosis returns the WhatsApp deep link for the formatted
// result.
func (h *Handler) ShareDiagnosis(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	text := diagnosis.BuildShareText(req.Diagnosis, req.Symptoms, h.now())
	c.JSON(http.StatusOK, gin.H{
		"text": text,
		"url":  diagnosis.ShareLink(text),
	})
}

// GetDarkMode reads the persisted display preference.
func (h *Handler) GetDarkMode(c *gin.Context) {
	enabled := false
	value, found, err := h.store.Get(c.Request.Context(), h.darkModeKey)
	if err != nil {
		h.logger.Warn("dark mode read failed", "error", err)
	} else if found {
		if unmarshalErr := json.Unmarshal([]byte(value), &enabled); unmarshalErr != nil {
			h.logger.Warn("dark mode flag unreadable", "value", value)
		}
	}
	c.JSON(http.StatusOK, gin.H{"darkMode": enabled})
}

type darkModeRequest struct {
	DarkMode bool `json:"darkMode"`
}

// SetDarkMode persists the display preference.
func (h *Handler) SetDarkMode(c *gin.Context) {
	var req darkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	payload, _ := json.Marshal(req.DarkMode)
	if err := h.store.Set(c.Request.Context(), h.darkModeKey, string(payload)); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "storage_error", "gagal menyimpan preferensi tampilan", err))
		return
	}
	c.Status(http.StatusNoContent)
}

func diagnosisError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "diagnosis_failed"
	switch {
	case apperrors.IsCode(err, "too_soon"):
		status = http.StatusTooManyRequests
		code = "too_soon"
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "llm_error"):
		status = http.StatusBadGateway
		code = "llm_error"
	case apperrors.IsCode(err, "malformed_response"):
		status = http.StatusBadGateway
		code = "malformed_response"
	}
	return NewHTTPError(status, code, apperrors.UserMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
