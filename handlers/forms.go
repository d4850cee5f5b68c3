package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/formbridge/formbridge/internal/database"
	"github.com/formbridge/formbridge/internal/submission"
	"github.com/formbridge/formbridge/internal/submission/service"
	"github.com/formbridge/formbridge/pkg/logger"
	"github.com/formbridge/formbridge/pkg/metrics"
)

// FormHandler serves the contact form pages and the submit endpoint.
type FormHandler struct {
	subs service.Service
}

func NewFormHandler(subs service.Service) *FormHandler {
	return &FormHandler{subs: subs}
}

func (h *FormHandler) Register(r *gin.Engine) {
	r.GET("/", h.ShowForm)
	r.POST("/submit", h.Submit)
	r.GET("/success", h.Success)
}

func (h *FormHandler) ShowForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "", "", "", "")
}

func (h *FormHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", gin.H{})
}

// Submit validates the posted fields and stores the submission. On any
// failure the form is re-rendered with the trimmed input echoed back and a
// one-shot notice; the notice exists only in that single response.
func (h *FormHandler) Submit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" {
		metrics.SubmissionFailures.WithLabelValues("validation").Inc()
		h.renderForm(c, http.StatusBadRequest, name, email, message, "Name and email are required.")
		return
	}

	sub := &submission.Submission{Name: name, Email: email, Message: message}
	err := h.subs.Store(c.Request.Context(), sub)
	switch {
	case err == nil:
		metrics.SubmissionsStored.Inc()
		c.Redirect(http.StatusFound, "/success")
	case errors.Is(err, database.ErrNotConfigured):
		metrics.SubmissionFailures.WithLabelValues("config").Inc()
		logger.Errorf("submission rejected: %v", err)
		h.renderForm(c, http.StatusInternalServerError, name, email, message, "Server configuration error: "+err.Error())
	case errors.Is(err, service.ErrDataStore):
		metrics.SubmissionFailures.WithLabelValues("datastore").Inc()
		logger.Errorf("submission failed: %v", err)
		h.renderForm(c, http.StatusInternalServerError, name, email, message, "Database error: "+err.Error())
	default:
		metrics.SubmissionFailures.WithLabelValues("unexpected").Inc()
		logger.Errorf("submission failed unexpectedly: %v", err)
		h.renderForm(c, http.StatusInternalServerError, name, email, message, "Unexpected error: "+err.Error())
	}
}

func (h *FormHandler) renderForm(c *gin.Context, status int, name, email, message, notice string) {
	c.HTML(status, "form.html", gin.H{
		"name":    name,
		"email":   email,
		"message": message,
		"notice":  notice,
	})
}
