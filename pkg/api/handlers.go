package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sts-agendamento/pkg/clients/formspree"
	"sts-agendamento/pkg/models"
	"sts-agendamento/pkg/services"
	"sts-agendamento/pkg/utils"
	"sts-agendamento/pkg/validation"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	client   formspree.Client
	settings services.Settings
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(client formspree.Client, settings services.Settings) *Handlers {
	if settings.Fields == nil {
		settings.Fields = models.DefaultFields()
	}
	return &Handlers{
		client:   client,
		settings: settings,
		logger:   utils.GetLogger(),
	}
}

// submissionResponse is the JSON body returned to script clients
type submissionResponse struct {
	Success         bool              `json:"success"`
	Message         string            `json:"message"`
	Action          services.Action   `json:"action"`
	RedirectURL     string            `json:"redirect_url,omitempty"`
	RedirectAfterMS int64             `json:"redirect_after_ms,omitempty"`
	FollowUp        string            `json:"follow_up_message,omitempty"`
	DocumentType    string            `json:"document_type,omitempty"`
	SubmissionID    string            `json:"submission_id,omitempty"`
	Values          map[string]string `json:"values,omitempty"`
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// ShowForm renders an empty form
func (h *Handlers) ShowForm(c *gin.Context) {
	view := newPageView()
	c.HTML(http.StatusOK, pageTemplate, view.render(h.settings.Fields, nil, 0))
}

// HandleSubmission masks, validates and relays a posted form, then answers
// with the re-rendered page or with JSON depending on the Accept header.
func (h *Handlers) HandleSubmission(c *gin.Context) {
	view := newPageView()
	ctrl := services.NewController(h.client, view, view, services.ImmediateScheduler{}, h.settings)

	for _, field := range ctrl.Fields() {
		ctrl.Input(field.Name, utils.SanitizeText(c.PostForm(field.Name)))
	}

	outcome, err := ctrl.Submit(c.Request.Context())
	status := statusFor(outcome, err)
	if err != nil {
		h.logger.Info("Submission refused", zap.Error(err))
	}

	switch c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) {
	case gin.MIMEJSON:
		c.JSON(status, h.jsonResponse(ctrl, view, outcome, err))
	default:
		c.HTML(status, pageTemplate, view.render(ctrl.Fields(), ctrl.Values(), outcome.Delay))
	}
}

func (h *Handlers) jsonResponse(ctrl *services.Controller, view *pageView, outcome services.Outcome, err error) submissionResponse {
	if err != nil {
		return submissionResponse{
			Success: false,
			Message: services.UserMessage(err),
			Action:  services.ActionNone,
			Values:  ctrl.Values(),
		}
	}

	resp := submissionResponse{
		Success:      outcome.Result.Success,
		Message:      outcome.Result.Message,
		Action:       outcome.Action,
		DocumentType: outcome.DocumentType,
		SubmissionID: outcome.SubmissionID,
	}
	switch outcome.Action {
	case services.ActionRedirect:
		resp.RedirectURL = outcome.RedirectURL
		resp.RedirectAfterMS = outcome.Delay.Milliseconds()
	case services.ActionReset:
		resp.FollowUp = view.message
	case services.ActionNone:
		resp.Values = ctrl.Values()
	}
	return resp
}

func statusFor(outcome services.Outcome, err error) int {
	switch {
	case errors.Is(err, services.ErrEndpointNotConfigured):
		return http.StatusInternalServerError
	case errors.Is(err, services.ErrSubmissionInFlight):
		return http.StatusConflict
	case errors.Is(err, validation.ErrFormIncomplete),
		errors.Is(err, validation.ErrDocumentIncomplete),
		errors.Is(err, validation.ErrPhoneIncomplete):
		return http.StatusUnprocessableEntity
	case err != nil:
		return http.StatusBadRequest
	case !outcome.Result.Success:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}
