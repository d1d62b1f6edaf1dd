package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sts-agendamento/pkg/clients/formspree"
	"sts-agendamento/pkg/config"
	"sts-agendamento/pkg/mask"
	"sts-agendamento/pkg/models"
	"sts-agendamento/pkg/utils"
	"sts-agendamento/pkg/validation"
)

var (
	ErrEndpointNotConfigured = errors.New("form relay endpoint not configured")
	ErrSubmissionInFlight    = errors.New("a submission is already in progress")
)

// Action is what happens once the success message has been shown
type Action string

const (
	ActionNone     Action = "none"
	ActionRedirect Action = "redirect"
	ActionReset    Action = "reset"
)

// Outcome describes a submission that reached the relay
type Outcome struct {
	Result       models.SubmissionResult
	Action       Action
	RedirectURL  string
	Delay        time.Duration
	SubmissionID string
	DocumentType string
}

// Settings configures a Controller
type Settings struct {
	Endpoint      string
	RedirectURL   string
	RedirectDelay time.Duration
	Subject       string
	Fields        []models.Field

	// OnComplete runs at the end of the post-submission flow, after the
	// redirect or the reset.
	OnComplete func(Outcome)
}

// SettingsFromConfig builds Settings for the default form
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Endpoint:      cfg.FormspreeEndpoint,
		RedirectURL:   cfg.RedirectURL,
		RedirectDelay: cfg.RedirectDelay(),
		Subject:       cfg.FormSubject,
		Fields:        models.DefaultFields(),
	}
}

// Controller masks, validates and relays the pre-scheduling form
type Controller struct {
	client    formspree.Client
	view      View
	navigator Navigator
	scheduler Scheduler
	validator *validation.Validator
	settings  Settings
	logger    *zap.Logger

	mu       sync.Mutex
	form     *models.Form
	phone    *mask.Input
	document *mask.Input

	busy atomic.Bool
}

// NewController creates a controller with an empty form
func NewController(
	client formspree.Client,
	view View,
	navigator Navigator,
	scheduler Scheduler,
	settings Settings,
) *Controller {
	if settings.Fields == nil {
		settings.Fields = models.DefaultFields()
	}
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	return &Controller{
		client:    client,
		view:      view,
		navigator: navigator,
		scheduler: scheduler,
		validator: validation.New(),
		settings:  settings,
		logger:    utils.GetLogger(),
		form:      models.NewForm(settings.Fields),
		phone:     mask.NewInput(mask.Phone),
		document:  mask.NewInput(mask.Document),
	}
}

// Input stores what the user typed into a field and returns the value to
// display. The phone and tax-ID fields go through their masks.
func (c *Controller) Input(name, raw string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	display := raw
	switch name {
	case models.FieldPhone:
		display = c.phone.SetValue(raw)
	case models.FieldDocument:
		display = c.document.SetValue(raw)
	}
	c.form.Set(name, display)
	return display
}

// Values returns the current form mapping
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Values()
}

// Fields returns the form schema
func (c *Controller) Fields() []models.Field {
	return c.form.Fields()
}

// Busy reports whether a submission is between its request and its
// post-submission step.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// Validate runs the local checks without touching the view
func (c *Controller) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validator.Check(c.form, c.document.UnmaskedValue(), c.phone.UnmaskedValue())
}

// Submit validates the form and relays it. Local failures are shown on
// the view and returned as errors; a relay attempt always returns a nil
// error with the result in the Outcome.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	// An overlapping call must leave the view of the running one alone.
	if !c.busy.CompareAndSwap(false, true) {
		return Outcome{Action: ActionNone}, ErrSubmissionInFlight
	}

	c.view.HideMessage()

	if err := c.Validate(); err != nil {
		c.busy.Store(false)
		c.view.ShowMessage(UserMessage(err), KindError)
		return Outcome{Action: ActionNone}, err
	}

	if !config.IsEndpointConfigured(c.settings.Endpoint) {
		c.busy.Store(false)
		c.logger.Error("Form relay endpoint is still the placeholder")
		c.view.ShowMessage(MessageEndpointMissing, KindError)
		return Outcome{Action: ActionNone}, ErrEndpointNotConfigured
	}

	c.view.SetSubmitEnabled(false)
	c.view.SetSubmitLabel(LabelSubmitting)
	c.view.ShowMessage(MessageProcessing, KindSuccess)

	c.mu.Lock()
	values := c.form.Values()
	phoneHash := utils.HashPhone(c.phone.UnmaskedValue())
	docType := models.DocumentType(c.document.UnmaskedValue())
	c.mu.Unlock()
	if c.settings.Subject != "" {
		values["_subject"] = c.settings.Subject
	}

	outcome := Outcome{
		SubmissionID: uuid.NewString(),
		DocumentType: docType,
		Action:       ActionNone,
	}
	logger := c.logger.With(
		zap.String("submission_id", outcome.SubmissionID),
		zap.String("phone_hash", phoneHash),
		zap.String("document_type", docType),
	)
	logger.Info("Relaying submission")

	outcome.Result = c.client.Submit(ctx, c.settings.Endpoint, values)

	if !outcome.Result.Success {
		logger.Warn("Submission failed", zap.String("message", outcome.Result.Message))
		c.view.ShowMessage(outcome.Result.Message, KindError)
		c.restoreSubmit()
		c.busy.Store(false)
		return outcome, nil
	}

	c.view.ShowMessage(outcome.Result.Message, KindSuccess)
	outcome.Delay = c.settings.RedirectDelay
	if config.IsRedirectConfigured(c.settings.RedirectURL) {
		outcome.Action = ActionRedirect
		outcome.RedirectURL = c.settings.RedirectURL
	} else {
		outcome.Action = ActionReset
	}
	logger.Info("Submission accepted", zap.String("action", string(outcome.Action)))

	c.scheduler.AfterFunc(outcome.Delay, func() {
		c.finish(outcome, logger)
	})
	return outcome, nil
}

func (c *Controller) finish(outcome Outcome, logger *zap.Logger) {
	switch outcome.Action {
	case ActionRedirect:
		c.navigator.Navigate(outcome.RedirectURL)
	case ActionReset:
		logger.Warn(`Redirect URL is not set, replace "SUA_NOVA_URL" to enable the redirect`)
		c.Reset()
		c.view.ResetFields()
		c.restoreSubmit()
		c.view.ShowMessage(MessageConfirmByPhone, KindSuccess)
	}
	c.busy.Store(false)

	if c.settings.OnComplete != nil {
		c.settings.OnComplete(outcome)
	}
}

// Reset clears the form and both masks
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Reset()
	c.phone.Reset()
	c.document.Reset()
}

func (c *Controller) restoreSubmit() {
	c.view.SetSubmitEnabled(true)
	c.view.SetSubmitLabel(LabelSubmit)
}
