package api

import (
	"embed"
	"html/template"
	"time"

	"sts-agendamento/pkg/models"
	"sts-agendamento/pkg/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

const pageTemplate = "agendamento.html"

// LoadTemplates parses the embedded HTML templates
func LoadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
}

type pageField struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Numeric     bool
	Required    bool
}

type pageData struct {
	Fields          []pageField
	Message         string
	Kind            services.MessageKind
	SubmitEnabled   bool
	SubmitLabel     string
	RedirectURL     string
	RedirectSeconds int
}

// pageView records what the controller shows so it can be rendered once
// the request is done.
type pageView struct {
	message       string
	kind          services.MessageKind
	submitEnabled bool
	submitLabel   string
	reset         bool
	redirectURL   string
}

func newPageView() *pageView {
	return &pageView{submitEnabled: true, submitLabel: services.LabelSubmit}
}

func (v *pageView) HideMessage() { v.message, v.kind = "", "" }

func (v *pageView) ShowMessage(message string, kind services.MessageKind) {
	v.message, v.kind = message, kind
}

func (v *pageView) SetSubmitEnabled(enabled bool) { v.submitEnabled = enabled }
func (v *pageView) SetSubmitLabel(label string)   { v.submitLabel = label }
func (v *pageView) ResetFields()                  { v.reset = true }

func (v *pageView) Navigate(url string) { v.redirectURL = url }

func (v *pageView) render(fields []models.Field, values map[string]string, delay time.Duration) pageData {
	data := pageData{
		Message:       v.message,
		Kind:          v.kind,
		SubmitEnabled: v.submitEnabled,
		SubmitLabel:   v.submitLabel,
		RedirectURL:   v.redirectURL,
	}
	if v.redirectURL != "" {
		data.RedirectSeconds = int(delay.Round(time.Second) / time.Second)
	}
	for _, f := range fields {
		pf := pageField{
			Name:     f.Name,
			Label:    f.Label,
			Type:     "text",
			Required: f.Required(),
			Value:    values[f.Name],
		}
		switch f.Name {
		case models.FieldPhone:
			pf.Type, pf.Placeholder, pf.Numeric = "tel", "(00) 00000-0000", true
		case models.FieldDocument:
			pf.Placeholder, pf.Numeric = "000.000.000-00", true
		case "email":
			pf.Type = "email"
		}
		data.Fields = append(data.Fields, pf)
	}
	return data
}
