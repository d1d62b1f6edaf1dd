package models

import "strings"

// Field names with special handling
const (
	FieldPhone    = "telefone"
	FieldDocument = "cnpjCpf"
)

// Field describes one input of the pre-scheduling form. Rules holds
// validator tags, the equivalent of the HTML constraint attributes.
type Field struct {
	Name  string
	Label string
	Rules string
}

// Required reports whether the field must be filled
func (f Field) Required() bool {
	return f.Rules == "required" || strings.HasPrefix(f.Rules, "required,")
}

// DefaultFields is the schema of the pre-scheduling form
func DefaultFields() []Field {
	return []Field{
		{Name: "nome", Label: "Nome completo", Rules: "required,max=120"},
		{Name: "email", Label: "E-mail", Rules: "required,email"},
		{Name: "empresa", Label: "Empresa", Rules: "max=120"},
		{Name: FieldPhone, Label: "Telefone", Rules: "required"},
		{Name: FieldDocument, Label: "CNPJ/CPF", Rules: "required"},
		{Name: "servico", Label: "Serviço desejado", Rules: "required"},
		{Name: "mensagem", Label: "Mensagem", Rules: "max=2000"},
	}
}

// Form is the name to value mapping behind the form
type Form struct {
	fields []Field
	values map[string]string
}

// NewForm creates an empty form for the given schema
func NewForm(fields []Field) *Form {
	f := &Form{
		fields: fields,
		values: make(map[string]string, len(fields)),
	}
	f.Reset()
	return f
}

// Fields returns the schema in display order
func (f *Form) Fields() []Field {
	return f.fields
}

// Has reports whether name belongs to the schema
func (f *Form) Has(name string) bool {
	_, ok := f.values[name]
	return ok
}

// Set stores a value; names outside the schema are ignored
func (f *Form) Set(name, value string) {
	if !f.Has(name) {
		return
	}
	f.values[name] = value
}

// Get returns the current value of a field
func (f *Form) Get(name string) string {
	return f.values[name]
}

// Values returns a copy of the field mapping
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Reset empties every field
func (f *Form) Reset() {
	for _, field := range f.fields {
		f.values[field.Name] = ""
	}
}
