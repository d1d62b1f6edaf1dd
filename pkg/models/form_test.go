package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormIgnoresUnknownFields(t *testing.T) {
	f := NewForm(DefaultFields())
	f.Set("nome", "Maria")
	f.Set("_gotcha", "bot")

	if f.Has("_gotcha") {
		t.Fatal("unexpected field outside the schema")
	}
	if got := f.Get("nome"); got != "Maria" {
		t.Fatalf("expected nome=Maria, got %q", got)
	}
}

func TestFormResetClearsEveryField(t *testing.T) {
	f := NewForm([]Field{{Name: "nome"}, {Name: FieldPhone}})
	f.Set("nome", "Maria")
	f.Set(FieldPhone, "(11) 3333-4444")
	f.Reset()

	want := map[string]string{"nome": "", FieldPhone: ""}
	if diff := cmp.Diff(want, f.Values()); diff != "" {
		t.Fatalf("values after reset mismatch (-want +got):\n%s", diff)
	}
}

func TestValuesReturnsCopy(t *testing.T) {
	f := NewForm([]Field{{Name: "nome"}})
	values := f.Values()
	values["nome"] = "changed"
	if f.Get("nome") != "" {
		t.Fatal("mutating Values() leaked into the form")
	}
}

func TestFieldRequired(t *testing.T) {
	cases := map[string]bool{
		"required":       true,
		"required,email": true,
		"max=10":         false,
		"":               false,
	}
	for rules, want := range cases {
		if got := (Field{Rules: rules}).Required(); got != want {
			t.Errorf("Required() for %q = %v, want %v", rules, got, want)
		}
	}
}

func TestDocumentType(t *testing.T) {
	cases := map[string]string{
		"12345678901":    DocumentTypeCPF,
		"12345678000195": DocumentTypeCNPJ,
		"1234567890":     "",
		"123456789012":   "",
	}
	for in, want := range cases {
		if got := DocumentType(in); got != want {
			t.Errorf("DocumentType(%q) = %q, want %q", in, got, want)
		}
	}
}
