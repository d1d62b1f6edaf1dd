package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"sts-agendamento/pkg/clients/formspree"
	"sts-agendamento/pkg/config"
	"sts-agendamento/pkg/models"
	"sts-agendamento/pkg/services"
)

type scriptedPrompter struct {
	rounds   []map[string]string
	asked    int
	confirms []bool
	asks     []string
}

func (p *scriptedPrompter) Ask(ctrl *services.Controller) error {
	if p.asked >= len(p.rounds) {
		return errors.New("no more answers")
	}
	for name, value := range p.rounds[p.asked] {
		ctrl.Input(name, value)
	}
	p.asked++
	return nil
}

func (p *scriptedPrompter) Confirm(message string) (bool, error) {
	p.asks = append(p.asks, message)
	if len(p.confirms) == 0 {
		return false, nil
	}
	ok := p.confirms[0]
	p.confirms = p.confirms[1:]
	return ok, nil
}

type sequenceClient struct {
	results []models.SubmissionResult
	calls   int
}

func (c *sequenceClient) Submit(context.Context, string, map[string]string) models.SubmissionResult {
	r := c.results[c.calls]
	c.calls++
	return r
}

func answers() map[string]string {
	return map[string]string{
		"nome":               "Maria Souza",
		"email":              "maria@example.com",
		"servico":            "Exame admissional",
		models.FieldPhone:    "11987654321",
		models.FieldDocument: "12345678901",
	}
}

var accepted = models.SubmissionResult{Success: true, Message: formspree.MessageSuccess}

func testSettings(redirect string) services.Settings {
	return services.Settings{
		Endpoint:    "https://formspree.io/f/test",
		RedirectURL: redirect,
	}
}

func TestRunRedirectsAfterSuccess(t *testing.T) {
	var out bytes.Buffer
	prompts := &scriptedPrompter{rounds: []map[string]string{answers()}}
	client := &sequenceClient{results: []models.SubmissionResult{accepted}}

	err := run(context.Background(), testSettings("https://example.com/obrigado"), client, services.ImmediateScheduler{}, prompts, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Redirecionando para https://example.com/obrigado") {
		t.Fatalf("missing redirect line in:\n%s", out.String())
	}
	if client.calls != 1 {
		t.Fatalf("expected one relay call, got %d", client.calls)
	}
}

func TestRunResetsWithoutRedirect(t *testing.T) {
	var out bytes.Buffer
	prompts := &scriptedPrompter{rounds: []map[string]string{answers()}}
	client := &sequenceClient{results: []models.SubmissionResult{accepted}}

	if err := run(context.Background(), testSettings(config.RedirectPlaceholder), client, services.ImmediateScheduler{}, prompts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), services.MessageConfirmByPhone) {
		t.Fatalf("missing confirm-by-phone message in:\n%s", out.String())
	}
}

func TestRunRetriesAfterRelayFailure(t *testing.T) {
	var out bytes.Buffer
	prompts := &scriptedPrompter{
		rounds:   []map[string]string{answers(), {}},
		confirms: []bool{true},
	}
	client := &sequenceClient{results: []models.SubmissionResult{
		{Success: false, Message: formspree.MessageConnection},
		accepted,
	}}

	if err := run(context.Background(), testSettings("https://example.com"), client, services.ImmediateScheduler{}, prompts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if client.calls != 2 || len(prompts.asks) != 1 {
		t.Fatalf("expected 2 relay calls and 1 retry question, got %d and %d", client.calls, len(prompts.asks))
	}
	if !strings.Contains(out.String(), formspree.MessageConnection) {
		t.Fatal("failure message not shown")
	}
}

func TestRunReasksAfterValidationFailure(t *testing.T) {
	first := answers()
	first[models.FieldPhone] = "119"
	prompts := &scriptedPrompter{rounds: []map[string]string{first, {models.FieldPhone: "1133334444"}}}
	client := &sequenceClient{results: []models.SubmissionResult{accepted}}

	var out bytes.Buffer
	if err := run(context.Background(), testSettings("https://example.com"), client, services.ImmediateScheduler{}, prompts, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if prompts.asked != 2 || len(prompts.asks) != 0 {
		t.Fatalf("expected a second round without a retry question, got asked=%d confirms=%d", prompts.asked, len(prompts.asks))
	}
	if !strings.Contains(out.String(), services.MessagePhoneIncomplete) {
		t.Fatal("validation message not shown")
	}
}

func TestRunStopsWhenRetryDeclined(t *testing.T) {
	prompts := &scriptedPrompter{rounds: []map[string]string{answers()}, confirms: []bool{false}}
	client := &sequenceClient{results: []models.SubmissionResult{{Success: false, Message: "Falha no envio: X"}}}

	var out bytes.Buffer
	err := run(context.Background(), testSettings("https://example.com"), client, services.ImmediateScheduler{}, prompts, &out)
	if !errors.Is(err, errAborted) {
		t.Fatalf("expected errAborted, got %v", err)
	}
}

func TestRunExitsOnPlaceholderEndpoint(t *testing.T) {
	prompts := &scriptedPrompter{rounds: []map[string]string{answers()}}
	client := &sequenceClient{}
	settings := testSettings("https://example.com")
	settings.Endpoint = config.EndpointPlaceholder

	var out bytes.Buffer
	err := run(context.Background(), settings, client, services.ImmediateScheduler{}, prompts, &out)
	if !errors.Is(err, services.ErrEndpointNotConfigured) {
		t.Fatalf("expected ErrEndpointNotConfigured, got %v", err)
	}
	if client.calls != 0 {
		t.Fatalf("relay must not be called, got %d", client.calls)
	}
}
