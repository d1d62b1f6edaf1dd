package main

import (
	"bytes"
	"testing"

	"sts-agendamento/pkg/services"
)

func TestTerminalViewPrintsMessages(t *testing.T) {
	var buf bytes.Buffer
	v := newTerminalView(&buf)

	v.SetSubmitLabel(services.LabelSubmitting)
	v.SetSubmitEnabled(false)
	v.ShowMessage(services.MessageProcessing, services.KindSuccess)
	v.ShowMessage("Falha no envio: X", services.KindError)
	v.ResetFields()

	want := "[" + services.LabelSubmitting + "]\n" +
		"✔ " + services.MessageProcessing + "\n" +
		"✖ Falha no envio: X\n" +
		"Formulário limpo.\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}
