package main

import (
	"fmt"
	"io"
	"sync"

	"sts-agendamento/pkg/services"
)

// terminalView prints the state changes the browser would display
type terminalView struct {
	mu    sync.Mutex
	out   io.Writer
	label string
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{out: out, label: services.LabelSubmit}
}

func (v *terminalView) HideMessage() {}

func (v *terminalView) ShowMessage(message string, kind services.MessageKind) {
	v.mu.Lock()
	defer v.mu.Unlock()

	prefix := "✔"
	if kind == services.KindError {
		prefix = "✖"
	}
	fmt.Fprintf(v.out, "%s %s\n", prefix, message)
}

func (v *terminalView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !enabled {
		fmt.Fprintf(v.out, "[%s]\n", v.label)
	}
}

func (v *terminalView) SetSubmitLabel(label string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.label = label
}

func (v *terminalView) ResetFields() {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.out, "Formulário limpo.")
}
