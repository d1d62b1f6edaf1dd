package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"sts-agendamento/pkg/services"
	"sts-agendamento/pkg/utils"
)

// prompter collects the form answers and retry decisions
type prompter interface {
	Ask(ctrl *services.Controller) error
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

// Ask prompts for every field, prefilled with the current values
func (surveyPrompter) Ask(ctrl *services.Controller) error {
	values := ctrl.Values()
	for _, field := range ctrl.Fields() {
		label := field.Label
		if field.Required() {
			label += " *"
		}

		var (
			answer string
			prompt survey.Prompt = &survey.Input{Message: label, Default: values[field.Name]}
		)
		if field.Name == "mensagem" {
			prompt = &survey.Multiline{Message: label, Default: values[field.Name]}
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}

		display := ctrl.Input(field.Name, utils.SanitizeText(answer))
		if display != answer {
			fmt.Printf("  → %s\n", display)
		}
	}
	return nil
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: message, Default: true}, &ok)
	return ok, err
}
