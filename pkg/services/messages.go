package services

import (
	"errors"

	"sts-agendamento/pkg/validation"
)

const (
	LabelSubmit     = "Enviar Solicitação de Pré-Agendamento"
	LabelSubmitting = "Enviando... Aguarde..."

	MessageProcessing         = "Processando solicitação e enviando e-mail..."
	MessageFormIncomplete     = "Por favor, preencha todos os campos obrigatórios corretamente."
	MessageDocumentIncomplete = "Por favor, preencha o CNPJ/CPF por completo."
	MessagePhoneIncomplete    = "Por favor, preencha o Telefone com o DDD e o número completo."
	MessageEndpointMissing    = `ERRO DE CONFIGURAÇÃO: Por favor, substitua "YOUR_FORMSPREE_ENDPOINT" pela sua URL real do Formspree.`
	MessageConfirmByPhone     = "Solicitação enviada! Por favor, entre em contato via telefone para a confirmação final."
)

// UserMessage maps a local failure to the text shown to the user
func UserMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrFormIncomplete):
		return MessageFormIncomplete
	case errors.Is(err, validation.ErrDocumentIncomplete):
		return MessageDocumentIncomplete
	case errors.Is(err, validation.ErrPhoneIncomplete):
		return MessagePhoneIncomplete
	case errors.Is(err, ErrEndpointNotConfigured):
		return MessageEndpointMissing
	default:
		return MessageFormIncomplete
	}
}
