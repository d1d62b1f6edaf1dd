package models

// Document types recognised by digit count
const (
	DocumentTypeCPF  = "cpf"
	DocumentTypeCNPJ = "cnpj"
)

// SubmissionResult is the outcome of one relay attempt
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DocumentType classifies an unmasked tax-ID
func DocumentType(unmasked string) string {
	switch len(unmasked) {
	case 11:
		return DocumentTypeCPF
	case 14:
		return DocumentTypeCNPJ
	default:
		return ""
	}
}
