package formspree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"sts-agendamento/pkg/models"
)

// Messages shown to the user for each relay outcome
const (
	MessageSuccess         = "Solicitação enviada com sucesso! Redirecionando..."
	MessageRejectedPrefix  = "Falha no envio: "
	MessageGenericRejected = "Ocorreu um erro no servidor de agendamento."
	MessageConnection      = "Erro de conexão. Verifique sua rede e tente novamente."
)

// Client defines the interface for relaying a form to Formspree
type Client interface {
	Submit(ctx context.Context, endpoint string, values map[string]string) models.SubmissionResult
}

type clientImpl struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Formspree client. A nil httpClient uses
// http.DefaultClient; no timeout is added beyond the caller's context.
func NewClient(httpClient *http.Client, logger *zap.Logger) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clientImpl{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Submit makes exactly one POST attempt and never returns an error: every
// failure is folded into a result the UI can display.
func (c *clientImpl) Submit(ctx context.Context, endpoint string, values map[string]string) models.SubmissionResult {
	body, contentType, err := encodeMultipart(values)
	if err != nil {
		c.logger.Error("Error encoding form", zap.Error(err))
		return models.SubmissionResult{Success: false, Message: MessageConnection}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		c.logger.Error("Error creating request", zap.String("endpoint", endpoint), zap.Error(err))
		return models.SubmissionResult{Success: false, Message: MessageConnection}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Network or Formspree error", zap.String("endpoint", endpoint), zap.Error(err))
		return models.SubmissionResult{Success: false, Message: MessageConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return models.SubmissionResult{Success: true, Message: MessageSuccess}
	}

	reason := decodeError(resp.Body)
	c.logger.Warn("Formspree rejected submission",
		zap.Int("status", resp.StatusCode),
		zap.String("reason", reason),
	)
	return models.SubmissionResult{Success: false, Message: MessageRejectedPrefix + reason}
}

// decodeError reads the "error" member of a JSON body, falling back to
// the generic message for anything else.
func decodeError(r io.Reader) string {
	var response struct {
		Error string `json:"error"`
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return MessageGenericRejected
	}
	if err := json.Unmarshal(data, &response); err != nil || response.Error == "" {
		return MessageGenericRejected
	}
	return response.Error
}

func encodeMultipart(values map[string]string) (*bytes.Buffer, string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, k := range keys {
		if err := w.WriteField(k, values[k]); err != nil {
			return nil, "", fmt.Errorf("error writing field %s: %w", k, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart body: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}
