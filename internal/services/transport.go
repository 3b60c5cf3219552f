package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// apiClient speaks plain HTTP to the external analysis service.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type formFile struct {
	field string
	file  models.ResumeFile
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (c *apiClient) postMultipart(ctx context.Context, operation, path string, file formFile, fields map[string]string, out any) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(file.field), quoteEscaper.Replace(file.file.Filename)))
	header.Set("Content-Type", file.file.ContentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create %s file part: %w", operation, err)
	}
	if _, err := part.Write(file.file.Data); err != nil {
		return fmt.Errorf("failed to write %s file part: %w", operation, err)
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return fmt.Errorf("failed to write %s field %s: %w", operation, name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close %s form: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req, operation, out)
}

func (c *apiClient) postJSON(ctx context.Context, operation, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, operation, out)
}

func (c *apiClient) do(req *http.Request, operation string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(operation, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProtocolError{Operation: operation, Err: err}
	}
	return nil
}

func newStatusError(operation string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var body struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(raw, &body)

	return &TransportError{
		Operation:     operation,
		StatusCode:    resp.StatusCode,
		ServerMessage: strings.TrimSpace(body.Error),
		Err:           fmt.Errorf("status %s", resp.Status),
	}
}
