// Package remote holds the adapters that map repository operations onto the
// ClickToEat REST API. Each adapter method performs exactly one HTTP call.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"clicktoeat/internal/metrics"
	"clicktoeat/internal/models"
)

// Client performs calls against the REST API rooted at baseURL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client. A nil httpClient means http.DefaultClient.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

type call struct {
	operation string
	method    string
	path      string
	token     string
	body      any
	form      *form
}

// form is a multipart submission: text fields plus an optional image part.
type form struct {
	fields map[string]string
	image  *models.ImageUpload
}

// do sends the call and decodes the response into T. Every failure comes
// back as models.FieldErrors or *models.DefaultError.
func do[T any](ctx context.Context, c *Client, cl call) (T, error) {
	var out T
	start := time.Now()

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		metrics.RecordUpstreamCall(cl.operation, "transport", time.Since(start))
		return out, &models.DefaultError{Message: fmt.Sprintf("%s: build request: %v", cl.operation, err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(cl.operation, "transport", time.Since(start))
		// A cancelled subscriber is not a server failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, ctxErr
		}
		return out, &models.DefaultError{Message: "unable to reach server: " + err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		metrics.RecordUpstreamCall(cl.operation, "error", time.Since(start))
		return out, models.ErrUnreadableBody
	}

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.Unmarshal(body, &out); err != nil {
			metrics.RecordUpstreamCall(cl.operation, "error", time.Since(start))
			return out, models.ErrUnreadableBody
		}
		metrics.RecordUpstreamCall(cl.operation, "ok", time.Since(start))
		return out, nil
	case http.StatusBadRequest:
		if fe := decodeFieldErrors(body); len(fe) > 0 {
			metrics.RecordUpstreamCall(cl.operation, "field_error", time.Since(start))
			return out, fe
		}
		fallthrough
	default:
		metrics.RecordUpstreamCall(cl.operation, "error", time.Since(start))
		return out, decodeDefaultError(resp.StatusCode, body)
	}
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	var (
		body        io.Reader
		contentType string
	)
	switch {
	case cl.form != nil:
		buf, ct, err := cl.form.encode()
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case cl.body != nil:
		data, err := json.Marshal(cl.body)
		if err != nil {
			return nil, err
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	return req, nil
}

func (f *form) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range f.fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if f.image != nil {
		ct := f.image.ContentType
		if ct == "" {
			ct = http.DetectContentType(f.image.Data)
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, f.image.FileName))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(f.image.Data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

func decodeFieldErrors(body []byte) models.FieldErrors {
	var list models.FieldErrors
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}
	var wrapped struct {
		Errors models.FieldErrors `json:"errors"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		return wrapped.Errors
	}
	return nil
}

func decodeDefaultError(status int, body []byte) *models.DefaultError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := strings.TrimSpace(payload.Error)
	if msg == "" {
		msg = strings.TrimSpace(payload.Message)
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &models.DefaultError{Status: status, Message: msg}
}

func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
