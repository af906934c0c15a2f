// Package apiclient talks to the external café API. All café data lives
// behind that API; this package only shapes requests and normalizes error
// bodies into single human-readable messages.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response reduced to one displayable message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type Client struct {
	BaseURL     string
	MediaOrigin string
	client      *http.Client
}

func NewClient(baseURL, mediaOrigin string) *Client {
	return &Client{
		BaseURL:     strings.TrimRight(baseURL, "/"),
		MediaOrigin: strings.TrimRight(mediaOrigin, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// errorBody is the shape the API uses for failures: detail is either a plain
// string or a list of {msg} field errors.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type fieldError struct {
	Msg string `json:"msg"`
}

func parseDetail(body []byte) (string, []string) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err == nil {
		return s, nil
	}
	var list []fieldError
	if err := json.Unmarshal(eb.Detail, &list); err == nil {
		msgs := make([]string, 0, len(list))
		for _, fe := range list {
			if fe.Msg != "" {
				msgs = append(msgs, fe.Msg)
			}
		}
		return "", msgs
	}
	return "", nil
}

// responseError turns a non-2xx response into an APIError. When flatten is
// set, a validation-error list collapses to its first message; otherwise the
// messages are joined. Unparseable bodies fall back to "HTTP <status>".
func responseError(status int, body []byte, flatten bool) error {
	detail, msgs := parseDetail(body)
	msg := ""
	switch {
	case flatten && len(msgs) > 0:
		msg = msgs[0]
	case detail != "":
		msg = detail
	case len(msgs) > 0:
		msg = strings.Join(msgs, "; ")
	}
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{Status: status, Message: msg}
}

func (c *Client) do(method, path, token string, payload interface{}, out interface{}, flatten bool) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, data, flatten)
	}

	if out == nil {
		return nil
	}
	if method == http.MethodDelete {
		// DELETE may legitimately answer with an empty or non-JSON body, so
		// the decode is best effort.
		_ = json.Unmarshal(data, out)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// Get issues an unauthenticated JSON GET.
func (c *Client) Get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, "", nil, out, false)
}

// GetAuth is Get with a bearer header. Validation-error lists collapse to
// their first message.
func (c *Client) GetAuth(path, token string, out interface{}) error {
	return c.do(http.MethodGet, path, token, nil, out, true)
}

func (c *Client) Post(path string, payload, out interface{}, token string) error {
	return c.do(http.MethodPost, path, token, payload, out, true)
}

func (c *Client) Put(path string, payload, out interface{}, token string) error {
	return c.do(http.MethodPut, path, token, payload, out, true)
}

func (c *Client) Delete(path, token string) error {
	return c.do(http.MethodDelete, path, token, nil, &map[string]interface{}{}, false)
}

// UploadFile posts a single file as multipart form data to the upload
// endpoint and returns the stored asset's reference.
func (c *Client) UploadFile(fileName string, r io.Reader, token string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/admin/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("upload %s: read body: %w", fileName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", responseError(resp.StatusCode, data, false)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("upload %s: decode response: %w", fileName, err)
	}
	return result.URL, nil
}

// ResolveImage makes an image reference renderable: absolute URLs pass
// through, origin-relative paths get the media origin prepended.
func (c *Client) ResolveImage(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return c.MediaOrigin + ref
}
