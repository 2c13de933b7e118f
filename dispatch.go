// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package botapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"go.astrophena.name/botapi/internal/request"
	"go.astrophena.name/botapi/params"
	"go.astrophena.name/botapi/record"
	"go.astrophena.name/botapi/types"
)

// errorState is the outcome of the most recent failed request. A zero
// errorState means the last request succeeded.
type errorState struct {
	status int
	body   []byte
	apiErr *APIError
}

// Get calls method with an HTTP GET request, passing p in the query string,
// and returns the response body.
//
// A response reporting an API failure is returned as is and recorded in the
// client's error state; only transport failures produce an error.
func (c *Client) Get(ctx context.Context, method string, p *params.Bag) ([]byte, error) {
	raw, _, err := c.dispatch(ctx, http.MethodGet, method, p, nil, "")
	return raw, err
}

// Post calls method with an HTTP POST request and returns the response body.
// Like Get, it passes p in the query string.
func (c *Client) Post(ctx context.Context, method string, p *params.Bag) ([]byte, error) {
	raw, _, err := c.dispatch(ctx, http.MethodPost, method, p, nil, "")
	return raw, err
}

// Upload calls method with a multipart/form-data POST request carrying f in
// the parameter field. A file_id or URL is passed in the query string along
// with p; content to upload is sent as the request body.
func (c *Client) Upload(ctx context.Context, method string, p *params.Bag, field string, f types.InputFile) ([]byte, error) {
	raw, _, err := c.upload(ctx, method, p, field, f)
	return raw, err
}

func (c *Client) upload(ctx context.Context, method string, p *params.Bag, field string, f types.InputFile) ([]byte, bool, error) {
	if !f.IsUpload() {
		p = p.Clone().Add(field, f.Ref())
		return c.dispatch(ctx, http.MethodPost, method, p, nil, "multipart/form-data")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	name := f.Name
	if name == "" {
		name = field
	}
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", method, err)
	}
	if _, err := io.Copy(fw, f.Reader); err != nil {
		return nil, false, fmt.Errorf("%s: reading %s: %w", method, name, err)
	}
	if err := mw.Close(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", method, err)
	}
	return c.dispatch(ctx, http.MethodPost, method, p, &buf, mw.FormDataContentType())
}

func (c *Client) methodURL(method string, p *params.Bag) string {
	return c.baseURL + "/bot" + c.token + "/" + method + p.QueryString()
}

// dispatch makes one request and records its outcome. It reports whether the
// API accepted the request.
func (c *Client) dispatch(ctx context.Context, httpMethod, method string, p *params.Bag, body io.Reader, contentType string) ([]byte, bool, error) {
	rp := request.Params{
		Method:     httpMethod,
		URL:        c.methodURL(method, p),
		HTTPClient: c.httpc,
		Scrubber:   c.scrubber,
	}
	if body != nil {
		rp.Body = body
	}
	if contentType != "" {
		rp.Headers = map[string]string{"Content-Type": contentType}
	}

	status := http.StatusOK
	raw, err := request.Make[request.Bytes](ctx, rp)
	if err != nil {
		var statusErr *request.StatusError
		if !errors.As(err, &statusErr) {
			c.slog.Debug("request failed", slog.String("method", method), slog.String("http_method", httpMethod), slog.Any("err", err))
			return nil, false, err
		}
		raw, status = statusErr.Body, statusErr.StatusCode
	}

	ok := c.record(method, status, raw)
	c.slog.Debug("request", slog.String("method", method), slog.String("http_method", httpMethod), slog.Int("status", status))
	return raw, ok, nil
}

// record updates the error state from a response and reports whether the
// response is a success.
func (c *Client) record(method string, status int, raw []byte) bool {
	apiErr := failure(status, raw)
	if apiErr == nil {
		c.state.Store(errorState{})
	} else {
		c.state.Store(errorState{status: apiErr.StatusCode, body: raw, apiErr: apiErr})
	}
	if apiErr != nil {
		c.slog.Warn("request rejected",
			slog.String("method", method),
			slog.Int("error_code", apiErr.ErrorCode),
			slog.String("description", apiErr.Description),
		)
		return false
	}
	return true
}

// failure returns the API error described by a response, or nil if the
// response is a success.
func failure(status int, raw []byte) *APIError {
	trimmed := bytes.TrimSpace(raw)
	o, _ := record.Parse(trimmed)
	if status == http.StatusOK {
		switch {
		case o != nil && o.Has("ok"):
			if o.Bool("ok") {
				return nil
			}
		case string(trimmed) == "false":
		default:
			return nil
		}
	}

	e := &APIError{StatusCode: status, ErrorCode: status}
	if o != nil {
		e.ErrorCode = o.IntOr("error_code", status)
		e.Description = o.String("description")
		if p := o.Object("parameters"); p != nil {
			e.RetryAfter = p.IntOr("retry_after", 0)
			e.MigrateToChatID = p.Int64Or("migrate_to_chat_id", 0)
		}
	}
	if status == http.StatusOK && e.ErrorCode != status {
		e.StatusCode = e.ErrorCode
	}
	return e
}

// StatusCode returns the HTTP status of the last failed request, or the
// error_code it reported when the HTTP status was 200. It returns 0 if the
// last request succeeded.
func (c *Client) StatusCode() int {
	return c.state.Load().status
}

// ErrorResponse returns the body of the last failed request, or "" if the
// last request succeeded. An empty body is reported as the configured
// default error message.
func (c *Client) ErrorResponse() string {
	s := c.state.Load()
	if s.apiErr != nil && len(bytes.TrimSpace(s.body)) == 0 {
		return c.errMsg
	}
	return string(s.body)
}

// JSONErrorResponse returns the body of the last failed request as a JSON
// object, or nil if the last request succeeded or the body isn't a JSON
// object.
func (c *Client) JSONErrorResponse() *record.Object {
	body := c.state.Load().body
	if body == nil {
		return nil
	}
	o, err := record.Parse(body)
	if err != nil {
		return nil
	}
	return o
}

// LastError returns the error reported by the last failed request, or nil if
// the last request succeeded.
func (c *Client) LastError() *APIError {
	return c.state.Load().apiErr
}

// PrintErrorResponse writes a one-line description of the last failed request
// to w. It writes nothing if the last request succeeded.
func (c *Client) PrintErrorResponse(w io.Writer) {
	e := c.LastError()
	if e == nil {
		return
	}
	desc := e.Description
	if desc == "" {
		desc = c.ErrorResponse()
	}
	fmt.Fprintf(w, "%d: %s\n", e.StatusCode, desc)
}

// FileURL returns the download link of a file returned by getFile. The link
// contains the bot token and must not be shared.
func (c *Client) FileURL(filePath string) string {
	return c.baseURL + "/file/bot" + c.token + "/" + strings.TrimPrefix(filePath, "/")
}

// Download returns the contents of a file returned by getFile.
func (c *Client) Download(ctx context.Context, filePath string) ([]byte, error) {
	b, err := request.Make[request.Bytes](ctx, request.Params{
		Method:     http.MethodGet,
		URL:        c.FileURL(filePath),
		HTTPClient: c.httpc,
		Scrubber:   c.scrubber,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
