package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// APIError is a non-2xx backend response. Body holds the parsed JSON body
// when it parsed, else the raw response text.
type APIError struct {
	Status  int
	Body    any
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Query maps parameter names to already-formatted values. Entries with an
// empty value are never serialized: this is the one mechanism that
// distinguishes "no filter" from "filter on empty value".
type Query map[string]string

func (q Query) encode() string {
	if len(q) == 0 {
		return ""
	}
	vals := url.Values{}
	for k, v := range q {
		if v == "" {
			continue
		}
		vals.Set(k, v)
	}
	if len(vals) == 0 {
		return ""
	}
	return "?" + vals.Encode()
}

// Bool formats a boolean query value.
func Bool(v bool) string { return strconv.FormatBool(v) }

// Int formats an integer query value.
func Int(v int) string { return strconv.Itoa(v) }

// Client is the HTTP client for the backend REST API. One call per action:
// no retries, no timeout of its own, cancellation only through ctx.
type Client struct {
	base string
	hc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{},
	}
}

func (c *Client) Get(ctx context.Context, path string, q Query, out any) error {
	return c.do(ctx, http.MethodGet, path+q.encode(), nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON; a nil body sends an empty request, which the
// action-only endpoints (confirm, cancel) expect.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rdr)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	text, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	// Body is read as text first and parsed only when non-empty; a body that
	// is not JSON stays around as raw text.
	var parsed any
	if len(text) > 0 {
		if err := json.Unmarshal(text, &parsed); err != nil {
			parsed = string(text)
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := "HTTP " + strconv.Itoa(res.StatusCode)
		if obj, ok := parsed.(map[string]any); ok {
			if m, ok := obj["message"]; ok {
				msg = fmt.Sprint(m)
			}
		}
		return &APIError{Status: res.StatusCode, Body: parsed, Message: msg}
	}

	if out != nil && len(text) > 0 {
		// A 2xx body that is not JSON is a parse anomaly, not a failure.
		if err := json.Unmarshal(text, out); err != nil {
			return nil
		}
	}
	return nil
}

func defaultInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
