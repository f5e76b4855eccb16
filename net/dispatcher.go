package net

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/relayhq/relay"
	"github.com/relayhq/relay/util"
)

// Sender issues a single webhook delivery attempt. There is no retry or
// backoff behind this interface: one call is one POST.
type Sender interface {
	SendWebhook(ctx context.Context, endpoint string, payload json.RawMessage) (*Response, error)
}

type Dispatcher struct {
	client *http.Client
}

func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		client: &http.Client{Timeout: timeout},
	}
}

// SendWebhook POSTs payload to endpoint and captures the raw outcome.
// Transport failures return a non-nil error with the partial Response;
// HTTP-level failures (non-2xx) are left to the caller to interpret
// from the status code and body.
func (d *Dispatcher) SendWebhook(ctx context.Context, endpoint string, payload json.RawMessage) (*Response, error) {
	r := &Response{}

	if util.IsStringEmpty(endpoint) {
		err := errors.New("webhook endpoint is required")
		r.Error = err.Error()
		return r, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		r.Error = err.Error()
		return r, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", string(relay.DefaultUserAgent))

	r.RequestHeader = req.Header
	r.URL = req.URL
	r.Method = req.Method

	response, err := d.client.Do(req)
	if err != nil {
		r.Error = err.Error()
		return r, err
	}
	defer response.Body.Close()

	r.Status = response.Status
	r.StatusCode = response.StatusCode
	r.ResponseHeader = response.Header

	body, err := io.ReadAll(response.Body)
	r.Body = body
	if err != nil {
		r.Error = err.Error()
		return r, err
	}

	return r, nil
}

type Response struct {
	Status         string
	StatusCode     int
	Method         string
	URL            *url.URL
	RequestHeader  http.Header
	ResponseHeader http.Header
	Body           []byte
	Error          string
}

// IsSuccess reports whether the delivery got a 2xx back.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
