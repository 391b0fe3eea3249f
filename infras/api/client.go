// Package api is the HTTP client of the restaurant backend.
//
// Reads carry their parameters in the query string, writes are form encoded and
// authenticated calls send the operator's token as "Authorization: JWT <token>".
package api

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dinedesk/config"
	"dinedesk/infras/metrics"
	"dinedesk/infras/otel"
	"dinedesk/shared/constant"
	"dinedesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const maxErrorBodyBytes = 4 << 10

type Request struct {
	Method string
	Path   string
	Token  string
	Query  url.Values
	Form   url.Values
	JSON   any
	// Anonymous requests are sent without a token, e.g. sign in.
	Anonymous bool
}

func Get(path, token string, query url.Values) Request {
	return Request{Method: http.MethodGet, Path: path, Token: token, Query: query}
}

func PostForm(path, token string, form url.Values) Request {
	return Request{Method: http.MethodPost, Path: path, Token: token, Form: form}
}

func PutForm(path, token string, form url.Values) Request {
	return Request{Method: http.MethodPut, Path: path, Token: token, Form: form}
}

func Delete(path, token string) Request {
	return Request{Method: http.MethodDelete, Path: path, Token: token}
}

type Client interface {
	// Do sends req and decodes a 2xx JSON body into out. out may be nil.
	Do(ctx context.Context, req Request, out any) (err error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return NewWithHTTPClient(cfg.Upstream.BaseURL, &http.Client{Timeout: timeout}, ot)
}

func NewWithHTTPClient(baseURL string, httpClient *http.Client, ot otel.Otel) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		otel:       ot,
	}
}

func (c *clientImpl) Do(ctx context.Context, req Request, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".upstream")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		"http.method": req.Method,
		"http.path":   req.Path,
	})

	if !req.Anonymous && req.Token == "" {
		return failure.MissingUpstreamToken
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to build upstream request")

		return fmt.Errorf("failed to build upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		metrics.ObserveUpstream(req.Method, 0)
		log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("failed to reach upstream")

		return failure.BadGateway(fmt.Sprintf("failed to reach upstream: %s", err.Error())) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	metrics.ObserveUpstream(req.Method, resp.StatusCode)
	scope.SetAttribute("http.status_code", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := readErrorMessage(resp.Body)
		log.Warn().Int("status", resp.StatusCode).Str("path", req.Path).Str("message", msg).Msg("upstream returned an error")

		return failure.FromUpstream(resp.StatusCode, msg) //nolint:wrapcheck
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode upstream response")

		return failure.BadGateway("failed to decode upstream response") //nolint:wrapcheck
	}

	return nil
}

func (c *clientImpl) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType = constant.ContentTypeFormURLEncoded
	)

	switch {
	case req.JSON != nil:
		payload, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = bytes.NewReader(payload)
		contentType = constant.ContentTypeJSON
	case req.Form != nil:
		body = strings.NewReader(req.Form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, contentType)
	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if req.Token != "" {
		httpReq.Header.Set(constant.RequestHeaderAuthorization, constant.UpstreamAuthScheme+" "+req.Token)
	}

	return httpReq, nil
}

// readErrorMessage prefers the backend's {"message": "..."} body and falls back to the raw text.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return payload.Message
		}

		if payload.Error != "" {
			return payload.Error
		}

		return ""
	}

	return strings.TrimSpace(string(raw))
}
