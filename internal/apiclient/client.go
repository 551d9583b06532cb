package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const maxResponseBytes = 10 << 20

// Session supplies the bearer token for outgoing requests. Token is called on every
// request so a login or logout takes effect on the next call. Revoke is called when
// the backend rejects the token.
type Session interface {
	Token() string
	Revoke()
}

type envelope interface {
	envelope() *Response
}

// Client talks to the blogging backend. A Client is safe for concurrent use; bind it
// to a session with WithSession before calling authenticated endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	logger     *slog.Logger
}

func New(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: must be an absolute http(s) URL", baseURL)
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithSession returns a copy of the client that authenticates with s.
func (c *Client) WithSession(s Session) *Client {
	cp := *c
	cp.session = s
	return &cp
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return u
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, dst envelope) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	c.logger.Debug("api call", slog.String("method", method), slog.String("path", path), slog.Int("status", res.StatusCode))

	body = io.LimitReader(res.Body, maxResponseBytes)

	if res.StatusCode == http.StatusUnauthorized {
		if c.session != nil {
			c.session.Revoke()
		}
		return &APIError{Status: res.StatusCode, Message: readMessage(body)}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &APIError{Status: res.StatusCode, Message: readMessage(body)}
	}

	err = decodeJSON(body, dst)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if env := dst.envelope(); !env.Success {
		return &APIError{Status: res.StatusCode, Message: env.Message}
	}

	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any, dst envelope) error {
	if payload == nil {
		return c.do(ctx, method, path, nil, nil, "", dst)
	}

	js, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return c.do(ctx, method, path, nil, bytes.NewReader(js), "application/json", dst)
}

// readMessage extracts the envelope message from an error body, if there is one.
func readMessage(r io.Reader) string {
	var res Response
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return ""
	}

	return res.Message
}

func decodeJSON(r io.Reader, dst any) error {
	err := json.NewDecoder(r).Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("response body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("response body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("response body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("response body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("response body must not be empty")
		default:
			return err
		}
	}

	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
