package vendorhttp

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/social-media-os-api/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxResponseBody = 10 << 20

// Doer executa chamadas às APIs das plataformas
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

type Request struct {
	Vendor        string
	Method        string
	URL           string
	Query         url.Values
	Header        http.Header
	BearerToken   string
	JSON          any
	Body          io.Reader
	ContentType   string
	ContentLength int64
}

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Success indica status 2xx
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode decodifica o corpo JSON; corpo vazio não é erro
func (r *Response) Decode(v any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta da plataforma")
	}
	return nil
}

type Client struct {
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		metrics:    metrics.Get(),
	}
}

func (c *Client) Do(ctx context.Context, r *Request) (*Response, error) {
	target := r.URL
	if len(r.Query) > 0 {
		target = target + "?" + r.Query.Encode()
	}

	body := r.Body
	contentType := r.ContentType
	if r.JSON != nil {
		payload, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao serializar requisição para %s", r.Vendor)
		}
		body = bytes.NewReader(payload)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, errors.Wrapf(redact(err), "erro ao criar requisição para %s", r.Vendor)
	}

	if r.JSON == nil && r.ContentLength > 0 {
		req.ContentLength = r.ContentLength
	}

	for key, values := range r.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if r.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.BearerToken)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.VendorRequestDuration.WithLabelValues(r.Vendor).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.VendorRequestTotal.WithLabelValues(r.Vendor, metrics.StatusClass(0)).Inc()
		return nil, errors.Wrapf(redact(err), "falha na chamada a %s", r.Vendor)
	}
	defer resp.Body.Close()

	c.metrics.VendorRequestTotal.WithLabelValues(r.Vendor, metrics.StatusClass(resp.StatusCode)).Inc()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, errors.Wrapf(redact(err), "erro ao ler resposta de %s", r.Vendor)
	}

	logrus.WithFields(logrus.Fields{
		"vendor":      r.Vendor,
		"method":      r.Method,
		"url":         RedactURL(r.URL),
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("Chamada à plataforma concluída")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// RedactURL remove query string e credenciais de uma URL antes de registrá-la
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<url inválida>"
	}
	u.User = nil
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// redact evita que tokens passados em query string apareçam nas mensagens de erro
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: RedactURL(urlErr.URL), Err: urlErr.Err}
	}
	return err
}
