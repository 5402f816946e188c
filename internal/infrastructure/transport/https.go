// Package transport posts carrier request documents over HTTPS.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultIdleTimeout = 90 * time.Second
	userAgent          = "fedex-carrier/1.0"
)

// Config controls the HTTPS client.
type Config struct {
	Timeout         time.Duration
	IdleConnTimeout time.Duration
	MinTLSVersion   uint16
	// ContentType is sent with every request. Defaults to text/xml.
	ContentType string
}

// DefaultConfig returns the settings used when none are supplied.
func DefaultConfig() Config {
	return Config{
		Timeout:         defaultTimeout,
		IdleConnTimeout: defaultIdleTimeout,
		MinTLSVersion:   tls.VersionTLS12,
		ContentType:     "text/xml; charset=utf-8",
	}
}

// HTTPSClient implements ports.Transport.
type HTTPSClient struct {
	client      *http.Client
	contentType string
	log         zerolog.Logger
}

var _ ports.Transport = (*HTTPSClient)(nil)

// NewHTTPSClient builds a client from cfg, filling unset fields from DefaultConfig.
func NewHTTPSClient(cfg Config, log zerolog.Logger) *HTTPSClient {
	def := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.IdleConnTimeout <= 0 {
		cfg.IdleConnTimeout = def.IdleConnTimeout
	}
	if cfg.MinTLSVersion == 0 {
		cfg.MinTLSVersion = def.MinTLSVersion
	}
	if cfg.ContentType == "" {
		cfg.ContentType = def.ContentType
	}

	rt := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     &tls.Config{MinVersion: cfg.MinTLSVersion},
		IdleConnTimeout:     cfg.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	}

	return &HTTPSClient{
		client:      &http.Client{Transport: rt, Timeout: cfg.Timeout},
		contentType: cfg.ContentType,
		log:         log,
	}
}

// Send posts body to endpoint and returns the reply body. Any status other
// than 200 is an error.
func (c *HTTPSClient) Send(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", c.contentType)
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	reply, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("carrier round trip")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, truncate(reply, 512))
	}
	return reply, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
