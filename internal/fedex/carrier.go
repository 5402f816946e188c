package fedex

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/fedex-carrier/internal/core/domain"
	"github.com/99minutos/fedex-carrier/internal/core/ports"
)

// Name is the carrier name reported on rate estimates.
const Name = "FedEx"

const (
	TestURL = "https://gatewaybeta.fedex.com:443/xml"
	LiveURL = "https://gateway.fedex.com:443/xml"
)

// Config is the adapter-level configuration shared by every call.
type Config struct {
	Credentials
	// Defaults are merged under the options of every call.
	Defaults domain.Options
	TestURL  string
	LiveURL  string
}

// Carrier implements ports.Carrier against FedEx Web Services. It holds no
// per-call state and is safe for concurrent use.
type Carrier struct {
	cfg       Config
	transport ports.Transport
	builder   requestBuilder
	log       zerolog.Logger
}

var _ ports.Carrier = (*Carrier)(nil)

// Option customises a Carrier.
type Option func(*Carrier)

// WithLogger sets the logger used for exchange diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Carrier) { c.log = l }
}

// WithClock overrides the clock used for default ship timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Carrier) { c.builder.now = now }
}

// New returns a Carrier sending through transport.
func New(cfg Config, transport ports.Transport, opts ...Option) *Carrier {
	if cfg.TestURL == "" {
		cfg.TestURL = TestURL
	}
	if cfg.LiveURL == "" {
		cfg.LiveURL = LiveURL
	}
	c := &Carrier{
		cfg:       cfg,
		transport: transport,
		builder:   requestBuilder{creds: cfg.Credentials, now: time.Now},
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Carrier) Name() string { return Name }

// FindRates quotes every service available for the route. Defaults to the test endpoint.
func (c *Carrier) FindRates(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.Options) (*domain.RateResponse, error) {
	opts = c.cfg.Defaults.Merge(opts)

	req, err := c.builder.Rate(origin, destination, packages, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.commit(ctx, "rate", req, opts.TestMode(true))
	if err != nil {
		return nil, err
	}
	resp, err := parseRateReply(body, origin, destination, packages)
	if err != nil {
		return nil, fmt.Errorf("fedex rate: %w", err)
	}
	resp.XML, resp.Request = string(body), req
	c.logOutcome("rate", resp.Response)
	return resp, nil
}

// CreateShipment buys a label. Defaults to the test endpoint.
func (c *Carrier) CreateShipment(ctx context.Context, origin, destination domain.Location, packages []domain.Package, opts domain.Options) (*domain.ShipResponse, error) {
	opts = c.cfg.Defaults.Merge(opts)

	req, err := c.builder.Ship(origin, destination, packages, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.commit(ctx, "ship", req, opts.TestMode(true))
	if err != nil {
		return nil, err
	}
	resp, err := parseShipReply(body)
	if err != nil {
		return nil, fmt.Errorf("fedex ship: %w", err)
	}
	resp.XML, resp.Request = string(body), req
	resp.ServiceType = shipServiceType(opts)
	c.logOutcome("ship", resp.Response)
	return resp, nil
}

// DeleteShipment voids a shipment. Defaults to the test endpoint.
func (c *Carrier) DeleteShipment(ctx context.Context, trackingNumber, shipmentType string, opts domain.Options) (*domain.DeleteResponse, error) {
	opts = c.cfg.Defaults.Merge(opts)

	req, err := c.builder.Delete(trackingNumber, shipmentType, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.commit(ctx, "delete", req, opts.TestMode(true))
	if err != nil {
		return nil, err
	}
	resp, err := parseDeleteReply(body)
	if err != nil {
		return nil, fmt.Errorf("fedex delete: %w", err)
	}
	resp.XML, resp.Request = string(body), req
	c.logOutcome("delete", resp.Response)
	return resp, nil
}

// FindTrackingInfo returns the scan history of a shipment. Unlike the other
// operations it defaults to the live endpoint.
func (c *Carrier) FindTrackingInfo(ctx context.Context, trackingNumber string, opts domain.Options) (*domain.TrackingResponse, error) {
	opts = c.cfg.Defaults.Merge(opts)

	req, err := c.builder.Track(trackingNumber, opts)
	if err != nil {
		return nil, err
	}
	body, err := c.commit(ctx, "track", req, opts.TestMode(false))
	if err != nil {
		return nil, err
	}
	resp, err := parseTrackReply(body)
	if err != nil {
		return nil, fmt.Errorf("fedex track: %w", err)
	}
	resp.XML, resp.Request = string(body), req
	c.logOutcome("track", resp.Response)
	return resp, nil
}

func (c *Carrier) commit(ctx context.Context, operation, request string, test bool) ([]byte, error) {
	endpoint := c.cfg.LiveURL
	if test {
		endpoint = c.cfg.TestURL
	}

	c.log.Debug().Str("operation", operation).Str("endpoint", endpoint).Int("bytes", len(request)).Msg("sending fedex request")

	body, err := c.transport.Send(ctx, endpoint, []byte(request))
	if err != nil {
		c.log.Error().Err(err).Str("operation", operation).Str("endpoint", endpoint).Msg("fedex request failed")
		return nil, fmt.Errorf("fedex %s: %w: %w", operation, domain.ErrTransport, err)
	}
	return body, nil
}

func (c *Carrier) logOutcome(operation string, r domain.Response) {
	c.log.Debug().Str("operation", operation).Bool("success", r.Success).Str("message", r.Message).Msg("fedex reply")
}
