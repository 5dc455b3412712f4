package carbon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// defaultRemoteTimeout bounds the single remote attempt. There is no retry:
// a usable CO2e number matters more than using the remote source, and the
// local tables can always complete the request.
const defaultRemoteTimeout = 5 * time.Second

// maxRemoteBodyBytes caps how much of a remote response is read.
const maxRemoteBodyBytes = 1 << 16

// RemoteClient looks up emission values from an optional network-backed
// factor service. Every failure path — missing configuration, network
// error, non-success status, malformed body — delegates to the local
// Calculator, so Calculate never returns an error to its caller.
type RemoteClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	local      *Calculator
	metrics    *Metrics
	now        func() time.Time
}

// RemoteConfig carries the optional remote factor service settings.
// An empty Endpoint or APIKey means local-only mode; that is the
// documented default, not an error.
type RemoteConfig struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// NewRemoteClient wires a remote factor client over the given local
// fallback calculator. metrics may be nil.
func NewRemoteClient(cfg RemoteConfig, local *Calculator, metrics *Metrics) *RemoteClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return &RemoteClient{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		local:      local,
		metrics:    metrics,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Enabled reports whether the remote network path is configured.
func (c *RemoteClient) Enabled() bool {
	return c.endpoint != "" && c.apiKey != ""
}

// Calculate attempts one remote emission lookup and falls back to the
// local calculator on any failure. This is the single choke point for the
// fallback decision: tests can force either path by configuring or
// breaking the endpoint.
func (c *RemoteClient) Calculate(ctx context.Context, in ActivityInput, region string) CalculationResult {
	if !c.Enabled() {
		return c.local.Calculate(in)
	}

	c.metrics.RemoteRequest()
	result, err := c.tryRemote(ctx, in, region)
	if err != nil {
		log.Warn().Err(err).
			Str("category", in.Category.String()).
			Str("activity", in.Activity).
			Msg("remote factor lookup failed, using local tables")
		c.metrics.RemoteFallback()
		return c.local.Calculate(in)
	}
	return result
}

type remoteRequest struct {
	Category string  `json:"category"`
	Activity string  `json:"activity"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Region   string  `json:"region,omitempty"`
}

type remoteResponse struct {
	CO2eKg float64 `json:"co2e_kg"`
	Factor float64 `json:"factor"`
}

// tryRemote issues exactly one request against the factor service.
func (c *RemoteClient) tryRemote(ctx context.Context, in ActivityInput, region string) (CalculationResult, error) {
	amount, unit := Normalize(in.Amount, in.Unit)

	payload, err := json.Marshal(remoteRequest{
		Category: in.Category.String(),
		Activity: in.Activity,
		Amount:   amount,
		Unit:     unit,
		Region:   region,
	})
	if err != nil {
		return CalculationResult{}, fmt.Errorf("encode remote request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return CalculationResult{}, fmt.Errorf("create remote request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return CalculationResult{}, fmt.Errorf("execute remote request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteBodyBytes))
	if err != nil {
		return CalculationResult{}, fmt.Errorf("read remote response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CalculationResult{}, fmt.Errorf("%w: status %d", ErrRemoteStatus, resp.StatusCode)
	}

	var parsed remoteResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return CalculationResult{}, fmt.Errorf("%w: %v", ErrRemoteResponse, err)
	}
	if math.IsNaN(parsed.CO2eKg) || math.IsInf(parsed.CO2eKg, 0) {
		return CalculationResult{}, fmt.Errorf("%w: non-finite co2e value", ErrRemoteResponse)
	}

	return CalculationResult{
		CO2eKg:     Round3(parsed.CO2eKg),
		Category:   in.Category,
		Activity:   in.Activity,
		Amount:     amount,
		Unit:       unit,
		FactorUsed: parsed.Factor,
		Source:     SourceRemote,
		Timestamp:  c.now(),
	}, nil
}
