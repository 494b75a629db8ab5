package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/igdimer/currency-converter/internal/platform/metrics"
)

// ErrUnknownResponse marks a provider response that cannot be interpreted:
// missing success flag, structured failure without error.info, missing
// quotes/currencies payload, non-2xx status or an undecodable body.
var ErrUnknownResponse = errors.New("unknown error from third party service")

// ClientError is a structured provider failure (success=false with error.info).
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string { return e.Message }

// ExchangerateClient wraps the exchangerate.host-style API. A single underlying
// http.Client is reused for the client's whole lifetime, including concurrent
// favorites batches.
type ExchangerateClient struct {
	http      *http.Client
	baseURL   string
	accessKey string
	metrics   *metrics.ExchangeMetrics
}

func NewExchangerateClient(httpClient *http.Client, baseURL string, accessKey string, m *metrics.ExchangeMetrics) *ExchangerateClient {
	return &ExchangerateClient{
		http:      httpClient,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		accessKey: accessKey,
		metrics:   m,
	}
}

type apiResponse struct {
	Success    *bool              `json:"success"`
	Currencies map[string]string  `json:"currencies"`
	Quotes     map[string]float64 `json:"quotes"`
	Error      *apiError          `json:"error"`
}

type apiError struct {
	Code int    `json:"code"`
	Info string `json:"info"`
}

// GetAvailableCurrencies lists the currencies supported by the provider as a
// code -> display name mapping.
func (c *ExchangerateClient) GetAvailableCurrencies(ctx context.Context) (map[string]string, error) {
	body, err := c.get(ctx, "list", nil)
	if err != nil {
		return nil, err
	}
	if body.Currencies == nil {
		return nil, fmt.Errorf("list response has no currencies: %w", ErrUnknownResponse)
	}
	return body.Currencies, nil
}

// GetRate fetches the live rate for one pair. The rate is read from the
// quotes mapping under the concatenated pair key.
func (c *ExchangerateClient) GetRate(ctx context.Context, base string, target string) (float64, error) {
	body, err := c.get(ctx, "live", url.Values{
		"source":     []string{base},
		"currencies": []string{target},
	})
	if err != nil {
		return 0, err
	}

	rate, ok := body.Quotes[base+target]
	if !ok {
		return 0, fmt.Errorf("live response has no quote for %q: %w", base+target, ErrUnknownResponse)
	}
	return rate, nil
}

// get performs one round trip and normalizes the success/error envelope.
// No retries: a single upstream failure fails the operation.
func (c *ExchangerateClient) get(ctx context.Context, endpoint string, params url.Values) (*apiResponse, error) {
	u, err := url.Parse(c.baseURL + "/" + endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse provider URL: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("access_key", c.accessKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", endpoint, err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.RecordProviderRequest(endpoint, "transport_error", time.Since(start))
		return nil, fmt.Errorf("failed to execute request for %q: %v: %w", endpoint, err, ErrUnknownResponse)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.metrics.RecordProviderRequest(endpoint, "bad_status", time.Since(start))
		return nil, fmt.Errorf("unexpected status %d for %q: %w", resp.StatusCode, endpoint, ErrUnknownResponse)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.metrics.RecordProviderRequest(endpoint, "decode_error", time.Since(start))
		return nil, fmt.Errorf("failed to decode response for %q: %v: %w", endpoint, err, ErrUnknownResponse)
	}

	if body.Success == nil {
		c.metrics.RecordProviderRequest(endpoint, "malformed", time.Since(start))
		return nil, fmt.Errorf("response for %q has no success flag: %w", endpoint, ErrUnknownResponse)
	}
	if !*body.Success {
		if body.Error == nil || body.Error.Info == "" {
			c.metrics.RecordProviderRequest(endpoint, "malformed", time.Since(start))
			return nil, fmt.Errorf("failure response for %q has no error info: %w", endpoint, ErrUnknownResponse)
		}
		c.metrics.RecordProviderRequest(endpoint, "provider_error", time.Since(start))
		return nil, &ClientError{Message: body.Error.Info}
	}

	c.metrics.RecordProviderRequest(endpoint, "success", time.Since(start))
	return &body, nil
}
