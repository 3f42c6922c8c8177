package scheduler

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/sbilibin2017/updown/internal/models"
)

// drained before closing so keep-alive connections can be reused
const maxDrainSize = 1 << 20 // 1MB

// connection pooling limits for probing many sites
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 2
	defaultMaxConnsPerHost     = 4
	defaultIdleConnTimeout     = 90 * time.Second
)

// HTTPProber performs one GET per probe and reports the response status or a
// failure sentinel.
type HTTPProber struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewHTTPProber creates a prober whose requests are bounded by timeout.
// Timeouts are applied per request through the context, not on the client.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
		timeout: timeout,
	}
}

// Probe fetches url and returns its HTTP status code, or a negative sentinel
// when no response was received, along with the elapsed time.
func (p *HTTPProber) Probe(ctx context.Context, url string) (int, time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.StatusInvalidRequest, time.Since(start)
	}
	req.Header.Set("User-Agent", "updown-probe/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ClassifyError(err), time.Since(start)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))

	return resp.StatusCode, time.Since(start)
}

// Close releases idle connections.
func (p *HTTPProber) Close() {
	if transport, ok := p.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}

// ClassifyError maps a transport error to a failure sentinel.
func ClassifyError(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return models.StatusTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return models.StatusDNSError
	}

	if isTLSError(err) {
		return models.StatusTLSError
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return models.StatusConnRefused
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return models.StatusTimeout
	}

	return models.StatusConnectionError
}

func isTLSError(err error) bool {
	var (
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		alertErr    tls.AlertError
		unknownAuth x509.UnknownAuthorityError
		hostnameErr x509.HostnameError
		invalidCert x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidCert)
}
