package httpx

import (
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/asad/blobfetch/internal/config"
	"github.com/asad/blobfetch/internal/logging"
)

// NewClient builds the single HTTP client shared by listing and downloads.
// One client means one transport, so TCP/TLS connections stay warm across
// every request of a run. The same connect and request timeouts apply
// uniformly to all requests.
func NewClient(cfg *config.Config, logger logging.Logger) *resty.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		MaxIdleConnsPerHost: 4,
	}

	client := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.RequestTimeout)

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		// Log the path only; the full URL would leak the SAS token.
		logger.Debug("request completed",
			logging.String("method", resp.Request.Method),
			logging.String("path", resp.Request.RawRequest.URL.Path),
			logging.Int("status", resp.StatusCode()),
			logging.Duration("latency", resp.Time()),
		)
		return nil
	})

	return client
}
