package blob

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"

	"github.com/asad/blobfetch/internal/logging"
)

const fallbackChunkSize = 256 * 1024

// Client talks to one container through a SAS URL. The URL is split once
// into a base address (scheme, host, path) and the signed token query
// string; every listing page and blob fetch reuses both.
type Client struct {
	http      *resty.Client
	base      string
	token     string
	chunkSize int
	logger    logging.Logger
}

// NewClient splits the SAS URL and wraps the shared HTTP client. The token
// is treated as an opaque, already-valid credential; it is attached to every
// request and never inspected.
func NewClient(sasURL string, httpc *resty.Client, chunkSize int, logger logging.Logger) (*Client, error) {
	u, err := url.Parse(sasURL)
	if err != nil {
		return nil, validationErrorf("invalid SAS URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, validationErrorf("SAS URL must be absolute (scheme and host): %q", sasURL)
	}
	if u.RawQuery == "" {
		return nil, validationErrorf("SAS URL carries no token query string: %q", sasURL)
	}

	if chunkSize <= 0 {
		chunkSize = fallbackChunkSize
	}

	return &Client{
		http:      httpc,
		base:      fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, u.Path),
		token:     u.RawQuery,
		chunkSize: chunkSize,
		logger:    logger,
	}, nil
}

// Base returns the container URL without the token query string.
func (c *Client) Base() string {
	return c.base
}

// Token returns the raw SAS query string.
func (c *Client) Token() string {
	return c.token
}

// ListBlobs walks the container listing page by page, following the
// continuation marker until the service stops returning one. The result is
// every record in service order. Any page failure aborts the traversal with
// no partial result: a non-success status yields a TransportError, a
// malformed body a ParseError.
func (c *Client) ListBlobs(ctx context.Context) ([]Record, error) {
	var (
		records []Record
		marker  string
	)

	for {
		listURL := fmt.Sprintf("%s?restype=container&comp=list&%s", c.base, c.token)
		if marker != "" {
			listURL += "&marker=" + url.QueryEscape(marker)
		}

		resp, err := c.http.R().SetContext(ctx).Get(listURL)
		if err != nil {
			return nil, &TransportError{URL: c.base, Err: err}
		}
		if resp.IsError() {
			return nil, &TransportError{URL: c.base, StatusCode: resp.StatusCode()}
		}

		var page enumerationResults
		if err := xml.Unmarshal(resp.Body(), &page); err != nil {
			return nil, &ParseError{Err: err}
		}

		for _, entry := range page.Blobs {
			records = append(records, entry.record())
		}

		c.logger.Debug("listing page fetched",
			logging.Int("blobs", len(page.Blobs)),
			logging.String("next_marker", page.NextMarker),
		)

		if page.NextMarker == "" {
			break
		}
		marker = page.NextMarker
	}

	return records, nil
}

// Download streams one blob into destDir, preserving any folder structure in
// the blob name. Parent directories are created as needed and existing files
// are overwritten. A transfer that fails midway can leave a partial file
// behind; nothing rolls it back.
func (c *Client) Download(ctx context.Context, name, destDir string) (string, error) {
	blobURL := fmt.Sprintf("%s/%s?%s", c.base, name, c.token)

	outPath := filepath.Join(destDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory for %s: %w", outPath, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(blobURL)
	if err != nil {
		return "", &TransportError{URL: c.base + "/" + name, Err: err}
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.IsError() {
		return "", &TransportError{URL: c.base + "/" + name, StatusCode: resp.StatusCode()}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", outPath, err)
	}

	_, err = io.CopyBuffer(f, body, make([]byte, c.chunkSize))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}

	c.logger.Debug("blob downloaded",
		logging.String("name", name),
		logging.String("path", outPath),
	)

	return outPath, nil
}
