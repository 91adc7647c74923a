package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// assetDownloader materializes raw bytes from a result locator.
type assetDownloader interface {
	download(ctx context.Context, uri string) ([]byte, error)
}

// httpDownloader fetches generated assets with the API key appended, since
// result locators require the same credential as the generation call.
type httpDownloader struct {
	apiKey     string
	httpClient *resty.Client
}

func newHTTPDownloader(apiKey string) *httpDownloader {
	return &httpDownloader{
		apiKey:     apiKey,
		httpClient: resty.New(),
	}
}

func (d *httpDownloader) download(ctx context.Context, uri string) ([]byte, error) {
	res, err := d.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", d.apiKey).
		Get(uri)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}
