package requestutils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/lumber"
)

type requests struct {
	logger lumber.Logger
	client *http.Client
}

// New returns a new Requests client backed by a pooled http transport.
func New(logger lumber.Logger) core.Requests {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = 30 * time.Second
	return &requests{
		logger: logger,
		client: client,
	}
}

func (r *requests) MakeAPIRequest(ctx context.Context, httpMethod, endpoint string,
	body []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, endpoint, bytes.NewBuffer(body))
	if err != nil {
		r.logger.Errorf("error while creating http request %v", err)
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Errorf("error while sending http request %v", err)
		return nil, err
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		r.logger.Errorf("error while reading http response body %v", err)
		return respBody, err
	}

	//nolint:gomnd
	if resp.StatusCode >= 300 {
		r.logger.Errorf("non 2xx status code %s", string(respBody))
		return respBody, errors.New("non 2xx status code")
	}

	return respBody, nil
}
