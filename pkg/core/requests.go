package core

import "context"

// Requests is the contract for making outbound API requests.
type Requests interface {
	// MakeAPIRequest makes an http request to the given endpoint with the
	// given headers and returns the response body.
	MakeAPIRequest(ctx context.Context, httpMethod, endpoint string, body []byte, headers map[string]string) ([]byte, error)
}
