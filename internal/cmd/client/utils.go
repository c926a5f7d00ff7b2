package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// endpointURL joins the base URL with an absolute path.
func endpointURL(baseURL BaseURLFunc, path string) string {
	return strings.TrimRight(baseURL(), "/") + path
}

// itemURL builds the item endpoint URL for one queue.
func itemURL(baseURL BaseURLFunc, queue string) string {
	return endpointURL(baseURL, "/"+url.PathEscape(queue))
}

// doJSON issues one HTTP request against the dtqueue REST API. The caller
// owns the response body.
func doJSON(ctx context.Context, method, target string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return http.DefaultClient.Do(req)
}

// httpError reports a non-2xx response as an error, including the server's
// error envelope when one is present.
func httpError(resp *http.Response) error {
	var env struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Code != "" {
		return fmt.Errorf("http error: %s: %s (%s)", resp.Status, env.Message, env.Code)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return fmt.Errorf("http error: %s", resp.Status)
}
