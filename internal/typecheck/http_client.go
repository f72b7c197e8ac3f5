package typecheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// HTTPClient is a thin shell over an external type-checking service
// (spec.md §1's "thin shells over the core"): it assembles the
// outgoing request with sjson and peeks at the `errors` field of the
// response with gjson, never fully decoding the `typed_graph` payload
// it has no reason to understand.
type HTTPClient struct {
	URL    string
	Client *http.Client
}

// NewHTTPClient returns an HTTPClient posting to url with http.DefaultClient.
func NewHTTPClient(url string) *HTTPClient {
	return &HTTPClient{URL: url}
}

func (c *HTTPClient) Check(ctx context.Context, req Request) (Response, error) {
	entryJSON, err := json.Marshal(req.Entry)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: marshal entry graph: %w", err)
	}
	catalogJSON, err := json.Marshal(req.Catalog)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: marshal catalog: %w", err)
	}

	body, err := sjson.SetRawBytes(nil, "entry", entryJSON)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: assemble request: %w", err)
	}
	body, err = sjson.SetRawBytes(body, "catalog", catalogJSON)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: assemble request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("typecheck: read response: %w", err)
	}

	if errsField := gjson.GetBytes(raw, "errors"); errsField.Exists() && errsField.IsArray() {
		var errs []TypeError
		if uerr := json.Unmarshal([]byte(errsField.Raw), &errs); uerr != nil {
			return Response{}, fmt.Errorf("typecheck: decode errors field: %w", uerr)
		}
		if len(errs) > 0 {
			return Response{Errors: errs}, nil
		}
	}

	typedGraph := gjson.GetBytes(raw, "typed_graph")
	return Response{TypedGraph: json.RawMessage(typedGraph.Raw)}, nil
}
