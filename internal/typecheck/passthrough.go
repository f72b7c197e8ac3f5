package typecheck

import (
	"context"
	"encoding/json"
)

// Passthrough performs no real inference: it marshals Request.Entry
// back out as the TypedGraph verbatim. It exists so this repository's
// own tests can assert graph shape (spec.md §8's worked scenarios)
// without depending on a real external type checker.
type Passthrough struct{}

func (Passthrough) Check(_ context.Context, req Request) (Response, error) {
	raw, err := json.Marshal(req.Entry)
	if err != nil {
		return Response{}, err
	}
	return Response{TypedGraph: raw}, nil
}
