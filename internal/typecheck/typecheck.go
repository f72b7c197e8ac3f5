// Package typecheck is the bridge to the external type checker spec.md
// §4.6 treats as a collaborator, not a component this repository
// implements: the front-end assembles a Request and hands it off,
// verbatim, to whatever Checker a caller supplies.
package typecheck

import (
	"context"
	"encoding/json"

	"github.com/rill-lang/rillc/internal/catalog"
	"github.com/rill-lang/rillc/internal/ir"
	"github.com/rill-lang/rillc/internal/token"
)

// Request bundles the entry function's assembled graph with the
// flattened signature catalog it was lowered against, so the checker
// can resolve each node's operation to its type scheme.
type Request struct {
	Entry   *ir.Graph        `json:"entry"`
	Catalog []catalog.FunctionEntry `json:"catalog"`
}

// TypeError is one failure the checker reports back; it carries enough
// of a source span to thread into a diag.Error, though the checker is
// free to leave Pos zero-valued when it has no source mapping of its own.
type TypeError struct {
	Pos     token.Position `json:"pos"`
	Message string         `json:"message"`
}

// Response is either a successful TypedGraph or a non-empty Errors
// bundle; callers should treat TypedGraph as opaque (spec.md §6).
type Response struct {
	TypedGraph json.RawMessage `json:"typed_graph,omitempty"`
	Errors     []TypeError     `json:"errors,omitempty"`
}

// Ok reports whether the checker accepted the graph.
func (r Response) Ok() bool { return len(r.Errors) == 0 }

// Checker hands a Request to an external type checker and reports
// back a Response. Implementations may block on network I/O; Check
// takes a context so a caller can cancel it.
type Checker interface {
	Check(ctx context.Context, req Request) (Response, error)
}

// NewRequest assembles a Request from an entry graph and the catalog it
// was lowered against.
func NewRequest(entry *ir.Graph, cat *catalog.Catalog) Request {
	return Request{Entry: entry, Catalog: cat.Entries()}
}
