package models

// Filter operators understood by the document-store query endpoint.
const (
	OpEqual          = "=="
	OpGreaterOrEqual = ">="
	OpLessOrEqual    = "<="
)

// Filter is a single predicate of a collection query. Predicates in one query
// are combined with AND semantics.
type Filter struct {
	Field string `json:"field"`
	Op    string `json:"op"`
	Value any    `json:"value"`

	// Fold requests case-folded string comparison. Used for the title
	// prefix search so "bali" matches "Bali Beach".
	Fold bool `json:"fold,omitempty"`
}

// QueryRequest is the body of a collection query call.
type QueryRequest struct {
	Filters []Filter `json:"filters"`
}
