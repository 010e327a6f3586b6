// Package envelope implements the ASCOM Alpaca response envelope (C2): the
// small JSON shape every action response is wrapped in, and the
// process-wide transaction ID counter.
package envelope

import "encoding/json"

// Envelope is the wire response shape. Fields is the action's own result —
// either a single {"Value": ...} entry for a scalar/array result, or the
// result's own fields flattened at the top level for a structured result,
// or nil for a void result — merged with the transaction/error fields at
// marshal time.
type Envelope struct {
	ClientTransactionID *uint32
	ServerTransactionID uint32
	ErrorNumber         int32
	ErrorMessage        string
	Fields              map[string]any
}

// MarshalJSON flattens Fields alongside the transaction/error fields rather
// than nesting them, matching the wire shape required by the Alpaca clients.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Fields)+4)
	for k, v := range e.Fields {
		out[k] = v
	}
	if e.ClientTransactionID != nil {
		out["ClientTransactionID"] = *e.ClientTransactionID
	}
	out["ServerTransactionID"] = e.ServerTransactionID
	out["ErrorNumber"] = e.ErrorNumber
	out["ErrorMessage"] = e.ErrorMessage
	return json.Marshal(out)
}

// Scalar wraps a single value under the "Value" key, the shape used for any
// scalar or array action result.
func Scalar(v any) map[string]any {
	if v == nil {
		return nil
	}
	return map[string]any{"Value": v}
}
