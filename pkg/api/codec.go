// Package api defines the tipcalc RPC messages and the Connect handlers and
// clients that carry them.
//
// Messages are plain Go structs serialized as JSON, so every procedure is
// callable with curl:
//
//	curl -H 'Content-Type: application/json' \
//	  -d '{"fields":{"bill":"100","persons":"4","tip-preselection":"15"}}' \
//	  http://localhost:8080/tipcalc.v1.TipService/Evaluate
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Ensure JSONCodec implements connect.Codec
var _ connect.Codec = JSONCodec{}

// JSONCodec is a connect.Codec for plain Go structs. It registers under the
// name "json", replacing Connect's protobuf JSON codec.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
