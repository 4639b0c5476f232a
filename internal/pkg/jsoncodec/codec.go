// Package jsoncodec registers a JSON gRPC codec. Calls opt in with
// grpc.CallContentSubtype(jsoncodec.Name); everything else keeps protobuf.
package jsoncodec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the content subtype of the codec (application/grpc+json)
const Name = "json"

// Codec marshals gRPC messages as JSON
type Codec struct{}

func init() {
	encoding.RegisterCodec(Codec{})
}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the codec name
func (Codec) Name() string {
	return Name
}
