package v1alpha1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the gRPC content subtype the game service speaks
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec encodes messages as JSON. Protobuf messages such as the health
// service's go through protojson.
type Codec struct{}

// Marshal encodes v
func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(proto.Message); ok {
		return protojson.Marshal(m)
	}
	return json.Marshal(v)
}

// Unmarshal decodes data into v
func (Codec) Unmarshal(data []byte, v any) error {
	if m, ok := v.(proto.Message); ok {
		return protojson.Unmarshal(data, m)
	}
	return json.Unmarshal(data, v)
}

// Name returns CodecName
func (Codec) Name() string {
	return CodecName
}
