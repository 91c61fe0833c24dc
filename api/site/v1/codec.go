// Package sitev1 defines the site.v1 gRPC services. Every method takes and
// returns a google.protobuf.Struct whose fields mirror the JSON form of the
// settings document, so the schema lives with the Go types instead of in
// generated code.
package sitev1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// EncodeStruct converts any JSON-encodable value into a Struct. v must
// encode to a JSON object.
func EncodeStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	return out, nil
}

// DecodeStruct fills v from s using JSON field names. A nil s leaves v
// untouched.
func DecodeStruct(s *structpb.Struct, v any) error {
	if s == nil {
		return nil
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("decode struct: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode struct: %w", err)
	}
	return nil
}
