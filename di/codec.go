package di

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts arbitrary structured values to and from the canonical
// byte encoding a container stores.
//
// The contract is narrow on purpose: Encode fails on non-representable
// input, Decode fails on malformed input. Everything else about a value's
// shape is the caller's business.
type Codec interface {
	// Encode serializes v into the canonical byte form.
	Encode(v any) ([]byte, error)

	// Decode deserializes data into target, which must be a pointer.
	Decode(data []byte, target any) error
}

// JSONCodec encodes payloads as JSON. It is the default codec.
type JSONCodec struct{}

// Encode implements Codec.
func (JSONCodec) Encode(v any) ([]byte, error) { return json.Marshal(v) }

// Decode implements Codec.
func (JSONCodec) Decode(data []byte, target any) error { return json.Unmarshal(data, target) }

// YAMLCodec encodes payloads as YAML, for callers whose values already live
// in YAML form. Containers in one scope chain may use different codecs, but
// mixing them over the same keys is the caller's responsibility.
type YAMLCodec struct{}

// Encode implements Codec.
func (YAMLCodec) Encode(v any) ([]byte, error) { return yaml.Marshal(v) }

// Decode implements Codec.
func (YAMLCodec) Decode(data []byte, target any) error { return yaml.Unmarshal(data, target) }
