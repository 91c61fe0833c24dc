package sitev1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type sample struct {
	Name  string         `json:"name"`
	Count int            `json:"count"`
	On    bool           `json:"on"`
	Tags  []string       `json:"tags"`
	Extra map[string]any `json:"extra,omitempty"`
}

func TestEncodeDecodeStruct(t *testing.T) {
	in := sample{Name: "acme", Count: 3, On: true, Tags: []string{"a", "b"}}

	s, err := EncodeStruct(in)
	require.NoError(t, err)
	assert.Equal(t, "acme", s.Fields["name"].GetStringValue())
	assert.Equal(t, float64(3), s.Fields["count"].GetNumberValue())

	var out sample
	require.NoError(t, DecodeStruct(s, &out))
	assert.Equal(t, in, out)
}

func TestEncodeStruct_RejectsNonObject(t *testing.T) {
	_, err := EncodeStruct([]string{"x"})
	assert.Error(t, err)
}

func TestDecodeStruct_Nil(t *testing.T) {
	out := sample{Name: "keep"}
	require.NoError(t, DecodeStruct((*structpb.Struct)(nil), &out))
	assert.Equal(t, "keep", out.Name)
}
