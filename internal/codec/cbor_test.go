package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string            `cbor:"name"`
	Tags  []string          `cbor:"tags,omitempty"`
	Links map[string]string `cbor:"links,omitempty"`
	Data  []byte            `cbor:"data,omitempty"`
}

func TestMarshal_Deterministic(t *testing.T) {
	a := map[string]any{"b": 2, "a": 1, "c": map[string]any{"z": "1", "y": "2"}}
	b := map[string]any{"c": map[string]any{"y": "2", "z": "1"}, "a": 1, "b": 2}

	ea, err := Marshal(a)
	require.NoError(t, err)
	eb, err := Marshal(b)
	require.NoError(t, err)
	require.Equal(t, ea, eb)
}

func TestUnmarshal_AnyMapsUseStringKeys(t *testing.T) {
	enc, err := Marshal(sample{Name: "n", Links: map[string]string{"web": "https://x"}})
	require.NoError(t, err)

	var out any
	require.NoError(t, Unmarshal(enc, &out))

	m, ok := out.(map[string]any)
	require.True(t, ok, "got %T", out)
	require.Equal(t, "n", m["name"])
	links, ok := m["links"].(map[string]any)
	require.True(t, ok, "got %T", m["links"])
	require.Equal(t, "https://x", links["web"])
}

func TestUnmarshal_IgnoresUnknownFields(t *testing.T) {
	enc, err := Marshal(map[string]any{"name": "n", "extra": 42})
	require.NoError(t, err)

	var s sample
	require.NoError(t, Unmarshal(enc, &s))
	require.Equal(t, "n", s.Name)
}

func TestBytesSurviveExactly(t *testing.T) {
	payload := []byte{0x00, 0xff, 0x10, 0x00}
	enc, err := Marshal(sample{Name: "blob", Data: payload})
	require.NoError(t, err)

	var s sample
	require.NoError(t, Unmarshal(enc, &s))
	require.Equal(t, payload, s.Data)
}
