package docnet

import (
	"google.golang.org/grpc/encoding"

	"github.com/furball-art/furball/internal/codec"
)

// CodecName is the gRPC content subtype of every DocumentService call.
const CodecName = "cbor"

type cborCodec struct{}

func (cborCodec) Marshal(v any) ([]byte, error)      { return codec.Marshal(v) }
func (cborCodec) Unmarshal(data []byte, v any) error { return codec.Unmarshal(data, v) }
func (cborCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(cborCodec{})
}
