package docnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)

	in := &LoadDocumentResponse{ID: "bafy", Controller: "did:key:z6Mk", Version: 3, Content: []byte{0xa0}}
	b, err := c.Marshal(in)
	require.NoError(t, err)

	var out LoadDocumentResponse
	require.NoError(t, c.Unmarshal(b, &out))
	assert.Equal(t, *in, out)
}

func TestAuthMessage(t *testing.T) {
	got := AuthMessage("did:key:zABC", 1700000000)
	assert.Equal(t, "furball-auth-v1\ndid:key:zABC\n1700000000", string(got))
	assert.NotEqual(t, got, AuthMessage("did:key:zABC", 1700000001))
}

func TestServiceDescMethods(t *testing.T) {
	names := make([]string, 0, len(DocumentService_ServiceDesc.Methods))
	for _, m := range DocumentService_ServiceDesc.Methods {
		names = append(names, m.MethodName)
	}
	assert.ElementsMatch(t, []string{"Authenticate", "CreateDocument", "LoadDocument", "UpdateDocument"}, names)
}
