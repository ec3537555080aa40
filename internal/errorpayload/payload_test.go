package errorpayload

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessDenied(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AccessDenied(&buf, "access-denied", "default deny"))

	var got RPCError
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "application", got.Type)
	assert.Equal(t, "access-denied", got.Tag)
	assert.Equal(t, "error", got.Severity)
	assert.Equal(t, "access-denied", got.AppTag)
	assert.Equal(t, "default deny", got.Message)
}
