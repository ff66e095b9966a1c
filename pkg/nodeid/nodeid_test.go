package nodeid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPathIsDeterministic(t *testing.T) {
	a := FromPath("/tmp/a/b.txt")
	b := FromPath("/tmp/a/b.txt")
	assert.Equal(t, a, b)
}

func TestFromPathCanonicalizes(t *testing.T) {
	a := FromPath("/tmp/a/../a/./b.txt")
	b := FromPath("/tmp/a/b.txt")
	assert.Equal(t, a, b)
}

func TestFromPathDistinguishesPaths(t *testing.T) {
	a := FromPath("/tmp/a")
	b := FromPath("/tmp/b")
	assert.NotEqual(t, a, b)
}

func TestStringRoundTrip(t *testing.T) {
	id := FromPath("/tmp/a/b.txt")
	parsed, err := ParseString(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestJSONRoundTrip(t *testing.T) {
	id := FromPath("/tmp/a/b.txt")
	data, err := json.Marshal(id)
	require.NoError(t, err)

	var out NodeId
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, id, out)
}

func TestZeroIsDefault(t *testing.T) {
	var id NodeId
	assert.Equal(t, Zero, id)
}
