package cbor

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	A int
	B string
}

func TestCanonicalEncoding(t *testing.T) {
	a := assert.New(t)

	// Map keys are sorted regardless of insertion order.
	m1 := map[string]int{"b": 2, "a": 1, "c": 3}
	m2 := map[string]int{"c": 3, "a": 1, "b": 2}
	a.Equal(Marshal(m1), Marshal(m2))

	var out sample
	require.NoError(t, Unmarshal(Marshal(sample{A: 7, B: "x"}), &out))
	a.Equal(sample{A: 7, B: "x"}, out)

	a.NoError(Unmarshal(nil, &out), "nil input is a no-op")
}

func TestStrictRoundTrip(t *testing.T) {
	viper.Set(CfgDebugStrictCBOR, true)
	defer viper.Set(CfgDebugStrictCBOR, false)

	// Non-canonical: map keys out of order.
	nonCanonical := []byte{0xa2, 0x61, 0x62, 0x02, 0x61, 0x61, 0x01}

	var m map[string]int
	assert.Error(t, Unmarshal(nonCanonical, &m))
	assert.NoError(t, Unmarshal(Marshal(map[string]int{"a": 1, "b": 2}), &m))
}
