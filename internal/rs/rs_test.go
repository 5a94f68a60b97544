package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplyIdentity(t *testing.T) {
	assert.Equal(t, byte(0), Multiply(0, 5))
	assert.Equal(t, byte(5), Multiply(1, 5))
}

func TestGeneratorPolynomialDegree(t *testing.T) {
	g := GeneratorPolynomial(7)
	require.Len(t, g, 7)
}

func TestComputeRemainderDivisibility(t *testing.T) {
	// §8 invariant 5: data padded with its own remainder must be evenly
	// divisible by the generator -- i.e. re-dividing (data||remainder)
	// yields an all-zero remainder.
	divisor := GeneratorPolynomial(10)
	data := []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11}
	rem := ComputeRemainder(data, divisor)
	require.Len(t, rem, len(divisor))

	full := append(append([]byte{}, data...), rem...)
	rem2 := ComputeRemainder(full, divisor)
	for _, b := range rem2 {
		assert.Equal(t, byte(0), b)
	}
}

func TestExpLogRoundTrip(t *testing.T) {
	for i := 0; i < 255; i++ {
		v := exp(i)
		assert.Equal(t, byte(i), logTable[v])
	}
}
