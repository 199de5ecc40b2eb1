package ir

import "math"

const (
	fractionBits = 52
	exponentMask = 0x7FF
	fractionMask = 1<<fractionBits - 1
	implicitBit  = 1 << fractionBits
	exponentBias = 1023 + fractionBits
)

// BitTriplet is the canonical (mantissa, exponent, sign) decomposition of
// a float64 bit pattern. Float values are equal and hash alike exactly
// when their triplets match, so distinct NaN payloads stay distinct, every
// NaN equals itself and +0 differs from -0.
type BitTriplet struct {
	Mantissa uint64
	Exponent int16
	// Sign is 1 when the sign bit is clear and 0 when it is set.
	Sign int8
}

// Decompose splits the bits of f into its BitTriplet.
//
// A zero raw exponent is a subnormal encoding: the fraction is shifted
// left by one and has no implicit bit. Otherwise the implicit leading bit
// is set. The exponent is unbiased by 1075, the 1023 exponent bias plus
// the 52 fraction bits.
func Decompose(f float64) BitTriplet {
	bits := math.Float64bits(f)

	var sign int8
	if bits>>63 == 0 {
		sign = 1
	}
	exponent := int16((bits >> fractionBits) & exponentMask)
	mantissa := bits & fractionMask
	if exponent == 0 {
		mantissa <<= 1
	} else {
		mantissa |= implicitBit
	}
	return BitTriplet{
		Mantissa: mantissa,
		Exponent: exponent - exponentBias,
		Sign:     sign,
	}
}
