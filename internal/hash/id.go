// Package hash provides stable 64-bit fingerprints for samples.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Values computes the xxHash64 fingerprint of a float64 sequence.
//
// The digest covers the IEEE 754 bit patterns in little-endian order, so
// two samples fingerprint equal iff they are bit-for-bit identical in the
// same order.
func Values(values []float64) uint64 {
	d := xxhash.New()
	writeValues(d, values)

	return d.Sum64()
}

// PairedValues computes a joint fingerprint of an (X, Y) sample pair.
//
// The two sequences are digested with a length separator in between, so
// ([1,2], [3]) and ([1], [2,3]) produce different fingerprints.
func PairedValues(x, y []float64) uint64 {
	d := xxhash.New()
	writeValues(d, x)

	var sep [8]byte
	binary.LittleEndian.PutUint64(sep[:], uint64(len(x)))
	_, _ = d.Write(sep[:])

	writeValues(d, y)

	return d.Sum64()
}

func writeValues(d *xxhash.Digest, values []float64) {
	var buf [8]byte
	for _, v := range values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}
}
