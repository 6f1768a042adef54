package hilbert

import (
	"testing"

	"github.com/hupe1980/rivgo/testutil"
)

func BenchmarkEncode(b *testing.B) {
	c, _ := New()
	v := testutil.NewRNG(1).IntegerVector(1000, 48, 1<<16)

	for b.Loop() {
		_, _ = c.Encode(v)
	}
}

func BenchmarkHilbillyKey(b *testing.B) {
	c, _ := New()
	v := testutil.NewRNG(1).IntegerVector(1000, 48, 1<<16)

	for b.Loop() {
		_, _ = c.HilbillyKey(v)
	}
}

func BenchmarkDecode(b *testing.B) {
	c, _ := New()
	v := testutil.NewRNG(1).IntegerVector(1000, 48, 1<<16)
	key, _ := c.Encode(v)

	for b.Loop() {
		_, _ = c.Decode(key, 1000)
	}
}
