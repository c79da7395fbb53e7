package multiset

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

var le = binary.LittleEndian

// T is an order independent fingerprint of a multiset of values. Two
// fingerprints built from the same values in any order are equal.
type T struct {
	Count int
	Sum   uint64
	Xor   uint64
}

func (t *T) Add(v any) {
	h := digest(v)
	t.Count++
	t.Sum += h
	t.Xor ^= h * 0x9e3779b97f4a7c15
}

func (t T) Equal(u T) bool { return t == u }

func (t T) String() string {
	return fmt.Sprintf("(multiset n=%d sum=%016x xor=%016x)", t.Count, t.Sum, t.Xor)
}

func Of[S ~[]E, E any](x S) (t T) {
	for _, v := range x {
		t.Add(v)
	}
	return t
}

// Range fingerprints x[start:start+length].
func Range[E any](x []E, start, length int) (t T) {
	return Of(x[start : start+length])
}

func digest(v any) uint64 {
	var buf [9]byte

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf[0] = 'i'
		le.PutUint64(buf[1:], uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		buf[0] = 'u'
		le.PutUint64(buf[1:], rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 {
			f = 0 // -0 and +0 compare equal
		}
		buf[0] = 'f'
		le.PutUint64(buf[1:], math.Float64bits(f))
	case reflect.Bool:
		buf[0] = 'b'
		if rv.Bool() {
			buf[1] = 1
		}
	case reflect.String:
		return xxh3.HashString(rv.String())
	default:
		return xxh3.HashString(fmt.Sprintf("%T:%v", v, v))
	}

	return xxh3.Hash(buf[:])
}
