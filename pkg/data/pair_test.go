package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairMapKeyIsDirectional(t *testing.T) {
	forward := Pair{Src: "10.0.0.1", Dst: "10.0.0.2"}
	backward := Pair{Src: "10.0.0.2", Dst: "10.0.0.1"}
	assert.NotEqual(t, forward.MapKey(), backward.MapKey(), "A->B and B->A must index separate directed links")
}

func TestPairCanonicalKeySymmetry(t *testing.T) {
	testCases := []struct {
		a   string
		b   string
		msg string
	}{
		{"10.0.0.1", "10.0.0.2", "private pair"},
		{"1.1.1.1", "192.168.1.5", "mixed scope pair"},
		{"::1", "fe80::1", "ipv6 pair"},
		{"host-a.local", "host-b.local", "hostname pair"},
		{"127.0.0.1", "127.0.0.1", "self loop"},
	}

	for _, test := range testCases {
		forward := Pair{Src: test.a, Dst: test.b}.CanonicalKey()
		backward := Pair{Src: test.b, Dst: test.a}.CanonicalKey()
		assert.Equal(t, forward, backward, test.msg)
	}
}

func TestPairOrdered(t *testing.T) {
	a, b := Pair{Src: "beta", Dst: "alpha"}.Ordered()
	assert.Equal(t, "alpha", a, "Ordered should return the lexicographically smaller endpoint first")
	assert.Equal(t, "beta", b, "Ordered should return the lexicographically larger endpoint second")
}
