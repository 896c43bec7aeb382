package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAddrPort(t *testing.T) {
	testCases := []struct {
		in   string
		host string
		port int
		msg  string
	}{
		{"1.2.3.4:80", "1.2.3.4", 80, "IPv4 with port"},
		{"1.2.3.4", "1.2.3.4", 0, "IPv4 without port"},
		{"::1", "::1", 0, "bare IPv6 loopback must not lose its final group"},
		{"fe80::1:2", "fe80::1:2", 0, "bare IPv6 with trailing digits is not host:port"},
		{"[::1]:8080", "::1", 8080, "bracketed IPv6 with port"},
		{"[fe80::1]", "fe80::1", 0, "bracketed IPv6 without port"},
		{"host.example.com:443", "host.example.com", 443, "hostname with port"},
		{"host.example.com:http", "host.example.com:http", 0, "non-numeric suffix is not a port"},
		{"1.2.3.4:99999", "1.2.3.4:99999", 0, "out of range port is left alone"},
		{"[broken", "[broken", 0, "unterminated bracket is left alone"},
	}

	for _, test := range testCases {
		host, port := SplitAddrPort(test.in)
		assert.Equal(t, test.host, host, test.msg)
		assert.Equal(t, test.port, port, test.msg)
	}
}

func TestLooksLikeAddress(t *testing.T) {
	testCases := []struct {
		in  string
		out bool
		msg string
	}{
		{"10.0.0.1", true, "dotted quad"},
		{"10.0.0.1:443", true, "dotted quad with port"},
		{"[::1]:80", true, "bracketed IPv6 with port"},
		{"fe80::1", true, "bare IPv6"},
		{"web01.corp.lan", true, "hostname with digits"},
		{"hello", false, "word without digits or separators"},
		{"GET /index.html", false, "token with invalid characters"},
		{"", false, "empty token"},
	}

	for _, test := range testCases {
		assert.Equal(t, test.out, looksLikeAddress(test.in), test.msg)
	}
}

func TestFindAddressesOrder(t *testing.T) {
	line := "connection from 10.0.0.1:1234 to 8.8.8.8 over udp"
	addresses := findAddresses(line, 2)
	assert.Len(t, addresses, 2)
	assert.Equal(t, "10.0.0.1:1234", addresses[0], "leftmost address first")
	assert.Equal(t, "8.8.8.8", addresses[1], "second address second")
}
