package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/redwire/wiretalk/util"
)

//ipv4Pattern matches a dotted quad with an optional :port suffix
var ipv4Pattern = regexp.MustCompile(`(?:\d{1,3}\.){3}\d{1,3}(?::\d{1,5})?`)

//bracketedIPv6Pattern matches [addr] with an optional :port suffix
var bracketedIPv6Pattern = regexp.MustCompile(`\[[0-9A-Fa-f:.]+\](?::\d{1,5})?`)

//bareIPv6Pattern matches an unbracketed IPv6 address with at least two colons
var bareIPv6Pattern = regexp.MustCompile(`(?:[0-9A-Fa-f]{0,4}:){2,7}[0-9A-Fa-f]{0,4}`)

//addressPattern matches any address-like substring. The IPv4 alternative
//must come first so that IPv4-mapped text is not swallowed by the IPv6
//alternatives.
var addressPattern = regexp.MustCompile(
	ipv4Pattern.String() + `|` + bracketedIPv6Pattern.String() + `|` + bareIPv6Pattern.String())

//SplitAddrPort splits a trailing ":port" suffix off of an endpoint
//identifier. The suffix is only stripped when the trailing segment after the
//last colon is all digits AND the rest of the identifier is not itself a
//bare IPv6 address (distinguishes "1.2.3.4:80" from "::1"). The bracketed
//form "[addr]:port" is always unambiguous.
func SplitAddrPort(identifier string) (string, int) {
	identifier = strings.TrimSpace(identifier)

	// bracketed IPv6: [addr] or [addr]:port
	if strings.HasPrefix(identifier, "[") {
		closing := strings.Index(identifier, "]")
		if closing < 0 {
			return identifier, 0
		}
		host := identifier[1:closing]
		rest := identifier[closing+1:]
		if strings.HasPrefix(rest, ":") {
			if port, ok := parsePort(rest[1:]); ok {
				return host, port
			}
		}
		return host, 0
	}

	lastColon := strings.LastIndex(identifier, ":")
	if lastColon < 0 {
		return identifier, 0
	}

	// more than one colon means a bare IPv6 address; the digits after the
	// final colon are part of the address, not a port
	if !util.IsIPv4(identifier) {
		return identifier, 0
	}

	if port, ok := parsePort(identifier[lastColon+1:]); ok {
		return identifier[:lastColon], port
	}
	return identifier, 0
}

func parsePort(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return 0, false
	}
	return port, true
}

//looksLikeAddress reports whether a token plausibly identifies an endpoint:
//it must contain a digit and consist solely of address-valid characters.
func looksLikeAddress(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	hasDigit := false
	hasSeparator := false
	for _, r := range token {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
		case r == '.' || r == ':':
			hasSeparator = true
		case r == '[' || r == ']' || r == '-' || r == '_':
		default:
			return false
		}
	}
	return hasDigit && hasSeparator
}

//findAddresses returns up to limit address-like substrings of line in
//left-to-right order.
func findAddresses(line string, limit int) []string {
	return addressPattern.FindAllString(line, limit)
}
