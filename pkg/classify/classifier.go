package classify

import (
	"net"
	"regexp"
	"strings"

	"github.com/redwire/wiretalk/util"
)

//Scope is the address-space classification of an endpoint
type Scope string

const (
	ScopePrivate   Scope = "private"
	ScopeCGNAT     Scope = "cgnat"
	ScopeLoopback  Scope = "loopback"
	ScopeLinkLocal Scope = "link-local"
	ScopePublic    Scope = "public"
)

//Role is a heuristic functional classification of an endpoint
type Role string

const (
	RoleDevice  Role = "device"
	RoleRouter  Role = "router"
	RoleServer  Role = "server"
	RoleDomain  Role = "domain"
	RoleUnknown Role = "unknown"
)

//Classification bundles the scope and role determined for an endpoint
type Classification struct {
	Scope Scope `json:"scope"`
	Role  Role  `json:"role"`
}

var linkLocalBlock *net.IPNet
var cgnatBlock *net.IPNet
var privateIPBlocks []*net.IPNet

func init() {
	privateIPs, err := util.ParseSubnets(
		[]string{
			"10.0.0.0/8",     // RFC1918
			"172.16.0.0/12",  // RFC1918
			"192.168.0.0/16", // RFC1918
		})
	if err != nil {
		panic("error defining private IP blocks: " + err.Error())
	}
	privateIPBlocks = privateIPs

	_, linkLocalBlock, _ = net.ParseCIDR("169.254.0.0/16")
	_, cgnatBlock, _ = net.ParseCIDR("100.64.0.0/10") // RFC6598 shared address space
}

//routerVocabulary holds hostname fragments associated with gateway hardware
var routerVocabulary = []string{
	"router", "gateway", "gw-", "-gw", "rtr", "firewall", "-fw",
	"mikrotik", "ubnt", "unifi", "openwrt", "pfsense",
}

//cloudSuffixes holds domain suffixes belonging to hosting/cloud providers
var cloudSuffixes = []string{
	".amazonaws.com", ".googleusercontent.com", ".cloudfront.net",
	".azure.com", ".azurewebsites.net", ".akamaitechnologies.com",
	".linode.com", ".digitalocean.com", ".hetzner.de", ".ovh.net",
}

//serviceNamePattern matches common infrastructure service names with an
//optional numeric suffix, e.g. dns1, db02, api, smtp3
var serviceNamePattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(dns|db|api|cdn|smtp|web|mail|ns|mx|ftp|vpn|proxy|cache)[0-9]*(?:[^a-z0-9]|$)`)

//alphabeticPattern reports whether a hostname contains at least one letter
var alphabeticPattern = regexp.MustCompile(`[a-zA-Z]`)

//Classify determines the network scope and a best guess role for a textual
//endpoint identifier. Optional hostname and organization/ISP hints sharpen
//the role heuristic. Classify is deterministic, never fails, and performs
//no network calls. Non-IPv4 or malformed identifiers fall back to
//scope "public".
func Classify(identifier string, hostname string, orgOrISP string) Classification {
	ip := net.ParseIP(strings.TrimSpace(identifier))

	// an identifier which is not an address at all serves as its own
	// hostname hint
	if ip == nil && hostname == "" {
		hostname = identifier
	}

	scope := scopeOf(ip)
	role := roleOf(ip, scope, hostname)
	return Classification{Scope: scope, Role: role}
}

//scopeOf buckets an IPv4 address into its address-space class. Anything
//that is not IPv4 yields ScopePublic as a safe fallback.
func scopeOf(ip net.IP) Scope {
	if ip == nil {
		return ScopePublic
	}
	ipv4 := ip.To4()
	if ipv4 == nil {
		return ScopePublic
	}

	switch {
	case ipv4[0] == 127:
		return ScopeLoopback
	case linkLocalBlock.Contains(ipv4):
		return ScopeLinkLocal
	case util.ContainsIP(privateIPBlocks, ipv4):
		return ScopePrivate
	case cgnatBlock.Contains(ipv4):
		return ScopeCGNAT
	}
	return ScopePublic
}

//roleOf applies the role heuristics in tie-break order; the first match wins.
func roleOf(ip net.IP, scope Scope, hostname string) Role {
	lowered := strings.ToLower(strings.TrimSpace(hostname))

	if lowered != "" {
		for _, word := range routerVocabulary {
			if strings.Contains(lowered, word) {
				return RoleRouter
			}
		}
		for _, suffix := range cloudSuffixes {
			if strings.HasSuffix(lowered, suffix) {
				return RoleServer
			}
		}
		if serviceNamePattern.MatchString(lowered) {
			return RoleServer
		}
		if alphabeticPattern.MatchString(lowered) {
			return RoleDomain
		}
	}

	if looksLikeGateway(ip, scope) {
		return RoleRouter
	}

	switch scope {
	case ScopePrivate, ScopeCGNAT, ScopeLoopback:
		return RoleDevice
	}

	// a public IPv4 address with no other signal is most often server
	// infrastructure in this domain
	if ip != nil && ip.To4() != nil {
		return RoleServer
	}
	return RoleUnknown
}

//looksLikeGateway reports whether a private range address follows the usual
//gateway numbering conventions (.1 or .254 host octet)
func looksLikeGateway(ip net.IP, scope Scope) bool {
	if ip == nil {
		return false
	}
	ipv4 := ip.To4()
	if ipv4 == nil {
		return false
	}
	if scope != ScopePrivate && scope != ScopeCGNAT {
		return false
	}
	return ipv4[3] == 1 || ipv4[3] == 254
}
