package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type classifyTestCase struct {
	identifier string
	hostname   string
	org        string
	scope      Scope
	role       Role
	msg        string
}

func TestClassifyScopes(t *testing.T) {
	testCases := []classifyTestCase{
		{"127.0.0.1", "", "", ScopeLoopback, RoleDevice, "loopback address"},
		{"127.255.255.255", "", "", ScopeLoopback, RoleDevice, "edge of loopback block"},
		{"169.254.10.20", "", "", ScopeLinkLocal, RoleServer, "link-local address defaults to server role"},
		{"10.1.2.3", "", "", ScopePrivate, RoleDevice, "RFC1918 10/8"},
		{"172.16.0.5", "", "", ScopePrivate, RoleDevice, "RFC1918 172.16/12"},
		{"172.32.0.5", "", "", ScopePublic, RoleServer, "just above the 172.16/12 block"},
		{"192.168.50.77", "", "", ScopePrivate, RoleDevice, "RFC1918 192.168/16"},
		{"100.64.0.7", "", "", ScopeCGNAT, RoleDevice, "CGNAT shared address space"},
		{"100.128.0.7", "", "", ScopePublic, RoleServer, "just above the CGNAT block"},
		{"8.8.8.8", "", "", ScopePublic, RoleServer, "public address"},
		{"::1", "", "", ScopePublic, RoleUnknown, "IPv6 falls back to public/unknown"},
		{"garbage input", "", "", ScopePublic, RoleDomain, "malformed identifier is treated as a hostname hint"},
	}

	for _, test := range testCases {
		out := Classify(test.identifier, test.hostname, test.org)
		assert.Equal(t, test.scope, out.Scope, test.msg)
		assert.Equal(t, test.role, out.Role, test.msg)
	}
}

func TestClassifyRolePrecedence(t *testing.T) {
	testCases := []classifyTestCase{
		{"8.8.8.8", "core-router.example.com", "", ScopePublic, RoleRouter, "router vocabulary beats the public server default"},
		{"52.1.2.3", "ec2-52-1-2-3.compute-1.amazonaws.com", "", ScopePublic, RoleServer, "cloud provider suffix"},
		{"1.2.3.4", "dns1.example.org", "", ScopePublic, RoleServer, "service name with digit suffix"},
		{"1.2.3.4", "smtp.example.org", "", ScopePublic, RoleServer, "service name without digit suffix"},
		{"1.2.3.4", "example.org", "", ScopePublic, RoleDomain, "plain alphabetic hostname"},
		{"192.168.1.10", "my-gateway", "", ScopePrivate, RoleRouter, "hostname signal outranks the device default"},
		{"192.168.1.1", "", "", ScopePrivate, RoleRouter, "private .1 host octet looks like a gateway"},
		{"10.0.0.254", "", "", ScopePrivate, RoleRouter, "private .254 host octet looks like a gateway"},
		{"8.8.4.1", "", "", ScopePublic, RoleServer, "public .1 addresses are not assumed to be gateways"},
		{"192.168.1.50", "", "", ScopePrivate, RoleDevice, "ordinary private host"},
	}

	for _, test := range testCases {
		out := Classify(test.identifier, test.hostname, test.org)
		assert.Equal(t, test.scope, out.Scope, test.msg)
		assert.Equal(t, test.role, out.Role, test.msg)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	first := Classify("192.168.1.1", "gw.lan", "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("192.168.1.1", "gw.lan", ""), "repeated calls must agree")
	}
}
