package enrich

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/redwire/wiretalk/config"
)

func newTestEnricher(endpoint string, batchLimit int) *Enricher {
	static := &config.EnrichStaticCfg{
		Endpoint:   endpoint,
		BatchLimit: batchLimit,
	}
	running := &config.EnrichRunningCfg{
		Timeout: 2 * time.Second,
	}
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return NewEnricher(static, running, logger)
}

func geoHandler(hits *int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(hits, 1)
		ip := strings.TrimPrefix(r.URL.Path, "/")
		fmt.Fprintf(w, `{"status":"success","country":"Testland","city":"Port Vale",`+
			`"isp":"Example ISP","org":"Example Org","as":"AS64496 Example",`+
			`"reverse":"web1.example.net","query":"%s"}`, ip)
	}
}

func TestEnrichPublicAddress(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(geoHandler(&hits))
	defer srv.Close()

	e := newTestEnricher(srv.URL, 25)
	results := e.Enrich([]string{"203.0.113.10"})

	assert.Len(t, results, 1)
	assert.True(t, results[0].Resolved)
	assert.Equal(t, "Testland", results[0].Country)
	assert.Equal(t, "web1.example.net", results[0].Hostname)
	assert.Equal(t, "public", results[0].Scope)
	// hostname carries a service token so the role resolves to server
	assert.Equal(t, "server", results[0].Role)
	assert.EqualValues(t, 1, atomic.LoadInt64(&hits))
}

func TestEnrichPrivateShortCircuit(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(geoHandler(&hits))
	defer srv.Close()

	e := newTestEnricher(srv.URL, 25)
	results := e.Enrich([]string{"192.168.1.5", "10.0.0.1"})

	assert.Len(t, results, 2)
	for _, res := range results {
		assert.False(t, res.Resolved)
		assert.Equal(t, "private", res.Scope)
	}
	// no remote lookups for private space
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestEnrichDedupeAndBatchLimit(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(geoHandler(&hits))
	defer srv.Close()

	e := newTestEnricher(srv.URL, 2)
	ids := []string{
		"203.0.113.1", "203.0.113.1", "203.0.113.2", "203.0.113.3",
	}
	results := e.Enrich(ids)

	// duplicate collapsed, then truncated to the batch limit
	assert.Len(t, results, 2)
	assert.EqualValues(t, 2, atomic.LoadInt64(&hits))
}

func TestEnrichServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"fail","message":"reserved range"}`)
	}))
	defer srv.Close()

	e := newTestEnricher(srv.URL, 25)
	results := e.Enrich([]string{"203.0.113.77"})

	assert.Len(t, results, 1)
	assert.False(t, results[0].Resolved)
	// local classification still present on failure
	assert.Equal(t, "public", results[0].Scope)
}

func TestEnrichEmptyInput(t *testing.T) {
	e := newTestEnricher("http://localhost:1", 25)
	assert.Empty(t, e.Enrich(nil))
	assert.Empty(t, e.Enrich([]string{"", ""}))
}
