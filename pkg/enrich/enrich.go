package enrich

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"

	"github.com/redwire/wiretalk/config"
	"github.com/redwire/wiretalk/pkg/classify"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type (
	//Enricher resolves endpoint identifiers against a geolocation service
	Enricher struct {
		client     *http.Client
		endpoint   string
		batchLimit int
		log        *log.Logger
	}

	//Result holds the enriched description of a single endpoint
	Result struct {
		Identifier   string `json:"identifier"`
		Hostname     string `json:"hostname,omitempty"`
		Organization string `json:"organization,omitempty"`
		ISP          string `json:"isp,omitempty"`
		Country      string `json:"country,omitempty"`
		City         string `json:"city,omitempty"`
		ASN          string `json:"asn,omitempty"`
		Scope        string `json:"scope"`
		Role         string `json:"role"`
		Resolved     bool   `json:"resolved"`
	}

	//apiResponse mirrors the json returned by the ip-api service
	apiResponse struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Country string `json:"country"`
		City    string `json:"city"`
		ISP     string `json:"isp"`
		Org     string `json:"org"`
		AS      string `json:"as"`
		Reverse string `json:"reverse"`
		QueryIP string `json:"query"`
	}
)

//NewEnricher creates an Enricher from the enrichment config sections
func NewEnricher(static *config.EnrichStaticCfg, running *config.EnrichRunningCfg, logger *log.Logger) *Enricher {
	return &Enricher{
		client: &http.Client{
			Timeout: running.Timeout,
		},
		endpoint:   static.Endpoint,
		batchLimit: static.BatchLimit,
		log:        logger,
	}
}

//Enrich resolves a set of endpoint identifiers concurrently. Duplicate
//identifiers are looked up once, and at most batchLimit distinct
//identifiers are sent to the remote service. Lookups which fail still
//yield a Result with local classification and Resolved set false.
func (e *Enricher) Enrich(identifiers []string) []Result {
	distinct := dedupe(identifiers)
	if len(distinct) > e.batchLimit {
		e.log.WithFields(log.Fields{
			"requested": len(distinct),
			"limit":     e.batchLimit,
		}).Warn("enrichment batch truncated")
		distinct = distinct[:e.batchLimit]
	}

	results := make([]Result, len(distinct))

	var wg sync.WaitGroup
	for i, id := range distinct {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = e.lookup(id)
		}(i, id)
	}
	wg.Wait()

	return results
}

//lookup resolves a single identifier, falling back to local
//classification when the remote service cannot help
func (e *Enricher) lookup(identifier string) Result {
	local := classify.Classify(identifier, "", "")
	result := Result{
		Identifier: identifier,
		Scope:      string(local.Scope),
		Role:       string(local.Role),
	}

	// private, loopback, and link local addresses never resolve
	// remotely; skip the round trip
	if local.Scope != classify.ScopePublic {
		return result
	}

	resp, err := e.query(identifier)
	if err != nil {
		e.log.WithFields(log.Fields{
			"identifier": identifier,
			"error":      err.Error(),
		}).Warn("enrichment lookup failed")
		return result
	}

	result.Hostname = resp.Reverse
	result.Organization = resp.Org
	result.ISP = resp.ISP
	result.Country = resp.Country
	result.City = resp.City
	result.ASN = resp.AS
	result.Resolved = true

	// reclassify with the resolved hostname and organization in hand
	enriched := classify.Classify(identifier, resp.Reverse, resp.Org+" "+resp.ISP)
	result.Scope = string(enriched.Scope)
	result.Role = string(enriched.Role)

	return result
}

func (e *Enricher) query(identifier string) (*apiResponse, error) {
	url := fmt.Sprintf("%s/%s?fields=status,message,country,city,isp,org,as,reverse,query", e.endpoint, identifier)

	httpResp, err := e.client.Get(url)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from enrichment service", httpResp.StatusCode)
	}

	body, err := ioutil.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	resp := new(apiResponse)
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("enrichment service error: %s", resp.Message)
	}
	return resp, nil
}

//dedupe returns the distinct identifiers in first seen order
func dedupe(identifiers []string) []string {
	seen := make(map[string]bool, len(identifiers))
	var distinct []string
	for _, id := range identifiers {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		distinct = append(distinct, id)
	}
	return distinct
}

//SortByIdentifier orders results for stable presentation
func SortByIdentifier(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Identifier < results[j].Identifier
	})
}
