package bookkeeping

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Online exchange rates.
//
// Rates come from the open.er-api.com daily feed. The response carries the
// whole rate table for a base currency:
//
//	{
//	    "result": "success",
//	    "base_code": "USD",
//	    "time_last_update_utc": "...",
//	    "rates": {
//	        "USD": 1,
//	        "EUR": 0.9021,
//	        ...
//	    }
//	}

const rateEndpoint = "https://open.er-api.com/v6/latest/"

// RateProvider fetches exchange rates for currency pairs and produces Price
// records tagged with the provider source.
type RateProvider struct {
	client *http.Client
}

// NewRateProvider returns a provider backed by a daily-expiring disk cache,
// the feed itself updates once a day.
func NewRateProvider() *RateProvider {
	return &RateProvider{client: daily()}
}

// FetchRate retrieves the latest rate from one currency into another and
// returns it as a reduced Price dated now.
func (rp *RateProvider) FetchRate(from, to string) (Price, error) {
	addr := rateEndpoint + from
	var jobj any
	if err := jwget(rp.client, addr, &jobj); err != nil {
		return Price{}, fmt.Errorf("error in wget %q: %w", from+"/"+to, err)
	}
	path := "$.rates." + to
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Price{}, fmt.Errorf("error parsing %q: %q %w", from+"/"+to, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Price{}, fmt.Errorf("error parsing %q: %q %s %v", from+"/"+to, path, "not a float", jval)
	}
	if val == 0 {
		return Price{}, fmt.Errorf("empty rate for %s/%s", from, to)
	}
	p, err := NewPriceFromDecimal(from, to, decimal.NewFromFloat(val))
	if err != nil {
		return Price{}, err
	}
	p.Date = time.Now().UTC()
	p.Source = PriceSourceProvider
	p.Type = "last"
	if err := p.Reduce(); err != nil {
		return Price{}, err
	}
	return p, nil
}
