package mock

import "github.com/jwielgosz/schemify"

var _ schemify.Metrics = (*Metrics)(nil)

// Metrics is a mock implementation of schemify.Metrics.
type Metrics struct {
	ObserveScrapeFn func(typ schemify.SchemaType, outcome string, seconds float64)
}

func (m *Metrics) ObserveScrape(typ schemify.SchemaType, outcome string, seconds float64) {
	if m.ObserveScrapeFn != nil {
		m.ObserveScrapeFn(typ, outcome, seconds)
	}
}
