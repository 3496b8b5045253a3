package aggregators

import (
	"context"

	attr "outageschedule/pkg/api/attribute"
)

// StreetSummary represents aggregated outage figures for one street
type StreetSummary interface {
	Street() attr.StreetName
	// Outages returns the number of outages that list the street
	Outages() int
	// Specs returns the number of house number specifications across those outages
	Specs() int
	TotalHours() attr.NumericAttribute
	AverageHours() attr.NumericAttribute
}

type StreetAggregator interface {
	Process(ctx context.Context, outages <-chan attr.Outage) ([]StreetSummary, error)
}
