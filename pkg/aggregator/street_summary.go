package aggregator

import (
	"cmp"
	"context"
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"slices"
	"time"

	api "outageschedule/pkg/api/aggregator"
	apiAttr "outageschedule/pkg/api/attribute"
	num "outageschedule/pkg/numeric"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/sync/errgroup"
)

const visitQueueSize = 1000

var (
	_ api.StreetSummary    = (*streetSummary)(nil)
	_ api.StreetAggregator = (*outagesByStreet)(nil)

	sumCtx apd.Context = apd.Context{
		Precision:   100,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven,
	}
)

type streetSummary struct {
	street  apiAttr.StreetName
	outages int
	specs   int
	total   apiAttr.NumericAttribute
	average apiAttr.NumericAttribute
}

func (s streetSummary) Street() apiAttr.StreetName             { return s.street }
func (s streetSummary) Outages() int                           { return s.outages }
func (s streetSummary) Specs() int                             { return s.specs }
func (s streetSummary) TotalHours() apiAttr.NumericAttribute   { return s.total }
func (s streetSummary) AverageHours() apiAttr.NumericAttribute { return s.average }

// MarshalJSON implements json.Marshaler.
func (s streetSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Street       apiAttr.StreetName       `json:"street"`
		Outages      int                      `json:"outages"`
		Specs        int                      `json:"specs"`
		TotalHours   apiAttr.NumericAttribute `json:"total_hours"`
		AverageHours apiAttr.NumericAttribute `json:"average_hours"`
	}{s.street, s.outages, s.specs, s.total, s.average})
}

// visit is one outage touching one street
type visit struct {
	street  apiAttr.StreetName
	specs   int
	minutes int64
}

type tally struct {
	outages int
	specs   int
	minutes *apd.Decimal
}

type outagesByStreet struct {
	shards int
}

// NewOutagesByStreet creates an aggregator that spreads streets over the given
// number of concurrent shards.
func NewOutagesByStreet(shards int) api.StreetAggregator {
	return &outagesByStreet{
		shards: max(shards, 1),
	}
}

func shardOf(street apiAttr.StreetName, shards int) int {
	h := fnv.New32a()
	h.Write([]byte(street))
	return int(h.Sum32() % uint32(shards))
}

// sumVisits accumulates the visits of the streets owned by one shard
func sumVisits(ctx context.Context, in <-chan visit) (map[apiAttr.StreetName]*tally, error) {
	tallies := make(map[apiAttr.StreetName]*tally)
	done := ctx.Done()

	for v := range in {
		select {
		case <-done:
			return nil, ctx.Err()
		default:
		}

		t, ok := tallies[v.street]
		if !ok {
			t = &tally{minutes: apd.New(0, 0)}
			tallies[v.street] = t
		}
		if _, err := sumCtx.Add(t.minutes, t.minutes, apd.New(v.minutes, 0)); err != nil {
			slog.ErrorContext(ctx, "Error adding outage minutes", "street", v.street, "error", err)
			return nil, err
		}
		t.outages++
		t.specs += v.specs
	}
	return tallies, nil
}

// Process implements aggregators.StreetAggregator. A street listed several
// times in one outage counts as one outage.
func (a *outagesByStreet) Process(ctx context.Context, outages <-chan apiAttr.Outage) ([]api.StreetSummary, error) {
	shards := make([]chan visit, a.shards)
	for i := range shards {
		shards[i] = make(chan visit, visitQueueSize)
	}
	tallies := make([]map[apiAttr.StreetName]*tally, a.shards)

	eg, ctx := errgroup.WithContext(ctx)
	for i, ch := range shards {
		eg.Go(func() error {
			t, err := sumVisits(ctx, ch)
			tallies[i] = t
			return err
		})
	}

	// feed shard channels
	eg.Go(func() error {
		defer func() {
			for _, ch := range shards {
				close(ch)
			}
		}()
		for o := range outages {
			minutes := int64(o.Window().Duration() / time.Minute)
			specs := make(map[apiAttr.StreetName]int)
			var order []apiAttr.StreetName
			for _, e := range o.Addresses().All() {
				name := apiAttr.ParseStreetName(e.Street)
				if _, ok := specs[name]; !ok {
					order = append(order, name)
				}
				specs[name] += len(e.Numbers)
			}
			for _, name := range order {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case shards[shardOf(name, len(shards))] <- visit{street: name, specs: specs[name], minutes: minutes}:
				}
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var outputs []api.StreetSummary
	for _, shard := range tallies {
		for street, t := range shard {
			total, err := num.Hours(t.minutes, 1)
			if err != nil {
				return nil, err
			}
			average, err := num.Hours(t.minutes, int64(t.outages))
			if err != nil {
				return nil, err
			}
			outputs = append(outputs, streetSummary{
				street:  street,
				outages: t.outages,
				specs:   t.specs,
				total:   total,
				average: average,
			})
		}
	}
	slices.SortFunc(outputs, func(a, b api.StreetSummary) int {
		return cmp.Compare(a.Street(), b.Street())
	})
	return outputs, nil
}
