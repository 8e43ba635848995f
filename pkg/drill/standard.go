package drill

import (
	"context"
	"fmt"
	"strings"

	"prepkit/internal/console"
	"prepkit/pkg/callback"
	"prepkit/pkg/catalog"
	"prepkit/pkg/closure"
	"prepkit/pkg/seq"
)

// Inputs are the fixed values the standard drills work on.
type Inputs struct {
	Numbers         []int
	Fruits          []string
	FilterNumbers   []int
	FilterThreshold int
	CallbackResult  int
	// PriceLookup is a "category/item" pair answered by the prices drill.
	PriceLookup string
}

// DefaultInputs mirrors config.DefaultConfig.
func DefaultInputs() Inputs {
	return Inputs{
		Numbers:         []int{1, 2, 3, 4, 5, 6, 7, 8, 9},
		Fruits:          []string{"apple", "banana", "cherry"},
		FilterNumbers:   []int{2, 4, 6, 8, 20, 10},
		FilterThreshold: 8,
		CallbackResult:  callback.DefaultResult,
		PriceLookup:     "electronics/laptop",
	}
}

// Standard registers the built-in drills in the order they are meant to be read.
func Standard(catalogs *catalog.Service, in Inputs) *Registry {
	r := NewRegistry()
	for _, d := range []Drill{
		{
			Name:    "greeting",
			Summary: "print the opening line",
			Run: func(ctx context.Context, p *console.Printer) error {
				p.Line("Preparing for the interview")
				return nil
			},
		},
		{
			Name:    "catalog",
			Summary: "print the nested category/item/price record",
			Run: func(ctx context.Context, p *console.Printer) error {
				snap, err := catalogs.Snapshot(ctx)
				if err != nil {
					return err
				}
				p.Line("categories and items:", snap)
				return nil
			},
		},
		{
			Name:    "sequences",
			Summary: "print the numeric and string inputs",
			Run: func(ctx context.Context, p *console.Printer) error {
				p.Line("", in.Numbers)
				p.Line("", in.Fruits)
				return nil
			},
		},
		{
			Name:    "map",
			Summary: "square every number, first for the side effect, then for the result",
			Run: func(ctx context.Context, p *console.Printer) error {
				// The callback prints and the mapped slice is thrown away.
				_ = seq.Map(in.Numbers, func(x int) struct{} {
					p.Line("", seq.Square(x))
					return struct{}{}
				})
				p.Line("", seq.Map(in.Numbers, seq.Square))
				seq.ForEach(in.Fruits, func(f string) {
					p.Line("", f)
				})
				return nil
			},
		},
		{
			Name:    "filter",
			Summary: "keep numbers strictly greater than the threshold",
			Run: func(ctx context.Context, p *console.Printer) error {
				p.Line("", seq.Filter(in.FilterNumbers, seq.GreaterThan(in.FilterThreshold)))
				return nil
			},
		},
		{
			Name:    "callback",
			Summary: "pass one function into another",
			Run: func(ctx context.Context, p *console.Printer) error {
				callback.Dispatch(p, in.CallbackResult, callback.Receiver(p))
				return nil
			},
		},
		{
			Name:    "closure",
			Summary: "call a function that still sees its parent's variable",
			Run: func(ctx context.Context, p *console.Printer) error {
				finals := closure.Outer()
				p.Line("", finals())
				return nil
			},
		},
		{
			Name:    "counter",
			Summary: "a closure that mutates its captured variable",
			Extra:   true,
			Run: func(ctx context.Context, p *console.Printer) error {
				next := closure.Counter(0)
				for i := 0; i < 3; i++ {
					p.Line("", next())
				}
				return nil
			},
		},
		{
			Name:    "prices",
			Summary: "flatten the catalog into rows and look up one price",
			Extra:   true,
			Run: func(ctx context.Context, p *console.Printer) error {
				entries, err := catalogs.Entries(ctx)
				if err != nil {
					return err
				}
				seq.ForEach(entries, func(e catalog.Entry) {
					p.Line("", e)
				})

				category, item, ok := strings.Cut(in.PriceLookup, "/")
				if !ok {
					return fmt.Errorf("price lookup %q: want category/item", in.PriceLookup)
				}
				price, err := catalogs.Price(ctx, category, item)
				if err != nil {
					return err
				}
				p.Line("price of "+in.PriceLookup+":", price)
				return nil
			},
		},
	} {
		// Names above are unique literals.
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}
