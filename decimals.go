package rebalance

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrLibraryUnavailable reports that the decimal arithmetic factory could not
// be loaded. The failure is not cached: a later call may retry and succeed.
var ErrLibraryUnavailable = errors.New("decimal arithmetic library unavailable")

// significantDigits is the division precision applied to decimal arithmetic.
// Divisions are the only lossy operations; 20 significant digits keeps
// chained ratio computations stable well below the 1e-9 tolerances used in
// reports.
const significantDigits = 20

// configure applies the arithmetic configuration exactly once per process,
// at the first successful factory load.
var configure sync.Once

// Factory creates and compares decimals with the configured precision.
// Obtain one from Decimals.Get.
type Factory struct{}

// New creates a decimal from a float.
func (f *Factory) New(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// Parse creates a decimal from its string representation.
func (f *Factory) Parse(s string) (decimal.Decimal, error) { return decimal.NewFromString(s) }

// Max returns the larger of a and b.
func (f *Factory) Max(a, b decimal.Decimal) decimal.Decimal { return decimal.Max(a, b) }

// Min returns the smaller of a and b.
func (f *Factory) Min(a, b decimal.Decimal) decimal.Decimal { return decimal.Min(a, b) }

// MaxMoney returns the larger of two amounts.
func (f *Factory) MaxMoney(a, b Money) Money {
	return Money{value: decimal.Max(a.value, b.value), cur: cur(a, b)}
}

// MinMoney returns the smaller of two amounts.
func (f *Factory) MinMoney(a, b Money) Money {
	return Money{value: decimal.Min(a.value, b.value), cur: cur(a, b)}
}

// MinQuantity returns the smaller of two quantities.
func (f *Factory) MinQuantity(a, b Quantity) Quantity {
	return Quantity{value: decimal.Min(a.value, b.value)}
}

// Decimals lazily loads and then shares a single decimal Factory.
//
// The first Get performs the load; concurrent first callers block on the same
// in-flight load instead of triggering duplicates. A failed load is not
// cached, so a later Get retries. There are no package-level singletons: the
// service is constructed by the caller and injected into the engines.
type Decimals struct {
	mu      sync.Mutex
	loader  func() (*Factory, error)
	factory *Factory
}

// NewDecimals returns a service using the default factory loader.
func NewDecimals() *Decimals {
	return NewDecimalsWithLoader(loadFactory)
}

// NewDecimalsWithLoader returns a service with a custom loader. Tests use it
// to simulate load failures and to observe load counts.
func NewDecimalsWithLoader(loader func() (*Factory, error)) *Decimals {
	return &Decimals{loader: loader}
}

// Get returns the shared factory, loading it on first use.
// On failure it returns an error wrapping ErrLibraryUnavailable.
func (d *Decimals) Get() (*Factory, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.factory != nil {
		return d.factory, nil
	}
	f, err := d.loader()
	if err != nil {
		return nil, errors.Join(ErrLibraryUnavailable, err)
	}
	d.factory = f
	return d.factory, nil
}

// loadFactory configures the decimal library and returns the shared factory.
// shopspring/decimal rounds divisions half-up at DivisionPrecision digits.
func loadFactory() (*Factory, error) {
	configure.Do(func() {
		decimal.DivisionPrecision = significantDigits
	})
	return &Factory{}, nil
}
