package pricing

import "github.com/shopspring/decimal"

var (
	minModule = decimal.New(1, -2)
	ten       = decimal.NewFromInt(10)
)

// RoundPrice rounds the price of n items up so that the item price is a
// round number. The rounding module is the smallest power of ten, starting
// at 0.01, that reaches threshold/n; it drops by a factor of ten when
// rounding to it would add more than threshold/n per item.
func RoundPrice(price float64, n int, threshold float64) float64 {
	if n <= 0 || price <= 0 || threshold <= 0 {
		return price
	}
	count := decimal.NewFromInt(int64(n))
	step := decimal.NewFromFloat(threshold).Div(count)

	module := minModule
	for module.LessThan(step) {
		module = module.Mul(ten)
	}

	item := decimal.NewFromFloat(price).Div(count)
	rounded := ceilTo(item, module)
	if rounded.Sub(item).GreaterThan(step) && module.GreaterThan(minModule) {
		rounded = ceilTo(item, module.Div(ten))
	}
	f, _ := rounded.Round(2).Mul(count).Float64()
	return f
}

func ceilTo(v, module decimal.Decimal) decimal.Decimal {
	return v.Div(module).Ceil().Mul(module)
}
