package pricing

import (
	"fmt"

	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
)

type PackageTier struct {
	MinQuantity int
	Discount    decimal.Decimal
}

// Config holds the platform rates. Injected so tests and per-market
// deployments can run with alternate values.
type Config struct {
	VATRate        decimal.Decimal
	CommissionRate decimal.Decimal
	GroupDiscount  decimal.Decimal
	// PackageTiers must be sorted by MinQuantity descending; the first
	// matching tier wins.
	PackageTiers []PackageTier
}

func DefaultConfig() Config {
	return Config{
		VATRate:        decimal.NewFromFloat(0.10),
		CommissionRate: decimal.NewFromFloat(0.20),
		GroupDiscount:  decimal.NewFromFloat(0.30),
		PackageTiers: []PackageTier{
			{MinQuantity: 10, Discount: decimal.NewFromFloat(0.15)},
			{MinQuantity: 5, Discount: decimal.NewFromFloat(0.10)},
		},
	}
}

// Calculator prices lessons. It is pure: no clock, no storage, identical
// inputs always produce identical quotes.
type Calculator struct {
	cfg Config
}

func NewCalculator(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

var (
	minutesPerHour = decimal.NewFromInt(60)
	one            = decimal.NewFromInt(1)
)

// Quote computes the price breakdown for packageQuantity lessons of the given
// type and duration. Intermediate math keeps full precision; each quote field
// is rounded to 2 decimal places only at the end.
func (c *Calculator) Quote(hourlyRate decimal.Decimal, lessonType domain.LessonType, durationMinutes, packageQuantity int) (domain.PricingQuote, error) {
	if !hourlyRate.IsPositive() {
		return domain.PricingQuote{}, fmt.Errorf("%w: hourly rate must be positive", domain.ErrInvalidParameter)
	}
	if !lessonType.Valid() {
		return domain.PricingQuote{}, fmt.Errorf("%w: unknown lesson type %q", domain.ErrInvalidParameter, lessonType)
	}
	if !domain.DurationAllowed(durationMinutes) {
		return domain.PricingQuote{}, fmt.Errorf("%w: duration %d minutes is not offered", domain.ErrInvalidParameter, durationMinutes)
	}
	if packageQuantity < 1 {
		return domain.PricingQuote{}, fmt.Errorf("%w: package quantity must be at least 1", domain.ErrInvalidParameter)
	}

	perLesson := hourlyRate.Div(minutesPerHour).Mul(decimal.NewFromInt(int64(durationMinutes)))
	if lessonType == domain.LessonTypeGroup {
		perLesson = perLesson.Mul(one.Sub(c.cfg.GroupDiscount))
	}

	pkgDiscount := c.packageDiscount(packageQuantity)
	subtotal := perLesson.Mul(decimal.NewFromInt(int64(packageQuantity))).Mul(one.Sub(pkgDiscount))
	tax := subtotal.Mul(c.cfg.VATRate)
	commission := subtotal.Mul(c.cfg.CommissionRate)

	// Round each component, then derive totals from the rounded values so
	// that total == subtotal + tax holds exactly on the wire.
	roundedSubtotal := subtotal.Round(2)
	roundedTax := tax.Round(2)
	roundedCommission := commission.Round(2)

	return domain.PricingQuote{
		HourlyRate:       hourlyRate,
		LessonType:       lessonType,
		DurationMinutes:  durationMinutes,
		PackageQuantity:  packageQuantity,
		PerLessonPrice:   perLesson.Round(2),
		PackageDiscount:  pkgDiscount,
		Subtotal:         roundedSubtotal,
		TaxAmount:        roundedTax,
		CommissionAmount: roundedCommission,
		Total:            roundedSubtotal.Add(roundedTax),
		TeacherEarnings:  roundedSubtotal.Sub(roundedCommission),
	}, nil
}

func (c *Calculator) packageDiscount(quantity int) decimal.Decimal {
	for _, tier := range c.cfg.PackageTiers {
		if quantity >= tier.MinQuantity {
			return tier.Discount
		}
	}
	return decimal.Zero
}
