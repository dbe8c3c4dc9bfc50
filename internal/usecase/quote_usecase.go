package usecase

import (
	"strconv"
	"strings"

	"ckforest/internal/domain/entities"
)

// DepositRate is the fixed fraction of the subtotal due at booking time.
const DepositRate = 0.5

// IQuoteUseCase exposes the booking price calculation.
//
// ComputeQuote is deterministic and side-effect free; callers invoke it on
// every guest-count or package change, so it must always return a value.
type IQuoteUseCase interface {
	ComputeQuote(pkg entities.TourPackage, adultsRaw, childrenRaw string) entities.PriceQuote
}

type QuoteUseCase struct{}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

// ComputeQuote turns a package and raw guest-count input into a PriceQuote.
//
// Calculation rules:
//   - guest counts are parsed base-10; anything unparsable counts as 0
//   - subtotal charges adults only (children stay free)
//   - depositDue = subtotal * DepositRate, unrounded
//   - eligibility requires adults >= pkg.MinHeadcount
func (u *QuoteUseCase) ComputeQuote(pkg entities.TourPackage, adultsRaw, childrenRaw string) entities.PriceQuote {
	adults := ParseGuestCount(adultsRaw)
	children := ParseGuestCount(childrenRaw)

	subtotal := float64(adults) * pkg.PricePerPerson
	return entities.PriceQuote{
		Adults:         adults,
		Children:       children,
		HeadcountTotal: adults + children,
		Subtotal:       subtotal,
		DepositDue:     subtotal * DepositRate,
		IsEligible:     adults >= pkg.MinHeadcount,
	}
}

// ParseGuestCount coerces raw user input into a non-negative integer.
// Empty or non-numeric input degrades to 0 rather than failing; negative
// values are clamped to 0 (the form's min="0" is a UI affordance only).
func ParseGuestCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
