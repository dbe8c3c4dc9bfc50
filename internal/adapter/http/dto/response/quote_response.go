package response

import (
	"ckforest/internal/domain/entities"
)

type QuoteResponse struct {
	Adults         int     `json:"adults"`
	Children       int     `json:"children"`
	HeadcountTotal int     `json:"headcount_total"`
	Subtotal       float64 `json:"subtotal"`
	DepositDue     float64 `json:"deposit_due"`
	IsEligible     bool    `json:"is_eligible"`
}

func FromQuote(q entities.PriceQuote) QuoteResponse {
	return QuoteResponse{
		Adults:         q.Adults,
		Children:       q.Children,
		HeadcountTotal: q.HeadcountTotal,
		Subtotal:       q.Subtotal,
		DepositDue:     q.DepositDue,
		IsEligible:     q.IsEligible,
	}
}
