package tiebreak

import (
	"sort"
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
)

type Candidate struct {
	BidId     string         `json:"bidId"`
	BuyerId   string         `json:"buyerId"`
	Identity  domain.Address `json:"identity"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Usecase interface {
	// Resolve picks one winner among tied candidates. It never blocks longer than its oracle timeout.
	Resolve(c ctx.Ctx, leadId string, candidates []Candidate) (Candidate, error)
}

// Fallback picks the earliest bid, ties on time broken by bid id. Same input, same winner.
func Fallback(candidates []Candidate) Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].BidId < sorted[j].BidId
	})
	return sorted[0]
}

// Find returns the candidate whose identity equals identity
func Find(candidates []Candidate, identity domain.Address) (Candidate, bool) {
	for _, c := range candidates {
		if c.Identity.Equals(identity) {
			return c, true
		}
	}
	return Candidate{}, false
}
