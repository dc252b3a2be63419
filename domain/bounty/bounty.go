package bounty

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/lead"
)

// Criteria decides which leads a pool subsidizes. Empty Regions matches every region.
type Criteria struct {
	Category        string   `json:"category" bson:"category" validate:"required"`
	Regions         []string `json:"regions,omitempty" bson:"regions" validate:"omitempty,dive,required"`
	MinQuality      *int     `json:"minQuality,omitempty" bson:"minQuality" validate:"omitempty,min=0,max=100"`
	MaxLeadAgeHours *int     `json:"maxLeadAgeHours,omitempty" bson:"maxLeadAgeHours" validate:"omitempty,min=1"`
}

type Pool struct {
	Id               string          `json:"id" bson:"id" validate:"required"`
	BuyerId          string          `json:"buyerId" bson:"buyerId" validate:"required"`
	FunderIdentity   domain.Address  `json:"funderIdentity" bson:"funderIdentity" validate:"required"`
	Criteria         Criteria        `json:"criteria" bson:"criteria" validate:"required"`
	AmountPerLead    decimal.Decimal `json:"amountPerLead" bson:"amountPerLead"`
	RemainingBalance decimal.Decimal `json:"remainingBalance" bson:"remainingBalance"`
	ReleasedAmount   decimal.Decimal `json:"releasedAmount" bson:"releasedAmount"`
	Active           bool            `json:"active" bson:"active"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
}

// Matches reports whether the pool subsidizes l at now. An unscored lead passes the quality floor.
func (p *Pool) Matches(l *lead.Lead, now time.Time) bool {
	if !p.Active || p.Criteria.Category != l.Category {
		return false
	}
	if len(p.Criteria.Regions) > 0 && l.Region != nil {
		found := false
		for _, r := range p.Criteria.Regions {
			if r == *l.Region {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if p.Criteria.MinQuality != nil && l.QualityScore != nil && *l.QualityScore < *p.Criteria.MinQuality {
		return false
	}
	if p.Criteria.MaxLeadAgeHours != nil {
		maxAge := time.Duration(*p.Criteria.MaxLeadAgeHours) * time.Hour
		if now.Sub(l.CreatedAt) > maxAge {
			return false
		}
	}
	return true
}

type Payout struct {
	PoolId  string          `json:"poolId"`
	BuyerId string          `json:"buyerId"`
	Payer   domain.Address  `json:"payer"`
	Amount  decimal.Decimal `json:"amount"`
}

// MatchPools stacks payouts from matching pools, largest remaining balance first.
// A payout that would push the sum over capAmount is skipped.
func MatchPools(pools []Pool, l *lead.Lead, capAmount decimal.Decimal, now time.Time) []Payout {
	matched := make([]Pool, 0, len(pools))
	for _, p := range pools {
		if p.Matches(l, now) && p.RemainingBalance.IsPositive() && p.AmountPerLead.IsPositive() {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if c := matched[i].RemainingBalance.Cmp(matched[j].RemainingBalance); c != 0 {
			return c > 0
		}
		return matched[i].Id < matched[j].Id
	})

	payouts := []Payout{}
	remaining := capAmount
	for _, p := range matched {
		amount := decimal.Min(p.AmountPerLead, p.RemainingBalance)
		if amount.GreaterThan(remaining) {
			continue
		}
		remaining = remaining.Sub(amount)
		payouts = append(payouts, Payout{
			PoolId:  p.Id,
			BuyerId: p.BuyerId,
			Payer:   p.FunderIdentity,
			Amount:  amount,
		})
	}
	return payouts
}

type ReleaseStatus string

const (
	ReleaseStatusPending  ReleaseStatus = "PENDING"
	ReleaseStatusReleased ReleaseStatus = "RELEASED"
	ReleaseStatusFailed   ReleaseStatus = "FAILED"
)

// Release is the once-per-(pool, lead) record of a payout
type Release struct {
	PoolId    string          `json:"poolId" bson:"poolId"`
	LeadId    string          `json:"leadId" bson:"leadId"`
	Payee     domain.Address  `json:"payee" bson:"payee"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
	Status    ReleaseStatus   `json:"status" bson:"status"`
	TxRef     *string         `json:"txRef,omitempty" bson:"txRef"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type Repo interface {
	// FindActive returns active pools of a category. Pools failing validation are skipped.
	FindActive(c ctx.Ctx, category string) ([]Pool, error)
	FindOne(c ctx.Ctx, id string) (*Pool, error)
	// Debit takes amount from the pool only if the remaining balance covers it, domain.ErrPoolExhausted otherwise.
	Debit(c ctx.Ctx, id string, amount decimal.Decimal) error
	// Credit gives back an amount taken by Debit
	Credit(c ctx.Ctx, id string, amount decimal.Decimal) error
}

type ReleaseRepo interface {
	// Create inserts a PENDING release. domain.ErrConflict when the (pool, lead) pair exists.
	Create(c ctx.Ctx, r *Release) error
	FindOne(c ctx.Ctx, poolId, leadId string) (*Release, error)
	UpdateStatus(c ctx.Ctx, poolId, leadId string, status ReleaseStatus, txRef *string) error
}

type Usecase interface {
	Match(c ctx.Ctx, l *lead.Lead, capAmount decimal.Decimal) ([]Payout, error)
	Release(c ctx.Ctx, poolId, leadId string, payee domain.Address, amount decimal.Decimal) (txRef string, err error)
}
