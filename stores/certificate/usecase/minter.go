package usecase

import (
	"errors"
	"time"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/certificate"
	"github.com/x-xyz/leadauction/domain/settlement"
)

var (
	timeNow = time.Now
)

type impl struct {
	repo certificate.Repo
}

// New returns a minter that only records requests. A separate worker mints them.
func New(repo certificate.Repo) certificate.Usecase {
	return &impl{repo: repo}
}

func (im *impl) RequestMint(c ctx.Ctx, s *settlement.Record) error {
	now := timeNow()
	err := im.repo.Create(c, &certificate.MintRequest{
		LeadId:       s.LeadId,
		SettlementId: s.Id,
		BuyerId:      s.BuyerId,
		Status:       certificate.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrConflict) {
		return nil
	} else if err != nil {
		c.WithField("err", err).WithField("leadId", s.LeadId).Error("repo.Create failed")
		return err
	}
	return nil
}
