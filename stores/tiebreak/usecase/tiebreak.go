package usecase

import (
	"time"

	"github.com/x-xyz/leadauction/base/backoff"
	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/tiebreak"
	"github.com/x-xyz/leadauction/service/vrf"
)

const (
	defaultOracleTimeout = 30 * time.Second
	defaultPollInterval  = 500 * time.Millisecond
	defaultPollLimit     = 5 * time.Second
)

type TieBreakUseCaseCfg struct {
	Vrf           vrf.Client
	OracleTimeout time.Duration
	PollInterval  time.Duration
	PollLimit     time.Duration
}

type impl struct {
	vrf           vrf.Client
	oracleTimeout time.Duration
	pollInterval  time.Duration
	pollLimit     time.Duration
	met           metrics.Service
}

func New(cfg *TieBreakUseCaseCfg) tiebreak.Usecase {
	im := &impl{
		vrf:           cfg.Vrf,
		oracleTimeout: cfg.OracleTimeout,
		pollInterval:  cfg.PollInterval,
		pollLimit:     cfg.PollLimit,
		met:           metrics.New("tiebreak"),
	}
	if im.oracleTimeout <= 0 {
		im.oracleTimeout = defaultOracleTimeout
	}
	if im.pollInterval <= 0 {
		im.pollInterval = defaultPollInterval
	}
	if im.pollLimit <= 0 {
		im.pollLimit = defaultPollLimit
	}
	return im
}

func (im *impl) Resolve(c ctx.Ctx, leadId string, candidates []tiebreak.Candidate) (tiebreak.Candidate, error) {
	if len(candidates) == 0 {
		return tiebreak.Candidate{}, domain.ErrBadParamInput
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	c = ctx.WithValue(c, "leadId", leadId)
	if im.vrf == nil || !im.vrf.Configured() {
		return im.fallback(c, candidates, "unconfigured"), nil
	}

	winner, err := im.draw(c, leadId, candidates)
	if err != nil {
		c.WithField("err", err).Warn("random draw unavailable, falling back to earliest bid")
		return im.fallback(c, candidates, "oracle"), nil
	}
	im.met.BumpSum("resolve", 1, "path", "oracle")
	return winner, nil
}

func (im *impl) draw(c ctx.Ctx, leadId string, candidates []tiebreak.Candidate) (tiebreak.Candidate, error) {
	tc, cancel := ctx.WithTimeout(c, im.oracleTimeout)
	defer cancel()

	identities := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		identities = append(identities, cand.Identity.ToLowerStr())
	}

	requestId, err := im.vrf.RequestDraw(tc, leadId, identities)
	if err != nil {
		return tiebreak.Candidate{}, err
	}

	b := backoff.NewExponential(im.pollInterval, im.pollLimit)
	for {
		draw, err := im.vrf.GetDraw(tc, requestId)
		if err != nil {
			c.WithFields(log.Fields{
				"err":       err,
				"requestId": requestId,
			}).Warn("vrf.GetDraw failed")
		} else if draw.Ready {
			winner, ok := tiebreak.Find(candidates, domain.Address(draw.Winner))
			if !ok {
				c.WithFields(log.Fields{
					"requestId": requestId,
					"winner":    draw.Winner,
				}).Warn("draw winner is not a candidate")
				return tiebreak.Candidate{}, domain.ErrOracleUnavailable
			}
			return winner, nil
		}

		if err := b.Backoff(tc); err != nil {
			return tiebreak.Candidate{}, domain.ErrOracleUnavailable
		}
	}
}

func (im *impl) fallback(c ctx.Ctx, candidates []tiebreak.Candidate, reason string) tiebreak.Candidate {
	winner := tiebreak.Fallback(candidates)
	im.met.BumpSum("resolve", 1, "path", "fallback", "reason", reason)
	c.WithFields(log.Fields{
		"reason": reason,
		"bidId":  winner.BidId,
	}).Info("tie resolved by earliest bid")
	return winner
}
