package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/escrow"
	"github.com/x-xyz/leadauction/service/ledger"
)

const (
	opLock   = "lock"
	opSettle = "settle"
	opRefund = "refund"

	defaultLedgerTimeout = 5 * time.Second
)

var (
	timeNow = time.Now
	newId   = func() string { return uuid.New().String() }
)

type VaultUseCaseCfg struct {
	LockRepo escrow.Repo
	Ledger   ledger.Client
	// ProtocolFee is added to every balance check and withheld from every payout
	ProtocolFee decimal.Decimal
	// LedgerTimeout bounds each ledger call. A timeout is handled like any other failure.
	LedgerTimeout time.Duration
}

type vaultImpl struct {
	repo        escrow.Repo
	ledger      ledger.Client
	protocolFee decimal.Decimal
	timeout     time.Duration
	met         metrics.Service
}

func NewVault(cfg *VaultUseCaseCfg) escrow.Vault {
	timeout := cfg.LedgerTimeout
	if timeout <= 0 {
		timeout = defaultLedgerTimeout
	}
	return &vaultImpl{
		repo:        cfg.LockRepo,
		ledger:      cfg.Ledger,
		protocolFee: cfg.ProtocolFee,
		timeout:     timeout,
		met:         metrics.New("escrow"),
	}
}

func (im *vaultImpl) CheckBalance(c ctx.Ctx, identity domain.Address, amount decimal.Decimal) (bool, decimal.Decimal, error) {
	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()

	available, err := im.ledger.Balance(tc, identity)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"identity": identity,
		}).Error("ledger.Balance failed")
		return false, decimal.Zero, err
	}
	required := amount.Add(im.protocolFee)
	return available.GreaterThanOrEqual(required), available, nil
}

func (im *vaultImpl) Lock(c ctx.Ctx, identity domain.Address, amount decimal.Decimal, leadId, buyerId string) (string, error) {
	if !amount.IsPositive() {
		return "", domain.ErrInvalidAmount
	}
	c = ctx.WithValues(c, map[string]interface{}{"leadId": leadId, "buyerId": buyerId})

	open, err := im.repo.FindOpen(c, leadId, buyerId)
	if err != nil {
		c.WithField("err", err).Error("repo.FindOpen failed")
		return "", err
	}
	for _, l := range open {
		if _, err := im.Refund(c, l.Id, buyerId, leadId); err != nil && !errors.Is(err, domain.ErrLockClosed) {
			c.WithFields(log.Fields{
				"err":    err,
				"lockId": l.Id,
			}).Error("failed to refund previous lock")
			return "", err
		}
	}

	lockId := newId()
	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()
	holdRef, err := im.ledger.Hold(tc, identity, amount, escrow.IdempotencyKey(lockId, opLock))
	if err != nil {
		im.met.BumpSum("lock.err", 1)
		c.WithFields(log.Fields{
			"err":    err,
			"lockId": lockId,
		}).Error("ledger.Hold failed")
		return "", err
	}

	now := timeNow()
	lock := &escrow.Lock{
		Id:        lockId,
		LeadId:    leadId,
		BuyerId:   buyerId,
		Identity:  identity.ToLower(),
		Amount:    amount,
		HoldRef:   holdRef,
		Status:    escrow.LockStatusLocked,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := im.repo.Insert(c, lock); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"lockId": lockId,
		}).Error("repo.Insert failed, releasing hold")
		if _, rerr := im.ledger.Release(tc, holdRef, escrow.IdempotencyKey(lockId, opRefund)); rerr != nil {
			c.WithFields(log.Fields{
				"err":     rerr,
				"holdRef": holdRef,
			}).Error("ledger.Release failed, hold is orphaned")
		}
		return "", err
	}
	im.met.BumpSum("lock", 1)
	return lockId, nil
}

func (im *vaultImpl) load(c ctx.Ctx, lockId, buyerId, leadId string) (*escrow.Lock, error) {
	lock, err := im.repo.FindOne(c, lockId)
	if err != nil {
		return nil, err
	}
	if lock.BuyerId != buyerId || lock.LeadId != leadId {
		c.WithFields(log.Fields{
			"lockBuyerId": lock.BuyerId,
			"lockLeadId":  lock.LeadId,
		}).Error("lock does not belong to the bid")
		return nil, domain.ErrBadParamInput
	}
	return lock, nil
}

// closed returns the txRef when the lock was already closed with want, ErrLockClosed when closed otherwise
func closed(lock *escrow.Lock, want escrow.LockStatus) (string, error) {
	if lock.Status == want && lock.TxRef != nil {
		return *lock.TxRef, nil
	}
	return "", domain.ErrLockClosed
}

func (im *vaultImpl) Settle(c ctx.Ctx, lockId string, payee domain.Address, amount decimal.Decimal, buyerId, leadId string) (string, error) {
	c = ctx.WithValues(c, map[string]interface{}{"lockId": lockId, "leadId": leadId})
	lock, err := im.load(c, lockId, buyerId, leadId)
	if err != nil {
		return "", err
	}
	if lock.Status != escrow.LockStatusLocked {
		return closed(lock, escrow.LockStatusSettled)
	}

	if !amount.IsPositive() || amount.GreaterThan(lock.Amount) {
		c.WithFields(log.Fields{
			"amount": amount,
			"locked": lock.Amount,
		}).Error("settle amount not covered by lock")
		return "", domain.ErrInvalidAmount
	}

	payout := amount.Sub(im.protocolFee)
	if payout.IsNegative() {
		payout = decimal.Zero
	}
	if excess := lock.Amount.Sub(payout); excess.IsPositive() {
		c.WithField("excess", excess).Debug("uncaptured part of hold goes back to buyer")
	}

	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()
	txRef, err := im.ledger.Capture(tc, lock.HoldRef, payee, payout, escrow.IdempotencyKey(lockId, opSettle))
	if errors.Is(err, ledger.ErrHoldClosed) {
		return "", domain.ErrLockClosed
	} else if err != nil {
		im.met.BumpSum("settle.err", 1)
		c.WithField("err", err).Error("ledger.Capture failed")
		return "", err
	}

	return im.close(c, lockId, escrow.LockStatusSettled, txRef)
}

func (im *vaultImpl) Refund(c ctx.Ctx, lockId string, buyerId, leadId string) (string, error) {
	c = ctx.WithValues(c, map[string]interface{}{"lockId": lockId, "leadId": leadId})
	lock, err := im.load(c, lockId, buyerId, leadId)
	if err != nil {
		return "", err
	}
	if lock.Status != escrow.LockStatusLocked {
		return closed(lock, escrow.LockStatusRefunded)
	}

	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()
	txRef, err := im.ledger.Release(tc, lock.HoldRef, escrow.IdempotencyKey(lockId, opRefund))
	if errors.Is(err, ledger.ErrHoldClosed) {
		return "", domain.ErrLockClosed
	} else if err != nil {
		im.met.BumpSum("refund.err", 1)
		c.WithField("err", err).Error("ledger.Release failed")
		return "", err
	}

	return im.close(c, lockId, escrow.LockStatusRefunded, txRef)
}

// close records the ledger outcome. Losing the race to a concurrent close returns whatever that close recorded.
func (im *vaultImpl) close(c ctx.Ctx, lockId string, status escrow.LockStatus, txRef string) (string, error) {
	err := im.repo.Close(c, lockId, status, txRef)
	if err == nil {
		im.met.BumpSum(string(status), 1)
		return txRef, nil
	}
	if !errors.Is(err, domain.ErrStatusConflict) {
		c.WithFields(log.Fields{
			"err":   err,
			"txRef": txRef,
		}).Error("repo.Close failed")
		return "", err
	}
	lock, err := im.repo.FindOne(c, lockId)
	if err != nil {
		return "", err
	}
	return closed(lock, status)
}
