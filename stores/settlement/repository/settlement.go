package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/settlement"
	"github.com/x-xyz/leadauction/service/query"
)

type settlementRepoImpl struct {
	q query.Mongo
}

func NewSettlementRepo(q query.Mongo) settlement.Repo {
	return &settlementRepoImpl{q}
}

// EnsureIndexes makes a second settlement for the same lead a duplicate key
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.CreateIndexes(c, domain.TableSettlements, []query.Index{
		{Name: "id_unique", Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
		{Name: "leadId_unique", Keys: bson.D{{Key: "leadId", Value: 1}}, Unique: true},
		{Name: "releaseStatus_createdAt", Keys: bson.D{{Key: "releaseStatus", Value: 1}, {Key: "createdAt", Value: 1}}},
	})
}

func (im *settlementRepoImpl) Create(c ctx.Ctx, r *settlement.Record) error {
	if err := im.q.Insert(c, domain.TableSettlements, r); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"leadId": r.LeadId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *settlementRepoImpl) FindByLead(c ctx.Ctx, leadId string) (*settlement.Record, error) {
	res := &settlement.Record{}
	if err := im.q.FindOne(c, domain.TableSettlements, bson.M{"leadId": leadId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"leadId": leadId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *settlementRepoImpl) FindPending(c ctx.Ctx, limit int) ([]settlement.Record, error) {
	qry := bson.M{
		"releaseStatus": settlement.ReleaseStatusPending,
		"lockRef":       bson.M{"$nin": bson.A{nil, ""}},
	}
	res := []settlement.Record{}
	if err := im.q.Search(c, domain.TableSettlements, 0, limit, "createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *settlementRepoImpl) MarkReleased(c ctx.Ctx, id string, txRef string, at time.Time) error {
	return im.fromPending(c, id, bson.M{
		"releaseStatus": settlement.ReleaseStatusReleased,
		"txRef":         txRef,
		"releasedAt":    at,
	})
}

func (im *settlementRepoImpl) MarkFailed(c ctx.Ctx, id string, reason string) error {
	return im.fromPending(c, id, bson.M{
		"releaseStatus": settlement.ReleaseStatusFailed,
		"failReason":    reason,
	})
}

func (im *settlementRepoImpl) fromPending(c ctx.Ctx, id string, set bson.M) error {
	selector := bson.M{"id": id, "releaseStatus": settlement.ReleaseStatusPending}
	matched, err := im.q.Update(c, domain.TableSettlements, selector, bson.M{"$set": set}, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}
