package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/escrow"
	"github.com/x-xyz/leadauction/service/query"
)

var (
	timeNow = time.Now
)

type lockRepoImpl struct {
	q query.Mongo
}

func NewLockRepo(q query.Mongo) escrow.Repo {
	return &lockRepoImpl{q}
}

func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.CreateIndexes(c, domain.TableEscrowLocks, []query.Index{
		{Name: "id_unique", Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
		{Name: "leadId_buyerId_status", Keys: bson.D{{Key: "leadId", Value: 1}, {Key: "buyerId", Value: 1}, {Key: "status", Value: 1}}},
	})
}

func (im *lockRepoImpl) Insert(c ctx.Ctx, l *escrow.Lock) error {
	if err := im.q.Insert(c, domain.TableEscrowLocks, l); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  l.Id,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *lockRepoImpl) FindOne(c ctx.Ctx, id string) (*escrow.Lock, error) {
	res := &escrow.Lock{}
	if err := im.q.FindOne(c, domain.TableEscrowLocks, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *lockRepoImpl) FindOpen(c ctx.Ctx, leadId, buyerId string) ([]escrow.Lock, error) {
	qry := bson.M{
		"leadId":  leadId,
		"buyerId": buyerId,
		"status":  escrow.LockStatusLocked,
	}
	res := []escrow.Lock{}
	if err := im.q.Search(c, domain.TableEscrowLocks, 0, 0, "createdAt", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *lockRepoImpl) Close(c ctx.Ctx, id string, status escrow.LockStatus, txRef string) error {
	selector := bson.M{"id": id, "status": escrow.LockStatusLocked}
	update := bson.M{"$set": bson.M{
		"status":    status,
		"txRef":     txRef,
		"updatedAt": timeNow(),
	}}
	matched, err := im.q.Update(c, domain.TableEscrowLocks, selector, update, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"status": status,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}
