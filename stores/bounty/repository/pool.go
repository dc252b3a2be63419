package repository

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bounty"
	"github.com/x-xyz/leadauction/service/query"
)

var (
	timeNow = time.Now
)

type poolRepoImpl struct {
	q        query.Mongo
	validate *validator.Validate
}

// NewPoolRepo reads pools owned by the bounty service. Pools are never created here.
func NewPoolRepo(q query.Mongo, validate *validator.Validate) bounty.Repo {
	return &poolRepoImpl{q: q, validate: validate}
}

func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.CreateIndexes(c, domain.TableBountyPools, []query.Index{
		{Name: "id_unique", Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
		{Name: "category_active", Keys: bson.D{{Key: "criteria.category", Value: 1}, {Key: "active", Value: 1}}},
	}); err != nil {
		return err
	}
	return q.CreateIndexes(c, domain.TableBountyReleases, []query.Index{
		{Name: "poolId_leadId_unique", Keys: bson.D{{Key: "poolId", Value: 1}, {Key: "leadId", Value: 1}}, Unique: true},
	})
}

func (im *poolRepoImpl) FindActive(c ctx.Ctx, category string) ([]bounty.Pool, error) {
	qry := bson.M{"criteria.category": category, "active": true}
	pools := []bounty.Pool{}
	if err := im.q.Search(c, domain.TableBountyPools, 0, 0, "", qry, &pools); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}

	res := make([]bounty.Pool, 0, len(pools))
	for _, p := range pools {
		if err := im.validate.Struct(p); err != nil {
			c.WithFields(log.Fields{
				"err":    err,
				"poolId": p.Id,
			}).Warn("skip malformed pool")
			continue
		}
		res = append(res, p)
	}
	return res, nil
}

func (im *poolRepoImpl) FindOne(c ctx.Ctx, id string) (*bounty.Pool, error) {
	res := &bounty.Pool{}
	if err := im.q.FindOne(c, domain.TableBountyPools, bson.M{"id": id}, res); err == query.ErrNotFound {
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

func (im *poolRepoImpl) Debit(c ctx.Ctx, id string, amount decimal.Decimal) error {
	selector := bson.M{
		"id":               id,
		"active":           true,
		"remainingBalance": bson.M{"$gte": amount},
	}
	update := bson.M{"$inc": bson.M{
		"remainingBalance": amount.Neg(),
		"releasedAmount":   amount,
	}}
	matched, err := im.q.Update(c, domain.TableBountyPools, selector, update, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"amount": amount,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrPoolExhausted
	}
	return nil
}

func (im *poolRepoImpl) Credit(c ctx.Ctx, id string, amount decimal.Decimal) error {
	update := bson.M{"$inc": bson.M{
		"remainingBalance": amount,
		"releasedAmount":   amount.Neg(),
	}}
	matched, err := im.q.Update(c, domain.TableBountyPools, bson.M{"id": id}, update, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"amount": amount,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}
