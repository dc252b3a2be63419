package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bid"
	"github.com/x-xyz/leadauction/service/query"
)

var (
	timeNow = time.Now
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) bid.Repo {
	return &bidRepoImpl{q}
}

// EnsureIndexes creates the (leadId, buyerId) uniqueness index and the resolver's lookup indexes
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.CreateIndexes(c, domain.TableBids, []query.Index{
		{Name: "id_unique", Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
		{Name: "leadId_buyerId_unique", Keys: bson.D{{Key: "leadId", Value: 1}, {Key: "buyerId", Value: 1}}, Unique: true},
		{Name: "leadId_status", Keys: bson.D{{Key: "leadId", Value: 1}, {Key: "status", Value: 1}}},
		{Name: "status_refunded", Keys: bson.D{{Key: "status", Value: 1}, {Key: "refunded", Value: 1}}},
	})
}

func (im *bidRepoImpl) makeQuery(opts ...bid.FindAllOptionsFunc) (bson.M, bid.FindAllOptions, error) {
	options, err := bid.GetFindAllOptions(opts...)
	if err != nil {
		return nil, options, err
	}
	query := bson.M{}

	if options.LeadId != nil {
		query["leadId"] = *options.LeadId
	}

	if len(options.Statuses) > 0 {
		query["status"] = bson.M{"$in": options.Statuses}
	}

	if options.LockHeld != nil {
		if *options.LockHeld {
			query["lockRef"] = bson.M{"$nin": bson.A{nil, ""}}
		} else {
			query["lockRef"] = bson.M{"$in": bson.A{nil, ""}}
		}
	}

	if options.Refunded != nil {
		query["refunded"] = *options.Refunded
	}

	return query, options, nil
}

func (im *bidRepoImpl) FindOne(c ctx.Ctx, leadId, buyerId string) (*bid.Bid, error) {
	res := &bid.Bid{}
	qry := bson.M{"leadId": leadId, "buyerId": buyerId}
	if err := im.q.FindOne(c, domain.TableBids, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *bidRepoImpl) FindAll(c ctx.Ctx, opts ...bid.FindAllOptionsFunc) ([]bid.Bid, error) {
	query, options, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	limit := 0
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []bid.Bid{}
	if err := im.q.SearchNSorts(c, domain.TableBids, 0, limit, []string{"createdAt", "id"}, query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.SearchNSorts failed")
		return nil, err
	}
	return res, nil
}

func (im *bidRepoImpl) Upsert(c ctx.Ctx, b *bid.Bid) error {
	// a bid past PENDING no longer matches, the insert then hits leadId_buyerId_unique
	selector := bson.M{"leadId": b.LeadId, "buyerId": b.BuyerId, "status": bid.StatusPending}
	if err := im.q.Upsert(c, domain.TableBids, selector, b); err == query.ErrDuplicateKey {
		return domain.ErrAuctionClosed
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

// guarded applies set to the bids matched by selector, ErrStatusConflict when none matched
func (im *bidRepoImpl) guarded(c ctx.Ctx, selector bson.M, set bson.M) error {
	matched, err := im.update(c, selector, set, false)
	if err != nil {
		return err
	}
	if matched == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (im *bidRepoImpl) update(c ctx.Ctx, selector bson.M, set bson.M, many bool) (int64, error) {
	set["updatedAt"] = timeNow()
	matched, err := im.q.Update(c, domain.TableBids, selector, bson.M{"$set": set}, many)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Update failed")
		return 0, err
	}
	return matched, nil
}

func (im *bidRepoImpl) Reveal(c ctx.Ctx, id string, patch bid.RevealPatch) error {
	return im.guarded(c, bson.M{"id": id, "status": bid.StatusPending}, bson.M{
		"status":       bid.StatusRevealed,
		"amount":       patch.Amount,
		"effectiveBid": patch.EffectiveBid,
	})
}

func (im *bidRepoImpl) Expire(c ctx.Ctx, id string) error {
	return im.guarded(c, bson.M{"id": id, "status": bid.StatusPending}, bson.M{"status": bid.StatusExpired})
}

func (im *bidRepoImpl) Accept(c ctx.Ctx, id string) error {
	return im.guarded(c, bson.M{"id": id, "status": bid.StatusRevealed}, bson.M{"status": bid.StatusAccepted})
}

func (im *bidRepoImpl) MarkOutbid(c ctx.Ctx, leadId string, winnerId string) (int64, error) {
	selector := bson.M{
		"leadId": leadId,
		"status": bid.StatusRevealed,
		"id":     bson.M{"$ne": winnerId},
	}
	return im.update(c, selector, bson.M{"status": bid.StatusOutbid}, true)
}

func (im *bidRepoImpl) ExpireOpen(c ctx.Ctx, leadId string, from ...bid.Status) (int64, error) {
	if len(from) == 0 {
		return 0, nil
	}
	selector := bson.M{
		"leadId": leadId,
		"status": bson.M{"$in": from},
	}
	return im.update(c, selector, bson.M{"status": bid.StatusExpired}, true)
}

func (im *bidRepoImpl) MarkRefunded(c ctx.Ctx, id string) error {
	if err := im.guarded(c, bson.M{"id": id, "refunded": false}, bson.M{"refunded": true}); err == domain.ErrStatusConflict {
		return domain.ErrConflict
	} else if err != nil {
		return err
	}
	return nil
}

func (im *bidRepoImpl) CountByStatus(c ctx.Ctx, leadId string, status bid.Status) (int, error) {
	qry := bson.M{"leadId": leadId, "status": status}
	cnt, err := im.q.Count(c, domain.TableBids, qry)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}
