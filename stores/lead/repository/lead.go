package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/service/query"
)

var (
	timeNow = time.Now
)

type leadRepoImpl struct {
	q query.Mongo
}

func NewLeadRepo(q query.Mongo) lead.Repo {
	return &leadRepoImpl{q}
}

// EnsureIndexes creates the indexes the lead and auction window queries rely on
func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	if err := q.CreateIndexes(c, domain.TableLeads, []query.Index{
		{Name: "id_unique", Keys: bson.D{{Key: "id", Value: 1}}, Unique: true},
		{Name: "status_auctionEndAt", Keys: bson.D{{Key: "status", Value: 1}, {Key: "auctionEndAt", Value: 1}}},
	}); err != nil {
		return err
	}
	return q.CreateIndexes(c, domain.TableAuctionWindows, []query.Index{
		{Name: "leadId_unique", Keys: bson.D{{Key: "leadId", Value: 1}}, Unique: true},
		{Name: "phase_biddingDeadline", Keys: bson.D{{Key: "phase", Value: 1}, {Key: "biddingDeadline", Value: 1}}},
	})
}

func (im *leadRepoImpl) makeQuery(opts ...lead.FindAllOptionsFunc) (bson.M, lead.FindAllOptions, error) {
	options, err := lead.GetFindAllOptions(opts...)
	if err != nil {
		return nil, options, err
	}
	query := bson.M{}

	if len(options.Statuses) > 0 {
		query["status"] = bson.M{"$in": options.Statuses}
	}

	if options.EndedBefore != nil {
		query["auctionEndAt"] = bson.M{"$lte": *options.EndedBefore}
	}

	if len(options.Ids) > 0 {
		query["id"] = bson.M{"$in": options.Ids}
	}

	return query, options, nil
}

func (im *leadRepoImpl) FindOne(c ctx.Ctx, id string) (*lead.Lead, error) {
	res := &lead.Lead{}
	if err := im.q.FindOne(c, domain.TableLeads, bson.M{"id": id}, res); err == query.ErrNotFound {
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

func (im *leadRepoImpl) FindAll(c ctx.Ctx, opts ...lead.FindAllOptionsFunc) ([]lead.Lead, error) {
	query, options, err := im.makeQuery(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = *options.Offset
	}
	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []lead.Lead{}
	if err := im.q.Search(c, domain.TableLeads, offset, limit, "auctionEndAt", query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *leadRepoImpl) transition(c ctx.Ctx, id string, set bson.M) error {
	set["updatedAt"] = timeNow()
	selector := bson.M{"id": id, "status": lead.StatusInAuction}
	matched, err := im.q.Update(c, domain.TableLeads, selector, bson.M{"$set": set}, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"id":     id,
			"status": set["status"],
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (im *leadRepoImpl) MarkSold(c ctx.Ctx, id string, patch lead.SoldPatch) error {
	return im.transition(c, id, bson.M{
		"status":        lead.StatusSold,
		"winningBid":    patch.WinningBid,
		"winnerBuyerId": patch.WinnerBuyerId,
		"soldAt":        patch.SoldAt,
	})
}

func (im *leadRepoImpl) MarkUnsold(c ctx.Ctx, id string, patch lead.UnsoldPatch) error {
	return im.transition(c, id, bson.M{
		"status":          lead.StatusUnsold,
		"buyNowPrice":     patch.BuyNowPrice,
		"buyNowExpiresAt": patch.BuyNowExpiresAt,
	})
}
