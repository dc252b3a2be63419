package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/lead"
	"github.com/x-xyz/leadauction/service/query"
)

type windowRepoImpl struct {
	q query.Mongo
}

func NewWindowRepo(q query.Mongo) lead.WindowRepo {
	return &windowRepoImpl{q}
}

func (im *windowRepoImpl) FindOne(c ctx.Ctx, leadId string) (*lead.AuctionWindow, error) {
	res := &lead.AuctionWindow{}
	if err := im.q.FindOne(c, domain.TableAuctionWindows, bson.M{"leadId": leadId}, res); err == query.ErrNotFound {
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

func (im *windowRepoImpl) FindStuck(c ctx.Ctx, staleBefore time.Time) ([]lead.AuctionWindow, error) {
	query := bson.M{
		"phase": lead.PhaseBidding,
		"$or": bson.A{
			bson.M{"biddingDeadline": nil},
			bson.M{"biddingDeadline": bson.M{"$lt": staleBefore}},
		},
	}
	res := []lead.AuctionWindow{}
	if err := im.q.Search(c, domain.TableAuctionWindows, 0, 0, "", query, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *windowRepoImpl) Close(c ctx.Ctx, leadId string, phase lead.Phase) error {
	selector := bson.M{"leadId": leadId, "phase": lead.PhaseBidding}
	update := bson.M{"$set": bson.M{"phase": phase, "updatedAt": timeNow()}}
	matched, err := im.q.Update(c, domain.TableAuctionWindows, selector, update, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"leadId": leadId,
			"phase":  phase,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrStatusConflict
	}
	return nil
}

func (im *windowRepoImpl) RecordBid(c ctx.Ctx, leadId string, amount decimal.Decimal) error {
	selector := bson.M{"leadId": leadId, "phase": lead.PhaseBidding}
	update := bson.M{
		"$inc": bson.M{"bidCount": 1},
		"$max": bson.M{"highestBid": amount},
		"$set": bson.M{"updatedAt": timeNow()},
	}
	matched, err := im.q.Update(c, domain.TableAuctionWindows, selector, update, false)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"leadId": leadId,
		}).Error("q.Update failed")
		return err
	}
	if matched == 0 {
		return domain.ErrNotFound
	}
	return nil
}
