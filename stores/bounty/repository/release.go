package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/bounty"
	"github.com/x-xyz/leadauction/service/query"
)

type releaseRepoImpl struct {
	q query.Mongo
}

func NewReleaseRepo(q query.Mongo) bounty.ReleaseRepo {
	return &releaseRepoImpl{q}
}

func (im *releaseRepoImpl) Create(c ctx.Ctx, r *bounty.Release) error {
	if err := im.q.Insert(c, domain.TableBountyReleases, r); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"poolId": r.PoolId,
			"leadId": r.LeadId,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *releaseRepoImpl) FindOne(c ctx.Ctx, poolId, leadId string) (*bounty.Release, error) {
	res := &bounty.Release{}
	qry := bson.M{"poolId": poolId, "leadId": leadId}
	if err := im.q.FindOne(c, domain.TableBountyReleases, qry, res); err == query.ErrNotFound {
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

func (im *releaseRepoImpl) UpdateStatus(c ctx.Ctx, poolId, leadId string, status bounty.ReleaseStatus, txRef *string) error {
	set := bson.M{"status": status, "updatedAt": timeNow()}
	if txRef != nil {
		set["txRef"] = *txRef
	}
	if err := im.q.Patch(c, domain.TableBountyReleases, bson.M{"poolId": poolId, "leadId": leadId}, set); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"poolId": poolId,
			"leadId": leadId,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
