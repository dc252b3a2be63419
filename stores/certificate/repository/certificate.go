package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/domain"
	"github.com/x-xyz/leadauction/domain/certificate"
	"github.com/x-xyz/leadauction/service/query"
)

type mintRepoImpl struct {
	q query.Mongo
}

func NewMintRepo(q query.Mongo) certificate.Repo {
	return &mintRepoImpl{q}
}

func EnsureIndexes(c ctx.Ctx, q query.Mongo) error {
	return q.CreateIndexes(c, domain.TableMintRequests, []query.Index{
		{Name: "leadId_unique", Keys: bson.D{{Key: "leadId", Value: 1}}, Unique: true},
		{Name: "status_updatedAt", Keys: bson.D{{Key: "status", Value: 1}, {Key: "updatedAt", Value: 1}}},
	})
}

func (im *mintRepoImpl) Create(c ctx.Ctx, r *certificate.MintRequest) error {
	if err := im.q.Insert(c, domain.TableMintRequests, r); err == query.ErrDuplicateKey {
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

func (im *mintRepoImpl) FindOne(c ctx.Ctx, leadId string) (*certificate.MintRequest, error) {
	res := &certificate.MintRequest{}
	if err := im.q.FindOne(c, domain.TableMintRequests, bson.M{"leadId": leadId}, res); err == query.ErrNotFound {
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
