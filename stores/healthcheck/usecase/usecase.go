package usecase

import (
	"github.com/x-xyz/leadauction/base/ctx"
	hcdomain "github.com/x-xyz/leadauction/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func status(err error) string {
	if err != nil {
		return err.Error()
	}
	return hcdomain.StatusOK
}

func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	dbErr := im.repo.PingDB(context)
	cacheErr := im.repo.PingCache(context)
	report := hcdomain.Report{
		Mongo: status(dbErr),
		Redis: status(cacheErr),
	}
	if dbErr != nil {
		return report, dbErr
	}
	return report, cacheErr
}
