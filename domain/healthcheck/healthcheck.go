package healthcheck

import (
	"github.com/x-xyz/leadauction/base/ctx"
)

const StatusOK = "ok"

// Report holds one status per dependency, StatusOK or the ping error
type Report struct {
	Mongo string `json:"mongo"`
	Redis string `json:"redis"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check pings every dependency and returns the first error
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo pings the stores the resolver cannot run without
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
}
