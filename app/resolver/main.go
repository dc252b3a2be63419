package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/database/mongoclient"
	"github.com/x-xyz/leadauction/base/database/redisclient"
	"github.com/x-xyz/leadauction/base/goroutine"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	bValidator "github.com/x-xyz/leadauction/base/validator"
	"github.com/x-xyz/leadauction/domain/auction"
	hcdomain "github.com/x-xyz/leadauction/domain/healthcheck"
	mmiddleware "github.com/x-xyz/leadauction/middleware"
	"github.com/x-xyz/leadauction/service/alert"
	"github.com/x-xyz/leadauction/service/broadcast"
	"github.com/x-xyz/leadauction/service/cache"
	"github.com/x-xyz/leadauction/service/cache/provider/compound"
	"github.com/x-xyz/leadauction/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/leadauction/service/cache/provider/redis"
	"github.com/x-xyz/leadauction/service/ledger"
	"github.com/x-xyz/leadauction/service/membership"
	"github.com/x-xyz/leadauction/service/query"
	"github.com/x-xyz/leadauction/service/redis"
	"github.com/x-xyz/leadauction/service/vrf"
	auctionUseCase "github.com/x-xyz/leadauction/stores/auction/usecase"
	bidRepo "github.com/x-xyz/leadauction/stores/bid/repository"
	bountyRepo "github.com/x-xyz/leadauction/stores/bounty/repository"
	bountyUseCase "github.com/x-xyz/leadauction/stores/bounty/usecase"
	certRepo "github.com/x-xyz/leadauction/stores/certificate/repository"
	certUseCase "github.com/x-xyz/leadauction/stores/certificate/usecase"
	escrowRepo "github.com/x-xyz/leadauction/stores/escrow/repository"
	escrowUseCase "github.com/x-xyz/leadauction/stores/escrow/usecase"
	hcDelivery "github.com/x-xyz/leadauction/stores/healthcheck/delivery/http"
	hcRepo "github.com/x-xyz/leadauction/stores/healthcheck/repository"
	hcUseCase "github.com/x-xyz/leadauction/stores/healthcheck/usecase"
	incentiveUseCase "github.com/x-xyz/leadauction/stores/incentive/usecase"
	leadRepo "github.com/x-xyz/leadauction/stores/lead/repository"
	settlementRepo "github.com/x-xyz/leadauction/stores/settlement/repository"
	tiebreakUseCase "github.com/x-xyz/leadauction/stores/tiebreak/usecase"
)

var configPath = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config")

func init() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configPath)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}

	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("redis_cache.uri", "REDIS_URI")
	viper.BindEnv("resolver.interval", "RESOLVER_INTERVAL")
}

func main() {
	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	defer log.Sync()

	interval := viper.GetDuration("resolver.interval")
	if interval <= 0 {
		interval = 30 * time.Second
	}
	retryInterval := viper.GetDuration("resolver.retryInterval")
	if retryInterval <= 0 {
		retryInterval = interval
	}

	ctx.WithFields(log.Fields{
		"interval":      interval,
		"retryInterval": retryInterval,
		"stuckAfter":    viper.GetDuration("resolver.stuckAfter"),
		"workers":       viper.GetInt("resolver.workers"),
	}).Info("config")

	ctx.Info("init mongo")
	mongoClient, q := initMongo()
	ctx.Info("init redis cache")
	redisCache := initRedis()

	ensureIndexes(ctx, q)

	// repos
	leads := leadRepo.NewLeadRepo(q)
	windows := leadRepo.NewWindowRepo(q)
	bids := bidRepo.NewBidRepo(q)
	locks := escrowRepo.NewLockRepo(q)
	settlements := settlementRepo.NewSettlementRepo(q)
	pools := bountyRepo.NewPoolRepo(q, bValidator.New())
	releases := bountyRepo.NewReleaseRepo(q)
	mints := certRepo.NewMintRepo(q)

	// external collaborators
	ledgerClient := ledger.NewClient(clientConfig("ledger"))
	vrfClient := vrf.NewClient(clientConfig("vrf"))
	membershipClient := membership.NewClient(clientConfig("membership"))

	notifier, err := alert.New(alert.Config{
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		ctx.WithField("err", err).Panic("alert.New failed")
	}
	broadcaster := broadcast.New(redisCache, viper.GetInt("resolver.workers"))
	defer broadcaster.Close()

	// usecases
	vault := escrowUseCase.NewVault(&escrowUseCase.VaultUseCaseCfg{
		LockRepo:      locks,
		Ledger:        ledgerClient,
		ProtocolFee:   mustDecimal(ctx, "auction.protocolFee"),
		LedgerTimeout: viper.GetDuration("ledger.timeout"),
	})
	incentive := incentiveUseCase.New(&incentiveUseCase.IncentiveUseCaseCfg{
		Membership: membershipClient,
		MembershipCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("membership.cacheTtl"),
			Pfx:   "membership",
			Cache: compound.NewCompound(primitive.NewPrimitive("membership", 16), redisProvider.NewRedis(redisCache)),
		}),
		Redis:            redisCache,
		MemberMultiplier: mustDecimal(ctx, "auction.memberMultiplier"),
		EarlyWindow:      viper.GetDuration("auction.memberEarlyWindow"),
		BidsPerMinute:    viper.GetInt("auction.bidsPerMinute"),
	})
	tieBreaker := tiebreakUseCase.New(&tiebreakUseCase.TieBreakUseCaseCfg{
		Vrf:           vrfClient,
		OracleTimeout: viper.GetDuration("vrf.timeout"),
		PollInterval:  viper.GetDuration("vrf.pollInterval"),
	})
	bountyUC := bountyUseCase.New(&bountyUseCase.BountyUseCaseCfg{
		PoolRepo:      pools,
		ReleaseRepo:   releases,
		Ledger:        ledgerClient,
		LedgerTimeout: viper.GetDuration("ledger.timeout"),
	})
	resolver := auctionUseCase.New(&auctionUseCase.ResolverUseCaseCfg{
		Transactor:     q,
		LeadRepo:       leads,
		WindowRepo:     windows,
		BidRepo:        bids,
		SettlementRepo: settlements,
		Incentive:      incentive,
		Vault:          vault,
		TieBreaker:     tieBreaker,
		Bounty:         bountyUC,
		Minter:         certUseCase.New(mints),
		Broadcaster:    broadcaster,
		Notifier:       notifier,
		StuckAfter:     viper.GetDuration("resolver.stuckAfter"),
		Workers:        viper.GetInt("resolver.workers"),
		BuyNowMarkup:   mustDecimal(ctx, "auction.buyNowMarkup"),
		BuyNowTTL:      viper.GetDuration("auction.buyNowTTL"),
	})

	e := startEchoServer(hcUseCase.New(hcRepo.New(mongoClient, redisCache)))

	// a restart after downtime picks up every auction that expired meanwhile
	sweep(ctx, resolver)

	goroutine.Loop(ctx.Done(), 5*time.Second, func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sweep(ctx, resolver)
			}
		}
	})
	goroutine.Loop(ctx.Done(), 5*time.Second, func() {
		ticker := time.NewTicker(retryInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := resolver.RetryPending(ctx); err != nil {
					ctx.WithField("err", err).Error("resolver.RetryPending failed")
				}
			}
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	ctx.WithField("signal", sig).Info("received signal")
	cancel()

	shutdownCtx, shutdownCancel := bCtx.WithTimeout(bCtx.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ctx.WithField("err", err).Error("shutting down the server")
	} else {
		ctx.Info("shutdown server successfully")
	}
}

func sweep(ctx bCtx.Ctx, resolver auction.Resolver) {
	res, err := resolver.Sweep(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("resolver.Sweep failed")
		return
	}
	if res.Candidates == 0 {
		return
	}
	ctx.WithFields(log.Fields{
		"candidates": res.Candidates,
		"sold":       res.Sold,
		"unsold":     res.Unsold,
		"noOp":       res.NoOp,
		"skipped":    res.Skipped,
		"failed":     res.Failed,
	}).Info("sweep done")
}

// startEchoServer serves /health so the orchestrator can probe the worker
func startEchoServer(hc hcdomain.HealthCheckUsecase) *echo.Echo {
	context := bCtx.Background()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())

	hcDelivery.New(e, hc)

	address := viper.GetString("server.address")
	context.WithField("address", address).Info("starting server")
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			context.WithField("err", err).Error("shutting down the server")
		}
	}()
	return e
}

func initMongo() (*mongoclient.Client, query.Mongo) {
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	return mongoClient, query.New(mongoClient, checkIndex)
}

func initRedis() redis.Service {
	name := viper.GetString("redis_cache.name")
	pool := redisclient.MustConnectRedis(
		viper.GetString("redis_cache.uri"),
		viper.GetString("redis_cache.password"),
		redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis_cache.poolMultiplier"),
			Retry:          true,
		},
	)
	return redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
}

func ensureIndexes(ctx bCtx.Ctx, q query.Mongo) {
	for name, ensure := range map[string]func(bCtx.Ctx, query.Mongo) error{
		"lead":        leadRepo.EnsureIndexes,
		"bid":         bidRepo.EnsureIndexes,
		"escrow":      escrowRepo.EnsureIndexes,
		"settlement":  settlementRepo.EnsureIndexes,
		"bounty":      bountyRepo.EnsureIndexes,
		"certificate": certRepo.EnsureIndexes,
	} {
		if err := ensure(ctx, q); err != nil {
			ctx.WithFields(log.Fields{"err": err, "repo": name}).Panic("EnsureIndexes failed")
		}
	}
}

func clientConfig(key string) httpclient.Config {
	return httpclient.Config{
		BaseUrl:           viper.GetString(key + ".url"),
		Timeout:           viper.GetDuration(key + ".timeout"),
		ApiKey:            viper.GetString(key + ".apiKey"),
		RequestsPerSecond: viper.GetFloat64(key + ".requestsPerSecond"),
	}
}

func mustDecimal(ctx bCtx.Ctx, key string) decimal.Decimal {
	v := viper.GetString(key)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "key": key}).Panic("invalid decimal config")
	}
	return d
}
