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

	"github.com/x-xyz/leadauction/base/ctx"
	"github.com/x-xyz/leadauction/base/database/mongoclient"
	"github.com/x-xyz/leadauction/base/database/redisclient"
	"github.com/x-xyz/leadauction/base/httpclient"
	"github.com/x-xyz/leadauction/base/log"
	"github.com/x-xyz/leadauction/base/metrics"
	bValidator "github.com/x-xyz/leadauction/base/validator"
	mmiddleware "github.com/x-xyz/leadauction/middleware"
	"github.com/x-xyz/leadauction/service/alert"
	"github.com/x-xyz/leadauction/service/broadcast"
	"github.com/x-xyz/leadauction/service/cache"
	"github.com/x-xyz/leadauction/service/cache/provider/compound"
	"github.com/x-xyz/leadauction/service/cache/provider/primitive"
	redis_provider "github.com/x-xyz/leadauction/service/cache/provider/redis"
	"github.com/x-xyz/leadauction/service/compliance"
	"github.com/x-xyz/leadauction/service/ledger"
	"github.com/x-xyz/leadauction/service/membership"
	"github.com/x-xyz/leadauction/service/query"
	"github.com/x-xyz/leadauction/service/redis"
	"github.com/x-xyz/leadauction/service/vrf"
	auction_usecase "github.com/x-xyz/leadauction/stores/auction/usecase"
	auth_delivery "github.com/x-xyz/leadauction/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/leadauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/leadauction/stores/auth/usecase"
	bid_repository "github.com/x-xyz/leadauction/stores/bid/repository"
	bid_usecase "github.com/x-xyz/leadauction/stores/bid/usecase"
	bounty_repository "github.com/x-xyz/leadauction/stores/bounty/repository"
	bounty_usecase "github.com/x-xyz/leadauction/stores/bounty/usecase"
	certificate_repository "github.com/x-xyz/leadauction/stores/certificate/repository"
	certificate_usecase "github.com/x-xyz/leadauction/stores/certificate/usecase"
	escrow_repository "github.com/x-xyz/leadauction/stores/escrow/repository"
	escrow_usecase "github.com/x-xyz/leadauction/stores/escrow/usecase"
	hc_delivery "github.com/x-xyz/leadauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/leadauction/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/leadauction/stores/healthcheck/usecase"
	incentive_usecase "github.com/x-xyz/leadauction/stores/incentive/usecase"
	lead_delivery "github.com/x-xyz/leadauction/stores/lead/delivery/http"
	lead_repository "github.com/x-xyz/leadauction/stores/lead/repository"
	settlement_repository "github.com/x-xyz/leadauction/stores/settlement/repository"
	tiebreak_usecase "github.com/x-xyz/leadauction/stores/tiebreak/usecase"
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
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("discord.botKey", "DISCORD_BOT_KEY")
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(bValidator.New())

	context := ctx.Background()
	defer log.Sync()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// local memory in front of redis
	cacheProvider := compound.NewCompound(
		primitive.NewPrimitive("api", viper.GetInt("cache.localSizeMB")),
		redis_provider.NewRedis(redisCache),
	)
	mmiddleware.SetupCache(cacheProvider)

	ledgerClient := ledger.NewClient(clientConfig("ledger"))
	vrfClient := vrf.NewClient(clientConfig("vrf"))
	membershipClient := membership.NewClient(clientConfig("membership"))
	complianceClient := compliance.NewClient(clientConfig("compliance"))

	notifier, err := alert.New(alert.Config{
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
	})
	if err != nil {
		context.WithField("err", err).Panic("alert.New failed")
	}
	broadcaster := broadcast.New(redisCache, viper.GetInt("resolver.workers"))
	defer broadcaster.Close()

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	leadRepo := lead_repository.NewLeadRepo(q)
	windowRepo := lead_repository.NewWindowRepo(q)
	bidRepo := bid_repository.NewBidRepo(q)
	lockRepo := escrow_repository.NewLockRepo(q)
	settlementRepo := settlement_repository.NewSettlementRepo(q)
	poolRepo := bounty_repository.NewPoolRepo(q, bValidator.New())
	releaseRepo := bounty_repository.NewReleaseRepo(q)
	mintRepo := certificate_repository.NewMintRepo(q)

	hc := hc_usecase.New(hcRepo)
	vault := escrow_usecase.NewVault(&escrow_usecase.VaultUseCaseCfg{
		LockRepo:      lockRepo,
		Ledger:        ledgerClient,
		ProtocolFee:   mustDecimal(context, "auction.protocolFee"),
		LedgerTimeout: viper.GetDuration("ledger.timeout"),
	})
	incentive := incentive_usecase.New(&incentive_usecase.IncentiveUseCaseCfg{
		Membership: membershipClient,
		MembershipCache: cache.New(cache.ServiceConfig{
			Ttl:   viper.GetDuration("membership.cacheTtl"),
			Pfx:   "membership",
			Cache: cacheProvider,
		}),
		Redis:            redisCache,
		MemberMultiplier: mustDecimal(context, "auction.memberMultiplier"),
		EarlyWindow:      viper.GetDuration("auction.memberEarlyWindow"),
		BidsPerMinute:    viper.GetInt("auction.bidsPerMinute"),
	})
	tieBreaker := tiebreak_usecase.New(&tiebreak_usecase.TieBreakUseCaseCfg{
		Vrf:           vrfClient,
		OracleTimeout: viper.GetDuration("vrf.timeout"),
		PollInterval:  viper.GetDuration("vrf.pollInterval"),
	})
	bounty := bounty_usecase.New(&bounty_usecase.BountyUseCaseCfg{
		PoolRepo:      poolRepo,
		ReleaseRepo:   releaseRepo,
		Ledger:        ledgerClient,
		LedgerTimeout: viper.GetDuration("ledger.timeout"),
	})
	resolver := auction_usecase.New(&auction_usecase.ResolverUseCaseCfg{
		Transactor:     q,
		LeadRepo:       leadRepo,
		WindowRepo:     windowRepo,
		BidRepo:        bidRepo,
		SettlementRepo: settlementRepo,
		Incentive:      incentive,
		Vault:          vault,
		TieBreaker:     tieBreaker,
		Bounty:         bounty,
		Minter:         certificate_usecase.New(mintRepo),
		Broadcaster:    broadcaster,
		Notifier:       notifier,
		StuckAfter:     viper.GetDuration("resolver.stuckAfter"),
		Workers:        viper.GetInt("resolver.workers"),
		BuyNowMarkup:   mustDecimal(context, "auction.buyNowMarkup"),
		BuyNowTTL:      viper.GetDuration("auction.buyNowTTL"),
	})
	bid := bid_usecase.New(&bid_usecase.BidUseCaseCfg{
		LeadRepo:   leadRepo,
		WindowRepo: windowRepo,
		BidRepo:    bidRepo,
		Incentive:  incentive,
		Vault:      vault,
		Compliance: complianceClient,
	})
	auth := auth_usecase.New(viper.GetString("jwt.secret"), viper.GetDuration("jwt.ttl"))

	authMiddleware := auth_middleware.New(auth, viper.GetStringSlice("admins"))

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, authMiddleware)
	lead_delivery.New(e, resolver, bid, windowRepo, authMiddleware, viper.GetDuration("cache.windowTtl"))

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
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

func mustDecimal(c ctx.Ctx, key string) decimal.Decimal {
	v := viper.GetString(key)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key}).Panic("invalid decimal config")
	}
	return d
}
