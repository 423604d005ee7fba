package cmd

import (
	"strconv"
	"time"

	"ownplate/internal/adapters/out/postgres"
	"ownplate/internal/adapters/out/postgres/restaurantrepo"
	"ownplate/internal/adapters/out/rediscache"
	"ownplate/internal/core/application/usecases/commands"
	"ownplate/internal/core/application/usecases/queries"
	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/ports"
	"ownplate/internal/jobs"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultStaleOrderThreshold = 15 * time.Minute

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	restaurants ports.RestaurantRepository
	localizer   ports.MessageLocalizer
	gateway     ports.NotificationGateway
	region      kernel.Region
	logger      *zap.SugaredLogger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	localizer ports.MessageLocalizer,
	gateway ports.NotificationGateway,
	logger *zap.SugaredLogger,
) (CompositionRoot, error) {
	multiple, err := strconv.Atoi(config.RegionMultiple)
	if err != nil {
		return CompositionRoot{}, err
	}

	region, err := kernel.NewRegion(multiple, config.RegionLocale)
	if err != nil {
		return CompositionRoot{}, err
	}

	var restaurants ports.RestaurantRepository = restaurantrepo.NewGormRestaurantRepository(gormDB)
	if redisClient != nil {
		restaurants = rediscache.NewCachedRestaurantRepository(restaurants, redisClient, rediscache.DefaultTTL)
	}

	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		restaurants: restaurants,
		localizer:   localizer,
		gateway:     gateway,
		region:      region,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.region)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(
		f,
		c.restaurants,
		c.localizer,
		c.gateway,
		c.region,
		c.config.SMSSenderName,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	threshold := defaultStaleOrderThreshold
	if c.config.StaleOrderThreshold != "" {
		if parsed, err := time.ParseDuration(c.config.StaleOrderThreshold); err == nil {
			threshold = parsed
		}
	}
	return jobs.NewJobManager(c.gormDB, threshold, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
