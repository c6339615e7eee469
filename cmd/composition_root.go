package cmd

import (
	"context"
	"strconv"
	"time"

	httpin "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/geo"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/adapters/out/postgres/clientrepo"
	"shipping/internal/adapters/out/postgres/refdata"
	redisout "shipping/internal/adapters/out/redis"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/ports"
	"shipping/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Default geocoder position used until a real geocoding provider is wired
// in. Points at central Moscow.
const (
	defaultLatitude  = 55.7558
	defaultLongitude = 37.6173
)

type CompositionRoot struct {
	logger     *zap.SugaredLogger
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	clients    *clientrepo.GormClientRepository
	cities     *refdata.CachedCityRepository
	countries  *refdata.CachedCountryRepository
	currencies *refdata.CachedCurrencyRepository

	draftStore *redisout.DraftStore
	geocoder   *geo.StaticGeocoder
}

func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	logger *zap.SugaredLogger,
) (*CompositionRoot, error) {
	cities, err := refdata.NewCachedCityRepository(ctx, gormDB)
	if err != nil {
		return nil, err
	}
	countries, err := refdata.NewCachedCountryRepository(ctx, gormDB)
	if err != nil {
		return nil, err
	}
	currencies, err := refdata.NewCachedCurrencyRepository(ctx, gormDB)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		logger:     logger,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clients:    clientrepo.NewGormClientRepository(gormDB),
		cities:     cities,
		countries:  countries,
		currencies: currencies,
		draftStore: redisout.NewDraftStore(redisClient, draftTTL(config)),
		geocoder:   geo.NewStaticGeocoder(defaultLatitude, defaultLongitude),
	}, nil
}

func draftTTL(config Config) time.Duration {
	days, err := strconv.Atoi(config.DraftTTLDays)
	if err != nil || days <= 0 {
		return 0
	}
	return time.Duration(days) * 24 * time.Hour
}

// ClientRepository returns the repository backing bearer-token auth.
func (c *CompositionRoot) ClientRepository() ports.ClientRepository {
	return c.clients
}

func (c *CompositionRoot) CreateRegisterTransportationCommandHandler() commands.RegisterTransportationCommandHandler {
	var f commands.TransportationUoWFactory = FuncTransportationUoWFactory(func() commands.TransportationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTransportationCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTransportationCommandHandler() commands.UpdateTransportationCommandHandler {
	var f commands.TransportationUoWFactory = FuncTransportationUoWFactory(func() commands.TransportationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTransportationCommandHandler(f)
}

func (c *CompositionRoot) CreateAddAddressCommandHandler() commands.AddAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddAddressCommandHandler(f, c.cities, c.countries, c.geocoder)
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	var f commands.AddressUoWFactory = FuncAddressUoWFactory(func() commands.AddressUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAddressCommandHandler(f, c.cities, c.countries, c.geocoder)
}

func (c *CompositionRoot) CreateAddCargoCommandHandler() commands.AddCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCargoCommandHandler(f, c.currencies)
}

func (c *CompositionRoot) CreateUpdateCargoCommandHandler() commands.UpdateCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCargoCommandHandler(f, c.currencies)
}

func (c *CompositionRoot) CreateDeleteCargoCommandHandler() commands.DeleteCargoCommandHandler {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveDraftCommandHandler() commands.SaveDraftCommandHandler {
	return commands.NewSaveDraftCommandHandler(c.draftStore)
}

func (c *CompositionRoot) CreateGetShipperTransportationQueryHandler() queries.GetShipperTransportationQueryHandler {
	return queries.NewGetShipperTransportationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipperTransportationsQueryHandler() queries.GetShipperTransportationsQueryHandler {
	return queries.NewGetShipperTransportationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftQueryHandler() queries.GetDraftQueryHandler {
	return queries.NewGetDraftQueryHandler(c.draftStore)
}

func (c *CompositionRoot) CreateListDraftsQueryHandler() queries.ListDraftsQueryHandler {
	return queries.NewListDraftsQueryHandler(c.draftStore)
}

func (c *CompositionRoot) CreateGetCountriesQueryHandler() queries.GetCountriesQueryHandler {
	return queries.NewGetCountriesQueryHandler(c.countries)
}

func (c *CompositionRoot) CreateGetCitiesQueryHandler() queries.GetCitiesQueryHandler {
	return queries.NewGetCitiesQueryHandler(c.cities)
}

func (c *CompositionRoot) CreateGetCurrenciesQueryHandler() queries.GetCurrenciesQueryHandler {
	return queries.NewGetCurrenciesQueryHandler(c.currencies)
}

// CreateServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.logger,
		c.CreateRegisterTransportationCommandHandler(),
		c.CreateUpdateTransportationCommandHandler(),
		c.CreateAddAddressCommandHandler(),
		c.CreateUpdateAddressCommandHandler(),
		c.CreateAddCargoCommandHandler(),
		c.CreateUpdateCargoCommandHandler(),
		c.CreateDeleteCargoCommandHandler(),
		c.CreateSaveDraftCommandHandler(),
		c.CreateGetShipperTransportationQueryHandler(),
		c.CreateGetShipperTransportationsQueryHandler(),
		c.CreateGetDraftQueryHandler(),
		c.CreateListDraftsQueryHandler(),
		c.CreateGetCountriesQueryHandler(),
		c.CreateGetCitiesQueryHandler(),
		c.CreateGetCurrenciesQueryHandler(),
	)
}

// CreateJobManager wires the reference-data caches into the refresh job.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger, c.countries, c.cities, c.currencies)
}

type FuncTransportationUoWFactory func() commands.TransportationUoW

func (f FuncTransportationUoWFactory) Create() commands.TransportationUoW {
	return f()
}

type FuncAddressUoWFactory func() commands.AddressUoW

func (f FuncAddressUoWFactory) Create() commands.AddressUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}
