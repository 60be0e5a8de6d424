package cmd

import (
	"time"

	"batching/internal/adapters/out/postgres"
	"batching/internal/adapters/out/postgres/directoryrepo"
	"batching/internal/adapters/out/routing"
	"batching/internal/core/application/usecases/commands"
	"batching/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

const routeOptimizerTimeout = 30 * time.Second

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	optimizer  *routing.OptimizerClient
	directory  *directoryrepo.GormLocationDirectory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		optimizer:  routing.NewOptimizerClient(config.RouteOptimizerURL, routeOptimizerTimeout),
		directory:  directoryrepo.NewGormLocationDirectory(gormDB),
	}
}

func (c *CompositionRoot) CreatePreBatchUoWFactory() commands.PreBatchUoWFactory {
	return FuncPreBatchUoWFactory(func() commands.PreBatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveDraftCommandHandler() commands.SaveDraftCommandHandler {
	return commands.NewSaveDraftCommandHandler(c.CreatePreBatchUoWFactory())
}

func (c *CompositionRoot) CreateConfirmBatchCommandHandler() commands.ConfirmBatchCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.optimizer, c.directory)
}

func (c *CompositionRoot) CreateExpireDraftsCommandHandler() commands.ExpireDraftsCommandHandler {
	return commands.NewExpireDraftsCommandHandler(c.CreatePreBatchUoWFactory())
}

func (c *CompositionRoot) CreateGetFacilitiesQueryHandler() queries.GetFacilitiesQueryHandler {
	return queries.NewGetFacilitiesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVehiclesQueryHandler() queries.GetVehiclesQueryHandler {
	return queries.NewGetVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.gormDB)
}

type FuncPreBatchUoWFactory func() commands.PreBatchUoW

func (f FuncPreBatchUoWFactory) Create() commands.PreBatchUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
