package cmd

import (
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReviewCommandHandler() commands.CreateReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateReviewCommandHandler() commands.UpdateReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateRecomputeStatsCommandHandler() commands.RecomputeStatsCommandHandler {
	var f commands.StatsUoWFactory = FuncStatsUoWFactory(func() commands.StatsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecomputeStatsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBusinessStatsQueryHandler() queries.GetBusinessStatsQueryHandler {
	return queries.NewGetBusinessStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPlatformStatsQueryHandler() queries.GetPlatformStatsQueryHandler {
	return queries.NewGetPlatformStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncStatsUoWFactory func() commands.StatsUoW

func (f FuncStatsUoWFactory) Create() commands.StatsUoW {
	return f()
}
