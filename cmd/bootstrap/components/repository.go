package components

import (
	"bookmarket/internal/infra/readstore"
	repo_impl "bookmarket/internal/infra/repository"
	"bookmarket/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(usecase.ServiceReader)),
		),
		fx.Annotate(
			readstore.NewBusinessScheduleReadStore,
			fx.As(new(usecase.BusinessScheduleReader)),
		),
		fx.Annotate(
			readstore.NewStaffAgendaReadStore,
			fx.As(new(usecase.StaffAgendaReader)),
			fx.As(new(usecase.StaffDirectory)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewScheduleRepository,
			fx.As(new(usecase.ScheduleRepository)),
		),
	),
)
