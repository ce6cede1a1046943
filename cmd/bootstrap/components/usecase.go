package components

import (
	"bookmarket/internal/pkg/clock"
	"bookmarket/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewScheduleUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
