package components

import (
	"staybook/internal/infra/media"
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase"
	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewResidenceReadStore,
			fx.As(new(queries.ResidenceReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewResidenceRepository,
			fx.As(new(commands.ResidenceRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			NewMediaStore,
			fx.As(new(commands.MediaStore)),
		),
	),
)

func NewMediaStore(cfg config.Config) *media.LocalStore {
	return media.NewLocalStore(cfg.Media)
}
