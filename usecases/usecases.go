package usecases

import (
	"github.com/heatsight/heatsight-backend/infra"
	"github.com/heatsight/heatsight-backend/models"
	"github.com/heatsight/heatsight-backend/repositories"
	"github.com/heatsight/heatsight-backend/usecases/executor_factory"
	"github.com/heatsight/heatsight-backend/usecases/ingestion"
)

type Usecases struct {
	Repositories    repositories.Repositories
	ingestionConfig infra.IngestionConfig
}

type Option func(*options)

type options struct {
	ingestionConfig infra.IngestionConfig
}

func WithIngestionConfig(config infra.IngestionConfig) Option {
	return func(o *options) {
		o.ingestionConfig = config
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, apply := range opts {
		apply(o)
	}

	return Usecases{
		Repositories:    repositories,
		ingestionConfig: o.ingestionConfig,
	}
}

func (usecases Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

// NewIngestionCoordinator wires one handler per file type onto a fresh
// coordinator.
func (usecases Usecases) NewIngestionCoordinator() *ingestion.Coordinator {
	executorFactory := usecases.NewExecutorFactory()
	warehouse := usecases.Repositories.WarehouseRepository

	handlers := map[models.FileType]ingestion.FileHandler{
		models.FileTypeRetrospect:     ingestion.NewRetrospectHandler(executorFactory, warehouse),
		models.FileTypeDemandControl:  ingestion.NewDemandControlHandler(executorFactory, warehouse),
		models.FileTypeOverview:       ingestion.NewOverviewHandler(executorFactory, warehouse),
		models.FileTypeBuildingImpact: ingestion.NewBuildingImpactHandler(executorFactory, warehouse),
	}

	return ingestion.NewCoordinator(usecases.ingestionConfig, handlers)
}

func (usecases Usecases) NewDirectoryWatcher() *ingestion.DirectoryWatcher {
	return ingestion.NewDirectoryWatcher(usecases.NewIngestionCoordinator(), usecases.ingestionConfig)
}
