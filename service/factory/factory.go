package factory

import (
	"sync"

	"reserva_bot/config"
	"reserva_bot/repository/csvimplement"
	"reserva_bot/repository/factory"
	"reserva_bot/repository/xormimplement"
	"reserva_bot/service/dialog"

	log "github.com/sirupsen/logrus"
)

const (
	StoreTypeCsv      = "csv"
	StoreTypePostgres = "postgres"
)

var instance *Factory
var once sync.Once

type Factory struct {
	repositoryFactory factory.Factory
}

// GetServiceFactory returns the service factory singleton. The backing
// store is chosen once from configuration.
func GetServiceFactory() *Factory {
	once.Do(func() {
		instance = &Factory{repositoryFactory: newRepositoryFactory()}
	})
	return instance
}

func newRepositoryFactory() factory.Factory {
	storeType := config.GetInstance().GetStringOrDefault(config.StoreType, StoreTypeCsv)
	switch storeType {
	case StoreTypePostgres:
		return xormimplement.GetRepositoryFactoryInstance()
	case StoreTypeCsv:
		return csvimplement.GetRepositoryFactoryInstance()
	default:
		log.Warnf("unknown store type %q, falling back to csv", storeType)
		return csvimplement.GetRepositoryFactoryInstance()
	}
}

// NewDialogService returns the dialogue engine
func (f *Factory) NewDialogService() *dialog.Service {
	return dialog.NewService(f.repositoryFactory)
}
