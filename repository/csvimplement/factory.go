package csvimplement

import (
	"sync"

	"reserva_bot/config"
	"reserva_bot/repository"
	"reserva_bot/repository/factory"

	"github.com/sirupsen/logrus"
)

const defaultCsvPath = "./reservas.csv"

var once sync.Once
var instance *Factory

type Factory struct {
	path string
}

// GetRepositoryFactoryInstance returns the CSV-backed factory singleton
func GetRepositoryFactoryInstance() factory.Factory {
	once.Do(func() {
		path := config.GetInstance().GetStringOrDefault(config.StoreCsvPath, defaultCsvPath)
		logrus.Infof("reservation store: csv at %s", path)
		instance = &Factory{path: path}
	})
	return instance
}

func (f *Factory) NewReservationRepository() (repository.ReservationRepository, error) {
	return NewReservationRepository(f.path), nil
}
