package xormimplement

import (
	"fmt"
	"sync"

	"reserva_bot/config"
	"reserva_bot/entity"
	"reserva_bot/repository"
	"reserva_bot/repository/factory"

	"github.com/sirupsen/logrus"
	"xorm.io/xorm"

	_ "github.com/lib/pq"
)

var once sync.Once
var instance *Factory

type Factory struct {
	engine *xorm.Engine
}

// GetRepositoryFactoryInstance returns the Postgres-backed factory singleton
func GetRepositoryFactoryInstance() factory.Factory {
	once.Do(func() {
		instance = &Factory{
			engine: openDB(
				config.GetInstance().GetString(config.BaseDbXormType),
				config.GetInstance().GetString(config.BaseDbXormHost),
				config.GetInstance().GetString(config.BaseDbXormPort),
				config.GetInstance().GetString(config.BaseDbXormUsername),
				config.GetInstance().GetString(config.BaseDbXormName),
				config.GetInstance().GetString(config.BaseDbXormPassword),
				config.GetInstance().GetBool(config.BaseDbXormShowsql),
			),
		}

		if err := instance.engine.Sync(new(entity.Reservation)); err != nil {
			logrus.Errorf("Failed to sync reservation table: %v", err)
			panic(err)
		}
	})
	return instance
}

func openDB(dbType string, host string, port string, userName string, name string, password string, showSql bool) *xorm.Engine {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		userName,
		password,
		name,
		port)
	engine, err := xorm.NewEngine(dbType, dsn)
	if err != nil {
		logrus.Errorf("Database connection failed err: %v. Database name: %s", err, name)
		panic(err)
	}
	engine.ShowSQL(showSql)
	return engine
}

// NewReservationRepository creates the reservation store on the shared engine
func (f *Factory) NewReservationRepository() (repository.ReservationRepository, error) {
	return NewReservationRepository(f.engine), nil
}
