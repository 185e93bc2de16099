package main

import (
	"nearbite/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LocationModel{},
		model.GeofenceModel{},
		model.AutomationModel{},
		model.EventModel{},
		model.VisitorModel{},
		model.CooldownStateModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
