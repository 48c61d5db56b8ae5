package importer

import "github.com/nailnav/nailnav/internal/models"

func modelsCity(id uint, name string, stateID uint) models.City {
	return models.City{ID: id, Name: name, StateID: stateID}
}
