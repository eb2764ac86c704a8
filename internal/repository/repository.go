package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNoEncontrado normalizes the driver's not-found error so services never
// import mongo directly for error checks.
var ErrNoEncontrado = errors.New("documento no encontrado")

func normalizar(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoEncontrado
	}
	return err
}
