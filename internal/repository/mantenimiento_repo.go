package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santosdevelop/Manto/internal/model"
)

// limiteMantenimientos caps per-galpón history reads.
const limiteMantenimientos = 500

// MantenimientoRepository defines data access for maintenance events.
type MantenimientoRepository interface {
	Crear(ctx context.Context, m *model.Mantenimiento) error
	ListarPorGalpon(ctx context.Context, galponID uuid.UUID) ([]model.Mantenimiento, error)
	ListarTodos(ctx context.Context) ([]model.Mantenimiento, error)
}

type mantenimientoRepo struct{ col *mongo.Collection }

func NewMantenimientoRepository(db *mongo.Database) MantenimientoRepository {
	return &mantenimientoRepo{col: db.Collection("mantenimientos")}
}

func (r *mantenimientoRepo) Crear(ctx context.Context, m *model.Mantenimiento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, m)
	return err
}

func (r *mantenimientoRepo) ListarPorGalpon(ctx context.Context, galponID uuid.UUID) ([]model.Mantenimiento, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limiteMantenimientos)
	cursor, err := r.col.Find(ctx, bson.M{"galponId": galponID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registros []model.Mantenimiento
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, err
	}
	return registros, nil
}

func (r *mantenimientoRepo) ListarTodos(ctx context.Context) ([]model.Mantenimiento, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registros []model.Mantenimiento
	if err := cursor.All(ctx, &registros); err != nil {
		return nil, err
	}
	return registros, nil
}
