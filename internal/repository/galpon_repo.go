package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santosdevelop/Manto/internal/model"
)

// GalponRepository defines data access for facility units.
type GalponRepository interface {
	Crear(ctx context.Context, g *model.Galpon) error
	Listar(ctx context.Context) ([]model.Galpon, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Galpon, error)
	Actualizar(ctx context.Context, g *model.Galpon) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	MarcarMantenimiento(ctx context.Context, id uuid.UUID, fecha string) error
}

type galponRepo struct{ col *mongo.Collection }

func NewGalponRepository(db *mongo.Database) GalponRepository {
	return &galponRepo{col: db.Collection("galpones")}
}

func (r *galponRepo) Crear(ctx context.Context, g *model.Galpon) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, g)
	return err
}

func (r *galponRepo) Listar(ctx context.Context) ([]model.Galpon, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var galpones []model.Galpon
	if err := cursor.All(ctx, &galpones); err != nil {
		return nil, err
	}
	return galpones, nil
}

func (r *galponRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Galpon, error) {
	var g model.Galpon
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return nil, normalizar(err)
	}
	return &g, nil
}

func (r *galponRepo) Actualizar(ctx context.Context, g *model.Galpon) error {
	g.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *galponRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// MarcarMantenimiento stamps the last-maintenance date shown on listings.
func (r *galponRepo) MarcarMantenimiento(ctx context.Context, id uuid.UUID, fecha string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"ultimoMantenimiento": fecha,
		"updatedAt":           time.Now().UTC(),
	}})
	return err
}
