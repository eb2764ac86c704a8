package repository

import (
	"context"
	"regexp"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santosdevelop/Manto/internal/model"
)

// CategoriaRepository defines data access for inventory categories.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type categoriaRepo struct{ col *mongo.Collection }

func NewCategoriaRepository(db *mongo.Database) CategoriaRepository {
	return &categoriaRepo{col: db.Collection("categorias")}
}

func (r *categoriaRepo) Crear(ctx context.Context, c *model.Categoria) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *categoriaRepo) Listar(ctx context.Context) ([]model.Categoria, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cats []model.Categoria
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *categoriaRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, normalizar(err)
	}
	return &c, nil
}

// ObtenerPorNombre matches case-insensitively: "Herramientas" and
// "herramientas" are the same category.
func (r *categoriaRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	re := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(nombre) + "$", Options: "i"}
	var c model.Categoria
	if err := r.col.FindOne(ctx, bson.M{"nombre": re}).Decode(&c); err != nil {
		return nil, normalizar(err)
	}
	return &c, nil
}

func (r *categoriaRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}
