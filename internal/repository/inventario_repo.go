package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santosdevelop/Manto/internal/model"
)

// InventarioFilter narrows listings; empty fields mean no filter.
type InventarioFilter struct {
	Categoria string
	Estado    string
	Busqueda  string
}

// InventarioRepository defines data access for inventory items. Services
// depend on this interface, not on the concrete mongo implementation,
// enabling clean unit testing via stubs.
type InventarioRepository interface {
	Crear(ctx context.Context, item *model.Inventario) error
	CrearLote(ctx context.Context, items []model.Inventario) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Inventario, error)
	Listar(ctx context.Context, filter InventarioFilter) ([]model.Inventario, error)
	ListarPorAsignado(ctx context.Context, usuarioID uuid.UUID) ([]model.Inventario, error)
	Actualizar(ctx context.Context, item *model.Inventario) error
	Eliminar(ctx context.Context, id uuid.UUID) error
	ExisteKardex(ctx context.Context, kardex string, excepto uuid.UUID) (bool, error)
	ContarPorCategoria(ctx context.Context, categoria string) (int64, error)
}

type inventarioRepo struct{ col *mongo.Collection }

func NewInventarioRepository(db *mongo.Database) InventarioRepository {
	return &inventarioRepo{col: db.Collection("inventarios")}
}

func (r *inventarioRepo) Crear(ctx context.Context, item *model.Inventario) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, item)
	return err
}

// CrearLote inserts one chunk atomically: a transaction wraps the ordered
// InsertMany so a mid-chunk failure leaves none of the chunk behind. Chunks
// are NOT jointly atomic, earlier ones stay committed if a later one fails.
func (r *inventarioRepo) CrearLote(ctx context.Context, items []model.Inventario) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}

	sess, err := r.col.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return r.col.InsertMany(sc, docs, options.InsertMany().SetOrdered(true))
	})
	return err
}

func (r *inventarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Inventario, error) {
	var item model.Inventario
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		return nil, normalizar(err)
	}
	return &item, nil
}

func (r *inventarioRepo) Listar(ctx context.Context, filter InventarioFilter) ([]model.Inventario, error) {
	q := bson.M{}
	if filter.Categoria != "" {
		q["categoria"] = filter.Categoria
	}
	if filter.Estado != "" {
		q["estado"] = filter.Estado
	}
	if filter.Busqueda != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Busqueda), Options: "i"}
		q["$or"] = bson.A{bson.M{"nombre": re}, bson.M{"kardex": re}}
	}

	cursor, err := r.col.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []model.Inventario
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventarioRepo) ListarPorAsignado(ctx context.Context, usuarioID uuid.UUID) ([]model.Inventario, error) {
	cursor, err := r.col.Find(ctx, bson.M{"asignadoA": usuarioID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []model.Inventario
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventarioRepo) Actualizar(ctx context.Context, item *model.Inventario) error {
	item.UpdatedAt = time.Now().UTC()
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *inventarioRepo) Eliminar(ctx context.Context, id uuid.UUID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

// ExisteKardex is the advisory uniqueness scan: read-then-write, no unique
// index behind it, so concurrent writers can still race in duplicates.
func (r *inventarioRepo) ExisteKardex(ctx context.Context, kardex string, excepto uuid.UUID) (bool, error) {
	q := bson.M{"kardex": kardex}
	if excepto != uuid.Nil {
		q["_id"] = bson.M{"$ne": excepto}
	}
	n, err := r.col.CountDocuments(ctx, q, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *inventarioRepo) ContarPorCategoria(ctx context.Context, categoria string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"categoria": categoria})
}
