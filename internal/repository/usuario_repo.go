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

// UsuarioRepository defines data access for console users.
type UsuarioRepository interface {
	Crear(ctx context.Context, u *model.Usuario) error
	Listar(ctx context.Context) ([]model.Usuario, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error)
	ActualizarActivo(ctx context.Context, id uuid.UUID, activo bool) error
	ActualizarRol(ctx context.Context, id uuid.UUID, rol string) error
}

type usuarioRepo struct{ col *mongo.Collection }

func NewUsuarioRepository(db *mongo.Database) UsuarioRepository {
	return &usuarioRepo{col: db.Collection("usuarios")}
}

func (r *usuarioRepo) Crear(ctx context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, u)
	return err
}

func (r *usuarioRepo) Listar(ctx context.Context) ([]model.Usuario, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var usuarios []model.Usuario
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, normalizar(err)
	}
	return &u, nil
}

func (r *usuarioRepo) ObtenerPorUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		return nil, normalizar(err)
	}
	return &u, nil
}

func (r *usuarioRepo) ActualizarActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	return r.actualizarCampo(ctx, id, "activo", activo)
}

func (r *usuarioRepo) ActualizarRol(ctx context.Context, id uuid.UUID, rol string) error {
	return r.actualizarCampo(ctx, id, "rol", rol)
}

func (r *usuarioRepo) actualizarCampo(ctx context.Context, id uuid.UUID, campo string, valor any) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		campo:       valor,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}
