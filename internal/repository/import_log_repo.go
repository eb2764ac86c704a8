package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/santosdevelop/Manto/internal/model"
)

// ImportLogRepository is append-only: logs are never updated or deleted.
type ImportLogRepository interface {
	Crear(ctx context.Context, l *model.ImportLog) error
	Listar(ctx context.Context, limit int64) ([]model.ImportLog, error)
}

type importLogRepo struct{ col *mongo.Collection }

func NewImportLogRepository(db *mongo.Database) ImportLogRepository {
	return &importLogRepo{col: db.Collection("import_logs")}
}

func (r *importLogRepo) Crear(ctx context.Context, l *model.ImportLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}

func (r *importLogRepo) Listar(ctx context.Context, limit int64) ([]model.ImportLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "importedAt", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []model.ImportLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
