package model

import (
	"time"

	"github.com/google/uuid"
)

// ImportLog is the append-only audit record written after a spreadsheet
// import completes and the source file has been archived. Never updated.
type ImportLog struct {
	ID            uuid.UUID         `bson:"_id" json:"id"`
	FileName      string            `bson:"fileName" json:"fileName"`
	FileSize      int64             `bson:"fileSize" json:"fileSize"`
	DownloadURL   string            `bson:"downloadURL" json:"downloadURL"`
	ImportedItems int               `bson:"importedItems" json:"importedItems"`
	ImportedBy    string            `bson:"importedBy" json:"importedBy"`
	ImportedAt    time.Time         `bson:"importedAt" json:"importedAt"`
	Mapping       map[string]string `bson:"mapping" json:"mapping"`
}
