// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"vaktplan/database"
	"vaktplan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// HistoryRepository is the append-only log of generated documents and
// applied validation outcomes.
type HistoryRepository interface {
	Append(ctx context.Context, rec models.HistoryRecord) error
	ListBySession(ctx context.Context, sessionID string) ([]models.HistoryRecord, error)
}

type mongoHistoryRepo struct {
	coll *mongo.Collection
}

// NewMongoHistoryRepo constructs a new MongoDB HistoryRepository.
func NewMongoHistoryRepo() HistoryRepository {
	db := database.MongoClient.Database("vaktplan")
	return &mongoHistoryRepo{
		coll: db.Collection("schedule_history"),
	}
}
