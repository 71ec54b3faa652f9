// internal/interface/repository/email_repo.go
package repository

import (
	"context"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEmailRepository implements the EmailRepository interface
type MongoEmailRepository struct {
	collection *mongo.Collection
}

// NewMongoEmailRepository creates a new MongoDB email repository
func NewMongoEmailRepository(db *mongo.Database) repository.EmailRepository {
	collection := db.Collection("emailRecords")

	// Create indexes for better performance
	ctx := context.Background()

	messageIDIndex := mongo.IndexModel{
		Keys:    bson.M{"messageId": 1},
		Options: options.Index().SetUnique(true).SetSparse(true),
	}

	// Auditor partition plus company lookup
	companyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "auditorId", Value: 1},
			{Key: "companyId", Value: 1},
		},
	}

	// Direction and date drive the follow-up scans
	directionDateIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "auditorId", Value: 1},
			{Key: "direction", Value: 1},
			{Key: "date", Value: -1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		messageIDIndex,
		companyIndex,
		directionDateIndex,
	})

	return &MongoEmailRepository{
		collection: collection,
	}
}

// FindByAuditor returns every email record in one auditor's scope, oldest
// first. Dates come back in whatever zone the driver decodes; callers
// normalize to UTC before comparing.
func (r *MongoEmailRepository) FindByAuditor(ctx context.Context, auditorID string) ([]*entity.EmailRecord, error) {
	filter := bson.M{"auditorId": auditorID}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "date", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.EmailRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// FindByCompany returns one company's email history, oldest first.
func (r *MongoEmailRepository) FindByCompany(ctx context.Context, auditorID, companyID string) ([]*entity.EmailRecord, error) {
	filter := bson.M{
		"auditorId": auditorID,
		"companyId": companyID,
	}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "date", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*entity.EmailRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
