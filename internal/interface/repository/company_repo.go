package repository

import (
	"context"

	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/entity"
	"github.com/dithetoauditflow-toolset/email-tracker/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCompanyRepository implements the CompanyRepository interface
type MongoCompanyRepository struct {
	collection *mongo.Collection
}

// NewMongoCompanyRepository creates a new MongoDB company repository
func NewMongoCompanyRepository(db *mongo.Database) repository.CompanyRepository {
	collection := db.Collection("companies")

	ctx := context.Background()

	auditorIndex := mongo.IndexModel{
		Keys: bson.M{"auditorId": 1},
	}

	// UIF refs are the dedupe key on import, unique per auditor
	uifIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "auditorId", Value: 1},
			{Key: "uifRef", Value: 1},
		},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		auditorIndex,
		uifIndex,
	})

	return &MongoCompanyRepository{
		collection: collection,
	}
}

// FindByAuditor returns all companies in one auditor's scope.
func (r *MongoCompanyRepository) FindByAuditor(ctx context.Context, auditorID string) ([]*entity.Company, error) {
	filter := bson.M{"auditorId": auditorID}

	cursor, err := r.collection.Find(ctx, filter, &options.FindOptions{
		Sort: bson.D{{Key: "tradeName", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []*entity.Company
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, err
	}

	return companies, nil
}
