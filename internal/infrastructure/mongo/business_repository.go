package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/sngm3741/fitness-directory/api/internal/public/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BusinessRepository implements application.BusinessLoader using MongoDB.
type BusinessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository creates a new Mongo-backed business repository.
func NewBusinessRepository(db *mongo.Database, collectionName string) *BusinessRepository {
	return &BusinessRepository{collection: db.Collection(collectionName)}
}

// Load returns every business in dataset order.
func (r *BusinessRepository) Load(ctx context.Context) ([]domain.Business, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	businesses := make([]domain.Business, 0)
	for cursor.Next(ctx) {
		var doc BusinessDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		businesses = append(businesses, mapBusinessDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return businesses, nil
}

// Seed replaces the collection contents with businesses. When drop is set the
// collection is dropped first, otherwise documents are upserted by id.
func (r *BusinessRepository) Seed(ctx context.Context, businesses []domain.Business, drop bool) (int, error) {
	if drop {
		if err := r.collection.Drop(ctx); err != nil {
			return 0, fmt.Errorf("drop %s: %w", r.collection.Name(), err)
		}
	}
	if err := r.EnsureIndexes(ctx); err != nil {
		return 0, err
	}
	if len(businesses) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	models := make([]mongo.WriteModel, 0, len(businesses))
	for i, b := range businesses {
		doc := toBusinessDocument(b, i)
		doc.SeededAt = &now
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": doc.ID}).
			SetReplacement(doc).
			SetUpsert(true))
	}

	result, err := r.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return 0, fmt.Errorf("bulk write %s: %w", r.collection.Name(), err)
	}
	return int(result.UpsertedCount + result.MatchedCount), nil
}

// EnsureIndexes creates the indexes used by Load and ad-hoc queries.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "position", Value: 1}},
			Options: options.Index().SetName("idx_business_position"),
		},
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "rating", Value: -1}},
			Options: options.Index().SetName("idx_business_category_rating"),
		},
	}
	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("create indexes on %s: %w", r.collection.Name(), err)
	}
	return nil
}

func mapBusinessDocument(doc BusinessDocument) domain.Business {
	return domain.Business{
		ID:          doc.ID,
		Name:        doc.Name,
		Category:    doc.Category,
		Location:    doc.Location,
		Price:       doc.Price,
		Services:    append([]string{}, doc.Services...),
		Vibe:        doc.Vibe,
		Description: doc.Description,
		Rating:      doc.Rating,
		Image:       doc.Image,
		Details: domain.BusinessDetails{
			Type:           doc.Details.Type,
			Reviews:        doc.Details.Reviews,
			Amenities:      append([]string{}, doc.Details.Amenities...),
			Hours:          doc.Details.Hours,
			MonthlyPrice:   doc.Details.MonthlyPrice,
			JoinFee:        doc.Details.JoinFee,
			MemberCapacity: doc.Details.MemberCapacity,
		},
	}
}

func toBusinessDocument(b domain.Business, position int) BusinessDocument {
	return BusinessDocument{
		ID:          b.ID,
		Position:    position,
		Name:        b.Name,
		Category:    b.Category,
		Location:    b.Location,
		Price:       b.Price,
		Services:    append([]string{}, b.Services...),
		Vibe:        b.Vibe,
		Description: b.Description,
		Rating:      b.Rating,
		Image:       b.Image,
		Details: BusinessDetailsDocument{
			Type:           b.Details.Type,
			Reviews:        b.Details.Reviews,
			Amenities:      append([]string{}, b.Details.Amenities...),
			Hours:          b.Details.Hours,
			MonthlyPrice:   b.Details.MonthlyPrice,
			JoinFee:        b.Details.JoinFee,
			MemberCapacity: b.Details.MemberCapacity,
		},
	}
}
