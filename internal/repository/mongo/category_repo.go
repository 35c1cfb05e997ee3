package mongo

import (
	"context"
	"log"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryCollectionName holds documents of the form {kind, id, name}.
const CategoryCollectionName = "categories"

// categoryDocument is the stored shape of a category.
type categoryDocument struct {
	Kind domain.CategoryKind `bson:"kind"`
	ID   int                 `bson:"id"`
	Name string              `bson:"name"`
}

// mongoCategoryRepository implements repository.CategoryRepository.
// It only reads; the collection is maintained outside this service.
type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository creates a category repository backed by MongoDB.
func NewMongoCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &mongoCategoryRepository{
		collection: db.Collection(CategoryCollectionName),
	}
}

// ListByKind returns the categories of one kind ordered by their id.
func (r *mongoCategoryRepository) ListByKind(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	if kind != domain.KindBodyPart && kind != domain.KindEquipment {
		return nil, repository.ErrUnknownKind
	}

	filter := bson.M{"kind": kind}
	findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []categoryDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, len(docs))
	for i, d := range docs {
		categories[i] = domain.Category{ID: d.ID, Name: d.Name}
	}
	return categories, nil
}

// EnsureCategoryIndexes creates the index used by ListByKind.
func EnsureCategoryIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "kind", Value: 1}, {Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("kind_id"),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
