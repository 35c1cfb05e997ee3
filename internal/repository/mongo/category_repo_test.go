package mongo

import (
	"context"
	"os"
	"testing"
	"time"

	"alcyxob/fitlife/internal/domain"
	"alcyxob/fitlife/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupTestDB connects to TEST_MONGODB_URI and returns a throwaway database.
func setupTestDB(t *testing.T) *mongo.Database {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set")
	}

	client, err := ConnectDB(uri)
	require.NoError(t, err)

	db := client.Database("fitlife_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = DisconnectDB(client)
	})
	return db
}

func TestCategoryRepo_ListByKind(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	coll := db.Collection(CategoryCollectionName)
	EnsureCategoryIndexes(ctx, coll)
	_, err := coll.InsertMany(ctx, []interface{}{
		categoryDocument{Kind: domain.KindBodyPart, ID: 2, Name: "Upper Back"},
		categoryDocument{Kind: domain.KindBodyPart, ID: 1, Name: "Chest"},
		categoryDocument{Kind: domain.KindEquipment, ID: 1, Name: "Dumbbells"},
	})
	require.NoError(t, err)

	repo := NewMongoCategoryRepository(db)

	bodyParts, err := repo.ListByKind(ctx, domain.KindBodyPart)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Chest"}, {ID: 2, Name: "Upper Back"}}, bodyParts)

	equipment, err := repo.ListByKind(ctx, domain.KindEquipment)
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{{ID: 1, Name: "Dumbbells"}}, equipment)

	_, err = repo.ListByKind(ctx, domain.CategoryKind("cardio"))
	assert.ErrorIs(t, err, repository.ErrUnknownKind)
}
