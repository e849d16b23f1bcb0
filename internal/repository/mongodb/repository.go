package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greencoders/soilcard/internal/domain/models"
)

// CardRepository defines the persistence operations for soil cards.
type CardRepository interface {
	GetCard(ctx context.Context, farmerID string) (models.SoilCard, error)
	SaveCard(ctx context.Context, card models.SoilCard) error
	ListCards(ctx context.Context) ([]models.SoilCard, error)
}

// ProfileRepository defines the persistence operations for identity records.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (models.FarmerProfile, error)
	SaveProfile(ctx context.Context, profile models.FarmerProfile) error
	MarkHasCard(ctx context.Context, userID string) error
}

// SnapshotRepository stores the scheduled daily advisory snapshots.
type SnapshotRepository interface {
	SaveDailySnapshot(ctx context.Context, snapshot models.DailySnapshot) error
}

// MongoDBRepository implements the repository interfaces for MongoDB.
type MongoDBRepository struct {
	client        *mongo.Client
	dbName        string
	cardsColl     string
	profilesColl  string
	snapshotsColl string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:        client,
		dbName:        dbName,
		cardsColl:     "farmers",
		profilesColl:  "users",
		snapshotsColl: "daily_snapshots",
	}, nil
}

// GetCard fetches a farmer's card by its farmer identifier.
func (r *MongoDBRepository) GetCard(ctx context.Context, farmerID string) (models.SoilCard, error) {
	collection := r.client.Database(r.dbName).Collection(r.cardsColl)

	var card models.SoilCard
	err := collection.FindOne(ctx, bson.M{"farmer_id": farmerID}).Decode(&card)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SoilCard{}, models.ErrCardNotFound
	}
	if err != nil {
		return models.SoilCard{}, fmt.Errorf("find card %s: %w", farmerID, err)
	}
	return card, nil
}

// SaveCard upserts the card document keyed by farmer identifier. The
// duplicate check happens at the service layer before this write; concurrent
// creations therefore resolve as last writer wins.
func (r *MongoDBRepository) SaveCard(ctx context.Context, card models.SoilCard) error {
	collection := r.client.Database(r.dbName).Collection(r.cardsColl)

	filter := bson.M{"farmer_id": card.FarmerID}
	update := bson.M{"$set": card}
	opts := options.Update().SetUpsert(true)

	if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert card %s: %w", card.FarmerID, err)
	}
	return nil
}

// ListCards returns every stored card, newest first.
func (r *MongoDBRepository) ListCards(ctx context.Context) ([]models.SoilCard, error) {
	collection := r.client.Database(r.dbName).Collection(r.cardsColl)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer cursor.Close(ctx)

	var cards []models.SoilCard
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("decode cards: %w", err)
	}
	return cards, nil
}

// GetProfile fetches an identity record by user id.
func (r *MongoDBRepository) GetProfile(ctx context.Context, userID string) (models.FarmerProfile, error) {
	collection := r.client.Database(r.dbName).Collection(r.profilesColl)

	var profile models.FarmerProfile
	err := collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.FarmerProfile{}, models.ErrProfileNotFound
	}
	if err != nil {
		return models.FarmerProfile{}, fmt.Errorf("find profile %s: %w", userID, err)
	}
	return profile, nil
}

// SaveProfile upserts the identity record keyed by user id.
func (r *MongoDBRepository) SaveProfile(ctx context.Context, profile models.FarmerProfile) error {
	collection := r.client.Database(r.dbName).Collection(r.profilesColl)

	filter := bson.M{"user_id": profile.UserID}
	update := bson.M{"$set": profile}
	opts := options.Update().SetUpsert(true)

	if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("upsert profile %s: %w", profile.UserID, err)
	}
	return nil
}

// MarkHasCard flips the has_card flag after a successful card creation.
func (r *MongoDBRepository) MarkHasCard(ctx context.Context, userID string) error {
	collection := r.client.Database(r.dbName).Collection(r.profilesColl)

	update := bson.M{"$set": bson.M{"has_card": true}}
	if _, err := collection.UpdateOne(ctx, bson.M{"user_id": userID}, update); err != nil {
		return fmt.Errorf("mark has_card for %s: %w", userID, err)
	}
	return nil
}

// SaveDailySnapshot stores one scheduled advisory snapshot.
func (r *MongoDBRepository) SaveDailySnapshot(ctx context.Context, snapshot models.DailySnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.snapshotsColl)
	if _, err := collection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert daily snapshot: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
