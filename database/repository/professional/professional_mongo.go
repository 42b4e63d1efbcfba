package professionalRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sanara/database"
	"sanara/models"
	"sanara/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new instance of MongoProfessionalRepo.
func NewMongoProfessionalRepo() *MongoProfessionalRepo {
	db := database.MongoClient.Database("sanara")
	return &MongoProfessionalRepo{
		coll: db.Collection("professionals"),
	}
}

func newContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d)
}

// Create inserts a new professional document.
func (r *MongoProfessionalRepo) Create(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, professional); err != nil {
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// GetByID retrieves a professional document by ID.
func (r *MongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&professional); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("professional", id)
		}
		return nil, fmt.Errorf("error fetching professional with id %s: %w", id, err)
	}
	return &professional, nil
}

// Update modifies an existing professional document.
func (r *MongoProfessionalRepo) Update(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": professional.ID}
	update := bson.M{"$set": professional}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", professional.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("professional", professional.ID)
	}
	return nil
}

// List retrieves professionals, optionally filtered by speciality.
func (r *MongoProfessionalRepo) List(ctx context.Context, speciality string) ([]models.Professional, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if speciality != "" {
		filter["speciality"] = speciality
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var professionals []models.Professional
	if err := cursor.All(ctx, &professionals); err != nil {
		return nil, fmt.Errorf("error decoding professionals: %w", err)
	}
	return professionals, nil
}

// ReplaceWeeklyAvailability swaps the professional's whole availability set.
// The write replaces, never merges, so the per-weekday uniqueness validated by
// the service layer holds for the stored document as well.
func (r *MongoProfessionalRepo) ReplaceWeeklyAvailability(ctx context.Context, id string, windows []models.AvailabilityWindow) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"availability": windows}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to replace availability for professional %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("professional", id)
	}
	return nil
}

// GetWeeklyAvailability fetches only the availability windows of a professional.
func (r *MongoProfessionalRepo) GetWeeklyAvailability(ctx context.Context, id string) ([]models.AvailabilityWindow, error) {
	professional, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return professional.Availability, nil
}
