package appointmentRepo

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	db := database.MongoClient.Database("sanara")
	return &MongoAppointmentRepo{
		client: database.MongoClient,
		coll:   db.Collection("appointments"),
	}
}

var occupyingStatuses = []models.AppointmentStatus{
	models.AppointmentScheduled,
	models.AppointmentConfirmed,
	models.AppointmentInProgress,
}

// overlapFilter matches occupying appointments whose [startTime, endTime)
// interval intersects [from, to). Back-to-back appointments do not match.
func overlapFilter(professionalID string, from, to time.Time) bson.M {
	return bson.M{
		"professionalId": professionalID,
		"status":         bson.M{"$in": occupyingStatuses},
		"startTime":      bson.M{"$lt": to},
		"endTime":        bson.M{"$gt": from},
	}
}

// Create inserts the appointment after re-checking for overlap inside a
// transaction. The scheduling layer's HasConflict is only a best-effort
// pre-check; this is where the check-then-create race is closed.
func (r *MongoAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		filter := overlapFilter(appointment.ProfessionalID, appointment.StartTime, appointment.EndTime)
		count, err := r.coll.CountDocuments(sessCtx, filter)
		if err != nil {
			return nil, fmt.Errorf("error checking for conflicting appointments: %w", err)
		}
		if count > 0 {
			return nil, utils.NewConflictError(fmt.Sprintf(
				"professional %s already has an appointment overlapping [%s, %s)",
				appointment.ProfessionalID,
				appointment.StartTime.Format(time.RFC3339),
				appointment.EndTime.Format(time.RFC3339),
			))
		}
		if _, err := r.coll.InsertOne(sessCtx, appointment); err != nil {
			return nil, fmt.Errorf("failed to create appointment: %w", err)
		}
		return nil, nil
	})
	return err
}

// GetByID retrieves an appointment document by ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointment models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appointment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("appointment", id)
		}
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", id, err)
	}
	return &appointment, nil
}

// Update replaces an existing appointment document.
func (r *MongoAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appointment.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": appointment})
	if err != nil {
		return fmt.Errorf("failed to update appointment with id %s: %w", appointment.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.NewNotFoundError("appointment", appointment.ID)
	}
	return nil
}

// ListOccupying fetches the occupying appointments of a professional whose
// interval intersects [from, to), sorted by start time.
func (r *MongoAppointmentRepo) ListOccupying(ctx context.Context, professionalID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, overlapFilter(professionalID, from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching occupying appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}

// ListByPatient fetches a patient's appointments, optionally filtered by status.
func (r *MongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string, status models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"patientId": patientID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

// ListByProfessional fetches a professional's appointments, optionally
// filtered by status.
func (r *MongoAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string, status models.AppointmentStatus) ([]models.Appointment, error) {
	filter := bson.M{"professionalId": professionalID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(ctx, filter)
}

func (r *MongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}
