package mongo

import (
	"context"
	"errors"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const scheduleCollectionName = "schedules"

// mongoScheduleRepository implements repository.ScheduleRepository using MongoDB.
type mongoScheduleRepository struct {
	collection *mongo.Collection
}

// NewMongoScheduleRepository creates a new instance of mongoScheduleRepository.
func NewMongoScheduleRepository(db *mongo.Database) repository.ScheduleRepository {
	return &mongoScheduleRepository{
		collection: db.Collection(scheduleCollectionName),
	}
}

// Create inserts a new schedule entry.
func (r *mongoScheduleRepository) Create(ctx context.Context, schedule *domain.Schedule) (primitive.ObjectID, error) {
	if schedule.UserID == primitive.NilObjectID || schedule.WorkoutID == primitive.NilObjectID || schedule.Date == "" {
		return primitive.NilObjectID, errors.New("schedule owner, workout, and date are required")
	}
	if schedule.Source == "" {
		schedule.Source = domain.SourceManual
	}

	schedule.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, schedule)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// CreateIfAbsent atomically inserts the entry unless one already exists for
// the same (user, date, source). A single findOneAndUpdate upsert under the
// unique index means two concurrent onboarding calls can never both insert;
// the loser simply gets the winner's document back.
func (r *mongoScheduleRepository) CreateIfAbsent(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, bool, error) {
	if schedule.UserID == primitive.NilObjectID || schedule.WorkoutID == primitive.NilObjectID || schedule.Date == "" {
		return nil, false, errors.New("schedule owner, workout, and date are required")
	}

	candidateID := primitive.NewObjectID()
	now := time.Now().UTC()

	filter := bson.M{
		"userId": schedule.UserID,
		"date":   schedule.Date,
		"source": schedule.Source,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":       candidateID,
			"userId":    schedule.UserID,
			"workoutId": schedule.WorkoutID,
			"date":      schedule.Date,
			"completed": schedule.Completed,
			"source":    schedule.Source,
			"createdAt": now,
			"updatedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result domain.Schedule
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&result); err != nil {
		return nil, false, err
	}

	created := result.ID == candidateID
	return &result, created, nil
}

// GetByID retrieves a schedule entry by its ObjectID.
func (r *mongoScheduleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&schedule)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

// GetByUserID retrieves a user's schedule entries, optionally filtered to a
// single calendar date, ordered by date ascending.
func (r *mongoScheduleRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID, date *domain.Date) ([]domain.Schedule, error) {
	filter := bson.M{"userId": userID}
	if date != nil {
		filter["date"] = *date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	schedules := []domain.Schedule{}
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// GetPendingByDate returns every incomplete entry on the given calendar date,
// across all users. Used by the daily reminder scan.
func (r *mongoScheduleRepository) GetPendingByDate(ctx context.Context, date domain.Date) ([]domain.Schedule, error) {
	filter := bson.M{"date": date, "completed": false}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	schedules := []domain.Schedule{}
	if err = cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// SetCompleted writes the completion flag of an entry.
func (r *mongoScheduleRepository) SetCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error {
	update := bson.M{
		"$set": bson.M{
			"completed": completed,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a schedule entry and confirms the removal happened.
func (r *mongoScheduleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrDeleteFailed
	}
	return nil
}

// EnsureScheduleIndexes creates necessary indexes for the schedules collection.
// The partial unique index is what makes the onboarding insert-if-absent safe
// under concurrent requests.
func EnsureScheduleIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "date", Value: 1},
				{Key: "source", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"source": domain.SourceOnboarding}),
		},
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "completed", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
