package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medtrack/medication-reminder/internal/core/domain"
)

const collectionMedications = "medications"

// MedicationRepository stores dose records in MongoDB; collection order is
// created_at ascending.
type MedicationRepository struct {
	col *mongo.Collection
}

func NewMedicationRepository(db *mongo.Database) *MedicationRepository {
	return &MedicationRepository{col: db.Collection(collectionMedications)}
}

var insertionOrder = options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

// Create inserts a new medication document.
func (r *MedicationRepository) Create(ctx context.Context, m domain.Medication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

func (r *MedicationRepository) FindByID(ctx context.Context, id string) (domain.Medication, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByIdempotencyKey retrieves a medication created with the given key.
func (r *MedicationRepository) FindByIdempotencyKey(ctx context.Context, key string) (domain.Medication, error) {
	if key == "" {
		return domain.Medication{}, domain.ErrMedicationNotFound
	}
	return r.findOne(ctx, bson.M{"idempotency_key": key})
}

func (r *MedicationRepository) List(ctx context.Context) ([]domain.Medication, error) {
	return r.find(ctx, bson.M{})
}

func (r *MedicationRepository) ListByDate(ctx context.Context, date string) ([]domain.Medication, error) {
	return r.find(ctx, bson.M{"date": date})
}

// UpdateStatus sets only the status field and returns the updated document.
func (r *MedicationRepository) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m domain.Medication
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Medication{}, domain.ErrMedicationNotFound
		}
		return domain.Medication{}, fmt.Errorf("update status: %w", err)
	}
	return m, nil
}

func (r *MedicationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMedicationNotFound
	}
	return nil
}

// illegalOperation is returned by standalone servers for transactions.
const illegalOperation = 20

// ReplaceAll swaps the collection contents inside a transaction. Standalone
// deployments without transaction support fall back to a plain delete+insert.
func (r *MedicationRepository) ReplaceAll(ctx context.Context, meds []domain.Medication) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	replace := func(ctx context.Context) error {
		if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear medications: %w", err)
		}
		if len(meds) == 0 {
			return nil
		}
		docs := make([]any, len(meds))
		for i, m := range meds {
			docs[i] = m
		}
		if _, err := r.col.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("insert medications: %w", err)
		}
		return nil
	}

	session, err := r.col.Database().Client().StartSession()
	if err != nil {
		return replace(ctx)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, replace(sc)
	})
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == illegalOperation {
		return replace(ctx)
	}
	return err
}

// EnsureIndexes creates necessary indexes on the medications collection.
func (r *MedicationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{
			Keys:    bson.D{{Key: "idempotency_key", Value: 1}},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$exists": true}}),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *MedicationRepository) findOne(ctx context.Context, filter bson.M) (domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Medication
	if err := r.col.FindOne(ctx, filter).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Medication{}, domain.ErrMedicationNotFound
		}
		return domain.Medication{}, fmt.Errorf("find medication: %w", err)
	}
	return m, nil
}

func (r *MedicationRepository) find(ctx context.Context, filter bson.M) ([]domain.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, insertionOrder)
	if err != nil {
		return nil, fmt.Errorf("find medications: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]domain.Medication, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode medications: %w", err)
	}
	return out, nil
}
