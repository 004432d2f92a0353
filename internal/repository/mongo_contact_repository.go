package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loanbaazar/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ContactsCollection is the collection holding contact submissions.
const ContactsCollection = "contacts"

// contactDocument is the BSON shape of a submission.
type contactDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Email       string        `bson:"email"`
	Phone       string        `bson:"phone"`
	Message     string        `bson:"message"`
	IsRead      bool          `bson:"isRead"`
	SubmittedAt time.Time     `bson:"submittedAt"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func (d *contactDocument) toModel() *model.ContactSubmission {
	return &model.ContactSubmission{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Message:     d.Message,
		IsRead:      d.IsRead,
		SubmittedAt: d.SubmittedAt.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a repository over the contacts collection of db.
func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(ContactsCollection)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

// EnsureIndexes creates the createdAt index used by List. Safe to call repeatedly.
func (r *MongoContactRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("createdAt_desc"),
	})
	return err
}

// BSON dates carry millisecond precision; truncating keeps the returned
// struct identical to what a later read yields.
func mongoNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func (r *MongoContactRepository) Insert(ctx context.Context, msg *model.ContactSubmission) error {
	now := mongoNow()
	submittedAt := msg.SubmittedAt.UTC().Truncate(time.Millisecond)
	if msg.SubmittedAt.IsZero() {
		submittedAt = now
	}

	doc := contactDocument{
		Name:        msg.Name,
		Email:       msg.Email,
		Phone:       msg.Phone,
		Message:     msg.Message,
		IsRead:      msg.IsRead,
		SubmittedAt: submittedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return fmt.Errorf("insert contact: unexpected id type %T", res.InsertedID)
	}

	msg.ID = oid.Hex()
	msg.SubmittedAt = submittedAt
	msg.CreatedAt = now
	msg.UpdatedAt = now
	return nil
}

func (r *MongoContactRepository) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "createdAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []contactDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	out := make([]*model.ContactSubmission, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}
	return out, nil
}

func (r *MongoContactRepository) UpdateReadState(ctx context.Context, id string, isRead bool) (*model.ContactSubmission, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isRead", Value: isRead},
		{Key: "updatedAt", Value: mongoNow()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc contactDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update contact read state: %w", err)
	}
	return doc.toModel(), nil
}

func (r *MongoContactRepository) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// Nothing with a malformed id can exist.
		return nil
	}
	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
