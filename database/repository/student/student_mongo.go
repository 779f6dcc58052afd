package studentRepo

import (
	"context"
	"fmt"
	"time"

	"chamba/database"
	"chamba/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	coll := database.MongoClient.Database("chamba").Collection("students")
	repo := &MongoStudentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByIDWithProjection retrieves a student by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoStudentRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with id %s: %w", id, err)
	}
	return &student, nil
}

// GetByID retrieves a student by its unique ID (full document).
func (r *MongoStudentRepo) GetByID(id string) (*models.Student, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a student by email. A missing document is not an
// error: existence checks ride on the (nil, nil) return.
func (r *MongoStudentRepo) GetByEmail(email string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"payload.email": email}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with email %s: %w", email, err)
	}
	return &student, nil
}

// GetByGoogleUID retrieves a student by the sign-in provider's UID.
func (r *MongoStudentRepo) GetByGoogleUID(uid string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"payload.googleUid": uid}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with uid %s: %w", uid, err)
	}
	return &student, nil
}

// GetAll retrieves all students.
func (r *MongoStudentRepo) GetAll() ([]models.Student, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, nil
}
