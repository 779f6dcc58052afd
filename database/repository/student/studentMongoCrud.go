// File: database/repository/student/studentMongoCrud.go
package studentRepo

import (
	"fmt"
	"time"

	"chamba/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new student document.
func (r *MongoStudentRepo) Create(student *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, student)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// Update modifies an existing student document.
func (r *MongoStudentRepo) Update(student *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	student.UpdatedAt = time.Now()
	filter := bson.M{"id": student.ID}
	update := bson.M{"$set": student}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update student with id %s: %w", student.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with id %s not found", student.ID)
	}
	return nil
}

// Delete removes a student document by its ID.
func (r *MongoStudentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete student with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("student with id %s not found", id)
	}
	return nil
}
