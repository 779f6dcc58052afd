package studentRepo

import (
	"chamba/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StudentRepository defines methods for student data access.
type StudentRepository interface {
	// GetByID retrieves a student by its unique ID.
	GetByID(id string) (*models.Student, error)
	// GetByEmail retrieves a student by email. Returns (nil, nil) when no
	// student exists for that email.
	GetByEmail(email string) (*models.Student, error)
	// GetByGoogleUID retrieves a student by the sign-in provider's UID.
	GetByGoogleUID(uid string) (*models.Student, error)
	// GetAll retrieves all students.
	GetAll() ([]models.Student, error)
	// Create inserts a new student record.
	Create(student *models.Student) error
	// Update modifies an existing student record.
	Update(student *models.Student) error
	// Delete removes a student record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a student by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Student, error)
}
