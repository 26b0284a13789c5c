// File: database/repository/branch/interface.go
package branchRepo

import (
	"context"

	"branchly/database"
	"branchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BranchRepository interface {
	Create(ctx context.Context, branch *models.Branch) error
	GetByID(ctx context.Context, id string) (*models.Branch, error)
	GetAll(ctx context.Context) ([]models.Branch, error)
	Update(ctx context.Context, branch *models.Branch) error
	UpdateWeek(ctx context.Context, id string, week models.ReservationWeek) error
	SetAcceptsReserves(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo constructs a new MongoDB BranchRepository.
func NewMongoBranchRepo() BranchRepository {
	db := database.MongoClient.Database("branchly")
	return &mongoBranchRepo{
		coll: db.Collection("branches"),
	}
}
