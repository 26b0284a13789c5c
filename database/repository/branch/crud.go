// File: database/repository/branch/crud.go
package branchRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"branchly/models"
)

func (r *mongoBranchRepo) Create(ctx context.Context, branch *models.Branch) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if branch.ID == "" {
		branch.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	branch.CreatedAt = now
	branch.UpdatedAt = now
	if branch.ReservationWeek == nil {
		branch.ReservationWeek = models.EmptyReservationWeek()
	}

	_, err := r.coll.InsertOne(ctx, branch)
	return err
}

func (r *mongoBranchRepo) GetByID(ctx context.Context, id string) (*models.Branch, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var branch models.Branch
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *mongoBranchRepo) Update(ctx context.Context, branch *models.Branch) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	branch.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": branch.ID}, branch)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBranchRepo) UpdateWeek(ctx context.Context, id string, week models.ReservationWeek) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"reservationWeek": week,
		"updatedAt":       time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBranchRepo) SetAcceptsReserves(ctx context.Context, id string, enabled bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"acceptsReserves": enabled,
		"updatedAt":       time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBranchRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
