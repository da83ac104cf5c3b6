package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"item-management/internal/item"
	repo "item-management/internal/item/repository"
)

// CreateItem inserts a new Item document and returns the created entity.
// The store owns _id and createdAt: both are assigned here, never by callers.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	doc := itemDoc{
		ID:          primitive.NewObjectID(),
		Title:       opt.Title,
		Description: opt.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return doc.toDomain(), nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found, never an error.
// A malformed ObjectID hex counts as not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return item.Item{}, nil
	}

	var doc itemDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return doc.toDomain(), nil
}

// ListItems returns every Item sorted by createdAt descending (newest first).
func (r *implRepository) ListItems(ctx context.Context) ([]item.Item, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer cursor.Close(ctx)

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toDomain())
	}
	return items, nil
}

// UpdateItem replaces title/description of an Item by ID and returns the
// post-update entity. createdAt is left untouched.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	oid, err := primitive.ObjectIDFromHex(opt.ID)
	if err != nil {
		return item.Item{}, nil
	}

	update := bson.M{"$set": bson.M{
		"title":       opt.Title,
		"description": opt.Description,
	}}
	updateOpts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, updateOpts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	return doc.toDomain(), nil
}

// DeleteItem removes an Item by ID. Deleting an absent ID is not an error
// here; absence is detected by the use case before calling this.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
