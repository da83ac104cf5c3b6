package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"item-management/internal/item/repository"
	"item-management/pkg/log"
)

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the item domain.
func New(coll *mongo.Collection, l log.Logger) repository.Repository {
	if coll == nil {
		panic("item/repository/mongo: collection is required")
	}
	return &implRepository{coll: coll, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}
