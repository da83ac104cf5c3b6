package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"item-management/internal/item"
)

// itemDoc is the persisted shape of an Item.
type itemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (d itemDoc) toDomain() item.Item {
	return item.Item{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}
