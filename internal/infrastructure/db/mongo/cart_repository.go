package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const collectionCarts = "carts"

// CartRepository implements ports.CartRepository on MongoDB.
type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(collectionCarts)}
}

type mongoCartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	MenuItemID string             `bson:"menu_item_id"`
	Name       string             `bson:"name"`
	Category   string             `bson:"category"`
	Price      float64            `bson:"price"`
	Image      string             `bson:"image,omitempty"`
	CreatedAt  int64              `bson:"created_at"`
}

func (ci mongoCartItem) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:         ci.ID.Hex(),
		Email:      ci.Email,
		MenuItemID: ci.MenuItemID,
		Name:       ci.Name,
		Category:   ci.Category,
		Price:      ci.Price,
		Image:      ci.Image,
		CreatedAt:  unixToTime(ci.CreatedAt),
	}
}

func (r *CartRepository) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCartItem{
		Email:      item.Email,
		MenuItemID: item.MenuItemID,
		Name:       item.Name,
		Category:   item.Category,
		Price:      item.Price,
		Image:      item.Image,
		CreatedAt:  item.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *CartRepository) FindByEmail(ctx context.Context, email string) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.CartItem, 0)
	for cur.Next(ctx) {
		var ci mongoCartItem
		if err := cur.Decode(&ci); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, ci.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// DeleteMany removes the given cart items after checkout. Already-deleted
// ids are not an error.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}}); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}
	return nil
}

// EnsureIndexes creates the owner-email index on the carts collection.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
