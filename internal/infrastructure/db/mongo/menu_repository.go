package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const collectionMenus = "menus"

// MenuRepository implements ports.MenuRepository on MongoDB.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(collectionMenus)}
}

type mongoMenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Recipe   string             `bson:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty"`
}

func (mi mongoMenuItem) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:       mi.ID.Hex(),
		Name:     mi.Name,
		Category: mi.Category,
		Price:    mi.Price,
		Recipe:   mi.Recipe,
		Image:    mi.Image,
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMenuItem{
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Recipe:   item.Recipe,
		Image:    item.Image,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	created := *item
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuNotFound
	}

	var mi mongoMenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return mi.toDomain(), nil
}

// FindByIDs resolves a batch of ids with a single $in query. Ids that do not
// resolve are simply absent from the result. Hex-invalid ids are skipped for
// the same reason: they cannot match any document.
func (r *MenuRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.MenuItem, error) {
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
		return []*domain.MenuItem{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.MenuItem, 0, len(oids))
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	return items, nil
}

// List returns all menu items; a non-empty category restricts the result.
func (r *MenuRepository) List(ctx context.Context, category string) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.MenuItem, 0)
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, item *domain.MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuNotFound
	}

	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"category": item.Category,
		"price":    item.Price,
		"recipe":   item.Recipe,
		"image":    item.Image,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// Count returns the approximate number of menu documents.
func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return n, nil
}
