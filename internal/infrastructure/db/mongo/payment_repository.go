package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/ordering-system/internal/core/domain"
)

const collectionPayments = "payments"

// PaymentRepository implements ports.PaymentRepository on MongoDB. The
// collection is append-only; nothing in this type mutates a stored payment.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(collectionPayments)}
}

type mongoPayment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transaction_id,omitempty"`
	MenuItemIDs   []string           `bson:"menu_item_ids"`
	CartItemIDs   []string           `bson:"cart_item_ids"`
	CreatedAt     int64              `bson:"created_at"`
}

func (mp mongoPayment) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:            mp.ID.Hex(),
		Email:         mp.Email,
		Price:         mp.Price,
		TransactionID: mp.TransactionID,
		MenuItemIDs:   mp.MenuItemIDs,
		CartItemIDs:   mp.CartItemIDs,
		CreatedAt:     unixToTime(mp.CreatedAt),
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPayment{
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		MenuItemIDs:   p.MenuItemIDs,
		CartItemIDs:   p.CartItemIDs,
		CreatedAt:     p.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *p
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail returns payments for one user, newest first. An empty email
// returns the full history.
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cur.Close(ctx)

	payments := make([]*domain.Payment, 0)
	for cur.Next(ctx) {
		var mp mongoPayment
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
		payments = append(payments, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// TotalRevenue sums the price of every payment with a single $group stage.
// An empty collection yields no row and therefore 0.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	defer cur.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&result); err != nil {
			return 0, fmt.Errorf("decode revenue: %w", err)
		}
	}
	if err := cur.Err(); err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	return result.Total, nil
}

// EnsureIndexes creates the payer-email index on the payments collection.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
