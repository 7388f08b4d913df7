package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongox "github.com/dmitrymomot/depot/pkg/mongo"
)

const (
	mongoCollection = "products"
	titleIndexName  = "title_unique"
)

// MongoStore keeps one document per product. Call EnsureIndexes once before
// use so that title uniqueness is enforced by the server.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(mongoCollection)}
}

type productDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description"`
	Price       *float64  `bson:"price,omitempty"`
	ImageURL    string    `bson:"image_url"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toDoc(p *Product) productDoc {
	d := productDoc{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if v, ok := p.Price.Float64(); ok {
		d.Price = &v
	}
	return d
}

func (d productDoc) product() (*Product, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("product document %q: %w", d.ID, err)
	}
	p := &Product{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if d.Price != nil {
		p.Price = NewPrice(*d.Price)
	}
	return p, nil
}

// EnsureIndexes creates the unique title index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(titleIndexName),
	})
	return err
}

func (s *MongoStore) FindByTitle(ctx context.Context, title string) (*Product, error) {
	return s.findOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (s *MongoStore) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.D) (*Product, error) {
	var doc productDoc
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if mongox.IsNotFoundError(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc.product()
}

func (s *MongoStore) List(ctx context.Context) ([]*Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]*Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.product()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *MongoStore) Create(ctx context.Context, p *Product) error {
	_, err := s.coll.InsertOne(ctx, toDoc(p))
	return mapMongoError(err)
}

func (s *MongoStore) Update(ctx context.Context, p *Product) error {
	res, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: p.ID.String()}}, toDoc(p))
	if err != nil {
		return mapMongoError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func mapMongoError(err error) error {
	if err == nil || !mongox.IsDuplicateKeyError(err) {
		return err
	}
	if strings.Contains(err.Error(), "index: _id_") {
		return errors.Join(ErrDuplicateID, err)
	}
	return errors.Join(ErrDuplicateTitle, err)
}
