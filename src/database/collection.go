package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SortField orders List results by one document key.
type SortField struct {
	Field string
	Desc  bool
}

// ListOptions are the where/orderBy/limit knobs of a list call. The key "id"
// in Where addresses the record identifier.
type ListOptions struct {
	Where   map[string]any
	OrderBy []SortField
	Limit   int64
}

// Collection is the record-level contract the form store needs from the
// remote database. Failures are returned as *Error.
type Collection[T any] interface {
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Create(ctx context.Context, doc T) (string, error)
	Update(ctx context.Context, id string, doc T) error
	Delete(ctx context.Context, id string) error
}

// MongoCollection stores T documents keyed by a string _id.
type MongoCollection[T any] struct {
	coll *mongo.Collection
}

func NewMongoCollection[T any](coll *mongo.Collection) *MongoCollection[T] {
	return &MongoCollection[T]{coll: coll}
}

func (m *MongoCollection[T]) Name() string {
	return m.coll.Name()
}

func (m *MongoCollection[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	filter := bson.M{}
	for k, v := range opts.Where {
		if k == "id" {
			k = "_id"
		}
		filter[k] = v
	}

	findOpts := options.Find()
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.OrderBy) > 0 {
		sort := bson.D{}
		for _, s := range opts.OrderBy {
			dir := 1
			if s.Desc {
				dir = -1
			}
			sort = append(sort, bson.E{Key: s.Field, Value: dir})
		}
		findOpts.SetSort(sort)
	}

	cursor, err := m.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, Classify("list "+m.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, Classify("list "+m.coll.Name(), err)
	}
	return out, nil
}

// Create inserts doc and returns its id. Documents without an id get a new
// ObjectID hex string so every _id in the collection is a string.
func (m *MongoCollection[T]) Create(ctx context.Context, doc T) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", Classify("create "+m.coll.Name(), err)
	}
	id, _ := d["_id"].(string)
	if id == "" {
		id = primitive.NewObjectID().Hex()
		d["_id"] = id
	}
	if _, err := m.coll.InsertOne(ctx, d); err != nil {
		return "", Classify("create "+m.coll.Name(), err)
	}
	return id, nil
}

// Update replaces the stored fields of id. It upserts, so a record first
// written to the local ledger reaches the database on its next save.
func (m *MongoCollection[T]) Update(ctx context.Context, id string, doc T) error {
	d, err := toDocument(doc)
	if err != nil {
		return Classify("update "+m.coll.Name(), err)
	}
	delete(d, "_id")

	_, err = m.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": d},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return Classify("update "+m.coll.Name(), err)
	}
	return nil
}

// Delete removes id. Deleting a missing id is not an error.
func (m *MongoCollection[T]) Delete(ctx context.Context, id string) error {
	if _, err := m.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return Classify("delete "+m.coll.Name(), err)
	}
	return nil
}

func toDocument(v any) (bson.M, error) {
	b, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var d bson.M
	if err := bson.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return d, nil
}
