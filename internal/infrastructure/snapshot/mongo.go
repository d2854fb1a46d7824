package snapshot

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const snapshotDocID = "dataset"

// MongoBlob stores the snapshot as a single document with a fixed _id.
type MongoBlob struct {
	coll *mongo.Collection
}

type snapshotDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

func NewMongoBlob(db *mongo.Database, collection string) *MongoBlob {
	return &MongoBlob{coll: db.Collection(collection)}
}

func (b *MongoBlob) Load(ctx context.Context) ([]byte, error) {
	var doc snapshotDoc
	if err := b.coll.FindOne(ctx, bson.M{"_id": snapshotDocID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return doc.Data, nil
}

func (b *MongoBlob) Save(ctx context.Context, data []byte) error {
	doc := snapshotDoc{ID: snapshotDocID, Data: data}
	opts := options.Replace().SetUpsert(true)
	if _, err := b.coll.ReplaceOne(ctx, bson.M{"_id": snapshotDocID}, doc, opts); err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
