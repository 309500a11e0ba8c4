package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const CollectionKV = "kv_storage"

// KVStore is the persistent key-value collaborator behind the audit log and
// the managed content. Implementations must make a single Get or Set atomic;
// read-modify-write sequences are serialized by the caller.
type KVStore interface {
	// Get returns the stored value and whether the key exists. A missing key
	// is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}

type kvDoc struct {
	Value string `firestore:"value"`
}

type firestoreKV struct {
	client *firestore.Client
}

// NewFirestoreKV stores each key as a document in the kv_storage collection
// with a single value field.
func NewFirestoreKV(client *firestore.Client) KVStore {
	return &firestoreKV{client: client}
}

func (s *firestoreKV) Get(ctx context.Context, key string) (string, bool, error) {
	doc, err := s.client.Collection(CollectionKV).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	var d kvDoc
	if err := doc.DataTo(&d); err != nil {
		return "", false, err
	}
	return d.Value, true, nil
}

func (s *firestoreKV) Set(ctx context.Context, key, value string) error {
	_, err := s.client.Collection(CollectionKV).Doc(key).Set(ctx, kvDoc{Value: value})
	return err
}

func (s *firestoreKV) Delete(ctx context.Context, key string) error {
	_, err := s.client.Collection(CollectionKV).Doc(key).Delete(ctx)
	return err
}
