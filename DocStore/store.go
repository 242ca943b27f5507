package DocStore

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// Document is one record from the document store, with the document id
// merged in under "id".
type Document map[string]interface{}

func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// DocumentStore is the collection-level surface the dual-write coordinator
// talks to. Reads return nil instead of erroring when the store is
// unreachable; writes return zero values. Callers fall back to the
// relational store on their own.
type DocumentStore interface {
	Enabled() bool
	GetAll(ctx context.Context, collection string) []Document
	GetOne(ctx context.Context, collection, id string) Document
	QueryByField(ctx context.Context, collection, field string, value interface{}) Document
	Add(ctx context.Context, collection string, data map[string]interface{}) string
	Set(ctx context.Context, collection, id string, data map[string]interface{}) bool
	Update(ctx context.Context, collection, id string, data map[string]interface{}) bool
	Delete(ctx context.Context, collection, id string) bool
	Ping(ctx context.Context) error
}

// Store wraps a Firestore client. A nil client (no cloud credentials in
// the environment) behaves as permanently degraded, which keeps the
// process running on the local database alone.
type Store struct {
	Client  *firestore.Client
	Breaker *Breaker
}

func NewStore(client *firestore.Client, breaker *Breaker) *Store {
	if breaker == nil {
		breaker = NewBreaker(DefaultCooldown)
	}
	return &Store{Client: client, Breaker: breaker}
}

func (s *Store) Enabled() bool {
	return s.Client != nil && s.Breaker.Allow()
}

func (s *Store) fail(op, collection string, err error) {
	log.Printf("Firestore error (%s %s): %v — falling back to local database", op, collection, err)
	s.Breaker.MarkFailure()
}

func (s *Store) GetAll(ctx context.Context, collection string) []Document {
	if !s.Enabled() {
		return nil
	}
	iter := s.Client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			s.fail("getAll", collection, err)
			return nil
		}
		docs = append(docs, fromSnapshot(snap))
	}
	return docs
}

func (s *Store) GetOne(ctx context.Context, collection, id string) Document {
	if !s.Enabled() || id == "" {
		return nil
	}
	snap, err := s.Client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil
		}
		s.fail("getOne", collection, err)
		return nil
	}
	return fromSnapshot(snap)
}

// QueryByField returns the first document whose field equals value.
func (s *Store) QueryByField(ctx context.Context, collection, field string, value interface{}) Document {
	if !s.Enabled() {
		return nil
	}
	iter := s.Client.Collection(collection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	if err != nil {
		s.fail("query", collection, err)
		return nil
	}
	return fromSnapshot(snap)
}

// Add inserts a document and stamps a server-assigned creation timestamp.
// Returns the new document id, or "" when the store is unavailable.
func (s *Store) Add(ctx context.Context, collection string, data map[string]interface{}) string {
	if !s.Enabled() {
		return ""
	}
	payload := make(map[string]interface{}, len(data)+1)
	for k, v := range data {
		payload[k] = v
	}
	payload["created_at"] = firestore.ServerTimestamp

	ref, _, err := s.Client.Collection(collection).Add(ctx, payload)
	if err != nil {
		s.fail("add", collection, err)
		return ""
	}
	return ref.ID
}

// Set writes a document at a caller-chosen id, e.g. a user record keyed
// by its identity-provider uid.
func (s *Store) Set(ctx context.Context, collection, id string, data map[string]interface{}) bool {
	if !s.Enabled() || id == "" {
		return false
	}
	if _, err := s.Client.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		s.fail("set", collection, err)
		return false
	}
	return true
}

func (s *Store) Update(ctx context.Context, collection, id string, data map[string]interface{}) bool {
	if !s.Enabled() || id == "" {
		return false
	}
	if _, err := s.Client.Collection(collection).Doc(id).Set(ctx, data, firestore.MergeAll); err != nil {
		s.fail("update", collection, err)
		return false
	}
	return true
}

func (s *Store) Delete(ctx context.Context, collection, id string) bool {
	if !s.Enabled() || id == "" {
		return false
	}
	if _, err := s.Client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		s.fail("delete", collection, err)
		return false
	}
	return true
}

// Ping checks reachability without touching user data. Used by the
// periodic health probe to clear the breaker early when the store
// recovers.
func (s *Store) Ping(ctx context.Context) error {
	if s.Client == nil {
		return errNoClient
	}
	iter := s.Client.Collections(ctx)
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func fromSnapshot(snap *firestore.DocumentSnapshot) Document {
	doc := Document(snap.Data())
	if doc == nil {
		doc = Document{}
	}
	doc["id"] = snap.Ref.ID
	return doc
}
