package Repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Sanle/DocStore"
	"Sanle/Models"
)

// fakeStore is an in-memory DocumentStore for tests. With enabled=false
// it behaves like the degraded cloud store: reads return nil, writes
// report failure.
type fakeStore struct {
	enabled     bool
	collections map[string]map[string]DocStore.Document
	nextID      int
}

func newFakeStore(enabled bool) *fakeStore {
	return &fakeStore{
		enabled:     enabled,
		collections: make(map[string]map[string]DocStore.Document),
	}
}

func (f *fakeStore) collection(name string) map[string]DocStore.Document {
	if f.collections[name] == nil {
		f.collections[name] = make(map[string]DocStore.Document)
	}
	return f.collections[name]
}

// seed inserts a document regardless of the enabled flag, mimicking data
// written by another client before the outage.
func (f *fakeStore) seed(collection, id string, data map[string]interface{}) {
	doc := DocStore.Document{"id": id}
	for k, v := range data {
		doc[k] = v
	}
	f.collection(collection)[id] = doc
}

func (f *fakeStore) Enabled() bool { return f.enabled }

func (f *fakeStore) GetAll(_ context.Context, collection string) []DocStore.Document {
	if !f.enabled {
		return nil
	}
	var docs []DocStore.Document
	for _, d := range f.collection(collection) {
		docs = append(docs, d)
	}
	return docs
}

func (f *fakeStore) GetOne(_ context.Context, collection, id string) DocStore.Document {
	if !f.enabled || id == "" {
		return nil
	}
	return f.collection(collection)[id]
}

func (f *fakeStore) QueryByField(_ context.Context, collection, field string, value interface{}) DocStore.Document {
	if !f.enabled {
		return nil
	}
	for _, d := range f.collection(collection) {
		if d[field] == value {
			return d
		}
	}
	return nil
}

func (f *fakeStore) Add(_ context.Context, collection string, data map[string]interface{}) string {
	if !f.enabled {
		return ""
	}
	f.nextID++
	id := fmt.Sprintf("doc-%d", f.nextID)
	doc := DocStore.Document{"id": id}
	for k, v := range data {
		doc[k] = v
	}
	f.collection(collection)[id] = doc
	return id
}

func (f *fakeStore) Set(_ context.Context, collection, id string, data map[string]interface{}) bool {
	if !f.enabled || id == "" {
		return false
	}
	doc := DocStore.Document{"id": id}
	for k, v := range data {
		doc[k] = v
	}
	f.collection(collection)[id] = doc
	return true
}

func (f *fakeStore) Update(_ context.Context, collection, id string, data map[string]interface{}) bool {
	if !f.enabled || id == "" {
		return false
	}
	doc, ok := f.collection(collection)[id]
	if !ok {
		return false
	}
	for k, v := range data {
		doc[k] = v
	}
	return true
}

func (f *fakeStore) Delete(_ context.Context, collection, id string) bool {
	if !f.enabled || id == "" {
		return false
	}
	if _, ok := f.collection(collection)[id]; !ok {
		return false
	}
	delete(f.collection(collection), id)
	return true
}

func (f *fakeStore) Ping(context.Context) error {
	if !f.enabled {
		return fmt.Errorf("store offline")
	}
	return nil
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Models.Setup(db))
	return db
}

func newTestCoordinator(t *testing.T, docs DocStore.DocumentStore) *Coordinator {
	t.Helper()
	return NewCoordinator(newTestDB(t), docs)
}
