package media

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mediabox/service/internal/storage"
)

// memStore is an in-memory storage.Storage.
type memStore struct {
	mu      sync.Mutex
	objects map[string]storage.Object
	data    map[string][]byte

	uploadErr error
	listErr   error
	signErr   error
	uploads   int
	signTTLs  []time.Duration
}

func newMemStore() *memStore {
	return &memStore{
		objects: make(map[string]storage.Object),
		data:    make(map[string][]byte),
	}
}

func (m *memStore) Upload(_ context.Context, key string, reader io.Reader, size int64, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads++
	if m.uploadErr != nil {
		return m.uploadErr
	}

	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	m.data[key] = b
	m.objects[key] = storage.Object{
		Key:         key,
		Size:        int64(len(b)),
		ContentType: contentType,
		Created:     now,
		Updated:     now,
	}
	return nil
}

func (m *memStore) List(_ context.Context, prefix string) ([]storage.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []storage.Object
	for key, obj := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, obj)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *memStore) SignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.signErr != nil {
		return "", m.signErr
	}
	m.signTTLs = append(m.signTTLs, expiry)
	return "https://storage.test/media/" + key + "?X-Amz-Expires=" + expiry.String(), nil
}

var _ storage.Storage = (*memStore)(nil)
