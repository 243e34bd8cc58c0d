package server

import (
	"sync"

	"github.com/google/uuid"
)

// Artifact is one rendered output held for retrieval.
type Artifact struct {
	ID          uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// artifactIndex is an in-memory artifact registry. It backs GET /artifacts
// when no store is configured, and acts as a cache in front of one.
type artifactIndex struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Artifact
}

func newArtifactIndex() *artifactIndex {
	return &artifactIndex{items: make(map[uuid.UUID]Artifact)}
}

func (idx *artifactIndex) Put(filename, contentType string, data []byte) Artifact {
	a := Artifact{
		ID:          uuid.New(),
		Filename:    filename,
		ContentType: contentType,
		Data:        data,
	}
	idx.mu.Lock()
	idx.items[a.ID] = a
	idx.mu.Unlock()
	return a
}

func (idx *artifactIndex) Get(id uuid.UUID) (Artifact, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	a, ok := idx.items[id]
	return a, ok
}
