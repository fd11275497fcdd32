package vectorstore

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
)

const compress = false

// ChromemIndex is the default embedded vector index, persisted on disk or
// kept purely in memory.
type ChromemIndex struct {
	db             *chromem.DB
	collection     *chromem.Collection
	dbPath         string
	collectionName string
	encryptionKey  string
}

func NewChromemIndex(dbPath, collectionName string, inMemory bool, encryptionKey string) (*ChromemIndex, error) {
	var db *chromem.DB
	var err error
	if inMemory {
		db = chromem.NewDB()
	} else {
		db, err = chromem.NewPersistentDB(dbPath, compress)
		if err != nil {
			return nil, fmt.Errorf("create vector database: %w", err)
		}
	}

	collection, err := db.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create/get collection: %w", err)
	}

	return &ChromemIndex{
		db:             db,
		collection:     collection,
		dbPath:         dbPath,
		collectionName: collectionName,
		encryptionKey:  encryptionKey,
	}, nil
}

func (m *ChromemIndex) Add(ctx context.Context, records []Record) error {
	docs := make([]chromem.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, chromem.Document{
			ID:        rec.ID,
			Content:   rec.Content,
			Metadata:  rec.Metadata,
			Embedding: rec.Embedding,
		})
	}
	if err := m.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

func (m *ChromemIndex) Search(ctx context.Context, embedding []float32, k int) (QueryResult, error) {
	// chromem rejects k larger than the collection.
	if count := m.collection.Count(); k > count {
		k = count
	}
	if k <= 0 {
		return QueryResult{}, nil
	}

	results, err := m.collection.QueryEmbedding(ctx, embedding, k, nil, nil)
	if err != nil {
		return QueryResult{}, fmt.Errorf("query by similarity: %w", err)
	}

	out := QueryResult{
		IDs:       make([]string, 0, len(results)),
		Documents: make([]string, 0, len(results)),
		Metadatas: make([]map[string]string, 0, len(results)),
		Distances: make([]float32, 0, len(results)),
	}
	for _, res := range results {
		out.IDs = append(out.IDs, res.ID)
		out.Documents = append(out.Documents, res.Content)
		out.Metadatas = append(out.Metadatas, res.Metadata)
		// chromem reports cosine similarity; store the distance.
		out.Distances = append(out.Distances, 1-res.Similarity)
	}
	return out, nil
}

func (m *ChromemIndex) Clear(ctx context.Context) error {
	if err := m.db.DeleteCollection(m.collectionName); err != nil {
		return fmt.Errorf("drop collection: %w", err)
	}
	collection, err := m.db.GetOrCreateCollection(m.collectionName, nil, nil)
	if err != nil {
		return fmt.Errorf("recreate collection: %w", err)
	}
	m.collection = collection
	return nil
}

// Export writes the collection to an encrypted file next to the database.
func (m *ChromemIndex) Export(ctx context.Context) error {
	if m.encryptionKey == "" {
		return fmt.Errorf("encryption key is required")
	}
	path := filepath.Join(m.dbPath, m.collectionName+".chromem")
	log.Debug().Str("path", path).Msg("Exporting collection")
	if err := m.db.ExportToFile(path, compress, m.encryptionKey, m.collectionName); err != nil {
		return fmt.Errorf("export database: %w", err)
	}
	return nil
}

// Import restores a previously exported collection.
func (m *ChromemIndex) Import(ctx context.Context) error {
	path := filepath.Join(m.dbPath, m.collectionName+".chromem")
	if err := m.db.ImportFromFile(path, m.encryptionKey); err != nil {
		return fmt.Errorf("import database: %w", err)
	}
	return nil
}

var _ Index = (*ChromemIndex)(nil)
