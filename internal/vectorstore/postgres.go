package vectorstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/config"
)

// StoredChunk is the pgvector-backed record row. Metadata fields are plain
// scalar columns so they survive the round trip without nesting.
type StoredChunk struct {
	bun.BaseModel `bun:"table:chunks,alias:c"`

	ID         string    `bun:"id,pk"`
	Content    string    `bun:"content,notnull"`
	Embedding  []float32 `bun:"embedding,notnull"`
	Type       string    `bun:"type,notnull"`
	Page       int       `bun:"page"`
	Source     string    `bun:"source"`
	ChunkIndex int       `bun:"chunk_index"`
	TableIndex int       `bun:"table_index"`
	ImageIndex int       `bun:"image_index"`
	Title      string    `bun:"title"`
	Section    string    `bun:"section"`
}

type scoredChunk struct {
	StoredChunk
	Distance float32 `bun:"distance,scanonly"`
}

// PostgresIndex stores records in Postgres with the pgvector extension.
type PostgresIndex struct {
	db *bun.DB
}

func NewPostgresIndex(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresIndex, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN),
		pgdriver.WithPassword(cfg.Password),
	))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	idx := &PostgresIndex{db: db}
	if err := idx.init(ctx, cfg.VectorSize); err != nil {
		return nil, err
	}
	return idx, nil
}

func (p *PostgresIndex) init(ctx context.Context, vectorSize int) error {
	if _, err := p.db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("create vector extension: %w", err)
	}
	if _, err := p.db.ExecContext(ctx, chunksTableDDL(vectorSize)); err != nil {
		return fmt.Errorf("create chunks table: %w", err)
	}
	return nil
}

// chunksTableDDL builds the table definition with the configured embedding
// dimension; bun's model-derived DDL cannot parameterize the vector size.
func chunksTableDDL(vectorSize int) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
	id text PRIMARY KEY,
	content text NOT NULL,
	embedding vector(%d) NOT NULL,
	type text NOT NULL,
	page integer,
	source text,
	chunk_index integer,
	table_index integer,
	image_index integer,
	title text,
	section text
)`, vectorSize)
}

func (p *PostgresIndex) Close() error {
	return p.db.Close()
}

func (p *PostgresIndex) Add(ctx context.Context, records []Record) error {
	rows := make([]StoredChunk, 0, len(records))
	for _, rec := range records {
		rows = append(rows, StoredChunk{
			ID:         rec.ID,
			Content:    rec.Content,
			Embedding:  rec.Embedding,
			Type:       rec.Metadata[metaType],
			Page:       atoiOrZero(rec.Metadata[metaPage]),
			Source:     rec.Metadata[metaSource],
			ChunkIndex: atoiOrZero(rec.Metadata[metaChunkIndex]),
			TableIndex: atoiOrZero(rec.Metadata[metaTableIndex]),
			ImageIndex: atoiOrZero(rec.Metadata[metaImageIndex]),
			Title:      rec.Metadata[metaTitle],
			Section:    rec.Metadata[metaSection],
		})
	}
	if _, err := p.db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		return fmt.Errorf("insert chunks: %w", err)
	}
	return nil
}

func (p *PostgresIndex) Search(ctx context.Context, embedding []float32, k int) (QueryResult, error) {
	if k <= 0 {
		return QueryResult{}, nil
	}

	vec := vectorLiteral(embedding)
	var rows []scoredChunk
	err := p.db.NewSelect().
		Model(&rows).
		ColumnExpr("c.*").
		ColumnExpr("c.embedding <-> ?::vector AS distance", vec).
		OrderExpr("c.embedding <-> ?::vector", vec).
		Limit(k).
		Scan(ctx)
	if err != nil {
		return QueryResult{}, fmt.Errorf("search chunks: %w", err)
	}

	out := QueryResult{
		IDs:       make([]string, 0, len(rows)),
		Documents: make([]string, 0, len(rows)),
		Metadatas: make([]map[string]string, 0, len(rows)),
		Distances: make([]float32, 0, len(rows)),
	}
	for _, row := range rows {
		out.IDs = append(out.IDs, row.ID)
		out.Documents = append(out.Documents, row.Content)
		out.Metadatas = append(out.Metadatas, row.metadata())
		out.Distances = append(out.Distances, row.Distance)
	}
	return out, nil
}

func (p *PostgresIndex) Clear(ctx context.Context) error {
	if _, err := p.db.NewTruncateTable().Model((*StoredChunk)(nil)).Exec(ctx); err != nil {
		return fmt.Errorf("truncate chunks: %w", err)
	}
	return nil
}

func (row *scoredChunk) metadata() map[string]string {
	md := map[string]string{
		metaType:   row.Type,
		metaPage:   fmt.Sprintf("%d", row.Page),
		metaSource: row.Source,
	}
	switch row.Type {
	case "text":
		md[metaChunkIndex] = fmt.Sprintf("%d", row.ChunkIndex)
		if row.Section != "" {
			md[metaSection] = row.Section
		}
	case "table":
		md[metaTableIndex] = fmt.Sprintf("%d", row.TableIndex)
	case "ocr":
		md[metaImageIndex] = fmt.Sprintf("%d", row.ImageIndex)
	case "chart_metadata":
		md[metaTitle] = row.Title
	}
	return md
}

// vectorLiteral renders an embedding in pgvector's input syntax.
func vectorLiteral(embedding []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(']')
	return sb.String()
}

var _ Index = (*PostgresIndex)(nil)
