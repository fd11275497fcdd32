package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/chunker"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/config"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/embedding"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/extractor"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/helper"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/ingest"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/llmservice"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/ocr"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/rag"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/report"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/reranker"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/retriever"
	"github.com/RAGUL-49/RAG-DOCUMENT-INTELLIGENCE/internal/vectorstore"
)

const defaultConfigPath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment as-is")
	}

	configPath := flag.String("config", defaultConfigPath, "Path to the YAML config file")
	filePath := flag.String("file", "", "Path to the document file to ingest")
	query := flag.String("query", "", "Question to answer against the indexed documents")
	chat := flag.Bool("chat", false, "Start an interactive chat session")
	clear := flag.Bool("clear", false, "Clear the vector index before doing anything else")
	dryRun := flag.Bool("dry-run", false, "Extract and chunk only, do not embed or store")
	chunksOut := flag.String("chunks-out", "", "Write extracted chunks as JSON to this path")
	transcript := flag.String("transcript", "", "Write the chat transcript as HTML to this path")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	log.Debug().Interface("config", cfg).Msg("Loaded config")

	ctx := context.Background()

	if *dryRun && *filePath != "" {
		runDryRun(*filePath, *chunksOut, cfg)
		return
	}

	store, chromemIndex := openStore(ctx, cfg)

	if *clear {
		if err := store.Clear(ctx); err != nil {
			log.Fatal().Err(err).Msg("Error clearing index")
		}
		log.Info().Msg("Cleared vector index")
	}

	if *filePath != "" {
		ingestFile(ctx, *filePath, *chunksOut, cfg, store)
		// An in-memory collection vanishes on exit; snapshot it when an
		// encryption key is configured.
		if chromemIndex != nil && cfg.RAG.InMemory && cfg.RAG.EncryptionKey != "" {
			if err := chromemIndex.Export(ctx); err != nil {
				log.Error().Err(err).Msg("Error exporting collection")
			}
		}
	}

	switch {
	case *chat:
		runChat(ctx, cfg, store, *filePath, *transcript)
	case *query != "":
		runQuery(ctx, cfg, store, *query)
	case *filePath == "" && !*clear:
		log.Fatal().Msg("Provide -file to ingest a document, -query to ask a question, or -chat for an interactive session")
	}
}

// openStore wires the embedder to the configured index backend. The second
// return value is non-nil only for the chromem backend, which supports
// export/import snapshots.
func openStore(ctx context.Context, cfg *config.Config) (*vectorstore.Store, *vectorstore.ChromemIndex) {
	embedder, err := embedding.NewEmbedder(&cfg.EmbedLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	if cfg.RAG.VectorBackend == "postgres" {
		index, err := vectorstore.NewPostgresIndex(ctx, &cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("Error opening vector index")
		}
		return vectorstore.NewStore(index, embedder), nil
	}

	index, err := vectorstore.NewChromemIndex(cfg.RAG.DBPath, cfg.RAG.Collection, cfg.RAG.InMemory, cfg.RAG.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening vector index")
	}
	// A fresh in-memory collection can be seeded from a prior snapshot.
	if cfg.RAG.InMemory && cfg.RAG.EncryptionKey != "" {
		if err := index.Import(ctx); err != nil {
			log.Debug().Err(err).Msg("No collection snapshot restored")
		}
	}
	return vectorstore.NewStore(index, embedder), index
}

// newPipeline builds the extraction pipeline. OCR is optional; without
// Tesseract the image extractor simply contributes no chunks. The returned
// func releases the OCR session and must be called after processing.
func newPipeline(cfg *config.Config) (*ingest.Pipeline, func()) {
	cleanup := func() {}
	var recognizer extractor.Recognizer
	if client, err := ocr.New(); err != nil {
		log.Warn().Err(err).Msg("OCR unavailable, skipping image text extraction")
	} else {
		recognizer = client
		cleanup = func() {
			if err := client.Close(); err != nil {
				log.Warn().Err(err).Msg("Error closing OCR client")
			}
		}
	}

	return ingest.NewPipeline(
		extractor.NewTextExtractor(),
		extractor.NewTableExtractor(),
		extractor.NewImageOCRExtractor(recognizer),
		extractor.NewChartMetadataExtractor(),
		chunker.New(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap),
	), cleanup
}

func runDryRun(filePath, chunksOut string, cfg *config.Config) {
	pipeline, closeOCR := newPipeline(cfg)
	defer closeOCR()

	chunks := pipeline.ProcessDocument(filePath)
	log.Info().Int("chunks", len(chunks)).Str("file", filePath).Msg("Extraction complete")
	if chunksOut != "" {
		if err := ingest.SaveChunks(chunks, chunksOut); err != nil {
			log.Fatal().Err(err).Msg("Error saving chunks")
		}
		return
	}
	helper.PrettyPrint(chunks)
}

func ingestFile(ctx context.Context, filePath, chunksOut string, cfg *config.Config, store *vectorstore.Store) {
	pipeline, closeOCR := newPipeline(cfg)
	defer closeOCR()

	chunks := pipeline.ProcessDocument(filePath)
	log.Info().Int("chunks", len(chunks)).Str("file", filePath).Msg("Extraction complete")

	if chunksOut != "" {
		if err := ingest.SaveChunks(chunks, chunksOut); err != nil {
			log.Error().Err(err).Msg("Error saving chunks")
		}
	}

	if err := store.AddChunks(ctx, chunks); err != nil {
		log.Fatal().Err(err).Msg("Error storing chunks")
	}
	log.Info().Msg("Document indexed")
}

// newEngine wires retrieval, optional reranking and the inference model.
func newEngine(cfg *config.Config, store *vectorstore.Store) *rag.Engine {
	llm, err := llmservice.NewClient(&cfg.InferenceLLM)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing LLM client")
	}

	var ranker rag.Reranker
	if cfg.Reranker.Enabled {
		ranker = reranker.New(reranker.NewCrossEncoderClient(&cfg.Reranker), cfg.RAG.RerankTopK)
	}

	return rag.New(retriever.New(store, cfg.RAG.TopK), ranker, llm)
}

func runQuery(ctx context.Context, cfg *config.Config, store *vectorstore.Store, query string) {
	engine := newEngine(cfg, store)

	response, err := engine.Query(ctx, query)
	if err != nil {
		log.Fatal().Err(err).Msg("Error querying")
	}

	printAnswer(query, response)
}

func printAnswer(query string, response *rag.Response) {
	log.Info().Msg("Query: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", query)

	log.Info().Msg("Assistant: ~~~~~~~~~~~~~~~~~~~~~~~~~>>>>>")
	fmt.Printf("%s\n\n", response.Parsed.Answer)
	fmt.Printf("Confidence: %s\n", response.Parsed.Confidence)
	fmt.Printf("Citations: %s\n\n", response.Parsed.Citations)
}

// runChat loops on stdin. Questions are refused until a document has
// been indexed in this session; "/load <path>" ingests a new document
// and resets the conversation.
func runChat(ctx context.Context, cfg *config.Config, store *vectorstore.Store, initialFile, transcriptPath string) {
	engine := newEngine(cfg, store)

	documentLoaded := initialFile != ""
	session := report.NewTranscript(initialFile)

	fmt.Println("Commands: /load <path> to index a document, /quit to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}
		if path, ok := strings.CutPrefix(line, "/load "); ok {
			path = strings.TrimSpace(path)
			ingestFile(ctx, path, "", cfg, store)
			documentLoaded = true
			session = report.NewTranscript(path)
			fmt.Println("Document loaded. Conversation reset.")
			continue
		}
		if !documentLoaded {
			fmt.Println("No document loaded yet. Use /load <path> first.")
			continue
		}

		response, err := engine.Query(ctx, line)
		if err != nil {
			// Model failures show up in the conversation instead of
			// killing the session.
			fmt.Printf("Error: %v\n\n", err)
			continue
		}
		printAnswer(line, response)
		session.Add(line, response.Parsed)
	}

	if transcriptPath != "" && len(session.Entries) > 0 {
		if err := session.WriteHTML(transcriptPath); err != nil {
			log.Error().Err(err).Msg("Error writing transcript")
		} else {
			log.Info().Str("path", transcriptPath).Msg("Transcript written")
		}
	}
}
