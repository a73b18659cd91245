package main

import (
	"errors"
	"fmt"

	"github.com/kotaroooo0/eojeol"
	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("no database configured (set db in the config file)")

// NewIndexCmd creates the index command.
func NewIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [document...]",
		Short: "Store documents and their morphemes in MySQL",
		Long: `Index tags every document and stores it together with its morphemes, so
that documents can later be found by morpheme with the search command.

Particles, endings and symbols are not indexed. Foreign words are
lowercased and stemmed.`,
		RunE: runIndexCmd,
	}
	cmd.Flags().Bool("nouns", false, "Index nouns only")
	return cmd
}

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find indexed documents matching a query",
		Long: `Search tags the query the same way documents are indexed and returns the
matching documents ranked by TF-IDF.

Examples:
  # Documents containing every morpheme of the query
  eojeol search "국민 정치"

  # Documents containing the morphemes in the same order
  eojeol search --phrase "국민을 위한"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearchCmd,
	}
	cmd.Flags().Bool("phrase", false, "Match the query as a phrase")
	cmd.Flags().Bool("or", false, "Match documents containing any morpheme of the query")
	cmd.Flags().Bool("nouns", false, "Query nouns only")
	return cmd
}

func newStorage(cfg *eojeol.Config) (*eojeol.StorageRdbImpl, error) {
	if cfg.DB == nil {
		return nil, errNoDatabase
	}
	db, err := eojeol.NewDBClient(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	storage := eojeol.NewStorageRdbImpl(db)
	if err := storage.CreateTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return storage, nil
}

func indexFilters(nounsOnly bool) []eojeol.TokenFilter {
	filters := []eojeol.TokenFilter{
		eojeol.NewStopTagFilter("J", "E", "S"),
		eojeol.NewLowercaseFilter(),
		eojeol.NewStemmerFilter(),
	}
	if nounsOnly {
		filters = append([]eojeol.TokenFilter{eojeol.NewNounFilter()}, filters...)
	}
	return filters
}

func runIndexCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	documents, err := readPhrases(cmd, args)
	if err != nil {
		return err
	}
	storage, err := newStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	tagger, err := cfg.NewTagger(eojeol.WithLogger(logger))
	if err != nil {
		return err
	}
	defer tagger.Close()

	nounsOnly, _ := cmd.Flags().GetBool("nouns")
	indexer := eojeol.NewIndexer(storage, tagger, indexFilters(nounsOnly)...)

	ids := make([]eojeol.DocumentID, 0, len(documents))
	for _, body := range documents {
		id, err := indexer.AddDocument(eojeol.NewDocument(body))
		if err != nil {
			return fmt.Errorf("failed to index %q: %w", body, err)
		}
		logger.Debug("indexed document", "id", id)
		ids = append(ids, id)
	}
	return writeJSON(cmd, ids)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := setupLogger(cmd)

	storage, err := newStorage(cfg)
	if err != nil {
		return err
	}
	defer storage.DB.Close()

	tagger, err := cfg.NewTagger(eojeol.WithLogger(logger))
	if err != nil {
		return err
	}
	defer tagger.Close()

	nounsOnly, _ := cmd.Flags().GetBool("nouns")
	morphemes, err := eojeol.NewIndexer(storage, tagger, indexFilters(nounsOnly)...).Analyze(args[0])
	if err != nil {
		return err
	}
	logger.Debug("search query", "morphemes", len(morphemes))

	query := newQuery(cmd, morphemes, eojeol.NewTfIdfSorter(storage))
	docs, err := query.Searcher(storage).Search()
	if err != nil {
		return err
	}
	return writeJSON(cmd, docs)
}

func newQuery(cmd *cobra.Command, morphemes []eojeol.IndexedMorpheme, sorter eojeol.Sorter) eojeol.Query {
	if phrase, _ := cmd.Flags().GetBool("phrase"); phrase {
		return eojeol.NewPhraseQuery(morphemes, sorter)
	}
	logic := eojeol.AND
	if or, _ := cmd.Flags().GetBool("or"); or {
		logic = eojeol.OR
	}
	return eojeol.NewMatchQuery(morphemes, logic, sorter)
}
