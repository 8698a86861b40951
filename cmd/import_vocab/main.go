// cmd/import_vocab/main.go
//
// Excel / CSV の単語リストを学習者の単語帳に取り込みます。
//
//	go run ./cmd/import_vocab --learner alice --file words.xlsx
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"ssat_prep/internal/config"
	"ssat_prep/internal/logging"
	"ssat_prep/internal/model"
	"ssat_prep/internal/repository"
	"ssat_prep/internal/service"
	"ssat_prep/internal/vocabimport"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run は取り込みを実行し、終了コードを返します。
func run(args []string) int {
	fs := pflag.NewFlagSet("import_vocab", pflag.ContinueOnError)
	defaults := vocabimport.DefaultImportConfig()

	configPath := fs.StringP("config", "c", "configs", "directory containing config.yaml")
	learner := fs.StringP("learner", "l", "", "learner name or ID (required)")
	file := fs.StringP("file", "f", "", "path to .xlsx or .csv file (required)")
	sheet := fs.String("sheet", "", "sheet name (default: first sheet)")
	termCol := fs.String("term-col", defaults.TermColumn, "column holding the term")
	defCol := fs.String("definition-col", defaults.DefinitionColumn, "column holding the definition")
	posCol := fs.String("pos-col", defaults.PartOfSpeechColumn, "column holding the part of speech (empty to skip)")
	exampleCol := fs.String("example-col", defaults.ExampleColumn, "column holding the example sentence (empty to skip)")
	startRow := fs.Int("start-row", defaults.StartRow, "first data row (1-based)")
	dryRun := fs.Bool("dry-run", false, "validate the file without writing to the database")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *learner == "" || *file == "" {
		fmt.Fprintln(os.Stderr, "--learner and --file are required")
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		return 1
	}
	logger := logging.New(cfg.Log)

	importCfg := vocabimport.ImportConfig{
		FilePath:           *file,
		SheetName:          *sheet,
		TermColumn:         *termCol,
		DefinitionColumn:   *defCol,
		PartOfSpeechColumn: *posCol,
		ExampleColumn:      *exampleCol,
		StartRow:           *startRow,
	}
	entries, rowErrs, err := vocabimport.ReadFile(importCfg)
	if err != nil {
		logger.Error("Failed to read vocabulary file", slog.String("file", *file), slog.Any("error", err))
		return 1
	}
	for _, re := range rowErrs {
		logger.Warn("Invalid row", slog.Int("row", re.Row), slog.Any("error", re.Err))
	}
	logger.Info("Vocabulary file read", slog.Int("entries", len(entries)), slog.Int("invalid_rows", len(rowErrs)))
	if *dryRun {
		return 0
	}

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		return 1
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return 1
	}
	defer sqlDB.Close()

	ctx := context.Background()
	learners := service.NewLearnerService(db, repository.NewGormLearnerRepository())
	words := service.NewWordService(db, repository.NewGormWordRepository(), repository.NewGormReviewItemRepository())

	target, err := resolveLearner(ctx, learners, *learner)
	if err != nil {
		logger.Error("Learner not found", slog.String("learner", *learner), slog.Any("error", err))
		return 1
	}

	res, err := vocabimport.Import(ctx, words, target.LearnerID, entries)
	if err != nil {
		logger.Error("Import aborted", slog.Any("error", err))
	}
	if res != nil {
		for _, re := range res.Errors {
			logger.Warn("Row rejected", slog.Int("row", re.Row), slog.Any("error", re.Err))
		}
		fmt.Printf("learner=%s read=%d created=%d skipped=%d rejected=%d\n",
			target.Name, res.Read, res.Created, res.Skipped, len(res.Errors)+len(rowErrs))
	}
	if err != nil {
		return 1
	}
	return 0
}

// resolveLearner は UUID として解釈できればIDで、そうでなければ名前で学習者を探します。
func resolveLearner(ctx context.Context, learners service.LearnerService, key string) (*model.Learner, error) {
	if id, err := uuid.Parse(key); err == nil {
		l, err := learners.GetLearner(ctx, id)
		if err == nil || !errors.Is(err, model.ErrNotFound) {
			return l, err
		}
	}
	return learners.GetLearnerByName(ctx, key)
}
