// Package vocabimport は Excel / CSV の単語リストを学習者の単語帳に取り込みます。
package vocabimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ssat_prep/internal/model"
	"ssat_prep/internal/webutil"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ImportConfig は読み込む列の位置などの設定です。列は Excel の列名 (A, B, ...) で指定します。
type ImportConfig struct {
	FilePath           string
	SheetName          string // 空なら先頭のシート
	TermColumn         string
	DefinitionColumn   string
	PartOfSpeechColumn string // 空なら読まない
	ExampleColumn      string // 空なら読まない
	StartRow           int    // 1始まり
}

func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		TermColumn:         "A",
		DefinitionColumn:   "B",
		PartOfSpeechColumn: "C",
		ExampleColumn:      "D",
		StartRow:           2,
	}
}

// Entry は1行分の単語です。
type Entry struct {
	Row int
	Req model.PostWordRequest
}

// RowError は取り込めなかった行です。
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

type columnIndex struct {
	term, definition, partOfSpeech, example int
}

func (c ImportConfig) columns() (columnIndex, error) {
	idx := columnIndex{partOfSpeech: -1, example: -1}
	var err error
	if idx.term, err = columnNumber(c.TermColumn); err != nil {
		return idx, err
	}
	if idx.definition, err = columnNumber(c.DefinitionColumn); err != nil {
		return idx, err
	}
	if c.PartOfSpeechColumn != "" {
		if idx.partOfSpeech, err = columnNumber(c.PartOfSpeechColumn); err != nil {
			return idx, err
		}
	}
	if c.ExampleColumn != "" {
		if idx.example, err = columnNumber(c.ExampleColumn); err != nil {
			return idx, err
		}
	}
	return idx, nil
}

// columnNumber は列名を0始まりのインデックスにします。
func columnNumber(name string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(name))
	if err != nil {
		return 0, fmt.Errorf("vocabimport: invalid column %q: %w", name, err)
	}
	return n - 1, nil
}

// ReadFile は拡張子で形式を判定してファイルを読みます。.csv 以外は Excel として扱います。
// 不正な行は RowError として返し、読み込み自体は続けます。
func ReadFile(cfg ImportConfig) ([]Entry, []RowError, error) {
	cols, err := cfg.columns()
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	if strings.EqualFold(filepath.Ext(cfg.FilePath), ".csv") {
		rows, err = readCSV(cfg.FilePath)
	} else {
		rows, err = readExcel(cfg.FilePath, cfg.SheetName)
	}
	if err != nil {
		return nil, nil, err
	}

	startRow := cfg.StartRow
	if startRow < 1 {
		startRow = 1
	}

	var entries []Entry
	var rowErrs []RowError
	for i, row := range rows {
		rowNum := i + 1
		if rowNum < startRow || isBlank(row) {
			continue
		}
		req := model.PostWordRequest{
			Term:            cell(row, cols.term),
			Definition:      cell(row, cols.definition),
			PartOfSpeech:    strings.ToLower(cell(row, cols.partOfSpeech)),
			ExampleSentence: cell(row, cols.example),
		}
		if err := webutil.ValidateStruct(req); err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: err})
			continue
		}
		entries = append(entries, Entry{Row: rowNum, Req: req})
	}
	return entries, rowErrs, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabimport: open excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("vocabimport: read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocabimport: open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("vocabimport: read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WordCreator は取り込み先です。service.WordService が満たします。
type WordCreator interface {
	PostWord(ctx context.Context, learnerID uuid.UUID, req *model.PostWordRequest) (*model.Word, error)
}

// Result は取り込み結果の集計です。
type Result struct {
	Read    int
	Created int
	Skipped int // 登録済みの綴り
	Errors  []RowError
}

// Import は読み込んだ単語を順に登録します。登録済みの綴りは飛ばします。
// DBエラーなど続行できないエラーでは中断します。
func Import(ctx context.Context, words WordCreator, learnerID uuid.UUID, entries []Entry) (*Result, error) {
	res := &Result{Read: len(entries)}
	for _, e := range entries {
		req := e.Req
		_, err := words.PostWord(ctx, learnerID, &req)
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, model.ErrConflict):
			res.Skipped++
		case errors.Is(err, model.ErrInvalidInput):
			res.Errors = append(res.Errors, RowError{Row: e.Row, Err: err})
		default:
			return res, fmt.Errorf("vocabimport: row %d: %w", e.Row, err)
		}
	}
	return res, nil
}
