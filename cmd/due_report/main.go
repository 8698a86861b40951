// cmd/due_report/main.go
//
// 学習者ごとの復習待ち件数を PostgreSQL から直接集計して表示します。
// API サーバーを経由せずに運用中のDBを確認する用途です。
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"ssat_prep/internal/config"
	"ssat_prep/internal/logging"

	_ "github.com/lib/pq" // PostgreSQL ドライバ
	"github.com/spf13/pflag"
)

// 新規 = 復習履歴がない or 一度も回答していない
// 期限到来 = 回答済み・覚えた以外・次回復習日時を過ぎている
const dueReportQuery = `
SELECT l.learner_id, l.name,
       COUNT(w.word_id) AS words,
       COUNT(w.word_id) FILTER (WHERE r.review_item_id IS NULL OR r.times_seen = 0) AS new_words,
       COUNT(r.review_item_id) FILTER (WHERE r.times_seen > 0 AND NOT r.is_mastered AND r.next_review_at <= $1) AS due,
       COUNT(r.review_item_id) FILTER (WHERE r.is_mastered) AS mastered
  FROM learners l
  LEFT JOIN words w ON w.learner_id = l.learner_id AND w.deleted_at IS NULL
  LEFT JOIN review_items r ON r.word_id = w.word_id AND r.learner_id = l.learner_id
 WHERE l.deleted_at IS NULL
 GROUP BY l.learner_id, l.name
 ORDER BY due DESC, new_words DESC, l.name`

type dueRow struct {
	LearnerID string
	Name      string
	Words     int
	New       int
	Due       int
	Mastered  int
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run はレポートを出力し、終了コードを返します。
func run(args []string) int {
	fs := pflag.NewFlagSet("due_report", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", "configs", "directory containing config.yaml")
	at := fs.String("at", "", "report time in RFC3339 (default: now)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		return 1
	}
	logger := logging.New(cfg.Log)

	if cfg.Database.Driver != "postgres" {
		logger.Error("due_report supports postgres only", slog.String("driver", cfg.Database.Driver))
		return 1
	}

	now := time.Now().UTC()
	if *at != "" {
		now, err = time.Parse(time.RFC3339, *at)
		if err != nil {
			logger.Error("Invalid --at value", slog.String("at", *at), slog.Any("error", err))
			return 2
		}
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to open database", slog.Any("error", err))
		return 1
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		return 1
	}

	rows, err := fetchDueReport(ctx, db, now)
	if err != nil {
		logger.Error("Failed to build due report", slog.Any("error", err))
		return 1
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "LEARNER\tNAME\tWORDS\tNEW\tDUE\tMASTERED\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\n", r.LearnerID, r.Name, r.Words, r.New, r.Due, r.Mastered)
	}
	tw.Flush()
	logger.Info("Due report generated", slog.Int("learners", len(rows)), slog.Time("at", now))
	return 0
}

func fetchDueReport(ctx context.Context, db *sql.DB, now time.Time) ([]dueRow, error) {
	rows, err := db.QueryContext(ctx, dueReportQuery, now)
	if err != nil {
		return nil, fmt.Errorf("query due report: %w", err)
	}
	defer rows.Close()

	var out []dueRow
	for rows.Next() {
		var r dueRow
		if err := rows.Scan(&r.LearnerID, &r.Name, &r.Words, &r.New, &r.Due, &r.Mastered); err != nil {
			return nil, fmt.Errorf("scan due report row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due report rows: %w", err)
	}
	return out, nil
}
