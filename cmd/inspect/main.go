package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/orchestrator"
)

// #region main
func main() {
	dbPath := flag.String("db", envOr("ENGINE_DB", "monetization.db"), "path to the engine SQLite database")
	limit := flag.Int("limit", 20, "number of recent outcomes to show")
	flag.Parse()

	db, err := sql.Open("sqlite", *dbPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	mem, err := orchestrator.NewOutcomeMemory(db)
	if err != nil {
		log.Fatalf("failed to open outcome memory: %v", err)
	}

	fmt.Printf("=== Recent outcomes (%s) ===\n", *dbPath)
	recs, err := mem.RecentOutcomes(*limit)
	if err != nil {
		log.Fatalf("failed to read outcomes: %v", err)
	}
	if len(recs) == 0 {
		fmt.Println("(none)")
	}
	for _, rec := range recs {
		marker := " "
		if rec.Degraded {
			marker = "!"
		}
		fmt.Printf("%s %s  ctx=%-12s action=%-20s reward=%8.4f  %s\n",
			marker, rec.CreatedAt.Format("2006-01-02 15:04:05"),
			rec.Context, rec.Action, rec.Reward, rec.InteractionID)
	}

	fmt.Println("\n=== Best action per context ===")
	contexts, err := distinctContexts(db)
	if err != nil {
		log.Fatalf("failed to list contexts: %v", err)
	}
	if len(contexts) == 0 {
		fmt.Println("(none)")
	}
	for _, c := range contexts {
		action, score, err := mem.BestAction(c)
		if err != nil {
			log.Printf("best action for %q: %v", c, err)
			continue
		}
		if action == "" {
			fmt.Printf("%-12s (insufficient samples)\n", c)
			continue
		}
		fmt.Printf("%-12s action=%-20s weighted_reward=%.4f\n", c, action, score)
	}
}

// #endregion

// #region helpers

func distinctContexts(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT context FROM outcome_log ORDER BY context`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contexts []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		contexts = append(contexts, c)
	}
	return contexts, rows.Err()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
