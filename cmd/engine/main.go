package main

import (
	"bufio"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/config"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/emotion"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/logging"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/orchestrator"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/policy"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/provider"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/risk"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/state"
	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/strategy"
)

// #region main
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		log.Fatalf("pragma: %v", err)
	}
	if err := logging.InitSchema(db); err != nil {
		log.Fatalf("failed to init interaction log: %v", err)
	}

	mem, err := orchestrator.NewOutcomeMemory(db)
	if err != nil {
		log.Fatalf("failed to init outcome memory: %v", err)
	}

	// Providers: the model service over gRPC, or the builtin
	// heuristics with MODEL_ADDR=local.
	var analyzer strategy.EmotionAnalyzer
	var pol strategy.PolicyProvider
	if cfg.ModelAddr == "local" {
		analyzer = emotion.NewAnalyzer()
		pol = policy.NewLocalPolicy(mem)
	} else {
		client, err := provider.NewModelClient(cfg.ModelAddr)
		if err != nil {
			log.Fatalf("failed to connect to model service at %s: %v", cfg.ModelAddr, err)
		}
		defer client.Close()
		analyzer = client
		pol = client
	}

	var assessor orchestrator.RiskAssessor
	if cfg.RiskGate {
		assessor = risk.NewGate(risk.DefaultGateConfig())
	}

	orch := orchestrator.New(mem, assessor)
	orch.SetStrict(cfg.Strict)
	orch.SetContext(cfg.Context)

	reg, err := config.LoadRegistry(cfg.RegistryPath)
	if err != nil {
		log.Fatalf("failed to load registry: %v", err)
	}
	for _, spec := range reg.Strategies {
		seed := make(map[string]any, len(spec.Seed)+1)
		for k, v := range spec.Seed {
			seed[k] = v
		}
		seed[state.ContextKey] = spec.Context

		s := strategy.New(state.New(seed), analyzer, pol)
		s.SetStrict(spec.Strict)
		orch.Register(spec.Context, s)
	}

	fmt.Println("Adaptive Monetization Engine ready.")
	fmt.Printf("  DB: %s | Model: %s | Context: %s | Strategies: %d\n",
		cfg.DBPath, cfg.ModelAddr, orch.CurrentContext(), len(reg.Strategies))
	fmt.Println("One JSON user-data object per line ('context <name>' to switch, 'quit' to exit):")

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
		if line == "quit" || line == "exit" {
			break
		}
		if name, ok := strings.CutPrefix(line, "context "); ok {
			orch.SetContext(strings.TrimSpace(name))
			fmt.Printf("context → %s\n", orch.CurrentContext())
			continue
		}

		var userData map[string]any
		if err := json.Unmarshal([]byte(line), &userData); err != nil {
			log.Printf("bad input: %v", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.CallTimeout)
		outcome, err := orch.ProcessInteraction(ctx, userData)
		cancel()
		if err != nil {
			log.Printf("interaction error: %v", err)
			continue
		}

		decision := "success"
		if outcome.Degraded() {
			decision = "degraded"
		}
		fmt.Printf("[%s] action=%s reward=%.4f at=%s\n",
			decision, outcome.Action, outcome.Reward, outcome.Timestamp)

		outcomeJSON, _ := json.Marshal(outcome)
		userDataJSON, _ := json.Marshal(userData)
		err = logging.LogInteraction(db, logging.InteractionEntry{
			InteractionID: uuid.New().String(),
			Context:       orch.CurrentContext(),
			Decision:      decision,
			OutcomeJSON:   string(outcomeJSON),
			UserDataJSON:  string(userDataJSON),
		})
		if err != nil {
			log.Printf("logging error: %v", err)
		}
	}
}

// #endregion
