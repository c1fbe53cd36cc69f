package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/adaptive-monetization/go-engine/internal/replay"
)

// #region main
func main() {
	verify := flag.Bool("verify", false, "fail when results differ from the fixture's expected_results")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-verify] <fixture.json>\n", os.Args[0])
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to load fixture: %v", err)
	}

	if fixture.Description != "" {
		fmt.Printf("Replaying: %s\n", fixture.Description)
	}
	fmt.Printf("Strategies: %d | Interactions: %d\n\n", len(fixture.Registry), len(fixture.Interactions))

	results, err := replay.Run(context.Background(), fixture, nil)
	if err != nil {
		log.Fatalf("replay failed: %v", err)
	}

	for _, r := range results {
		marker := " "
		if r.Outcome.Degraded() {
			marker = "!"
		}
		fmt.Printf("%s %-12s action=%-20s reward=%8.4f\n",
			marker, r.InteractionID, r.Outcome.Action, r.Outcome.Reward)
	}

	s := replay.Summarize(results)
	fmt.Printf("\nTotal: %d | Successes: %d | Degraded: %d | Total reward: %.4f\n",
		s.Total, s.Successes, s.Degraded, s.TotalReward)
	for action, n := range s.ByAction {
		fmt.Printf("  %-20s %d\n", action, n)
	}

	if *verify {
		mismatches := replay.Verify(fixture, results)
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "mismatch: %s\n", m)
		}
		if len(mismatches) > 0 {
			os.Exit(1)
		}
		fmt.Println("\nAll expected results matched.")
	}
}

// #endregion
