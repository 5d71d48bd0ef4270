// Command validator checks that a YNAB personal access token works: it
// probes the user endpoint and lists the budgets the token can see.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

type report struct {
	Valid   bool     `json:"valid"`
	UserID  string   `json:"user_id,omitempty"`
	Budgets []string `json:"budgets,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func main() {
	asJSON := flag.Bool("json", false, "emit the result as JSON")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	token := os.Getenv("YNAB_API_KEY")
	if token == "" {
		fmt.Fprintln(os.Stderr, "YNAB_API_KEY environment variable is required")
		os.Exit(1)
	}

	client, err := ynab.NewClientWithToken(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build client: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	r := probe(ctx, client)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(r)
	} else {
		printReport(r)
	}

	if !r.Valid {
		os.Exit(1)
	}
}

func probe(ctx context.Context, client *ynab.Client) report {
	user, err := client.User.Get(ctx)
	if err != nil {
		return report{Valid: false, Error: err.Error()}
	}

	r := report{Valid: true, UserID: user.ID}

	budgets, err := client.Budgets.List(ctx, false)
	if err != nil {
		// The key works even if the budget list fails; report what we have.
		r.Error = err.Error()
		return r
	}
	for _, b := range budgets.Budgets {
		r.Budgets = append(r.Budgets, fmt.Sprintf("%s (%s)", b.Name, b.ID))
	}
	return r
}

func printReport(r report) {
	if !r.Valid {
		fmt.Printf("API key is invalid: %s\n", r.Error)
		return
	}
	fmt.Printf("API key is valid (user %s)\n", r.UserID)
	for _, b := range r.Budgets {
		fmt.Printf("  budget: %s\n", b)
	}
	if r.Error != "" {
		fmt.Printf("  warning: %s\n", r.Error)
	}
}
