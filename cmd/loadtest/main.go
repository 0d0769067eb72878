package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Drives the list endpoint across several pagination windows, with a create
// mixed in every tenth request so cache invalidation stays on the hot path.
func main() {
	gofakeit.Seed(time.Now().UnixNano())

	baseURL := flag.String("base-url", "http://localhost:4444", "service base URL")
	freq := flag.Int("rate", 50, "requests per second")
	durationFlag := flag.Duration("duration", 30*time.Second, "attack duration")
	flag.Parse()

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(createTargeter(*baseURL), rate, *durationFlag, "Pokedex Load Test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Max: %s\n", metrics.Latencies.Max)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
	fmt.Printf("Total requests: %d\n", metrics.Requests)

	fmt.Println("\n=== Detailed report ===")
	reporter := vegeta.NewTextReporter(&metrics)
	reporter.Report(os.Stdout)
}

// createTargeter cycles through a few pagination windows so both cache hits
// and distinct-key misses show up in the latency distribution.
func createTargeter(baseURL string) vegeta.Targeter {
	windows := []struct{ limit, offset int }{
		{50, 0},
		{50, 50},
		{20, 0},
		{200, 0},
	}

	var seq atomic.Int64

	return func(tgt *vegeta.Target) error {
		i := seq.Add(1)

		if i%10 == 0 {
			payload := fmt.Sprintf(`{"name": %q, "type": %q}`,
				gofakeit.PetName(),
				gofakeit.RandomString([]string{"Grass", "Fire", "Water", "Electric", "Psychic"}),
			)

			tgt.Method = http.MethodPost
			tgt.URL = baseURL + "/pokemon"
			tgt.Body = []byte(payload)
			tgt.Header = http.Header{
				"Content-Type": {"application/json"},
			}

			return nil
		}

		w := windows[int(i)%len(windows)]
		tgt.Method = http.MethodGet
		tgt.URL = fmt.Sprintf("%s/pokemon?limit=%d&offset=%d", baseURL, w.limit, w.offset)

		return nil
	}
}
