package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"sync"
	"time"
)

// Prediction represents the prediction payload
type Prediction struct {
	Verified          bool    `json:"verified"`
	ChallengeAnswer   int     `json:"challengeAnswer"`
	Merchant          string  `json:"merchant"`
	Category          string  `json:"category"`
	Amount            float64 `json:"amount"`
	Gender            string  `json:"gender"`
	CardNumber        string  `json:"cardNumber"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	MerchantLatitude  float64 `json:"merchantLatitude"`
	MerchantLongitude float64 `json:"merchantLongitude"`
	Hour              int     `json:"hour"`
	Day               int     `json:"day"`
	Month             int     `json:"month"`
}

// Challenge represents the challenge returned by the API
type Challenge struct {
	SessionID string `json:"sessionId"`
	Question  string `json:"question"`
}

// Response represents the prediction response
type Response struct {
	Fraudulent    bool      `json:"fraudulent"`
	Label         string    `json:"label"`
	NextChallenge Challenge `json:"nextChallenge"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Verdict      string
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	VerdictStats       map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario is a transaction profile sent to the API
type Scenario struct {
	Name     string
	Merchant string
	Category string
	Amount   float64
	Gender   string
	// merchant offset from the cardholder, in degrees
	Offset float64
}

var scenarios = []Scenario{
	{"Local Grocery", "fraud_Kirlin and Sons", "grocery_pos", 42.50, "Female", 0.05},
	{"Online Shopping", "fraud_Kutch, Hermiston and Farrell", "shopping_net", 250.00, "Male", 0.8},
	{"Gas Station", "fraud_Sporer-Keebler", "gas_transport", 65.10, "Male", 0.2},
	{"Large Travel", "fraud_Heller, Gutmann and Zieme", "travel", 1899.99, "Female", 4.5},
	{"Unknown Merchant", "Corner Store", "misc_pos", 12.00, "Female", 0.01},
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent sessions")
	totalRequests := flag.Int("n", 100, "Total number of predictions to request")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	fmt.Printf("Load testing predictions with %d scenarios\n", len(scenarios))
	fmt.Printf("Concurrency: %d sessions\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		VerdictStats:    make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
				stats.VerdictStats[result.Verdict]++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
			stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-done
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

// worker holds one session and answers each challenge the API hands back
func worker(baseURL string, delayMs int, jobs <-chan int, results chan<- TestResult, stats *TestStats) {
	client := &http.Client{Timeout: 10 * time.Second}

	challenge, err := fetchChallenge(client, baseURL, "")
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}
		if err != nil {
			results <- TestResult{Success: false, Error: err}
			challenge, err = fetchChallenge(client, baseURL, challenge.SessionID)
			continue
		}

		answer, parseErr := solve(challenge.Question)
		if parseErr != nil {
			results <- TestResult{Success: false, Error: parseErr}
			challenge, err = fetchChallenge(client, baseURL, challenge.SessionID)
			continue
		}

		scenario := scenarios[rand.IntN(len(scenarios))]
		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		lat := 25 + rand.Float64()*24
		long := -124 + rand.Float64()*57
		payload := Prediction{
			Verified:          true,
			ChallengeAnswer:   answer,
			Merchant:          scenario.Merchant,
			Category:          scenario.Category,
			Amount:            scenario.Amount,
			Gender:            scenario.Gender,
			CardNumber:        fmt.Sprintf("4%015d", rand.Int64N(1e15)),
			Latitude:          lat,
			Longitude:         long,
			MerchantLatitude:  lat + scenario.Offset,
			MerchantLongitude: long - scenario.Offset,
			Hour:              rand.IntN(24),
			Day:               1 + rand.IntN(28),
			Month:             1 + rand.IntN(12),
		}

		var resp Response
		result := post(client, baseURL+"/api/v1/predictions", challenge.SessionID, payload, &resp)
		if result.Success {
			result.Verdict = resp.Label
			challenge = resp.NextChallenge
		} else {
			challenge, err = fetchChallenge(client, baseURL, challenge.SessionID)
		}
		results <- result
	}
}

func fetchChallenge(client *http.Client, baseURL, sessionID string) (Challenge, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/challenge", nil)
	if err != nil {
		return Challenge{SessionID: sessionID}, err
	}
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Challenge{SessionID: sessionID}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Challenge{SessionID: sessionID}, fmt.Errorf("challenge: HTTP status code %d", resp.StatusCode)
	}

	var c Challenge
	if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
		return Challenge{SessionID: sessionID}, err
	}
	return c, nil
}

func solve(question string) (int, error) {
	var a, b int
	if _, err := fmt.Sscanf(question, "What is %d + %d?", &a, &b); err != nil {
		return 0, errors.New("unparseable challenge")
	}
	return a + b, nil
}

func post(client *http.Client, url, sessionID string, payload Prediction, out *Response) TestResult {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return TestResult{Success: false, Error: err}
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return TestResult{Success: false, Error: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", sessionID)

	startTime := time.Now()
	resp, err := client.Do(req)
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		return result
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		result.Success = false
		result.Error = err
	}
	return result
}

func printResults(stats *TestStats) {
	rawTps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()
	theoreticalTps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	var p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		sortedTimes := slices.Clone(stats.ResponseTimes)
		slices.Sort(sortedTimes)

		p50 = sortedTimes[len(sortedTimes)*50/100]
		p90 = sortedTimes[len(sortedTimes)*90/100]
		p95 = sortedTimes[len(sortedTimes)*95/100]
		p99 = sortedTimes[len(sortedTimes)*99/100]
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (successful requests / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if all requests were successful)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d requests\n", scenario, count)
	}

	fmt.Println("\n----------------- VERDICTS -----------------")
	for verdict, count := range stats.VerdictStats {
		fmt.Printf("%-25s: %d (%.1f%%)\n", verdict, count,
			float64(count)/float64(max(stats.SuccessfulRequests, 1))*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
