package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// moneyRequest is the cash-in and withdrawal payload
type moneyRequest struct {
	Amount string `json:"amount"`
	Method string `json:"method"`
}

type withdrawalResponse struct {
	TransactionID uint64 `json:"transactionId"`
	Status        string `json:"status"`
}

type summaryResponse struct {
	Balance        string `json:"balance"`
	TotalDeposited string `json:"totalDeposited"`
	TotalWithdrawn string `json:"totalWithdrawn"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	Rejected           int // 4xx answers such as insufficient balance
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	AccountStats       map[uint64]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// scenario is one kind of request the workers send
type scenario struct {
	Name   string
	Kind   string // cash-in, withdraw or approve
	Amount string
	Method string
}

type loadTest struct {
	baseURL  string
	adminKey string
	client   *http.Client

	// pending withdrawals waiting for an approve scenario
	pendingMu sync.Mutex
	pending   []uint64
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountIDsStr := flag.String("a", "1,2,3", "Comma-separated list of account IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	adminKey := flag.String("admin-key", "dev-admin-key", "X-Admin-Key used to approve withdrawals")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var accountIDs []uint64
	for _, idStr := range strings.Split(*accountIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			accountIDs = append(accountIDs, id)
		}
	}
	if len(accountIDs) == 0 {
		accountIDs = []uint64{1}
	}

	scenarios := []scenario{
		{"GCash Cash-in", "cash-in", "10.00", "gcash"},
		{"Visa Cash-in", "cash-in", "25.00", "visa"},
		{"Mastercard Cash-in", "cash-in", "40.00", "mastercard"},
		{"Small Withdrawal", "withdraw", "15.00", "gcash"},
		{"Large Withdrawal", "withdraw", "60.00", "visa"},
		{"Approve Withdrawal", "approve", "", ""},
		{"Approve Withdrawal", "approve", "", ""},
	}

	fmt.Printf("Load testing wallet API across %d accounts: %v\n", len(accountIDs), accountIDs)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		AccountStats:    make(map[uint64]int),
		ScenarioStats:   make(map[string]int),
	}

	lt := &loadTest{
		baseURL:  strings.TrimRight(*baseURL, "/"),
		adminKey: *adminKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lt.worker(*delayMs, accountIDs, scenarios, jobs, results, stats)
		}()
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests + stats.Rejected
			if completed > 0 {
				fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
					completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
			}
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	lt.checkBalances(accountIDs)
}

func (lt *loadTest) worker(delayMs int, accountIDs []uint64, scenarios []scenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		accountID := accountIDs[rand.Intn(len(accountIDs))]
		sc := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.AccountStats[accountID]++
		stats.ScenarioStats[sc.Name]++
		stats.Lock.Unlock()

		result := lt.run(accountID, sc)
		result.Scenario = sc.Name
		results <- result
	}
}

func (lt *loadTest) run(accountID uint64, sc scenario) TestResult {
	switch sc.Kind {
	case "cash-in":
		url := fmt.Sprintf("%s/accounts/%d/cash-in", lt.baseURL, accountID)
		result, _ := lt.post(url, moneyRequest{Amount: sc.Amount, Method: sc.Method}, nil)
		return result
	case "withdraw":
		url := fmt.Sprintf("%s/accounts/%d/withdrawals", lt.baseURL, accountID)
		result, body := lt.post(url, moneyRequest{Amount: sc.Amount, Method: sc.Method}, nil)
		var resp withdrawalResponse
		if result.Success && json.Unmarshal(body, &resp) == nil && resp.Status == "pending" {
			lt.pendingMu.Lock()
			lt.pending = append(lt.pending, resp.TransactionID)
			lt.pendingMu.Unlock()
		}
		return result
	default:
		id, ok := lt.nextPending()
		if !ok {
			// nothing queued yet; exercise the read path instead
			return lt.get(fmt.Sprintf("%s/accounts/%d/summary", lt.baseURL, accountID))
		}
		url := fmt.Sprintf("%s/admin/withdrawals/%d/approve", lt.baseURL, id)
		result, _ := lt.post(url, nil, map[string]string{"X-Admin-Key": lt.adminKey})
		return result
	}
}

func (lt *loadTest) nextPending() (uint64, bool) {
	lt.pendingMu.Lock()
	defer lt.pendingMu.Unlock()
	if len(lt.pending) == 0 {
		return 0, false
	}
	id := lt.pending[0]
	lt.pending = lt.pending[1:]
	return id, true
}

func (lt *loadTest) post(url string, payload any, headers map[string]string) (TestResult, []byte) {
	var body io.Reader = http.NoBody
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return TestResult{Error: err}, nil
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return TestResult{Error: err}, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return lt.send(req)
}

func (lt *loadTest) get(url string) TestResult {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return TestResult{Error: err}
	}
	result, _ := lt.send(req)
	return result
}

func (lt *loadTest) send(req *http.Request) (TestResult, []byte) {
	startTime := time.Now()
	resp, err := lt.client.Do(req)
	result := TestResult{ResponseTime: time.Since(startTime)}
	if err != nil {
		result.Error = err
		return result, nil
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	result.StatusCode = resp.StatusCode
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !result.Success {
		result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return result, body
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	switch {
	case result.Success:
		s.SuccessfulRequests++
	case result.StatusCode >= 400 && result.StatusCode < 500:
		s.Rejected++
		s.ErrorCounts[result.Scenario+": "+result.Error.Error()]++
	default:
		s.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		s.ErrorCounts[result.Scenario+": "+errMsg]++
	}

	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < s.MinResponseTime {
		s.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > s.MaxResponseTime {
		s.MaxResponseTime = result.ResponseTime
	}
}

// checkBalances reads every account summary after the run; a negative balance
// means a withdrawal was approved twice or against stale funds
func (lt *loadTest) checkBalances(accountIDs []uint64) {
	fmt.Println("\n----------------- FINAL BALANCES -----------------")
	for _, id := range accountIDs {
		resp, err := lt.client.Get(fmt.Sprintf("%s/accounts/%d/summary", lt.baseURL, id))
		if err != nil {
			fmt.Printf("Account %d: %v\n", id, err)
			continue
		}
		var summary summaryResponse
		err = json.NewDecoder(resp.Body).Decode(&summary)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("Account %d: %v\n", id, err)
			continue
		}

		marker := "✅"
		if strings.HasPrefix(summary.Balance, "-") {
			marker = "❌ NEGATIVE"
		}
		fmt.Printf("%s Account %d: balance %s (deposited %s, withdrawn %s)\n",
			marker, id, summary.Balance, summary.TotalDeposited, summary.TotalWithdrawn)
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	answered := stats.SuccessfulRequests + stats.Rejected
	tps := float64(answered) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Rejected (4xx):      %d (%.1f%%)\n", stats.Rejected,
		float64(stats.Rejected)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Answered TPS:        %.2f\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- ACCOUNT DISTRIBUTION -----------------")
	for accountID, count := range stats.AccountStats {
		fmt.Printf("Account %d:    %d requests\n", accountID, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d requests\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", errMsg, count)
		}
	}
	fmt.Println("================================================")
}
