// Package main provides a performance benchmarking tool for the Planchart CLI.
// It measures render times for every chart kind and output format,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - planchart binary installed and available in PATH
//
// Usage: go run benchmark/main.go [dataset-file]
//
//	dataset-file: Optional dataset drawn by every chart (default: built-in samples)
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Chart    string
	Output   string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	Dataset string
	Timeout time.Duration
	Runs    int
	Charts  []string
	Outputs []string
	WorkDir string
}

func main() {
	// Parse command line arguments
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [dataset-file]\n", os.Args[0])
		os.Exit(1)
	}

	workDir, err := os.MkdirTemp("", "planchart-benchmark-*")
	if err != nil {
		fmt.Printf("Failed to create work dir: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = os.RemoveAll(workDir) }()

	config := BenchmarkConfig{
		Timeout: 30 * time.Second,
		Runs:    5,
		Charts:  []string{"bar", "line", "milestone", "gantt", "barline", "marketshare"},
		Outputs: []string{"svg", "html", "json", "csv", "parquet"},
		WorkDir: workDir,
	}
	if len(os.Args) == 2 {
		config.Dataset = os.Args[1]
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(config, results)
}

// checkPrerequisites verifies that the planchart binary and dataset exist
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("planchart"); err != nil {
		return fmt.Errorf("planchart binary not found in PATH")
	}
	if config.Dataset != "" {
		if _, err := os.Stat(config.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("dataset not found at %s", config.Dataset)
		}
	}
	return nil
}

// runBenchmarks renders every chart kind in every output format
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d charts, %d outputs, %v timeout, %d runs\n",
		len(config.Charts), len(config.Outputs), config.Timeout, config.Runs)

	for _, chart := range config.Charts {
		fmt.Printf("Benchmarking %s\n", chart)
		for _, output := range config.Outputs {
			results = append(results, runBenchmarkSuite(config, chart, output))
		}
	}

	return results
}

// runBenchmarkSuite renders one chart in one format and summarizes the timings
func runBenchmarkSuite(config BenchmarkConfig, chart, output string) BenchmarkResult {
	cold, times := runBenchmark(config, chart, output)

	coldTimeStr := "FAILED"
	if cold > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", cold)
	}
	warmAvg := "FAILED"
	if len(times) > 0 {
		var sum float64
		for _, t := range times {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(times)))
	}

	fmt.Printf("  %-8s cold: %s, warm average: %s\n", output, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Chart:    chart,
		Output:   output,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a render command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, chart, output string) (coldTime float64, warmTimes []float64) {
	outFile := filepath.Join(config.WorkDir, chart+"."+output)
	args := []string{"render", chart, "--output", output, "--output-file", outFile, "--emoji", "no"}
	if config.Dataset != "" {
		args = append(args, "--dataset", config.Dataset)
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		_ = os.Remove(outFile)
		start := time.Now()

		cmd := exec.Command("planchart", args...)

		done := make(chan error, 1)
		go func() {
			done <- cmd.Run()
		}()

		select {
		case err := <-done:
			if err == nil && isSuccess(outFile) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks that the render produced a non-empty file
func isSuccess(outFile string) bool {
	info, err := os.Stat(outFile)
	return err == nil && info.Size() > 0
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/planchart_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"chart", "output", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.Chart, result.Output, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results per output format
func printSummary(config BenchmarkConfig, results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, output := range config.Outputs {
		fmt.Printf("%s output:\n", output)
		for _, result := range results {
			if result.Output == output {
				fmt.Printf("  %-12s: Cold: %s, Warm: %s\n", result.Chart, result.ColdTime, result.WarmTime)
			}
		}
	}
}
