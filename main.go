package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-histview/logging"
)

var logFile = flag.String("debug", "", "Write Debug Logs to file")

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")
	binCount := flag.Int("bins", defaultBinCount, "number of source bins for raw CSV input")
	column := flag.String("column", "", "CSV column to histogram (default: first numeric column)")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.SetupLogging(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("siftly-histview: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: sfhist [--debug debug.log] [--bins N] [--column NAME] <file.csv|file.json>")
		os.Exit(1)
	}

	inputPath := args[0]

	m, err := loadModelAuto(inputPath, *binCount, *column)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	_, err = tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func loadModelAuto(path string, binCount int, column string) (*model, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return newModelFromBinsFile(path)
	case ".csv":
		return newModelFromCSVFile(path, binCount, column)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .json)", ext)
	}
}

// Precomputed bins, typically produced by an earlier analysis pass.
func newModelFromBinsFile(path string) (*model, error) {
	entries, err := loadBinsJSON(path)
	if err != nil {
		return nil, err
	}
	data := dataState{
		sourcePath: path,
		entries:    entries,
	}
	data.selected = data.fullRange()
	return newModel(data), nil
}

// Raw values, bucketed here before the chart is built.
func newModelFromCSVFile(path string, binCount int, column string) (*model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV %q has no rows", path)
	}

	values, colName, err := numericColumn(records, column)
	if err != nil {
		return nil, err
	}

	entries, err := bucketValues(values, binCount)
	if err != nil {
		return nil, err
	}

	data := dataState{
		sourcePath: path,
		columnName: colName,
		values:     values,
		entries:    entries,
	}
	data.selected = data.fullRange()
	return newModel(data), nil
}
