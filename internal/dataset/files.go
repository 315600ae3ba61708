package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"lexiquiz/internal/model"
)

// ReadSeedIDs reads a newline-delimited identifier file. Lines may carry a
// trailing tab-separated lemma, which is ignored. Blank lines are skipped
// with a diagnostic.
func ReadSeedIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	var ids []string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			log.Printf("[Dataset] Line %d: skipped empty line", lineNo)
			continue
		}
		id := strings.SplitN(line, "\t", 2)[0]
		ids = append(ids, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ids, nil
}

// WriteIDLemmas writes an id -> lemma mapping as tab-separated lines,
// sorted by identifier for stable output.
func WriteIDLemmas(path string, lemmas map[string]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	ids := make([]string, 0, len(lemmas))
	for id := range lemmas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", id, lemmas[id]); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	return w.Flush()
}

// WriteIDs writes a plain newline-delimited identifier file.
func WriteIDs(path string, ids []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}
	return w.Flush()
}

// WriteJSON serializes a value as indented UTF-8 JSON without HTML escaping,
// so multilingual lemmas stay readable in the output files.
func WriteJSON(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadEntries loads an enriched node pool file.
func ReadEntries(path string) ([]model.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return entries, nil
}

// ReadQuestions loads a generated question batch file.
func ReadQuestions(path string) ([]model.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return questions, nil
}

// ConvertJSONL rewrites a JSON array file as line-delimited JSON, one
// compact object per line, for evaluation harnesses.
func ConvertJSONL(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, item := range items {
		var v interface{}
		if err := json.Unmarshal(item, &v); err != nil {
			return 0, fmt.Errorf("failed to parse record: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}
	return len(items), nil
}
