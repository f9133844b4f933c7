package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// collectWords gathers words from direct arguments and word list files,
// preserving order: arguments first, then each file in turn.
func collectWords(words []string, files []string) ([]string, error) {
	out := append([]string{}, words...)
	for _, file := range files {
		err := parseWordFile(file, func(word string) {
			out = append(out, word)
		})
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
	}
	return out, nil
}

// parseWordFile dispatches on the file extension: .json is decoded as a
// JSON array of strings, anything else is read as one word per line.
func parseWordFile(path string, onEachWord func(word string)) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJson(path, onEachWord)
	}
	return parseText(path, onEachWord)
}

func parseJson(path string, onEachWord func(word string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("expected a JSON array of words, got %v", tok)
	}

	// Decode each element of the array
	for decoder.More() {
		var word string
		if err := decoder.Decode(&word); err != nil {
			return err
		}
		onEachWord(word)
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	return err
}

func parseText(path string, onEachWord func(word string)) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		onEachWord(word)
	}
	return scanner.Err()
}
