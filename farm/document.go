// Package farm serves the node farm routes from a JSON file loaded once at start-up.
package farm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DataFile is the location of the product data relative to the program.
const DataFile = "dev-data/data.json"

// Product is one entry of the farm product list.
type Product struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName"`
	Image       string `json:"image"`
	From        string `json:"from"`
	Nutrients   string `json:"nutrients"`
	Quantity    string `json:"quantity"`
	Price       string `json:"price"`
	Organic     bool   `json:"organic"`
	Description string `json:"description"`
}

// Document is the data file loaded once at start-up.
//   - Raw:   the file bytes exactly as read. This is what /api serves.
//   - Value: the same content parsed into generic JSON values.
//
// A Document is never modified after LoadDocument returns.
type Document struct {
	Raw   []byte
	Value any
}

// LoadDocument reads and parses the JSON file at path.
// A missing, unreadable or malformed file is an error; callers treat it as fatal.
func LoadDocument(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}

	return &Document{Raw: raw, Value: value}, nil
}

// DefaultDataPath returns DataFile next to the running executable, or under
// the working directory when the executable has none (as with go run).
// If neither exists the executable-relative path is returned so the load
// error names it.
func DefaultDataPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return resolveDataPath(filepath.Dir(exe), wd), nil
}

func resolveDataPath(exeDir, workDir string) string {
	primary := filepath.Join(exeDir, filepath.FromSlash(DataFile))
	if _, err := os.Stat(primary); err == nil || workDir == "" {
		return primary
	}
	fallback := filepath.Join(workDir, filepath.FromSlash(DataFile))
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return primary
}

// Products decodes the document as a product list.
func (d *Document) Products() ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(d.Raw, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
