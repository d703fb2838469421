package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// sample product record matching the seed file format: gzipped JSON lines.
type seedProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// generateSeedProducts creates a sample catalogue seed file for local
// development and testing.
func main() {
	dataDir := "seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	// IDs are stable so re-running the seeder against an existing database
	// skips rows instead of duplicating them.
	products := []seedProduct{
		{1, "Wireless Headphones", "Over-ear, noise cancelling", 129.99, "/images/headphones.jpg", "electronics", 4.5, 231},
		{2, "USB-C Cable", "2m braided charging cable", 19.99, "/images/cable.jpg", "electronics", 4.2, 884},
		{3, "Ceramic Mug", "350ml stoneware mug", 12.50, "/images/mug.jpg", "kitchen", 4.8, 102},
		{4, "Yoga Mat", "6mm non-slip mat", 34.00, "/images/yogamat.jpg", "sports", 4.6, 57},
		{5, "Desk Lamp", "LED lamp with dimmer", 45.90, "/images/lamp.jpg", "home", 4.1, 312},
		{6, "Running Shoes", "Lightweight road runners", 89.95, "/images/shoes.jpg", "sports", 4.4, 764},
		{7, "Notebook", "A5 dotted, 180 pages", 8.99, "/images/notebook.jpg", "stationery", 4.7, 45},
		{8, "Water Bottle", "750ml insulated bottle", 24.99, "/images/bottle.jpg", "sports", 4.3, 199},
	}

	filePath := filepath.Join(dataDir, "products.jsonl.gz")
	if err := createSeedFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}

func createSeedFile(filePath string, products []seedProduct) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	encoder := json.NewEncoder(gzWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to encode product: %w", err)
		}
	}

	return nil
}
