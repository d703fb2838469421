// Package seed loads catalogue seed files: gzipped JSON-lines, one product
// object per line. Files can live on the local file system or in S3.
package seed

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"storefront/internal/model"
)

// Loader reads a seed source (a file path or an S3 key) into product records.
type Loader interface {
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// checkInterval is how often the line reader polls for context cancellation.
const checkInterval = 1000

// parseProducts reads gzip-decompressed JSON-lines from r. Blank lines are
// skipped; a malformed line fails the whole load.
func parseProducts(ctx context.Context, r io.Reader) ([]model.Product, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var products []model.Product
	lineCount := 0
	for scanner.Scan() {
		if lineCount%checkInterval == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var p model.Product
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, fmt.Errorf("invalid seed record on line %d: %w", lineCount, err)
		}
		// Seed inserts are keyed on the catalogue ID, so every record must
		// carry one.
		if p.ID <= 0 {
			return nil, fmt.Errorf("seed record on line %d is missing a product id", lineCount)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read seed data: %w", err)
	}

	return products, nil
}
