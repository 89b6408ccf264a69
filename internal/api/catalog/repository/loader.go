package catalogRepository

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"ShopMate/internal/entity"

	"github.com/sirupsen/logrus"
)

// LoadDataset reads the tabular product dataset once at startup. Expected
// header: product_id, product_name, category, price, rating. Column order in
// the file does not matter.
func LoadDataset(path string, log *logrus.Logger) ([]entity.Product, error) {
	file, err := os.Open(path)
	if err != nil {
		log.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("Failed to open product dataset")
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"product_id", "product_name", "category", "price", "rating"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("dataset is missing column %q", required)
		}
	}

	var products []entity.Product
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", line, err)
		}
		line++

		price, err := strconv.ParseFloat(record[col["price"]], 64)
		if err != nil {
			log.WithFields(logrus.Fields{
				"row":   line,
				"error": err.Error(),
			}).Warn("Skipping dataset row with invalid price")
			continue
		}
		// Prices are whole currency units; a fractional price is a data
		// error, not something to truncate silently.
		if price != math.Trunc(price) {
			log.WithFields(logrus.Fields{
				"row":   line,
				"price": record[col["price"]],
			}).Warn("Skipping dataset row with non-integer price")
			continue
		}

		rating, err := strconv.ParseFloat(record[col["rating"]], 64)
		if err != nil {
			log.WithFields(logrus.Fields{
				"row":   line,
				"error": err.Error(),
			}).Warn("Skipping dataset row with invalid rating")
			continue
		}

		products = append(products, entity.Product{
			ID:       record[col["product_id"]],
			Name:     record[col["product_name"]],
			Category: record[col["category"]],
			Price:    int(price),
			Rating:   rating,
		})
	}

	log.WithFields(logrus.Fields{
		"path":     path,
		"products": len(products),
	}).Info("Product dataset loaded")

	return products, nil
}
