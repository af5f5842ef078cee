package index

import (
	"math/rand"
	"time"

	"momoapi/internal/models"
)

// Metrics summarizes one comparison run between the two lookup strategies.
type Metrics struct {
	DatasetSize   int     `json:"dataset_size" yaml:"dataset_size"`
	NumSearches   int     `json:"num_searches" yaml:"num_searches"`
	BuildTimeMs   float64 `json:"build_time_ms" yaml:"build_time_ms"`
	LinearTotalMs float64 `json:"linear_total_ms" yaml:"linear_total_ms"`
	LinearAvgMs   float64 `json:"linear_avg_ms" yaml:"linear_avg_ms"`
	IndexTotalMs  float64 `json:"index_total_ms" yaml:"index_total_ms"`
	IndexAvgMs    float64 `json:"index_avg_ms" yaml:"index_avg_ms"`
	Speedup       float64 `json:"speedup" yaml:"speedup"`
	Mismatches    int     `json:"mismatches" yaml:"mismatches"`
}

// Compare times searches random lookups of existing ids with both strategies.
// It returns nil for an empty collection. Mismatches counts lookups where the
// strategies disagreed and is expected to be zero.
func Compare(records []models.Transaction, searches int, rng *rand.Rand) *Metrics {
	ids := make([]string, 0, len(records))
	for _, t := range records {
		if t.ID != "" {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 || searches <= 0 {
		return nil
	}

	targets := make([]string, searches)
	for i := range targets {
		targets[i] = ids[rng.Intn(len(ids))]
	}

	buildStart := time.Now()
	idx := Build(records)
	buildTime := time.Since(buildStart)

	linear := make([]models.Transaction, searches)
	linearStart := time.Now()
	for i, id := range targets {
		linear[i], _ = LinearSearch(records, id)
	}
	linearTime := time.Since(linearStart)

	hashed := make([]models.Transaction, searches)
	indexStart := time.Now()
	for i, id := range targets {
		hashed[i], _ = Lookup(idx, id)
	}
	indexTime := time.Since(indexStart)

	m := &Metrics{
		DatasetSize:   len(records),
		NumSearches:   searches,
		BuildTimeMs:   ms(buildTime),
		LinearTotalMs: ms(linearTime),
		LinearAvgMs:   ms(linearTime) / float64(searches),
		IndexTotalMs:  ms(indexTime),
		IndexAvgMs:    ms(indexTime) / float64(searches),
	}
	if indexTime > 0 {
		m.Speedup = float64(linearTime) / float64(indexTime)
	}
	for i := range targets {
		if linear[i].ID != hashed[i].ID {
			m.Mismatches++
		}
	}
	return m
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
