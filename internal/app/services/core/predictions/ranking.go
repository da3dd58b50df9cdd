package predictions

import (
	"diagnosis-service/internal/app/models"
	"sort"
)

// RankCandidates orders catalog positions by probability, highest first, with ties kept in
// catalog order. The first poolSize form the candidate set; the first surfacedCount of
// those are returned.
func RankCandidates(distribution []float64, catalog *Catalog, poolSize, surfacedCount int) []models.PredictionCandidate {
	indexes := make([]int, len(distribution))
	for i := range indexes {
		indexes[i] = i
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return distribution[indexes[a]] > distribution[indexes[b]]
	})

	if poolSize < len(indexes) {
		indexes = indexes[:poolSize]
	}
	candidates := make([]models.PredictionCandidate, 0, len(indexes))
	for _, index := range indexes {
		candidates = append(candidates, models.PredictionCandidate{
			Index:       index,
			Disease:     catalog.Name(index),
			Probability: distribution[index],
		})
	}

	if surfacedCount < len(candidates) {
		candidates = candidates[:surfacedCount]
	}
	return candidates
}
