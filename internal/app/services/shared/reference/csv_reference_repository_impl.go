package reference

import (
	"diagnosis-service/internal/app/contracts"
	"diagnosis-service/internal/app/models"
	"diagnosis-service/internal/pkg/constvars"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

type csvReferenceRepository struct {
	descriptions map[string]string
	precautions  map[string][]string
	// folded keys map a trimmed, case-folded disease name to the key as written in the table
	foldedDescriptionKeys map[string]string
	foldedPrecautionKeys  map[string]string
	diseases              []string
}

// NewCSVReferenceRepository reads the description table (Disease, Description) and the
// precaution table (Disease, Precaution_1..n). The first row wins for a repeated disease.
func NewCSVReferenceRepository(descriptionTable, precautionTable io.Reader) (contracts.ReferenceRepository, error) {
	repo := &csvReferenceRepository{
		descriptions:          make(map[string]string),
		precautions:           make(map[string][]string),
		foldedDescriptionKeys: make(map[string]string),
		foldedPrecautionKeys:  make(map[string]string),
	}

	err := readTable(descriptionTable, func(disease string, values []string) {
		if _, exists := repo.descriptions[disease]; exists {
			return
		}
		description := ""
		if len(values) > 0 {
			description = strings.TrimSpace(values[0])
		}
		repo.descriptions[disease] = description
		repo.remember(repo.foldedDescriptionKeys, disease)
	})
	if err != nil {
		return nil, fmt.Errorf("description table: %w", err)
	}

	err = readTable(precautionTable, func(disease string, values []string) {
		if _, exists := repo.precautions[disease]; exists {
			return
		}
		precautions := make([]string, 0, len(values))
		for _, value := range values {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			precautions = append(precautions, value)
		}
		repo.precautions[disease] = precautions
		repo.remember(repo.foldedPrecautionKeys, disease)
	})
	if err != nil {
		return nil, fmt.Errorf("precaution table: %w", err)
	}

	return repo, nil
}

func (r *csvReferenceRepository) Describe(disease string) string {
	key, ok := r.resolve(r.foldedDescriptionKeys, disease, func(k string) bool {
		_, exists := r.descriptions[k]
		return exists
	})
	if !ok || r.descriptions[key] == "" {
		return constvars.PredictionNoDescriptionAvailable
	}
	return r.descriptions[key]
}

func (r *csvReferenceRepository) Precautions(disease string) []string {
	key, ok := r.resolve(r.foldedPrecautionKeys, disease, func(k string) bool {
		_, exists := r.precautions[k]
		return exists
	})
	if !ok {
		return []string{}
	}
	stored := r.precautions[key]
	precautions := make([]string, len(stored))
	copy(precautions, stored)
	return precautions
}

func (r *csvReferenceRepository) FindByDisease(disease string) (*models.DiseaseReference, bool) {
	_, hasDescription := r.resolve(r.foldedDescriptionKeys, disease, func(k string) bool {
		_, exists := r.descriptions[k]
		return exists
	})
	_, hasPrecautions := r.resolve(r.foldedPrecautionKeys, disease, func(k string) bool {
		_, exists := r.precautions[k]
		return exists
	})
	return &models.DiseaseReference{
		Disease:     disease,
		Description: r.Describe(disease),
		Precautions: r.Precautions(disease),
	}, hasDescription || hasPrecautions
}

// Len counts distinct diseases across both tables.
func (r *csvReferenceRepository) Len() int {
	return len(r.diseases)
}

func (r *csvReferenceRepository) remember(folded map[string]string, disease string) {
	key := foldDiseaseKey(disease)
	if _, exists := folded[key]; !exists {
		folded[key] = disease
	}
	for _, known := range r.diseases {
		if foldDiseaseKey(known) == key {
			return
		}
	}
	r.diseases = append(r.diseases, disease)
}

func (r *csvReferenceRepository) resolve(folded map[string]string, disease string, exists func(string) bool) (string, bool) {
	if exists(disease) {
		return disease, true
	}
	key, ok := folded[foldDiseaseKey(disease)]
	return key, ok
}

func foldDiseaseKey(disease string) string {
	return strings.ToLower(strings.Join(strings.Fields(disease), " "))
}

// readTable calls fn with the disease cell and the remaining cells, in column order, for each row.
func readTable(table io.Reader, fn func(disease string, values []string)) error {
	if table == nil {
		return errors.New("table reader is nil")
	}

	reader := csv.NewReader(table)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("table is empty")
		}
		return err
	}

	diseaseColumn := -1
	for i, column := range header {
		column = strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
		if strings.EqualFold(column, constvars.ReferenceColumnDisease) {
			diseaseColumn = i
			break
		}
	}
	if diseaseColumn < 0 {
		return fmt.Errorf("table has no %s column", constvars.ReferenceColumnDisease)
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if diseaseColumn >= len(record) {
			continue
		}
		disease := record[diseaseColumn]
		if strings.TrimSpace(disease) == "" {
			continue
		}

		values := make([]string, 0, len(record)-1)
		for i, value := range record {
			if i == diseaseColumn {
				continue
			}
			values = append(values, value)
		}
		fn(disease, values)
	}
}
