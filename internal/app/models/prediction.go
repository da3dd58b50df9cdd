package models

import (
	"diagnosis-service/internal/pkg/dto/responses"
	"strings"
)

type Symptom struct {
	Index    int
	Name     string
	Reserved bool
}

// DisplayName turns the canonical token into the spelling the frontend shows.
func (s Symptom) DisplayName() string {
	return strings.ReplaceAll(s.Name, "_", " ")
}

func (s Symptom) ConvertIntoResponse() responses.Symptom {
	return responses.Symptom{
		Index:       s.Index,
		Name:        s.Name,
		DisplayName: s.DisplayName(),
	}
}

type Disease struct {
	Index int
	Name  string
}

func (d Disease) ConvertIntoResponse() responses.Disease {
	return responses.Disease{
		Index: d.Index,
		Name:  d.Name,
	}
}

type DiseaseReference struct {
	Disease     string
	Description string
	Precautions []string
}

// PredictionCandidate is one catalog position with its classifier probability.
type PredictionCandidate struct {
	Index       int
	Disease     string
	Probability float64
}

type DiseasePrediction struct {
	PredictionCandidate
	Description string
	Precautions []string
}

func (p DiseasePrediction) ConvertIntoResponse() responses.DiseasePrediction {
	precautions := p.Precautions
	if precautions == nil {
		precautions = []string{}
	}
	return responses.DiseasePrediction{
		Disease:     p.Disease,
		Probability: p.Probability,
		Description: p.Description,
		Precautions: precautions,
	}
}
