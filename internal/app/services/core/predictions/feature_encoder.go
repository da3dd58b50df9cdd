package predictions

type EncodedSymptoms struct {
	Features []float32
	// MatchedCount counts matched names. Repeated or variant spellings of one symptom
	// each count, while the position is set once.
	MatchedCount int
	Unmatched    []string
}

type FeatureEncoder struct {
	vocabulary *Vocabulary
}

func NewFeatureEncoder(vocabulary *Vocabulary) *FeatureEncoder {
	return &FeatureEncoder{vocabulary: vocabulary}
}

// Encode builds a fresh binary vector over the vocabulary. Each name is looked up as
// given, then in canonical form. Names matching neither are returned in Unmatched.
func (e *FeatureEncoder) Encode(symptoms []string) EncodedSymptoms {
	encoded := EncodedSymptoms{
		Features: make([]float32, e.vocabulary.Len()),
	}
	for _, symptom := range symptoms {
		index, ok := e.vocabulary.IndexOf(symptom)
		if !ok {
			index, ok = e.vocabulary.IndexOf(CanonicalSymptom(symptom))
		}
		if !ok {
			encoded.Unmatched = append(encoded.Unmatched, symptom)
			continue
		}
		encoded.Features[index] = 1
		encoded.MatchedCount++
	}
	return encoded
}
