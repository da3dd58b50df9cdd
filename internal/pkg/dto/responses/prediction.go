package responses

type DiseasePrediction struct {
	Disease     string   `json:"disease"`
	Probability float64  `json:"probability"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}

type Symptom struct {
	Index       int    `json:"index"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Disease struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type DiseaseReference struct {
	Disease     string   `json:"disease"`
	Known       bool     `json:"known"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}
