package requests

// PredictDisease wraps the bare JSON array of symptom names posted by the client.
type PredictDisease struct {
	Symptoms []string `validate:"symptom_list,min=2"`
}
