package constvars

const (
	// PredictionConfidenceFloor is the minimum acceptable top-class probability.
	PredictionConfidenceFloor = 0.1
	// PredictionMinimumSymptoms applies both to supplied and to recognized symptoms.
	PredictionMinimumSymptoms = 2
	// PredictionCandidatePoolSize is the candidate set cut; PredictionSurfacedResultCount
	// is how many of those candidates are returned to the caller.
	PredictionCandidatePoolSize   = 5
	PredictionSurfacedResultCount = 3

	PredictionNoDescriptionAvailable = "No description available"
)

const (
	ModelFormatForest = "forest"
	ModelFormatONNX   = "onnx"
)

const (
	DefaultForestArtifactFileName = "ExtraTrees.json"
	DefaultONNXArtifactFileName   = "ExtraTrees.onnx"
	DefaultDescriptionFileName    = "symptom_Description.csv"
	DefaultPrecautionFileName     = "symptom_precaution.csv"
	DefaultONNXInputName          = "float_input"
	DefaultONNXOutputName         = "probabilities"
)

const (
	ArtifactSchemeFile  = "file"
	ArtifactSchemeS3    = "s3"
	ArtifactSchemeMinio = "minio"
)

const (
	ReferenceColumnDisease = "Disease"
)
