package predictions

import "diagnosis-service/internal/app/models"

// symptomVocabulary is stored in canonical form. Position is the feature index the
// classifier was trained against, so entries are never reordered or removed.
var symptomVocabulary = [...]string{
	"disease", "itching", "skin_rash", "nodal_skin_eruptions", "continuous_sneezing", "shivering",
	"chills", "joint_pain", "stomach_pain", "acidity", "ulcers_on_tongue", "muscle_wasting",
	"vomiting", "burning_micturition", "fatigue", "weight_gain", "anxiety", "cold_hands_and_feets",
	"mood_swings", "weight_loss", "restlessness", "lethargy", "patches_in_throat",
	"irregular_sugar_level", "cough", "high_fever", "sunken_eyes", "breathlessness", "sweating",
	"dehydration", "indigestion", "headache", "yellowish_skin", "dark_urine", "nausea",
	"loss_of_appetite", "pain_behind_the_eyes", "back_pain", "constipation", "abdominal_pain",
	"diarrhoea", "mild_fever", "yellow_urine", "yellowing_of_eyes", "acute_liver_failure",
	"fluid_overload", "swelling_of_stomach", "swelled_lymph_nodes", "malaise",
	"blurred_and_distorted_vision", "phlegm", "throat_irritation", "redness_of_eyes",
	"sinus_pressure", "runny_nose", "congestion", "chest_pain", "weakness_in_limbs",
	"fast_heart_rate", "pain_during_bowel_movements", "pain_in_anal_region", "bloody_stool",
	"irritation_in_anus", "neck_pain", "dizziness", "cramps", "bruising", "obesity", "swollen_legs",
	"swollen_blood_vessels", "puffy_face_and_eyes", "enlarged_thyroid", "brittle_nails",
	"swollen_extremeties", "excessive_hunger", "extra_marital_contacts", "drying_and_tingling_lips",
	"slurred_speech", "knee_pain", "hip_joint_pain", "muscle_weakness", "stiff_neck",
	"swelling_joints", "movement_stiffness", "spinning_movements", "loss_of_balance", "unsteadiness",
	"weakness_of_one_body_side", "loss_of_smell", "bladder_discomfort", "continuous_feel_of_urine",
	"passage_of_gases", "internal_itching", "toxic_look_(typhos)", "depression", "irritability",
	"muscle_pain", "altered_sensorium", "red_spots_over_body", "belly_pain", "abnormal_menstruation",
	"watering_from_eyes", "increased_appetite", "polyuria", "family_history", "mucoid_sputum",
	"rusty_sputum", "lack_of_concentration", "visual_disturbances", "receiving_blood_transfusion",
	"receiving_unsterile_injections", "coma", "stomach_bleeding", "distention_of_abdomen",
	"history_of_alcohol_consumption", "blood_in_sputum", "prominent_veins_on_calf", "palpitations",
	"painful_walking", "pus_filled_pimples", "blackheads", "scurring", "skin_peeling",
	"silver_like_dusting", "small_dents_in_nails", "inflammatory_nails", "blister",
	"red_sore_around_nose", "yellow_crust_ooze", "prognosis", "foul_smell_of_urine",
	"spotting_urination",
}

// reservedSymptoms are table-column names that hold a feature position but are not symptoms.
var reservedSymptoms = map[string]bool{
	"disease":   true,
	"prognosis": true,
}

// Vocabulary maps canonical symptom names to feature positions.
type Vocabulary struct {
	names   []string
	indexes map[string]int
	// positions also holds reserved entries; it locates trained feature columns.
	positions map[string]int
}

func NewVocabulary(names []string) *Vocabulary {
	vocabulary := &Vocabulary{
		names:     make([]string, len(names)),
		indexes:   make(map[string]int, len(names)),
		positions: make(map[string]int, len(names)),
	}
	copy(vocabulary.names, names)
	for i, name := range names {
		if _, exists := vocabulary.positions[name]; !exists {
			vocabulary.positions[name] = i
		}
		if reservedSymptoms[name] {
			continue
		}
		if _, exists := vocabulary.indexes[name]; !exists {
			vocabulary.indexes[name] = i
		}
	}
	return vocabulary
}

func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(symptomVocabulary[:])
}

func (v *Vocabulary) Len() int {
	return len(v.names)
}

// IndexOf reports the feature position of an exact vocabulary entry. Reserved entries never match.
func (v *Vocabulary) IndexOf(name string) (int, bool) {
	index, ok := v.indexes[name]
	return index, ok
}

// FeaturePosition reports where a model feature column lands in the vector. Column names are
// canonicalized first, so spelling variants share a position. Reserved entries are included.
func (v *Vocabulary) FeaturePosition(column string) (int, bool) {
	position, ok := v.positions[CanonicalSymptom(column)]
	return position, ok
}

func (v *Vocabulary) Names() []string {
	return append([]string(nil), v.names...)
}

// Symptoms lists the matchable entries in feature order.
func (v *Vocabulary) Symptoms() []models.Symptom {
	symptoms := make([]models.Symptom, 0, len(v.indexes))
	for i, name := range v.names {
		if index, ok := v.indexes[name]; !ok || index != i {
			continue
		}
		symptoms = append(symptoms, models.Symptom{Index: i, Name: name})
	}
	return symptoms
}
