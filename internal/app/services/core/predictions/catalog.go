package predictions

import "diagnosis-service/internal/app/models"

// diseaseCatalog is in classifier output order. Labels keep the spelling the model was
// trained with, typos included, because they key the reference tables too.
var diseaseCatalog = [...]string{
	"(vertigo) Paroymsal Positional Vertigo",
	"AIDS",
	"Acne",
	"Alcoholic hepatitis",
	"Allergy",
	"Arthritis",
	"Bronchial Asthma",
	"Cervical spondylosis",
	"Chicken pox",
	"Chronic cholestasis",
	"Common Cold",
	"Dengue",
	"Diabetes",
	"Dimorphic hemmorhoids(piles)",
	"Drug Reaction",
	"Fungal infection",
	"GERD",
	"Gastroenteritis",
	"Heart attack",
	"Hepatitis B",
	"Hepatitis C",
	"Hepatitis D",
	"Hepatitis E",
	"Hypertension",
	"Hyperthyroidism",
	"Hypoglycemia",
	"Hypothyroidism",
	"Impetigo",
	"Jaundice",
	"Malaria",
	"Migraine",
	"Osteoarthristis",
	"Paralysis (brain hemorrhage)",
	"Peptic ulcer diseae",
	"Pneumonia",
	"Psoriasis",
	"Tuberculosis",
	"Typhoid",
	"Urinary tract infection",
	"Varicose veins",
	"hepatitis A",
}

type Catalog struct {
	diseases []string
}

func NewCatalog(diseases []string) *Catalog {
	return &Catalog{diseases: append([]string(nil), diseases...)}
}

func DefaultCatalog() *Catalog {
	return NewCatalog(diseaseCatalog[:])
}

func (c *Catalog) Len() int {
	return len(c.diseases)
}

func (c *Catalog) Name(index int) string {
	return c.diseases[index]
}

func (c *Catalog) Names() []string {
	return append([]string(nil), c.diseases...)
}

func (c *Catalog) Diseases() []models.Disease {
	diseases := make([]models.Disease, len(c.diseases))
	for i, name := range c.diseases {
		diseases[i] = models.Disease{Index: i, Name: name}
	}
	return diseases
}

// Matches reports whether classes lists exactly the catalog, in order.
func (c *Catalog) Matches(classes []string) bool {
	if len(classes) != len(c.diseases) {
		return false
	}
	for i := range classes {
		if classes[i] != c.diseases[i] {
			return false
		}
	}
	return true
}
