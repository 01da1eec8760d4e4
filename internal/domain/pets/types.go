package pets

import "strings"

const (
	TypeDog = "Dog"
	TypeCat = "Cat"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

const (
	LogTypeWalk        = "Walk"
	LogTypeFood        = "Food"
	LogTypeMedication  = "Medication"
	LogTypeVaccination = "Vaccination"
	LogTypeGrooming    = "Grooming"
	LogTypeTraining    = "Training"
	LogTypeOther       = "Other"
)

var petTypes = []string{TypeDog, TypeCat}

var petGenders = []string{GenderMale, GenderFemale}

var dogBreeds = []string{
	"Labrador",
	"Golden Retriever",
	"German Shepherd",
	"Bulldog",
	"Poodle",
	"Chihuahua",
	"Beagle",
	"Other",
}

var catBreeds = []string{
	"Persian",
	"Siamese",
	"Maine Coon",
	"Bengal",
	"Sphynx",
	"Common",
	"Other",
}

var logTypes = []string{
	LogTypeWalk,
	LogTypeFood,
	LogTypeMedication,
	LogTypeVaccination,
	LogTypeGrooming,
	LogTypeTraining,
	LogTypeOther,
}

func Types() []string {
	return copyOf(petTypes)
}

func Genders() []string {
	return copyOf(petGenders)
}

// Breeds devuelve el set de razas según el tipo; sin tipo (o tipo
// desconocido) se asume perro.
func Breeds(petType string) []string {
	if strings.EqualFold(strings.TrimSpace(petType), TypeCat) {
		return copyOf(catBreeds)
	}
	return copyOf(dogBreeds)
}

func LogTypes() []string {
	return copyOf(logTypes)
}

func IsValidType(s string) bool {
	return contains(petTypes, s)
}

func IsValidGender(s string) bool {
	return contains(petGenders, s)
}

// IsValidBreed valida la raza contra el set del tipo dado.
func IsValidBreed(petType, breed string) bool {
	return contains(Breeds(petType), breed)
}

func IsValidLogType(s string) bool {
	return contains(logTypes, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func copyOf(set []string) []string {
	out := make([]string, len(set))
	copy(out, set)
	return out
}
