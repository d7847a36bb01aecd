package types

// Gender of a creature.
type Gender int

const (
	GenderMale Gender = iota
	GenderFemale
)

// Genders returns all genders in declaration order.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// String returns the gender name.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// ParseGenderChoice maps a 1-based menu choice ("1" or "2") to a Gender.
// Any other input returns GenderMale and false.
func ParseGenderChoice(s string) (Gender, bool) {
	switch s {
	case "1":
		return GenderMale, true
	case "2":
		return GenderFemale, true
	default:
		return GenderMale, false
	}
}
