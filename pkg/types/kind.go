package types

// Kind is the elemental type of a creature.
type Kind int

// Kinds in declaration order. Sorting by kind follows Rank, which matches
// this order.
const (
	KindFire Kind = iota
	KindWater
	KindGrass
	KindElectric
)

// kindOrder lists every kind in declaration order.
var kindOrder = []Kind{KindFire, KindWater, KindGrass, KindElectric}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFire:
		return "Fire"
	case KindWater:
		return "Water"
	case KindGrass:
		return "Grass"
	case KindElectric:
		return "Electric"
	default:
		return "Unknown"
	}
}

// Rank returns the sort position of the kind: Fire < Water < Grass < Electric.
func (k Kind) Rank() int {
	switch k {
	case KindFire:
		return 0
	case KindWater:
		return 1
	case KindGrass:
		return 2
	case KindElectric:
		return 3
	default:
		return len(kindOrder)
	}
}

// ParseKindChoice maps a 1-based menu choice ("1".."4") to a Kind.
// Any other input returns KindFire and false.
func ParseKindChoice(s string) (Kind, bool) {
	switch s {
	case "1":
		return KindFire, true
	case "2":
		return KindWater, true
	case "3":
		return KindGrass, true
	case "4":
		return KindElectric, true
	default:
		return KindFire, false
	}
}
