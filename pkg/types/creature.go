package types

import (
	"fmt"
	"io"
)

// Breeding and leveling rules.
const (
	// BreedingMinLevel is the level both parents must have reached.
	BreedingMinLevel = 5

	// ExperiencePerLevel is the experience consumed by one level-up.
	ExperiencePerLevel = 100

	// OffspringName is given to every creature produced by breeding.
	OffspringName = "Mystere"
)

// Creature is a single member of the collection.
type Creature struct {
	Name       string // Free-form name, not validated.
	Level      int    // Current level.
	Kind       Kind   // Elemental type.
	Experience int    // Experience towards the next level; below 100 after leveling.
	Gender     Gender // Male or Female.
}

// LevelUp records one level gained by a creature.
type LevelUp struct {
	Name  string
	Level int // Level reached.
}

// String renders the level-up notification shown to the user.
func (l LevelUp) String() string {
	return fmt.Sprintf("%s reaches level %d", l.Name, l.Level)
}

// NewCreature builds a creature from its five attributes. No validation is
// performed; zero values are accepted.
func NewCreature(name string, level int, kind Kind, experience int, gender Gender) Creature {
	return Creature{
		Name:       name,
		Level:      level,
		Kind:       kind,
		Experience: experience,
		Gender:     gender,
	}
}

// GainExperience adds points to the creature's experience and converts every
// full ExperiencePerLevel into one level. It returns one LevelUp per level
// gained, in order. Negative points are ignored.
func (c *Creature) GainExperience(points int) []LevelUp {
	if points > 0 {
		c.Experience += points
	}
	var ups []LevelUp
	for c.Experience >= ExperiencePerLevel {
		c.Experience -= ExperiencePerLevel
		c.Level++
		ups = append(ups, LevelUp{Name: c.Name, Level: c.Level})
	}
	return ups
}

// Display writes the creature's attributes, one per line.
func (c Creature) Display(w io.Writer) {
	fmt.Fprintf(w, "Nom   : %s\n", c.Name)
	fmt.Fprintf(w, "Niveau: %d\n", c.Level)
	fmt.Fprintf(w, "Type  : %s\n", c.Kind)
	fmt.Fprintf(w, "XP    : %d\n", c.Experience)
	fmt.Fprintf(w, "Genre : %s\n", c.Gender)
}

// CanBreedWith reports whether c and other may produce offspring: same kind,
// both at least BreedingMinLevel, and different genders. The relation is
// symmetric.
func (c Creature) CanBreedWith(other Creature) bool {
	return c.Kind == other.Kind &&
		c.Level >= BreedingMinLevel &&
		other.Level >= BreedingMinLevel &&
		c.Gender != other.Gender
}

// Breed returns the offspring of c and other when CanBreedWith holds. The
// offspring takes c's kind and is always male. Neither parent is modified.
func (c Creature) Breed(other Creature) (Creature, bool) {
	if !c.CanBreedWith(other) {
		return Creature{}, false
	}
	return NewCreature(OffspringName, 1, c.Kind, 0, GenderMale), true
}
