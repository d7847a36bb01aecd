// Package elevage implements the creature collection: an ordered,
// append-only list that can be displayed, trained, bred, sorted and saved.
package elevage

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/mesh-intelligence/elevage/internal/store"
	"github.com/mesh-intelligence/elevage/pkg/types"
)

// separator closes every creature block in Display.
const separator = "----------------------"

// Elevage owns an ordered collection of creatures. Insertion order is kept
// until one of the sort methods reorders it.
type Elevage struct {
	creatures []types.Creature
}

// BreedError reports a pair of creatures that cannot breed.
// It wraps types.ErrCannotBreed.
type BreedError struct {
	First  string
	Second string
}

func (e *BreedError) Error() string {
	return fmt.Sprintf("breeding impossible between %s and %s", e.First, e.Second)
}

func (e *BreedError) Unwrap() error { return types.ErrCannotBreed }

// New returns an empty collection.
func New() *Elevage {
	return &Elevage{}
}

// Add appends c to the end of the collection.
func (e *Elevage) Add(c types.Creature) {
	e.creatures = append(e.creatures, c)
}

// Len returns the number of creatures.
func (e *Elevage) Len() int {
	return len(e.creatures)
}

// Creatures returns a copy of the collection in its current order.
func (e *Elevage) Creatures() []types.Creature {
	return slices.Clone(e.creatures)
}

// At returns the creature at the 0-based position i.
func (e *Elevage) At(i int) (types.Creature, error) {
	if !e.valid(i) {
		return types.Creature{}, fmt.Errorf("%w: %d", types.ErrInvalidIndex, i)
	}
	return e.creatures[i], nil
}

// Display writes every creature preceded by its 1-based position and
// followed by a separator, or an empty notice.
func (e *Elevage) Display(w io.Writer) {
	if len(e.creatures) == 0 {
		fmt.Fprintln(w, "The collection is empty.")
		return
	}
	for i, c := range e.creatures {
		fmt.Fprintf(w, "=== Pokemon %d ===\n", i+1)
		c.Display(w)
		fmt.Fprintln(w, separator)
	}
}

// Train gives points of experience to every creature in order and returns
// the level-ups in the order they happened.
func (e *Elevage) Train(points int) []types.LevelUp {
	var ups []types.LevelUp
	for i := range e.creatures {
		ups = append(ups, e.creatures[i].GainExperience(points)...)
	}
	return ups
}

// Breed tries to breed the creatures at 0-based positions i and j, with i as
// the first parent. On success the offspring is appended and returned.
// Out-of-range positions return types.ErrInvalidIndex and change nothing;
// an ineligible pair returns a *BreedError. Breeding a creature with itself
// is allowed here and fails on the gender rule.
func (e *Elevage) Breed(i, j int) (types.Creature, error) {
	if !e.valid(i) || !e.valid(j) {
		return types.Creature{}, fmt.Errorf("%w: %d, %d", types.ErrInvalidIndex, i, j)
	}
	first, second := e.creatures[i], e.creatures[j]
	child, ok := first.Breed(second)
	if !ok {
		return types.Creature{}, &BreedError{First: first.Name, Second: second.Name}
	}
	e.Add(child)
	return child, nil
}

// SortByLevel orders creatures by ascending level. Equal levels keep their
// relative order.
func (e *Elevage) SortByLevel() {
	slices.SortStableFunc(e.creatures, func(a, b types.Creature) int {
		return cmp.Compare(a.Level, b.Level)
	})
}

// SortByKind orders creatures by kind rank (Fire, Water, Grass, Electric).
// Equal kinds keep their relative order.
func (e *Elevage) SortByKind() {
	slices.SortStableFunc(e.creatures, func(a, b types.Creature) int {
		return cmp.Compare(a.Kind.Rank(), b.Kind.Rank())
	})
}

// Persist overwrites the file at path with the whole collection.
func (e *Elevage) Persist(path string) error {
	if err := store.WriteFile(path, e.creatures); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (e *Elevage) valid(i int) bool {
	return i >= 0 && i < len(e.creatures)
}
