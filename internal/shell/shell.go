// Package shell runs the interactive text menu over a collection.
//
// The shell reads one menu choice per line, prompts for whatever fields the
// chosen operation needs, and saves the whole collection to its file after
// every operation that can change it. Malformed numeric input falls back to a
// default value; a failed save ends the session with an error.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/elevage/internal/ctxlog"
	"github.com/mesh-intelligence/elevage/internal/elevage"
	"github.com/mesh-intelligence/elevage/pkg/types"
)

// Menu choices.
const (
	ChoiceAdd       = "1"
	ChoiceDisplay   = "2"
	ChoiceTrain     = "3"
	ChoiceBreed     = "4"
	ChoiceSortLevel = "5"
	ChoiceSortKind  = "6"
	ChoiceQuit      = "7"
)

// Fallbacks for input that does not parse.
const (
	defaultLevel      = 1
	defaultExperience = 0
	defaultPoints     = 0
	defaultIndex      = 0
)

const menu = `
--- Menu ---
1. Add a Pokemon
2. Show all Pokemon
3. Train all Pokemon
4. Try breeding two Pokemon
5. Sort Pokemon by level
6. Sort Pokemon by type
7. Quit`

// Shell owns the collection and the path it is saved to.
type Shell struct {
	in   *bufio.Reader
	out  io.Writer
	herd *elevage.Elevage
	path string
}

// New returns a shell reading from in and writing to out. The collection is
// saved to path after every mutating choice.
func New(in io.Reader, out io.Writer, herd *elevage.Elevage, path string) *Shell {
	return &Shell{
		in:   bufio.NewReader(in),
		out:  out,
		herd: herd,
		path: path,
	}
}

// Run loops over menu choices until the user quits, input ends, or ctx is
// cancelled. It returns an error only when reading input or saving fails.
func (s *Shell) Run(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	for ctx.Err() == nil {
		fmt.Fprintln(s.out, menu)
		choice, err := s.readLine("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("input closed, leaving menu")
				return nil
			}
			return err
		}

		quit, err := s.Dispatch(ctx, choice)
		if errors.Is(err, io.EOF) {
			log.Debug("input closed during prompt, leaving menu", "choice", choice)
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	log.Debug("context done, leaving menu", "err", ctx.Err())
	return nil
}

// Dispatch runs a single menu choice. It reports quit for ChoiceQuit.
func (s *Shell) Dispatch(ctx context.Context, choice string) (bool, error) {
	ctxlog.FromContext(ctx).Debug("dispatch", "choice", choice, "size", s.herd.Len())

	switch choice {
	case ChoiceAdd:
		c, err := s.promptCreature()
		if err != nil {
			return false, err
		}
		s.herd.Add(c)
		fmt.Fprintln(s.out, "Pokemon added successfully!")
		return false, s.save(ctx)

	case ChoiceDisplay:
		fmt.Fprintln(s.out, "Showing all Pokemon:")
		s.herd.Display(s.out)
		return false, nil

	case ChoiceTrain:
		input, err := s.readLine("Enter the XP to add to each Pokemon: ")
		if err != nil {
			return false, err
		}
		for _, up := range s.herd.Train(parseCount(input, defaultPoints)) {
			fmt.Fprintln(s.out, up)
		}
		fmt.Fprintln(s.out, "All Pokemon have been trained!")
		return false, s.save(ctx)

	case ChoiceBreed:
		return false, s.breed(ctx)

	case ChoiceSortLevel:
		s.herd.SortByLevel()
		fmt.Fprintln(s.out, "Pokemon sorted by level.")
		return false, s.save(ctx)

	case ChoiceSortKind:
		s.herd.SortByKind()
		fmt.Fprintln(s.out, "Pokemon sorted by type.")
		return false, s.save(ctx)

	case ChoiceQuit:
		fmt.Fprintln(s.out, "Goodbye!")
		return true, nil

	default:
		fmt.Fprintln(s.out, "Invalid choice, please try again.")
		return false, nil
	}
}

// breed reads two 1-based indices and attempts breeding. Index 0 (including
// unparseable input) is rejected before lookup and nothing is saved; every
// other attempt saves, whatever its outcome.
func (s *Shell) breed(ctx context.Context) error {
	first, err := s.readLine("Enter the index of the first Pokemon (starting at 1): ")
	if err != nil {
		return err
	}
	second, err := s.readLine("Enter the index of the second Pokemon (starting at 1): ")
	if err != nil {
		return err
	}
	i, j := parseCount(first, defaultIndex), parseCount(second, defaultIndex)
	if i == 0 || j == 0 {
		fmt.Fprintln(s.out, "Invalid indices.")
		return nil
	}

	child, err := s.herd.Breed(i-1, j-1)
	var be *elevage.BreedError
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "Breeding succeeded! New Pokemon generated:")
		child.Display(s.out)
	case errors.Is(err, types.ErrInvalidIndex):
		fmt.Fprintln(s.out, "Invalid index.")
	case errors.As(err, &be):
		fmt.Fprintf(s.out, "Breeding impossible between %s and %s\n", be.First, be.Second)
	default:
		return err
	}
	return s.save(ctx)
}

// promptCreature collects the five attributes of a new creature.
func (s *Shell) promptCreature() (types.Creature, error) {
	name, err := s.readLine("Enter the Pokemon's name: ")
	if err != nil {
		return types.Creature{}, err
	}

	input, err := s.readLine("Enter the initial level: ")
	if err != nil {
		return types.Creature{}, err
	}
	level := parseCount(input, defaultLevel)

	fmt.Fprintln(s.out, "Choose the Pokemon's type:")
	for i, k := range types.Kinds() {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, k)
	}
	input, err = s.readLine("Your choice (1-4): ")
	if err != nil {
		return types.Creature{}, err
	}
	kind, ok := types.ParseKindChoice(input)
	if !ok {
		fmt.Fprintf(s.out, "Invalid choice, default type: %s\n", kind)
	}

	input, err = s.readLine("Enter the initial XP: ")
	if err != nil {
		return types.Creature{}, err
	}
	xp := parseCount(input, defaultExperience)

	fmt.Fprintln(s.out, "Choose the gender:")
	for i, g := range types.Genders() {
		fmt.Fprintf(s.out, "%d - %s\n", i+1, g)
	}
	input, err = s.readLine("Your choice (1-2): ")
	if err != nil {
		return types.Creature{}, err
	}
	gender, ok := types.ParseGenderChoice(input)
	if !ok {
		fmt.Fprintf(s.out, "Invalid choice, default gender: %s\n", gender)
	}

	return types.NewCreature(name, level, kind, xp, gender), nil
}

// save writes the collection to the shell's file. A failure is returned to
// the caller, which ends the session.
func (s *Shell) save(ctx context.Context) error {
	log := ctxlog.FromContext(ctx)
	if err := s.herd.Persist(s.path); err != nil {
		log.Error("save failed", "path", s.path, "err", err)
		return err
	}
	log.Info("collection saved", "path", s.path, "count", s.herd.Len())
	fmt.Fprintf(s.out, "Data saved to file '%s'\n", s.path)
	return nil
}

// readLine prints prompt and returns the next input line with surrounding
// whitespace removed. Lines have no length limit. A final line without a
// newline is returned as is; io.EOF is returned once input is exhausted.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(line), nil
}

// maxCount is the largest number parseCount accepts: the unsigned 32-bit
// range, capped so it still fits a non-negative int on 32-bit platforms.
var maxCount = min(uint64(math.MaxUint32), uint64(math.MaxInt))

// parseCount parses a non-negative decimal number with an optional leading
// '+', returning def for anything else.
func parseCount(s string, def int) int {
	return parseBounded(s, def, maxCount)
}

func parseBounded(s string, def int, limit uint64) int {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil || n > limit {
		return def
	}
	return int(n)
}
