package nutrition

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the file-backed record store: one JSONL file per collection in a
// data directory, plus the goals singleton. Single-record saves rewrite the
// collection file through a temp file and an atomic rename, so a crash never
// leaves a half-written collection behind.
type Store struct {
	dir string
}

const (
	foodsFile = "foods.jsonl"
	mealsFile = "meals.jsonl"
	daysFile  = "days.jsonl"
	goalsFile = "goals.json"
)

// ErrFoodExists is reported by RenameFood when the target id already
// identifies a food. Nothing has been mutated when it is returned.
var ErrFoodExists = errors.New("food id already exists")

// ErrFoodNotFound is reported when an operation names an unknown food.
var ErrFoodNotFound = errors.New("food not found")

// Open opens the store rooted at dir, creating the directory if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's data directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string { return filepath.Join(s.dir, name) }

// readFile opens a collection file and decodes it; a missing file is an
// empty collection, not an error.
func readFile[T any](s *Store, name string, decode func(io.Reader) (T, error), empty T) (T, error) {
	f, err := os.Open(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("could not open %q for reading: %w", s.path(name), err)
	}
	defer f.Close()
	v, err := decode(f)
	if err != nil {
		return empty, fmt.Errorf("in %q: %w", s.path(name), err)
	}
	return v, nil
}

// writeFile encodes a collection into a temp file and renames it into place.
// The rename is the commit point.
func (s *Store) writeFile(name string, encode func(io.Writer) error) error {
	tmp, err := s.stageFile(name, encode)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not commit %q: %w", name, err)
	}
	return nil
}

// stageFile writes a collection to a temp file next to its final location
// and returns the temp path, leaving the commit (rename) to the caller.
func (s *Store) stageFile(name string, encode func(io.Writer) error) (string, error) {
	tmp := s.path(name) + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("could not create %q: %w", tmp, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("could not write %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("could not close %q: %w", tmp, err)
	}
	return tmp, nil
}

// Foods loads the food collection.
func (s *Store) Foods() (map[string]*Food, error) {
	return readFile(s, foodsFile, DecodeFoods, map[string]*Food{})
}

// Meals loads the composed-meal collection.
func (s *Store) Meals() (map[string]*ComposedMeal, error) {
	return readFile(s, mealsFile, DecodeMeals, map[string]*ComposedMeal{})
}

// Days loads the whole day journal.
func (s *Store) Days() (map[Date]*Day, error) {
	return readFile(s, daysFile, DecodeDays, map[Date]*Day{})
}

// Day loads one day's record. Records are created lazily: an unrecorded
// date comes back as a fresh empty Day, persisted on first save.
func (s *Store) Day(date Date) (*Day, error) {
	days, err := s.Days()
	if err != nil {
		return nil, err
	}
	if day, ok := days[date]; ok {
		return day, nil
	}
	return NewDay(date), nil
}

// Goals loads the goals singleton, falling back to defaults when the user
// never set any.
func (s *Store) Goals() (Goals, error) {
	f, err := os.Open(s.path(goalsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultGoals(), nil
	}
	if err != nil {
		return Goals{}, fmt.Errorf("could not open %q for reading: %w", s.path(goalsFile), err)
	}
	defer f.Close()
	return DecodeGoals(f)
}

// SaveFood upserts one food record.
func (s *Store) SaveFood(f *Food) error {
	if f.ID == "" {
		return fmt.Errorf("food %q has no id", f.Name)
	}
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	foods[f.ID] = f
	return s.writeFile(foodsFile, func(w io.Writer) error { return EncodeFoods(w, foods) })
}

// DeleteFood removes a food record. References to it in past days and in
// recipes are left dangling on purpose: the resolver degrades them to
// zero-contribution, so history stays displayable.
func (s *Store) DeleteFood(id string) error {
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	if _, ok := foods[id]; !ok {
		return fmt.Errorf("%w: %q", ErrFoodNotFound, id)
	}
	delete(foods, id)
	return s.writeFile(foodsFile, func(w io.Writer) error { return EncodeFoods(w, foods) })
}

// SaveMeal validates, recomputes the per-100g cache, and upserts one
// composed meal. The cache recompute is unconditional so a stale cache can
// never be persisted alongside a structural change.
func (s *Store) SaveMeal(m *ComposedMeal) error {
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	meals, err := s.Meals()
	if err != nil {
		return err
	}
	if err := ValidateMeal(m, foods, meals); err != nil {
		return err
	}
	m.Recompute(foods)
	meals[m.ID] = m
	return s.writeFile(mealsFile, func(w io.Writer) error { return EncodeMeals(w, meals) })
}

// DeleteMeal removes a composed meal record.
func (s *Store) DeleteMeal(id string) error {
	meals, err := s.Meals()
	if err != nil {
		return err
	}
	if _, ok := meals[id]; !ok {
		return fmt.Errorf("meal %q not found", id)
	}
	delete(meals, id)
	return s.writeFile(mealsFile, func(w io.Writer) error { return EncodeMeals(w, meals) })
}

// SaveDay upserts one day record.
func (s *Store) SaveDay(d *Day) error {
	if d.Date.IsZero() {
		return fmt.Errorf("day has no date")
	}
	days, err := s.Days()
	if err != nil {
		return err
	}
	days[d.Date] = d
	return s.writeFile(daysFile, func(w io.Writer) error { return EncodeDays(w, days) })
}

// SaveGoals stores the goals singleton.
func (s *Store) SaveGoals(g Goals) error {
	return s.writeFile(goalsFile, func(w io.Writer) error { return EncodeGoals(w, g) })
}

// Fmt rewrites every collection in canonical form: records sorted, legacy
// price shapes migrated away, and every composed meal's cache recomputed
// against the current foods.
func (s *Store) Fmt() error {
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	meals, err := s.Meals()
	if err != nil {
		return err
	}
	days, err := s.Days()
	if err != nil {
		return err
	}
	for _, m := range meals {
		m.Recompute(foods)
	}
	if err := s.writeFile(foodsFile, func(w io.Writer) error { return EncodeFoods(w, foods) }); err != nil {
		return err
	}
	if err := s.writeFile(mealsFile, func(w io.Writer) error { return EncodeMeals(w, meals) }); err != nil {
		return err
	}
	return s.writeFile(daysFile, func(w io.Writer) error { return EncodeDays(w, days) })
}
