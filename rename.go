package nutrition

import (
	"fmt"
	"io"
	"os"
)

// RenameFood replaces the food identified by oldID with rec (carrying the
// new id) and rewrites every reference to oldID in recipes and in the day
// journal. Logged quantities, portion overrides, custom prices and item
// unique ids are untouched.
//
// The three collections are staged to temp files first and only then
// committed by renames, so a failure mid-way leaves the prior state intact.
func (s *Store) RenameFood(oldID string, rec *Food) error {
	newID := rec.ID
	if newID == "" {
		return fmt.Errorf("food %q has no id", rec.Name)
	}
	foods, err := s.Foods()
	if err != nil {
		return err
	}
	if _, ok := foods[oldID]; !ok {
		return fmt.Errorf("%w: %q", ErrFoodNotFound, oldID)
	}
	if _, taken := foods[newID]; taken && newID != oldID {
		return fmt.Errorf("%w: %q", ErrFoodExists, newID)
	}
	meals, err := s.Meals()
	if err != nil {
		return err
	}
	days, err := s.Days()
	if err != nil {
		return err
	}

	delete(foods, oldID)
	foods[newID] = rec
	for _, m := range meals {
		for i := range m.Ingredients {
			if m.Ingredients[i].FoodID == oldID {
				m.Ingredients[i].FoodID = newID
			}
		}
		m.Recompute(foods)
	}
	for _, d := range days {
		for slot := range d.Meals {
			for i := range d.Meals[slot] {
				it := &d.Meals[slot][i]
				if it.Kind == FoodRef && it.RefID == oldID {
					it.RefID = newID
				}
				if w, ok := it.CustomPortions[oldID]; ok {
					delete(it.CustomPortions, oldID)
					it.CustomPortions[newID] = w
				}
			}
		}
	}

	type staged struct{ name, tmp string }
	var tmps []staged
	abort := func(err error) error {
		for _, st := range tmps {
			os.Remove(st.tmp)
		}
		return err
	}
	stage := func(name string, encode func(io.Writer) error) error {
		tmp, err := s.stageFile(name, encode)
		if err != nil {
			return err
		}
		tmps = append(tmps, staged{name, tmp})
		return nil
	}
	if err := stage(foodsFile, func(w io.Writer) error { return EncodeFoods(w, foods) }); err != nil {
		return abort(err)
	}
	if err := stage(mealsFile, func(w io.Writer) error { return EncodeMeals(w, meals) }); err != nil {
		return abort(err)
	}
	if err := stage(daysFile, func(w io.Writer) error { return EncodeDays(w, days) }); err != nil {
		return abort(err)
	}
	for _, st := range tmps {
		if err := os.Rename(st.tmp, s.path(st.name)); err != nil {
			return fmt.Errorf("could not commit %q: %w", st.name, err)
		}
	}
	return nil
}
