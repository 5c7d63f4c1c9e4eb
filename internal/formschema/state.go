package formschema

import "fmt"

// State is the value state of a form being filled in.
type State struct {
	schema Schema
	values map[string]any
}

// NewState starts a form with initial values. The values are copied.
func (s Schema) NewState(values map[string]any) *State {
	v := make(map[string]any, len(values))
	for k, val := range values {
		v[k] = val
	}
	return &State{schema: s, values: v}
}

// Values returns a copy of the current values.
func (st *State) Values() map[string]any {
	v := make(map[string]any, len(st.values))
	for k, val := range st.values {
		v[k] = val
	}
	return v
}

// Set changes the value of a field.
//
// For TOWER_FLOOR fields, a value whose tower differs from the current one
// clears the floor, so a floor of another tower can never stay selected.
func (st *State) Set(key string, value any) error {
	f, ok := st.schema.Field(key)
	if !ok {
		return fmt.Errorf("%s %w", key, ErrUnknownField)
	}

	tf, ok := f.(TowerFloor)
	if !ok {
		st.values[key] = value
		return nil
	}

	next, err := toLocation(value)
	if err != nil {
		return fmt.Errorf("%s %w", key, err)
	}

	if current, ok := st.location(key); ok && current.TowerID != next.TowerID {
		next.FloorID = 0
	}

	if next.TowerID != 0 {
		if _, ok := tf.Tower(next.TowerID); !ok {
			return fmt.Errorf("%s %w", key, ErrTowerNotFound)
		}
	}

	if next.FloorID != 0 {
		if err := tf.Check(next); err != nil {
			return fmt.Errorf("%s %w", key, err)
		}
	}

	st.values[key] = next
	return nil
}

// SelectTower changes the tower of a TOWER_FLOOR field and resets its floor.
func (st *State) SelectTower(key string, towerID uint64) error {
	current, _ := st.location(key)
	if current.TowerID == towerID {
		return nil
	}
	return st.Set(key, Location{TowerID: towerID})
}

// SelectFloor changes the floor of a TOWER_FLOOR field. The floor must belong to the selected tower.
func (st *State) SelectFloor(key string, floorID uint64) error {
	current, _ := st.location(key)
	return st.Set(key, Location{TowerID: current.TowerID, FloorID: floorID})
}

// FloorOptions returns the floors selectable for the current tower of a TOWER_FLOOR field.
func (st *State) FloorOptions(key string) []Floor {
	f, ok := st.schema.Field(key)
	if !ok {
		return nil
	}

	tf, ok := f.(TowerFloor)
	if !ok {
		return nil
	}

	current, _ := st.location(key)
	return tf.FloorOptions(current.TowerID)
}

// Validate validates the current values against the schema.
func (st *State) Validate() (map[string]any, error) {
	return st.schema.Validate(st.values)
}

func (st *State) location(key string) (Location, bool) {
	value, ok := st.values[key]
	if !ok || value == nil {
		return Location{}, false
	}

	l, err := toLocation(value)
	if err != nil {
		return Location{}, false
	}

	return l, true
}
