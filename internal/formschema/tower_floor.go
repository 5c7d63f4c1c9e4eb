package formschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Tower is a selectable tower with its floors.
type Tower struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Floors []Floor `json:"floors"`
}

// Floor is a selectable floor.
type Floor struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// Location is the value of a TOWER_FLOOR field.
type Location struct {
	TowerID uint64 `json:"tower_id"`
	FloorID uint64 `json:"floor_id,omitempty"`
}

// TowerFloor selects a tower and then one of that tower's floors.
type TowerFloor struct {
	Base
	Towers []Tower
}

func (f TowerFloor) Meta() Base { return f.Base }
func (TowerFloor) Kind() Kind   { return KindTowerFloor }

func (f TowerFloor) Describe() Description {
	d := describe(f.Base, KindTowerFloor)
	d.Towers = f.Towers
	return d
}

// Tower returns the tower with the given ID.
func (f TowerFloor) Tower(id uint64) (Tower, bool) {
	for _, t := range f.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return Tower{}, false
}

// FloorOptions returns the floors that can be selected for a tower.
func (f TowerFloor) FloorOptions(towerID uint64) []Floor {
	t, ok := f.Tower(towerID)
	if !ok {
		return nil
	}
	return t.Floors
}

// Check verifies that the tower exists and the floor belongs to it.
func (f TowerFloor) Check(l Location) error {
	if l.TowerID == 0 {
		if f.Required {
			return ErrRequired
		}
		if l.FloorID != 0 {
			return ErrFloorNotFound
		}
		return nil
	}

	t, ok := f.Tower(l.TowerID)
	if !ok {
		return ErrTowerNotFound
	}

	if l.FloorID == 0 {
		if f.Required {
			return errors.New("a floor must be selected")
		}
		return nil
	}

	for _, floor := range t.Floors {
		if floor.ID == l.FloorID {
			return nil
		}
	}

	return ErrFloorNotFound
}

func (f TowerFloor) Normalize(value any) (any, error) {
	l, err := toLocation(value)
	if err != nil {
		return nil, err
	}

	if err := f.Check(l); err != nil {
		return nil, err
	}

	return l, nil
}

func toLocation(value any) (Location, error) {
	switch v := value.(type) {
	case Location:
		return v, nil
	case map[string]any:
		tower, err := toID(v["tower_id"])
		if err != nil {
			return Location{}, fmt.Errorf("tower_id %w", err)
		}

		floor, err := toID(v["floor_id"])
		if err != nil {
			return Location{}, fmt.Errorf("floor_id %w", err)
		}

		return Location{TowerID: tower, FloorID: floor}, nil
	}

	return Location{}, errors.New("must be an object with tower_id and floor_id")
}

func toID(value any) (uint64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case uint64:
		return v, nil
	case int:
		if v >= 0 {
			return uint64(v), nil
		}
	case float64:
		if v >= 0 && v == float64(uint64(v)) {
			return uint64(v), nil
		}
	case json.Number:
		if id, err := strconv.ParseUint(v.String(), 10, 64); err == nil {
			return id, nil
		}
	case string:
		if v == "" {
			return 0, nil
		}
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			return id, nil
		}
	}

	return 0, errors.New("must be a positive integer")
}
