package game

import (
	"emoji-city/internal/entity"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested city action.
type Action uint8

const (
	ActionNone Action = iota
	ActionAddBuilding
	ActionAddVehicle
	ActionAddCitizen
	ActionRemoveBuilding
	ActionRemoveVehicle
	ActionRemoveCitizen
	ActionRecycleAll
	ActionSave
	ActionRestore
	ActionCheckSingleton
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Lowercase adds, uppercase removes.
	switch ev.Rune() {
	case 'b':
		return ActionAddBuilding
	case 'v':
		return ActionAddVehicle
	case 'c':
		return ActionAddCitizen
	case 'B':
		return ActionRemoveBuilding
	case 'V':
		return ActionRemoveVehicle
	case 'C':
		return ActionRemoveCitizen
	case 'r', 'R':
		return ActionRecycleAll
	case 's', 'S':
		return ActionSave
	case 'l', 'L':
		return ActionRestore
	case 't', 'T':
		return ActionCheckSingleton
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// kindOf returns the entity kind an add or remove action targets.
func kindOf(a Action) (k entity.Kind, add, ok bool) {
	switch a {
	case ActionAddBuilding:
		return entity.Building, true, true
	case ActionAddVehicle:
		return entity.Vehicle, true, true
	case ActionAddCitizen:
		return entity.Citizen, true, true
	case ActionRemoveBuilding:
		return entity.Building, false, true
	case ActionRemoveVehicle:
		return entity.Vehicle, false, true
	case ActionRemoveCitizen:
		return entity.Citizen, false, true
	}
	return 0, false, false
}

type buttonDef struct {
	action Action
	label  string
}

// buttons is the HUD button bar, left to right.
var buttons = []buttonDef{
	{ActionAddBuilding, "+" + entity.Building.Glyph()},
	{ActionAddVehicle, "+" + entity.Vehicle.Glyph()},
	{ActionAddCitizen, "+" + entity.Citizen.Glyph()},
	{ActionRemoveBuilding, "-" + entity.Building.Glyph()},
	{ActionRemoveVehicle, "-" + entity.Vehicle.Glyph()},
	{ActionRemoveCitizen, "-" + entity.Citizen.Glyph()},
	{ActionRecycleAll, "Recycle"},
	{ActionSave, "Save"},
	{ActionRestore, "Restore"},
	{ActionCheckSingleton, "Check"},
	{ActionQuit, "Quit"},
}

func buttonLabels() []string {
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		labels[i] = b.label
	}
	return labels
}
