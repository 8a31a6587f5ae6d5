package scenes

import (
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// binding maps an action to the keys and standard gamepad buttons that
// trigger it.
type binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

var (
	moveLeft  = binding{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}}
	moveRight = binding{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}}
	moveUp    = binding{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}}
	moveDown  = binding{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}}
	prone     = binding{[]ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}}
)

// actionBindings are edge-triggered: an action fires on the press.
var actionBindings = map[cfg.ActionID]binding{
	cfg.ActionFire:          {[]ebiten.Key{ebiten.KeySpace, ebiten.KeyJ}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	cfg.ActionSelectFists:   {[]ebiten.Key{ebiten.Key1}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
	cfg.ActionSelectGun:     {[]ebiten.Key{ebiten.Key2}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
	cfg.ActionSelectShotgun: {[]ebiten.Key{ebiten.Key3}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
	cfg.ActionPause:         {[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}},
	cfg.ActionLevelPrev:     {[]ebiten.Key{ebiten.KeyBracketLeft}, nil},
	cfg.ActionLevelNext:     {[]ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyN}, nil},
}

// actionOrder keeps the per-frame action queue deterministic.
var actionOrder = []cfg.ActionID{
	cfg.ActionSelectFists,
	cfg.ActionSelectGun,
	cfg.ActionSelectShotgun,
	cfg.ActionFire,
	cfg.ActionPause,
	cfg.ActionLevelPrev,
	cfg.ActionLevelNext,
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// pollIntent reads the held movement keys.
func pollIntent() components.IntentData {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	return components.IntentData{
		Left:  held(moveLeft),
		Right: held(moveRight),
		Up:    held(moveUp),
		Down:  held(moveDown),
	}
}

// pollActions returns the actions pressed this frame. Prone is held: the
// press goes down and the release gets up.
func pollActions() []cfg.ActionID {
	var out []cfg.ActionID
	if pressed(prone) {
		out = append(out, cfg.ActionProneDown)
	}
	if released(prone) {
		out = append(out, cfg.ActionProneUp)
	}
	for _, id := range actionOrder {
		if pressed(actionBindings[id]) {
			out = append(out, id)
		}
	}
	return out
}

func held(b binding) bool {
	for _, key := range b.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, btn := range b.Buttons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

func pressed(b binding) bool {
	for _, key := range b.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		for _, btn := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

func released(b binding) bool {
	for _, key := range b.Keys {
		if inpututil.IsKeyJustReleased(key) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		for _, btn := range b.Buttons {
			if inpututil.IsStandardGamepadButtonJustReleased(gp, btn) {
				return true
			}
		}
	}
	return false
}
