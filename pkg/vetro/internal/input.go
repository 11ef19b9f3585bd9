package internal

import (
	"sync"

	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Event is a processed input event in terms of virtual buttons.
type Event struct {
	Button  constants.VirtualButton
	Pressed bool
}

// InputProcessor translates raw SDL keyboard and controller events into
// virtual button events. Keyboard mappings cover development on a desktop;
// controller mappings cover the target handhelds.
type InputProcessor struct {
	keyMap    map[sdl.Keycode]constants.VirtualButton
	buttonMap map[uint8]constants.VirtualButton
	axisHeld  struct{ x, y int8 } // -1, 0, +1 per axis for analog-to-dpad conversion
}

var (
	inputProcessorOnce sync.Once
	inputProcessor     *InputProcessor

	controllers []*sdl.GameController
)

// InitInputProcessor sets up input handling and opens attached controllers.
// Called once from Init.
func InitInputProcessor() {
	inputProcessorOnce.Do(func() {
		inputProcessor = &InputProcessor{
			keyMap:    defaultKeyMap(),
			buttonMap: defaultControllerMap(),
		}
	})

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			if c := sdl.GameControllerOpen(i); c != nil {
				controllers = append(controllers, c)
				GetInternalLogger().Debug("Opened game controller", "index", i, "name", c.Name())
			}
		}
	}
}

// GetInputProcessor returns the shared input processor.
func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

// CloseAllControllers releases every opened game controller.
func CloseAllControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

func defaultKeyMap() map[sdl.Keycode]constants.VirtualButton {
	return map[sdl.Keycode]constants.VirtualButton{
		sdl.K_UP:        constants.VirtualButtonUp,
		sdl.K_DOWN:      constants.VirtualButtonDown,
		sdl.K_LEFT:      constants.VirtualButtonLeft,
		sdl.K_RIGHT:     constants.VirtualButtonRight,
		sdl.K_RETURN:    constants.VirtualButtonA,
		sdl.K_z:         constants.VirtualButtonA,
		sdl.K_ESCAPE:    constants.VirtualButtonB,
		sdl.K_x:         constants.VirtualButtonB,
		sdl.K_a:         constants.VirtualButtonX,
		sdl.K_s:         constants.VirtualButtonY,
		sdl.K_q:         constants.VirtualButtonL1,
		sdl.K_w:         constants.VirtualButtonR1,
		sdl.K_SPACE:     constants.VirtualButtonStart,
		sdl.K_BACKSPACE: constants.VirtualButtonSelect,
		sdl.K_m:         constants.VirtualButtonMenu,
	}
}

func defaultControllerMap() map[uint8]constants.VirtualButton {
	return map[uint8]constants.VirtualButton{
		sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
		sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
		sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
		sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
		// Nintendo-style swap: the east button confirms on these devices.
		sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
		sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
		sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
		sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
		sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
		sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
		sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
		sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
		sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
	}
}

const axisThreshold = 16384

// ProcessSDLEvent converts an SDL event into a virtual button Event.
// Returns nil for events that don't map to a virtual button (repeats,
// unmapped keys, sub-threshold axis noise).
func (p *InputProcessor) ProcessSDLEvent(event sdl.Event) *Event {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button, ok := p.keyMap[e.Keysym.Sym]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttonMap[e.Button]
		if !ok {
			return nil
		}
		return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}

	case *sdl.ControllerAxisEvent:
		return p.processAxis(e)
	}

	return nil
}

// processAxis converts analog stick motion into dpad press/release events,
// tracking the held direction per axis so each crossing emits exactly one
// event.
func (p *InputProcessor) processAxis(e *sdl.ControllerAxisEvent) *Event {
	var held *int8
	var negative, positive constants.VirtualButton

	switch e.Axis {
	case sdl.CONTROLLER_AXIS_LEFTX:
		held = &p.axisHeld.x
		negative, positive = constants.VirtualButtonLeft, constants.VirtualButtonRight
	case sdl.CONTROLLER_AXIS_LEFTY:
		held = &p.axisHeld.y
		negative, positive = constants.VirtualButtonUp, constants.VirtualButtonDown
	default:
		return nil
	}

	var direction int8
	if e.Value <= -axisThreshold {
		direction = -1
	} else if e.Value >= axisThreshold {
		direction = 1
	}

	if direction == *held {
		return nil
	}

	// Release the previously held direction before reporting a new press.
	if *held != 0 {
		prev := negative
		if *held > 0 {
			prev = positive
		}
		*held = direction
		return &Event{Button: prev, Pressed: false}
	}

	*held = direction
	button := negative
	if direction > 0 {
		button = positive
	}
	return &Event{Button: button, Pressed: true}
}
