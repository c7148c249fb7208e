package fire

import (
	"errors"
	"fmt"

	"doomfire/internal/core"
)

// sourceStep bounds the random change applied to each source cell by a single
// increase or decrease command.
const sourceStep = 13

// ErrUnknownCommand reports a Command outside the defined set.
var ErrUnknownCommand = errors.New("fire: unknown command")

// Command is a discrete user request produced by an input adapter.
type Command uint8

const (
	CommandWindNone Command = iota + 1
	CommandWindLeft
	CommandWindRight
	CommandIncreaseSource
	CommandDecreaseSource
)

func (c Command) String() string {
	switch c {
	case CommandWindNone:
		return "wind-none"
	case CommandWindLeft:
		return "wind-left"
	case CommandWindRight:
		return "wind-right"
	case CommandIncreaseSource:
		return "increase-source"
	case CommandDecreaseSource:
		return "decrease-source"
	default:
		return fmt.Sprintf("command(%d)", uint8(c))
	}
}

// Controller owns the wind state and drives a Grid. All random draws come
// from a single stream so a run is reproducible from its seed.
type Controller struct {
	grid *Grid
	rng  core.Rand
	wind Wind
}

// NewController returns a controller with the wind blowing right.
func NewController(grid *Grid, rng core.Rand) *Controller {
	return &Controller{grid: grid, rng: rng, wind: WindRight}
}

// Grid returns the grid driven by the controller.
func (c *Controller) Grid() *Grid { return c.grid }

// Wind reports the current wind direction.
func (c *Controller) Wind() Wind { return c.wind }

// SetWind changes the wind direction.
func (c *Controller) SetWind(w Wind) { c.wind = w }

// IncreaseSource raises each source cell below MaxIntensity by a random
// amount in [0, 13], capped at MaxIntensity.
func (c *Controller) IncreaseSource() error {
	if err := c.grid.ready(); err != nil {
		return err
	}
	row := c.grid.sourceRow()
	for x, cur := range row {
		if cur >= MaxIntensity {
			continue
		}
		inc := c.rng.IntRange(0, sourceStep)
		row[x] = uint8(min(int(cur)+inc, MaxIntensity))
	}
	return nil
}

// DecreaseSource lowers each non-zero source cell by a random amount in
// [0, 13], floored at zero.
func (c *Controller) DecreaseSource() error {
	if err := c.grid.ready(); err != nil {
		return err
	}
	row := c.grid.sourceRow()
	for x, cur := range row {
		if cur == 0 {
			continue
		}
		dec := c.rng.IntRange(0, sourceStep)
		row[x] = uint8(max(int(cur)-dec, 0))
	}
	return nil
}

// Apply executes a single command.
func (c *Controller) Apply(cmd Command) error {
	switch cmd {
	case CommandWindNone:
		c.SetWind(WindNone)
	case CommandWindLeft:
		c.SetWind(WindLeft)
	case CommandWindRight:
		c.SetWind(WindRight)
	case CommandIncreaseSource:
		return c.IncreaseSource()
	case CommandDecreaseSource:
		return c.DecreaseSource()
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd)
	}
	return nil
}

// Tick propagates the fire once using the current wind.
func (c *Controller) Tick() error {
	if c.grid == nil {
		return ErrNotInitialized
	}
	return c.grid.Propagate(c.wind, c.rng)
}
