package scene

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/registry"
)

func init() {
	registry.Register(1, func() registry.Stage { return NewEmailBlast() })
	registry.Register(2, func() registry.Stage { return NewExcelFireDrill() })
	registry.Register(3, func() registry.Stage { return NewPuzzleGame() })
	registry.Register(4, func() registry.Stage { return NewFridayEscape() })
}

// Start resets the run and returns the first scene: the main menu when from
// is empty, otherwise an interlude leading into the stage with that id.
// Runs that skip the first stage are practice runs.
func Start(ctx *RunContext, from string) (Scene, error) {
	ctx.ResetRun()
	if from == "" {
		return NewMainMenu(), nil
	}

	st, err := registry.Create(from)
	if err != nil {
		return nil, err
	}
	sc, ok := st.(Scene)
	if !ok {
		return nil, fmt.Errorf("scene: stage %q is not playable", from)
	}
	ctx.Practice = registry.List()[0].ID != from
	return NewInterlude(sc), nil
}
