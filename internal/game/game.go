package game

import (
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Game adapts an engine.Board to the registry.Game interface.
type Game struct {
	base    Variant // Variant the game was registered as
	variant Variant // Variant in play after config overrides
	board   *engine.Board

	// Screen dimensions
	screenW int
	screenH int

	tooSmall bool
	won      bool
	justWon  bool              // Target reached on the last step
	lastMove engine.MoveResult // Drives the merge highlight and score delta
}

// New creates a game for the given variant. Reset must be called before play.
func New(v Variant) *Game {
	return &Game{base: v, variant: v}
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// ID returns the variant identifier of the board in play.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title()
}

// Reset starts a new board. Grid size and start tiles from cfg override the
// variant when set.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	v := g.base
	if cfg.GridSize > 0 && cfg.GridSize != v.Size {
		v = CustomVariant(cfg.GridSize, cfg.StartTiles)
	} else if cfg.StartTiles > 0 {
		v.StartTiles = cfg.StartTiles
	}

	board, err := engine.New(v.Size, v.StartTiles, engine.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	g.variant = v
	g.board = board
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.won = false
	g.justWon = false
	g.lastMove = engine.MoveResult{}
	g.checkScreenSize()
	return nil
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardDims(g.variant.Size)
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+2
}

// Step applies at most one move from the input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.board == nil || g.tooSmall || g.board.IsFinished() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := frameDirection(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.lastMove = g.board.Move(dir)
	g.justWon = false
	if !g.won && g.variant.Target > 0 && g.board.MaxTile() >= g.variant.Target {
		g.won = true
		g.justWon = true
	}

	return core.StepResult{State: g.State(), Moved: g.lastMove.Changed}
}

// frameDirection picks the first move action present in the frame.
func frameDirection(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.DirUp, true
	case in.Has(core.ActionDown):
		return engine.DirDown, true
	case in.Has(core.ActionLeft):
		return engine.DirLeft, true
	case in.Has(core.ActionRight):
		return engine.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		MaxTile:  g.board.MaxTile(),
		Moves:    g.board.Moves(),
		GameOver: g.board.IsFinished(),
		Won:      g.won,
	}
}

// Snapshot returns the engine snapshot of the board in play.
func (g *Game) Snapshot() engine.Snapshot {
	if g.board == nil {
		return engine.Snapshot{}
	}
	return g.board.Snapshot()
}
