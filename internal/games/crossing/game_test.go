package crossing

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// scriptedInput returns a fixed input sequence: start, then wander around.
func scriptedInput(n int) []core.InputFrame {
	moves := []core.Action{core.ActionUp, core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionSkinNext}
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		switch {
		case i == 0:
			frames[i].Set(core.ActionSelect)
		case i%20 == 0:
			frames[i].Set(moves[(i/20)%len(moves)])
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	inputs := scriptedInput(1500)

	run := func() uint64 {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	h1, h2 := run(), run()
	if h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	hash := func(seed int64) uint64 {
		g := New()
		g.Reset(testRuntime(seed))
		for i := 0; i < 300; i++ {
			g.Step(core.NewInputFrame())
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	if hash(1) == hash(2) {
		t.Error("different seeds should produce different enemy layouts")
	}
}

func TestVariantsRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"crossing", "Crossing"},
		{"crossing_classic", "Crossing (Classic)"},
	}

	for _, tc := range tests {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %q/%q, expected %q/%q", tc.id, g.ID(), g.Title(), tc.id, tc.title)
		}
	}
}

func TestClassicVariantUsesClassicPolicy(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := NewClassic()
	g.Reset(testRuntime(1))
	if g.World().policy.Name() != "classic" {
		t.Errorf("policy = %q, expected classic", g.World().policy.Name())
	}
}

func TestStateReflectsWorld(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(3))

	st := g.State()
	if !st.Demo || st.GameOver || st.Lives != 4 || st.RemainingTime != 120 {
		t.Errorf("initial State() = %+v", st)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionSelect)
	res := g.Step(in)
	if res.State.Demo || res.State.Skin != Skins[0] {
		t.Errorf("State() after start = %+v", res.State)
	}
}

func TestRenderDemoAndHelp(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(9))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "HOW TO PLAY") {
		t.Errorf("help dialog missing from render:\n%s", out)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionBack)
	g.Step(in)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "CROSSING") {
		t.Errorf("demo title missing from render:\n%s", out)
	}
	if !strings.Contains(out, "≈") || !strings.Contains(out, "·") {
		t.Errorf("board tiles missing from render:\n%s", out)
	}
	if !strings.Contains(out, "Score 0") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
}

func TestRenderPlayerAndGameOver(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(9))
	w := g.World()

	step(w, core.ActionSelect)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "[o_o]") {
		t.Errorf("player sprite missing:\n%s", screen.String())
	}

	w.state.gameOver(ReasonOutOfTime, w)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "out of time") {
		t.Errorf("game over dialog missing:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Terminal too small") {
		t.Errorf("expected too-small message, got:\n%s", screen.String())
	}
}

func TestScreenRendererFadesAndClips(t *testing.T) {
	b, _ := NewBoard(6, 5, 101, 83)
	screen := core.NewScreen(80, 24)
	r := NewScreenRenderer(screen, DefaultSprites, b)

	// Fully off the left edge: nothing is drawn.
	r.DrawSprite(EnemySprite(ClassRed), -101, b.RowToY(2, 0), 101, 83, 1)
	if strings.Contains(screen.String(), "@") {
		t.Fatalf("off-board sprite drawn:\n%s", screen.String())
	}

	r.DrawSprite(EnemySprite(ClassRed), 0, b.RowToY(2, 0), 101, 83, 0.2)
	x := r.originX + (TileCellWidth-5)/2
	y := r.originY + 2*textLinesPerTile + 1
	cell := screen.GetCell(x, y)
	if cell.Rune != '<' || cell.Color != core.ColorDarkGray {
		t.Errorf("faded sprite cell = %q/%v, expected '<' dark gray", cell.Rune, cell.Color)
	}

	r.DrawSprite(EnemySprite(ClassRed), 0, b.RowToY(2, 0), 101, 83, 0)
	if screen.GetCell(x, y).Color != core.ColorDarkGray {
		t.Error("zero alpha sprite must not draw")
	}
}

func TestSetDifficultyOverridesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	if g.Difficulty() != "" {
		t.Fatalf("Difficulty() = %q, expected empty before any preset", g.Difficulty())
	}

	g.SetDifficulty("hard")
	g.Reset(testRuntime(5))

	cfg := g.World().Config()
	if cfg.Enemies.MinSpeed != 120 || cfg.Enemies.MaxSpeed != 400 {
		t.Errorf("speed range = [%d,%d], expected [120,400]", cfg.Enemies.MinSpeed, cfg.Enemies.MaxSpeed)
	}

	other := New()
	other.Reset(testRuntime(5))
	if got := other.World().Config().Enemies.MaxSpeed; got != 300 {
		t.Errorf("other game MaxSpeed = %d, expected default 300", got)
	}

	g.SetDifficulty("bogus")
	if g.Difficulty() != "" {
		t.Errorf("Difficulty() = %q after unknown preset, expected empty", g.Difficulty())
	}
}

func TestHelpFooterNamesCloseKeys(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(testRuntime(3))
	w := g.World()
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "space/esc to close") {
		t.Errorf("demo help should offer esc:\n%s", screen.String())
	}

	step(w, core.ActionSelect)
	step(w, core.ActionHelp)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "space to close") || strings.Contains(out, "space/esc") {
		t.Errorf("mid-game help should only offer space:\n%s", out)
	}

	step(w, core.ActionBack)
	if !w.state.HelpVisible() || w.state.BackClosesHelp() {
		t.Error("escape should not close mid-game help")
	}
}

func TestScreenRendererPartialSpritesAndText(t *testing.T) {
	b, _ := NewBoard(6, 5, 101, 83)
	screen := core.NewScreen(50, 24)
	r := NewScreenRenderer(screen, DefaultSprites, b)
	y := r.originY + textLinesPerTile

	// Half a tile off the left edge still paints the visible half.
	r.DrawSprite("water-block", -50, b.RowToY(1, 0), 101, 83, 1)
	if screen.GetCell(0, y).Rune != '≈' {
		t.Errorf("partially visible tile not drawn, row = %q", strings.Split(screen.String(), "\n")[y])
	}

	// Right-aligned text at the left edge is pulled back on screen.
	r.DrawText("Time 99", FontHUD, AlignRight, 0, 0)
	if got := strings.Split(screen.String(), "\n")[r.originY]; !strings.HasPrefix(got, "Time 99") {
		t.Errorf("text row = %q, expected it to start with %q", got, "Time 99")
	}
}
