package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/outcome"
	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/toss"
	"github.com/lixenwraith/baebae/vmath"
)

func newTestView(t *testing.T) (*View, *engine.ManualClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	clock := engine.NewManualClock(time.Unix(1000, 0))
	v := NewView(Options{
		Screen:   screen,
		Clock:    clock,
		Settings: config.NewSettings(config.Config{StreakMode: true}),
		Status:   status.NewRegistry(),
		Up:       vmath.LocalUp(parameter.BlockLeft.Rotation),
		Caption:  []string{"平安"},
	})
	return v, clock
}

func findRow(buf *RenderBuffer, s string) int {
	_, h := buf.Bounds()
	for y := 0; y < h; y++ {
		if strings.Contains(buf.Row(y), s) {
			return y
		}
	}
	return -1
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex(outcome.ColorAffirmative)
	if err != nil {
		t.Fatalf("Failed to parse hex: %v", err)
	}
	if c != (RGB{0xff, 0x33, 0x33}) {
		t.Errorf("Unexpected ParseHex result %v", c)
	}
	for _, bad := range []string{"", "#fff", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("Expected ParseHex(%q) to fail", bad)
		}
	}
	if got := HexOr("nope", RgbText); got != RgbText {
		t.Errorf("Unexpected HexOr fallback %v", got)
	}
}

func TestScaleClamps(t *testing.T) {
	c := RGB{200, 100, 0}
	if got := c.Scale(2); got != (RGB{255, 200, 0}) {
		t.Errorf("Unexpected Scale(2) %v", got)
	}
	if got := c.Scale(-1); got != RGBBlack {
		t.Errorf("Unexpected Scale(-1) %v", got)
	}
	if got := RGBBlack.Blend(RGBWhite, 1); got != RGBWhite {
		t.Errorf("Unexpected Blend(1) %v", got)
	}
}

func TestBufferWideText(t *testing.T) {
	b := NewRenderBuffer(10, 2)
	end := b.Text(0, 0, "聖筊a", RgbText, false)
	if end != 5 {
		t.Errorf("Expected Text end to be 5, got %d", end)
	}
	if got := b.Row(0); !strings.HasPrefix(got, "聖筊a") {
		t.Errorf("Unexpected Row %q", got)
	}
	if !b.Get(1, 0).Wide {
		t.Error("Trailing half of wide rune not marked")
	}
	// Out of bounds writes are dropped
	b.SetWithBg(-1, 5, 'x', RgbText, RgbText)
	if b.Get(-1, 5) != (Cell{}) {
		t.Error("Out of bounds Get returned data")
	}
}

func TestBufferResizeClears(t *testing.T) {
	b := NewRenderBuffer(4, 4)
	b.SetWithBg(1, 1, 'x', RgbText, RgbTable)
	b.Resize(2, 2)
	if w, h := b.Bounds(); w != 2 || h != 2 {
		t.Fatalf("Unexpected Bounds %d,%d", w, h)
	}
	if b.Get(1, 1).Rune != 0 {
		t.Error("Resize kept old content")
	}
}

func TestProjection(t *testing.T) {
	p := NewProjection(80, 24)

	x, y := p.Project(mgl64.Vec3{0, 0, 0})
	if x != 40 || y != p.FloorY {
		t.Errorf("Expected origin to be 40,%d, got %d,%d", p.FloorY, x, y)
	}
	if _, y := p.Project(mgl64.Vec3{0, 2, 0}); y >= p.FloorY {
		t.Errorf("Raised point row %d should be above floor %d", y, p.FloorY)
	}
	if x, _ := p.Project(mgl64.Vec3{0, 0, 1}); x <= 40 {
		t.Errorf("+Z column %d should be right of center", x)
	}
	if x, _ := p.Project(mgl64.Vec3{0, 0, -sceneHalfZ}); x < 0 {
		t.Errorf("Left wall column %d should be on screen", x)
	}
	if p.Depth(mgl64.Vec3{1, 0, 0}) <= p.Depth(mgl64.Vec3{-1, 0, 0}) {
		t.Error("+X not nearer than -X")
	}
}

func TestInstructionPerState(t *testing.T) {
	v, _ := newTestView(t)

	v.Compose()
	if findRow(v.Buffer(), InstructionReady) < 0 {
		t.Error("Ready instruction missing")
	}

	v.StateChanged(toss.StateReady, toss.StateTossing)
	v.Compose()
	if findRow(v.Buffer(), InstructionReady) >= 0 || findRow(v.Buffer(), InstructionResult) >= 0 {
		t.Error("Instruction shown while tossing")
	}

	v.StateChanged(toss.StateTossing, toss.StateResult)
	v.ShowResult(toss.Result{Kind: outcome.Affirmative, Text: outcome.PlayfulText[outcome.Affirmative]})
	v.Compose()
	if findRow(v.Buffer(), InstructionResult) < 0 {
		t.Error("Result instruction missing")
	}
	if y := findRow(v.Buffer(), "聖筊"); y != sceneTopRow {
		t.Errorf("Expected result title row to be %d, got %d", sceneTopRow, y)
	}

	v.StateChanged(toss.StateResult, toss.StateReady)
	v.Compose()
	if findRow(v.Buffer(), "歐氣爆發") >= 0 {
		t.Error("Result still shown after reset")
	}
}

func TestNotificationExpires(t *testing.T) {
	v, clock := newTestView(t)

	v.Notify("日期格式錯誤", "請輸入 8 位數字")
	v.Compose()
	if findRow(v.Buffer(), "日期格式錯誤") < 0 {
		t.Fatal("Notification not drawn")
	}

	clock.Advance(parameter.NotificationHold - time.Millisecond)
	v.Compose()
	if findRow(v.Buffer(), "日期格式錯誤") < 0 {
		t.Error("Notification gone before hold elapsed")
	}

	clock.Advance(time.Millisecond)
	v.Compose()
	if findRow(v.Buffer(), "日期格式錯誤") >= 0 {
		t.Error("Notification still drawn after hold")
	}
}

func TestStreakDotsAndMilestone(t *testing.T) {
	v, _ := newTestView(t)
	w, _ := v.Buffer().Bounds()
	first := w - 2*parameter.StreakThreshold - 1

	v.UpdateStreak(2, true)
	v.Compose()
	buf := v.Buffer()
	for i, want := range []RGB{RgbStreakOn, RgbStreakOn, RgbStreakOff} {
		c := buf.Get(first+2*i, 0)
		if c.Rune != '●' || c.Fg != want {
			t.Errorf("Expected dot %d to be %v, got %q %v", i+1, want, c.Rune, c.Fg)
		}
	}
	if findRow(buf, MilestoneTitle) >= 0 {
		t.Error("Milestone shown below threshold")
	}

	v.UpdateStreak(parameter.StreakThreshold, true)
	v.Compose()
	if findRow(v.Buffer(), MilestoneTitle) < 0 {
		t.Error("Milestone overlay missing")
	}

	v.UpdateStreak(0, false)
	v.Compose()
	if v.Buffer().Get(first, 0).Rune == '●' {
		t.Error("Dots drawn with streak disabled")
	}
}

func TestBlocksDrawn(t *testing.T) {
	v, _ := newTestView(t)
	left := physics.Pose{Translation: mgl64.Vec3{0, 3, -1.9}, Rotation: parameter.BlockLeft.Rotation.Quat()}
	right := physics.Pose{Translation: mgl64.Vec3{0, 3, 1.9}, Rotation: parameter.BlockRight.Rotation.Quat()}

	v.Compose()
	if countBlockCells(v.Buffer()) != 0 {
		t.Fatal("Blocks drawn before sync")
	}

	v.SyncBodies(left, right)
	v.Compose()
	if n := countBlockCells(v.Buffer()); n < 10 {
		t.Errorf("Expected block cells to be a visible pair, got %d", n)
	}

	// Face-up blocks show the lacquered face from above
	red := 0
	w, h := v.Buffer().Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := v.Buffer().Get(x, y)
			if c.Rune == '█' && int(c.Fg.R) > 2*int(c.Fg.G) {
				red++
			}
		}
	}
	if red == 0 {
		t.Error("No lacquered face cells visible")
	}
}

func countBlockCells(b *RenderBuffer) int {
	n := 0
	w, h := b.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Get(x, y).Rune == '█' {
				n++
			}
		}
	}
	return n
}

func TestHeaderAndEditor(t *testing.T) {
	v, _ := newTestView(t)
	v.SetMuted(true)
	v.SetEditor(true, "1990")
	v.SetSummary("last 10: 聖筊 4")
	v.Compose()

	buf := v.Buffer()
	_, h := buf.Bounds()
	if !strings.Contains(buf.Row(0), "[m]靜音:開") {
		t.Errorf("Unexpected header %q", buf.Row(0))
	}
	if !strings.Contains(buf.Row(h-2), "1990____") {
		t.Errorf("Unexpected editor row %q", buf.Row(h-2))
	}
	if !strings.Contains(buf.Row(h-1), "last 10") {
		t.Errorf("Unexpected status row %q", buf.Row(h-1))
	}
	if findRow(buf, "平安") < 0 {
		t.Error("Caption missing")
	}
}

func TestFlickerStaysNearBase(t *testing.T) {
	f := NewFlicker(42)
	for i := 0; i < 600; i++ {
		got := f.Advance(16 * time.Millisecond)
		if got < FireBase-FireSlow-FireFast || got > FireBase+FireSlow+FireFast {
			t.Fatalf("Intensity %v out of band at frame %d", got, i)
		}
	}
	a, b := NewFlicker(1), NewFlicker(1)
	if a.Advance(time.Second) != b.Advance(time.Second) {
		t.Error("Same seed diverged")
	}
}

func TestDrawFlushesToScreen(t *testing.T) {
	v, _ := newTestView(t)
	v.Draw()
	v.Vibrate(parameter.ImpactVibration...)
}
