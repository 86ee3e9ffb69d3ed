// Package render draws the toss scene and overlays to a tcell screen.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/baebae/config"
	"github.com/lixenwraith/baebae/engine"
	"github.com/lixenwraith/baebae/engine/fsm"
	"github.com/lixenwraith/baebae/parameter"
	"github.com/lixenwraith/baebae/physics"
	"github.com/lixenwraith/baebae/status"
	"github.com/lixenwraith/baebae/toss"
)

// Instruction copy per lifecycle state
const (
	InstructionReady  = "誠心祈求  按空白鍵、點擊或搖晃 (s) 擲筊"
	InstructionResult = "點擊任意處重新擲筊"
	MilestoneTitle    = "✦ 三連聖筊 ✦"
	IdentifierPrompt  = "生日 (YYYYMMDD，留空清除): "
)

// Options configures a View
type Options struct {
	Screen   tcell.Screen
	Clock    engine.Clock
	Settings *config.Settings
	Status   *status.Registry
	Flicker  *Flicker

	// Up is the local axis that faces the sky on a face-up block
	Up mgl64.Vec3

	// Caption lines are drawn on the table front
	Caption []string
}

type notification struct {
	title   string
	message string
	until   time.Time
}

// View is the terminal presenter for the toss controller
// All methods must be called from the loop goroutine
type View struct {
	screen   tcell.Screen
	clock    engine.Clock
	settings *config.Settings
	status   *status.Registry
	flicker  *Flicker
	up       mgl64.Vec3
	caption  []string

	buf   *RenderBuffer
	depth depthBuffer
	proj  Projection

	state       fsm.StateID
	result      *toss.Result
	streak      int
	streakOn    bool
	toast       *notification
	poses       [2]physics.Pose
	posesSynced bool

	editing bool
	editBuf string
	muted   bool
	summary string
}

// NewView creates a view sized to the screen
func NewView(opts Options) *View {
	if opts.Clock == nil {
		opts.Clock = engine.NewSystemClock()
	}
	if opts.Flicker == nil {
		opts.Flicker = NewFlicker(0)
	}
	if opts.Up.Len() == 0 {
		opts.Up = mgl64.Vec3{0, 0, -1}
	}
	v := &View{
		screen:   opts.Screen,
		clock:    opts.Clock,
		settings: opts.Settings,
		status:   opts.Status,
		flicker:  opts.Flicker,
		up:       opts.Up,
		caption:  opts.Caption,
		buf:      NewRenderBuffer(0, 0),
		state:    toss.StateReady,
		streakOn: opts.Settings == nil || opts.Settings.StreakMode(),
	}
	v.Resize()
	return v
}

// Resize refits the buffer and projection to the current screen size
func (v *View) Resize() {
	if v.screen == nil {
		return
	}
	w, h := v.screen.Size()
	v.buf.Resize(w, h)
	v.proj = NewProjection(w, h)
}

// Buffer exposes the composed frame
func (v *View) Buffer() *RenderBuffer { return v.buf }

// Projection returns the active world-to-cell mapping
func (v *View) Projection() Projection { return v.proj }

// ShowResult displays a concluded toss
func (v *View) ShowResult(r toss.Result) {
	v.result = &r
}

// UpdateStreak refreshes the streak dots; count at threshold shows the milestone overlay
func (v *View) UpdateStreak(count int, enabled bool) {
	v.streak = count
	v.streakOn = enabled
}

// StateChanged tracks the lifecycle for instruction text
func (v *View) StateChanged(_, to fsm.StateID) {
	v.state = to
	if to != toss.StateResult {
		v.result = nil
	}
}

// Notify shows a transient notification, replacing any visible one
func (v *View) Notify(title, message string) {
	v.toast = &notification{
		title:   title,
		message: message,
		until:   v.clock.Now().Add(parameter.NotificationHold),
	}
}

// SyncBodies records the poses drawn on the next frame
func (v *View) SyncBodies(left, right physics.Pose) {
	v.poses = [2]physics.Pose{left, right}
	v.posesSynced = true
}

// Vibrate maps haptic patterns to the terminal bell
func (v *View) Vibrate(pattern ...time.Duration) {
	if v.screen == nil || len(pattern) == 0 {
		return
	}
	_ = v.screen.Beep()
}

// Ambient advances the fire-light; used as the controller ambient hook
func (v *View) Ambient(dt time.Duration) {
	v.flicker.Advance(dt)
}

// SetEditor shows or hides the identifier prompt
func (v *View) SetEditor(active bool, buffer string) {
	v.editing = active
	v.editBuf = buffer
}

// SetMuted reflects the audio mute toggle in the header
func (v *View) SetMuted(muted bool) { v.muted = muted }

// SetSummary sets the history line shown in the status bar
func (v *View) SetSummary(s string) { v.summary = s }

// Draw composes a full frame and shows it
func (v *View) Draw() {
	v.Compose()
	if v.screen == nil {
		return
	}
	v.buf.Flush(v.screen, RgbBackground)
	v.screen.Show()
}

// Compose renders the frame into the buffer without touching the screen
func (v *View) Compose() {
	v.buf.Clear()
	w, h := v.buf.Bounds()
	if w == 0 || h == 0 {
		return
	}
	light := v.flicker.Factor()

	v.drawTable(w, h, light)
	if v.posesSynced {
		v.depth.reset(w, h)
		for _, p := range v.poses {
			drawBlock(v.buf, &v.depth, v.proj, p, v.up, light)
		}
	}
	v.drawCaption()
	v.drawHeader(w)
	v.drawStreak(w)
	v.drawResult()
	v.drawInstruction(h)
	v.drawMilestone(h)
	v.drawToast(w)
	v.drawEditor(h)
	v.drawStatus(w, h)
}

func (v *View) drawTable(w, h int, light float64) {
	floor := v.proj.FloorY
	glow := RgbBackground.Blend(RgbFire, 0.08*light)
	v.buf.Fill(0, 0, w, floor, glow)

	edge := RgbTableEdge.Scale(light)
	for x := 0; x < w; x++ {
		v.buf.SetWithBg(x, floor, '▀', edge, RgbTable.Scale(light))
	}
	v.buf.Fill(0, floor+1, w, h-floor-2, RgbTable.Scale(light*0.8))
}

func (v *View) drawCaption() {
	for i, line := range v.caption {
		y := v.proj.FloorY + 1 + i
		if y >= v.proj.FloorY+sceneFootRow-3 {
			break
		}
		v.buf.TextCentered(y, line, RgbCaption, false)
	}
}

func (v *View) drawHeader(w int) {
	v.buf.Fill(0, 0, w, 1, RgbStatusBar)
	x := v.buf.Text(1, 0, "擲筊", RgbText, true)
	if v.settings == nil {
		return
	}
	x = v.buf.Text(x+2, 0, flag("g", "位置", v.settings.UseLocation()), RgbTextDim, false)
	x = v.buf.Text(x+2, 0, flag("k", "連續", v.settings.StreakMode()), RgbTextDim, false)
	x = v.buf.Text(x+2, 0, flag("d", "問事", v.settings.Divination()), RgbTextDim, false)
	id := v.settings.Identifier()
	if id == "" {
		id = "-"
	}
	x = v.buf.Text(x+2, 0, "[i]生日:"+id, RgbTextDim, false)
	v.buf.Text(x+2, 0, flag("m", "靜音", v.muted), RgbTextDim, false)
}

func flag(key, label string, on bool) string {
	state := "關"
	if on {
		state = "開"
	}
	return fmt.Sprintf("[%s]%s:%s", key, label, state)
}

func (v *View) drawStreak(w int) {
	if !v.streakOn {
		return
	}
	x := w - 2*parameter.StreakThreshold - 1
	for i := 1; i <= parameter.StreakThreshold; i++ {
		color := RgbStreakOff
		if v.streak >= i {
			color = RgbStreakOn
		}
		v.buf.Text(x, 0, "●", color, false)
		x += 2
	}
}

func (v *View) drawResult() {
	if v.result == nil || v.state != toss.StateResult {
		return
	}
	color := HexOr(v.result.Text.Color, RgbText)
	v.buf.TextCentered(sceneTopRow, v.result.Text.Title, color, true)
	v.buf.TextCentered(sceneTopRow+1, v.result.Text.Description, RgbText, false)
}

func (v *View) drawInstruction(h int) {
	var s string
	switch v.state {
	case toss.StateReady:
		s = InstructionReady
	case toss.StateResult:
		s = InstructionResult
	default:
		return
	}
	v.buf.TextCentered(h-3, s, RgbTextDim, false)
}

func (v *View) drawMilestone(h int) {
	if !v.streakOn || v.streak < parameter.StreakThreshold {
		return
	}
	y := h / 2
	width := 24
	w, _ := v.buf.Bounds()
	v.buf.Fill((w-width)/2, y-1, width, 3, RgbToastBg)
	v.buf.TextCentered(y, MilestoneTitle, RgbMilestone, true)
}

func (v *View) drawToast(w int) {
	if v.toast == nil {
		return
	}
	if !v.clock.Now().Before(v.toast.until) {
		v.toast = nil
		return
	}
	width := min(w-4, 44)
	v.buf.Fill((w-width)/2, 1, width, 3, RgbToastBg)
	v.buf.TextCentered(1, v.toast.title, RgbToastTitle, true)
	v.buf.TextCentered(2, v.toast.message, RgbText, false)
}

func (v *View) drawEditor(h int) {
	if !v.editing {
		return
	}
	pad := strings.Repeat("_", max(parameter.IdentifierDigits-len(v.editBuf), 0))
	x := v.buf.Text(1, h-2, IdentifierPrompt, RgbPromptLabel, false)
	v.buf.Text(x, h-2, v.editBuf+pad, RgbText, true)
}

func (v *View) drawStatus(w, h int) {
	y := h - 1
	v.buf.Fill(0, y, w, 1, RgbStatusBar)

	parts := make([]string, 0, 8)
	if v.status != nil {
		for _, e := range v.status.Snapshot() {
			parts = append(parts, e.Key+"="+e.Value)
		}
	}
	if v.summary != "" {
		parts = append(parts, v.summary)
	}
	v.buf.Text(1, y, strings.Join(parts, "  "), RgbStatusText, false)
}
