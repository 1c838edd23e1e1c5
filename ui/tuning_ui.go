package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/motion"
	"github.com/automoto/wallhop/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningUI is the in-game movement tuning panel built with ebitenui. Every
// row edits cfg.C.Movement directly so changes apply on the next tick;
// Save persists the current values through the systems package.
type TuningUI struct {
	UI      *ebitenui.UI
	Visible bool

	rows    []tuningRow
	toggles []tuningToggle

	// Widget references for updates
	valueLabels   []*widget.Label
	toggleButtons []*widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// tuningRow binds one numeric tunable to a -/+ row.
type tuningRow struct {
	name string
	get  func() float64
	set  func(float64)
	step float64
	prec int
}

// tuningToggle binds one boolean tunable to a click-to-flip button.
type tuningToggle struct {
	name string
	get  func() bool
	set  func(bool)
}

// NewTuningUI creates the tuning panel bound to the live movement config.
func NewTuningUI() *TuningUI {
	t := &TuningUI{}
	t.loadFonts()
	t.bindTunables()
	t.buildUI()
	return t
}

func (t *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility.
	// Compact sizes so the full list fits a 640x360 screen.
	t.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	t.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	t.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (t *TuningUI) bindTunables() {
	m := &cfg.C.Movement
	t.rows = []tuningRow{
		{"move speed", func() float64 { return m.MoveSpeed }, func(v float64) { m.MoveSpeed = v }, 8, 0},
		{"ground accel", func() float64 { return m.GroundAcceleration }, func(v float64) { m.GroundAcceleration = v }, 40, 0},
		{"air accel", func() float64 { return m.AirAcceleration }, func(v float64) { m.AirAcceleration = v }, 40, 0},
		{"gravity", func() float64 { return m.Gravity }, func(v float64) { m.Gravity = v }, 32, 0},
		{"jump gravity", func() float64 { return m.JumpGravity }, func(v float64) { m.JumpGravity = v }, 32, 0},
		{"terminal velocity", func() float64 { return m.TerminalVelocity }, func(v float64) { m.TerminalVelocity = v }, 16, 0},
		{"jump impulse", func() float64 { return m.JumpImpulse }, func(v float64) { m.JumpImpulse = v }, 8, 0},
		{"jump cut factor", func() float64 { return m.JumpCutFactor }, func(v float64) { m.JumpCutFactor = v }, 0.05, 2},
		{"max jumps", func() float64 { return float64(m.MaxJumps) }, func(v float64) { m.MaxJumps = int(math.Round(v)) }, 1, 0},
		{"multijump coeff", func() float64 { return m.MultijumpCoefficient }, func(v float64) { m.MultijumpCoefficient = v }, 0.05, 2},
		{"coyote time", func() float64 { return m.CoyoteTime }, func(v float64) { m.CoyoteTime = v }, 0.01, 2},
		{"jump buffer", func() float64 { return m.JumpBufferTime }, func(v float64) { m.JumpBufferTime = v }, 0.01, 2},
		{"wall slide cap", func() float64 { return m.WallSlideSpeedCap }, func(v float64) { m.WallSlideSpeedCap = v }, 8, 0},
		{"wall jump x", func() float64 { return m.WallJumpImpulse.X }, func(v float64) { m.WallJumpImpulse.X = v }, 8, 0},
		{"wall jump y", func() float64 { return m.WallJumpImpulse.Y }, func(v float64) { m.WallJumpImpulse.Y = v }, 8, 0},
		{"wall jump lock", func() float64 { return m.WallJumpControlLockTime }, func(v float64) { m.WallJumpControlLockTime = v }, 0.02, 2},
	}
	t.toggles = []tuningToggle{
		{"wall slide", func() bool { return m.WallSlidingEnabled }, func(v bool) { m.WallSlidingEnabled = v }},
		{"wall jump", func() bool { return m.WallJumpingEnabled }, func(v bool) { m.WallJumpingEnabled = v }},
		{"wall jump costs charge", func() bool { return m.WallJumpConsumesCharge }, func(v bool) { m.WallJumpConsumesCharge = v }},
		{"wall touch refills", func() bool { return m.WallContactResetsJumps }, func(v bool) { m.WallContactResetsJumps = v }},
	}
	t.valueLabels = make([]*widget.Label, len(t.rows))
	t.toggleButtons = make([]*widget.Button, len(t.toggles))
}

func (t *TuningUI) buildUI() {
	// Root container anchors the panel to the right edge, leaving the
	// player visible on the left while tuning.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 15, 25, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(1),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("MOVEMENT TUNING", &t.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	for i := range t.rows {
		panel.AddChild(t.buildRow(i))
	}
	for i := range t.toggles {
		panel.AddChild(t.buildToggle(i))
	}
	panel.AddChild(t.buildActions())

	hint := widget.NewLabel(
		widget.LabelOpts.Text("changes apply immediately", &t.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 150, 255},
		}),
	)
	panel.AddChild(hint)

	rootContainer.AddChild(panel)

	t.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (t *TuningUI) buildRow(idx int) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-18s", t.rows[idx].name), &t.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 190, 255},
		}),
	)
	row.AddChild(nameLabel)

	row.AddChild(t.stepButton(idx, "-", -1))

	t.valueLabels[idx] = widget.NewLabel(
		widget.LabelOpts.Text(t.formatRow(idx), &t.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(t.valueLabels[idx])

	row.AddChild(t.stepButton(idx, "+", 1))

	return row
}

func (t *TuningUI) stepButton(idx int, label string, dir float64) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(16, 12),
		),
		widget.ButtonOpts.Image(t.buttonImage()),
		widget.ButtonOpts.Text(label, &t.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			t.adjust(idx, dir)
		}),
	)
}

// adjust steps a tunable and rolls back anything that fails validation, so
// the panel can never drive the config into a state the controller rejects.
func (t *TuningUI) adjust(idx int, dir float64) {
	row := t.rows[idx]
	before := row.get()
	row.set(before + dir*row.step)
	if err := cfg.C.Movement.Validate(); err != nil {
		row.set(before)
		return
	}
	t.UpdateUI()
}

func (t *TuningUI) buildToggle(idx int) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 14),
		),
		widget.ButtonOpts.Image(t.buttonImage()),
		widget.ButtonOpts.Text(t.formatToggle(idx), &t.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tg := t.toggles[idx]
			tg.set(!tg.get())
			t.UpdateUI()
		}),
	)
	t.toggleButtons[idx] = btn
	return btn
}

func (t *TuningUI) buildActions() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	actions := []struct {
		label   string
		clicked func()
	}{
		{"Save", func() {
			_ = systems.SaveTuning(cfg.C.Movement)
		}},
		{"Reset", func() {
			cfg.C.Movement = motion.DefaultConfig()
			_ = systems.ClearTuning()
			t.UpdateUI()
		}},
		{"Close", func() {
			t.Visible = false
		}},
	}
	for _, a := range actions {
		clicked := a.clicked
		container.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(46, 16),
			),
			widget.ButtonOpts.Image(t.buttonImage()),
			widget.ButtonOpts.Text(a.label, &t.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				clicked()
			}),
		))
	}

	return container
}

func (t *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (t *TuningUI) formatRow(idx int) string {
	row := t.rows[idx]
	return fmt.Sprintf("%*.*f", 7, row.prec, row.get())
}

func (t *TuningUI) formatToggle(idx int) string {
	tg := t.toggles[idx]
	state := "off"
	if tg.get() {
		state = "on"
	}
	return fmt.Sprintf("%s: %s", tg.name, state)
}

// UpdateUI refreshes every value label and toggle caption from the config.
func (t *TuningUI) UpdateUI() {
	for i := range t.rows {
		if t.valueLabels[i] != nil {
			t.valueLabels[i].Label = t.formatRow(i)
		}
	}
	for i := range t.toggles {
		if t.toggleButtons[i] != nil {
			if textWidget := t.toggleButtons[i].Text(); textWidget != nil {
				textWidget.Label = t.formatToggle(i)
			}
		}
	}
}

// Update drives the ebitenui event loop. Call once per tick while visible.
func (t *TuningUI) Update() {
	t.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !t.initialized {
		t.initialized = true
		t.UpdateUI()
	}
}
