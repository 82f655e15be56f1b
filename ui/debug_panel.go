package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// DebugInfo is what the overlay shows for one frame.
type DebugInfo struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
	Held     []string
	FPS      float64
	Room     string

	NearestDoor    string // State of the door in reach, "" when none
	AnimatingDoors int
	Steps          int

	Message string
}

// Lines formats info one fact per line.
func (info DebugInfo) Lines() []string {
	grounded := "no"
	if info.Grounded {
		grounded = "yes"
	}
	held := "-"
	if len(info.Held) > 0 {
		held = strings.Join(info.Held, " ")
	}
	room := info.Room
	if room == "" {
		room = "outside"
	}
	door := "none in reach"
	if info.NearestDoor != "" {
		door = info.NearestDoor
	}
	lines := []string{
		fmt.Sprintf("pos   %6.2f %6.2f %6.2f", info.Position.X(), info.Position.Y(), info.Position.Z()),
		fmt.Sprintf("vel   %6.2f %6.2f %6.2f", info.Velocity.X(), info.Velocity.Y(), info.Velocity.Z()),
		"ground " + grounded,
		"keys  " + held,
		"room  " + room,
		fmt.Sprintf("door  %s (%d moving)", door, info.AnimatingDoors),
		fmt.Sprintf("fps   %.0f  steps %d", info.FPS, info.Steps),
	}
	if info.Message != "" {
		lines = append(lines, info.Message)
	}
	return lines
}

// DebugPanel is the top-left debug overlay and the bottom-left key help.
type DebugPanel struct {
	UI *ebitenui.UI

	face     text.Face
	debug    *widget.Container
	lines    []*widget.Label
	messages *widget.Label
}

// NewDebugPanel builds the overlay with a label per debug line.
func NewDebugPanel(keyHelp []string, textColor, panelColor color.RGBA) (*DebugPanel, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load debug font: %w", err)
	}
	p := &DebugPanel{
		face: &text.GoTextFace{Source: source, Size: 12},
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	p.debug = p.column(panelColor, widget.AnchorLayoutPositionStart)
	for range (DebugInfo{}).Lines() {
		p.lines = append(p.lines, p.label(textColor))
	}
	for _, l := range p.lines {
		p.debug.AddChild(l)
	}
	p.messages = p.label(color.RGBA{255, 220, 100, 255})
	p.debug.AddChild(p.messages)
	root.AddChild(p.debug)

	help := p.column(panelColor, widget.AnchorLayoutPositionEnd)
	for _, line := range keyHelp {
		l := p.label(textColor)
		l.Label = line
		help.AddChild(l)
	}
	root.AddChild(help)

	p.UI = &ebitenui.UI{Container: root}
	return p, nil
}

func (p *DebugPanel) column(bg color.RGBA, vertical widget.AnchorLayoutPosition) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   vertical,
			}),
		),
	)
}

func (p *DebugPanel) label(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &p.face, &widget.LabelColor{Idle: c}),
	)
}

// Update refreshes the labels and runs the UI. A hidden panel keeps only
// the key help.
func (p *DebugPanel) Update(info DebugInfo, visible bool) {
	if visible {
		p.debug.GetWidget().Visibility = widget.Visibility_Show
	} else {
		p.debug.GetWidget().Visibility = widget.Visibility_Hide
	}
	lines := info.Lines()
	for i, l := range p.lines {
		l.Label = ""
		if i < len(lines) {
			l.Label = lines[i]
		}
	}
	p.messages.Label = info.Message
	p.UI.Update()
}

func (p *DebugPanel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
