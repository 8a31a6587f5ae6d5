package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// GameOverUI holds the ebitenui panel shown once the death sequence ends.
type GameOverUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnRetry func()
	OnQuit  func()

	titleFace  text.Face
	normalFace text.Face
}

// NewGameOverUI builds the panel. A failing font source is returned as an
// error.
func NewGameOverUI(onRetry, onQuit func()) (*GameOverUI, error) {
	g := &GameOverUI{
		OnRetry: onRetry,
		OnQuit:  onQuit,
	}
	if err := g.loadFonts(); err != nil {
		return nil, err
	}
	g.buildUI()
	return g, nil
}

func (g *GameOverUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	g.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   36,
	}
	g.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   18,
	}
	return nil
}

func (g *GameOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{0, 0, 0, 180})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("GAME OVER", &g.titleFace, &widget.LabelColor{
			Idle: color.RGBA{230, 60, 60, 255},
		}),
	))

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(g.button("Retry", func() {
		if g.OnRetry != nil {
			g.OnRetry()
		}
	}))
	buttons.AddChild(g.button("Quit", func() {
		if g.OnQuit != nil {
			g.OnQuit()
		}
	}))
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	g.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (g *GameOverUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &g.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Update forwards to the ebitenui input handling.
func (g *GameOverUI) Update() {
	g.UI.Update()
}
