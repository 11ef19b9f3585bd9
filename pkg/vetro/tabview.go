package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

type tab struct {
	Label    string
	IconName string
	Token    constants.ColorToken
	Body     string
}

// TabViewDemo shows a bottom glass tab bar that takes over the whole
// display. Left and right switch tabs, B dismisses the demo. This is the
// one demo presented full screen rather than pushed inline.
type TabViewDemo struct {
	tabs        []tab
	activeIndex int
	directional internal.DirectionalInput
}

func NewTabViewDemo() *TabViewDemo {
	return &TabViewDemo{
		tabs: []tab{
			{Label: "Library", IconName: "container", Token: constants.ColorTokenBlue,
				Body: "The library tab lists everything installed on the device.\nGlass tab bars float above the content instead of reserving a solid strip."},
			{Label: "Browse", IconName: "buttons", Token: constants.ColorTokenGreen,
				Body: "Browse presents remote content.\nThe active tab's icon takes the accent tint."},
			{Label: "Activity", IconName: "transition", Token: constants.ColorTokenOrange,
				Body: "Activity shows recent sessions.\nSwitching tabs swaps the content pane without any navigation push."},
			{Label: "Settings", IconName: "toolbar", Token: constants.ColorTokenPurple,
				Body: "Settings holds device configuration.\nPress B to leave the tab view and return to the demo list."},
		},
		directional: internal.NewDirectionalInput(),
	}
}

// Run blocks until the user dismisses the tab view with B.
func (d *TabViewDemo) Run() error {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	textureCache := internal.NewTextureCache()
	defer textureCache.Destroy()

	running := true
	var err error

	for running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
				err = sdl.GetError()

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
				inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
				if inputEvent == nil {
					continue
				}

				if inputEvent.Pressed {
					d.handleInput(inputEvent, &running)
				} else {
					d.directional.SetHeld(inputEvent.Button, false)
				}
			}
		}

		switch d.directional.Update() {
		case internal.DirectionLeft:
			d.switchTab(-1)
		case internal.DirectionRight:
			d.switchTab(1)
		}

		d.render(renderer, window, textureCache)
		window.Present()
	}

	return err
}

func (d *TabViewDemo) handleInput(inputEvent *internal.Event, running *bool) {
	if d.directional.SetHeld(inputEvent.Button, true) {
		switch inputEvent.Button {
		case constants.VirtualButtonLeft:
			d.switchTab(-1)
		case constants.VirtualButtonRight:
			d.switchTab(1)
		}
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonL1:
		d.switchTab(-1)
	case constants.VirtualButtonR1:
		d.switchTab(1)
	case constants.VirtualButtonB:
		*running = false
	}
}

func (d *TabViewDemo) switchTab(direction int) {
	d.activeIndex += direction
	if d.activeIndex < 0 {
		d.activeIndex = len(d.tabs) - 1
	} else if d.activeIndex >= len(d.tabs) {
		d.activeIndex = 0
	}
}

const (
	tabBarHeight  = 88
	tabBarMargin  = 24
	tabIconSize   = 32
	tabBarPadding = 8
)

func (d *TabViewDemo) render(renderer *sdl.Renderer, window *internal.Window, textureCache *internal.TextureCache) {
	theme := internal.GetTheme()

	if window.Background != nil {
		window.RenderBackground()
	} else {
		renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
		renderer.Clear()
	}

	d.renderContent(renderer, window)
	d.renderTabBar(renderer, window, textureCache)
}

func (d *TabViewDemo) renderContent(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	active := d.tabs[d.activeIndex]
	margins := internal.UniformPadding(40)

	y := margins.Top
	internal.RenderText(renderer, active.Label, internal.Fonts.LargeFont, margins.Left, y, theme.TextColor)
	y += int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing

	maxWidth := window.GetWidth() - margins.Left - margins.Right
	internal.RenderMultilineText(renderer, active.Body, internal.Fonts.MediumFont,
		maxWidth, margins.Left, y, theme.TextColor, constants.TextAlignLeft)
}

func (d *TabViewDemo) renderTabBar(renderer *sdl.Renderer, window *internal.Window, textureCache *internal.TextureCache) {
	theme := internal.GetTheme()

	bar := sdl.Rect{
		X: tabBarMargin,
		Y: window.GetHeight() - tabBarHeight - tabBarMargin,
		W: window.GetWidth() - tabBarMargin*2,
		H: tabBarHeight,
	}

	style := internal.DefaultGlassStyle()
	style.Radius = tabBarHeight / 2
	internal.DrawGlassPanel(renderer, bar, style)

	slotWidth := bar.W / int32(len(d.tabs))
	for i, t := range d.tabs {
		slot := sdl.Rect{X: bar.X + slotWidth*int32(i), Y: bar.Y, W: slotWidth, H: bar.H}

		tint := theme.HintColor
		if i == d.activeIndex {
			tint = internal.ResolveColorToken(t.Token)

			pill := sdl.Rect{
				X: slot.X + tabBarPadding,
				Y: slot.Y + tabBarPadding,
				W: slot.W - tabBarPadding*2,
				H: slot.H - tabBarPadding*2,
			}
			activeStyle := internal.TintedGlassStyle(tint)
			activeStyle.Radius = pill.H / 2
			internal.DrawGlassPanel(renderer, pill, activeStyle)
		}

		iconKey := internal.IconCacheKey(t.IconName, tabIconSize, tint)
		icon := textureCache.GetOrCreate(iconKey, func() *sdl.Texture {
			return internal.RenderIcon(renderer, t.IconName, tabIconSize, tint)
		})

		labelHeight := int32(internal.Fonts.SmallFont.Height())
		contentHeight := tabIconSize + 4 + labelHeight
		contentY := slot.Y + (slot.H-contentHeight)/2

		if icon != nil {
			iconRect := sdl.Rect{X: slot.X + (slot.W-tabIconSize)/2, Y: contentY, W: tabIconSize, H: tabIconSize}
			renderer.Copy(icon, nil, &iconRect)
		}

		labelColor := theme.HintColor
		if i == d.activeIndex {
			labelColor = theme.HighlightedTextColor
		}
		internal.RenderTextAligned(renderer, t.Label, internal.Fonts.SmallFont,
			slot.X, contentY+tabIconSize+4, slot.W, labelColor, constants.TextAlignCenter)
	}
}
