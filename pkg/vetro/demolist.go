package vetro

import (
	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/constants"
	"github.com/BrandonKowalski/vetro/pkg/vetro/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// DemoListSettings configures the demo list screen.
type DemoListSettings struct {
	InitialSelectedIndex int  // Row highlighted when the screen opens
	VisibleStartIndex    int  // First row visible when the screen opens
	DisableBackButton    bool // When true, B does not cancel the screen
	FooterHelpItems      []FooterHelpItem
}

// DemoListResult represents the return value of the DemoList function.
// Selected is the index of the chosen row in the entry slice.
// VisibleStartIndex is the scroll position at exit, for restoring the list
// when the user comes back from a demo.
type DemoListResult struct {
	Selected          int
	VisibleStartIndex int
	Action            ListAction
}

type demoListController struct {
	Title             string
	Entries           []catalog.Descriptor
	SelectedIndex     int
	VisibleStartIndex int
	MaxVisibleItems   int
	Settings          DemoListSettings

	directional  internal.DirectionalInput
	textureCache *internal.TextureCache
	margins      internal.Padding
}

const (
	demoRowHeight  = 96
	demoRowSpacing = 12
	demoIconSize   = 48
)

func newDemoListController(title string, entries []catalog.Descriptor, settings DemoListSettings) *demoListController {
	dlc := &demoListController{
		Title:        title,
		Entries:      entries,
		Settings:     settings,
		directional:  internal.NewDirectionalInput(),
		textureCache: internal.NewTextureCache(),
		margins:      internal.UniformPadding(40),
	}

	if settings.InitialSelectedIndex > 0 && settings.InitialSelectedIndex < len(entries) {
		dlc.SelectedIndex = settings.InitialSelectedIndex
	}
	if settings.VisibleStartIndex > 0 && settings.VisibleStartIndex < len(entries) {
		dlc.VisibleStartIndex = settings.VisibleStartIndex
	}

	return dlc
}

// DemoList displays a scrollable catalog of demos and blocks until the user
// picks one or backs out. Each row shows the demo's tinted icon, title, and
// description; rows that open full screen carry a marker on the right edge.
//
// A selects the row, X reports it with ListActionTriggered, Start confirms
// it with ListActionConfirmed. Returns ErrCancelled when the user presses B
// or closes the window.
func DemoList(title string, entries []catalog.Descriptor, settings DemoListSettings) (*DemoListResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	dlc := newDemoListController(title, entries, settings)
	dlc.MaxVisibleItems = dlc.calculateMaxVisibleItems(window)
	dlc.scrollTo(dlc.SelectedIndex)

	running := true
	cancelled := false
	result := DemoListResult{
		Selected: -1,
		Action:   ListActionSelected,
	}

	var err error

	for running {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				// A window close is a user action, not a fault. Treat it
				// like backing out unless SDL actually raised an error.
				running = false
				cancelled = true
				err = sdl.GetError()

			case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.ControllerAxisEvent:
				inputEvent := processor.ProcessSDLEvent(event.(sdl.Event))
				if inputEvent == nil {
					continue
				}

				if inputEvent.Pressed {
					dlc.handleInput(inputEvent, &running, &result, &cancelled)
				} else {
					dlc.directional.SetHeld(inputEvent.Button, false)
				}
			}
		}

		dlc.handleDirectionalRepeats()

		if window.Background != nil {
			window.RenderBackground()
		} else {
			theme := internal.GetTheme()
			renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
			renderer.Clear()
		}

		dlc.render(renderer)
		window.Present()
	}

	dlc.textureCache.Destroy()

	return dlc.outcome(cancelled, err, result)
}

// outcome converts the event loop's exit condition into the screen's return
// values. Cancellation and error paths never expose the placeholder -1
// selection, so callers may index with Selected unchecked.
func (dlc *demoListController) outcome(cancelled bool, sdlErr error, result DemoListResult) (*DemoListResult, error) {
	if sdlErr != nil {
		return nil, sdlErr
	}
	if cancelled {
		return nil, ErrCancelled
	}

	result.VisibleStartIndex = dlc.VisibleStartIndex
	return &result, nil
}

func (dlc *demoListController) calculateMaxVisibleItems(window *internal.Window) int {
	titleHeight := int32(0)
	if internal.Fonts.LargeFont != nil {
		titleHeight = int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing
	}
	footerHeight := int32(60)

	available := window.GetHeight() - dlc.margins.Top - dlc.margins.Bottom - titleHeight - footerHeight
	count := int(available / (demoRowHeight + demoRowSpacing))
	if count < 1 {
		count = 1
	}
	return count
}

func (dlc *demoListController) handleInput(inputEvent *internal.Event, running *bool, result *DemoListResult, cancelled *bool) {
	if dlc.directional.SetHeld(inputEvent.Button, true) {
		switch inputEvent.Button {
		case constants.VirtualButtonUp:
			dlc.moveSelection(-1)
		case constants.VirtualButtonDown:
			dlc.moveSelection(1)
		}
		return
	}

	switch inputEvent.Button {
	case constants.VirtualButtonA:
		if dlc.SelectedIndex >= 0 && dlc.SelectedIndex < len(dlc.Entries) {
			result.Selected = dlc.SelectedIndex
			result.Action = ListActionSelected
			*running = false
		}

	case constants.VirtualButtonB:
		if !dlc.Settings.DisableBackButton {
			*cancelled = true
			*running = false
		}

	case constants.VirtualButtonX:
		if dlc.SelectedIndex >= 0 && dlc.SelectedIndex < len(dlc.Entries) {
			result.Selected = dlc.SelectedIndex
			result.Action = ListActionTriggered
			*running = false
		}

	case constants.VirtualButtonStart:
		if dlc.SelectedIndex >= 0 && dlc.SelectedIndex < len(dlc.Entries) {
			result.Selected = dlc.SelectedIndex
			result.Action = ListActionConfirmed
			*running = false
		}
	}
}

func (dlc *demoListController) handleDirectionalRepeats() {
	switch dlc.directional.Update() {
	case internal.DirectionUp:
		dlc.moveSelection(-1)
	case internal.DirectionDown:
		dlc.moveSelection(1)
	}
}

// moveSelection moves the highlight with wraparound and keeps it visible.
func (dlc *demoListController) moveSelection(direction int) {
	if len(dlc.Entries) == 0 {
		return
	}

	dlc.SelectedIndex += direction
	if dlc.SelectedIndex < 0 {
		dlc.SelectedIndex = len(dlc.Entries) - 1
	} else if dlc.SelectedIndex >= len(dlc.Entries) {
		dlc.SelectedIndex = 0
	}

	dlc.scrollTo(dlc.SelectedIndex)
}

func (dlc *demoListController) scrollTo(index int) {
	if index < dlc.VisibleStartIndex {
		dlc.VisibleStartIndex = index
	} else if index >= dlc.VisibleStartIndex+dlc.MaxVisibleItems && dlc.MaxVisibleItems > 0 {
		dlc.VisibleStartIndex = index - dlc.MaxVisibleItems + 1
	}
	if dlc.VisibleStartIndex < 0 {
		dlc.VisibleStartIndex = 0
	}
}

func (dlc *demoListController) render(renderer *sdl.Renderer) {
	window := internal.GetWindow()
	theme := internal.GetTheme()

	y := dlc.margins.Top
	if internal.Fonts.LargeFont != nil {
		internal.RenderText(renderer, dlc.Title, internal.Fonts.LargeFont, dlc.margins.Left, y, theme.TextColor)
		y += int32(internal.Fonts.LargeFont.Height()) + constants.DefaultTitleSpacing
	}

	rowWidth := window.GetWidth() - dlc.margins.Left - dlc.margins.Right

	end := dlc.VisibleStartIndex + dlc.MaxVisibleItems
	if end > len(dlc.Entries) {
		end = len(dlc.Entries)
	}

	for i := dlc.VisibleStartIndex; i < end; i++ {
		entry := dlc.Entries[i]
		rect := sdl.Rect{X: dlc.margins.Left, Y: y, W: rowWidth, H: demoRowHeight}

		style := internal.DefaultGlassStyle()
		if i == dlc.SelectedIndex {
			style = internal.TintedGlassStyle(internal.ResolveColorToken(entry.IconColor))
			style.FocusRing = true
		}
		internal.DrawGlassPanel(renderer, rect, style)

		dlc.renderRowContent(renderer, entry, rect, i == dlc.SelectedIndex)

		y += demoRowHeight + demoRowSpacing
	}

	dlc.renderScrollIndicator(renderer, window)
	renderFooter(renderer, internal.Fonts.SmallFont, dlc.Settings.FooterHelpItems, dlc.margins.Bottom)
}

func (dlc *demoListController) renderRowContent(renderer *sdl.Renderer, entry catalog.Descriptor, rect sdl.Rect, selected bool) {
	theme := internal.GetTheme()

	const contentPadding = 24

	iconTint := internal.ResolveColorToken(entry.IconColor)
	iconKey := internal.IconCacheKey(entry.IconName, demoIconSize, iconTint)
	icon := dlc.textureCache.GetOrCreate(iconKey, func() *sdl.Texture {
		return internal.RenderIcon(renderer, entry.IconName, demoIconSize, iconTint)
	})

	textX := rect.X + contentPadding
	if icon != nil {
		iconRect := sdl.Rect{
			X: rect.X + contentPadding,
			Y: rect.Y + (rect.H-demoIconSize)/2,
			W: demoIconSize,
			H: demoIconSize,
		}
		renderer.Copy(icon, nil, &iconRect)
		textX = iconRect.X + demoIconSize + contentPadding
	}

	titleColor := theme.TextColor
	if selected {
		titleColor = theme.HighlightedTextColor
	}

	titleY := rect.Y + 16
	internal.RenderText(renderer, entry.Title, internal.Fonts.MediumFont, textX, titleY, titleColor)

	if entry.Description != "" && internal.Fonts.SmallFont != nil {
		descY := titleY + int32(internal.Fonts.MediumFont.Height()) + 6
		internal.RenderText(renderer, entry.Description, internal.Fonts.SmallFont, textX, descY, theme.HintColor)
	}

	// Rows that take over the whole display get a marker on the right edge.
	if entry.RequiresFullScreen && internal.Fonts.SmallFont != nil {
		marker := "↗" // north east arrow
		markerW := internal.TextWidth(internal.Fonts.SmallFont, marker)
		internal.RenderText(renderer, marker, internal.Fonts.SmallFont,
			rect.X+rect.W-contentPadding-markerW,
			rect.Y+(rect.H-int32(internal.Fonts.SmallFont.Height()))/2,
			theme.HintColor)
	}
}

func (dlc *demoListController) renderScrollIndicator(renderer *sdl.Renderer, window *internal.Window) {
	if len(dlc.Entries) <= dlc.MaxVisibleItems {
		return
	}

	theme := internal.GetTheme()
	trackHeight := window.GetHeight() - dlc.margins.Top - dlc.margins.Bottom
	barHeight := trackHeight * int32(dlc.MaxVisibleItems) / int32(len(dlc.Entries))
	barHeight = internal.Max32(barHeight, 32)

	maxStart := len(dlc.Entries) - dlc.MaxVisibleItems
	barY := dlc.margins.Top
	if maxStart > 0 {
		barY += (trackHeight - barHeight) * int32(dlc.VisibleStartIndex) / int32(maxStart)
	}

	barColor := theme.HintColor
	barColor.A = 140
	internal.DrawSmoothBar(renderer, window.GetWidth()-12, barY, 6, barHeight, barColor)
}
