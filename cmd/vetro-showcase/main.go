// Command vetro-showcase is a demo browser for the vetro glass components.
// It lists the built-in demos and opens each one inline or full screen
// according to its catalog entry.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/vetro/pkg/vetro"
	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
	"github.com/BrandonKowalski/vetro/pkg/vetro/presenter"
	"github.com/BrandonKowalski/vetro/pkg/vetro/resolver"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// listPosition is the demo list's resume state: where the highlight and
// scroll were when the user opened a demo.
type listPosition struct {
	Selected          int
	VisibleStartIndex int
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	localeFlag := flag.String("locale", "", "locale tag, overrides the config file")
	flag.Parse()

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vetro-showcase: %v\n", err)
			os.Exit(1)
		}
	}
	if *localeFlag != "" {
		config.Locale = *localeFlag
	}

	accent, err := config.AccentColor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vetro-showcase: %v\n", err)
		os.Exit(1)
	}

	localizer, err := NewLocalizer(config.Locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vetro-showcase: %v\n", err)
		os.Exit(1)
	}

	vetro.Init(vetro.Options{
		WindowTitle:          localizeOr(localizer, "showcase.title", config.Window.Title),
		ShowBackground:       config.Window.ShowBackground,
		WindowOptions:        vetro.WindowOptions{},
		PrimaryThemeColorHex: accent,
		FontPath:             config.Theme.FontPath,
		BackgroundImagePath:  config.Theme.BackgroundImagePath,
		HandheldPowerButton:  true,
		LogPath:              config.Log.Path,
	})
	defer vetro.Close()
	vetro.SetRawLogLevel(config.Log.Level)

	log := vetro.GetLogger()

	demoCatalog, err := buildCatalog(localizer, config.Demos)
	if err != nil {
		log.Error("Invalid demo configuration", "error", err)
		fmt.Fprintf(os.Stderr, "vetro-showcase: %v\n", err)
		os.Exit(1)
	}

	host := newSDLHost(log)
	p := presenter.New(resolver.New(demoCatalog), host, log)

	runShowcase(p, demoCatalog, localizer, log)
}

// buildCatalog applies the config's demo filter and ordering to the
// built-in catalog. An empty enabled list keeps everything.
func buildCatalog(localizer *i18n.Localizer, demos DemosConfig) (*catalog.Catalog, error) {
	full := vetro.DefaultCatalog(localizer)
	if len(demos.Enabled) == 0 {
		return full, nil
	}

	entries := make([]catalog.Descriptor, 0, len(demos.Enabled))
	for _, id := range demos.Enabled {
		entry, ok := full.Get(id)
		if !ok {
			return nil, fmt.Errorf("unknown demo %q in config", id)
		}
		entries = append(entries, entry)
	}
	return catalog.New(entries...), nil
}

func runShowcase(p *presenter.Presenter, demoCatalog *catalog.Catalog, localizer *i18n.Localizer, log *slog.Logger) {
	entries := demoCatalog.All()
	position := listPosition{}

	footer := []vetro.FooterHelpItem{
		{ButtonName: "A", HelpText: "Open"},
		{ButtonName: "X", HelpText: "Details"},
		{ButtonName: "B", HelpText: "Quit"},
	}

	for {
		result, err := vetro.DemoList(
			localizeOr(localizer, "showcase.title", "Vetro Showcase"),
			entries,
			vetro.DemoListSettings{
				InitialSelectedIndex: position.Selected,
				VisibleStartIndex:    position.VisibleStartIndex,
				FooterHelpItems:      footer,
			},
		)
		if err != nil {
			if vetro.IsCancelled(err) {
				if confirmQuit(localizer) {
					log.Info("Showcase closed")
					return
				}
				continue
			}
			log.Error("Demo list failed", "error", err)
			return
		}

		position = listPosition{
			Selected:          result.Selected,
			VisibleStartIndex: result.VisibleStartIndex,
		}

		entry := entries[result.Selected]

		if result.Action == vetro.ListActionTriggered {
			showDemoDetails(localizer, entry)
			continue
		}

		log.Info("Opening demo", "id", entry.ID)

		// Screens block, so by the time Select returns the demo has
		// already been left and the presenter just needs unwinding.
		p.SelectWithResume(entry, position)

		switch p.State() {
		case presenter.StateInlineNavigating:
			if popped := p.Back(); popped != nil {
				if pos, ok := popped.Resume.(listPosition); ok {
					position = pos
				}
			}
		case presenter.StateFullScreenPresenting:
			p.Dismiss()
		}
	}
}

func showDemoDetails(localizer *i18n.Localizer, entry catalog.Descriptor) {
	message := entry.Title + "\n\n" + entry.Description
	_, _ = vetro.Dialog(message, []vetro.DialogOption{
		{DisplayName: localizeOr(localizer, "showcase.details.close", "Close"), Value: nil},
	}, vetro.DialogSettings{})
}

func confirmQuit(localizer *i18n.Localizer) bool {
	result, err := vetro.Dialog(
		localizeOr(localizer, "showcase.quit.message", "Leave the showcase?"),
		[]vetro.DialogOption{
			{DisplayName: localizeOr(localizer, "showcase.quit.cancel", "Stay"), Value: false},
			{DisplayName: localizeOr(localizer, "showcase.quit.confirm", "Quit"), Value: true},
		},
		vetro.DialogSettings{},
	)
	if err != nil {
		return false
	}
	quit, ok := result.SelectedValue.(bool)
	return ok && quit
}

func localizeOr(localizer *i18n.Localizer, id, fallback string) string {
	localized, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil || localized == "" {
		return fallback
	}
	return localized
}
