package main

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro"
)

func TestLocalizerTranslatesDemoTitles(t *testing.T) {
	localizer, err := NewLocalizer("it")
	if err != nil {
		t.Fatalf("NewLocalizer failed: %v", err)
	}

	d := vetro.DemoButtons.Descriptor(localizer)
	if d.Title != "Pulsanti" {
		t.Errorf("expected Italian title Pulsanti, got %q", d.Title)
	}
}

func TestLocalizerFallsBackToEnglish(t *testing.T) {
	localizer, err := NewLocalizer("de")
	if err != nil {
		t.Fatalf("NewLocalizer failed: %v", err)
	}

	d := vetro.DemoButtons.Descriptor(localizer)
	if d.Title != "Buttons" {
		t.Errorf("expected English fallback title Buttons, got %q", d.Title)
	}
}

func TestLocalizeOrUsesFallbackForUnknownID(t *testing.T) {
	localizer, err := NewLocalizer("en")
	if err != nil {
		t.Fatalf("NewLocalizer failed: %v", err)
	}

	if got := localizeOr(localizer, "does.not.exist", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}
