package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	return err
}

// huhConfirmer shows confirmation prompts as huh dialogs. The client dispatchers
// call it once per required confirmation, so destructive double-confirms show
// two sequential dialogs.
func huhConfirmer() client.Confirmer {
	return client.ConfirmFunc(func(ctx context.Context, message string) (bool, error) {
		var ok bool
		err := huh.NewConfirm().
			Title(message).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		return ok, err
	})
}

func success(format string, args ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

func notice(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// pad truncates or right-pads a cell to a fixed width.
func pad(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// pickArtist prompts for one artist from the roster. A zero return with nil
// error means the roster is empty.
func pickArtist(title string, artists []client.Artist) (int64, error) {
	if len(artists) == 0 {
		notice("No artists yet")
		return 0, nil
	}
	options := make([]huh.Option[int64], 0, len(artists))
	for _, a := range artists {
		options = append(options, huh.NewOption(a.Name, a.ID))
	}
	var id int64
	err := huh.NewSelect[int64]().
		Title(title).
		Options(options...).
		Value(&id).
		Run()
	return id, err
}

func prioritySelect(title string, value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title(title).
		Options(
			huh.NewOption("Low", client.PriorityLow),
			huh.NewOption("Medium", client.PriorityMedium),
			huh.NewOption("High", client.PriorityHigh),
			huh.NewOption("Critical", client.PriorityCritical),
		).
		Value(value)
}

func saveDownload(data []byte, filename string) error {
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return err
	}
	success("Saved %s (%d bytes)", filename, len(data))
	return nil
}
