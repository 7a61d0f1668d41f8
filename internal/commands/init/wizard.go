package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/waypoint/internal/core/styles"
	"github.com/colonyops/waypoint/internal/core/trip"
	"github.com/colonyops/waypoint/internal/core/validate"
	"github.com/colonyops/waypoint/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	TripFile   string // preset trip file (empty = prompt)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if FileExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	answers := DefaultAnswers(w.opts.DataDir)
	if w.opts.TripFile != "" {
		answers.TripFile = w.opts.TripFile
	}

	if !w.opts.Yes {
		if err := w.prompt(&answers); err != nil {
			return err
		}
	}
	answers.TripFile = expandHome(answers.TripFile)

	return w.apply(p, answers)
}

// apply writes the config and the optional sample trip, then reports.
func (w *Wizard) apply(p *printer.Printer, answers Answers) error {
	backupPath, err := BackupFile(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	content, err := GenerateConfig(answers)
	if err != nil {
		return err
	}
	if err := WriteFile(w.opts.ConfigPath, content); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	if answers.SampleTrip {
		if FileExists(answers.TripFile) {
			p.Infof("Keeping existing trip file: %s", answers.TripFile)
		} else if err := WriteFile(answers.TripFile, []byte(SampleTrip)); err != nil {
			p.Warnf("Failed to write sample trip: %v", err)
		} else {
			p.Successf("Created sample trip: %s", answers.TripFile)
		}
	}

	p.Section("Init Validation")
	for _, item := range Check(w.opts.ConfigPath, w.opts.DataDir) {
		switch item.Status {
		case StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	p.Section("Next Steps")
	p.Printf("  1. Run 'waypoint' to open the trip")
	p.Printf("  2. Run 'waypoint config validate' after editing %s", w.opts.ConfigPath)
	return nil
}

func (w *Wizard) prompt(a *Answers) error {
	themes := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	sorts := make([]huh.Option[string], 0, len(trip.SortTypes))
	for _, st := range trip.SortTypes {
		sorts = append(sorts, huh.NewOption(string(st), string(st)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Trip file").
				Description("YAML file holding destinations, offers and points").
				Validate(validate.TripFilePath).
				Value(&a.TripFile),
			huh.NewConfirm().
				Title("Write a sample trip?").
				Description("Only when the trip file does not exist yet").
				Value(&a.SampleTrip),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&a.Theme),
			huh.NewSelect[string]().
				Title("Default sort").
				Options(sorts...).
				Value(&a.DefaultSort),
			huh.NewConfirm().
				Title("Reload the trip when it changes on disk?").
				Value(&a.Watch),
		),
	)

	return form.Run()
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
