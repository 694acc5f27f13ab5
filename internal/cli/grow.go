package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verdant-cli/verdant/internal/chime"
	"github.com/verdant-cli/verdant/pkg/session"
	"github.com/verdant-cli/verdant/pkg/timer"
)

// growOpts holds flag overrides for the grow command; zero values fall
// back to the config file.
type growOpts struct {
	studyMinutes int
	breakMinutes int
	cycles       int
	noSound      bool
}

// newGrowCmd creates the grow command: the interactive study session.
func newGrowCmd(configPath *string) *cobra.Command {
	var opts growOpts

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Start a study session and grow a plant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow(cmd, *configPath, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.studyMinutes, "study", 0, "study length in minutes (default from config)")
	cmd.Flags().IntVar(&opts.breakMinutes, "break", 0, "break length in minutes (default from config)")
	cmd.Flags().IntVar(&opts.cycles, "cycles", 0, "number of study/break cycles (default from config)")
	cmd.Flags().BoolVar(&opts.noSound, "no-sound", false, "disable the end-of-phase chime")

	return cmd
}

func runGrow(cmd *cobra.Command, configPath string, opts *growOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if opts.studyMinutes > 0 {
		cfg.StudyMinutes = opts.studyMinutes
	}
	if opts.breakMinutes > 0 {
		cfg.BreakMinutes = opts.breakMinutes
	}
	if opts.cycles > 0 {
		cfg.Cycles = opts.cycles
	}
	if opts.noSound {
		cfg.Sound = false
	}

	plantsDir, err := cfg.PlantsDir()
	if err != nil {
		return err
	}
	store, err := session.NewFileStore("")
	if err != nil {
		return err
	}

	model, err := newGrowModel(cfg, store, chime.NewPlayer(cfg.Sound), plantsDir)
	if err != nil {
		return err
	}

	logger.Debug("starting session",
		"study", time.Duration(cfg.StudyMinutes)*time.Minute,
		"break", time.Duration(cfg.BreakMinutes)*time.Minute,
		"cycles", cfg.Cycles)

	final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	if m, ok := final.(growModel); ok {
		for _, path := range m.saved {
			logger.Info("plant saved", "path", path)
		}
		if m.tmr.Phase() == timer.PhaseDone {
			logger.Info("session complete", "cycles", m.tmr.Cycles())
		}
	}
	return nil
}
