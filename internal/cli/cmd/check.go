package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/bnema/upgradewatch/internal/application/usecase"
	"github.com/bnema/upgradewatch/internal/cli/styles"
	"github.com/bnema/upgradewatch/internal/domain/entity"
	"github.com/bnema/upgradewatch/internal/infrastructure/probe"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the installed version once",
	Long: `Run a single probe and report whether a newer version is installed
behind the running one. Nothing is journaled and no notification is sent.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

type checkState int

const (
	checkStateProbing checkState = iota
	checkStateDone
)

// checkModel is the bubbletea model for the check command.
type checkModel struct {
	ctx      context.Context
	spinner  spinner.Model
	renderer *styles.CheckRenderer
	probe    *probe.Probe
	uc       *usecase.DetectUpgradeUseCase
	state    checkState

	result   string
	quitting bool
}

// checkResultMsg is sent when the probe completes.
type checkResultMsg struct {
	ineligible bool
	result     entity.ProbeResult
	verdict    usecase.Verdict
}

func newCheckModel(ctx context.Context, theme *styles.Theme, p *probe.Probe) checkModel {
	return checkModel{
		ctx:      ctx,
		spinner:  styles.NewDefaultSpinner(theme),
		renderer: styles.NewCheckRenderer(theme),
		probe:    p,
		uc:       usecase.NewDetectUpgradeUseCase(p),
		state:    checkStateProbing,
	}
}

func (m checkModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runProbe())
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case checkResultMsg:
		m.state = checkStateDone
		m.result = m.render(msg)
		return m, tea.Quit
	}

	return m, nil
}

func (m checkModel) View() string {
	if m.quitting {
		return ""
	}
	if m.state == checkStateDone {
		return m.result
	}
	return m.renderer.RenderChecking(m.spinner.View())
}

func (m checkModel) render(msg checkResultMsg) string {
	return renderCheck(m.renderer, msg)
}

func (m checkModel) runProbe() tea.Cmd {
	return func() tea.Msg {
		return probeOnce(m.ctx, m.probe, m.uc)
	}
}

func probeOnce(ctx context.Context, p *probe.Probe, uc *usecase.DetectUpgradeUseCase) checkResultMsg {
	if !p.Eligible(ctx) {
		return checkResultMsg{ineligible: true}
	}
	result, err := uc.Probe(ctx)
	return checkResultMsg{
		result:  result,
		verdict: uc.Evaluate(ctx, result, err),
	}
}

func renderCheck(r *styles.CheckRenderer, msg checkResultMsg) string {
	if msg.ineligible {
		return r.RenderIneligible()
	}

	v := msg.verdict
	switch v.Kind {
	case usecase.VerdictAborted:
		return r.RenderAborted(v.Reason)
	case usecase.VerdictAvailable:
		if v.Installed == nil {
			return r.RenderInstalledUnknown(v.Running.String(), v.Reason)
		}
		return r.RenderAvailable(v.Running.String(), v.Installed.String(), msg.result.Source)
	default:
		return r.RenderUpToDate(v.Running.String())
	}
}

// checkPlain probes without the spinner, for pipes, cron jobs and CI where
// bubbletea cannot open a TTY.
func checkPlain(ctx context.Context, w io.Writer, theme *styles.Theme, p *probe.Probe) error {
	msg := probeOnce(ctx, p, usecase.NewDetectUpgradeUseCase(p))
	_, err := fmt.Fprint(w, renderCheck(styles.NewCheckRenderer(theme), msg))
	return err
}

func isInteractive() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return false
		}
	}
	return true
}

func runCheck(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	setup := app.BuildProbe(app.Ctx())
	if !isInteractive() {
		return checkPlain(app.Ctx(), cmd.OutOrStdout(), app.Theme, setup.Probe)
	}

	m := newCheckModel(app.Ctx(), app.Theme, setup.Probe)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	return nil
}
