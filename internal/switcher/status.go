package switcher

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gcpctl/pkg/logging"
)

// Status is a read-only snapshot of the externally configured state.
type Status struct {
	Account     string
	Project     string
	KubeContext string
}

// StatusReporter queries the current account, project, and kubectl
// context. It performs no state transitions; fields it cannot read are
// left empty rather than failing the whole report.
type StatusReporter struct {
	gateway Gateway
	kube    KubeConfig
}

// NewStatusReporter builds a reporter over the two boundary halves.
func NewStatusReporter(gateway Gateway, kubecfg KubeConfig) *StatusReporter {
	return &StatusReporter{gateway: gateway, kube: kubecfg}
}

// Report reads the current external state.
func (r *StatusReporter) Report(ctx context.Context) Status {
	var status Status
	var err error

	if status.Account, err = r.gateway.ActiveAccount(ctx); err != nil {
		logging.Debug("status", "could not read active account: %v", err)
	}
	if status.Project, err = r.gateway.ActiveProject(ctx); err != nil {
		logging.Debug("status", "could not read active project: %v", err)
	}
	if status.KubeContext, err = r.kube.CurrentContext(); err != nil {
		logging.Debug("status", "could not read current kubectl context: %v", err)
	}
	return status
}

var (
	statusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("86")).
			Padding(0, 2)

	statusTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("220"))

	statusKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255"))

	statusSetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusUnsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Render formats the status as a bordered box.
func (s Status) Render() string {
	lines := []string{
		statusTitleStyle.Render("Current status"),
		statusLine("Account", s.Account),
		statusLine("Project", s.Project),
		statusLine("Context", s.KubeContext),
	}
	return statusBoxStyle.Render(strings.Join(lines, "\n"))
}

func statusLine(key, value string) string {
	glyph := statusSetStyle.Render("●")
	display := value
	if value == "" {
		glyph = statusUnsetStyle.Render("○")
		display = "(none)"
	}
	return glyph + " " + statusKeyStyle.Render(key+":") + " " + statusValueStyle.Render(display)
}
