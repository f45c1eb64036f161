package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wiper/internal/domain/model"
	"wiper/internal/domain/safety"
)

var (
	runInteractiveCommand = runSelf
	osExecutable          = os.Executable
	isTerminal            = term.IsTerminal
)

var interactiveDevice string

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick a wipe method from a menu and preview its commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := safety.ValidateDevice(interactiveDevice); err != nil {
			return err
		}
		if !shouldUseInteractive(isTerminal(int(os.Stdin.Fd())), isTerminal(int(os.Stdout.Fd())), os.Getenv("TERM")) {
			return errors.New("interactive mode requires a terminal; use `wiper wipe` instead")
		}
		return runInteractiveMenu(interactiveDevice)
	},
}

func init() {
	interactiveCmd.Flags().StringVarP(&interactiveDevice, "device", "d", "", "Device to preview wipe commands for")
}

func isDumbTerm(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "" || v == "dumb"
}

func shouldUseInteractive(stdinTTY, stdoutTTY bool, termEnv string) bool {
	return stdinTTY && stdoutTTY && !isDumbTerm(termEnv)
}

type menuItem struct {
	Title       string
	Description string
	Args        []string
	Exit        bool
}

type menuModel struct {
	device   string
	items    []menuItem
	cursor   int
	selected []string
	exit     bool
}

func newMenuModel(device string) menuModel {
	items := make([]menuItem, 0, len(model.Methods())+1)
	for _, m := range listMethods() {
		items = append(items, menuItem{
			Title:       fmt.Sprintf("%s (dry run)", m.Name),
			Description: m.Description,
			Args:        []string{"wipe", "--device", device, "--method", string(m.Name), "--dry-run"},
		})
	}
	items = append(items, menuItem{Title: "Exit", Description: "Close interactive mode", Exit: true})
	return menuModel{device: device, items: items}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.exit = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			item := m.items[m.cursor]
			if item.Exit {
				m.exit = true
			} else {
				m.selected = append([]string(nil), item.Args...)
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Wiper Interactive")
	target := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("Device: " + m.device)
	hint := lipgloss.NewStyle().Faint(true).Render("Use ↑/↓ (or j/k), Enter to preview, q to quit")

	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	defaultStyle := lipgloss.NewStyle()
	descStyle := lipgloss.NewStyle().Faint(true)

	lines := []string{title, target, hint, ""}
	for i, item := range m.items {
		cursor := "  "
		style := defaultStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		lines = append(lines, style.Render(cursor+item.Title))
		lines = append(lines, descStyle.Render("   "+item.Description))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func runInteractiveMenu(device string) error {
	for {
		p := tea.NewProgram(newMenuModel(device))
		result, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := result.(menuModel)
		if !ok || m.exit {
			return nil
		}
		if len(m.selected) == 0 {
			continue
		}

		fmt.Println()
		if err := runInteractiveCommand(m.selected...); err != nil {
			return fmt.Errorf("interactive command failed: %w", err)
		}
		fmt.Println()
	}
}

// runSelf re-invokes the current binary so each preview gets fresh flag state.
func runSelf(args ...string) error {
	exe, err := osExecutable()
	if err != nil {
		return err
	}
	c := exec.Command(exe, args...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
