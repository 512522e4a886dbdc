package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/atomgrid/pkg/layout"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// newPreviewCmd creates the preview command for browsing a layout's traps
// in an interactive list. With --register, traps occupied by the
// register's atoms show their qubit IDs.
func newPreviewCmd() *cobra.Command {
	var registerPath string

	cmd := &cobra.Command{
		Use:   "preview <layout.json>",
		Short: "Browse a layout's traps interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := layout.ReadDocumentFile(args[0])
			if err != nil {
				return err
			}

			occupied := map[int]string{}
			if registerPath != "" {
				reg, err := readRegisterFile(registerPath)
				if err != nil {
					return err
				}
				for _, a := range reg.Atoms() {
					occupied[a.Trap] = a.ID
				}
			}

			_, err = tea.NewProgram(newTrapListModel(doc, occupied)).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&registerPath, "register", "r", "", "register JSON whose atoms are marked")

	return cmd
}

// =============================================================================
// TrapListModel - Interactive trap browsing
// =============================================================================

// TrapListModel is the bubbletea model for browsing a layout's traps.
type TrapListModel struct {
	Doc      layout.Document
	Occupied map[int]string // trap ID -> qubit ID
	Cursor   int
	Height   int
	Offset   int
}

// newTrapListModel creates a trap list model over the document's traps.
func newTrapListModel(doc layout.Document, occupied map[int]string) TrapListModel {
	return TrapListModel{
		Doc:      doc,
		Occupied: occupied,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m TrapListModel) Init() tea.Cmd {
	return nil
}

func (m TrapListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Doc.Traps)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TrapListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Doc.Slug))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Doc.Traps) {
		end = len(m.Doc.Traps)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		t := m.Doc.Traps[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		qubit := "—"
		if id, ok := m.Occupied[i]; ok {
			qubit = id
		}

		rows = append(rows, []string{
			cursor,
			strconv.Itoa(i),
			fmt.Sprintf("%.3f", t.X),
			fmt.Sprintf("%.3f", t.Y),
			qubit,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Trap", "X (µm)", "Y (µm)", "Qubit").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Doc.Traps) {
				return lipgloss.NewStyle()
			}
			_, hasAtom := m.Occupied[actualIdx]
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if isCurrent {
				if hasAtom {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Foreground(colorWhite).Bold(true)
			}
			if hasAtom {
				return base.Foreground(colorGreen)
			}
			return base.Foreground(colorDim)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Doc.Traps))))

	return b.String()
}
