package output

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorTitle colors a node title based on its completion state
func ColorTitle(title string, done bool) string {
	if done {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Strikethrough(true).
			Render(title)
	}
	return title
}

// ColorCheckbox colors the checkbox marker for a node
func ColorCheckbox(box string, done bool) string {
	if done {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render(box)
	}
	return box
}

// ColorID makes a node id annotation dim/gray
func ColorID(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorCursor highlights the selected row in interactive views
func ColorCursor(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}
