package output

import (
	"fmt"
	"strings"

	"todotree.dev/todotree/internal/engine"
)

// RenderOptions configures forest rendering behavior
type RenderOptions struct {
	// Styled applies terminal styling to the output. Plain output is the
	// canonical interchange format and is what the REPL's show prints.
	Styled bool

	// MaxDepth limits how deep below the roots rendering descends.
	// Zero means unlimited.
	MaxDepth int

	// HideIDs omits the trailing "(id: N)" annotation
	HideIDs bool
}

// ForestRenderer renders the whole forest as indented checkbox lines,
// one node per line: "[x] Title (id: N)", children indented one level
// deeper than their parent, siblings and roots in insertion order.
type ForestRenderer struct {
	reader engine.ForestReader
}

// NewForestRenderer creates a new forest renderer
func NewForestRenderer(reader engine.ForestReader) *ForestRenderer {
	return &ForestRenderer{reader: reader}
}

// Render returns one line per visible node
func (r *ForestRenderer) Render(opts RenderOptions) []string {
	var lines []string
	for _, rootID := range r.reader.Roots() {
		lines = append(lines, r.renderNode(rootID, 0, opts)...)
	}
	return lines
}

// RenderString returns the rendered forest as a single string with a
// trailing newline after every line
func (r *ForestRenderer) RenderString(opts RenderOptions) string {
	lines := r.Render(opts)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (r *ForestRenderer) renderNode(id engine.NodeID, depth int, opts RenderOptions) []string {
	info, err := r.reader.Get(id)
	if err != nil {
		// The id came from the engine's own root/child lists; a lookup
		// failure here means the walk raced a mutation. Skip the node.
		return nil
	}

	lines := []string{r.formatLine(info, depth, opts)}

	if opts.MaxDepth > 0 && depth+1 >= opts.MaxDepth {
		return lines
	}

	for _, childID := range info.ChildIDs {
		lines = append(lines, r.renderNode(childID, depth+1, opts)...)
	}

	return lines
}

func (r *ForestRenderer) formatLine(info engine.NodeInfo, depth int, opts RenderOptions) string {
	marker := " "
	if info.Done {
		marker = "x"
	}

	box := "[" + marker + "]"
	title := info.Title
	id := ""
	if !opts.HideIDs {
		id = fmt.Sprintf(" (id: %d)", info.ID)
	}

	if opts.Styled {
		box = ColorCheckbox(box, info.Done)
		title = ColorTitle(title, info.Done)
		id = ColorID(id)
	}

	return strings.Repeat("  ", depth) + box + " " + title + id
}
