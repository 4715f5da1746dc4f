package output

import (
	"encoding/json"
	"io"

	"github.com/vvka-141/hivescript/pkg/hivescript"
)

// JSONRenderer writes results as an indented JSON array.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, results []hivescript.ScriptResult) error {
	if results == nil {
		results = []hivescript.ScriptResult{}
	}
	return encode(w, results)
}

func (r *JSONRenderer) RenderSummary(w io.Writer, results []hivescript.ScriptResult) error {
	summaries := make([]Summary, len(results))
	for i, result := range results {
		summaries[i] = Summarize(result)
	}
	return encode(w, summaries)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
