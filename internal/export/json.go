package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/sortviz/internal/experiment"
)

type ExportData struct {
	Algorithm string             `json:"algorithm"`
	Size      int                `json:"size"`
	Steps     int                `json:"steps"`
	ElapsedMs float64            `json:"elapsed_ms"`
	Capped    bool               `json:"capped,omitempty"`
	Input     []int              `json:"input"`
	Output    []int              `json:"output"`
	Metrics   map[string]float64 `json:"metrics"`
	Progress  []float64          `json:"progress,omitempty"`
}

func NewExportData(r *experiment.Result) ExportData {
	return ExportData{
		Algorithm: r.Algorithm,
		Size:      len(r.Input),
		Steps:     r.Steps,
		ElapsedMs: float64(r.Elapsed.Microseconds()) / 1000,
		Capped:    r.Capped,
		Input:     r.Input,
		Output:    r.Output,
		Metrics:   r.Metrics,
		Progress:  r.Progress,
	}
}

// WriteJSON encodes results as an indented JSON array.
func WriteJSON(w io.Writer, results []*experiment.Result) error {
	data := make([]ExportData, len(results))
	for i, r := range results {
		data[i] = NewExportData(r)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteProgressCSV writes one row per progress sample index and one column
// per result. Shorter series leave their trailing cells empty.
func WriteProgressCSV(w io.Writer, results []*experiment.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"sample"}
	longest := 0
	for _, r := range results {
		header = append(header, r.Algorithm)
		longest = max(longest, len(r.Progress))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < longest; i++ {
		row := []string{strconv.Itoa(i)}
		for _, r := range results {
			cell := ""
			if i < len(r.Progress) {
				cell = strconv.FormatFloat(r.Progress[i], 'f', 4, 64)
			}
			row = append(row, cell)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
