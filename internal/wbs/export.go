package wbs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"scopeworks/internal/model"
)

// Export formats accepted by Export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// CSVHeader is the fixed flattened-export header row.
var CSVHeader = []string{
	"Phase", "Service", "Subservice", "Deliverable",
	"Hours", "Cost", "Risk Level", "Resource Type",
}

// Export serializes a WBS. JSON is the pretty-printed full document; CSV
// is one row per deliverable with cost recomputed from the owning
// subservice's resource rate.
func Export(w model.WorkBreakdownStructure, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(w, "", "  ")
	case FormatCSV:
		return exportCSV(w)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func exportCSV(w model.WorkBreakdownStructure) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write(CSVHeader); err != nil {
		return nil, err
	}

	for _, phase := range w.Phases {
		for _, svc := range phase.Services {
			for _, sub := range svc.Subservices {
				rate := model.RateFor(sub.ResourceType)
				for _, del := range sub.Deliverables {
					row := []string{
						phase.Name,
						svc.Name,
						sub.Name,
						del.Name,
						formatHours(del.EstimatedHours),
						formatCost(del.EstimatedHours * rate),
						del.RiskLevel,
						sub.ResourceType,
					}
					if err := cw.Write(row); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', 2, 64)
}
