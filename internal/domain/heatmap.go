package domain

import "time"

type OccupancyBand string

const (
	OccupancyBandEmpty     OccupancyBand = "empty"
	OccupancyBandLow       OccupancyBand = "low"
	OccupancyBandMedium    OccupancyBand = "medium"
	OccupancyBandHigh      OccupancyBand = "high"
	OccupancyBandSaturated OccupancyBand = "saturated"
)

// BandFor classifica o percentual de ocupação nas faixas de severidade
func BandFor(percentage int) OccupancyBand {
	switch {
	case percentage <= 0:
		return OccupancyBandEmpty
	case percentage < 30:
		return OccupancyBandLow
	case percentage < 70:
		return OccupancyBandMedium
	case percentage < 90:
		return OccupancyBandHigh
	default:
		return OccupancyBandSaturated
	}
}

type HeatmapCell struct {
	Day        time.Weekday  `json:"day"`
	Hour       int           `json:"hour"`
	Count      int           `json:"count"`
	Percentage int           `json:"percentage"`
	Band       OccupancyBand `json:"band"`
}

type HeatmapRow struct {
	Day   time.Weekday  `json:"day"`
	Cells []HeatmapCell `json:"cells"`
}

type Heatmap struct {
	Days         []time.Weekday `json:"days"`
	Hours        []int          `json:"hours"`
	SlotCapacity int            `json:"slot_capacity"`
	Rows         []HeatmapRow   `json:"rows"`
	Peak         *HeatmapCell   `json:"peak,omitempty"`
	Total        int            `json:"total"`
	Skipped      int            `json:"skipped"`
}

// Cell retorna a célula do dia e hora informados, se existir na grade
func (h *Heatmap) Cell(day time.Weekday, hour int) (HeatmapCell, bool) {
	for _, row := range h.Rows {
		if row.Day != day {
			continue
		}
		for _, cell := range row.Cells {
			if cell.Hour == hour {
				return cell, true
			}
		}
	}
	return HeatmapCell{}, false
}
