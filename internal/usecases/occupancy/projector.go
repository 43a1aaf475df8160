// Package occupancy projeta os agendamentos em uma grade dia x hora de ocupação
package occupancy

import (
	"time"

	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/aggregate"
)

type Config struct {
	SlotCapacity     int
	StartHour        int
	EndHour          int
	Days             []time.Weekday
	Location         *time.Location
	IncludeCancelled bool
}

// NewConfig monta a configuração do mapa de ocupação a partir da configuração da aplicação
func NewConfig(cfg *config.Config) Config {
	days := make([]time.Weekday, 0, len(cfg.Reporting.HeatmapDays))
	for _, day := range cfg.Reporting.HeatmapDays {
		days = append(days, time.Weekday(day))
	}

	return Config{
		SlotCapacity:     cfg.Reporting.SlotCapacity,
		StartHour:        cfg.Reporting.HeatmapStartHour,
		EndHour:          cfg.Reporting.HeatmapEndHour,
		Days:             days,
		Location:         cfg.App.Location,
		IncludeCancelled: cfg.Reporting.IncludeCancelled,
	}
}

type cellKey struct {
	day  time.Weekday
	hour int
}

type Projector struct {
	cfg Config
}

func NewProjector(cfg Config) *Projector {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	// faixa fora de 0..23 é recortada; faixa invertida gera grade sem horas
	cfg.StartHour = max(cfg.StartHour, 0)
	cfg.EndHour = min(cfg.EndHour, 23)
	return &Projector{cfg: cfg}
}

func (p *Projector) hours() []int {
	hours := make([]int, 0, max(p.cfg.EndHour-p.cfg.StartHour+1, 0))
	for hour := p.cfg.StartHour; hour <= p.cfg.EndHour; hour++ {
		hours = append(hours, hour)
	}
	return hours
}

func (p *Projector) inWindow(key cellKey) bool {
	if key.hour < p.cfg.StartHour || key.hour > p.cfg.EndHour {
		return false
	}

	for _, day := range p.cfg.Days {
		if day == key.day {
			return true
		}
	}
	return false
}

// Project conta os agendamentos pelo dia da semana e hora de início (truncada) e normaliza
// pela capacidade de atendimentos simultâneos. A grade retornada é sempre completa.
func (p *Projector) Project(appointments []domain.Appointment, period *domain.Period) *domain.Heatmap {
	skipped := 0
	counted := make([]domain.Appointment, 0, len(appointments))

	for _, appointment := range appointments {
		if err := appointment.Validate(); err != nil {
			skipped++
			continue
		}

		if appointment.Status == domain.AppointmentStatusCancelled && !p.cfg.IncludeCancelled {
			continue
		}

		if !period.Contains(appointment.StartTime) {
			continue
		}

		counted = append(counted, appointment)
	}

	buckets := aggregate.BucketByTime(counted,
		func(a domain.Appointment) time.Time { return a.StartTime },
		func(t time.Time) cellKey {
			local := t.In(p.cfg.Location)
			return cellKey{day: local.Weekday(), hour: local.Hour()}
		},
	)

	heatmap := &domain.Heatmap{
		Days:         append([]time.Weekday{}, p.cfg.Days...),
		Hours:        p.hours(),
		SlotCapacity: p.cfg.SlotCapacity,
		Rows:         make([]domain.HeatmapRow, 0, len(p.cfg.Days)),
		Skipped:      skipped,
	}

	// Agendamentos fora da janela visível são descartados silenciosamente
	for key, group := range buckets {
		if p.inWindow(key) {
			heatmap.Total += len(group)
		}
	}

	var peak *domain.HeatmapCell
	for _, day := range heatmap.Days {
		row := domain.HeatmapRow{
			Day:   day,
			Cells: make([]domain.HeatmapCell, 0, len(heatmap.Hours)),
		}

		for _, hour := range heatmap.Hours {
			count := len(buckets[cellKey{day: day, hour: hour}])
			percentage := aggregate.PercentageInt(count, p.cfg.SlotCapacity)

			cell := domain.HeatmapCell{
				Day:        day,
				Hour:       hour,
				Count:      count,
				Percentage: percentage,
				Band:       domain.BandFor(percentage),
			}
			row.Cells = append(row.Cells, cell)

			if count > 0 && (peak == nil || count > peak.Count) {
				c := cell
				peak = &c
			}
		}

		heatmap.Rows = append(heatmap.Rows, row)
	}
	heatmap.Peak = peak

	return heatmap
}
