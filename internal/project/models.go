// Package project serves the plotted-development catalog: projects,
// their area breakdowns and plot inventory.
package project

import (
	"time"

	"github.com/google/uuid"

	"plotdesk/pkg/measure"
)

// PlotStatus tracks a plot through the sales funnel.
type PlotStatus string

const (
	PlotAvailable PlotStatus = "available"
	PlotReserved  PlotStatus = "reserved"
	PlotSold      PlotStatus = "sold"
)

// Plot is one sellable unit inside a project.
type Plot struct {
	Number     string               `json:"number"`
	Area       *measure.Measurement `json:"area"`
	PricePaise int64                `json:"pricePaise"`
	Status     PlotStatus           `json:"status"`
}

// Project is the CMS-shaped read model for one development.
type Project struct {
	ID          uuid.UUID               `json:"id"`
	Slug        string                  `json:"slug"`
	Name        string                  `json:"name"`
	Location    string                  `json:"location"`
	RERANumber  string                  `json:"reraNumber,omitempty"`
	Description string                  `json:"description,omitempty"`
	TotalArea   *measure.Measurement    `json:"totalArea"`
	Breakdown   []measure.BreakdownPart `json:"breakdown,omitempty"`
	Plots       []Plot                  `json:"plots,omitempty"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// AvailablePlots counts plots still open for booking.
func (p *Project) AvailablePlots() int {
	n := 0
	for _, plot := range p.Plots {
		if plot.Status == PlotAvailable {
			n++
		}
	}
	return n
}
