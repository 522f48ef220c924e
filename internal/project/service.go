package project

import (
	"context"
	"errors"
	"log/slog"

	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/measure"
	"plotdesk/pkg/platform/sentinel"
	"plotdesk/pkg/requestcontext"
)

// Summary is the list-page shape of a project.
type Summary struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	TotalAreaText   string `json:"totalAreaText"`
	AvailablePlots  int    `json:"availablePlots"`
	TotalPlots      int    `json:"totalPlots"`
	StartPricePaise int64  `json:"startPricePaise,omitempty"`
}

// PlotView is a plot with its area rendered for display.
type PlotView struct {
	Plot
	AreaText string `json:"areaText"`
}

// BreakdownView is one breakdown row with display fields.
type BreakdownView struct {
	Name     string               `json:"name"`
	Area     *measure.Measurement `json:"area"`
	AreaText string               `json:"areaText"`
	Percent  float64              `json:"percent"`
}

// Detail is the project page shape: the stored record plus display strings.
type Detail struct {
	Project
	TotalAreaText string          `json:"totalAreaText"`
	BreakdownView []BreakdownView `json:"breakdownView,omitempty"`
	PlotViews     []PlotView      `json:"plotViews,omitempty"`
}

// Service reads the catalog and prepares it for display.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns summaries of every project.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list projects")
	}
	summaries := make([]Summary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, s.summarize(ctx, p))
	}
	return summaries, nil
}

// Get returns the full display model for one project.
func (s *Service) Get(ctx context.Context, slug string) (*Detail, error) {
	p, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "project not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load project")
	}
	s.audit(ctx, p)

	d := &Detail{
		Project:       *p,
		TotalAreaText: measure.FormatSmart(p.TotalArea),
	}
	for _, part := range p.Breakdown {
		d.BreakdownView = append(d.BreakdownView, BreakdownView{
			Name:     part.Name,
			Area:     part.Area,
			AreaText: measure.FormatSmart(part.Area),
			Percent:  measure.Percentage(part.Area, p.TotalArea),
		})
	}
	for _, plot := range p.Plots {
		d.PlotViews = append(d.PlotViews, PlotView{
			Plot: plot,
			AreaText: measure.Format(plot.Area, measure.UnitSquareMeters, measure.FormatOptions{
				ShowUnit:  true,
				Precision: 2,
			}),
		})
	}
	return d, nil
}

func (s *Service) summarize(ctx context.Context, p *Project) Summary {
	s.audit(ctx, p)
	sum := Summary{
		Slug:           p.Slug,
		Name:           p.Name,
		Location:       p.Location,
		TotalAreaText:  measure.FormatSmart(p.TotalArea),
		AvailablePlots: p.AvailablePlots(),
		TotalPlots:     len(p.Plots),
	}
	for _, plot := range p.Plots {
		if plot.Status != PlotAvailable || plot.PricePaise <= 0 {
			continue
		}
		if sum.StartPricePaise == 0 || plot.PricePaise < sum.StartPricePaise {
			sum.StartPricePaise = plot.PricePaise
		}
	}
	return sum
}

// audit logs advisory consistency findings. Bad CMS data should show up in
// the logs, not break the page.
func (s *Service) audit(ctx context.Context, p *Project) {
	if p.TotalArea == nil {
		return
	}
	if res := measure.Validate(p.TotalArea); !res.Valid {
		s.logger.WarnContext(ctx, "project area failed validation",
			"request_id", requestcontext.RequestID(ctx),
			"slug", p.Slug,
			"problems", res.Errors,
		)
	}
	if len(p.Breakdown) > 0 {
		for _, warning := range measure.CheckBreakdown(p.TotalArea, p.Breakdown) {
			s.logger.WarnContext(ctx, "project breakdown inconsistent",
				"request_id", requestcontext.RequestID(ctx),
				"slug", p.Slug,
				"warning", warning,
			)
		}
	}
}
