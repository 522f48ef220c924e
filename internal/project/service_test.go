package project

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	dErrors "plotdesk/pkg/domain-errors"
	"plotdesk/pkg/measure"
)

type CatalogServiceSuite struct {
	suite.Suite
	store   *MemoryStore
	service *Service
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.service = NewService(s.store, slog.New(slog.DiscardHandler))
}

func (s *CatalogServiceSuite) seedProject(slug, name string, totalSqm float64, plots []Plot) *Project {
	total, err := measure.FromSquareMeters(totalSqm)
	s.Require().NoError(err)
	p := &Project{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		Location:  "Pune",
		TotalArea: total,
		Plots:     plots,
		UpdatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.Save(context.Background(), p))
	return p
}

func (s *CatalogServiceSuite) TestList() {
	area, err := measure.FromSquareMeters(200)
	s.Require().NoError(err)
	s.seedProject("sunrise-meadows", "Sunrise Meadows", 50000, []Plot{
		{Number: "A-1", Area: area, PricePaise: 250_000_000, Status: PlotAvailable},
		{Number: "A-2", Area: area, PricePaise: 180_000_000, Status: PlotAvailable},
		{Number: "A-3", Area: area, PricePaise: 150_000_000, Status: PlotSold},
	})
	s.seedProject("green-acres", "Green Acres", 5000, nil)

	summaries, err := s.service.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)

	s.Equal("Green Acres", summaries[0].Name)
	s.Equal("1.24 acres (49.4 gunthas)", summaries[0].TotalAreaText)

	sunrise := summaries[1]
	s.Equal("12.4 acres", sunrise.TotalAreaText)
	s.Equal(2, sunrise.AvailablePlots)
	s.Equal(3, sunrise.TotalPlots)
	s.Equal(int64(180_000_000), sunrise.StartPricePaise, "sold plots must not set the starting price")
}

func (s *CatalogServiceSuite) TestGet() {
	area, err := measure.FromSquareMeters(150)
	s.Require().NoError(err)
	saleable, err := measure.FromSquareMeters(3000)
	s.Require().NoError(err)
	amenity, err := measure.FromSquareMeters(2000)
	s.Require().NoError(err)

	p := s.seedProject("sunrise-meadows", "Sunrise Meadows", 5000, []Plot{
		{Number: "A-1", Area: area, PricePaise: 250_000_000, Status: PlotAvailable},
	})
	p.Breakdown = []measure.BreakdownPart{
		{Name: "Saleable", Area: saleable},
		{Name: "Amenities", Area: amenity},
	}
	s.Require().NoError(s.store.Save(context.Background(), p))

	detail, err := s.service.Get(context.Background(), "sunrise-meadows")
	s.Require().NoError(err)
	s.Equal("1.24 acres (49.4 gunthas)", detail.TotalAreaText)

	s.Require().Len(detail.BreakdownView, 2)
	s.InDelta(60.0, detail.BreakdownView[0].Percent, 0.01)
	s.InDelta(40.0, detail.BreakdownView[1].Percent, 0.01)

	s.Require().Len(detail.PlotViews, 1)
	s.Equal("150.00 sq.m", detail.PlotViews[0].AreaText)
}

func (s *CatalogServiceSuite) TestGetUnknownSlug() {
	_, err := s.service.Get(context.Background(), "no-such-project")
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogServiceSuite) TestMissingAreaRendersNotAvailable() {
	p := &Project{
		ID:        uuid.New(),
		Slug:      "teaser",
		Name:      "Teaser Launch",
		UpdatedAt: time.Now(),
	}
	s.Require().NoError(s.store.Save(context.Background(), p))

	summaries, err := s.service.List(context.Background())
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(measure.NotAvailable, summaries[0].TotalAreaText)
}
