//go:build integration

package project_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"plotdesk/internal/project"
	"plotdesk/pkg/measure"
	"plotdesk/pkg/testutil/containers"
)

type CachedStoreSuite struct {
	suite.Suite
	redis   *containers.RedisContainer
	backing *project.MemoryStore
	store   *project.CachedStore
}

func TestCachedStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CachedStoreSuite))
}

func (s *CachedStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
}

func (s *CachedStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.backing = project.NewMemoryStore()
	s.store = project.NewCachedStore(s.backing, s.redis.Client, time.Minute,
		slog.New(slog.DiscardHandler), nil)
}

func (s *CachedStoreSuite) seed(slug, name string) *project.Project {
	total, err := measure.FromSquareMeters(5000)
	s.Require().NoError(err)
	p := &project.Project{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		TotalArea: total,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.backing.Save(context.Background(), p))
	return p
}

func (s *CachedStoreSuite) TestFindBySlugReadThrough() {
	ctx := context.Background()
	s.seed("sunrise-meadows", "Sunrise Meadows")

	got, err := s.store.FindBySlug(ctx, "sunrise-meadows")
	s.Require().NoError(err)
	s.Equal("Sunrise Meadows", got.Name)

	// Mutating the backing store directly leaves the cache stale, so the
	// next read must still serve the cached copy.
	s.seed("sunrise-meadows", "Renamed")
	got, err = s.store.FindBySlug(ctx, "sunrise-meadows")
	s.Require().NoError(err)
	s.Equal("Sunrise Meadows", got.Name)
}

func (s *CachedStoreSuite) TestSaveInvalidates() {
	ctx := context.Background()
	p := s.seed("sunrise-meadows", "Sunrise Meadows")

	_, err := s.store.FindBySlug(ctx, "sunrise-meadows")
	s.Require().NoError(err)
	_, err = s.store.List(ctx)
	s.Require().NoError(err)

	p.Name = "Sunrise Meadows Phase II"
	s.Require().NoError(s.store.Save(ctx, p))

	got, err := s.store.FindBySlug(ctx, "sunrise-meadows")
	s.Require().NoError(err)
	s.Equal("Sunrise Meadows Phase II", got.Name)

	all, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("Sunrise Meadows Phase II", all[0].Name)
}

func (s *CachedStoreSuite) TestListReadThrough() {
	ctx := context.Background()
	s.seed("green-acres", "Green Acres")

	all, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)

	// Served from cache: a project added behind the cache's back stays
	// invisible until the TTL expires or a Save invalidates.
	s.seed("sunrise-meadows", "Sunrise Meadows")
	all, err = s.store.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}
