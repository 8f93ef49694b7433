// Package stats computes the admin dashboard aggregates.
package stats

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/civicvoice/civicvoice-backend/internal/auth"
	"github.com/civicvoice/civicvoice-backend/internal/domain"
)

// statsRepo defines the aggregate query interface needed by the service.
type statsRepo interface {
	CountComplaints(ctx context.Context, status *domain.ComplaintStatus) (int, error)
	AvgResolutionHours(ctx context.Context) (*float64, error)
	CountByCategory(ctx context.Context) ([]domain.NamedCount, error)
	CountByWard(ctx context.Context) ([]domain.NamedCount, error)
}

// citizenCounter counts registered citizens for the dashboard.
type citizenCounter interface {
	CountCitizens(ctx context.Context) (int, error)
}

// Service implements dashboard statistics.
type Service struct {
	log      *slog.Logger
	stats    statsRepo
	citizens citizenCounter
}

// NewService creates a new stats service instance.
func NewService(logger *slog.Logger, stats statsRepo, citizens citizenCounter) *Service {
	return &Service{
		log:      logger.With("service", "stats"),
		stats:    stats,
		citizens: citizens,
	}
}

// Dashboard computes the admin dashboard aggregates. Each counter is an
// independent read, so they run concurrently; the first failure cancels the
// rest. Admin-only.
func (s *Service) Dashboard(ctx context.Context, identity auth.Identity) (*domain.DashboardStats, error) {
	if !identity.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	var stats domain.DashboardStats

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.stats.CountComplaints(ctx, nil)
		if err != nil {
			return fmt.Errorf("count complaints: %w", err)
		}
		stats.TotalComplaints = n
		return nil
	})

	for _, c := range []struct {
		status domain.ComplaintStatus
		dst    *int
	}{
		{domain.StatusPending, &stats.PendingCount},
		{domain.StatusInProgress, &stats.InProgressCount},
		{domain.StatusResolved, &stats.ResolvedCount},
	} {
		g.Go(func() error {
			n, err := s.stats.CountComplaints(ctx, &c.status)
			if err != nil {
				return fmt.Errorf("count %s complaints: %w", c.status, err)
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		n, err := s.citizens.CountCitizens(ctx)
		if err != nil {
			return fmt.Errorf("count citizens: %w", err)
		}
		stats.TotalCitizens = n
		return nil
	})

	g.Go(func() error {
		avg, err := s.stats.AvgResolutionHours(ctx)
		if err != nil {
			return fmt.Errorf("avg resolution: %w", err)
		}
		stats.AvgResolutionHours = avg
		return nil
	})

	g.Go(func() error {
		rows, err := s.stats.CountByCategory(ctx)
		if err != nil {
			return fmt.Errorf("count by category: %w", err)
		}
		stats.ByCategory = rows
		return nil
	})

	g.Go(func() error {
		rows, err := s.stats.CountByWard(ctx)
		if err != nil {
			return fmt.Errorf("count by ward: %w", err)
		}
		stats.ByWard = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats.Dashboard: %w", err)
	}

	s.log.InfoContext(ctx, "dashboard computed",
		slog.Int("total_complaints", stats.TotalComplaints),
		slog.Int64("admin_id", identity.UserID))

	return &stats, nil
}
