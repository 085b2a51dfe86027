package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/autocare-api/internal/application/analytics"
	"github.com/sangkips/autocare-api/internal/domain/entity"
	"github.com/sangkips/autocare-api/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is how long an overview stays fresh
const DefaultCacheTTL = 90 * time.Second

// PayloadCache stores finished overview payloads. Entries are replaced whole, never
// mutated in place.
type PayloadCache interface {
	Get(ctx context.Context, key string) (*analytics.Payload, bool, error)
	Set(ctx context.Context, key string, payload *analytics.Payload, ttl time.Duration) error
}

// AnalyticsConfig tunes the analytics service
type AnalyticsConfig struct {
	CacheTTL       time.Duration
	CoalesceMisses bool // share one pipeline run between concurrent misses on the same key
	SlowThreshold  time.Duration
	Now            func() time.Time
}

// AnalyticsService builds the dashboard overview from committed records, behind a
// short-lived cache
type AnalyticsService struct {
	repo   repository.AnalyticsRepository
	cache  PayloadCache
	cfg    AnalyticsConfig
	logger *zap.Logger
	group  singleflight.Group
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	repo repository.AnalyticsRepository,
	cache PayloadCache,
	logger *zap.Logger,
	cfg AnalyticsConfig,
) *AnalyticsService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{
		repo:   repo,
		cache:  cache,
		cfg:    cfg,
		logger: logger.Named("analytics"),
	}
}

// GetOverview returns the overview for the request, from cache when a live entry exists.
// A failed or cancelled run returns an error and caches nothing. With coalescing on, a
// caller whose ctx ends stops waiting while the shared run finishes for the others.
func (s *AnalyticsService) GetOverview(ctx context.Context, req analytics.Request) (*analytics.Payload, error) {
	req = req.Normalize()
	key := req.CacheKey()

	if payload, ok := s.lookup(ctx, key); ok {
		return payload, nil
	}

	if !s.cfg.CoalesceMisses {
		return s.refresh(ctx, req, key)
	}

	// The shared run outlives any single caller; each caller only stops waiting on its own ctx.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.refresh(context.WithoutCancel(ctx), req, key)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("overview shared with concurrent request", zap.String("key", key))
		}
		return res.Val.(*analytics.Payload), nil
	}
}

func (s *AnalyticsService) lookup(ctx context.Context, key string) (*analytics.Payload, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		s.logger.Debug("cache miss", zap.String("key", key))
		return nil, false
	}
	s.logger.Debug("cache hit", zap.String("key", key))
	return payload, true
}

func (s *AnalyticsService) refresh(ctx context.Context, req analytics.Request, key string) (*analytics.Payload, error) {
	started := time.Now()
	payload, err := s.build(ctx, req)
	if err != nil {
		s.logger.Error("overview pipeline failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	if d := time.Since(started); s.cfg.SlowThreshold > 0 && d >= s.cfg.SlowThreshold {
		s.logger.Warn("slow overview pipeline",
			zap.String("from", payload.Range.From),
			zap.String("to", payload.Range.To),
			zap.String("group_by", req.Granularity.String()),
			zap.Duration("duration", d),
		)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, payload, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return payload, nil
}

// build runs the full pipeline: one wave of independent reads, the synchronous
// aggregation, then a second wave of employee lookups for the top earners.
func (s *AnalyticsService) build(ctx context.Context, req analytics.Request) (*analytics.Payload, error) {
	now := s.cfg.Now()
	w := req.Window()

	var (
		ledger        []entity.LedgerEntry
		appointments  []entity.Booking
		completedRows []entity.Booking
		created       []entity.MembershipOrder
		prior         []uuid.UUID
		expired       int64
		active        int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ledger, err = s.repo.ListLedgerEntries(gctx, w)
		return wrap("ledger entries", err)
	})
	g.Go(func() error {
		var err error
		appointments, err = s.repo.ListBookingsByAppointment(gctx, w)
		return wrap("bookings by appointment", err)
	})
	g.Go(func() error {
		var err error
		completedRows, err = s.repo.ListCompletedBookings(gctx, w)
		return wrap("completed bookings", err)
	})
	g.Go(func() error {
		var err error
		created, err = s.repo.ListMembershipOrdersCreated(gctx, w)
		return wrap("membership orders", err)
	})
	g.Go(func() error {
		var err error
		prior, err = s.repo.ListPriorMembershipCustomers(gctx, w.Start)
		return wrap("prior membership customers", err)
	})
	g.Go(func() error {
		var err error
		expired, err = s.repo.CountMembershipOrdersEnding(gctx, w)
		return wrap("expiring memberships", err)
	})
	g.Go(func() error {
		var err error
		active, err = s.repo.CountActiveMemberships(gctx, now)
		return wrap("active memberships", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	series := analytics.NewSeries(req)
	ledgerSum := analytics.AggregateLedger(ledger, series)
	completed := analytics.FilterCompletedPriced(completedRows)
	bookingSum := analytics.AggregateBookings(appointments, completed, series)
	lifecycle := analytics.ClassifyMemberships(created, prior)
	byRevenue, byOrders := analytics.RankServices(completed)
	employees := analytics.RankEmployees(completed)

	var (
		profiles   []entity.Employee
		attendance []entity.Attendance
		ratings    []repository.RatingResult
	)
	if ids := analytics.EmployeeIDs(employees); len(ids) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			profiles, err = s.repo.ListEmployees(gctx, ids)
			return wrap("employees", err)
		})
		g.Go(func() error {
			var err error
			attendance, err = s.repo.ListAttendance(gctx, w, ids)
			return wrap("attendance", err)
		})
		g.Go(func() error {
			var err error
			ratings, err = s.repo.ListRatings(gctx, w, ids)
			return wrap("ratings", err)
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	profileByID := make(map[uuid.UUID]entity.Employee, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	return analytics.Assemble(analytics.Inputs{
		Request:               req,
		Series:                series,
		Ledger:                ledgerSum,
		Bookings:              bookingSum,
		Lifecycle:             lifecycle,
		ExpiredCount:          expired,
		ActiveMemberships:     active,
		NewMembershipsInRange: len(created),
		ServicesByRevenue:     byRevenue,
		ServicesByOrders:      byOrders,
		Employees:             employees,
		EmployeeProfiles:      profileByID,
		WorkedMinutes:         analytics.WorkedMinutes(attendance, analytics.OpenShiftEnd(now, w)),
		Ratings:               analytics.CollectRatings(ratings),
		LedgerEntries:         ledger,
		CompletedBookings:     completed,
		GeneratedAt:           now.UTC(),
	}), nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", what, err)
}
