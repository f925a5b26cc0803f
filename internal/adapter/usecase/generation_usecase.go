package usecase

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"postcraft/internal/core/domain"
	"postcraft/internal/core/port"
	"postcraft/internal/metrics"
)

const defaultLayout = "default"

// GenerationUseCase implements port.GenerationUseCase: it loads the campaign,
// asks the generator for candidates, then stores them as the campaign's post
// set and moves the campaign to generated in a single repository write.
type GenerationUseCase struct {
	campaigns port.CampaignUseCase
	postSets  port.PostSetRepository
	generator port.PostGenerator
	locker    port.Locker
	leaseTTL  time.Duration
	flight    singleflight.Group
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ port.GenerationUseCase = (*GenerationUseCase)(nil)

// NewGenerationUseCase creates the orchestrator. m may be nil.
func NewGenerationUseCase(
	campaigns port.CampaignUseCase,
	postSets port.PostSetRepository,
	generator port.PostGenerator,
	logger *slog.Logger,
	m *metrics.Metrics,
) *GenerationUseCase {
	return &GenerationUseCase{
		campaigns: campaigns,
		postSets:  postSets,
		generator: generator,
		metrics:   m,
		logger:    resolveLogger(logger),
	}
}

// WithLocker makes every run hold a lease on the campaign for at most ttl,
// so that concurrent runs on other instances are rejected.
func (u *GenerationUseCase) WithLocker(l port.Locker, ttl time.Duration) *GenerationUseCase {
	u.locker = l
	u.leaseTTL = ttl
	return u
}

// GenerateAndAttach runs one generation for the campaign. Concurrent calls
// by the same principal for the same campaign share a single run. Once
// started, the run is not cancelled when the caller goes away.
func (u *GenerationUseCase) GenerateAndAttach(ctx context.Context, requester domain.Principal, campaignID string, in port.GenerateInput) (*domain.PostSet, error) {
	if !requester.Authenticated() {
		return nil, port.ErrUnauthenticated
	}
	ctx = context.WithoutCancel(ctx)

	key := string(requester) + "/" + campaignID
	v, err, shared := u.flight.Do(key, func() (any, error) {
		ps, err := u.run(ctx, requester, campaignID, in)
		if err != nil {
			u.metrics.ObserveGeneration(metrics.GenerationError, 0)
			return nil, err
		}
		return ps, nil
	})
	if err != nil {
		u.logger.Warn("generation failed",
			slog.String("campaign_id", campaignID), slog.Any("err", err))
		return nil, err
	}
	ps := v.(*domain.PostSet)
	if shared {
		u.logger.Debug("generation shared", slog.String("campaign_id", campaignID))
		cp := *ps
		cp.Posts = slices.Clone(ps.Posts)
		return &cp, nil
	}
	return ps, nil
}

func (u *GenerationUseCase) run(ctx context.Context, requester domain.Principal, campaignID string, in port.GenerateInput) (*domain.PostSet, error) {
	view, err := u.campaigns.GetCampaign(ctx, campaignID, requester)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, fmt.Errorf("campaign %s: %w", campaignID, port.ErrNotFound)
	}
	if !view.Status.CanTransition(domain.CampaignGenerated) {
		return nil, fmt.Errorf("%w: campaign %s is %s", port.ErrInvalidTransition, campaignID, view.Status)
	}

	if u.locker != nil {
		release, err := u.locker.Acquire(ctx, "generate:"+campaignID, u.leaseTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := release(ctx); err != nil {
				u.logger.Warn("release generation lease",
					slog.String("campaign_id", campaignID), slog.Any("err", err))
			}
		}()
	}

	req := port.GenerationRequest{
		Layout:             cmp.Or(strings.TrimSpace(in.Layout), defaultLayout),
		Instructions:       cmp.Or(strings.TrimSpace(in.Instructions), view.Instructions),
		ProductDescription: cmp.Or(strings.TrimSpace(in.ProductDescription), view.ProductDescription),
	}
	texts, err := u.generator.GenerateCandidates(ctx, req)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(texts))
	for _, t := range texts {
		posts = append(posts, domain.Post{Text: t})
	}
	ps := &domain.PostSet{
		ID:         uuid.NewString(),
		CampaignID: campaignID,
		Posts:      posts,
	}
	// the status is checked again here: the campaign may have been
	// completed while the upstream call was running
	if err = u.postSets.SaveGenerated(ctx, ps); err != nil {
		return nil, fmt.Errorf("save post set: %w", err)
	}

	result := metrics.GenerationOK
	if len(posts) == 0 {
		result = metrics.GenerationEmpty
	}
	u.metrics.ObserveGeneration(result, len(posts))
	u.logger.Info("posts generated",
		slog.String("campaign_id", campaignID),
		slog.String("layout", req.Layout),
		slog.Int("posts", len(posts)))
	return ps, nil
}
