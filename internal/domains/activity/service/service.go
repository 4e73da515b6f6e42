package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/activity/model"
	"resort/internal/domains/activity/model/dto"
	"resort/internal/domains/activity/repository"
	packageModel "resort/internal/domains/activitypackage/model"
	packageService "resort/internal/domains/activitypackage/service"
	itineraryModel "resort/internal/domains/itinerary/model"
	itineraryService "resort/internal/domains/itinerary/service"
	mediaService "resort/internal/domains/media/service"
	policyModel "resort/internal/domains/policy/model"
	policyService "resort/internal/domains/policy/service"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetActivity       = "get"
	cacheGetActivityBySlug = "slug"
	cacheGetAllActivity    = "list"
)

type Activity interface {
	Create(ctx context.Context, req dto.CreateActivityRequest) (dto.ActivityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetActivitiesResponse, error)
	Get(ctx context.Context, id string) (dto.ActivityResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.ActivityResponse, error)
	Update(ctx context.Context, req dto.UpdateActivityRequest, id string) error
	Delete(ctx context.Context, id string) error
	Detail(ctx context.Context, id string) (dto.DetailResponse, error)
}

type serviceImpl struct {
	repo      repository.Activity
	packages  packageService.ActivityPackage
	itinerary itineraryService.Itinerary
	policies  policyService.Policy
	media     mediaService.Media
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Activity,
	packages packageService.ActivityPackage,
	itinerary itineraryService.Itinerary,
	policies policyService.Policy,
	media mediaService.Media,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Activity {
	return &serviceImpl{
		repo:      repo,
		packages:  packages,
		itinerary: itinerary,
		policies:  policies,
		media:     media,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateActivityRequest) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	activity := req.ToModel(user)
	if activity.Slug == constant.Empty {
		return res, failure.BadRequestFromString("name must contain letters or digits")
	}

	if err = s.repo.Insert(ctx, activity); err != nil {
		log.Error().Err(err).Str("slug", activity.Slug).Msg("failed to create activity")

		return res, fmt.Errorf("failed to create activity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	res.FromModel(activity)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheGetAllActivity, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetActivitiesResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count activities")

			return dto.GetActivitiesResponse{}, fmt.Errorf("failed to count activities: %w", err)
		}

		activities, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get activities")

			return dto.GetActivitiesResponse{}, fmt.Errorf("failed to get activities: %w", err)
		}

		return dto.FromModels(activities, total, req.Limit), nil
	})
}

func (s *serviceImpl) find(ctx context.Context, field, value string) (model.Activity, error) {
	activity, err := s.repo.Get(ctx, shared.FilterByID(value, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Str(field, value).Msg("failed to get activity")

		return activity, fmt.Errorf("failed to get activity: %w", err)
	}

	if activity.ID == constant.Empty {
		return activity, failure.NotFound("activity not found") // nolint:wrapcheck
	}

	return activity, nil
}

func (s *serviceImpl) cachedFind(ctx context.Context, part, field, value string) (dto.ActivityResponse, error) {
	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{part, value}, func(ctx context.Context) (dto.ActivityResponse, error) {
		var res dto.ActivityResponse

		activity, err := s.find(ctx, field, value)
		if err != nil {
			return res, err
		}

		res.FromModel(activity)

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetActivity, model.FieldID, id)
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.ActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetActivityBySlug, model.FieldSlug, slug)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateActivityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update activity")

		return fmt.Errorf("failed to update activity: %w", err)
	}

	if req.Image != constant.Empty && req.Image != current.Image {
		s.media.DeleteLater(ctx, current.Image)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

// Delete removes the activity with its packages, itinerary and policies.
// An activity with bookings cannot be deleted.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	activity, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete activity")

		return fmt.Errorf("failed to delete activity: %w", err)
	}

	s.media.DeleteLater(ctx, activity.Image)

	shared.InvalidateCaches(ctx, s.cache,
		model.EntityName,
		packageModel.Namespace(id),
		itineraryModel.Namespace(id),
		policyModel.Namespace(constant.OwnerTypeActivity, id),
	)

	return nil
}

// Detail composes the activity with its packages, itinerary and policies.
func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if res.ActivityResponse, err = s.Get(ctx, id); err != nil {
		return res, err
	}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		res.Packages, err = s.packages.List(gctx, id)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		res.Itinerary, err = s.itinerary.List(gctx, id)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		res.Policies, err = s.policies.List(gctx, constant.OwnerTypeActivity, id)

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("activity", id).Msg("failed to get activity detail")

		return res, fmt.Errorf("failed to get activity detail: %w", err)
	}

	return res, nil
}
