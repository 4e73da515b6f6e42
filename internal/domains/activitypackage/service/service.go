package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/activitypackage/model"
	"resort/internal/domains/activitypackage/model/dto"
	"resort/internal/domains/activitypackage/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/collection"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"

	"github.com/rs/zerolog/log"
)

const cacheListPackage = "list"

type ActivityPackage interface {
	List(ctx context.Context, activityID string) (dto.PackageListResponse, error)
	Sync(ctx context.Context, activityID string, req dto.SyncPackagesRequest) error
	Reorder(ctx context.Context, activityID string, req gDto.ReorderRequest) error
	Get(ctx context.Context, id string) (dto.PackageResponse, error)
	Update(ctx context.Context, req dto.UpdatePackageRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.ActivityPackage
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	manager *collection.Manager[model.ActivityPackage, dto.PackagePayload]
}

func New(repo repository.ActivityPackage, db postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ActivityPackage {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		manager: collection.NewManager[model.ActivityPackage, dto.PackagePayload](repo, dto.PackageCodec{}, db, model.TableName, model.FieldID),
	}
}

func activityFilter(activityID string) gDto.FilterGroup {
	return shared.FilterByID(activityID, model.FieldActivityID, model.TableName)
}

func (s *serviceImpl) List(ctx context.Context, activityID string) (res dto.PackageListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.Namespace(activityID), []string{cacheListPackage},
		func(ctx context.Context) (dto.PackageListResponse, error) {
			var res dto.PackageListResponse

			params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldSortOrder, SortDir: gDto.SortDirAsc}

			packages, err := s.repo.GetAll(ctx, params, activityFilter(activityID))
			if err != nil {
				log.Error().Err(err).Str("activity", activityID).Msg("failed to get activity packages")

				return res, fmt.Errorf("failed to get activity packages: %w", err)
			}

			if err := res.FromModels(packages); err != nil {
				return res, fmt.Errorf("failed to build activity packages: %w", err)
			}

			return res, nil
		})
}

func (s *serviceImpl) Sync(ctx context.Context, activityID string, req dto.SyncPackagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.Sync")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, err := s.manager.Sync(ctx, activityFilter(activityID), req.Items, func(item ordering.DisplayItem[dto.PackagePayload]) model.ActivityPackage {
		return dto.ToModel(item, activityID, user)
	})
	if err != nil {
		log.Error().Err(err).Str("activity", activityID).Msg("failed to save activity packages")

		return fmt.Errorf("failed to save activity packages: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"activity_package.inserted": len(plan.Inserts),
		"activity_package.updated":  len(plan.Updates),
		"activity_package.deleted":  len(plan.Deletes),
	})

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(activityID))

	return nil
}

func (s *serviceImpl) Reorder(ctx context.Context, activityID string, req gDto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.Reorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.manager.Reorder(ctx, activityFilter(activityID), req.IDs); err != nil {
		log.Error().Err(err).Str("activity", activityID).Msg("failed to reorder activity packages")

		return fmt.Errorf("failed to reorder activity packages: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(activityID))

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.ActivityPackage, error) {
	pkg, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get activity package")

		return pkg, fmt.Errorf("failed to get activity package: %w", err)
	}

	if pkg.ID == constant.Empty {
		return pkg, failure.NotFound("activity package not found") // nolint:wrapcheck
	}

	return pkg, nil
}

// Get reads the package from the database. Bookings price against it.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(pkg)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePackageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update activity package")

		return fmt.Errorf("failed to update activity package: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(pkg.ActivityID))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activitypackage.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pkg, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.manager.Delete(ctx, activityFilter(pkg.ActivityID), id); err != nil {
		log.Error().Err(err).Msg("failed to delete activity package")

		return fmt.Errorf("failed to delete activity package: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(pkg.ActivityID))

	return nil
}
