package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/policy/model"
	"resort/internal/domains/policy/model/dto"
	"resort/internal/domains/policy/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/collection"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"

	"github.com/rs/zerolog/log"
)

const cacheListPolicy = "list"

type Policy interface {
	List(ctx context.Context, ownerType, ownerID string) (dto.PolicyListResponse, error)
	Sync(ctx context.Context, ownerType, ownerID string, req dto.SyncPoliciesRequest) error
	Reorder(ctx context.Context, ownerType, ownerID string, req gDto.ReorderRequest) error
	Update(ctx context.Context, req dto.UpdatePolicyRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Policy
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	manager *collection.Manager[model.Policy, dto.PolicyPayload]
}

func New(repo repository.Policy, db postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Policy {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		manager: collection.NewManager[model.Policy, dto.PolicyPayload](repo, dto.PolicyCodec{}, db, model.TableName, model.FieldID),
	}
}

func ownerFilter(ownerType, ownerID string) (gDto.FilterGroup, error) {
	field := model.OwnerField(ownerType)
	if field == constant.Empty {
		return gDto.FilterGroup{}, failure.BadRequestFromString(fmt.Sprintf("unknown policy owner %q", ownerType))
	}

	return shared.FilterByID(ownerID, field, model.TableName), nil
}

func (s *serviceImpl) List(ctx context.Context, ownerType, ownerID string) (res dto.PolicyListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := ownerFilter(ownerType, ownerID)
	if err != nil {
		return res, err
	}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.Namespace(ownerType, ownerID), []string{cacheListPolicy},
		func(ctx context.Context) (dto.PolicyListResponse, error) {
			var res dto.PolicyListResponse

			params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldSortOrder, SortDir: gDto.SortDirAsc}

			policies, err := s.repo.GetAll(ctx, params, filter)
			if err != nil {
				log.Error().Err(err).Msg("failed to get policies")

				return res, fmt.Errorf("failed to get policies: %w", err)
			}

			if err := res.FromModels(policies); err != nil {
				return res, fmt.Errorf("failed to build policies: %w", err)
			}

			return res, nil
		})
}

func (s *serviceImpl) Sync(ctx context.Context, ownerType, ownerID string, req dto.SyncPoliciesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Sync")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := ownerFilter(ownerType, ownerID)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, err := s.manager.Sync(ctx, filter, req.Items, func(item ordering.DisplayItem[dto.PolicyPayload]) model.Policy {
		return dto.ToModel(item, ownerType, ownerID, user)
	})
	if err != nil {
		log.Error().Err(err).Str("owner", ownerID).Msg("failed to save policies")

		return fmt.Errorf("failed to save policies: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"policy.inserted": len(plan.Inserts),
		"policy.updated":  len(plan.Updates),
		"policy.deleted":  len(plan.Deletes),
	})

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(ownerType, ownerID))

	return nil
}

func (s *serviceImpl) Reorder(ctx context.Context, ownerType, ownerID string, req gDto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Reorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := ownerFilter(ownerType, ownerID)
	if err != nil {
		return err
	}

	if err = s.manager.Reorder(ctx, filter, req.IDs); err != nil {
		log.Error().Err(err).Str("owner", ownerID).Msg("failed to reorder policies")

		return fmt.Errorf("failed to reorder policies: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(ownerType, ownerID))

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Policy, error) {
	policy, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get policy")

		return policy, fmt.Errorf("failed to get policy: %w", err)
	}

	if policy.ID == constant.Empty {
		return policy, failure.NotFound("policy not found") // nolint:wrapcheck
	}

	return policy, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePolicyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	policy, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update policy")

		return fmt.Errorf("failed to update policy: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(policy.Owner()))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	policy, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	ownerType, ownerID := policy.Owner()

	filter, err := ownerFilter(ownerType, ownerID)
	if err != nil {
		return err
	}

	if err = s.manager.Delete(ctx, filter, id); err != nil {
		log.Error().Err(err).Msg("failed to delete policy")

		return fmt.Errorf("failed to delete policy: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(ownerType, ownerID))

	return nil
}
