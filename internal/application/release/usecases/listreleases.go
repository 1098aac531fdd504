package usecases

import (
	"context"
	"strings"
	"time"

	"relnotes/internal/application/release/dto"
	"relnotes/internal/domain/release"
	vo "relnotes/internal/domain/release/valueobjects"
	"relnotes/internal/shared/errors"
	"relnotes/internal/shared/logger"
	"relnotes/internal/shared/utils"
)

type ListReleasesQuery struct {
	Product        string
	Channel        string
	Version        string
	IsPublic       *bool
	CreatedBefore  *time.Time
	CreatedAfter   *time.Time
	ModifiedBefore *time.Time
	ModifiedAfter  *time.Time
	Ordering       string
	Page           int
	PageSize       int
}

// orderableReleaseColumns maps accepted ordering fields to their columns.
var orderableReleaseColumns = map[string]string{
	"id":           "id",
	"product":      "product",
	"channel":      "channel",
	"version":      "version",
	"release_date": "release_date",
	"created":      "created",
	"modified":     "modified",
}

type ListReleasesResult struct {
	Releases []*dto.ReleaseDTO
	Total    int64
	Page     int
	PageSize int
}

type ListReleasesUseCase struct {
	releaseRepo release.ReleaseRepository
	logger      logger.Interface
}

func NewListReleasesUseCase(
	releaseRepo release.ReleaseRepository,
	logger logger.Interface,
) *ListReleasesUseCase {
	return &ListReleasesUseCase{
		releaseRepo: releaseRepo,
		logger:      logger,
	}
}

func (uc *ListReleasesUseCase) Execute(ctx context.Context, query ListReleasesQuery) (*ListReleasesResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := release.ReleaseFilter{
		IsPublic:       query.IsPublic,
		CreatedBefore:  query.CreatedBefore,
		CreatedAfter:   query.CreatedAfter,
		ModifiedBefore: query.ModifiedBefore,
		ModifiedAfter:  query.ModifiedAfter,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}

	if query.Product != "" {
		product, err := vo.NewProduct(query.Product)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Product = &product
	}
	if query.Channel != "" {
		channel, err := vo.NewChannel(query.Channel)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Channel = &channel
	}
	if query.Version != "" {
		filter.Version = &query.Version
	}
	if query.Ordering != "" {
		field := strings.TrimPrefix(query.Ordering, "-")
		column, ok := orderableReleaseColumns[field]
		if !ok {
			return nil, errors.NewValidationError("cannot order releases by " + field)
		}
		filter.OrderBy = column
		filter.OrderDesc = strings.HasPrefix(query.Ordering, "-")
	}

	entities, total, err := uc.releaseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list releases", "error", err)
		return nil, err
	}

	return &ListReleasesResult{
		Releases: dto.FromReleaseEntities(entities),
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
