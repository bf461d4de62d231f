package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"go.uber.org/zap"
)

// TenantConfigService manages per-tenant configuration through the admin API
type TenantConfigService struct {
	tenantRepo *repository.TenantConfigRepository
	logger     *zap.Logger
}

// NewTenantConfigService creates a new TenantConfigService
func NewTenantConfigService(tenantRepo *repository.TenantConfigRepository, logger *zap.Logger) *TenantConfigService {
	return &TenantConfigService{
		tenantRepo: tenantRepo,
		logger:     logger,
	}
}

// Create registers a new tenant config
func (s *TenantConfigService) Create(ctx context.Context, req *domain.CreateTenantConfigRequest) (*domain.TenantConfigDTO, error) {
	if err := ValidateTagRules(req.DispositionTagMapping); err != nil {
		return nil, err
	}
	if _, err := s.tenantRepo.GetByLocationID(ctx, req.LocationID); err == nil {
		return nil, ErrTenantExists
	} else if !errors.Is(err, repository.ErrTenantConfigNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant config: %w", err)
	}

	cfg := &domain.TenantConfig{
		LocationID:            req.LocationID,
		LocationAPIKey:        req.LocationAPIKey,
		UserID:                req.UserID,
		PipelineName:          req.PipelineName,
		FirstStageName:        req.FirstStageName,
		DispositionTagMapping: req.DispositionTagMapping,
	}
	if err := s.tenantRepo.Create(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("tenant config created", zap.String("location_id", cfg.LocationID))
	dto := toTenantConfigDTO(cfg)
	return &dto, nil
}

// GetByLocationID fetches one tenant config
func (s *TenantConfigService) GetByLocationID(ctx context.Context, locationID string) (*domain.TenantConfigDTO, error) {
	cfg, err := s.tenantRepo.GetByLocationID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantConfigNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	dto := toTenantConfigDTO(cfg)
	return &dto, nil
}

// Update replaces the mutable fields of an existing tenant config
func (s *TenantConfigService) Update(ctx context.Context, locationID string, req *domain.UpdateTenantConfigRequest) (*domain.TenantConfigDTO, error) {
	if err := ValidateTagRules(req.DispositionTagMapping); err != nil {
		return nil, err
	}
	cfg, err := s.tenantRepo.GetByLocationID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantConfigNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	cfg.LocationAPIKey = req.LocationAPIKey
	cfg.UserID = req.UserID
	cfg.PipelineName = req.PipelineName
	cfg.FirstStageName = req.FirstStageName
	cfg.DispositionTagMapping = req.DispositionTagMapping

	if err := s.tenantRepo.Update(ctx, cfg); err != nil {
		return nil, err
	}

	s.logger.Info("tenant config updated", zap.String("location_id", locationID))
	dto := toTenantConfigDTO(cfg)
	return &dto, nil
}

// Delete removes a tenant config
func (s *TenantConfigService) Delete(ctx context.Context, locationID string) error {
	err := s.tenantRepo.Delete(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantConfigNotFound) {
			return ErrTenantNotFound
		}
		return err
	}
	s.logger.Info("tenant config deleted", zap.String("location_id", locationID))
	return nil
}

// List returns tenant configs, paginated
func (s *TenantConfigService) List(ctx context.Context, page, pageSize int) ([]domain.TenantConfigDTO, int64, error) {
	configs, total, err := s.tenantRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]domain.TenantConfigDTO, len(configs))
	for i := range configs {
		dtos[i] = toTenantConfigDTO(&configs[i])
	}
	return dtos, total, nil
}

// ValidateTagRules rejects rules with empty tags or codes; the mapping is
// evaluated on every webhook and bad rows would silently never match.
func ValidateTagRules(rules domain.TagRules) error {
	for i, rule := range rules {
		if strings.TrimSpace(rule.Tag) == "" {
			return fmt.Errorf("%w: rule %d has an empty tag", ErrInvalidTagRules, i)
		}
		for j, code := range rule.Dispositions {
			if strings.TrimSpace(code) == "" {
				return fmt.Errorf("%w: rule %d has an empty disposition at %d", ErrInvalidTagRules, i, j)
			}
		}
	}
	return nil
}

func toTenantConfigDTO(cfg *domain.TenantConfig) domain.TenantConfigDTO {
	return domain.TenantConfigDTO{
		LocationID:            cfg.LocationID,
		UserID:                cfg.UserID,
		PipelineName:          cfg.PipelineName,
		FirstStageName:        cfg.FirstStageName,
		DispositionTagMapping: cfg.DispositionTagMapping,
		CreatedAt:             cfg.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:             cfg.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
