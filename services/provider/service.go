package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	providerRepo "pawcare/database/repository/provider"
	"pawcare/models"
	"pawcare/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrProviderNotFound indicates the referenced provider does not exist.
var ErrProviderNotFound = errors.New("provider not found")

// searchCacheTTL bounds how stale a cached provider-search result may be.
const searchCacheTTL = 5 * time.Minute

// ProviderService exposes the marketplace's provider directory.
type ProviderService interface {
	Register(provider *models.Provider) error
	GetByID(providerID string) (*models.Provider, error)
	Search(q providerRepo.SearchQuery) ([]models.Provider, error)
	List() ([]models.Provider, error)
	SetActive(providerID string, active bool) error
}

// DefaultProviderService implements ProviderService. Cache is optional; a
// nil client disables search-result caching.
type DefaultProviderService struct {
	Repo  providerRepo.ProviderRepository
	Cache *redis.Client
}

func (svc *DefaultProviderService) Register(provider *models.Provider) error {
	provider.ID = uuid.New().String()
	provider.IsActive = true
	provider.CreatedAt = time.Now()
	return svc.Repo.Create(provider)
}

func (svc *DefaultProviderService) GetByID(providerID string) (*models.Provider, error) {
	provider, err := svc.Repo.GetByID(providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

// Search returns active providers matching the query, consulting the cache
// first. Cache failures fall through to the repository.
func (svc *DefaultProviderService) Search(q providerRepo.SearchQuery) ([]models.Provider, error) {
	key := fmt.Sprintf("provider-search:%s:%s:%s", q.ServiceType, q.City, q.NameQuery)

	if svc.Cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if cached, err := svc.Cache.Get(ctx, key).Result(); err == nil {
			var providers []models.Provider
			if err := json.Unmarshal([]byte(cached), &providers); err == nil {
				return providers, nil
			}
		}
	}

	providers, err := svc.Repo.Search(q)
	if err != nil {
		return nil, err
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(providers); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := svc.Cache.Set(ctx, key, data, searchCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache provider search", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return providers, nil
}

func (svc *DefaultProviderService) List() ([]models.Provider, error) {
	return svc.Repo.List()
}

func (svc *DefaultProviderService) SetActive(providerID string, active bool) error {
	return svc.Repo.SetActive(providerID, active)
}
