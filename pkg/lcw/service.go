package lcw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ammarcodes29/cryptoAPI/pkg/cache"
	"github.com/ammarcodes29/cryptoAPI/pkg/logging"
	"github.com/ammarcodes29/cryptoAPI/pkg/models"
)

// searchWindow is the fixed listing size fetched for client-side search.
// The upstream has no search endpoint, so search filters the top entries
// by rank; the window does not grow with the requested limit.
const searchWindow = 200

// Service exposes the four gateway operations, consulting the cache
// before the upstream and writing normalized results back on success.
// Parameters must already be validated and normalized.
type Service struct {
	client *Client
	store  cache.Store
	group  singleflight.Group
	logger zerolog.Logger
}

// NewService creates a gateway service over the given upstream client and
// cache store.
func NewService(client *Client, store cache.Store) *Service {
	return &Service{
		client: client,
		store:  store,
		logger: logging.NewLogger("lcw-service"),
	}
}

// Coin returns normalized market data for a single cryptocurrency.
func (s *Service) Coin(ctx context.Context, symbol, currency string) (models.Asset, error) {
	key := cache.Key{Operation: "coin", Params: []string{symbol, currency}}.String()

	var cached models.Asset
	if s.fromCache(ctx, key, &cached) {
		s.logger.Debug().Str("symbol", symbol).Msg("Cache hit for coin")
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		body := singleCoinRequest{Currency: currency, Code: symbol, Meta: true}

		data, err := s.client.post(ctx, "coins/single", body)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) && perr.Kind == KindNotFound {
				// Carry the requested symbol for a clearer message; the
				// kind stays the same.
				return nil, &Error{
					Kind:       KindNotFound,
					StatusCode: perr.StatusCode,
					Message:    fmt.Sprintf("cryptocurrency '%s' not found", symbol),
					Err:        perr.Err,
				}
			}
			return nil, err
		}

		var coin coinPayload
		if err := json.Unmarshal(data, &coin); err != nil {
			return nil, &Error{Kind: KindUpstream, Message: "invalid upstream payload", Err: err}
		}

		asset := models.Asset{
			Symbol:           symbol,
			Name:             coin.Name,
			Price:            coin.Rate,
			PercentChange24h: coin.percentChange(),
			Volume24h:        coin.Volume,
			MarketCap:        coin.Cap,
			Rank:             coin.Rank,
		}

		s.toCache(ctx, key, asset)
		s.logger.Info().Str("symbol", symbol).Str("currency", currency).Msg("Fetched and cached coin")

		return asset, nil
	})
	if err != nil {
		return models.Asset{}, err
	}

	return v.(models.Asset), nil
}

// List returns a page of cryptocurrencies ordered by ascending rank.
func (s *Service) List(ctx context.Context, currency string, limit, offset int) ([]models.ListItem, error) {
	key := cache.Key{
		Operation: "list",
		Params:    []string{currency, strconv.Itoa(limit), strconv.Itoa(offset)},
	}.String()

	var cached []models.ListItem
	if s.fromCache(ctx, key, &cached) {
		s.logger.Debug().Str("currency", currency).Msg("Cache hit for coin list")
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		body := coinListRequest{
			Currency: currency,
			Sort:     "rank",
			Order:    "ascending",
			Offset:   offset,
			Limit:    limit,
			Meta:     false,
		}

		data, err := s.client.post(ctx, "coins/list", body)
		if err != nil {
			return nil, err
		}

		var coins []coinPayload
		if err := json.Unmarshal(data, &coins); err != nil {
			return nil, &Error{Kind: KindUpstream, Message: "invalid upstream payload", Err: err}
		}

		items := make([]models.ListItem, 0, len(coins))
		for _, coin := range coins {
			items = append(items, models.ListItem{
				Symbol:           coin.Code,
				Name:             coin.Name,
				Price:            coin.Rate,
				PercentChange24h: coin.percentChange(),
				Rank:             coin.Rank,
			})
		}

		s.toCache(ctx, key, items)
		s.logger.Info().Str("currency", currency).Int("count", len(items)).Msg("Fetched and cached coin list")

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.ListItem), nil
}

// Search returns up to limit cryptocurrencies whose name or symbol
// contains the query, case-insensitively. The upstream exposes no search
// endpoint, so this filters a fixed-size top listing client-side; matches
// keep listing order (ascending rank) and collection stops at limit.
func (s *Service) Search(ctx context.Context, query, currency string, limit int) ([]models.ListItem, error) {
	key := cache.Key{
		Operation: "search",
		Params:    []string{query, currency, strconv.Itoa(limit)},
	}.String()

	var cached []models.ListItem
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		items, err := s.List(ctx, currency, searchWindow, 0)
		if err != nil {
			return nil, err
		}

		queryLower := strings.ToLower(query)
		matches := make([]models.ListItem, 0, limit)
		for _, item := range items {
			if strings.Contains(strings.ToLower(item.Name), queryLower) ||
				strings.Contains(strings.ToLower(item.Symbol), queryLower) {
				matches = append(matches, item)
				if len(matches) >= limit {
					break
				}
			}
		}

		s.toCache(ctx, key, matches)

		return matches, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]models.ListItem), nil
}

// Overview returns market-wide aggregate statistics.
func (s *Service) Overview(ctx context.Context, currency string) (models.MarketOverview, error) {
	key := cache.Key{Operation: "overview", Params: []string{currency}}.String()

	var cached models.MarketOverview
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		data, err := s.client.post(ctx, "overview", overviewRequest{Currency: currency})
		if err != nil {
			return nil, err
		}

		var payload overviewPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, &Error{Kind: KindUpstream, Message: "invalid upstream payload", Err: err}
		}

		overview := models.MarketOverview{
			TotalMarketCap:         payload.Cap,
			TotalVolume24h:         payload.Volume,
			BitcoinDominance:       payload.BTCDominance,
			ActiveCryptocurrencies: payload.Liquidity,
		}

		s.toCache(ctx, key, overview)

		return overview, nil
	})
	if err != nil {
		return models.MarketOverview{}, err
	}

	return v.(models.MarketOverview), nil
}

// CacheSize reports the entry count of the underlying store, including
// expired entries not yet purged.
func (s *Service) CacheSize(ctx context.Context) (int, error) {
	return s.store.Size(ctx)
}

// fromCache loads a cached value into out, treating store errors and
// decode failures as misses.
func (s *Service) fromCache(ctx context.Context, key string, out any) bool {
	data, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache get error")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Corrupt cache entry")
		return false
	}
	return true
}

// toCache stores a normalized value; failures are logged, never surfaced.
func (s *Service) toCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Marshal cache entry failed")
		return
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Cache set error")
	}
}
