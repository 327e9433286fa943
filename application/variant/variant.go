package variant

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/model"
	redisrepo "github.com/muhammadheryan/variant-catalog/repository/redis"
	txrepo "github.com/muhammadheryan/variant-catalog/repository/tx"
	variantrepo "github.com/muhammadheryan/variant-catalog/repository/variant"
	"github.com/muhammadheryan/variant-catalog/resolver"
	"github.com/muhammadheryan/variant-catalog/thirdparty/rabbitmq"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

type VariantApp interface {
	GetVariants(ctx context.Context, productID uint64, refresh bool) ([]model.Variant, error)
	ListVariants(ctx context.Context, productID uint64, refresh bool) (*model.VariantListResponse, error)
	Resolve(ctx context.Context, productID uint64, sel model.Selection) (*model.ResolveResponse, error)
	RefreshVariants(ctx context.Context, productID uint64) (*model.VariantListResponse, error)
	ReplaceVariants(ctx context.Context, productID uint64, req *model.ReplaceVariantsRequest) error
}

type variantAppImpl struct {
	config      *config.Config
	resolver    *resolver.Resolver
	txRepo      txrepo.TxRepository
	variantRepo variantrepo.VariantRepository
	redisRepo   redisrepo.Repository
	publisher   rabbitmq.QualityPublisher

	loads singleflight.Group

	// generations counts cache invalidations per product. A load only writes
	// back to the cache when no invalidation happened while it ran.
	genMu       sync.Mutex
	generations map[uint64]uint64
}

// NewVariantApp wires the variant batch cache. publisher may be nil, in which
// case duplicate pairs are only logged.
func NewVariantApp(config *config.Config, resolver *resolver.Resolver, txRepo txrepo.TxRepository, variantRepo variantrepo.VariantRepository, redisRepo redisrepo.Repository, publisher rabbitmq.QualityPublisher) VariantApp {
	return &variantAppImpl{
		config:      config,
		resolver:    resolver,
		txRepo:      txRepo,
		variantRepo: variantRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
		generations: make(map[uint64]uint64),
	}
}

// GetVariants returns the product's variant batch, served from the cache unless
// refresh is set. Concurrent loads of the same product share one repository call.
func (s *variantAppImpl) GetVariants(ctx context.Context, productID uint64, refresh bool) ([]model.Variant, error) {
	key := constant.VariantCacheKey(productID)

	if !refresh {
		if batch, ok := s.cached(ctx, key); ok {
			return batch, nil
		}
	}

	gen := s.generation(productID)
	v, err, _ := s.loads.Do(flightKey(productID, gen), func() (interface{}, error) {
		return s.load(ctx, productID, gen, key)
	})
	if err != nil {
		logger.Error("[GetVariants] error variantRepo.ListByProduct", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return v.([]model.Variant), nil
}

func (s *variantAppImpl) cached(ctx context.Context, key string) ([]model.Variant, bool) {
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("[GetVariants] cache read failed, loading from db", zap.String("key", key), zap.String("error", err.Error()))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var batch []model.Variant
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		logger.Warn("[GetVariants] corrupt cache entry", zap.String("key", key), zap.String("error", err.Error()))
		return nil, false
	}
	return batch, true
}

func flightKey(productID, gen uint64) string {
	return strconv.FormatUint(productID, 10) + ":" + strconv.FormatUint(gen, 10)
}

func (s *variantAppImpl) generation(productID uint64) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.generations[productID]
}

// invalidate drops the cached batch and makes in-flight loads of the previous
// generation skip their cache write.
func (s *variantAppImpl) invalidate(ctx context.Context, productID uint64) error {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	gen := s.generations[productID]
	s.generations[productID] = gen + 1
	s.loads.Forget(flightKey(productID, gen))
	return s.redisRepo.Delete(ctx, constant.VariantCacheKey(productID))
}

func (s *variantAppImpl) load(ctx context.Context, productID, gen uint64, key string) ([]model.Variant, error) {
	batch, err := s.variantRepo.ListByProduct(ctx, productID, nil)
	if err != nil {
		return nil, err
	}

	s.reportDuplicates(productID, batch)

	payload, err := json.Marshal(batch)
	if err != nil {
		logger.Warn("[GetVariants] marshal batch", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return batch, nil
	}
	s.store(ctx, productID, gen, key, string(payload))
	return batch, nil
}

func (s *variantAppImpl) store(ctx context.Context, productID, gen uint64, key, payload string) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.generations[productID] != gen {
		logger.Warn("[GetVariants] batch invalidated during load, skipping cache write", zap.Uint64("product_id", productID))
		return
	}
	if err := s.redisRepo.SetWithTTL(ctx, key, payload, s.config.Catalog.VariantCacheTTL); err != nil {
		logger.Warn("[GetVariants] cache write failed", zap.String("key", key), zap.String("error", err.Error()))
	}
}

func (s *variantAppImpl) reportDuplicates(productID uint64, batch []model.Variant) {
	for _, dup := range resolver.DuplicatePairs(batch) {
		logger.Warn("[GetVariants] ambiguous variant pair",
			zap.Uint64("product_id", productID),
			zap.Uint64("color_id", dup.ColorID),
			zap.Uint64("size_id", dup.SizeID),
			zap.Uint64s("variant_ids", dup.VariantIDs),
		)
		if s.publisher == nil {
			continue
		}
		err := s.publisher.PublishVariantAmbiguity(rabbitmq.VariantAmbiguityMessage{
			ProductID:  productID,
			ColorID:    dup.ColorID,
			SizeID:     dup.SizeID,
			VariantIDs: dup.VariantIDs,
			DetectedAt: time.Now(),
		})
		if err != nil {
			logger.Error("[GetVariants] publish variant ambiguity", zap.String("error", err.Error()))
		}
	}
}

func (s *variantAppImpl) ListVariants(ctx context.Context, productID uint64, refresh bool) (*model.VariantListResponse, error) {
	batch, err := s.GetVariants(ctx, productID, refresh)
	if err != nil {
		return nil, err
	}
	return &model.VariantListResponse{
		ProductID: productID,
		Variants:  batch,
		Colors:    resolver.Colors(batch),
		Sizes:     resolver.Sizes(batch),
	}, nil
}

func (s *variantAppImpl) Resolve(ctx context.Context, productID uint64, sel model.Selection) (*model.ResolveResponse, error) {
	batch, err := s.GetVariants(ctx, productID, false)
	if err != nil {
		return nil, err
	}

	res := resolver.ResolveVariant(batch, sel)
	if res.Ambiguous {
		logger.Warn("[Resolve] selection matched several variants, using first",
			zap.Uint64("product_id", productID),
			zap.Uint64("color_id", sel.ColorID),
			zap.Uint64("size_id", sel.SizeID),
		)
	}

	return &model.ResolveResponse{
		ProductID:  productID,
		Selection:  sel,
		Resolution: res,
		OutOfStock: s.resolver.SelectionOutOfStock(batch, sel),
	}, nil
}

// RefreshVariants drops the cached batch and refetches it.
func (s *variantAppImpl) RefreshVariants(ctx context.Context, productID uint64) (*model.VariantListResponse, error) {
	if err := s.invalidate(ctx, productID); err != nil {
		logger.Error("[RefreshVariants] error redisRepo.Delete", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.ListVariants(ctx, productID, true)
}

func (s *variantAppImpl) ReplaceVariants(ctx context.Context, productID uint64, req *model.ReplaceVariantsRequest) error {
	if productID == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	variants := make([]model.Variant, 0, len(req.Variants))
	for _, v := range req.Variants {
		if v.ProductID != 0 && v.ProductID != productID {
			return errors.SetCustomError(constant.ErrVariantProductMismatch)
		}
		v.ProductID = productID
		variants = append(variants, v)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ReplaceVariants] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.variantRepo.ReplaceByProductTx(ctx, tx, productID, variants); err != nil {
		logger.Error("[ReplaceVariants] replace variants", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ReplaceVariants] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	s.reportDuplicates(productID, variants)

	// next read refetches the new batch
	if err := s.invalidate(ctx, productID); err != nil {
		logger.Error("[ReplaceVariants] invalidate cache", zap.Uint64("product_id", productID), zap.String("error", err.Error()))
	}
	return nil
}
