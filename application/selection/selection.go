package selection

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	variantapp "github.com/muhammadheryan/variant-catalog/application/variant"
	"github.com/muhammadheryan/variant-catalog/cmd/config"
	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/model"
	redisrepo "github.com/muhammadheryan/variant-catalog/repository/redis"
	"github.com/muhammadheryan/variant-catalog/resolver"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	"github.com/muhammadheryan/variant-catalog/utils/logger"
)

type SelectionApp interface {
	GetSelection(ctx context.Context, sessionID string, productID uint64) (*model.SelectionView, error)
	ChooseColor(ctx context.Context, sessionID string, productID, colorID uint64) (*model.SelectionView, error)
	ChooseSize(ctx context.Context, sessionID string, productID, sizeID uint64) (*model.SelectionView, error)
	ClearSelection(ctx context.Context, sessionID string, productID uint64) (*model.SelectionView, error)
}

type selectionAppImpl struct {
	config     *config.Config
	resolver   *resolver.Resolver
	variantApp variantapp.VariantApp
	redisRepo  redisrepo.Repository
}

// NewSelectionApp keeps one Selection per session and product in Redis.
func NewSelectionApp(config *config.Config, resolver *resolver.Resolver, variantApp variantapp.VariantApp, redisRepo redisrepo.Repository) SelectionApp {
	return &selectionAppImpl{
		config:     config,
		resolver:   resolver,
		variantApp: variantApp,
		redisRepo:  redisRepo,
	}
}

func (s *selectionAppImpl) GetSelection(ctx context.Context, sessionID string, productID uint64) (*model.SelectionView, error) {
	batch, err := s.variantApp.GetVariants(ctx, productID, false)
	if err != nil {
		return nil, err
	}
	sel := s.load(ctx, sessionID, productID)
	return s.view(batch, productID, sel, false), nil
}

// ChooseColor sets the color. A previously chosen size that has no variant
// with the new color is dropped and reported through SizeCleared.
func (s *selectionAppImpl) ChooseColor(ctx context.Context, sessionID string, productID, colorID uint64) (*model.SelectionView, error) {
	batch, err := s.variantApp.GetVariants(ctx, productID, false)
	if err != nil {
		return nil, err
	}
	if !contains(resolver.Colors(batch), colorID) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	sel := s.load(ctx, sessionID, productID)
	sel.ColorID = colorID

	sizeCleared := false
	if sel.SizeID != 0 && resolver.ResolveVariant(batch, sel).MatchedVariant == nil {
		sel.SizeID = 0
		sizeCleared = true
	}

	if err := s.save(ctx, sessionID, productID, sel); err != nil {
		return nil, err
	}
	return s.view(batch, productID, sel, sizeCleared), nil
}

// ChooseSize sets the size. The size must be offered for the chosen color,
// or by any variant when no color is chosen yet.
func (s *selectionAppImpl) ChooseSize(ctx context.Context, sessionID string, productID, sizeID uint64) (*model.SelectionView, error) {
	batch, err := s.variantApp.GetVariants(ctx, productID, false)
	if err != nil {
		return nil, err
	}

	sel := s.load(ctx, sessionID, productID)
	offered := resolver.Sizes(batch)
	if sel.ColorID != 0 {
		offered = resolver.SizesForColor(batch, sel.ColorID)
	}
	if !contains(offered, sizeID) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	sel.SizeID = sizeID

	if err := s.save(ctx, sessionID, productID, sel); err != nil {
		return nil, err
	}
	return s.view(batch, productID, sel, false), nil
}

func (s *selectionAppImpl) ClearSelection(ctx context.Context, sessionID string, productID uint64) (*model.SelectionView, error) {
	batch, err := s.variantApp.GetVariants(ctx, productID, false)
	if err != nil {
		return nil, err
	}
	if err := s.redisRepo.Delete(ctx, constant.SelectionKey(sessionID, productID)); err != nil {
		logger.Error("[ClearSelection] error redisRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.view(batch, productID, model.Selection{}, false), nil
}

// load returns the stored selection, or an empty one when none is stored
// or the entry cannot be read.
func (s *selectionAppImpl) load(ctx context.Context, sessionID string, productID uint64) model.Selection {
	key := constant.SelectionKey(sessionID, productID)
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		logger.Warn("[Selection] read failed, starting empty", zap.String("key", key), zap.String("error", err.Error()))
		return model.Selection{}
	}
	if raw == "" {
		return model.Selection{}
	}

	var sel model.Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		logger.Warn("[Selection] corrupt entry, starting empty", zap.String("key", key), zap.String("error", err.Error()))
		return model.Selection{}
	}
	return sel
}

func (s *selectionAppImpl) save(ctx context.Context, sessionID string, productID uint64, sel model.Selection) error {
	payload, err := json.Marshal(sel)
	if err != nil {
		logger.Error("[Selection] marshal selection", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.redisRepo.SetWithTTL(ctx, constant.SelectionKey(sessionID, productID), string(payload), s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Selection] error redisRepo.SetWithTTL", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *selectionAppImpl) view(batch []model.Variant, productID uint64, sel model.Selection, sizeCleared bool) *model.SelectionView {
	return &model.SelectionView{
		ProductID:   productID,
		Selection:   sel,
		Resolution:  resolver.ResolveVariant(batch, sel),
		SizeCleared: sizeCleared,
		OutOfStock:  s.resolver.SelectionOutOfStock(batch, sel),
	}
}

func contains(attrs []model.Attribute, id uint64) bool {
	for _, a := range attrs {
		if a.ID == id {
			return true
		}
	}
	return false
}
