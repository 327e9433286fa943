package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	productapp "github.com/muhammadheryan/variant-catalog/application/product"
	selectionapp "github.com/muhammadheryan/variant-catalog/application/selection"
	sessionapp "github.com/muhammadheryan/variant-catalog/application/session"
	variantapp "github.com/muhammadheryan/variant-catalog/application/variant"
	"github.com/muhammadheryan/variant-catalog/constant"
	"github.com/muhammadheryan/variant-catalog/model"
	utilsContext "github.com/muhammadheryan/variant-catalog/utils/context"
	"github.com/muhammadheryan/variant-catalog/utils/errors"
	validatorx "github.com/muhammadheryan/variant-catalog/utils/validator"
)

type RestHandler struct {
	SessionApp   sessionapp.SessionApp
	ProductApp   productapp.ProductApp
	VariantApp   variantapp.VariantApp
	SelectionApp selectionapp.SelectionApp
}

func NewTransport(internalAPIKey string, SessionApp sessionapp.SessionApp, ProductApp productapp.ProductApp, VariantApp variantapp.VariantApp, SelectionApp selectionapp.SelectionApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		SessionApp:   SessionApp,
		ProductApp:   ProductApp,
		VariantApp:   VariantApp,
		SelectionApp: SelectionApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// browsing session
	mux.HandleFunc("/v1/session", rh.StartSession).Methods(http.MethodPost)
	mux.HandleFunc("/v1/session", rh.EndSession).Methods(http.MethodDelete)

	// catalog
	mux.HandleFunc("/v1/product", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/v1/product/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/v1/product/{id:[0-9]+}/variants", rh.ListVariants).Methods(http.MethodGet)
	mux.HandleFunc("/v1/product/{id:[0-9]+}/resolve", rh.ResolveVariant).Methods(http.MethodGet)

	// selection, needs a session
	mux.HandleFunc("/v1/product/{id:[0-9]+}/selection", rh.GetSelection).Methods(http.MethodGet)
	mux.HandleFunc("/v1/product/{id:[0-9]+}/selection", rh.ClearSelection).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/product/{id:[0-9]+}/selection/color", rh.ChooseColor).Methods(http.MethodPut)
	mux.HandleFunc("/v1/product/{id:[0-9]+}/selection/size", rh.ChooseSize).Methods(http.MethodPut)

	// internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.HandleFunc("/v1/product/{id:[0-9]+}/variants", rh.ReplaceVariants).Methods(http.MethodPut)
	internal.HandleFunc("/v1/product/{id:[0-9]+}/variants/refresh", rh.RefreshVariants).Methods(http.MethodPost)
	internal.Use(InternalMiddleware(internalAPIKey))

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(SessionApp))

	return mux
}

func productID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

// queryUint reads an optional unsigned query parameter; absent means 0.
func queryUint(r *http.Request, name string) (uint64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return v, nil
}

func sessionID(r *http.Request) (string, error) {
	id, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// StartSession handler
// @Summary Start browsing session
// @Description Issue an anonymous session token used to keep variant selections
// @Tags Session
// @Produce json
// @Success 200 {object} model.SessionResponse
// @Failure 500 {object} errors.CustomError
// @Router /v1/session [post]
func (s *RestHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	res, err := s.SessionApp.StartSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// EndSession handler
// @Summary End browsing session
// @Tags Session
// @Produce json
// @Security BearerAuth
// @Success 200
// @Failure 401 {object} errors.CustomError
// @Router /v1/session [delete]
func (s *RestHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.SessionApp.EndSession(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListProducts handler
// @Summary List products
// @Description Paginated product list with resolved stock and out-of-stock flag
// @Tags Product
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} model.ProductListResponse
// @Failure 500 {object} errors.CustomError
// @Router /v1/product [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Product detail
// @Description Product with its variants, colors, sizes and stock verdict
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} errors.CustomError
// @Router /v1/product/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListVariants handler
// @Summary Product variants
// @Description Served from the variant cache; refetching is internal only
// @Tags Variant
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.VariantListResponse
// @Failure 500 {object} errors.CustomError
// @Router /v1/product/{id}/variants [get]
func (s *RestHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.VariantApp.ListVariants(r.Context(), id, false)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResolveVariant handler
// @Summary Resolve a color/size selection
// @Description Stateless resolution of a selection to a variant plus the sizes and colors still offered
// @Tags Variant
// @Produce json
// @Param id path int true "Product ID"
// @Param color_id query int false "Color attribute ID"
// @Param size_id query int false "Size attribute ID"
// @Success 200 {object} model.ResolveResponse
// @Failure 400 {object} errors.CustomError
// @Router /v1/product/{id}/resolve [get]
func (s *RestHandler) ResolveVariant(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	colorID, err := queryUint(r, "color_id")
	if err != nil {
		writeError(w, err)
		return
	}
	sizeID, err := queryUint(r, "size_id")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VariantApp.Resolve(r.Context(), id, model.Selection{ColorID: colorID, SizeID: sizeID})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSelection handler
// @Summary Current selection
// @Tags Selection
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.SelectionView
// @Failure 401 {object} errors.CustomError
// @Router /v1/product/{id}/selection [get]
func (s *RestHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	sid, id, err := selectionTarget(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.SelectionApp.GetSelection(r.Context(), sid, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ClearSelection handler
// @Summary Clear selection
// @Tags Selection
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.SelectionView
// @Failure 401 {object} errors.CustomError
// @Router /v1/product/{id}/selection [delete]
func (s *RestHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sid, id, err := selectionTarget(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.SelectionApp.ClearSelection(r.Context(), sid, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ChooseColor handler
// @Summary Choose color
// @Description Sets the color; a chosen size without a variant in the new color is cleared
// @Tags Selection
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.ChooseColorRequest true "Color"
// @Success 200 {object} model.SelectionView
// @Failure 400 {object} errors.CustomError
// @Router /v1/product/{id}/selection/color [put]
func (s *RestHandler) ChooseColor(w http.ResponseWriter, r *http.Request) {
	sid, id, err := selectionTarget(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChooseColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	res, err := s.SelectionApp.ChooseColor(r.Context(), sid, id, req.ColorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ChooseSize handler
// @Summary Choose size
// @Tags Selection
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.ChooseSizeRequest true "Size"
// @Success 200 {object} model.SelectionView
// @Failure 400 {object} errors.CustomError
// @Router /v1/product/{id}/selection/size [put]
func (s *RestHandler) ChooseSize(w http.ResponseWriter, r *http.Request) {
	sid, id, err := selectionTarget(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ChooseSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	res, err := s.SelectionApp.ChooseSize(r.Context(), sid, id, req.SizeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ReplaceVariants handler
// @Summary Replace product variants
// @Description Internal import of a product's full variant batch
// @Tags Internal
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body model.ReplaceVariantsRequest true "Variants"
// @Success 200
// @Failure 400 {object} errors.CustomError
// @Failure 403 {object} errors.CustomError
// @Router /internal/v1/product/{id}/variants [put]
func (s *RestHandler) ReplaceVariants(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReplaceVariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, r, err)
		return
	}

	if err := s.VariantApp.ReplaceVariants(r.Context(), id, &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// RefreshVariants handler
// @Summary Refresh cached variants
// @Description Drops the cached variant batch and reloads it
// @Tags Internal
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.VariantListResponse
// @Failure 403 {object} errors.CustomError
// @Router /internal/v1/product/{id}/variants/refresh [post]
func (s *RestHandler) RefreshVariants(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.VariantApp.RefreshVariants(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func selectionTarget(r *http.Request) (string, uint64, error) {
	sid, err := sessionID(r)
	if err != nil {
		return "", 0, err
	}
	id, err := productID(r)
	if err != nil {
		return "", 0, err
	}
	return sid, id, nil
}
