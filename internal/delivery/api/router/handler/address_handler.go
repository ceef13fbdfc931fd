package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"addressbook/internal/delivery/api/response"
	"addressbook/internal/delivery/api/validator"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC   usecase.AddressUsecase
	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC   usecase.AddressUsecase
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC:   params.AddressUC,
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// AddressRequest is the body of create and update. All six fields are required;
// coordinates are pointers so that 0 counts as present.
type AddressRequest struct {
	Street    string   `json:"street" validate:"required,max=255"`
	City      string   `json:"city" validate:"required,max=100"`
	State     string   `json:"state" validate:"required,max=100"`
	Country   string   `json:"country" validate:"required,max=100"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Street:    r.Street,
		City:      r.City,
		State:     r.State,
		Country:   r.Country,
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
	}
}

// FindAddressesQuery holds the proximity search parameters. Distance is in kilometres.
type FindAddressesQuery struct {
	Latitude  float64 `query:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `query:"longitude" validate:"gte=-180,lte=180"`
	Distance  float64 `query:"distance" validate:"gte=0"`
}

// AddressResponse is the JSON shape of a stored address
type AddressResponse struct {
	ID        int64   `json:"id"`
	Street    string  `json:"street"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewAddressResponse converts an entity into its response DTO
func NewAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:        address.ID,
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Country:   address.Country,
		Latitude:  address.Latitude,
		Longitude: address.Longitude,
	}
}

// NewAddressListResponse converts entities into DTOs; an empty input yields an empty array.
func NewAddressListResponse(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, NewAddressResponse(address))
	}

	return out
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, NewAddressResponse(address))
}

// ListAddresses handles GET /addresses
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewAddressListResponse(addresses))
}

// GetAddress handles GET /addresses/:id
func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, ok := parseAddressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewAddressResponse(address))
}

// UpdateAddress handles PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, ok := parseAddressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewAddressResponse(address))
}

// DeleteAddress handles DELETE /addresses/:id and returns the removed record
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	id, ok := parseAddressID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.DeleteAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewAddressResponse(address))
}

// FindAddresses handles GET /addresses/find?latitude=&longitude=&distance=
func (h *AddressHandler) FindAddresses(c echo.Context) error {
	var query FindAddressesQuery
	if err := echo.QueryParamsBinder(c).
		MustFloat64("latitude", &query.Latitude).
		MustFloat64("longitude", &query.Longitude).
		MustFloat64("distance", &query.Distance).
		BindError(); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(),
			"latitude, longitude and distance query parameters must be numbers")
	}

	if err := c.Validate(&query); err != nil {
		return validationError(c, err)
	}

	addresses, err := h.proximityUC.FindAddressesWithin(c.Request().Context(), &usecase.ProximityQuery{
		Latitude:   query.Latitude,
		Longitude:  query.Longitude,
		DistanceKm: query.Distance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, NewAddressListResponse(addresses))
}

func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), validator.Describe(err))
}

func parseAddressID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
