package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cleawwy/Project-Omega/apperrors"
	"github.com/Cleawwy/Project-Omega/logging"
	"github.com/Cleawwy/Project-Omega/models"
	"github.com/Cleawwy/Project-Omega/routing"
	"github.com/Cleawwy/Project-Omega/services"
	"github.com/Cleawwy/Project-Omega/utils"
)

const missingEndpointsMsg = "src and dst query parameters required (format: lat,lon)"

type RoutingHandler struct {
	routingService *services.RoutingService
}

func NewRoutingHandler(routingService *services.RoutingService) *RoutingHandler {
	return &RoutingHandler{
		routingService: routingService,
	}
}

func (h *RoutingHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/route", h.CalculateRoute)
	router.GET("/compare", h.CompareAlgorithms)
	router.GET("/algorithms", h.GetAlgorithms)
	router.GET("/graph", h.GetGraphInfo)
}

// CalculateRoute serves GET /api/route?src=lat,lon&dst=lat,lon&algo=name.
func (h *RoutingHandler) CalculateRoute(c *gin.Context) {
	ctx := c.Request.Context()

	src, dst, err := parseEndpoints(c)
	if err != nil {
		respondError(c, err)
		return
	}

	raw := c.Query("algo")
	algo, ok := utils.ParseAlgorithm(raw)
	if !ok {
		logging.FromContext(ctx).Warn("unknown algorithm, falling back", "algo", raw, "fallback", algo)
	}

	resp, err := h.routingService.CalculateRoute(ctx, models.RouteRequest{
		Source:      src,
		Destination: dst,
		Algorithm:   algo,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompareAlgorithms serves GET /api/compare?src=lat,lon&dst=lat,lon.
func (h *RoutingHandler) CompareAlgorithms(c *gin.Context) {
	src, dst, err := parseEndpoints(c)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.routingService.CompareAlgorithms(c.Request.Context(), models.CompareRequest{
		Source:      src,
		Destination: dst,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *RoutingHandler) GetAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"algorithms": routing.Algorithms(),
		"default":    models.DefaultAlgorithm,
	})
}

func (h *RoutingHandler) GetGraphInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.routingService.GraphInfo())
}

func parseEndpoints(c *gin.Context) (models.LatLng, models.LatLng, error) {
	rawSrc, rawDst := c.Query("src"), c.Query("dst")
	if rawSrc == "" || rawDst == "" {
		return models.LatLng{}, models.LatLng{}, apperrors.New(apperrors.ErrCodeInvalidInput, missingEndpointsMsg)
	}

	src, err := utils.ParseLatLng(rawSrc)
	if err != nil {
		return models.LatLng{}, models.LatLng{}, err
	}
	dst, err := utils.ParseLatLng(rawDst)
	if err != nil {
		return models.LatLng{}, models.LatLng{}, err
	}
	return src, dst, nil
}

// respondError writes the {"error", "code"} body. Server-side failures are
// logged; client errors are not.
func respondError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}

	logger := logging.FromContext(c.Request.Context())
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable:
		logger.Error("request failed", "path", c.Request.URL.Path, "err", err)
	case status == http.StatusServiceUnavailable:
		logger.Warn("request not served", "path", c.Request.URL.Path, "err", err)
	}

	c.AbortWithStatusJSON(status, models.ApiError{
		Error: apperrors.UserMessage(err),
		Code:  string(code),
	})
}
