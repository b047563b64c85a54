package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	routedomain "github.com/marinex/fueleu/internal/route/domain"
)

type createRouteRequest struct {
	RouteID         string  `json:"route_id"`
	VesselType      string  `json:"vessel_type"`
	FuelType        string  `json:"fuel_type"`
	Year            int     `json:"year"`
	GHGIntensity    float64 `json:"ghg_intensity"`
	FuelConsumption float64 `json:"fuel_consumption"`
	Distance        float64 `json:"distance"`
	TotalEmissions  float64 `json:"total_emissions"`
}

func (s *Server) ListRoutes(c *gin.Context) {
	var query struct {
		VesselType string `form:"vessel_type"`
		FuelType   string `form:"fuel_type"`
		Year       int    `form:"year"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	routes, err := s.routeSvc.List(c.Request.Context(), routedomain.ListRouteRequest{
		VesselType: query.VesselType,
		FuelType:   query.FuelType,
		Year:       query.Year,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routes": routes})
}

func (s *Server) CreateRoute(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	created, err := s.routeSvc.Create(c.Request.Context(), routedomain.CreateRouteRequest{
		RouteID:         req.RouteID,
		VesselType:      req.VesselType,
		FuelType:        req.FuelType,
		Year:            req.Year,
		GHGIntensity:    req.GHGIntensity,
		FuelConsumption: req.FuelConsumption,
		Distance:        req.Distance,
		TotalEmissions:  req.TotalEmissions,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route": created})
}

func (s *Server) SetBaseline(c *gin.Context) {
	routeID := strings.TrimSpace(c.Param("id"))

	updated, err := s.routeSvc.SetBaseline(c.Request.Context(), routedomain.SetBaselineRequest{
		RouteID: routeID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"route": updated})
}

func (s *Server) GetComparison(c *gin.Context) {
	resp, err := s.routeSvc.Comparison(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
