package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	compliancedomain "github.com/marinex/fueleu/internal/compliance/domain"
)

type balanceQuery struct {
	ShipID string `form:"ship_id"`
	Year   int    `form:"year"`
}

func (s *Server) GetComplianceBalance(c *gin.Context) {
	var query balanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.complianceSvc.CalculateBalance(c.Request.Context(), compliancedomain.BalanceRequest{
		ShipID: query.ShipID,
		Year:   query.Year,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetAdjustedComplianceBalance(c *gin.Context) {
	var query balanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.complianceSvc.AdjustedBalance(c.Request.Context(), compliancedomain.BalanceRequest{
		ShipID: query.ShipID,
		Year:   query.Year,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListShips(c *gin.Context) {
	ships, err := s.complianceSvc.ListShips(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ships": ships})
}
