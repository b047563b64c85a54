package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	bankingdomain "github.com/marinex/fueleu/internal/banking/domain"
)

type transferRequest struct {
	ShipID string  `json:"ship_id"`
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
}

func (s *Server) GetBankingRecords(c *gin.Context) {
	var query struct {
		ShipID string `form:"ship_id"`
		Year   int    `form:"year"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.bankingSvc.Records(c.Request.Context(), bankingdomain.RecordsRequest{
		ShipID: query.ShipID,
		Year:   query.Year,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) BankSurplus(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.bankingSvc.Bank(c.Request.Context(), bankingdomain.TransferRequest{
		ShipID: req.ShipID,
		Year:   req.Year,
		Amount: req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) ApplySurplus(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	result, err := s.bankingSvc.Apply(c.Request.Context(), bankingdomain.TransferRequest{
		ShipID: req.ShipID,
		Year:   req.Year,
		Amount: req.Amount,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
