package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	poolingdomain "github.com/marinex/fueleu/internal/pooling/domain"
)

type createPoolRequest struct {
	Members []string `json:"members"`
	Year    int      `json:"year"`
}

func (s *Server) ListPools(c *gin.Context) {
	pools, err := s.poolingSvc.ListPools(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

func (s *Server) GetPool(c *gin.Context) {
	poolID := strings.TrimSpace(c.Param("id"))

	pool, err := s.poolingSvc.GetPool(c.Request.Context(), poolingdomain.GetPoolRequest{
		PoolID: poolID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"pool": pool})
}

func (s *Server) CreatePool(c *gin.Context) {
	var req createPoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	pool, err := s.poolingSvc.CreatePool(c.Request.Context(), poolingdomain.CreatePoolRequest{
		ShipIDs: req.Members,
		Year:    req.Year,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pool": pool})
}
