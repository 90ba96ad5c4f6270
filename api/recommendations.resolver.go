package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) recommendations(c *gin.Context) {
	ctx := context.Background()
	investorID := c.Param("investorId")

	recommendation, err := m.RecommendationService.GetRecommendations(ctx, investorID)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, recommendation)
}
