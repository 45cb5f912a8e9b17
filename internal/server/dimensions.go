package server

import (
	"github.com/gin-gonic/gin"
	dimensiondomain "github.com/smallbiznis/oilimports/internal/dimension/domain"
)

func (s *Server) ListDimensions(c *gin.Context) {
	kind, err := dimensiondomain.ParseKind(c.Param("kind"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.dimensionSvc.List(c.Request.Context(), kind)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}
