package server

import (
	"errors"

	"github.com/gin-gonic/gin"
	crudeimportdomain "github.com/smallbiznis/oilimports/internal/crudeimport/domain"
)

type importRecordRequest struct {
	Year                *int    `json:"year"`
	Month               *int    `json:"month"`
	OriginName          *string `json:"originName"`
	OriginTypeName      *string `json:"originTypeName"`
	DestinationName     *string `json:"destinationName"`
	DestinationTypeName *string `json:"destinationTypeName"`
	GradeName           *string `json:"gradeName"`
	Quantity            *int    `json:"quantity"`
}

func (r importRecordRequest) toCreate() crudeimportdomain.CreateRequest {
	return crudeimportdomain.CreateRequest{
		Year:                r.Year,
		Month:               r.Month,
		OriginName:          r.OriginName,
		OriginTypeName:      r.OriginTypeName,
		DestinationName:     r.DestinationName,
		DestinationTypeName: r.DestinationTypeName,
		GradeName:           r.GradeName,
		Quantity:            r.Quantity,
	}
}

func (r importRecordRequest) toPatch() crudeimportdomain.PatchRequest {
	return crudeimportdomain.PatchRequest{
		Year:                r.Year,
		Month:               r.Month,
		OriginName:          r.OriginName,
		OriginTypeName:      r.OriginTypeName,
		DestinationName:     r.DestinationName,
		DestinationTypeName: r.DestinationTypeName,
		GradeName:           r.GradeName,
		Quantity:            r.Quantity,
	}
}

func (s *Server) CreateCrudeOilImport(c *gin.Context) {
	var req importRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.importSvc.Create(c.Request.Context(), req.toCreate())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp)
}

func (s *Server) CreateCrudeOilImportsBulk(c *gin.Context) {
	var req []importRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	items := make([]crudeimportdomain.CreateRequest, 0, len(req))
	for _, item := range req {
		items = append(items, item.toCreate())
	}

	resp, err := s.importSvc.CreateBatch(c.Request.Context(), items)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondCreated(c, resp)
}

func (s *Server) ListCrudeOilImports(c *gin.Context) {
	skip, err := parseOptionalInt(c.Query("skip"))
	if err != nil {
		AbortWithError(c, crudeimportdomain.ErrInvalidSkip)
		return
	}
	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil {
		AbortWithError(c, crudeimportdomain.ErrInvalidLimit)
		return
	}
	filter, err := parseImportFilter(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.importSvc.List(c.Request.Context(), crudeimportdomain.ListRequest{
		Filter: filter,
		Skip:   skip,
		Limit:  limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondOK(c, resp)
}

func (s *Server) GetCrudeOilImport(c *gin.Context) {
	resp, err := s.importSvc.Get(c.Request.Context(), c.Param("uuid"))
	s.respondRecord(c, resp, err)
}

func (s *Server) PatchCrudeOilImport(c *gin.Context) {
	var req importRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.importSvc.Patch(c.Request.Context(), c.Param("uuid"), req.toPatch())
	s.respondRecord(c, resp, err)
}

func (s *Server) ReplaceCrudeOilImport(c *gin.Context) {
	var req importRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.importSvc.Replace(c.Request.Context(), c.Param("uuid"), req.toCreate())
	s.respondRecord(c, resp, err)
}

func (s *Server) DeleteCrudeOilImport(c *gin.Context) {
	resp, err := s.importSvc.Delete(c.Request.Context(), c.Param("uuid"))
	s.respondRecord(c, resp, err)
}

func (s *Server) respondRecord(c *gin.Context, resp *crudeimportdomain.Response, err error) {
	switch {
	case errors.Is(err, crudeimportdomain.ErrNotFound):
		respondNotFound(c)
	case err != nil:
		AbortWithError(c, err)
	default:
		respondOK(c, resp)
	}
}
