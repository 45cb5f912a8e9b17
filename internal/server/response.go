package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	messageSuccess  = "Success"
	messageNotFound = "no such record"
)

type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Status: http.StatusOK, Message: messageSuccess, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, envelope{Status: http.StatusCreated, Message: messageSuccess, Data: data})
}

// respondNotFound reports a missing record as a successful exchange whose
// body carries the 404.
func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusOK, envelope{Status: http.StatusNotFound, Message: messageNotFound, Data: nil})
}
