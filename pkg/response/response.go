package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the entity (or list) as the raw JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with the created entity as the raw JSON body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message sends 200 with a {"message": ...} confirmation body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MsgResp{Message: msg})
}

// Error sends the given status with an {"error": ...} body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrResp{Error: msg})
}
