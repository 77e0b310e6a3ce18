package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/reference"
)

// ReferenceHandler serves static lookup data loaded once at startup.
type ReferenceHandler struct {
	data *reference.Data
}

func NewReferenceHandler(data *reference.Data) *ReferenceHandler {
	return &ReferenceHandler{data: data}
}

func (rh *ReferenceHandler) Faculties(c *gin.Context) {
	RespondOK(c, rh.data.Faculties)
}
