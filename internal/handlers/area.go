package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
)

type AreaHandler struct {
	areaService services.AreaService
}

func NewAreaHandler(areaService services.AreaService) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

type createAreaRequest struct {
	Name     string   `json:"name" binding:"required"`
	ID       string   `json:"id" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Century  string   `json:"century"`
	Region   string   `json:"region"`
	Cords    cordBody `json:"cords"`
	Faculty  string   `json:"faculty"`
}

func (ah *AreaHandler) Create(c *gin.Context) {
	var req createAreaRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ah.areaService.Create(c.Request.Context(), services.CreateAreaInput{
		Name:      req.Name,
		ProfileID: req.ID,
		Title:     req.Title,
		Category:  req.Category,
		Century:   req.Century,
		Region:    req.Region,
		Cords:     req.Cords.toCord(),
		Faculty:   req.Faculty,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ah *AreaHandler) Get(c *gin.Context) {
	area, err := ah.areaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, area)
}

func (ah *AreaHandler) List(c *gin.Context) {
	areas, err := ah.areaService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, areas)
}

type manageLocationRequest struct {
	Name     string   `json:"name" binding:"required"`
	ID       string   `json:"id" binding:"required"`
	Option   string   `json:"option" binding:"required"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Term     string   `json:"term"`
	Cords    cordBody `json:"cords"`
	Stage    string   `json:"stage"`
	Image    string   `json:"image"`
	Likes    string   `json:"likes"`
	CollID   string   `json:"collId"`
}

func (ah *AreaHandler) ManageLocation(c *gin.Context) {
	var req manageLocationRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ah.areaService.ManageLocation(c.Request.Context(), req.Name, req.ID, req.Option, services.LocationInput{
		Title:    req.Title,
		Category: req.Category,
		Term:     req.Term,
		Cords:    req.Cords.toCord(),
		Stage:    req.Stage,
		Image:    req.Image,
		Likes:    req.Likes,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateAreaFacultyRequest struct {
	Name    string `json:"name" binding:"required"`
	ID      string `json:"id" binding:"required"`
	Faculty string `json:"faculty" binding:"required"`
}

func (ah *AreaHandler) UpdateFaculty(c *gin.Context) {
	var req updateAreaFacultyRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ah.areaService.UpdateFaculty(c.Request.Context(), req.Name, req.ID, req.Faculty)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type offerFactRequest struct {
	Name    string `json:"name" binding:"required"`
	ID      string `json:"id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Level   string `json:"level"`
	IsTruth bool   `json:"isTruth"`
	DateUp  string `json:"dateUp"`
}

func (ah *AreaHandler) OfferFact(c *gin.Context) {
	var req offerFactRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ah.areaService.OfferFact(c.Request.Context(), req.Name, req.ID, services.FactInput{
		Text:    req.Text,
		Level:   req.Level,
		IsTruth: req.IsTruth,
		DateUp:  req.DateUp,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
