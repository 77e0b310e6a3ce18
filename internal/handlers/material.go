package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
)

type MaterialHandler struct {
	materialService services.MaterialService
}

func NewMaterialHandler(materialService services.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

type createMaterialRequest struct {
	Name     string   `json:"name" binding:"required"`
	ID       string   `json:"id" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Category string   `json:"category"`
	Course   float64  `json:"course"`
	Subjects []string `json:"subjects"`
	Year     float64  `json:"year"`
	Rating   float64  `json:"rating"`
}

func (mh *MaterialHandler) Create(c *gin.Context) {
	var req createMaterialRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := mh.materialService.Create(c.Request.Context(), services.CreateMaterialInput{
		Name:      req.Name,
		ProfileID: req.ID,
		Title:     req.Title,
		Category:  req.Category,
		Course:    req.Course,
		Subjects:  req.Subjects,
		Year:      req.Year,
		Rating:    req.Rating,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (mh *MaterialHandler) Get(c *gin.Context) {
	material, err := mh.materialService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, material)
}

func (mh *MaterialHandler) List(c *gin.Context) {
	materials, err := mh.materialService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, materials)
}

type addResourceRequest struct {
	Name   string `json:"name" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Format string `json:"format"`
	URL    string `json:"url"`
	DateUp string `json:"dateUp"`
}

func (mh *MaterialHandler) AddResource(c *gin.Context) {
	var req addResourceRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := mh.materialService.AddResource(c.Request.Context(), req.Name, req.ID, services.ResourceInput{
		Title:  req.Title,
		Format: req.Format,
		URL:    req.URL,
		DateUp: req.DateUp,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateRatingRequest struct {
	Name   string  `json:"name" binding:"required"`
	ID     string  `json:"id" binding:"required"`
	Rating float64 `json:"rating"`
}

func (mh *MaterialHandler) UpdateRating(c *gin.Context) {
	var req updateRatingRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := mh.materialService.UpdateRating(c.Request.Context(), req.Name, req.ID, req.Rating)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type manageConspectRequest struct {
	Name     string `json:"name" binding:"required"`
	ID       string `json:"id" binding:"required"`
	Option   string `json:"option" binding:"required"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Semester string `json:"semester"`
	Image    string `json:"image"`
	Likes    string `json:"likes"`
	CollID   string `json:"collId"`
}

func (mh *MaterialHandler) ManageConspect(c *gin.Context) {
	var req manageConspectRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := mh.materialService.ManageConspect(c.Request.Context(), req.Name, req.ID, req.Option, services.ConspectInput{
		Text:     req.Text,
		Category: req.Category,
		Semester: req.Semester,
		Image:    req.Image,
		Likes:    req.Likes,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
