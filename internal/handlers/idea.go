package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
)

type IdeaHandler struct {
	ideaService services.IdeaService
}

func NewIdeaHandler(ideaService services.IdeaService) *IdeaHandler {
	return &IdeaHandler{ideaService: ideaService}
}

type createIdeaRequest struct {
	Name     string   `json:"name" binding:"required"`
	ID       string   `json:"id" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Concept  string   `json:"concept"`
	Category string   `json:"category"`
	URL      string   `json:"url"`
	Roles    []string `json:"roles"`
	Stage    string   `json:"stage"`
	Need     float64  `json:"need"`
}

func (ih *IdeaHandler) Create(c *gin.Context) {
	var req createIdeaRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ih.ideaService.Create(c.Request.Context(), services.CreateIdeaInput{
		Name:      req.Name,
		ProfileID: req.ID,
		Title:     req.Title,
		Concept:   req.Concept,
		Category:  req.Category,
		URL:       req.URL,
		Roles:     req.Roles,
		Stage:     req.Stage,
		Need:      req.Need,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (ih *IdeaHandler) Get(c *gin.Context) {
	idea, err := ih.ideaService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, idea)
}

func (ih *IdeaHandler) List(c *gin.Context) {
	ideas, err := ih.ideaService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, ideas)
}

type manageThoughtRequest struct {
	Name     string  `json:"name" binding:"required"`
	ID       string  `json:"id" binding:"required"`
	Option   string  `json:"option" binding:"required"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Rating   float64 `json:"rating"`
	Image    string  `json:"image"`
	CollID   string  `json:"collId"`
}

func (ih *IdeaHandler) ManageThought(c *gin.Context) {
	var req manageThoughtRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ih.ideaService.ManageThought(c.Request.Context(), req.Name, req.ID, req.Option, services.ThoughtInput{
		Title:    req.Title,
		Category: req.Category,
		Rating:   req.Rating,
		Image:    req.Image,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateIdeaInformationRequest struct {
	Name  string  `json:"name" binding:"required"`
	ID    string  `json:"id" binding:"required"`
	Stage string  `json:"stage" binding:"required"`
	Need  float64 `json:"need"`
}

func (ih *IdeaHandler) UpdateInformation(c *gin.Context) {
	var req updateIdeaInformationRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ih.ideaService.UpdateInformation(c.Request.Context(), req.Name, req.ID, req.Stage, req.Need)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type publishQuoteRequest struct {
	Name    string `json:"name" binding:"required"`
	ID      string `json:"id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Status  string `json:"status"`
	Faculty string `json:"faculty"`
	DateUp  string `json:"dateUp"`
}

func (ih *IdeaHandler) PublishQuote(c *gin.Context) {
	var req publishQuoteRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ih.ideaService.PublishQuote(c.Request.Context(), req.Name, req.ID, services.QuoteInput{
		Text:    req.Text,
		Status:  req.Status,
		Faculty: req.Faculty,
		DateUp:  req.DateUp,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
