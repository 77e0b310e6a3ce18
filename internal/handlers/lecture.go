package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
)

type LectureHandler struct {
	lectureService services.LectureService
}

func NewLectureHandler(lectureService services.LectureService) *LectureHandler {
	return &LectureHandler{lectureService: lectureService}
}

type createLectureRequest struct {
	Name     string `json:"name" binding:"required"`
	ID       string `json:"id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
	Time     string `json:"time"`
	DateUp   string `json:"dateUp"`
	Stream   string `json:"stream"`
	Card     string `json:"card"`
}

func (lh *LectureHandler) Create(c *gin.Context) {
	var req createLectureRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := lh.lectureService.Create(c.Request.Context(), services.CreateLectureInput{
		Name:      req.Name,
		ProfileID: req.ID,
		Title:     req.Title,
		Category:  req.Category,
		Status:    req.Status,
		Duration:  req.Duration,
		URL:       req.URL,
		Time:      req.Time,
		DateUp:    req.DateUp,
		Stream:    req.Stream,
		Card:      req.Card,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (lh *LectureHandler) Get(c *gin.Context) {
	lecture, err := lh.lectureService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lecture)
}

func (lh *LectureHandler) List(c *gin.Context) {
	lectures, err := lh.lectureService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lectures)
}

type manageQuestionRequest struct {
	Name   string `json:"name" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Option string `json:"option" binding:"required"`
	Text   string `json:"text"`
	Level  string `json:"level"`
	Reply  string `json:"reply"`
	DateUp string `json:"dateUp"`
	CollID string `json:"collId"`
}

func (lh *LectureHandler) ManageQuestion(c *gin.Context) {
	var req manageQuestionRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := lh.lectureService.ManageQuestion(c.Request.Context(), req.Name, req.ID, req.Option, services.QuestionInput{
		Text:   req.Text,
		Level:  req.Level,
		Reply:  req.Reply,
		DateUp: req.DateUp,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateLectureInformationRequest struct {
	Name   string `json:"name" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Stream string `json:"stream" binding:"required"`
	Card   string `json:"card" binding:"required"`
}

func (lh *LectureHandler) UpdateInformation(c *gin.Context) {
	var req updateLectureInformationRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := lh.lectureService.UpdateInformation(c.Request.Context(), req.Name, req.ID, req.Stream, req.Card)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type manageDetailRequest struct {
	Name     string  `json:"name" binding:"required"`
	ID       string  `json:"id" binding:"required"`
	Option   string  `json:"option" binding:"required"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Rating   float64 `json:"rating"`
	CollID   string  `json:"collId"`
}

func (lh *LectureHandler) ManageDetail(c *gin.Context) {
	var req manageDetailRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := lh.lectureService.ManageDetail(c.Request.Context(), req.Name, req.ID, req.Option, services.DetailInput{
		Title:    req.Title,
		Category: req.Category,
		Image:    req.Image,
		Rating:   req.Rating,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
