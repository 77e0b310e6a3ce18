package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
	"github.com/nstuweb/campus-backend/internal/types"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type cordBody struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

func (b cordBody) toCord() types.Cord {
	return types.Cord{Lat: b.Lat, Long: b.Long}
}

type registerProfileRequest struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required"`
	Password  string   `json:"password" binding:"required"`
	Region    string   `json:"region"`
	Cords     cordBody `json:"cords"`
	Status    string   `json:"status"`
	Points    float64  `json:"points"`
	Image     string   `json:"image"`
	Timestamp string   `json:"timestamp"`
}

func (ph *ProfileHandler) Register(c *gin.Context) {
	var req registerProfileRequest
	if !BindJSON(c, &req) {
		return
	}
	payload, err := ph.profileService.Register(c.Request.Context(), services.RegisterProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Region:    req.Region,
		Cords:     req.Cords.toCord(),
		Status:    req.Status,
		Points:    req.Points,
		Image:     req.Image,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, payload)
}

type loginProfileRequest struct {
	Name      string `json:"name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Timestamp string `json:"timestamp"`
}

func (ph *ProfileHandler) Login(c *gin.Context) {
	var req loginProfileRequest
	if !BindJSON(c, &req) {
		return
	}
	payload, err := ph.profileService.Login(c.Request.Context(), req.Name, req.Password, req.Timestamp)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, payload)
}

func (ph *ProfileHandler) Get(c *gin.Context) {
	profile, err := ph.profileService.GetByShortID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

type getProfileByNameRequest struct {
	Name string `json:"name" binding:"required"`
}

func (ph *ProfileHandler) GetByName(c *gin.Context) {
	var req getProfileByNameRequest
	if !BindJSON(c, &req) {
		return
	}
	profile, err := ph.profileService.GetByName(c.Request.Context(), req.Name)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

func (ph *ProfileHandler) List(c *gin.Context) {
	profiles, err := ph.profileService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profiles)
}

type updatePersonalInfoRequest struct {
	ID    string `json:"id" binding:"required"`
	Image string `json:"image" binding:"required"`
}

func (ph *ProfileHandler) UpdatePersonalInfo(c *gin.Context) {
	var req updatePersonalInfoRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ph.profileService.UpdatePersonalInfo(c.Request.Context(), req.ID, req.Image)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateGeoInfoRequest struct {
	ID     string   `json:"id" binding:"required"`
	Region string   `json:"region" binding:"required"`
	Cords  cordBody `json:"cords"`
}

func (ph *ProfileHandler) UpdateGeoInfo(c *gin.Context) {
	var req updateGeoInfoRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ph.profileService.UpdateGeoInfo(c.Request.Context(), req.ID, req.Region, req.Cords.toCord())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updatePasswordRequest struct {
	ID              string `json:"id" binding:"required"`
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (ph *ProfileHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ph.profileService.UpdatePassword(c.Request.Context(), req.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type manageAchievementRequest struct {
	ID       string `json:"id" binding:"required"`
	Option   string `json:"option" binding:"required"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Image    string `json:"image"`
	DateUp   string `json:"dateUp"`
	CollID   string `json:"collId"`
}

func (ph *ProfileHandler) ManageAchievement(c *gin.Context) {
	var req manageAchievementRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ph.profileService.ManageAchievement(c.Request.Context(), req.ID, req.Option, services.AchievementInput{
		Title:    req.Title,
		Category: req.Category,
		Image:    req.Image,
		DateUp:   req.DateUp,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type manageProjectRequest struct {
	ID       string  `json:"id" binding:"required"`
	Option   string  `json:"option" binding:"required"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Progress float64 `json:"progress"`
	Image    string  `json:"image"`
	Likes    string  `json:"likes"`
	CollID   string  `json:"collId"`
}

func (ph *ProfileHandler) ManageProject(c *gin.Context) {
	var req manageProjectRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := ph.profileService.ManageProject(c.Request.Context(), req.ID, req.Option, services.ProjectInput{
		Title:    req.Title,
		Category: req.Category,
		Progress: req.Progress,
		Image:    req.Image,
		Likes:    req.Likes,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
