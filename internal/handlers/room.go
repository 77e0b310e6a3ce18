package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/services"
)

type RoomHandler struct {
	roomService services.RoomService
}

func NewRoomHandler(roomService services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

type createRoomRequest struct {
	Name      string   `json:"name" binding:"required"`
	ID        string   `json:"id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Faculty   string   `json:"faculty"`
	Dormitory string   `json:"dormitory" binding:"required"`
	Num       float64  `json:"num"`
	Weekday   string   `json:"weekday"`
	Time      string   `json:"time"`
	Cords     cordBody `json:"cords"`
	Role      string   `json:"role" binding:"required"`
}

func (rh *RoomHandler) Create(c *gin.Context) {
	var req createRoomRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := rh.roomService.Create(c.Request.Context(), services.CreateRoomInput{
		Name:      req.Name,
		ProfileID: req.ID,
		Title:     req.Title,
		Faculty:   req.Faculty,
		Dormitory: req.Dormitory,
		Num:       req.Num,
		Weekday:   req.Weekday,
		Time:      req.Time,
		Cords:     req.Cords.toCord(),
		Role:      req.Role,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

func (rh *RoomHandler) Get(c *gin.Context) {
	room, err := rh.roomService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, room)
}

func (rh *RoomHandler) List(c *gin.Context) {
	rooms, err := rh.roomService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, rooms)
}

type manageStatusRequest struct {
	Name   string `json:"name" binding:"required"`
	ID     string `json:"id" binding:"required"`
	Option string `json:"option" binding:"required"`
	Role   string `json:"role"`
}

func (rh *RoomHandler) ManageStatus(c *gin.Context) {
	var req manageStatusRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := rh.roomService.ManageStatus(c.Request.Context(), req.Name, req.ID, req.Option, req.Role)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type updateRoomInformationRequest struct {
	Name    string `json:"name" binding:"required"`
	ID      string `json:"id" binding:"required"`
	Weekday string `json:"weekday" binding:"required"`
	Time    string `json:"time" binding:"required"`
}

func (rh *RoomHandler) UpdateInformation(c *gin.Context) {
	var req updateRoomInformationRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := rh.roomService.UpdateInformation(c.Request.Context(), req.Name, req.ID, req.Weekday, req.Time)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type manageTaskRequest struct {
	Name     string `json:"name" binding:"required"`
	ID       string `json:"id" binding:"required"`
	Option   string `json:"option" binding:"required"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Deadline string `json:"deadline"`
	Image    string `json:"image"`
	CollID   string `json:"collId"`
}

func (rh *RoomHandler) ManageTask(c *gin.Context) {
	var req manageTaskRequest
	if !BindJSON(c, &req) {
		return
	}
	result, err := rh.roomService.ManageTask(c.Request.Context(), req.Name, req.ID, req.Option, services.TaskInput{
		Text:     req.Text,
		Category: req.Category,
		Deadline: req.Deadline,
		Image:    req.Image,
	}, req.CollID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
