package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nstuweb/campus-backend/internal/handlers"
)

type RouterConfig struct {
	ProfileHandler   *handlers.ProfileHandler
	MaterialHandler  *handlers.MaterialHandler
	RoomHandler      *handlers.RoomHandler
	LectureHandler   *handlers.LectureHandler
	AreaHandler      *handlers.AreaHandler
	IdeaHandler      *handlers.IdeaHandler
	ReferenceHandler *handlers.ReferenceHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/faculties", cfg.ReferenceHandler.Faculties)

	// Queries
	router.GET("/profiles", cfg.ProfileHandler.List)
	router.GET("/profiles/:id", cfg.ProfileHandler.Get)
	router.POST("/get-profile", cfg.ProfileHandler.GetByName)
	router.GET("/materials", cfg.MaterialHandler.List)
	router.GET("/materials/:id", cfg.MaterialHandler.Get)
	router.GET("/rooms", cfg.RoomHandler.List)
	router.GET("/rooms/:id", cfg.RoomHandler.Get)
	router.GET("/lectures", cfg.LectureHandler.List)
	router.GET("/lectures/:id", cfg.LectureHandler.Get)
	router.GET("/areas", cfg.AreaHandler.List)
	router.GET("/areas/:id", cfg.AreaHandler.Get)
	router.GET("/ideas", cfg.IdeaHandler.List)
	router.GET("/ideas/:id", cfg.IdeaHandler.Get)

	// Profile mutations
	router.POST("/register-profile", cfg.ProfileHandler.Register)
	router.POST("/login-profile", cfg.ProfileHandler.Login)
	router.POST("/update-profile-personal-info", cfg.ProfileHandler.UpdatePersonalInfo)
	router.POST("/update-profile-geo-info", cfg.ProfileHandler.UpdateGeoInfo)
	router.POST("/update-profile-password", cfg.ProfileHandler.UpdatePassword)
	router.POST("/manage-profile-achievement", cfg.ProfileHandler.ManageAchievement)
	router.POST("/manage-profile-project", cfg.ProfileHandler.ManageProject)

	// Material mutations
	router.POST("/create-material", cfg.MaterialHandler.Create)
	router.POST("/add-material-resource", cfg.MaterialHandler.AddResource)
	router.POST("/update-material-rating", cfg.MaterialHandler.UpdateRating)
	router.POST("/manage-material-conspect", cfg.MaterialHandler.ManageConspect)

	// Room mutations
	router.POST("/create-room", cfg.RoomHandler.Create)
	router.POST("/manage-room-status", cfg.RoomHandler.ManageStatus)
	router.POST("/update-room-information", cfg.RoomHandler.UpdateInformation)
	router.POST("/manage-room-task", cfg.RoomHandler.ManageTask)

	// Lecture mutations
	router.POST("/create-lecture", cfg.LectureHandler.Create)
	router.POST("/manage-lecture-question", cfg.LectureHandler.ManageQuestion)
	router.POST("/update-lecture-information", cfg.LectureHandler.UpdateInformation)
	router.POST("/manage-lecture-detail", cfg.LectureHandler.ManageDetail)

	// Area mutations
	router.POST("/create-area", cfg.AreaHandler.Create)
	router.POST("/manage-area-location", cfg.AreaHandler.ManageLocation)
	router.POST("/update-area-faculty", cfg.AreaHandler.UpdateFaculty)
	router.POST("/offer-area-fact", cfg.AreaHandler.OfferFact)

	// Idea mutations
	router.POST("/create-idea", cfg.IdeaHandler.Create)
	router.POST("/manage-idea-thought", cfg.IdeaHandler.ManageThought)
	router.POST("/update-idea-information", cfg.IdeaHandler.UpdateInformation)
	router.POST("/publish-idea-quote", cfg.IdeaHandler.PublishQuote)

	return router
}
