package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homestay-backend/controllers"
	"homestay-backend/middleware"
	"homestay-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller into the public and admin route groups.
func SetupRouter(
	sc *controllers.SiteController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
	cc *controllers.ContactController,
	ac *controllers.AuthController,
	uc *controllers.UserController,
	ec *controllers.EmployeeController,
	nc *controllers.NoteController,
	ntc *controllers.NotificationController,
	pc *controllers.PaymentController,
) *gin.Engine {
	utils.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/site", sc.GetSite)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// /available must be registered before /:id
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/quote", bc.Quote)
			bookings.GET("/:id", bc.GetBooking)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", rvc.GetReviews)
			reviews.GET("/featured", rvc.GetFeaturedReviews)
			reviews.POST("", rvc.CreateReview)
		}

		api.POST("/contact", cc.SubmitInquiry)

		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
			auth.GET("/me", ac.Me)
		}

		api.POST("/users/register", uc.Register)

		admin := api.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
		{
			admin.GET("/users", uc.GetUsers)

			admin.GET("/bookings", bc.GetBookings)
			admin.PATCH("/bookings/:id/status", bc.UpdateBookingStatus)
			admin.DELETE("/bookings/:id", bc.DeleteBooking)

			admin.POST("/rooms", rc.CreateRoom)
			admin.PATCH("/rooms/:id", rc.UpdateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.PATCH("/reviews/:id/reply", rvc.ReplyToReview)
			admin.PATCH("/reviews/:id/featured", rvc.SetReviewFeatured)

			admin.GET("/employees", ec.GetEmployees)
			admin.POST("/employees", ec.CreateEmployee)
			admin.PATCH("/employees/:id", ec.UpdateEmployee)
			admin.DELETE("/employees/:id", ec.DeleteEmployee)

			admin.GET("/notes", nc.GetNotes)
			admin.POST("/notes", nc.CreateNote)
			admin.PATCH("/notes/:id", nc.UpdateNote)
			admin.DELETE("/notes/:id", nc.DeleteNote)

			admin.GET("/notifications", ntc.GetNotifications)
			admin.GET("/notifications/unread-count", ntc.GetUnreadCount)
			admin.PATCH("/notifications/:id/read", ntc.MarkNotificationRead)

			admin.GET("/payments", pc.GetPayments)
			admin.POST("/payments", pc.CreatePayment)
			admin.GET("/payments/by-booking/:bookingId", pc.GetPaymentByBooking)
		}
	}

	return r
}
