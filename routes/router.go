package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/controllers"
	"github.com/Bayu-x3/Washify-Backend/middlewares"
	"github.com/Bayu-x3/Washify-Backend/services"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func RegisterRoutes(r *gin.Engine, maker *utils.TokenMaker) {
	auth := middlewares.AuthMiddleware(maker)
	authCtl := controllers.NewAuthController(services.NewAuthService(maker))

	api := r.Group("/api")

	api.POST("/register", authCtl.Register)
	api.POST("/login", authCtl.Login)
	api.POST("/logout", authCtl.Logout)
	api.GET("/me", auth, authCtl.Me)

	// Outlets: list open to every role, everything else admin only
	outlets := api.Group("/outlets")
	outlets.Use(auth)
	{
		outlets.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetOutlets)
		outlets.GET("/:id", middlewares.RoleMiddleware("admin"), controllers.GetOutletByID)
		outlets.POST("/", middlewares.RoleMiddleware("admin"), controllers.CreateOutlet)
		outlets.PUT("/:id", middlewares.RoleMiddleware("admin"), controllers.UpdateOutlet)
		outlets.DELETE("/:id", middlewares.RoleMiddleware("admin"), controllers.DeleteOutlet)
	}

	// Users (admin only)
	users := api.Group("/users")
	users.Use(auth, middlewares.RoleMiddleware("admin"))
	{
		users.GET("/", controllers.GetUsers)
		users.GET("/:id", controllers.GetUserByID)
		users.POST("/", controllers.CreateUser)
		users.PUT("/:id", controllers.UpdateUser)
		users.DELETE("/:id", controllers.DeleteUser)
	}

	pakets := api.Group("/pakets")
	pakets.Use(auth)
	{
		pakets.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetPakets)
		pakets.GET("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.GetPaketByID)
		pakets.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreatePaket)
		pakets.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdatePaket)
		pakets.DELETE("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.DeletePaket)
	}

	members := api.Group("/members")
	members.Use(auth)
	{
		members.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetMembers)
		members.GET("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.GetMemberByID)
		members.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateMember)
		members.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateMember)
		members.DELETE("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.DeleteMember)
	}

	transaksi := api.Group("/transaksi")
	transaksi.Use(auth)
	{
		transaksi.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetTransaksi)
		transaksi.GET("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.GetTransaksiByID)
		transaksi.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateTransaksi)
		transaksi.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateTransaksi)
		transaksi.DELETE("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.DeleteTransaksi)
	}

	details := api.Group("/details")
	details.Use(auth)
	{
		details.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetDetailTransaksi)
		details.GET("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.GetDetailTransaksiByID)
		details.POST("/", middlewares.RoleMiddleware("admin", "cashier"), controllers.CreateDetailTransaksi)
		details.PUT("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.UpdateDetailTransaksi)
		details.DELETE("/:id", middlewares.RoleMiddleware("admin", "cashier"), controllers.DeleteDetailTransaksi)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(auth)
	{
		dashboard.GET("/", middlewares.RoleMiddleware("admin", "cashier", "owner"), controllers.GetDashboard)
	}
}
