package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/cafe-orders/docs"
	"github.com/MikeMC777/cafe-orders/internal/health"
	"github.com/MikeMC777/cafe-orders/internal/httpx"
	"github.com/MikeMC777/cafe-orders/internal/menu"
	"github.com/MikeMC777/cafe-orders/internal/order"
	"github.com/MikeMC777/cafe-orders/internal/user"
)

// app holds everything the handlers need.
type app struct {
	users  *user.Service
	menu   *menu.Service
	orders *order.Service
	db     health.Pinger
	cookie httpx.CookieOptions
	log    *zap.Logger
}

func newRouter(a app) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(a.log), httpx.Session(a.users))

	r.GET("/health", health.Handler(a.db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	auth.POST("/login", loginHandler(a.users, a.cookie))
	auth.POST("/signup", signupHandler(a.users, a.cookie))
	auth.POST("/logout", logoutHandler(a.cookie))
	auth.GET("/me", meHandler(a.users))

	r.GET("/menu", listMenuHandler(a.menu))
	r.POST("/menu", createMenuItemHandler(a.menu))
	r.PATCH("/menu/:id", updateMenuItemHandler(a.menu))
	r.DELETE("/menu/:id", deleteMenuItemHandler(a.menu))

	r.GET("/orders", listOrdersHandler(a.orders))
	r.POST("/orders", createOrderHandler(a.orders))
	r.GET("/orders/:id", getOrderHandler(a.orders))
	r.PATCH("/orders/:id", advanceStatusHandler(a.orders))
	r.GET("/orders/:id/qr", orderQRHandler(a.orders))

	staff := r.Group("/staff")
	staff.GET("/orders", staffOrdersHandler(a.orders))
	staff.POST("/scan", scanHandler(a.orders))

	return r
}
