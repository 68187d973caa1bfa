// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"conference-admin/internal/handler"
	"conference-admin/internal/handler/conferences"
	"conference-admin/internal/handler/users"
	"conference-admin/internal/middleware"
	"conference-admin/internal/model"
)

// Deps 為註冊路由所需的依賴
type Deps struct {
	DB          handler.Pinger
	JWTSecret   string
	Conferences conferences.Service
	Users       users.Service
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/ping", handler.PingHandler(d.DB))

	auth := middleware.RequireAuth(d.JWTSecret)
	adminOnly := middleware.RequireRole(model.RoleAdministrator)
	committee := middleware.RequireRole(model.RoleProgramCommittee, model.RoleAdministrator)

	// 管理員專屬；角色不符時在觸及資料庫前回傳 403
	admin := api.Group("/admin")
	admin.POST("/conferences", conferences.CreateConferenceHandler(d.Conferences), auth, adminOnly)
	admin.PUT("/conferences", conferences.UpdateConferenceHandler(d.Conferences), auth, adminOnly)
	admin.DELETE("/conferences", conferences.DeleteConferenceHandler(d.Conferences), auth, adminOnly)

	admin.POST("/users", users.CreateUsersHandler(d.Users), auth, adminOnly)
	admin.PUT("/users", users.UpdateUsersHandler(d.Users), auth, adminOnly)
	admin.DELETE("/users", users.DeleteUsersHandler(d.Users), auth, adminOnly)
	admin.GET("/users", users.ListUsersHandler(d.Users), auth, committee)
}
