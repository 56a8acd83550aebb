package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mochwana/aesi-web/internal/handler"
	"github.com/mochwana/aesi-web/internal/middleware"
	"github.com/mochwana/aesi-web/internal/service"
	"github.com/mochwana/aesi-web/pkg/config"
	"github.com/mochwana/aesi-web/pkg/logger"
	reqidmiddleware "github.com/mochwana/aesi-web/pkg/middleware/requestid"
)

type routeHandlers struct {
	public        *handler.PublicHandler
	auth          *handler.AuthHandler
	admin         *handler.AdminHandler
	announcements *handler.AnnouncementHandler
	staff         *handler.StaffHandler
	programs      *handler.ProgramHandler
	images        *handler.ImageHandler
	authService   *service.AuthService
}

func registerRoutes(r *gin.Engine, cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h routeHandlers) {
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metrics))

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg.Env == config.EnvProduction,
		MaxAge:   int(cfg.Session.TokenExpiry.Seconds()),
	})
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))

	r.SetFuncMap(templateFuncs())
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", cfg.Assets.StaticDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/", h.public.Home)
	r.GET("/about", h.public.About)
	r.GET("/programs", h.public.Programs)
	r.GET("/staff", h.public.Staff)
	r.GET("/announcements", h.public.Announcements)
	r.GET("/contact", h.public.Contact)

	r.GET("/admin/login", h.auth.LoginForm)
	r.POST("/admin/login", h.auth.Login)
	r.GET("/admin/logout", h.auth.Logout)

	admin := r.Group("/admin", middleware.AdminRequired(h.authService))
	{
		admin.GET("", h.admin.Dashboard)

		admin.GET("/announcements", h.announcements.List)
		admin.GET("/announcements/add", h.announcements.AddForm)
		admin.POST("/announcements/add", h.announcements.Add)
		admin.GET("/announcements/edit/:id", h.announcements.EditForm)
		admin.POST("/announcements/edit/:id", h.announcements.Edit)
		admin.POST("/announcements/delete/:id", h.announcements.Delete)

		admin.GET("/staff", h.staff.List)
		admin.GET("/staff/add", h.staff.AddForm)
		admin.POST("/staff/add", h.staff.Add)
		admin.GET("/staff/edit/:id", h.staff.EditForm)
		admin.POST("/staff/edit/:id", h.staff.Edit)
		admin.POST("/staff/delete/:id", h.staff.Delete)
		admin.GET("/staff/export", h.staff.Export)

		admin.GET("/programs", h.programs.List)
		admin.GET("/programs/edit/:id", h.programs.EditImageForm)
		admin.POST("/programs/edit/:id", h.programs.EditImage)

		admin.GET("/images", h.images.List)
		admin.POST("/images/upload", h.images.Upload)
		admin.POST("/images/delete/:id", h.images.Delete)

		for page, category := range handler.PageCategories {
			admin.GET("/images/"+page, h.images.PageList(page, category))
			admin.POST("/images/"+page+"/upload", h.images.PageUpload(page, category))
			admin.POST("/images/"+page+"/edit/:id", h.images.PageReplace(page, category))
			admin.POST("/images/"+page+"/delete/:id", h.images.PageDelete(page, category))
		}
	}
}
