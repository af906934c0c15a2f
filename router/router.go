package router

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kwencafe/website/admin"
	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/controllers"
	"github.com/kwencafe/website/middlewares"
	"github.com/kwencafe/website/session"
	"github.com/kwencafe/website/templates"
	"github.com/kwencafe/website/utils"
)

func SetupRouter(api *apiclient.Client, console *admin.Console, sess *session.Manager, cookieSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	funcs := template.FuncMap{
		"image": api.ResolveImage,
		"price": utils.FormatPrice,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templates.FS, "*.html"))
	r.SetHTMLTemplate(tmpl)

	r.Static("/static", "./static")

	pageCtrl := controllers.NewPageController(api)
	adminCtrl := controllers.NewAdminController(console, cookieSecret)

	r.GET("/ping", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "pong", nil)
	})
	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, errors.New("page not found"))
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/", pageCtrl.Home)
	r.GET("/menu", pageCtrl.Menu)
	r.GET("/about", pageCtrl.About)
	r.GET("/contact", pageCtrl.ContactPage)
	r.POST("/contact", pageCtrl.ContactSubmit)
	r.GET("/reservations", pageCtrl.ReservationsPage)
	r.POST("/reservations", pageCtrl.ReservationSubmit)

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	r.GET("/admin/login", adminCtrl.LoginPage)
	r.POST("/admin/login", adminCtrl.Login)

	auth := r.Group("/admin")
	auth.Use(middlewares.AdminAuth(sess, cookieSecret))
	{
		auth.GET("", adminCtrl.Dashboard)
		auth.POST("/logout", adminCtrl.Logout)

		auth.GET("/categories/new", adminCtrl.BeginAddCategory)
		auth.GET("/categories/cancel", adminCtrl.CancelCategory)
		auth.GET("/categories/:cat_id/edit", adminCtrl.BeginEditCategory)
		auth.POST("/categories/save", adminCtrl.SaveCategory)
		auth.POST("/categories/:cat_id/delete", adminCtrl.DeleteCategory)

		auth.GET("/items/new", adminCtrl.BeginAddItem)
		auth.GET("/items/cancel", adminCtrl.CancelItem)
		auth.GET("/items/:item_id/edit", adminCtrl.BeginEditItem)
		auth.POST("/items/save", adminCtrl.SaveItem)
		auth.POST("/items/:item_id/delete", adminCtrl.DeleteItem)
		auth.POST("/items/image", adminCtrl.UploadItemImage)

		auth.GET("/banners/new", adminCtrl.BeginAddBanner)
		auth.GET("/banners/cancel", adminCtrl.CancelBanner)
		auth.GET("/banners/:banner_id/edit", adminCtrl.BeginEditBanner)
		auth.POST("/banners/save", adminCtrl.SaveBanner)
		auth.POST("/banners/:banner_id/delete", adminCtrl.DeleteBanner)
		auth.POST("/banners/image", adminCtrl.UploadBannerImage)
	}

	return r
}
