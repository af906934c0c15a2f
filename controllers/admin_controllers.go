package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kwencafe/website/admin"
	"github.com/kwencafe/website/middlewares"
	"github.com/kwencafe/website/models"
	"github.com/kwencafe/website/utils"
)

type AdminController struct {
	Console      *admin.Console
	CookieSecret []byte
}

func NewAdminController(console *admin.Console, cookieSecret []byte) *AdminController {
	return &AdminController{Console: console, CookieSecret: cookieSecret}
}

func (ac *AdminController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Title": "Вход — Kwen Admin",
	})
}

// Login submits credentials to the API. Failure stays on the login screen
// with the message inline; success installs the browser cookie and moves to
// the console.
func (ac *AdminController) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if err := ac.Console.Login(username, password); err != nil {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Title": "Вход — Kwen Admin",
			"Error": err.Error(),
		})
		return
	}

	cookie, err := utils.GenerateSessionCookie(ac.CookieSecret)
	if err != nil {
		utils.ErrorLogger.Printf("session cookie: %v", err)
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"Title": "Вход — Kwen Admin",
			"Error": "Не удалось создать сессию",
		})
		return
	}
	c.SetCookie(middlewares.SessionCookieName, cookie, 86400, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin")
}

func (ac *AdminController) Logout(c *gin.Context) {
	ac.Console.Logout()
	c.SetCookie(middlewares.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

// Dashboard renders the whole console from the current state.
func (ac *AdminController) Dashboard(c *gin.Context) {
	ac.Console.EnsureLoaded()

	items := ac.Console.MenuItems()
	categoryNames := make(map[int]string, len(items))
	for _, item := range items {
		if _, ok := categoryNames[item.CategoryID]; !ok {
			categoryNames[item.CategoryID] = ac.Console.CategoryName(item.CategoryID)
		}
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Title":              "Админ-панель — Kwen",
		"Error":              c.Query("error"),
		"Categories":         ac.Console.Categories(),
		"Items":              items,
		"Banners":            ac.Console.Banners(),
		"Groups":             ac.Console.ReservationGroups(),
		"CategoryNames":      categoryNames,
		"EditingCategory":    ac.Console.EditingCategory(),
		"AddingCategory":     ac.Console.AddingCategory(),
		"EditingItem":        ac.Console.EditingItem(),
		"AddingItem":         ac.Console.AddingItem(),
		"PendingItemImage":   ac.Console.PendingItemImage(),
		"EditingBanner":      ac.Console.EditingBanner(),
		"AddingBanner":       ac.Console.AddingBanner(),
		"PendingBannerImage": ac.Console.PendingBannerImage(),
	})
}

func (ac *AdminController) redirectBack(c *gin.Context, err error) {
	if err != nil {
		c.Redirect(http.StatusFound, "/admin?error="+url.QueryEscape(err.Error()))
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func pathID(c *gin.Context, name string) int {
	id, _ := strconv.Atoi(c.Param(name))
	return id
}

// --- categories ---

func (ac *AdminController) BeginAddCategory(c *gin.Context) {
	ac.Console.BeginAddCategory()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) BeginEditCategory(c *gin.Context) {
	ac.Console.BeginEditCategory(pathID(c, "cat_id"))
	ac.redirectBack(c, nil)
}

func (ac *AdminController) CancelCategory(c *gin.Context) {
	ac.Console.CancelCategory()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) SaveCategory(c *gin.Context) {
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))
	input := models.CategoryInput{
		Name:        c.PostForm("name"),
		Slug:        c.PostForm("slug"),
		Description: optional(c.PostForm("description")),
		SortOrder:   sortOrder,
	}
	ac.redirectBack(c, ac.Console.SaveCategory(input))
}

func (ac *AdminController) DeleteCategory(c *gin.Context) {
	confirmed := c.PostForm("confirm") == "yes"
	ac.redirectBack(c, ac.Console.DeleteCategory(pathID(c, "cat_id"), confirmed))
}

// --- menu items ---

func (ac *AdminController) BeginAddItem(c *gin.Context) {
	ac.Console.BeginAddItem()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) BeginEditItem(c *gin.Context) {
	ac.Console.BeginEditItem(pathID(c, "item_id"))
	ac.redirectBack(c, nil)
}

func (ac *AdminController) CancelItem(c *gin.Context) {
	ac.Console.CancelItem()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) SaveItem(c *gin.Context) {
	name := c.PostForm("name")
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	categoryID, _ := strconv.Atoi(c.PostForm("category_id"))
	available := c.PostForm("is_available") == "on"

	input := models.MenuItemInput{
		Name:        &name,
		Description: optional(c.PostForm("description")),
		Price:       &price,
		IsAvailable: &available,
	}
	if categoryID > 0 {
		input.CategoryID = &categoryID
	}
	ac.redirectBack(c, ac.Console.SaveItem(input))
}

func (ac *AdminController) DeleteItem(c *gin.Context) {
	confirmed := c.PostForm("confirm") == "yes"
	ac.redirectBack(c, ac.Console.DeleteItem(pathID(c, "item_id"), confirmed))
}

func (ac *AdminController) UploadItemImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		ac.redirectBack(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		ac.redirectBack(c, err)
		return
	}
	defer f.Close()

	_, err = ac.Console.AttachItemImage(fh.Filename, fh.Size, f)
	ac.redirectBack(c, err)
}

// --- banners ---

func (ac *AdminController) BeginAddBanner(c *gin.Context) {
	ac.Console.BeginAddBanner()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) BeginEditBanner(c *gin.Context) {
	ac.Console.BeginEditBanner(pathID(c, "banner_id"))
	ac.redirectBack(c, nil)
}

func (ac *AdminController) CancelBanner(c *gin.Context) {
	ac.Console.CancelBanner()
	ac.redirectBack(c, nil)
}

func (ac *AdminController) SaveBanner(c *gin.Context) {
	title := c.PostForm("title")
	active := c.PostForm("is_active") == "on"
	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))

	input := models.BannerInput{
		Title:        &title,
		DiscountText: optional(c.PostForm("discount_text")),
		Description:  optional(c.PostForm("description")),
		Link:         optional(c.PostForm("link")),
		IsActive:     &active,
		SortOrder:    &sortOrder,
	}
	ac.redirectBack(c, ac.Console.SaveBanner(input))
}

func (ac *AdminController) DeleteBanner(c *gin.Context) {
	confirmed := c.PostForm("confirm") == "yes"
	ac.redirectBack(c, ac.Console.DeleteBanner(pathID(c, "banner_id"), confirmed))
}

func (ac *AdminController) UploadBannerImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		ac.redirectBack(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		ac.redirectBack(c, err)
		return
	}
	defer f.Close()

	_, err = ac.Console.AttachBannerImage(fh.Filename, fh.Size, f)
	ac.redirectBack(c, err)
}
