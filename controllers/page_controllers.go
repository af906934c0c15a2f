package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/forms"
	"github.com/kwencafe/website/models"
	"github.com/kwencafe/website/utils"
)

type PageController struct {
	API *apiclient.Client
}

func NewPageController(api *apiclient.Client) *PageController {
	return &PageController{API: api}
}

// Home shows active banners and a teaser of the menu.
func (pc *PageController) Home(c *gin.Context) {
	banners, err := pc.API.GetBanners()
	if err != nil {
		utils.ErrorLogger.Printf("home: load banners: %v", err)
	}
	items, err := pc.API.GetMenuItems(0)
	if err != nil {
		utils.ErrorLogger.Printf("home: load menu items: %v", err)
	}

	teaser := make([]models.MenuItem, 0, 6)
	for _, item := range items {
		if !item.IsAvailable {
			continue
		}
		teaser = append(teaser, item)
		if len(teaser) == 6 {
			break
		}
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":   "Kwen — кафе в Махачкале",
		"Banners": banners,
		"Items":   teaser,
	})
}

// Menu lists items, optionally filtered by ?category_id=.
func (pc *PageController) Menu(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Query("category_id"))

	categories, err := pc.API.GetCategories()
	if err != nil {
		utils.ErrorLogger.Printf("menu: load categories: %v", err)
	}
	items, err := pc.API.GetMenuItems(categoryID)
	if err != nil {
		utils.ErrorLogger.Printf("menu: load items: %v", err)
	}

	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Title":      "Меню — Kwen",
		"Categories": categories,
		"Items":      items,
		"Selected":   categoryID,
	})
}

func (pc *PageController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title": "О нас — Kwen",
	})
}

func (pc *PageController) ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title": "Контакты — Kwen",
		"Form":  forms.NewContactForm(pc.API),
	})
}

func (pc *PageController) ContactSubmit(c *gin.Context) {
	input := models.ContactInput{
		Name:    c.PostForm("name"),
		Email:   c.PostForm("email"),
		Phone:   optional(c.PostForm("phone")),
		Message: c.PostForm("message"),
	}

	form := forms.NewContactForm(pc.API)
	if err := form.Submit(input); err != nil {
		utils.ErrorLogger.Printf("contact submit: %v", err)
	}

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"Title": "Контакты — Kwen",
		"Form":  form,
	})
}

func (pc *PageController) ReservationsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "reservations.html", gin.H{
		"Title": "Бронирование — Kwen",
		"Form":  forms.NewReservationForm(pc.API),
	})
}

func (pc *PageController) ReservationSubmit(c *gin.Context) {
	guests, err := strconv.Atoi(c.PostForm("guests"))
	if err != nil || guests < 1 {
		guests = 2
	}
	input := models.ReservationInput{
		Name:    c.PostForm("name"),
		Phone:   c.PostForm("phone"),
		Email:   optional(c.PostForm("email")),
		Date:    c.PostForm("date"),
		Time:    c.PostForm("time"),
		Guests:  guests,
		Comment: optional(c.PostForm("comment")),
	}

	form := forms.NewReservationForm(pc.API)
	if err := form.Submit(input); err != nil {
		utils.ErrorLogger.Printf("reservation submit: %v", err)
	}

	c.HTML(http.StatusOK, "reservations.html", gin.H{
		"Title": "Бронирование — Kwen",
		"Form":  form,
	})
}

// optional maps an empty form value to an omitted JSON field.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
