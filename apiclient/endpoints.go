package apiclient

import (
	"fmt"

	"github.com/kwencafe/website/models"
)

// Public reads.

func (c *Client) GetCategories() ([]models.Category, error) {
	var out []models.Category
	err := c.Get("/menu/categories", &out)
	return out, err
}

func (c *Client) GetMenuItems(categoryID int) ([]models.MenuItem, error) {
	path := "/menu/items"
	if categoryID > 0 {
		path = fmt.Sprintf("/menu/items?category_id=%d", categoryID)
	}
	var out []models.MenuItem
	err := c.Get(path, &out)
	return out, err
}

func (c *Client) GetBanners() ([]models.Banner, error) {
	var out []models.Banner
	err := c.Get("/banners", &out)
	return out, err
}

// Public writes, each returning the created record's id.

func (c *Client) CreateReservation(input models.ReservationInput) (int, error) {
	var out struct {
		ID int `json:"id"`
	}
	if err := c.Post("/reservations", input, &out, ""); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) CreateContact(input models.ContactInput) (int, error) {
	var out struct {
		ID int `json:"id"`
	}
	if err := c.Post("/contact", input, &out, ""); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Admin.

func (c *Client) Login(username, password string) (string, error) {
	var token models.Token
	payload := models.AdminLogin{Username: username, Password: password}
	if err := c.Post("/admin/login", payload, &token, ""); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (c *Client) AdminCategories(token string) ([]models.Category, error) {
	var out []models.Category
	err := c.GetAuth("/admin/categories", token, &out)
	return out, err
}

func (c *Client) CreateCategory(input models.CategoryInput, token string) (models.Category, error) {
	var out models.Category
	err := c.Post("/admin/categories", input, &out, token)
	return out, err
}

func (c *Client) UpdateCategory(id int, input models.CategoryInput, token string) (models.Category, error) {
	var out models.Category
	err := c.Put(fmt.Sprintf("/admin/categories/%d", id), input, &out, token)
	return out, err
}

func (c *Client) DeleteCategory(id int, token string) error {
	return c.Delete(fmt.Sprintf("/admin/categories/%d", id), token)
}

func (c *Client) AdminMenuItems(token string) ([]models.MenuItem, error) {
	var out []models.MenuItem
	err := c.GetAuth("/admin/menu/items", token, &out)
	return out, err
}

func (c *Client) CreateMenuItem(input models.MenuItemInput, token string) (models.MenuItem, error) {
	var out models.MenuItem
	err := c.Post("/admin/menu/items", input, &out, token)
	return out, err
}

func (c *Client) UpdateMenuItem(id int, input models.MenuItemInput, token string) (models.MenuItem, error) {
	var out models.MenuItem
	err := c.Put(fmt.Sprintf("/admin/menu/items/%d", id), input, &out, token)
	return out, err
}

func (c *Client) DeleteMenuItem(id int, token string) error {
	return c.Delete(fmt.Sprintf("/admin/menu/items/%d", id), token)
}

func (c *Client) AdminBanners(token string) ([]models.Banner, error) {
	var out []models.Banner
	err := c.GetAuth("/admin/banners", token, &out)
	return out, err
}

func (c *Client) CreateBanner(input models.BannerInput, token string) (models.Banner, error) {
	var out models.Banner
	err := c.Post("/admin/banners", input, &out, token)
	return out, err
}

func (c *Client) UpdateBanner(id int, input models.BannerInput, token string) (models.Banner, error) {
	var out models.Banner
	err := c.Put(fmt.Sprintf("/admin/banners/%d", id), input, &out, token)
	return out, err
}

func (c *Client) DeleteBanner(id int, token string) error {
	return c.Delete(fmt.Sprintf("/admin/banners/%d", id), token)
}

func (c *Client) AdminReservations(token string) ([]models.Reservation, error) {
	var out []models.Reservation
	err := c.GetAuth("/admin/reservations", token, &out)
	return out, err
}
