// Package admin implements the data-management console: login, the cached
// collections, the per-collection edit/add modes and the image attach
// protocol. It is deliberately headless so the workflow can be tested without
// the HTTP layer on top.
package admin

import (
	"errors"
	"sync"

	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/models"
	"github.com/kwencafe/website/session"
	"github.com/kwencafe/website/utils"
)

var (
	ErrNotAuthenticated = errors.New("admin: not authenticated")
	// ErrConfirmRequired means a delete was attempted without the explicit
	// confirmation step.
	ErrConfirmRequired = errors.New("admin: delete requires confirmation")
	// ErrNoSelection means a save or image attach arrived while the
	// collection is in plain viewing mode.
	ErrNoSelection      = errors.New("admin: no record selected")
	ErrUnsupportedImage = errors.New("admin: image must be jpeg, png or webp")
	ErrImageTooLarge    = errors.New("admin: image exceeds 5MB")
)

type Console struct {
	api     *apiclient.Client
	session *session.Manager

	mu     sync.Mutex
	loaded bool

	categories   []models.Category
	items        []models.MenuItem
	banners      []models.Banner
	reservations []models.Reservation

	editingCategory *models.Category
	addingCategory  bool

	editingItem      *models.MenuItem
	addingItem       bool
	pendingItemImage string

	editingBanner      *models.Banner
	addingBanner       bool
	pendingBannerImage string
}

func NewConsole(api *apiclient.Client, sess *session.Manager) *Console {
	return &Console{api: api, session: sess}
}

// Login exchanges credentials for a bearer token and, on success, eagerly
// loads all collections. A failure leaves the console unauthenticated and the
// error message is for inline display.
func (c *Console) Login(username, password string) error {
	token, err := c.api.Login(username, password)
	if err != nil {
		return err
	}
	c.session.Login(token)
	return c.LoadAll()
}

func (c *Console) Logout() {
	c.session.Logout()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.categories = nil
	c.items = nil
	c.banners = nil
	c.reservations = nil
	c.editingCategory = nil
	c.addingCategory = false
	c.editingItem = nil
	c.addingItem = false
	c.pendingItemImage = ""
	c.editingBanner = nil
	c.addingBanner = false
	c.pendingBannerImage = ""
}

func (c *Console) IsAuthenticated() bool {
	return c.session.IsAuthenticated()
}

// LoadAll fetches all four collections in parallel. Each fetch is best
// effort: a failure is logged and the previous copy of that collection is
// kept.
func (c *Console) LoadAll() error {
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	var (
		wg           sync.WaitGroup
		categories   []models.Category
		items        []models.MenuItem
		banners      []models.Banner
		reservations []models.Reservation
		catErr       error
		itemErr      error
		bannerErr    error
		resErr       error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		categories, catErr = c.api.AdminCategories(token)
	}()
	go func() {
		defer wg.Done()
		items, itemErr = c.api.AdminMenuItems(token)
	}()
	go func() {
		defer wg.Done()
		banners, bannerErr = c.api.AdminBanners(token)
	}()
	go func() {
		defer wg.Done()
		reservations, resErr = c.api.AdminReservations(token)
	}()
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if catErr != nil {
		utils.ErrorLogger.Printf("load categories: %v", catErr)
	} else {
		c.categories = categories
	}
	if itemErr != nil {
		utils.ErrorLogger.Printf("load menu items: %v", itemErr)
	} else {
		c.items = items
	}
	if bannerErr != nil {
		utils.ErrorLogger.Printf("load banners: %v", bannerErr)
	} else {
		c.banners = banners
	}
	if resErr != nil {
		utils.ErrorLogger.Printf("load reservations: %v", resErr)
	} else {
		c.reservations = reservations
	}
	c.loaded = true
	return nil
}

// EnsureLoaded covers the returning-admin case: a persisted token with no
// collections fetched yet in this process.
func (c *Console) EnsureLoaded() {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if !loaded && c.IsAuthenticated() {
		if err := c.LoadAll(); err != nil {
			utils.ErrorLogger.Printf("initial load: %v", err)
		}
	}
}

func (c *Console) Categories() []models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Console) MenuItems() []models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Console) Banners() []models.Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Banner, len(c.banners))
	copy(out, c.banners)
	return out
}

// ReservationGroup is one status bucket of the operational inbox.
type ReservationGroup struct {
	Status       string
	Reservations []models.Reservation
}

// ReservationGroups buckets the inbox by status, keeping the server's order
// inside each bucket. The inbox is read-only; staff phone customers back.
func (c *Console) ReservationGroups() []ReservationGroup {
	c.mu.Lock()
	defer c.mu.Unlock()

	order := []string{models.ReservationPending, models.ReservationConfirmed, models.ReservationCancelled}
	buckets := make(map[string][]models.Reservation)
	var extra []string
	for _, r := range c.reservations {
		if _, known := buckets[r.Status]; !known {
			found := false
			for _, s := range order {
				if s == r.Status {
					found = true
					break
				}
			}
			if !found {
				extra = append(extra, r.Status)
			}
		}
		buckets[r.Status] = append(buckets[r.Status], r)
	}

	var groups []ReservationGroup
	for _, s := range append(order, extra...) {
		if rs, ok := buckets[s]; ok {
			groups = append(groups, ReservationGroup{Status: s, Reservations: rs})
		}
	}
	return groups
}

// CategoryName resolves a category id against the loaded set for listings.
func (c *Console) CategoryName(id int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return ""
}
