package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kwencafe/website/admin"
	"github.com/kwencafe/website/apiclient"
	"github.com/kwencafe/website/models"
	"github.com/kwencafe/website/session"
)

const testToken = "tok123"

// fakeAPI is an in-memory stand-in for the external café API. It records
// every request so tests can assert what went over the wire and in what
// order.
type fakeAPI struct {
	mu       sync.Mutex
	requests []string

	categories   []models.Category
	items        []models.MenuItem
	banners      []models.Banner
	reservations []models.Reservation

	nextID int

	failLogin        bool
	failReservations bool
	failUpload       bool
	uploadURL        string
}

func newFakeAPI() *fakeAPI {
	desc := "Свежая выпечка"
	return &fakeAPI{
		categories: []models.Category{
			{ID: 1, Name: "Кофе", Slug: "coffee"},
			{ID: 2, Name: "Десерты", Slug: "desserts", Description: &desc},
		},
		items: []models.MenuItem{
			{ID: 10, Name: "Капучино", Price: 180, CategoryID: 1, IsAvailable: true},
			{ID: 11, Name: "Чизкейк", Price: 320, CategoryID: 2, IsAvailable: true},
		},
		banners: []models.Banner{
			{ID: 20, Title: "Акция на роллы", IsActive: true},
		},
		reservations: []models.Reservation{
			{ID: 30, Name: "Иван", Phone: "+79990000000", Date: "2025-05-01", Time: "19:00", Guests: 4, Status: models.ReservationPending},
			{ID: 31, Name: "Мария", Phone: "+79991111111", Date: "2025-05-02", Time: "18:00", Guests: 2, Status: models.ReservationConfirmed},
			{ID: 32, Name: "Пётр", Phone: "+79992222222", Date: "2025-05-01", Time: "20:00", Guests: 3, Status: models.ReservationPending},
		},
		nextID:    100,
		uploadURL: "/uploads/fresh.jpg",
	}
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

// Requests returns a copy of the request log.
func (f *fakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.requests))
	copy(out, f.requests)
	return out
}

func (f *fakeAPI) countRequests(prefix string) int {
	n := 0
	for _, req := range f.Requests() {
		if strings.HasPrefix(req, prefix) {
			n++
		}
	}
	return n
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"detail": msg})
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)

		if r.URL.Path == "/admin/login" && r.Method == http.MethodPost {
			if f.failLogin {
				writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			writeJSON(w, http.StatusOK, models.Token{AccessToken: testToken, TokenType: "bearer"})
			return
		}

		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.URL.Path == "/admin/upload" && r.Method == http.MethodPost:
			if f.failUpload {
				writeDetail(w, http.StatusInternalServerError, "storage unavailable")
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"url": f.uploadURL})

		case r.URL.Path == "/admin/reservations" && r.Method == http.MethodGet:
			if f.failReservations {
				writeDetail(w, http.StatusInternalServerError, "reservations offline")
				return
			}
			writeJSON(w, http.StatusOK, f.reservations)

		case r.URL.Path == "/admin/categories" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, f.categories)
		case r.URL.Path == "/admin/categories" && r.Method == http.MethodPost:
			var input models.CategoryInput
			json.NewDecoder(r.Body).Decode(&input)
			f.nextID++
			cat := models.Category{ID: f.nextID, Name: input.Name, Slug: input.Slug, Description: input.Description, SortOrder: input.SortOrder}
			f.categories = append(f.categories, cat)
			writeJSON(w, http.StatusOK, cat)
		case strings.HasPrefix(r.URL.Path, "/admin/categories/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/categories/"))
			switch r.Method {
			case http.MethodPut:
				var input models.CategoryInput
				json.NewDecoder(r.Body).Decode(&input)
				for i := range f.categories {
					if f.categories[i].ID == id {
						f.categories[i].Name = input.Name
						f.categories[i].Slug = input.Slug
						f.categories[i].Description = input.Description
						f.categories[i].SortOrder = input.SortOrder
						writeJSON(w, http.StatusOK, f.categories[i])
						return
					}
				}
				writeDetail(w, http.StatusNotFound, "Category not found")
			case http.MethodDelete:
				kept := f.categories[:0]
				for _, cat := range f.categories {
					if cat.ID != id {
						kept = append(kept, cat)
					}
				}
				f.categories = kept
				// Cascade is the server's job.
				keptItems := f.items[:0]
				for _, item := range f.items {
					if item.CategoryID != id {
						keptItems = append(keptItems, item)
					}
				}
				f.items = keptItems
				writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			}

		case r.URL.Path == "/admin/menu/items" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, f.items)
		case r.URL.Path == "/admin/menu/items" && r.Method == http.MethodPost:
			var input models.MenuItemInput
			json.NewDecoder(r.Body).Decode(&input)
			f.nextID++
			item := models.MenuItem{ID: f.nextID, IsAvailable: true}
			applyItemInput(&item, input)
			f.items = append(f.items, item)
			writeJSON(w, http.StatusOK, item)
		case strings.HasPrefix(r.URL.Path, "/admin/menu/items/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/menu/items/"))
			switch r.Method {
			case http.MethodPut:
				var input models.MenuItemInput
				json.NewDecoder(r.Body).Decode(&input)
				for i := range f.items {
					if f.items[i].ID == id {
						applyItemInput(&f.items[i], input)
						writeJSON(w, http.StatusOK, f.items[i])
						return
					}
				}
				writeDetail(w, http.StatusNotFound, "Menu item not found")
			case http.MethodDelete:
				kept := f.items[:0]
				for _, item := range f.items {
					if item.ID != id {
						kept = append(kept, item)
					}
				}
				f.items = kept
				writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			}

		case r.URL.Path == "/admin/banners" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, f.banners)
		case r.URL.Path == "/admin/banners" && r.Method == http.MethodPost:
			var input models.BannerInput
			json.NewDecoder(r.Body).Decode(&input)
			f.nextID++
			banner := models.Banner{ID: f.nextID, IsActive: true}
			applyBannerInput(&banner, input)
			f.banners = append(f.banners, banner)
			writeJSON(w, http.StatusOK, banner)
		case strings.HasPrefix(r.URL.Path, "/admin/banners/"):
			id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/admin/banners/"))
			switch r.Method {
			case http.MethodPut:
				var input models.BannerInput
				json.NewDecoder(r.Body).Decode(&input)
				for i := range f.banners {
					if f.banners[i].ID == id {
						applyBannerInput(&f.banners[i], input)
						writeJSON(w, http.StatusOK, f.banners[i])
						return
					}
				}
				writeDetail(w, http.StatusNotFound, "Banner not found")
			case http.MethodDelete:
				kept := f.banners[:0]
				for _, banner := range f.banners {
					if banner.ID != id {
						kept = append(kept, banner)
					}
				}
				f.banners = kept
				writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			}

		default:
			writeDetail(w, http.StatusNotFound, "not found")
		}
	})
}

func applyItemInput(item *models.MenuItem, input models.MenuItemInput) {
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}
	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}
}

func applyBannerInput(banner *models.Banner, input models.BannerInput) {
	if input.Title != nil {
		banner.Title = *input.Title
	}
	if input.DiscountText != nil {
		banner.DiscountText = input.DiscountText
	}
	if input.Description != nil {
		banner.Description = input.Description
	}
	if input.ImageURL != nil {
		banner.ImageURL = input.ImageURL
	}
	if input.Link != nil {
		banner.Link = input.Link
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		banner.SortOrder = *input.SortOrder
	}
}

// newTestConsole wires a console against the fake API with a fresh session.
func newTestConsole(t *testing.T, fake *fakeAPI) (*admin.Console, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store, err := session.OpenStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	sess, err := session.NewManager(store)
	require.NoError(t, err)

	api := apiclient.NewClient(srv.URL, srv.URL)
	return admin.NewConsole(api, sess), srv
}
