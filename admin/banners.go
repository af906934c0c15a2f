package admin

import "github.com/kwencafe/website/models"

// EditingBanner returns a copy of the current draft, or nil in view/add mode.
func (c *Console) EditingBanner() *models.Banner {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingBanner == nil {
		return nil
	}
	copied := *c.editingBanner
	return &copied
}

func (c *Console) AddingBanner() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addingBanner
}

func (c *Console) PendingBannerImage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingBannerImage
}

func (c *Console) BeginEditBanner(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, b := range c.banners {
		if b.ID == id {
			copied := b
			c.editingBanner = &copied
			c.addingBanner = false
			c.pendingBannerImage = ""
			return true
		}
	}
	return false
}

func (c *Console) BeginAddBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingBanner = true
	c.editingBanner = nil
	c.pendingBannerImage = ""
}

func (c *Console) CancelBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingBanner = false
	c.editingBanner = nil
	c.pendingBannerImage = ""
}

func (c *Console) SaveBanner(input models.BannerInput) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	editing := c.editingBanner
	adding := c.addingBanner
	pending := c.pendingBannerImage
	c.mu.Unlock()

	switch {
	case editing != nil:
		if _, err := c.api.UpdateBanner(editing.ID, input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.editingBanner = nil
		c.mu.Unlock()
	case adding:
		if input.ImageURL == nil && pending != "" {
			input.ImageURL = &pending
		}
		if _, err := c.api.CreateBanner(input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.addingBanner = false
		c.pendingBannerImage = ""
		c.mu.Unlock()
	default:
		return ErrNoSelection
	}
	return c.LoadAll()
}

func (c *Console) DeleteBanner(id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	if err := c.api.DeleteBanner(id, token); err != nil {
		return err
	}
	c.mu.Lock()
	if c.editingBanner != nil && c.editingBanner.ID == id {
		c.editingBanner = nil
	}
	c.mu.Unlock()
	return c.LoadAll()
}
