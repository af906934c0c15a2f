package admin

import "github.com/kwencafe/website/models"

// EditingItem returns a copy of the current draft, or nil in view/add mode.
// The internal draft is mutated under the lock (image attach patches it), so
// callers never get the console's own pointer.
func (c *Console) EditingItem() *models.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingItem == nil {
		return nil
	}
	copied := *c.editingItem
	return &copied
}

func (c *Console) AddingItem() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addingItem
}

// PendingItemImage is the uploaded reference held for a new, unsaved item.
func (c *Console) PendingItemImage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingItemImage
}

func (c *Console) BeginEditItem(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.ID == id {
			copied := item
			c.editingItem = &copied
			c.addingItem = false
			c.pendingItemImage = ""
			return true
		}
	}
	return false
}

func (c *Console) BeginAddItem() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingItem = true
	c.editingItem = nil
	c.pendingItemImage = ""
}

func (c *Console) CancelItem() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingItem = false
	c.editingItem = nil
	c.pendingItemImage = ""
}

// SaveItem saves the draft. A new item without a chosen category falls back
// to the first loaded one — documented default, the server still owns
// referential integrity. An image uploaded before the first save rides along
// on the POST.
func (c *Console) SaveItem(input models.MenuItemInput) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	editing := c.editingItem
	adding := c.addingItem
	pending := c.pendingItemImage
	var firstCategory int
	if len(c.categories) > 0 {
		firstCategory = c.categories[0].ID
	}
	c.mu.Unlock()

	switch {
	case editing != nil:
		if _, err := c.api.UpdateMenuItem(editing.ID, input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.editingItem = nil
		c.mu.Unlock()
	case adding:
		if input.CategoryID == nil || *input.CategoryID == 0 {
			input.CategoryID = &firstCategory
		}
		if input.ImageURL == nil && pending != "" {
			input.ImageURL = &pending
		}
		if _, err := c.api.CreateMenuItem(input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.addingItem = false
		c.pendingItemImage = ""
		c.mu.Unlock()
	default:
		return ErrNoSelection
	}
	return c.LoadAll()
}

func (c *Console) DeleteItem(id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	if err := c.api.DeleteMenuItem(id, token); err != nil {
		return err
	}
	c.mu.Lock()
	if c.editingItem != nil && c.editingItem.ID == id {
		c.editingItem = nil
	}
	c.mu.Unlock()
	return c.LoadAll()
}
