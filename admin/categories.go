package admin

import "github.com/kwencafe/website/models"

// EditingCategory returns a copy of the current draft, or nil in view/add mode.
func (c *Console) EditingCategory() *models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingCategory == nil {
		return nil
	}
	copied := *c.editingCategory
	return &copied
}

func (c *Console) AddingCategory() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addingCategory
}

// BeginEditCategory opens edit mode for one loaded category. Add mode for the
// same collection closes; other collections are not touched.
func (c *Console) BeginEditCategory(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cat := range c.categories {
		if cat.ID == id {
			copied := cat
			c.editingCategory = &copied
			c.addingCategory = false
			return true
		}
	}
	return false
}

func (c *Console) BeginAddCategory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingCategory = true
	c.editingCategory = nil
}

func (c *Console) CancelCategory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addingCategory = false
	c.editingCategory = nil
}

// SaveCategory issues a PUT when editing, a POST when adding, then reloads
// every collection and clears the mode. A failed save keeps the mode so the
// admin can fix and retry.
func (c *Console) SaveCategory(input models.CategoryInput) error {
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	editing := c.editingCategory
	adding := c.addingCategory
	c.mu.Unlock()

	switch {
	case editing != nil:
		if _, err := c.api.UpdateCategory(editing.ID, input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.editingCategory = nil
		c.mu.Unlock()
	case adding:
		if _, err := c.api.CreateCategory(input, token); err != nil {
			return err
		}
		c.mu.Lock()
		c.addingCategory = false
		c.mu.Unlock()
	default:
		return ErrNoSelection
	}
	return c.LoadAll()
}

// DeleteCategory needs confirmed=true: the server cascades the delete onto
// the category's items and the client does no pre-check of its own.
func (c *Console) DeleteCategory(id int, confirmed bool) error {
	if !confirmed {
		return ErrConfirmRequired
	}
	token := c.session.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	if err := c.api.DeleteCategory(id, token); err != nil {
		return err
	}
	c.mu.Lock()
	if c.editingCategory != nil && c.editingCategory.ID == id {
		c.editingCategory = nil
	}
	c.mu.Unlock()
	return c.LoadAll()
}
