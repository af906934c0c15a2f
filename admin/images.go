package admin

import (
	"io"
	"path/filepath"
	"strings"
)

// maxImageSize mirrors the server's documented upload cap.
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// validateImage rejects disallowed files before any network call is made.
func validateImage(fileName string, size int64) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedImageExts[ext] {
		return ErrUnsupportedImage
	}
	if size > maxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// AttachItemImage runs the two-phase image protocol for menu items.
//
// Editing an existing item: upload, then PUT the returned reference onto the
// record, then optimistically patch the local draft so the thumbnail updates
// before the authoritative reload lands. Adding a new item: there is no id to
// PUT against yet, so the reference is held in local form state and submitted
// with the eventual POST. Any failure leaves the previous reference in place.
func (c *Console) AttachItemImage(fileName string, size int64, r io.Reader) (string, error) {
	if err := validateImage(fileName, size); err != nil {
		return "", err
	}
	token := c.session.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}

	c.mu.Lock()
	editing := c.editingItem
	adding := c.addingItem
	c.mu.Unlock()

	switch {
	case editing != nil:
		url, err := c.api.UploadFile(fileName, r, token)
		if err != nil {
			return "", err
		}
		if _, err := c.api.UpdateMenuItem(editing.ID, itemImagePatch(url), token); err != nil {
			return "", err
		}
		c.mu.Lock()
		if c.editingItem != nil && c.editingItem.ID == editing.ID {
			c.editingItem.ImageURL = &url
		}
		c.mu.Unlock()
		if err := c.LoadAll(); err != nil {
			return "", err
		}
		return url, nil
	case adding:
		url, err := c.api.UploadFile(fileName, r, token)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.pendingItemImage = url
		c.mu.Unlock()
		return url, nil
	default:
		return "", ErrNoSelection
	}
}

// AttachBannerImage is the same protocol for banners.
func (c *Console) AttachBannerImage(fileName string, size int64, r io.Reader) (string, error) {
	if err := validateImage(fileName, size); err != nil {
		return "", err
	}
	token := c.session.Token()
	if token == "" {
		return "", ErrNotAuthenticated
	}

	c.mu.Lock()
	editing := c.editingBanner
	adding := c.addingBanner
	c.mu.Unlock()

	switch {
	case editing != nil:
		url, err := c.api.UploadFile(fileName, r, token)
		if err != nil {
			return "", err
		}
		if _, err := c.api.UpdateBanner(editing.ID, bannerImagePatch(url), token); err != nil {
			return "", err
		}
		c.mu.Lock()
		if c.editingBanner != nil && c.editingBanner.ID == editing.ID {
			c.editingBanner.ImageURL = &url
		}
		c.mu.Unlock()
		if err := c.LoadAll(); err != nil {
			return "", err
		}
		return url, nil
	case adding:
		url, err := c.api.UploadFile(fileName, r, token)
		if err != nil {
			return "", err
		}
		c.mu.Lock()
		c.pendingBannerImage = url
		c.mu.Unlock()
		return url, nil
	default:
		return "", ErrNoSelection
	}
}
