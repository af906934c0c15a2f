package admin

import "github.com/kwencafe/website/models"

func itemImagePatch(url string) models.MenuItemInput {
	return models.MenuItemInput{ImageURL: &url}
}

func bannerImagePatch(url string) models.BannerInput {
	return models.BannerInput{ImageURL: &url}
}
