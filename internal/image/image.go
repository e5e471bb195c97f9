package image

import "sort"

// Image is one entry in a product's ordered image list and maps to the
// `product_images` table. JSON tags follow the camelCase convention used
// elsewhere in the project.
type Image struct {
	ID        int    `json:"imageId"`
	ProductID int    `json:"productId"`
	Path      string `json:"path"`
	Position  int    `json:"position"`
	IsPrimary bool   `json:"isPrimary"`
}

// SortDisplay orders images in place by the canonical display order:
// primary first, then position ascending.
func SortDisplay(imgs []Image) {
	sort.SliceStable(imgs, func(i, j int) bool {
		if imgs[i].IsPrimary != imgs[j].IsPrimary {
			return imgs[i].IsPrimary
		}
		return imgs[i].Position < imgs[j].Position
	})
}
