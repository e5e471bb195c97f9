package category

import "time"

// Category maps to the `categories` table. JSON tags follow the camelCase
// convention used elsewhere in the project.
type Category struct {
	ID          int       `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	IsActive    bool      `json:"isActive"`
	IsFeatured  bool      `json:"isFeatured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Command is the typed payload for category create and update.
type Command struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
	IsActive    *bool  `json:"isActive" form:"isActive"`
	IsFeatured  *bool  `json:"isFeatured" form:"isFeatured"`
}

// ValidateCommand checks a command and returns field-level messages; an empty
// map means the command is valid.
func ValidateCommand(cmd Command) map[string]string {
	errs := map[string]string{}
	if cmd.Name == "" {
		errs["name"] = "name is required"
	}
	if len(cmd.Name) > 255 {
		errs["name"] = "name exceeds maximum length"
	}
	return errs
}
