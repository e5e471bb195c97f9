package contact

import "time"

// Message is a submission from the public contact form. Rows are immutable;
// admins can only read and delete them.
type Message struct {
	ID        int       `json:"messageId"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Command is the public form payload. Everything except the message body is
// optional.
type Command struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

const maxFieldLen = 255

// ValidateCommand checks a submission and returns field-level messages.
func ValidateCommand(cmd Command) map[string]string {
	errs := map[string]string{}
	if cmd.Message == "" {
		errs["message"] = "message is required"
	}
	if len(cmd.Name) > maxFieldLen {
		errs["name"] = "name must be at most 255 characters"
	}
	if len(cmd.Email) > maxFieldLen {
		errs["email"] = "email must be at most 255 characters"
	} else if cmd.Email != "" && !looksLikeEmail(cmd.Email) {
		errs["email"] = "enter a valid email"
	}
	if len(cmd.Subject) > maxFieldLen {
		errs["subject"] = "subject must be at most 255 characters"
	}
	return errs
}

func looksLikeEmail(v string) bool {
	at := -1
	for i, ch := range v {
		if ch == '@' {
			if at >= 0 {
				return false
			}
			at = i
		}
	}
	if at <= 0 || at == len(v)-1 {
		return false
	}
	for _, ch := range v[at+1:] {
		if ch == '.' {
			return true
		}
	}
	return false
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
