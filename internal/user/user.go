package user

import "time"

// User maps to the `users` table. The password column holds a bcrypt hash;
// it is never serialized back to clients.
type User struct {
	ID              int        `json:"userId"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Password        string     `json:"-"`
	EmailVerifiedAt *time.Time `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// Command is the typed payload for user create and update. A blank password
// on update leaves the stored hash unchanged.
type Command struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// ValidateCommand checks a command and returns field-level messages.
// forCreate additionally requires a password.
func ValidateCommand(cmd Command, forCreate bool) map[string]string {
	errs := map[string]string{}
	if cmd.Name == "" {
		errs["name"] = "name is required"
	}
	if cmd.Email == "" {
		errs["email"] = "email is required"
	} else if !looksLikeEmail(cmd.Email) {
		errs["email"] = "enter a valid email"
	}
	if forCreate && cmd.Password == "" {
		errs["password"] = "password is required"
	}
	if cmd.Password != "" && len(cmd.Password) < 8 {
		errs["password"] = "password must be at least 8 characters"
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
	dot := false
	for _, ch := range v[at+1:] {
		if ch == '.' {
			dot = true
		}
	}
	return dot
}
