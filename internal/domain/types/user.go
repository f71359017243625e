package types

// UserRecord is the backend's view of the current user.
type UserRecord struct {
	UserID     int64  `json:"user_id" yaml:"user_id"`
	Username   string `json:"username" yaml:"username"`
	FullName   string `json:"full_name" yaml:"full_name"`
	Phone      string `json:"phone" yaml:"phone"`
	CourseName string `json:"course_name" yaml:"course_name"`
	AgreedAt   int64  `json:"agreed_at" yaml:"agreed_at"`
	ExpiresAt  int64  `json:"expires_at" yaml:"expires_at"`
}

// GroupAccess is a per-group subscription window.
type GroupAccess struct {
	GroupID   int64 `json:"group_id" yaml:"group_id"`
	ExpiresAt int64 `json:"expires_at" yaml:"expires_at"`
}

// Subscription summarises whether the user currently has access.
type Subscription struct {
	IsActive  bool          `json:"is_active" yaml:"is_active"`
	ExpiresAt int64         `json:"expires_at" yaml:"expires_at"`
	Groups    []GroupAccess `json:"groups" yaml:"groups"`
}

// HostUser is the chat-platform profile carried inside the identity token.
type HostUser struct {
	ID           int64  `json:"id" yaml:"id"`
	Username     string `json:"username,omitempty" yaml:"username,omitempty"`
	FirstName    string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	LanguageCode string `json:"language_code,omitempty" yaml:"language_code,omitempty"`
}
