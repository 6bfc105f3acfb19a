package models

const (
	ModeRemote = "database"
	ModeLocal  = "local"
)

// DatabaseStatus drives the local-storage advisory banner.
type DatabaseStatus struct {
	DatabaseAvailable bool   `json:"databaseAvailable"`
	Mode              string `json:"mode"`
	BannerDismissed   bool   `json:"bannerDismissed"`
	ShowBanner        bool   `json:"showBanner"`
}

// CurrentUser is the identity exposed by the auth provider.
type CurrentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
