package models

// ClinicSettings are the per-owner preferences edited on the settings page.
type ClinicSettings struct {
	ClinicName    string `json:"clinicName" validate:"required,max=200"`
	ClinicAddress string `json:"clinicAddress" validate:"max=500"`
	ClinicPhone   string `json:"clinicPhone" validate:"max=50"`
	ClinicEmail   string `json:"clinicEmail" validate:"omitempty,email"`

	EmailNotifications       bool `json:"emailNotifications"`
	SMSNotifications         bool `json:"smsNotifications"`
	NewResponseNotifications bool `json:"newResponseNotifications"`
	WeeklyReports            bool `json:"weeklyReports"`

	DataRetention         string `json:"dataRetention" validate:"oneof=1year 3years 5years 7years indefinite"`
	RequirePatientConsent bool   `json:"requirePatientConsent"`
	EnableAuditLog        bool   `json:"enableAuditLog"`
	TwoFactorAuth         bool   `json:"twoFactorAuth"`

	DefaultFormTheme string `json:"defaultFormTheme" validate:"oneof=light dark medical warm"`
	AllowFormSaving  bool   `json:"allowFormSaving"`
	RequireAllFields bool   `json:"requireAllFields"`
	ShowProgressBar  bool   `json:"showProgressBar"`
}

func DefaultClinicSettings() ClinicSettings {
	return ClinicSettings{
		ClinicName:    "Medical Center",
		ClinicAddress: "123 Healthcare Ave, Medical City, MC 12345",
		ClinicPhone:   "(555) 123-4567",
		ClinicEmail:   "info@medicalcenter.com",

		EmailNotifications:       true,
		SMSNotifications:         false,
		NewResponseNotifications: true,
		WeeklyReports:            true,

		DataRetention:         "7years",
		RequirePatientConsent: true,
		EnableAuditLog:        true,
		TwoFactorAuth:         false,

		DefaultFormTheme: "light",
		AllowFormSaving:  true,
		RequireAllFields: false,
		ShowProgressBar:  true,
	}
}
