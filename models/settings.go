package models

// DefaultSettingName is the key of the singleton settings document.
const DefaultSettingName = "default"

// AppointmentSettings is the admin-editable singleton holding the global
// per-hour booking capacity used when a service defines no limit of its own.
type AppointmentSettings struct {
	SettingName            string `bson:"settingName" json:"settingName"`
	MaxBookingsPerTimeSlot int    `bson:"maxBookingsPerTimeSlot" json:"maxBookingsPerTimeSlot"`
}
