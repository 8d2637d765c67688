package models

// TrafficSnapshot is the templated city traffic payload. Congestion
// levels follow the time of day; the snapshot is cached and refreshed
// periodically rather than recomputed per request.
type TrafficSnapshot struct {
	GeneratedAt string            `json:"generated_at"`
	Period      string            `json:"period"`
	Corridors   []TrafficCorridor `json:"corridors"`
	Advisories  []string          `json:"advisories"`
}

// TrafficCorridor is a single monitored road segment
type TrafficCorridor struct {
	Name            string `json:"name"`
	CongestionLevel string `json:"congestion_level"`
	AvgSpeedKmph    int    `json:"avg_speed_kmph"`
	TravelTimeMin   int    `json:"travel_time_min"`
}

// HealthcareFacility is a hospital or clinic listing
type HealthcareFacility struct {
	Name      string   `json:"name"`
	Type      string   `json:"type"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Emergency bool     `json:"emergency"`
	Services  []string `json:"services"`
}

// School is an education listing
type School struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Board    string `json:"board"`
	Address  string `json:"address"`
	Students int    `json:"students"`
}

// SafetyContact is an emergency service contact
type SafetyContact struct {
	Service string `json:"service"`
	Phone   string `json:"phone"`
}

// SafetyAlert is a public safety advisory
type SafetyAlert struct {
	Title    string `json:"title"`
	Severity string `json:"severity"`
	Area     string `json:"area"`
	IssuedAt string `json:"issued_at"`
}

// TourismSpot is a point of interest listing
type TourismSpot struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// MapMarker is a map layer point
type MapMarker struct {
	Label     string  `json:"label"`
	Layer     string  `json:"layer"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OnboardingStep is one step of the first-run wizard
type OnboardingStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AdminSettings is the admin console settings payload
type AdminSettings struct {
	PortalName          string   `json:"portal_name"`
	MaintenanceMode     bool     `json:"maintenance_mode"`
	RegistrationOpen    bool     `json:"registration_open"`
	SupportedLanguages  []string `json:"supported_languages"`
	DataRefreshInterval string   `json:"data_refresh_interval"`
}

// AdminMetrics is the admin console metrics payload
type AdminMetrics struct {
	RegisteredUsers  int    `json:"registered_users"`
	ScrapbookEntries int    `json:"scrapbook_entries"`
	PublicEntries    int    `json:"public_entries"`
	UptimeSince      string `json:"uptime_since"`
}
