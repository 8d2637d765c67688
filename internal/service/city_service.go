package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/civicstack/cityportal/internal/models"
	"github.com/civicstack/cityportal/internal/repository"
	"github.com/civicstack/cityportal/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
)

// TrafficCacheKey is the Redis key holding the current traffic snapshot
const TrafficCacheKey = "cityportal:traffic:snapshot"

// TrafficCacheTTL bounds snapshot staleness between cron refreshes
const TrafficCacheTTL = 5 * time.Minute

// CityService serves the city data tabs. Everything except the traffic
// snapshot is a fixed fixture; traffic is templated by time of day and
// cached in Redis when Redis is configured.
type CityService struct {
	redisClient   *redis.Client
	userRepo      repository.UserRepository
	scrapbookRepo repository.ScrapbookRepository
	startedAt     time.Time
	now           func() time.Time
}

// NewCityService creates a new city data service. redisClient may be
// nil, in which case the traffic snapshot is computed per request.
func NewCityService(redisClient *redis.Client, userRepo repository.UserRepository, scrapbookRepo repository.ScrapbookRepository) *CityService {
	return &CityService{
		redisClient:   redisClient,
		userRepo:      userRepo,
		scrapbookRepo: scrapbookRepo,
		startedAt:     time.Now(),
		now:           time.Now,
	}
}

// Traffic returns the current traffic snapshot, from cache when possible
func (s *CityService) Traffic(ctx context.Context) (*models.TrafficSnapshot, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, TrafficCacheKey).Result()
		if err == nil {
			var snapshot models.TrafficSnapshot
			if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
				return &snapshot, nil
			}
			zaplogger.Warn("discarding unreadable traffic snapshot cache")
		}
	}
	return s.RefreshTraffic(ctx)
}

// RefreshTraffic recomputes the traffic snapshot and stores it in the
// cache. Cache write failures are logged, not fatal: the snapshot is
// still returned.
func (s *CityService) RefreshTraffic(ctx context.Context) (*models.TrafficSnapshot, error) {
	snapshot := buildTrafficSnapshot(s.now())

	if s.redisClient != nil {
		encoded, err := json.Marshal(snapshot)
		if err == nil {
			if err := s.redisClient.Set(ctx, TrafficCacheKey, encoded, TrafficCacheTTL).Err(); err != nil {
				zaplogger.Warn("failed to cache traffic snapshot", zaplogger.Fields{"error": err.Error()})
			}
		}
	}
	return snapshot, nil
}

// trafficPeriod classifies the hour of day for congestion templating
func trafficPeriod(hour int) string {
	switch {
	case hour >= 8 && hour < 11:
		return "morning-peak"
	case hour >= 17 && hour < 21:
		return "evening-peak"
	case hour >= 23 || hour < 5:
		return "night"
	default:
		return "off-peak"
	}
}

func buildTrafficSnapshot(at time.Time) *models.TrafficSnapshot {
	period := trafficPeriod(at.Hour())

	type corridorBase struct {
		name         string
		freeSpeed    int
		baseTravel   int
		peakSlowdown int
	}
	corridors := []corridorBase{
		{"Janpath Road", 45, 12, 3},
		{"Jaydev Vihar - Nandankanan Road", 50, 18, 4},
		{"Cuttack-Puri Road", 40, 20, 5},
		{"Sachivalaya Marg", 42, 10, 2},
		{"Airport Road", 55, 8, 2},
	}

	snapshot := &models.TrafficSnapshot{
		GeneratedAt: at.Format(time.RFC3339),
		Period:      period,
		Corridors:   make([]models.TrafficCorridor, 0, len(corridors)),
	}

	for _, c := range corridors {
		level := "low"
		speed := c.freeSpeed
		travel := c.baseTravel
		switch period {
		case "morning-peak", "evening-peak":
			level = "high"
			speed = c.freeSpeed / 2
			travel = c.baseTravel + c.peakSlowdown*2
		case "off-peak":
			level = "moderate"
			speed = c.freeSpeed * 3 / 4
			travel = c.baseTravel + c.peakSlowdown
		}
		snapshot.Corridors = append(snapshot.Corridors, models.TrafficCorridor{
			Name:            c.name,
			CongestionLevel: level,
			AvgSpeedKmph:    speed,
			TravelTimeMin:   travel,
		})
	}

	if period == "morning-peak" || period == "evening-peak" {
		snapshot.Advisories = []string{
			"Expect delays near Master Canteen Square",
			"Use Ring Road to bypass the station area",
		}
	} else {
		snapshot.Advisories = []string{}
	}
	return snapshot
}

// Healthcare returns the hospital and clinic listings
func (s *CityService) Healthcare() []models.HealthcareFacility {
	return []models.HealthcareFacility{
		{Name: "AIIMS Bhubaneswar", Type: "hospital", Address: "Sijua, Patrapada", Phone: "0674-2476789", Emergency: true, Services: []string{"trauma", "cardiology", "general"}},
		{Name: "Capital Hospital", Type: "hospital", Address: "Unit 6, Ganga Nagar", Phone: "0674-2391983", Emergency: true, Services: []string{"general", "maternity"}},
		{Name: "Municipal Health Centre", Type: "clinic", Address: "Saheed Nagar", Phone: "0674-2547100", Emergency: false, Services: []string{"general", "vaccination"}},
		{Name: "ESI Dispensary", Type: "clinic", Address: "Rasulgarh", Phone: "0674-2588211", Emergency: false, Services: []string{"general"}},
	}
}

// Education returns the school listings
func (s *CityService) Education() []models.School {
	return []models.School{
		{Name: "Capital High School", Level: "secondary", Board: "BSE Odisha", Address: "Unit 3", Students: 1240},
		{Name: "DM School", Level: "secondary", Board: "CBSE", Address: "Bhoi Nagar", Students: 980},
		{Name: "Saheed Nagar Primary School", Level: "primary", Board: "BSE Odisha", Address: "Saheed Nagar", Students: 460},
		{Name: "Kendriya Vidyalaya No. 1", Level: "secondary", Board: "CBSE", Address: "Unit 9", Students: 1510},
	}
}

// Safety returns emergency contacts and current advisories
func (s *CityService) Safety() map[string]interface{} {
	return map[string]interface{}{
		"contacts": []models.SafetyContact{
			{Service: "Police", Phone: "100"},
			{Service: "Fire", Phone: "101"},
			{Service: "Ambulance", Phone: "108"},
			{Service: "Women Helpline", Phone: "1091"},
		},
		"alerts": []models.SafetyAlert{
			{Title: "Waterlogging advisory", Severity: "moderate", Area: "Bomikhal underpass", IssuedAt: "2024-07-02T09:00:00Z"},
			{Title: "Road closure for civic works", Severity: "low", Area: "Unit 4 market", IssuedAt: "2024-07-01T06:30:00Z"},
		},
	}
}

// Tourism returns the points of interest
func (s *CityService) Tourism() []models.TourismSpot {
	return []models.TourismSpot{
		{Name: "Lingaraj Temple", Category: "heritage", Description: "11th-century Shiva temple, the city's landmark", Latitude: 20.2383, Longitude: 85.8338},
		{Name: "Dhauli Shanti Stupa", Category: "heritage", Description: "Peace pagoda on the Daya river, site of the Kalinga war", Latitude: 20.1928, Longitude: 85.8394},
		{Name: "Nandankanan Zoological Park", Category: "nature", Description: "Zoo and botanical garden with a white tiger safari", Latitude: 20.3966, Longitude: 85.8178},
		{Name: "Udayagiri and Khandagiri Caves", Category: "heritage", Description: "Rock-cut Jain monastery caves", Latitude: 20.2628, Longitude: 85.7858},
		{Name: "Odisha State Museum", Category: "culture", Description: "Palm-leaf manuscripts and tribal art collections", Latitude: 20.2551, Longitude: 85.8351},
	}
}

// MapMarkers returns the base map layer markers
func (s *CityService) MapMarkers() []models.MapMarker {
	return []models.MapMarker{
		{Label: "City Centre", Layer: "civic", Latitude: 20.2961, Longitude: 85.8245},
		{Label: "Railway Station", Layer: "transit", Latitude: 20.2665, Longitude: 85.8438},
		{Label: "Biju Patnaik Airport", Layer: "transit", Latitude: 20.2539, Longitude: 85.8178},
		{Label: "AIIMS Bhubaneswar", Layer: "health", Latitude: 20.2303, Longitude: 85.7764},
		{Label: "Lingaraj Temple", Layer: "tourism", Latitude: 20.2383, Longitude: 85.8338},
	}
}

// Onboarding returns the first-run wizard steps
func (s *CityService) Onboarding() []models.OnboardingStep {
	return []models.OnboardingStep{
		{Step: 1, Title: "Create your account", Description: "Register with a username and password to personalize the portal"},
		{Step: 2, Title: "Pick your neighbourhood", Description: "Choose your ward to see local alerts first"},
		{Step: 3, Title: "Explore the city tabs", Description: "Traffic, healthcare, education, safety and tourism at a glance"},
		{Step: 4, Title: "Start your scrapbook", Description: "Record places you visit and share the best ones publicly"},
	}
}

// AdminSettings returns the admin console settings fixture
func (s *CityService) AdminSettings() models.AdminSettings {
	return models.AdminSettings{
		PortalName:          "Bhubaneswar Citizen Portal",
		MaintenanceMode:     false,
		RegistrationOpen:    true,
		SupportedLanguages:  []string{"en", "or", "hi"},
		DataRefreshInterval: TrafficCacheTTL.String(),
	}
}

// AdminMetrics returns live portal counters for the admin console
func (s *CityService) AdminMetrics() (*models.AdminMetrics, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	total, public, err := s.scrapbookRepo.Counts()
	if err != nil {
		return nil, err
	}
	return &models.AdminMetrics{
		RegisteredUsers:  int(users),
		ScrapbookEntries: int(total),
		PublicEntries:    int(public),
		UptimeSince:      s.startedAt.Format(time.RFC3339),
	}, nil
}
