package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golftrip-server/models"
	"golftrip-server/storage"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

type seedDestination struct {
	Name       string
	Country    string
	Region     string
	ShortDesc  string
	LongDesc   string
	PriceFrom  int
	PriceTo    int
	Lat        float32
	Lng        float32
	Images     []string
	Amenities  []string
	Highlights []string
	Courses    []models.Course
	Packages   []models.PackageOffer
	Featured   bool
}

var seeds = []seedDestination{
	{
		Name:      "Costa del Sol Golf Resort",
		Country:   "Spain",
		Region:    "Andalusia",
		ShortDesc: "Year-round golf on the Spanish south coast with mountain backdrops.",
		LongDesc:  "Three championship courses, luxury accommodation with spa and pool, and over 300 days of sunshine a year. Short transfers from Malaga airport make this the easiest warm-weather trip in Europe.",
		PriceFrom: 8900, PriceTo: 18500,
		Lat: 36.5099, Lng: -4.8860,
		Images: []string{
			"https://images.golftrip.example/costa-del-sol-1.jpg",
			"https://images.golftrip.example/costa-del-sol-2.jpg",
			"https://images.golftrip.example/costa-del-sol-3.jpg",
			"https://images.golftrip.example/costa-del-sol-4.jpg",
		},
		Amenities:  []string{"Spa", "Pool", "Restaurant", "Driving Range", "Pro Shop"},
		Highlights: []string{"Intermediate", "Advanced", "Sunshine guarantee"},
		Courses: []models.Course{
			{CourseName: "Valle Verde Championship", Par: 72, LengthMeters: 6300, Difficulty: "Championship", CourseType: "Parkland", Holes: 18},
			{CourseName: "El Mirador", Par: 71, LengthMeters: 5900, Difficulty: "Medium", CourseType: "Coastal", Holes: 18},
		},
		Packages: []models.PackageOffer{
			{Name: "Long Weekend", Nights: 3, Rounds: 2, PricePerson: 8900, Accommodation: "Mid-range", Board: "Half board"},
			{Name: "Full Week Unlimited", Nights: 7, Rounds: 5, PricePerson: 18500, Accommodation: "Luxury", Board: "Full board"},
		},
		Featured: true,
	},
	{
		Name:      "St Andrews Links Experience",
		Country:   "Scotland",
		Region:    "Fife",
		ShortDesc: "The home of golf. Links golf as it has been played for six centuries.",
		LongDesc:  "Guaranteed tee times on historic links courses, stays in the old town and caddies who know every bump of the fairways. A pilgrimage trip for the serious golfer.",
		PriceFrom: 15500, PriceTo: 32000,
		Lat: 56.3398, Lng: -2.8038,
		Images: []string{
			"https://images.golftrip.example/st-andrews-1.jpg",
			"https://images.golftrip.example/st-andrews-2.jpg",
		},
		Amenities:  []string{"Restaurant", "Pro Shop", "Caddie Service", "Golf Academy"},
		Highlights: []string{"Advanced", "Professional", "Links golf"},
		Courses: []models.Course{
			{CourseName: "Heritage Links", Par: 72, LengthMeters: 6100, Difficulty: "Championship", CourseType: "Links", Holes: 18},
		},
		Packages: []models.PackageOffer{
			{Name: "Links Pilgrimage", Nights: 4, Rounds: 3, PricePerson: 15500, Accommodation: "Mid-range", Board: "Breakfast"},
		},
		Featured: true,
	},
	{
		Name:      "Algarve Golf & Beach",
		Country:   "Portugal",
		Region:    "Algarve",
		ShortDesc: "Clifftop courses above Atlantic beaches at honest prices.",
		LongDesc:  "The Algarve packs more quality courses per kilometre than anywhere in Europe. Family-friendly resorts, beach access and value packages make it the go-to for mixed groups.",
		PriceFrom: 6500, PriceTo: 13900,
		Lat: 37.0891, Lng: -8.2479,
		Images: []string{
			"https://images.golftrip.example/algarve-1.jpg",
			"https://images.golftrip.example/algarve-2.jpg",
			"https://images.golftrip.example/algarve-3.jpg",
		},
		Amenities:  []string{"Pool", "Restaurant", "Beach Access", "Driving Range"},
		Highlights: []string{"Beginner", "Intermediate", "Family friendly"},
		Courses: []models.Course{
			{CourseName: "Atlantico Cliffs", Par: 71, LengthMeters: 5800, Difficulty: "Medium", CourseType: "Coastal", Holes: 18},
			{CourseName: "Pinheiro Valley", Par: 70, LengthMeters: 5500, Difficulty: "Easy", CourseType: "Parkland", Holes: 18},
		},
		Packages: []models.PackageOffer{
			{Name: "Value Escape", Nights: 4, Rounds: 3, PricePerson: 6500, Accommodation: "Budget", Board: "Self catering"},
		},
	},
	{
		Name:      "Highland Glens Golf Retreat",
		Country:   "Scotland",
		Region:    "Highlands",
		ShortDesc: "Remote highland golf between mountains and lochs.",
		LongDesc:  "Quiet courses carved through glens, whisky distillery visits between rounds and lodge accommodation with open fires. Golf for those who want the course to themselves.",
		PriceFrom: 9800, PriceTo: 16000,
		Lat: 57.4778, Lng: -4.2247,
		Images: []string{
			"https://images.golftrip.example/highlands-1.jpg",
		},
		Amenities:  []string{"Restaurant", "Whisky Bar", "Fishing"},
		Highlights: []string{"Intermediate", "Scenery"},
		Courses: []models.Course{
			{CourseName: "Glen Moray", Par: 70, LengthMeters: 5600, Difficulty: "Medium", CourseType: "Highland", Holes: 18},
		},
	},
	{
		Name:      "Belek Luxury Golf Coast",
		Country:   "Turkey",
		Region:    "Antalya",
		ShortDesc: "All-inclusive five star golf on the Turkish riviera.",
		LongDesc:  "Immaculate courses between pine forest and Mediterranean, enormous all-inclusive resorts and some of the best value luxury golf anywhere. Winter season runs October to April.",
		PriceFrom: 7200, PriceTo: 14500,
		Lat: 36.8625, Lng: 31.0556,
		Images: []string{
			"https://images.golftrip.example/belek-1.jpg",
			"https://images.golftrip.example/belek-2.jpg",
			"https://images.golftrip.example/belek-3.jpg",
			"https://images.golftrip.example/belek-4.jpg",
		},
		Amenities:  []string{"Spa", "Pool", "Restaurant", "Fitness Center", "Golf Academy"},
		Highlights: []string{"Beginner", "Intermediate", "All inclusive"},
		Courses: []models.Course{
			{CourseName: "Pasha Grove", Par: 72, LengthMeters: 6200, Difficulty: "Hard", CourseType: "Parkland", Holes: 18},
		},
		Packages: []models.PackageOffer{
			{Name: "Winter Sun Week", Nights: 7, Rounds: 4, PricePerson: 9900, Accommodation: "Luxury", Board: "All inclusive"},
		},
		Featured: true,
	},
}

func main() {
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()

	created, skipped := 0, 0
	for _, seed := range seeds {
		slug := slugFor(seed.Name)

		var existing models.Destination
		query := storage.DB.Where("slug = ?", slug).Limit(1).Find(&existing)
		if query.Error != nil {
			log.Fatalf("seed query failed: %v", query.Error)
		}
		if query.RowsAffected > 0 {
			skipped++
			continue
		}

		images, _ := json.Marshal(seed.Images)
		amenities, _ := json.Marshal(seed.Amenities)
		highlights, _ := json.Marshal(seed.Highlights)
		courses, _ := json.Marshal(seed.Courses)
		packages, _ := json.Marshal(seed.Packages)

		published := true
		destination := models.Destination{
			Name:       seed.Name,
			Slug:       slug,
			Country:    seed.Country,
			Region:     seed.Region,
			ShortDesc:  seed.ShortDesc,
			LongDesc:   seed.LongDesc,
			PriceFrom:  seed.PriceFrom,
			PriceTo:    seed.PriceTo,
			Currency:   "SEK",
			Lat:        seed.Lat,
			Lng:        seed.Lng,
			Images:     string(images),
			Amenities:  string(amenities),
			Highlights: datatypes.JSON(highlights),
			Courses:    datatypes.JSON(courses),
			Packages:   datatypes.JSON(packages),
			Featured:   seed.Featured,
			Published:  &published,
		}

		if err := storage.DB.Create(&destination).Error; err != nil {
			log.Fatalf("seed create failed for %s: %v", seed.Name, err)
		}
		created++
	}

	fmt.Printf("Destination seeding completed: %d created, %d skipped\n", created, skipped)
}

func slugFor(name string) string {
	out := make([]byte, 0, len(name))
	lastDash := true
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, byte(r-'A'+'a'))
			lastDash = false
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, byte(r))
			lastDash = false
		default:
			if !lastDash {
				out = append(out, '-')
				lastDash = true
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
