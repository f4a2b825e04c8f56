package catalog

import (
	"time"

	"github.com/geocoder89/videomatch/internal/domain/event"
	"github.com/shopspring/decimal"
)

const hostAvatar = "/eventpic/image.png"

func eventImage(stamp string) string {
	return "/eventpic/WhatsApp Image 2025-06-26 at " + stamp + ".jpeg"
}

type seedRecord struct {
	offset int
	event  event.Event
}

// Seed builds the fixture catalog with each date placed offset days after today.
func Seed(today time.Time) []event.Event {
	base := event.DateOf(today)

	out := make([]event.Event, 0, len(seedRecords))
	for _, r := range seedRecords {
		e := r.event
		e.Date = base.AddDays(r.offset)
		e.Requirements = append([]string(nil), r.event.Requirements...)
		out = append(out, e)
	}

	return out
}

var seedRecords = []seedRecord{
	{
		offset: 0,
		event: event.Event{
			ID:                  "1",
			Title:               "Speed Dating Night - Young Professionals",
			Description:         "Meet successful singles in their 20s and 30s in a fun, relaxed environment.",
			Time:                "19:00",
			Location:            "Manhattan, NYC",
			Category:            event.CategorySpeedDating,
			Price:               decimal.NewFromInt(45),
			MaxParticipants:     30,
			CurrentParticipants: 18,
			Image:               eventImage("22.02.44"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-35",
			Requirements:        []string{"Professional attire", "Valid ID"},
			Host:                event.Host{Name: "Sarah Johnson", Avatar: hostAvatar, Rating: 4.8},
		},
	},
	{
		offset: 0,
		event: event.Event{
			ID:                  "2",
			Title:               "Wine & Dine Mixer",
			Description:         "Elegant evening of wine tasting and gourmet food with sophisticated singles.",
			Time:                "18:30",
			Location:            "Downtown Brooklyn",
			Category:            event.CategoryMixer,
			Price:               decimal.NewFromInt(65),
			MaxParticipants:     40,
			CurrentParticipants: 25,
			Image:               eventImage("22.02.04"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "28-45",
			Requirements:        []string{"Smart casual attire"},
			Host:                event.Host{Name: "Michael Chen", Avatar: hostAvatar, Rating: 4.9},
		},
	},
	{
		offset: 1,
		event: event.Event{
			ID:                  "3",
			Title:               "Dating Workshop: Building Confidence",
			Description:         "Learn essential dating skills and boost your confidence.",
			Time:                "14:00",
			Location:            "Virtual Event",
			Category:            event.CategoryWorkshop,
			Price:               decimal.NewFromInt(35),
			MaxParticipants:     50,
			CurrentParticipants: 32,
			Image:               eventImage("22.02.03"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "21-50",
			Requirements:        []string{"Notebook", "Zoom access"},
			Host:                event.Host{Name: "Dr. Emma Rodriguez", Avatar: hostAvatar, Rating: 4.7},
		},
	},
	{
		offset: 2,
		event: event.Event{
			ID:                  "4",
			Title:               "Outdoor Adventure Dating",
			Description:         "Hiking and outdoor activities for active singles.",
			Time:                "10:00",
			Location:            "Central Park",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(25),
			MaxParticipants:     25,
			CurrentParticipants: 15,
			Image:               eventImage("22.02.23"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "22-40",
			Requirements:        []string{"Comfortable shoes"},
			Host:                event.Host{Name: "Alex Thompson", Avatar: hostAvatar, Rating: 4.6},
		},
	},
	{
		offset: 3,
		event: event.Event{
			ID:                  "5",
			Title:               "Premium VIP Singles Gala",
			Description:         "Exclusive black-tie event for successful professionals.",
			Time:                "19:30",
			Location:            "The Plaza Hotel",
			Category:            event.CategoryPremium,
			Price:               decimal.NewFromInt(150),
			MaxParticipants:     60,
			CurrentParticipants: 35,
			Image:               eventImage("22.02.42"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "30-50",
			Requirements:        []string{"Black tie attire"},
			Host:                event.Host{Name: "Victoria Sterling", Avatar: hostAvatar, Rating: 5.0},
		},
	},
	{
		offset: 4,
		event: event.Event{
			ID:                  "6",
			Title:               "Creative Arts & Crafts Dating",
			Description:         "Paint, create, and connect with artistic souls.",
			Time:                "15:00",
			Location:            "Art Studio SoHo",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(40),
			MaxParticipants:     20,
			CurrentParticipants: 12,
			Image:               eventImage("22.02.04 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "24-38",
			Requirements:        []string{"Creativity welcomed"},
			Host:                event.Host{Name: "Luna Martinez", Avatar: hostAvatar, Rating: 4.5},
		},
	},
	{
		offset: 5,
		event: event.Event{
			ID:                  "7",
			Title:               "Tech Professionals Networking",
			Description:         "Connect with fellow tech enthusiasts and entrepreneurs.",
			Time:                "18:00",
			Location:            "WeWork Times Square",
			Category:            event.CategoryNetworking,
			Price:               decimal.NewFromInt(30),
			MaxParticipants:     35,
			CurrentParticipants: 22,
			Image:               eventImage("22.02.03 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-42",
			Requirements:        []string{"Tech background"},
			Host:                event.Host{Name: "David Kim", Avatar: hostAvatar, Rating: 4.4},
		},
	},
	{
		offset: 6,
		event: event.Event{
			ID:                  "8",
			Title:               "Sunday Brunch Speed Dating",
			Description:         "Relaxed morning event with mimosas and brunch.",
			Time:                "11:00",
			Location:            "Brooklyn Heights",
			Category:            event.CategorySpeedDating,
			Price:               decimal.NewFromInt(50),
			MaxParticipants:     28,
			CurrentParticipants: 19,
			Image:               eventImage("22.02.03 (2)"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "26-38",
			Requirements:        []string{"Brunch attire"},
			Host:                event.Host{Name: "Jessica Park", Avatar: hostAvatar, Rating: 4.7},
		},
	},
	{
		offset: 7,
		event: event.Event{
			ID:                  "9",
			Title:               "Fitness & Wellness Singles",
			Description:         "Yoga and meditation for wellness-focused singles.",
			Time:                "17:00",
			Location:            "Wellness Center",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(35),
			MaxParticipants:     30,
			CurrentParticipants: 18,
			Image:               eventImage("22.02.22"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "24-40",
			Requirements:        []string{"Workout clothes"},
			Host:                event.Host{Name: "Ryan Martinez", Avatar: hostAvatar, Rating: 4.6},
		},
	},
	{
		offset: 8,
		event: event.Event{
			ID:                  "10",
			Title:               "International Culture Exchange",
			Description:         "Meet singles from diverse backgrounds and enjoy international cuisine.",
			Time:                "19:00",
			Location:            "Global Culture Center",
			Category:            event.CategoryMixer,
			Price:               decimal.NewFromInt(45),
			MaxParticipants:     45,
			CurrentParticipants: 28,
			Image:               eventImage("22.02.42 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "22-45",
			Requirements:        []string{"Cultural curiosity"},
			Host:                event.Host{Name: "Amara Hassan", Avatar: hostAvatar, Rating: 4.8},
		},
	},
	{
		offset: 9,
		event: event.Event{
			ID:                  "11",
			Title:               "Game Night & Social",
			Description:         "Board games and fun activities for playful singles.",
			Time:                "20:00",
			Location:            "Game Lounge NYC",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(25),
			MaxParticipants:     32,
			CurrentParticipants: 20,
			Image:               eventImage("22.02.22 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "21-35",
			Requirements:        []string{"Competitive spirit"},
			Host:                event.Host{Name: "Marcus Johnson", Avatar: hostAvatar, Rating: 4.5},
		},
	},
	{
		offset: 10,
		event: event.Event{
			ID:                  "12",
			Title:               "Book Club & Coffee Dating",
			Description:         "Literary discussions and coffee tasting.",
			Time:                "16:00",
			Location:            "Independent Bookstore",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(20),
			MaxParticipants:     18,
			CurrentParticipants: 11,
			Image:               eventImage("22.02.23 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-45",
			Requirements:        []string{"Love of reading"},
			Host:                event.Host{Name: "Sophie Chen", Avatar: hostAvatar, Rating: 4.9},
		},
	},
	{
		offset: 11,
		event: event.Event{
			ID:                  "13",
			Title:               "Monday Motivation Mixer",
			Description:         "Start your week with motivated singles.",
			Time:                "18:00",
			Location:            "Rooftop Lounge",
			Category:            event.CategoryMixer,
			Price:               decimal.NewFromInt(35),
			MaxParticipants:     25,
			CurrentParticipants: 14,
			Image:               eventImage("22.03.02"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "26-40",
			Requirements:        []string{"Business casual"},
			Host:                event.Host{Name: "Amanda Foster", Avatar: hostAvatar, Rating: 4.6},
		},
	},
	{
		offset: 12,
		event: event.Event{
			ID:                  "14",
			Title:               "Tuesday Trivia & Tapas",
			Description:         "Test your knowledge while tasting delicious tapas.",
			Time:                "19:30",
			Location:            "Spanish Restaurant",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(40),
			MaxParticipants:     30,
			CurrentParticipants: 22,
			Image:               eventImage("22.03.22"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-45",
			Requirements:        []string{"Trivia enthusiasm"},
			Host:                event.Host{Name: "Carlos Rodriguez", Avatar: hostAvatar, Rating: 4.7},
		},
	},
	{
		offset: 13,
		event: event.Event{
			ID:                  "15",
			Title:               "Wednesday Wine Walk",
			Description:         "Stroll through the city while wine tasting.",
			Time:                "17:30",
			Location:            "Wine District Tour",
			Category:            event.CategoryMixer,
			Price:               decimal.NewFromInt(55),
			MaxParticipants:     20,
			CurrentParticipants: 16,
			Image:               eventImage("22.03.41"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "28-50",
			Requirements:        []string{"Valid ID"},
			Host:                event.Host{Name: "Isabella Wine", Avatar: hostAvatar, Rating: 4.9},
		},
	},
	{
		offset: 14,
		event: event.Event{
			ID:                  "16",
			Title:               "Thursday Jazz & Cocktails",
			Description:         "Smooth jazz and craft cocktails for sophisticated singles.",
			Time:                "20:00",
			Location:            "Jazz Club Manhattan",
			Category:            event.CategoryMixer,
			Price:               decimal.NewFromInt(60),
			MaxParticipants:     35,
			CurrentParticipants: 24,
			Image:               eventImage("22.02.42 (2)"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "28-45",
			Requirements:        []string{"Smart casual"},
			Host:                event.Host{Name: "Miles Davis Jr.", Avatar: hostAvatar, Rating: 4.8},
		},
	},
	{
		offset: 15,
		event: event.Event{
			ID:                  "17",
			Title:               "Friday Night Dance Party",
			Description:         "Dance the night away with energetic singles.",
			Time:                "21:00",
			Location:            "Dance Studio Brooklyn",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(30),
			MaxParticipants:     50,
			CurrentParticipants: 38,
			Image:               eventImage("22.03.02 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "22-38",
			Requirements:        []string{"Dancing shoes"},
			Host:                event.Host{Name: "DJ Sophia", Avatar: hostAvatar, Rating: 4.5},
		},
	},
	{
		offset: 16,
		event: event.Event{
			ID:                  "18",
			Title:               "Saturday Cooking Class",
			Description:         "Learn to cook delicious meals together.",
			Time:                "14:00",
			Location:            "Culinary Institute",
			Category:            event.CategoryWorkshop,
			Price:               decimal.NewFromInt(75),
			MaxParticipants:     16,
			CurrentParticipants: 12,
			Image:               eventImage("22.03.02 (2)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-50",
			Requirements:        []string{"Apron provided"},
			Host:                event.Host{Name: "Chef Marco", Avatar: hostAvatar, Rating: 4.9},
		},
	},
	{
		offset: 17,
		event: event.Event{
			ID:                  "19",
			Title:               "Sunday Yoga & Brunch",
			Description:         "Morning yoga followed by healthy brunch.",
			Time:                "09:00",
			Location:            "Zen Studio",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(45),
			MaxParticipants:     20,
			CurrentParticipants: 15,
			Image:               eventImage("22.03.03"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "24-42",
			Requirements:        []string{"Yoga mat"},
			Host:                event.Host{Name: "Yogi Sarah", Avatar: hostAvatar, Rating: 4.7},
		},
	},
	{
		offset: 18,
		event: event.Event{
			ID:                  "20",
			Title:               "Monday Movie Night",
			Description:         "Classic films and popcorn with cinema lovers.",
			Time:                "19:00",
			Location:            "Independent Cinema",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(25),
			MaxParticipants:     40,
			CurrentParticipants: 28,
			Image:               eventImage("22.03.22 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "21-45",
			Requirements:        []string{"Movie enthusiasm"},
			Host:                event.Host{Name: "Film Buff Alex", Avatar: hostAvatar, Rating: 4.4},
		},
	},
	{
		offset: 19,
		event: event.Event{
			ID:                  "21",
			Title:               "Tuesday Art Gallery Tour",
			Description:         "Explore contemporary art with cultured singles.",
			Time:                "18:30",
			Location:            "Chelsea Art District",
			Category:            event.CategoryNetworking,
			Price:               decimal.NewFromInt(35),
			MaxParticipants:     25,
			CurrentParticipants: 18,
			Image:               eventImage("22.03.22 (2)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "26-48",
			Requirements:        []string{"Art appreciation"},
			Host:                event.Host{Name: "Gallery Curator Emma", Avatar: hostAvatar, Rating: 4.6},
		},
	},
	{
		offset: 20,
		event: event.Event{
			ID:                  "22",
			Title:               "Wednesday Karaoke Night",
			Description:         "Sing your heart out with fun-loving singles.",
			Time:                "20:30",
			Location:            "Karaoke Bar",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(20),
			MaxParticipants:     35,
			CurrentParticipants: 26,
			Image:               eventImage("22.03.22 (3)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "22-40",
			Requirements:        []string{"Singing courage"},
			Host:                event.Host{Name: "Karaoke King Mike", Avatar: hostAvatar, Rating: 4.3},
		},
	},
	{
		offset: 21,
		event: event.Event{
			ID:                  "23",
			Title:               "Thursday Salsa Dancing",
			Description:         "Learn salsa moves with passionate dancers.",
			Time:                "19:30",
			Location:            "Latin Dance Studio",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(40),
			MaxParticipants:     30,
			CurrentParticipants: 22,
			Image:               eventImage("22.03.23"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-45",
			Requirements:        []string{"Dance shoes"},
			Host:                event.Host{Name: "Salsa Instructor Rosa", Avatar: hostAvatar, Rating: 4.8},
		},
	},
	{
		offset: 22,
		event: event.Event{
			ID:                  "24",
			Title:               "Friday Rooftop Networking",
			Description:         "Professional networking with city views.",
			Time:                "18:00",
			Location:            "Rooftop Bar Manhattan",
			Category:            event.CategoryNetworking,
			Price:               decimal.NewFromInt(50),
			MaxParticipants:     40,
			CurrentParticipants: 31,
			Image:               eventImage("22.03.41 (1)"),
			Featured:            true,
			Status:              event.StatusUpcoming,
			AgeRange:            "27-45",
			Requirements:        []string{"Business cards"},
			Host:                event.Host{Name: "Network Pro James", Avatar: hostAvatar, Rating: 4.7},
		},
	},
	{
		offset: 23,
		event: event.Event{
			ID:                  "25",
			Title:               "Saturday Beach Volleyball",
			Description:         "Active beach day with sporty singles.",
			Time:                "11:00",
			Location:            "Coney Island Beach",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(15),
			MaxParticipants:     24,
			CurrentParticipants: 18,
			Image:               eventImage("22.03.41 (2)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "21-35",
			Requirements:        []string{"Athletic wear"},
			Host:                event.Host{Name: "Beach Coach Tony", Avatar: hostAvatar, Rating: 4.5},
		},
	},
	{
		offset: 24,
		event: event.Event{
			ID:                  "26",
			Title:               "Sunday Farmers Market Tour",
			Description:         "Fresh produce and organic connections.",
			Time:                "10:00",
			Location:            "Union Square Market",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(25),
			MaxParticipants:     20,
			CurrentParticipants: 14,
			Image:               eventImage("22.03.42"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "24-50",
			Requirements:        []string{"Eco-friendly mindset"},
			Host:                event.Host{Name: "Organic Olivia", Avatar: hostAvatar, Rating: 4.6},
		},
	},
	{
		offset: 25,
		event: event.Event{
			ID:                  "27",
			Title:               "Monday Comedy Show",
			Description:         "Laugh together at stand-up comedy night.",
			Time:                "20:00",
			Location:            "Comedy Club",
			Category:            event.CategorySocial,
			Price:               decimal.NewFromInt(30),
			MaxParticipants:     50,
			CurrentParticipants: 35,
			Image:               eventImage("22.04.01"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "22-45",
			Requirements:        []string{"Sense of humor"},
			Host:                event.Host{Name: "Comedian Chris", Avatar: hostAvatar, Rating: 4.4},
		},
	},
	{
		offset: 26,
		event: event.Event{
			ID:                  "28",
			Title:               "Tuesday Photography Walk",
			Description:         "Capture the city with creative photographers.",
			Time:                "17:00",
			Location:            "Brooklyn Bridge",
			Category:            event.CategoryWorkshop,
			Price:               decimal.NewFromInt(35),
			MaxParticipants:     15,
			CurrentParticipants: 11,
			Image:               eventImage("22.04.02"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "25-40",
			Requirements:        []string{"Camera or phone"},
			Host:                event.Host{Name: "Photo Pro Lisa", Avatar: hostAvatar, Rating: 4.8},
		},
	},
	{
		offset: 27,
		event: event.Event{
			ID:                  "29",
			Title:               "Wednesday Meditation Circle",
			Description:         "Find inner peace with mindful singles.",
			Time:                "18:30",
			Location:            "Meditation Center",
			Category:            event.CategoryWorkshop,
			Price:               decimal.NewFromInt(25),
			MaxParticipants:     20,
			CurrentParticipants: 16,
			Image:               eventImage("22.04.03 (1)"),
			Featured:            false,
			Status:              event.StatusUpcoming,
			AgeRange:            "23-50",
			Requirements:        []string{"Open mind"},
			Host:                event.Host{Name: "Zen Master David", Avatar: hostAvatar, Rating: 4.9},
		},
	},
}
