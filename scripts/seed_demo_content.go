package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/mandirseva/internal/config"
	"github.com/mandirseva/internal/db"
	"github.com/mandirseva/internal/service"
)

// Demo content generator for local development. Run once against an empty
// database; reruns add duplicate rows for the list collections.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.SeedAdmin(db.DB, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	fmt.Println("seeding demo content...")

	seedSliders()
	seedAbout()
	seedTimings()
	seedServices()
	seedSettings()
	seedTeam()
	seedVivaah()
	seedGaushala()

	fmt.Println("done")
}

func seedSliders() {
	svc := service.NewSliderService(db.DB)
	slides := []service.SliderInput{
		{ImageURL: "/static/uploads/slide-mandir.jpg", TitleEn: "Welcome to the Temple", TitleHi: "मंदिर में आपका स्वागत है", Order: 1},
		{ImageURL: "/static/uploads/slide-aarti.jpg", TitleEn: "Evening Aarti", TitleHi: "संध्या आरती", Order: 2},
		{ImageURL: "/static/uploads/slide-utsav.jpg", TitleEn: "Annual Utsav", TitleHi: "वार्षिक उत्सव", Order: 3},
	}
	for _, input := range slides {
		if _, err := svc.Create(input); err != nil {
			log.Fatalf("failed to seed slider: %v", err)
		}
	}
}

func seedAbout() {
	svc := service.NewAboutService(db.DB)
	_, err := svc.Upsert(service.AboutInput{
		TitleEn:   "About the Trust",
		TitleHi:   "ट्रस्ट के बारे में",
		ContentEn: "## Our History\nThe temple trust serves the community through worship, education and seva.",
		ContentHi: "## हमारा इतिहास\nमंदिर ट्रस्ट पूजा, शिक्षा और सेवा के माध्यम से समाज की सेवा करता है।",
	})
	if err != nil {
		log.Fatalf("failed to seed about content: %v", err)
	}
}

func seedTimings() {
	svc := service.NewTimingService(db.DB)
	timings := []service.TimingInput{
		{NameEn: "Mangala Aarti", NameHi: "मंगला आरती", SummerTime: "05:00 AM", WinterTime: "05:30 AM", Category: db.TimingCategoryAarti, Order: 1},
		{NameEn: "Sandhya Aarti", NameHi: "संध्या आरती", SummerTime: "07:00 PM", WinterTime: "06:30 PM", Category: db.TimingCategoryAarti, Order: 2},
		{NameEn: "Morning Darshan", NameHi: "प्रातः दर्शन", SummerTime: "06:00 AM - 12:00 PM", WinterTime: "06:30 AM - 12:00 PM", Category: db.TimingCategoryDarshan, Order: 1},
	}
	for _, input := range timings {
		if _, err := svc.Create(input); err != nil {
			log.Fatalf("failed to seed timing: %v", err)
		}
	}
}

func seedServices() {
	svc := service.NewServiceService(db.DB)
	cards := []service.ServiceInput{
		{TitleEn: "Annadaan", TitleHi: "अन्नदान", DescriptionEn: "Daily food service for devotees.", DescriptionHi: "भक्तों के लिए दैनिक भोजन सेवा।", ButtonTextEn: "Donate", ButtonTextHi: "दान करें", ButtonLink: "/donate", Order: 1},
		{TitleEn: "Pooja Booking", TitleHi: "पूजा बुकिंग", DescriptionEn: "Book a pooja with the temple priests.", DescriptionHi: "मंदिर के पुजारियों के साथ पूजा बुक करें।", Order: 2},
	}
	for _, input := range cards {
		if _, err := svc.Create(input); err != nil {
			log.Fatalf("failed to seed service: %v", err)
		}
	}
}

func seedSettings() {
	svc := service.NewSettingService(db.DB)
	settings := map[string][2]string{
		"temple_name": {"Shri Ram Mandir Trust", "श्री राम मंदिर ट्रस्ट"},
		"footer_note": {"Serving the community since 1952", "1952 से समाज की सेवा में"},
	}
	for key, values := range settings {
		if _, err := svc.Upsert(key, values[0], values[1]); err != nil {
			log.Fatalf("failed to seed setting %s: %v", key, err)
		}
	}
}

func seedTeam() {
	svc := service.NewTeamService(db.DB)
	members := []service.TeamMemberInput{
		{NameEn: "Ramesh Sharma", NameHi: "रमेश शर्मा", DesignationEn: "President", DesignationHi: "अध्यक्ष", Order: 1},
		{NameEn: "Suresh Gupta", NameHi: "सुरेश गुप्ता", DesignationEn: "Secretary", DesignationHi: "सचिव", Order: 2},
	}
	for _, input := range members {
		if _, err := svc.Create(input); err != nil {
			log.Fatalf("failed to seed team member: %v", err)
		}
	}
}

func seedVivaah() {
	svc := service.NewVivaahService(db.DB)
	if _, err := svc.UpsertPageInfo(service.VivaahPageInfoInput{
		TitleEn:       "Vivaah Sammelan",
		TitleHi:       "विवाह सम्मेलन",
		DescriptionEn: "Community wedding gatherings organized by the trust.",
		DescriptionHi: "ट्रस्ट द्वारा आयोजित सामूहिक विवाह सम्मेलन।",
	}); err != nil {
		log.Fatalf("failed to seed vivaah page info: %v", err)
	}

	sammelan, err := svc.CreateSammelan(service.SammelanInput{
		TitleEn:        "Vivaah Sammelan 2026",
		TitleHi:        "विवाह सम्मेलन 2026",
		OverallIncome:  "₹ 5,20,000",
		OverallExpense: "₹ 4,80,000",
		AsOfDate:       "2026-08-01",
	})
	if err != nil {
		log.Fatalf("failed to seed sammelan: %v", err)
	}

	participants := []service.ParticipantInput{
		{SammelanID: sammelan.ID, Type: db.ParticipantTypeBride, NameEn: "Radha", NameHi: "राधा", FatherNameEn: "Mohan Lal", FatherNameHi: "मोहन लाल", LocationEn: "Jaipur", LocationHi: "जयपुर", Order: 1},
		{SammelanID: sammelan.ID, Type: db.ParticipantTypeGroom, NameEn: "Shyam", NameHi: "श्याम", FatherNameEn: "Kishan Lal", FatherNameHi: "किशन लाल", LocationEn: "Udaipur", LocationHi: "उदयपुर", Order: 1},
	}
	for _, input := range participants {
		if _, err := svc.CreateParticipant(input); err != nil {
			log.Fatalf("failed to seed participant: %v", err)
		}
	}
}

func seedGaushala() {
	svc := service.NewGaushalaService(db.DB)
	if _, err := svc.CreateSlider(service.SliderInput{
		ImageURL: "/static/uploads/gaushala-hero.jpg",
		TitleEn:  "Our Gaushala",
		TitleHi:  "हमारी गौशाला",
		Order:    1,
	}); err != nil {
		log.Fatalf("failed to seed gaushala slider: %v", err)
	}

	if _, err := svc.UpsertAbout(service.GaushalaAboutInput{
		TitleEn:   "About the Gaushala",
		TitleHi:   "गौशाला के बारे में",
		ContentEn: "The gaushala shelters and cares for over two hundred cows.",
		ContentHi: "गौशाला दो सौ से अधिक गायों का आश्रय और देखभाल करती है।",
	}); err != nil {
		log.Fatalf("failed to seed gaushala about: %v", err)
	}

	if _, err := svc.CreateService(service.ServiceInput{
		TitleEn:       "Gau Seva",
		TitleHi:       "गौ सेवा",
		DescriptionEn: "Sponsor a day of fodder for the cows.",
		DescriptionHi: "गायों के लिए एक दिन के चारे का दान करें।",
		Order:         1,
	}); err != nil {
		log.Fatalf("failed to seed gaushala service: %v", err)
	}
}
