package Models

import (
	"math/rand"
	"sort"
	"time"
)

// Doctor is a static catalog entry. Availability maps a calendar date to the
// open slot times for that day; it is generated fresh at process start and
// never persisted.
type Doctor struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Specialization string              `json:"specialization"`
	Bio            string              `json:"bio"`
	Education      []string            `json:"education"`
	Experience     int                 `json:"experience"`
	PictureURL     string              `json:"pictureUrl"`
	Availability   map[string][]string `json:"availability"`
}

var possibleTimes = []string{"09:00 AM", "10:00 AM", "11:00 AM", "02:00 PM", "03:00 PM", "04:00 PM"}

// GenerateFutureAvailability builds a pseudo-random calendar for the next
// `days` days: weekdays only, roughly two thirds of them, one to four slots
// per open day, times in chronological order.
func GenerateFutureAvailability(days int) map[string][]string {
	availability := make(map[string][]string)
	today := time.Now()

	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i)
		weekday := date.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			continue
		}
		if rand.Float64() <= 0.33 {
			continue
		}

		times := make([]string, len(possibleTimes))
		copy(times, possibleTimes)
		rand.Shuffle(len(times), func(a, b int) {
			times[a], times[b] = times[b], times[a]
		})
		times = times[:rand.Intn(4)+1]

		sort.Slice(times, func(a, b int) bool {
			ta, _ := time.Parse(TimeLayout, times[a])
			tb, _ := time.Parse(TimeLayout, times[b])
			return ta.Before(tb)
		})
		availability[date.Format(DateLayout)] = times
	}
	return availability
}

// HasSlot reports whether the doctor's calendar offers the given date/time.
func (doctor *Doctor) HasSlot(date, clock string) bool {
	for _, t := range doctor.Availability[date] {
		if t == clock {
			return true
		}
	}
	return false
}

// Doctors is the in-memory catalog, seeded once per process.
var Doctors = seedDoctors()

// GetDoctorByID looks up a catalog entry.
func GetDoctorByID(id string) (*Doctor, bool) {
	for i := range Doctors {
		if Doctors[i].ID == id {
			return &Doctors[i], true
		}
	}
	return nil, false
}

// Specializations returns the distinct specializations in the catalog,
// sorted.
func Specializations() []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range Doctors {
		if _, ok := seen[Doctors[i].Specialization]; ok {
			continue
		}
		seen[Doctors[i].Specialization] = struct{}{}
		out = append(out, Doctors[i].Specialization)
	}
	sort.Strings(out)
	return out
}

func seedDoctors() []Doctor {
	return []Doctor{
		{
			ID:             "1",
			Name:           "Dr. Evelyn Reed",
			Specialization: "Cardiology",
			Bio:            "Dr. Evelyn Reed is a board-certified cardiologist with over 15 years of experience in treating heart conditions. She is dedicated to providing compassionate and comprehensive care to her patients.",
			Education:      []string{"MD, Stanford University School of Medicine", "Residency, Johns Hopkins Hospital"},
			Experience:     15,
			PictureURL:     "https://picsum.photos/seed/doc1/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
		{
			ID:             "2",
			Name:           "Dr. Samuel Chen",
			Specialization: "Dermatology",
			Bio:            "Dr. Samuel Chen specializes in medical and cosmetic dermatology. He is known for his patient-centric approach and expertise in skin cancer screening and treatment.",
			Education:      []string{"MD, Yale School of Medicine", "Residency, UCSF Medical Center"},
			Experience:     12,
			PictureURL:     "https://picsum.photos/seed/doc2/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
		{
			ID:             "3",
			Name:           "Dr. Anika Patel",
			Specialization: "Pediatrics",
			Bio:            "A friendly and caring pediatrician, Dr. Anika Patel has a passion for children's health. She believes in building strong relationships with families to ensure the best care.",
			Education:      []string{"MD, Perelman School of Medicine", "Residency, Children's Hospital of Philadelphia"},
			Experience:     8,
			PictureURL:     "https://picsum.photos/seed/doc3/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
		{
			ID:             "4",
			Name:           "Dr. Marcus Thorne",
			Specialization: "Orthopedics",
			Bio:            "Dr. Marcus Thorne is a leading orthopedic surgeon specializing in sports injuries and joint replacement. He utilizes the latest minimally invasive techniques for faster recovery.",
			Education:      []string{"MD, Columbia University", "Residency, Hospital for Special Surgery"},
			Experience:     20,
			PictureURL:     "https://picsum.photos/seed/doc4/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
		{
			ID:             "5",
			Name:           "Dr. Lena Petrova",
			Specialization: "Neurology",
			Bio:            "Dr. Petrova is a neurologist with a focus on neurodegenerative disorders. Her research and clinical work aim to improve the quality of life for patients with complex neurological conditions.",
			Education:      []string{"MD, Harvard Medical School", "Residency, Massachusetts General Hospital"},
			Experience:     18,
			PictureURL:     "https://picsum.photos/seed/doc5/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
		{
			ID:             "6",
			Name:           "Dr. Kenji Tanaka",
			Specialization: "Gastroenterology",
			Bio:            "Dr. Tanaka provides expert care for a wide range of digestive health issues. He is committed to preventive care and patient education to promote long-term wellness.",
			Education:      []string{"MD, Johns Hopkins University", "Fellowship, Mayo Clinic"},
			Experience:     14,
			PictureURL:     "https://picsum.photos/seed/doc6/400/400",
			Availability:   GenerateFutureAvailability(30),
		},
	}
}
