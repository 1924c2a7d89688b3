package config

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"homestay-backend/models"
	"homestay-backend/store"
)

func mustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		log.Fatalf("Error parsing time for seeding (%s): %v", value, err)
	}
	return t
}

// SeedStore installs the demo dataset exactly once. Presence of the users
// slot is the marker: if it exists the whole seed is skipped, even when other
// collections were cleared independently. Callers relying on a re-seed must
// wipe the users slot too.
func SeedStore(st *store.Store) error {
	seeded, err := st.Users.Exists()
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	adminPassword := EnvOrDefault("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*models.User{
		{
			ID:           "admin-1",
			Email:        "admin@srihari.com",
			Name:         "Admin",
			Role:         models.RoleAdmin,
			Phone:        "+91 98765 43210",
			PasswordHash: string(hash),
			CreatedAt:    mustParseTime("2024-01-01T00:00:00Z"),
		},
		{
			ID:        "guest-1",
			Email:     "priya@example.com",
			Name:      "Priya Sharma",
			Role:      models.RoleGuest,
			Phone:     "+91 98765 12345",
			CreatedAt: mustParseTime("2024-06-15T00:00:00Z"),
		},
		{
			ID:        "guest-2",
			Email:     "rahul@example.com",
			Name:      "Rahul Reddy",
			Role:      models.RoleGuest,
			Phone:     "+91 87654 32109",
			CreatedAt: mustParseTime("2024-07-20T00:00:00Z"),
		},
	}

	rooms := []*models.Room{
		{
			ID:          "room-1",
			Name:        "The Royal Tirumala Suite",
			Type:        models.RoomSuite,
			Description: "A majestic suite designed for those who seek the finest. Features a king-sized bed with handcrafted linens, a spacious living area, and breathtaking views of the sacred hills.",
			Price:       4500,
			Capacity:    2,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Private Balcony", "Mini Bar", "Room Service", "King Size Bed", "Bathtub"},
			Images:      []string{"room-suite"},
			FloorNumber: 3,
			Status:      models.RoomAvailable,
			Featured:    true,
		},
		{
			ID:          "room-2",
			Name:        "Deluxe Garden View",
			Type:        models.RoomDeluxe,
			Description: "Immerse yourself in tranquility. Perfect for couples seeking a quiet retreat. Features modern amenities while maintaining traditional elegance in a beautiful outdoor serenity.",
			Price:       3200,
			Capacity:    2,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Garden View", "Room Service", "Queen Size Bed"},
			Images:      []string{"room-deluxe"},
			FloorNumber: 2,
			Status:      models.RoomAvailable,
			Featured:    true,
		},
		{
			ID:          "room-3",
			Name:        "Family Grand Suite",
			Type:        models.RoomFamily,
			Description: "Space for everyone you love. Our 2-bedroom suite offers two separate sleeping areas, a generous living space, and amenities for families seeking comfort without compromise.",
			Price:       5500,
			Capacity:    4,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Living Area", "Mini Kitchen", "Room Service", "Two Queen Beds"},
			Images:      []string{"room-family"},
			FloorNumber: 2,
			Status:      models.RoomAvailable,
		},
		{
			ID:          "room-4",
			Name:        "Standard Comfort Room",
			Type:        models.RoomStandard,
			Description: "Essential comfort at its best. A cozy room with all the amenities you need for a peaceful stay in the heart of Tirupati.",
			Price:       2100,
			Capacity:    2,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Room Service", "Double Bed"},
			Images:      []string{"room-standard"},
			FloorNumber: 1,
			Status:      models.RoomAvailable,
		},
		{
			ID:          "room-5",
			Name:        "Mountain View Deluxe",
			Type:        models.RoomDeluxe,
			Description: "Wake up to panoramic mountain views. This deluxe room combines modern luxury with the spiritual serenity of Tirumala.",
			Price:       3500,
			Capacity:    2,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Mountain View", "Balcony", "Room Service", "King Size Bed"},
			Images:      []string{"room-deluxe"},
			FloorNumber: 3,
			Status:      models.RoomOccupied,
		},
		{
			ID:          "room-6",
			Name:        "Executive Suite",
			Type:        models.RoomSuite,
			Description: "For the discerning traveler. Premium workspace, luxury amenities, and dedicated concierge service make this the perfect choice for business travelers.",
			Price:       4000,
			Capacity:    2,
			Amenities:   []string{"High-Speed WiFi", "Air Conditioning", "Smart TV", "Work Desk", "Mini Bar", "Room Service", "King Size Bed", "Lounge Access"},
			Images:      []string{"room-suite"},
			FloorNumber: 3,
			Status:      models.RoomCleaning,
		},
	}

	bookings := []*models.Booking{
		{
			ID:          "booking-1",
			GuestID:     "guest-1",
			GuestName:   "Priya Sharma",
			GuestEmail:  "priya@example.com",
			GuestPhone:  "+91 98765 12345",
			RoomID:      "room-2",
			RoomName:    "Deluxe Garden View",
			CheckIn:     "2024-10-15",
			CheckOut:    "2024-10-18",
			Guests:      2,
			TotalAmount: 9600,
			Status:      models.BookingConfirmed,
			CreatedAt:   mustParseTime("2024-10-10T10:00:00Z"),
		},
		{
			ID:              "booking-2",
			GuestID:         "guest-2",
			GuestName:       "Rahul Reddy",
			GuestEmail:      "rahul@example.com",
			GuestPhone:      "+91 87654 32109",
			RoomID:          "room-1",
			RoomName:        "The Royal Tirumala Suite",
			CheckIn:         "2024-10-20",
			CheckOut:        "2024-10-25",
			Guests:          2,
			TotalAmount:     22500,
			Status:          models.BookingPending,
			SpecialRequests: "Late check-in around 11 PM",
			CreatedAt:       mustParseTime("2024-10-12T14:30:00Z"),
		},
		{
			ID:          "booking-3",
			GuestID:     "guest-1",
			GuestName:   "Priya Sharma",
			GuestEmail:  "priya@example.com",
			GuestPhone:  "+91 98765 12345",
			RoomID:      "room-5",
			RoomName:    "Mountain View Deluxe",
			CheckIn:     "2024-10-08",
			CheckOut:    "2024-10-12",
			Guests:      2,
			TotalAmount: 14000,
			Status:      models.BookingCheckedIn,
			CreatedAt:   mustParseTime("2024-10-01T09:00:00Z"),
		},
	}

	reviews := []*models.Review{
		{
			ID:        "review-1",
			GuestID:   "guest-1",
			GuestName: "Sarah Jenkins",
			RoomID:    "room-1",
			RoomName:  "The Royal Tirumala Suite",
			Rating:    5,
			Comment:   "Absolutely loved our stay at Sri Hari Home Stay. The room was impeccable and the service was top-notch from arrival to departure. The staff went above and beyond to help with our darshan arrangements. Will definitely be returning!",
			Featured:  true,
			CreatedAt: mustParseTime("2024-10-12T10:00:00Z"),
		},
		{
			ID:        "review-2",
			GuestID:   "guest-2",
			GuestName: "Michael Jordan",
			RoomID:    "room-2",
			RoomName:  "Deluxe Garden View",
			Rating:    4,
			Comment:   "Great location and beautiful property. The rooms are very clean and spacious. Only reason for 4 stars was that the WiFi was a bit spotty. Otherwise a perfect stay for families.",
			Featured:  true,
			CreatedAt: mustParseTime("2024-10-08T15:30:00Z"),
		},
		{
			ID:        "review-3",
			GuestID:   "guest-1",
			GuestName: "Anita Desai",
			RoomID:    "room-3",
			RoomName:  "Family Grand Suite",
			Rating:    5,
			Comment:   "The home stay experience was authentic and heartfelt. Clean rooms, excellent service, and a safe environment for families. Highly recommend for pilgrims visiting Tirupati.",
			CreatedAt: mustParseTime("2024-09-28T11:00:00Z"),
		},
	}

	employees := []*models.Employee{
		{ID: "emp-1", Name: "Rajesh Kumar", Email: "rajesh@srihari.com", Phone: "+91 98765 00001", Role: models.EmpConcierge, Status: models.EmpOnShift, Rating: 4.8, Shift: "06:00 AM - 02:00 PM"},
		{ID: "emp-2", Name: "Priya Sharma", Email: "priyasharma@srihari.com", Phone: "+91 98765 00002", Role: models.EmpHousekeeping, Status: models.EmpOnShift, Rating: 5.0, Shift: "08:00 AM - 04:00 PM"},
		{ID: "emp-3", Name: "Arjun Mehta", Email: "arjun@srihari.com", Phone: "+91 98765 00003", Role: models.EmpFrontDesk, Status: models.EmpOffDuty, Rating: 4.2, Shift: "02:00 PM - 10:00 PM"},
		{ID: "emp-4", Name: "Vikram Patel", Email: "vikram@srihari.com", Phone: "+91 98765 00004", Role: models.EmpSecurity, Status: models.EmpOnShift, Rating: 4.5, Shift: "10:00 PM - 06:00 AM"},
	}

	// Users go last: its slot is the marker, so a partial seed stays
	// retryable.
	if err := st.Rooms.Replace(rooms); err != nil {
		return err
	}
	if err := st.Bookings.Replace(bookings); err != nil {
		return err
	}
	if err := st.Reviews.Replace(reviews); err != nil {
		return err
	}
	if err := st.Employees.Replace(employees); err != nil {
		return err
	}
	if err := st.Payments.Replace(nil); err != nil {
		return err
	}
	if err := st.Notifications.Replace(nil); err != nil {
		return err
	}
	if err := st.Notes.Replace(nil); err != nil {
		return err
	}
	if err := st.Users.Replace(users); err != nil {
		return err
	}

	log.Println("✅ Demo dataset seeded")
	return nil
}
