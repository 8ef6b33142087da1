package seed

import (
	"time"

	"boardinghouse-backend/internal/model"
)

// fixtureTenant is one row of the demo roster. Every referenced room
// exists in the generated inventory and no room is referenced twice.
type fixtureTenant struct {
	Name    string
	Gender  model.Gender
	Room    string
	Contact string
	Status  model.TenantStatus
	MoveIn  time.Time
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// fixtureTenants is the reference roster: 24 tenants over 30 rooms,
// leaving 6 rooms available. Statuses: 20 Active, 2 Pending, 2 Overdue.
var fixtureTenants = []fixtureTenant{
	{Name: "Juan dela Cruz", Gender: model.GenderMale, Room: "101", Contact: "0917-123-4567", Status: model.StatusActive, MoveIn: date(2025, time.June, 15)},
	{Name: "Maria Santos", Gender: model.GenderFemale, Room: "102", Contact: "0918-234-5678", Status: model.StatusActive, MoveIn: date(2025, time.July, 1)},
	{Name: "Jose Rizal", Gender: model.GenderMale, Room: "103", Contact: "0919-345-6789", Status: model.StatusOverdue, MoveIn: date(2025, time.May, 20)},
	{Name: "Ana Reyes", Gender: model.GenderFemale, Room: "201", Contact: "0920-456-7890", Status: model.StatusActive, MoveIn: date(2025, time.August, 10)},
	{Name: "Pedro Garcia", Gender: model.GenderMale, Room: "202", Contact: "0921-567-8901", Status: model.StatusPending, MoveIn: date(2026, time.January, 25)},
	{Name: "Rosa Mendoza", Gender: model.GenderFemale, Room: "203", Contact: "0922-678-9012", Status: model.StatusActive, MoveIn: date(2025, time.September, 5)},
	{Name: "Carlo Aquino", Gender: model.GenderMale, Room: "301", Contact: "0923-789-0123", Status: model.StatusActive, MoveIn: date(2025, time.October, 12)},
	{Name: "Lea Salonga", Gender: model.GenderFemale, Room: "302", Contact: "0924-890-1234", Status: model.StatusOverdue, MoveIn: date(2025, time.April, 18)},
	{Name: "Marco Tan", Gender: model.GenderMale, Room: "303", Contact: "0925-901-2345", Status: model.StatusActive, MoveIn: date(2025, time.November, 22)},
	{Name: "Sofia Cruz", Gender: model.GenderFemale, Room: "104", Contact: "0926-012-3456", Status: model.StatusPending, MoveIn: date(2026, time.January, 30)},
	{Name: "Luis Bautista", Gender: model.GenderMale, Room: "105", Contact: "0927-111-2222", Status: model.StatusActive, MoveIn: date(2025, time.July, 15)},
	{Name: "Carmen Flores", Gender: model.GenderFemale, Room: "106", Contact: "0928-222-3333", Status: model.StatusActive, MoveIn: date(2025, time.June, 20)},
	{Name: "Ramon Torres", Gender: model.GenderMale, Room: "107", Contact: "0929-333-4444", Status: model.StatusActive, MoveIn: date(2025, time.August, 1)},
	{Name: "Elena Villanueva", Gender: model.GenderFemale, Room: "108", Contact: "0930-444-5555", Status: model.StatusActive, MoveIn: date(2025, time.May, 10)},
	{Name: "Miguel Navarro", Gender: model.GenderMale, Room: "109", Contact: "0931-555-6666", Status: model.StatusActive, MoveIn: date(2025, time.September, 12)},
	{Name: "Isabel Ramos", Gender: model.GenderFemale, Room: "110", Contact: "0932-666-7777", Status: model.StatusActive, MoveIn: date(2025, time.July, 28)},
	{Name: "Andres Lim", Gender: model.GenderMale, Room: "204", Contact: "0933-777-8888", Status: model.StatusActive, MoveIn: date(2025, time.June, 5)},
	{Name: "Patricia Soriano", Gender: model.GenderFemale, Room: "205", Contact: "0934-888-9999", Status: model.StatusActive, MoveIn: date(2025, time.October, 1)},
	{Name: "Gabriel Mercado", Gender: model.GenderMale, Room: "206", Contact: "0935-999-0000", Status: model.StatusActive, MoveIn: date(2025, time.August, 18)},
	{Name: "Teresa Aguilar", Gender: model.GenderFemale, Room: "207", Contact: "0936-000-1111", Status: model.StatusActive, MoveIn: date(2025, time.November, 5)},
	{Name: "Ricardo Fernandez", Gender: model.GenderMale, Room: "208", Contact: "0937-111-0000", Status: model.StatusActive, MoveIn: date(2025, time.September, 25)},
	{Name: "Diana Castillo", Gender: model.GenderFemale, Room: "304", Contact: "0938-222-1111", Status: model.StatusActive, MoveIn: date(2025, time.October, 15)},
	{Name: "Ernesto Domingo", Gender: model.GenderMale, Room: "305", Contact: "0939-333-2222", Status: model.StatusActive, MoveIn: date(2025, time.July, 8)},
	{Name: "Vivian Ocampo", Gender: model.GenderFemale, Room: "306", Contact: "0940-444-3333", Status: model.StatusActive, MoveIn: date(2025, time.August, 22)},
}
