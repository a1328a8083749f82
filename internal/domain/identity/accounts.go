package identity

import "strings"

// DemoAccounts is the fixed credential list used in strict mode. The
// patient account is linked to seed patient "1" so its role-scoped
// views resolve to real demo data.
var DemoAccounts = []Account{
	{
		ID:       "demo-doctor",
		Email:    "doctor@demo.ru",
		Password: "doctor123",
		Name:     "Доктор Демо",
		Role:     "doctor",
	},
	{
		ID:        "demo-patient",
		Email:     "patient@demo.ru",
		Password:  "patient123",
		Name:      "Иванов Иван Петрович",
		Role:      "patient",
		PatientID: "1",
	},
	{
		ID:       "demo-admin",
		Email:    "admin@demo.ru",
		Password: "admin123",
		Name:     "Администратор Демо",
		Role:     "admin",
	},
}

func findAccount(email, password string) (Account, bool) {
	for _, a := range DemoAccounts {
		if strings.EqualFold(a.Email, email) && a.Password == password {
			return a, true
		}
	}
	return Account{}, false
}

// inferRole guesses a role from the email in permissive mode, where
// any credentials are accepted and a user is fabricated on the spot.
func inferRole(email string) string {
	lower := strings.ToLower(email)
	switch {
	case strings.Contains(lower, "admin"):
		return "admin"
	case strings.Contains(lower, "patient"):
		return "patient"
	default:
		return "doctor"
	}
}
