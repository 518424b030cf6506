package domain

import "time"

// AccountType enumerates the kinds of accounts a user can register.
type AccountType string

const (
	AccountPersonal     AccountType = "PERSONAL"
	AccountAcademic     AccountType = "ACADEMIC"
	AccountProfessional AccountType = "PROFESSIONAL"
)

// MaritalStatus enumerates the self-reported marital status values.
type MaritalStatus string

const (
	Married MaritalStatus = "MARRIED"
	Single  MaritalStatus = "SINGLE"
	Widowed MaritalStatus = "WIDOWED"
)

// Location is a user's self-reported location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// User is the stored user record. PasswordHash holds an Argon2id PHC string;
// plaintext never reaches the store.
type User struct {
	ID            string
	Username      string
	PasswordHash  string // argon2id encoded
	FirstName     string
	LastName      string
	Email         string
	ProfilePhoto  string
	HeaderImage   string
	Biography     string
	DateOfBirth   *time.Time
	AccountType   AccountType
	MaritalStatus MaritalStatus
	Location      *Location
	Joined        time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Profile is the view of a User that crosses the trust boundary. It is built
// by field selection and carries no credential field, so a credential can
// never leak through serialization.
type Profile struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	FirstName     string        `json:"firstName,omitempty"`
	LastName      string        `json:"lastName,omitempty"`
	Email         string        `json:"email,omitempty"`
	ProfilePhoto  string        `json:"profilePhoto,omitempty"`
	HeaderImage   string        `json:"headerImage,omitempty"`
	Biography     string        `json:"biography,omitempty"`
	DateOfBirth   *time.Time    `json:"dateOfBirth,omitempty"`
	AccountType   AccountType   `json:"accountType,omitempty"`
	MaritalStatus MaritalStatus `json:"maritalStatus,omitempty"`
	Location      *Location     `json:"location,omitempty"`
	Joined        time.Time     `json:"joined"`
}

// NewProfile projects a stored User into its public view.
func NewProfile(u User) Profile {
	return Profile{
		ID:            u.ID,
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ProfilePhoto:  u.ProfilePhoto,
		HeaderImage:   u.HeaderImage,
		Biography:     u.Biography,
		DateOfBirth:   u.DateOfBirth,
		AccountType:   u.AccountType,
		MaritalStatus: u.MaritalStatus,
		Location:      u.Location,
		Joined:        u.Joined,
	}
}
