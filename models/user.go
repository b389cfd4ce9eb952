package models

import "time"

type User struct {
	ID              int       `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	ContactNo       string    `json:"contact_no"`
	GenderID        int       `json:"gender_id"`
	DateOfBirth     string    `json:"date_of_birth"`
	CurrentStatusID int       `json:"current_status_id"`
	Password        string    `json:"-"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Address struct {
	ID        int    `json:"address_id"`
	UserID    int    `json:"-"`
	Label     string `json:"label"`
	DoorNo    string `json:"door_no"`
	Street    string `json:"street"`
	Area      string `json:"area"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
	CountryID int    `json:"country_id"`
	StateID   int    `json:"state_id"`
}

// AddressView is an Address joined to its country and state names.
type AddressView struct {
	Address
	CountryName string `json:"country_name"`
	StateName   string `json:"state_name"`
}

// ProfileView is the denormalized record returned by the profile show
// endpoint: user scalars, reference names and all owned addresses.
// A user with no addresses gets an empty list, never a null entry.
type ProfileView struct {
	UserID            int           `json:"user_id"`
	FirstName         string        `json:"first_name"`
	LastName          string        `json:"last_name"`
	Email             string        `json:"email"`
	ContactNo         string        `json:"contact_no"`
	GenderID          int           `json:"gender_id"`
	GenderName        string        `json:"gender_name"`
	DateOfBirth       string        `json:"date_of_birth"`
	CurrentStatusID   int           `json:"current_status_id"`
	CurrentStatusName string        `json:"current_status_name"`
	Addresses         []AddressView `json:"addresses"`
}
