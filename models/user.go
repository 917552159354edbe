package models

import "time"

// UserRole identifies what a user is allowed to do on the platform.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
	RoleAdmin    UserRole = "admin"
)

// GeoPoint is a plain lat/lng pair.
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// User represents a customer, vendor or admin. Phone is the login identifier
// and is globally unique. OTP fields are transient: set on every send,
// cleared on successful verification. The OTP itself is stored as a bcrypt
// hash, never in clear.
type User struct {
	ID        string     `bson:"id" json:"id"`
	FirstName string     `bson:"firstName" json:"firstName"`
	LastName  string     `bson:"lastName" json:"lastName"`
	Phone     string     `bson:"phone" json:"phone"`
	Email     string     `bson:"email,omitempty" json:"email,omitempty"`
	Role      UserRole   `bson:"role" json:"role"`
	OTPHash   string     `bson:"otpHash,omitempty" json:"-"`
	OTPExpiry *time.Time `bson:"otpExpiry,omitempty" json:"-"`

	City     string    `bson:"city,omitempty" json:"city,omitempty"`
	Address  string    `bson:"address,omitempty" json:"address,omitempty"`
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`

	// Vendor profile fields.
	PoojariCategory string   `bson:"poojariCategory,omitempty" json:"poojariCategory,omitempty"`
	Languages       []string `bson:"languages,omitempty" json:"languages,omitempty"`
	StudyPlace      string   `bson:"studyPlace,omitempty" json:"studyPlace,omitempty"`
	Experience      int      `bson:"experience,omitempty" json:"experience,omitempty"`
	ProfileImage    string   `bson:"profileImage,omitempty" json:"profileImage,omitempty"`

	IsApproved bool `bson:"isApproved" json:"isApproved"`
	IsBlocked  bool `bson:"isBlocked" json:"isBlocked"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins the name parts for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
