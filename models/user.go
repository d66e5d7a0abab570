package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleWorker    Role = "worker"
	RoleCommittee Role = "committee"
	RoleAdmin     Role = "admin"
)

// ParseRole validates a role string coming from signup or a token claim.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCitizen, RoleWorker, RoleCommittee, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Capability is a coarse permission checked at the service boundary instead
// of comparing role strings in every handler.
type Capability string

const (
	CapSubmit     Capability = "submit"     // create waste reports
	CapTransition Capability = "transition" // move reports through the status machine
	CapAggregate  Capability = "aggregate"  // system-wide dashboards and exports
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleCitizen:   {CapSubmit: true},
	RoleWorker:    {CapSubmit: true, CapTransition: true},
	RoleCommittee: {CapSubmit: true, CapTransition: true},
	RoleAdmin:     {CapSubmit: true, CapTransition: true, CapAggregate: true},
}

func (r Role) Can(cap Capability) bool {
	return roleCapabilities[r][cap]
}

// User represents a portal account. The role is fixed at signup.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      Role               `bson:"role" json:"role"`
	Area      string             `bson:"area,omitempty" json:"area,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
