package domain

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleRegular Role = "user"
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
)

// GuestID is the distinguished identity used for browsing without an account.
const GuestID = "guest"

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRegular, RoleAdmin, RoleCoach:
		return true
	default:
		return false
	}
}

// Goal is a user's declared fitness objective. It selects the plan template.
type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalWeightGain  Goal = "weight_gain"
	GoalMuscleBuild Goal = "muscle_build"
	GoalFitness     Goal = "fitness"
	GoalMaintenance Goal = "maintenance"
)

// Goals lists every known goal in display order.
var Goals = []Goal{GoalWeightLoss, GoalWeightGain, GoalMuscleBuild, GoalFitness, GoalMaintenance}

func (g Goal) Valid() bool {
	for _, known := range Goals {
		if g == known {
			return true
		}
	}
	return false
}

// User represents an account in the system (regular user, coach or admin).
type User struct {
	ID           string `json:"id" bson:"_id"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"` // Unique, compared case-insensitively
	Phone        string `json:"phone" bson:"phone"`
	Role         Role   `json:"role" bson:"role"`
	Avatar       string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash,omitempty"` // Never expose this via JSON

	// --- Physical / goal profile ---
	Age      *int     `json:"age,omitempty" bson:"age,omitempty"`
	WeightKg *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
	HeightCm *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Goal     *Goal    `json:"goal,omitempty" bson:"goal,omitempty"`
}

// ProfileComplete reports whether age, weight, height and goal are all set.
func (u *User) ProfileComplete() bool {
	return u.Age != nil && u.WeightKg != nil && u.HeightCm != nil && u.Goal != nil
}

func (u *User) IsGuest() bool {
	return u.ID == GuestID
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	if u.Age != nil {
		v := *u.Age
		u.Age = &v
	}
	if u.WeightKg != nil {
		v := *u.WeightKg
		u.WeightKg = &v
	}
	if u.HeightCm != nil {
		v := *u.HeightCm
		u.HeightCm = &v
	}
	if u.Goal != nil {
		v := *u.Goal
		u.Goal = &v
	}
	return u
}

// ProfilePatch carries the fields a user may change about themselves.
// Nil fields are left untouched. Id, role and email are not patchable.
type ProfilePatch struct {
	Name     *string  `json:"name,omitempty"`
	Phone    *string  `json:"phone,omitempty"`
	Avatar   *string  `json:"avatar,omitempty"`
	Age      *int     `json:"age,omitempty"`
	WeightKg *float64 `json:"weight,omitempty"`
	HeightCm *float64 `json:"height,omitempty"`
	Goal     *Goal    `json:"goal,omitempty"`
}

// Apply merges the patch into u and reports whether the resulting profile is complete.
func (p ProfilePatch) Apply(u *User) bool {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Age != nil {
		v := *p.Age
		u.Age = &v
	}
	if p.WeightKg != nil {
		v := *p.WeightKg
		u.WeightKg = &v
	}
	if p.HeightCm != nil {
		v := *p.HeightCm
		u.HeightCm = &v
	}
	if p.Goal != nil {
		v := *p.Goal
		u.Goal = &v
	}
	return u.ProfileComplete()
}

// UserRegistration is the input for creating a regular user. Field presence is
// the caller's responsibility.
type UserRegistration struct {
	Name         string
	Email        string
	Phone        string
	Avatar       string
	PasswordHash string
}
