package domain

// Coach is the service-provider profile paired with a User of role coach.
// Coach.ID always equals the paired User.ID.
type Coach struct {
	ID              string `json:"id" bson:"_id"`
	Name            string `json:"name" bson:"name"`
	Specialty       string `json:"specialty" bson:"specialty"`
	Avatar          string `json:"avatar" bson:"avatar"`
	Bio             string `json:"bio" bson:"bio"`
	ExperienceYears int    `json:"experienceYears" bson:"experienceYears"`
	ClientsHelped   int    `json:"clientsHelped" bson:"clientsHelped"`
}

// Initial returns the first letter of the coach's name, used as a notification icon.
func (c Coach) Initial() string {
	for _, r := range c.Name {
		return string(r)
	}
	return ""
}

// CoachRegistration is the onboarding input for a new coach account.
type CoachRegistration struct {
	Name            string
	Email           string
	Phone           string
	Specialty       string
	Bio             string
	ExperienceYears int
	ClientsHelped   int
	Avatar          string
	PasswordHash    string
}
