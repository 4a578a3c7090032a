package domain

import "encoding/json"

type UserRepository interface {
	Users() ([]User, error)
	SaveUsers(users []User) error
	GetUserByID(id string) (User, error)
	GetUserByUsernameOrEmail(login string) (User, error)
}

type JobRepository interface {
	Jobs() ([]Job, error)
	SaveJobs(jobs []Job) error
	GetJobByID(id string) (Job, error)
}

type ApplicationRepository interface {
	Applications() ([]Application, error)
	SaveApplications(apps []Application) error
	GetApplicationByID(id string) (Application, error)
}

type CourseRepository interface {
	Courses() ([]Course, error)
}

// ContentRepository serve as coleções de conteúdo estático (pass-through)
type ContentRepository interface {
	Questions() (json.RawMessage, error)
	Testimonials() (json.RawMessage, error)
	FeatureCards() (json.RawMessage, error)
	ImpactMetrics() (json.RawMessage, error)
}

type NewsletterRepository interface {
	Subscribers() ([]string, error)
	SaveSubscribers(emails []string) error
}
