package domain

import "encoding/json"

// Roles
type Role string

const (
	RoleJobSeeker Role = "jobSeeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// User representa um usuário da plataforma (seeker, recruiter ou admin)
type User struct {
	ID                       string                `json:"id"`
	Username                 string                `json:"username"`
	Email                    string                `json:"email"`
	Password                 string                `json:"password,omitempty"` // Hash bcrypt; omitido nas respostas
	Role                     Role                  `json:"role"`
	ProfileImage             string                `json:"profileImage,omitempty"`
	TrainxProgress           map[string]any        `json:"trainxProgress"`
	AssessxScores            map[string]ScoreEntry `json:"assessxScores"`
	JobPostings              []string              `json:"jobPostings,omitempty"` // Apenas recruiters
	AppliedJobs              []string              `json:"appliedJobs"`
	AttemptsLeft             int                   `json:"attemptsLeft"`
	FreeAttemptUsed          bool                  `json:"freeAttemptUsed"`
	HasAccessedAssessXBefore bool                  `json:"hasAccessedAssessXBefore"`
}

// Sanitized devolve uma cópia sem o hash de senha
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// ScoreEntry é um resultado de avaliação AssessX, indexado por attemptId
type ScoreEntry struct {
	TotalScore        int    `json:"totalScore"`
	TotalQuestions    int    `json:"totalQuestions"`
	CategoryBreakdown any    `json:"categoryBreakdown"`
	DateCompleted     string `json:"dateCompleted"` // RFC3339
}

// CustomQuestion é uma pergunta definida pelo recruiter na vaga
type CustomQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Applicant é a referência cruzada de candidatura dentro da vaga
type Applicant struct {
	UserID        string `json:"userId"`
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
	AppliedDate   string `json:"appliedDate,omitempty"`
}

// Job representa uma vaga publicada no HireX
type Job struct {
	ID                  string           `json:"id"` // 32 chars hex
	Title               string           `json:"title"`
	Description         string           `json:"description"`
	Company             string           `json:"company"`
	Location            string           `json:"location"`
	Salary              string           `json:"salary"`
	Type                string           `json:"type"`
	WorkTypes           []string         `json:"workTypes,omitempty"`
	Experience          string           `json:"experience"`
	RequiredScore       int              `json:"requiredScore"`
	Qualifications      string           `json:"qualifications"`
	ApplicationDeadline string           `json:"applicationDeadline"`
	ContactEmail        string           `json:"contactEmail"`
	Skills              []string         `json:"skills"`
	CustomQuestions     []CustomQuestion `json:"customQuestions"`
	EmployerID          string           `json:"employerId"`
	Applicants          []Applicant      `json:"applicants"`
	PostedAt            string           `json:"postedAt"` // RFC3339
}

// Status inicial de candidatura. O enum de atualização é todo minúsculo
// (pending, reviewed, interview, rejected, hired); o valor inicial gravado
// é "Pending" — contrato observável, não normalizar.
const ApplicationStatusInitial = "Pending"

// ApplicationStatuses são os valores aceitos na atualização de status
var ApplicationStatuses = []string{"pending", "reviewed", "interview", "rejected", "hired"}

// Application representa uma candidatura a uma vaga
type Application struct {
	ID             string          `json:"id"` // 32 chars hex
	JobID          string          `json:"jobId"`
	UserID         string          `json:"userId"`
	ApplicantName  string          `json:"applicantName"`
	Email          string          `json:"email"`
	PersonalInfo   json.RawMessage `json:"personalInfo"`
	Education      json.RawMessage `json:"education"`
	WorkExperience json.RawMessage `json:"workExperience"`
	Skills         json.RawMessage `json:"skills"`
	CustomAnswers  json.RawMessage `json:"customAnswers"`
	Consent        json.RawMessage `json:"consent"`
	ResumePath     string          `json:"resumePath"` // Basename dentro de uploads/
	Status         string          `json:"status"`
	AppliedAt      string          `json:"appliedAt"` // RFC3339
}

// CourseModule é um módulo de curso do TrainX
type CourseModule struct {
	Name            string `json:"name"`
	Quiz            any    `json:"quiz,omitempty"`
	TimeLimit       int    `json:"timeLimit,omitempty"`
	VideoURL        string `json:"videoUrl,omitempty"`
	ReadingMaterial string `json:"readingMaterial,omitempty"`
}

// Course representa um curso do TrainX
type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Modules     []CourseModule `json:"modules"`
}
