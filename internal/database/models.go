package database

// Candidate is a job seeker. Email doubles as the natural lookup key and must
// be unique.
type Candidate struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"uniqueIndex;size:128"`
}

// Host organizes career-fair events on behalf of an organization.
type Host struct {
	ID           uint   `gorm:"primaryKey"`
	FirstName    string `gorm:"size:64"`
	LastName     string `gorm:"size:64"`
	Organization string `gorm:"size:128"`
}

// Company employs recruiters and offers positions.
type Company struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128"`
	Description string `gorm:"size:255"`
	Location    string `gorm:"size:128"`
}

// Recruiter belongs to one company and approves applications.
type Recruiter struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:64"`
	LastName  string `gorm:"size:64"`
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"size:128"`
	Title     string `gorm:"size:64"`
	CompanyID uint   `gorm:"index"`
}

// Position is an opening offered by a company.
type Position struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:128"`
	Description string `gorm:"size:255"`
	Location    string `gorm:"size:128"`
	CompanyID   uint   `gorm:"index"`
}

// Event is a career-fair gathering. Date and time arrive as raw form strings
// and are stored as-is.
type Event struct {
	ID          uint   `gorm:"primaryKey"`
	Date        string `gorm:"size:32"`
	Time        string `gorm:"size:32"`
	Description string `gorm:"size:255"`
	Location    string `gorm:"size:128"`
	Capacity    int
}

// Application links a candidate to a position. Resume is a single-character
// flag: "Y" means a résumé was submitted.
type Application struct {
	ID          uint   `gorm:"primaryKey"`
	CandidateID uint   `gorm:"index"`
	PositionID  uint   `gorm:"index"`
	Date        string `gorm:"size:32"`
	Time        string `gorm:"size:32"`
	Resume      string `gorm:"size:1"`
}

// Interview is scheduled against one application.
type Interview struct {
	ID            uint   `gorm:"primaryKey"`
	ApplicationID uint   `gorm:"index"`
	Date          string `gorm:"size:32"`
	Time          string `gorm:"size:32"`
	Location      string `gorm:"size:128"`
}

// Organize records that a host runs an event with a given budget.
type Organize struct {
	HostID  uint `gorm:"primaryKey;autoIncrement:false"`
	EventID uint `gorm:"primaryKey;autoIncrement:false"`
	Budget  int
}

// Invite records that a host invited a company to an event.
type Invite struct {
	HostID    uint `gorm:"primaryKey;autoIncrement:false"`
	EventID   uint `gorm:"primaryKey;autoIncrement:false"`
	CompanyID uint `gorm:"primaryKey;autoIncrement:false"`
}

// Attend records that a candidate attends an event.
type Attend struct {
	CandidateID uint `gorm:"primaryKey;autoIncrement:false"`
	EventID     uint `gorm:"primaryKey;autoIncrement:false"`
}

// Approve records that a recruiter approved an application.
type Approve struct {
	RecruiterID   uint `gorm:"primaryKey;autoIncrement:false"`
	ApplicationID uint `gorm:"primaryKey;autoIncrement:false"`
}
