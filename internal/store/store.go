package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"careerfair/internal/database"
)

// Store issues parameterized statements against the relational schema and
// maps rows to typed records. Every executor runs exactly one statement;
// aggregation flows in views.go compose them.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// CompanyOption is the id+name pair the recruiter and invite forms offer in
// their company pickers.
type CompanyOption struct {
	ID   uint
	Name string
}

// SampleCandidateNames returns up to limit candidate display names for the
// front page.
func (s *Store) SampleCandidateNames(ctx context.Context, limit int) ([]string, error) {
	var candidates []database.Candidate
	if err := s.db.WithContext(ctx).Limit(limit).Find(&candidates).Error; err != nil {
		return nil, classify(err, "list candidates")
	}
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.FirstName+" "+c.LastName)
	}
	return names, nil
}

// FindCandidateByEmail looks up a candidate by the unique email key.
func (s *Store) FindCandidateByEmail(ctx context.Context, email string) (database.Candidate, error) {
	var c database.Candidate
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c, notFoundErr("No result found.")
	}
	if err != nil {
		return c, classify(err, "find candidate")
	}
	return c, nil
}

// CreateCandidate validates required names, then inserts. A duplicate email
// surfaces as a field-scoped uniqueness message.
func (s *Store) CreateCandidate(ctx context.Context, c database.Candidate) error {
	if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return validationErr("First name and last name should be not null.")
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return classifyInsert(err,
			"Integrity error. Email should be unique.",
			"Data error. Your input value may be too long.")
	}
	return nil
}

// CreateHost validates required names, then inserts.
func (s *Store) CreateHost(ctx context.Context, h database.Host) error {
	if strings.TrimSpace(h.FirstName) == "" || strings.TrimSpace(h.LastName) == "" {
		return validationErr("First name and last name should be not null.")
	}
	if err := s.db.WithContext(ctx).Create(&h).Error; err != nil {
		return classify(err, "Integrity error. Please check the submitted values.")
	}
	return nil
}

// CreateCompany validates the required name, then inserts. An overlong
// description is reported as a data error, distinct from integrity failures.
func (s *Store) CreateCompany(ctx context.Context, c database.Company) error {
	if strings.TrimSpace(c.Name) == "" {
		return validationErr("Name should be not null.")
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return classifyInsert(err,
			"Integrity error. Please check the submitted values.",
			"Data error. Your input value may be too long (check description).")
	}
	return nil
}

// CreateRecruiter validates required names and that the referenced company
// exists before inserting.
func (s *Store) CreateRecruiter(ctx context.Context, r database.Recruiter) error {
	if strings.TrimSpace(r.FirstName) == "" || strings.TrimSpace(r.LastName) == "" {
		return validationErr("First name and last name should be not null.")
	}
	if _, err := s.GetCompany(ctx, r.CompanyID); err != nil {
		fe := AsFlowError(err)
		if fe.Kind == KindNotFound {
			return notFoundErr("Company id invalid. Company not exists.")
		}
		return err
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return classify(err, "Integrity error. Please check the submitted values.")
	}
	return nil
}

func (s *Store) GetCandidate(ctx context.Context, id uint) (database.Candidate, error) {
	var c database.Candidate
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return c, classify(err, "get candidate")
	}
	return c, nil
}

func (s *Store) GetHost(ctx context.Context, id uint) (database.Host, error) {
	var h database.Host
	if err := s.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return h, classify(err, "get host")
	}
	return h, nil
}

func (s *Store) GetCompany(ctx context.Context, id uint) (database.Company, error) {
	var c database.Company
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return c, classify(err, "get company")
	}
	return c, nil
}

func (s *Store) GetPosition(ctx context.Context, id uint) (database.Position, error) {
	var p database.Position
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return p, classify(err, "get position")
	}
	return p, nil
}

func (s *Store) GetEvent(ctx context.Context, id uint) (database.Event, error) {
	var e database.Event
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return e, classify(err, "get event")
	}
	return e, nil
}

func (s *Store) GetApplication(ctx context.Context, id uint) (database.Application, error) {
	var a database.Application
	if err := s.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return a, classify(err, "get application")
	}
	return a, nil
}

// FindHostsByName returns every host matching the first/last name pair.
func (s *Store) FindHostsByName(ctx context.Context, firstName, lastName string) ([]database.Host, error) {
	var hosts []database.Host
	err := s.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Find(&hosts).Error
	if err != nil {
		return nil, classify(err, "find hosts")
	}
	return hosts, nil
}

// FindCompaniesByName returns every company with the given name.
func (s *Store) FindCompaniesByName(ctx context.Context, name string) ([]database.Company, error) {
	var companies []database.Company
	if err := s.db.WithContext(ctx).Where("name = ?", name).Find(&companies).Error; err != nil {
		return nil, classify(err, "find companies")
	}
	return companies, nil
}

// FindRecruitersByName returns every recruiter matching the first/last name pair.
func (s *Store) FindRecruitersByName(ctx context.Context, firstName, lastName string) ([]database.Recruiter, error) {
	var recruiters []database.Recruiter
	err := s.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ?", firstName, lastName).
		Find(&recruiters).Error
	if err != nil {
		return nil, classify(err, "find recruiters")
	}
	return recruiters, nil
}

// ListCompanies returns the id+name list used by form pickers.
func (s *Store) ListCompanies(ctx context.Context) ([]CompanyOption, error) {
	var options []CompanyOption
	err := s.db.WithContext(ctx).
		Model(&database.Company{}).
		Select("id", "name").
		Find(&options).Error
	if err != nil {
		return nil, classify(err, "list companies")
	}
	return options, nil
}

func (s *Store) ListApplicationsByCandidate(ctx context.Context, candidateID uint) ([]database.Application, error) {
	var apps []database.Application
	err := s.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Find(&apps).Error
	if err != nil {
		return nil, classify(err, "list applications")
	}
	return apps, nil
}

// ListAttendedEventIDs returns the event ids a candidate attends.
func (s *Store) ListAttendedEventIDs(ctx context.Context, candidateID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&database.Attend{}).
		Where("candidate_id = ?", candidateID).
		Pluck("event_id", &ids).Error
	if err != nil {
		return nil, classify(err, "list attended events")
	}
	return ids, nil
}

// ListOrganizedEvents returns the (event_id, budget) pairs for a host.
func (s *Store) ListOrganizedEvents(ctx context.Context, hostID uint) ([]database.Organize, error) {
	var links []database.Organize
	err := s.db.WithContext(ctx).
		Where("host_id = ?", hostID).
		Find(&links).Error
	if err != nil {
		return nil, classify(err, "list organized events")
	}
	return links, nil
}

func (s *Store) ListRecruitersByCompany(ctx context.Context, companyID uint) ([]database.Recruiter, error) {
	var recruiters []database.Recruiter
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&recruiters).Error
	if err != nil {
		return nil, classify(err, "list recruiters")
	}
	return recruiters, nil
}

func (s *Store) ListPositionsByCompany(ctx context.Context, companyID uint) ([]database.Position, error) {
	var positions []database.Position
	err := s.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Find(&positions).Error
	if err != nil {
		return nil, classify(err, "list positions")
	}
	return positions, nil
}

// ListInvitedEvents returns the events a company was invited to.
func (s *Store) ListInvitedEvents(ctx context.Context, companyID uint) ([]database.Event, error) {
	var events []database.Event
	err := s.db.WithContext(ctx).
		Model(&database.Event{}).
		Select("events.*").
		Joins("INNER JOIN invites ON invites.event_id = events.id").
		Where("invites.company_id = ?", companyID).
		Find(&events).Error
	if err != nil {
		return nil, classify(err, "list invited events")
	}
	return events, nil
}

// ListApprovedApplicationIDs returns the application ids a recruiter approved.
func (s *Store) ListApprovedApplicationIDs(ctx context.Context, recruiterID uint) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&database.Approve{}).
		Where("recruiter_id = ?", recruiterID).
		Pluck("application_id", &ids).Error
	if err != nil {
		return nil, classify(err, "list approved applications")
	}
	return ids, nil
}

// ListCandidateInterviews returns interviews joined through the candidate's
// applications.
func (s *Store) ListCandidateInterviews(ctx context.Context, candidateID uint) ([]database.Interview, error) {
	var interviews []database.Interview
	err := s.db.WithContext(ctx).
		Model(&database.Interview{}).
		Select("interviews.*").
		Joins("INNER JOIN applications ON applications.id = interviews.application_id").
		Where("applications.candidate_id = ?", candidateID).
		Find(&interviews).Error
	if err != nil {
		return nil, classify(err, "list candidate interviews")
	}
	return interviews, nil
}

// ListRecruiterInterviews returns interviews joined through applications the
// recruiter approved.
func (s *Store) ListRecruiterInterviews(ctx context.Context, recruiterID uint) ([]database.Interview, error) {
	var interviews []database.Interview
	err := s.db.WithContext(ctx).
		Model(&database.Interview{}).
		Select("interviews.*").
		Joins("INNER JOIN applications ON applications.id = interviews.application_id").
		Joins("INNER JOIN approves ON approves.application_id = applications.id").
		Where("approves.recruiter_id = ?", recruiterID).
		Find(&interviews).Error
	if err != nil {
		return nil, classify(err, "list recruiter interviews")
	}
	return interviews, nil
}
