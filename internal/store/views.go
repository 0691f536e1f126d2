package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"careerfair/internal/database"
)

// CandidateView denormalizes everything the candidate home page shows.
type CandidateView struct {
	Candidate    database.Candidate
	Applications []CandidateApplication
	Events       []database.Event
	Interviews   []database.Interview
}

// CandidateApplication is one application row with its position and the
// employing company's name resolved.
type CandidateApplication struct {
	Date                string
	Time                string
	PositionCompany     string
	PositionName        string
	PositionDescription string
	PositionLocation    string
}

// HostEvent is an organized event with the budget from the Organizes link.
type HostEvent struct {
	Event  database.Event
	Budget int
}

// HostView denormalizes one host with organized events and, for the invite
// picker, the full company list.
type HostView struct {
	Host      database.Host
	Events    []HostEvent
	Companies []CompanyOption
}

// CompanyView denormalizes one company with its recruiters, positions and
// event invitations.
type CompanyView struct {
	Company    database.Company
	Recruiters []database.Recruiter
	Positions  []database.Position
	Events     []database.Event
}

// RecruiterApplication is one approved application with candidate, position
// and the human-readable résumé status.
type RecruiterApplication struct {
	Date         string
	Time         string
	ResumeStatus string
	Candidate    database.Candidate
	Position     database.Position
}

// RecruiterView denormalizes one recruiter with company, approved
// applications and interviews.
type RecruiterView struct {
	Recruiter    database.Recruiter
	Company      database.Company
	Applications []RecruiterApplication
	Interviews   []database.Interview
}

// EventInput carries the event registration form fields.
type EventInput struct {
	Date        string
	Time        string
	Description string
	Location    string
	Capacity    int
	Budget      int
}

// resumeStatus derives the display string from the stored one-character flag.
func resumeStatus(flag string) string {
	if flag == "Y" {
		return "Resume submitted."
	}
	return "Resume unsubmitted or unknown."
}

// CandidateHome runs the candidate aggregation flow: candidate by email,
// applications with position and company name, attended events, interviews.
func (s *Store) CandidateHome(ctx context.Context, email string) (*CandidateView, error) {
	candidate, err := s.FindCandidateByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	apps, err := s.ListApplicationsByCandidate(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	view := &CandidateView{Candidate: candidate}
	for _, app := range apps {
		position, err := s.GetPosition(ctx, app.PositionID)
		if err != nil {
			return nil, err
		}
		company, err := s.GetCompany(ctx, position.CompanyID)
		if err != nil {
			return nil, err
		}
		view.Applications = append(view.Applications, CandidateApplication{
			Date:                app.Date,
			Time:                app.Time,
			PositionCompany:     company.Name,
			PositionName:        position.Name,
			PositionDescription: position.Description,
			PositionLocation:    position.Location,
		})
	}

	eventIDs, err := s.ListAttendedEventIDs(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	for _, id := range eventIDs {
		event, err := s.GetEvent(ctx, id)
		if err != nil {
			return nil, err
		}
		view.Events = append(view.Events, event)
	}

	view.Interviews, err = s.ListCandidateInterviews(ctx, candidate.ID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// HostHome runs the host aggregation flow for every host matching the name
// pair. Zero matches is a "No result found." condition, not a failure.
func (s *Store) HostHome(ctx context.Context, firstName, lastName string) ([]HostView, error) {
	hosts, err := s.FindHostsByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if len(hosts) == 0 {
		return nil, notFoundErr("No result found.")
	}
	views := make([]HostView, 0, len(hosts))
	for _, h := range hosts {
		view, err := s.buildHostView(ctx, h)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// HostHomeByID rebuilds the host view after a mutating flow. The event
// registration, invite and delete flows all return through here.
func (s *Store) HostHomeByID(ctx context.Context, hostID uint) ([]HostView, error) {
	host, err := s.GetHost(ctx, hostID)
	if err != nil {
		fe := AsFlowError(err)
		if fe.Kind == KindNotFound {
			// The mutation already happened; the miss renders in the
			// search slot, as a plain lookup miss would.
			return nil, &FlowError{Kind: KindNotFound, Message: "No result found.", Field: FieldSearch}
		}
		return nil, err
	}
	view, err := s.buildHostView(ctx, host)
	if err != nil {
		return nil, err
	}
	return []HostView{view}, nil
}

func (s *Store) buildHostView(ctx context.Context, host database.Host) (HostView, error) {
	view := HostView{Host: host}

	links, err := s.ListOrganizedEvents(ctx, host.ID)
	if err != nil {
		return view, err
	}
	for _, link := range links {
		event, err := s.GetEvent(ctx, link.EventID)
		if err != nil {
			return view, err
		}
		view.Events = append(view.Events, HostEvent{Event: event, Budget: link.Budget})
	}

	view.Companies, err = s.ListCompanies(ctx)
	if err != nil {
		return view, err
	}
	return view, nil
}

// RegisterEvent inserts the event and its Organizes link in one transaction,
// so a failure between the two statements leaves no orphaned event, then
// returns the refreshed host view.
func (s *Store) RegisterEvent(ctx context.Context, hostID uint, input EventInput) ([]HostView, error) {
	if strings.TrimSpace(input.Date) == "" {
		return nil, validationErr("Register event failed. Date should not be null.")
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		event := database.Event{
			Date:        input.Date,
			Time:        input.Time,
			Description: input.Description,
			Location:    input.Location,
			Capacity:    input.Capacity,
		}
		if err := tx.Create(&event).Error; err != nil {
			return classify(err, "Register event failed. Please check the submitted values.")
		}
		link := database.Organize{HostID: hostID, EventID: event.ID, Budget: input.Budget}
		if err := tx.Create(&link).Error; err != nil {
			return classify(err, "Register event failed. Please check the submitted values.")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.HostHomeByID(ctx, hostID)
}

// InviteCompany checks that both referenced rows exist before inserting the
// Invites link, then returns the refreshed host view.
func (s *Store) InviteCompany(ctx context.Context, hostID, companyID, eventID uint) ([]HostView, error) {
	if _, err := s.GetCompany(ctx, companyID); err != nil {
		if AsFlowError(err).Kind == KindNotFound {
			return nil, notFoundErr("Invite failed. Company id invalid. Company not exists.")
		}
		return nil, err
	}
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		if AsFlowError(err).Kind == KindNotFound {
			return nil, notFoundErr("Invite failed. Event id invalid. Event not exists.")
		}
		return nil, err
	}

	link := database.Invite{HostID: hostID, EventID: eventID, CompanyID: companyID}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, classify(err, "Invite failed. Please check the submitted values.")
	}
	return s.HostHomeByID(ctx, hostID)
}

// DeleteEvent checks existence, then removes the event together with its
// dependent Organizes, Invites and Attends rows in one transaction, then
// returns the refreshed host view. Cascading here keeps the store free of
// orphaned association rows even when the schema does not cascade.
func (s *Store) DeleteEvent(ctx context.Context, eventID, hostID uint) ([]HostView, error) {
	if _, err := s.GetEvent(ctx, eventID); err != nil {
		if AsFlowError(err).Kind == KindNotFound {
			return nil, notFoundErr("Delete failed. Event id invalid. Event not exists.")
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&database.Organize{}).Error; err != nil {
			return classify(err, "delete organizes")
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&database.Invite{}).Error; err != nil {
			return classify(err, "delete invites")
		}
		if err := tx.Where("event_id = ?", eventID).Delete(&database.Attend{}).Error; err != nil {
			return classify(err, "delete attends")
		}
		if err := tx.Delete(&database.Event{}, eventID).Error; err != nil {
			return classify(err, "delete event")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	views, err := s.HostHomeByID(ctx, hostID)
	if err != nil {
		if AsFlowError(err).Kind == KindNotFound {
			return nil, &FlowError{Kind: KindNotFound, Message: "Delete failed. No result found.", Field: FieldSearch}
		}
		return nil, err
	}
	return views, nil
}

// CompanyHome runs the company aggregation flow for every company with the
// given name.
func (s *Store) CompanyHome(ctx context.Context, name string) ([]CompanyView, error) {
	companies, err := s.FindCompaniesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, notFoundErr("No result found.")
	}
	views := make([]CompanyView, 0, len(companies))
	for _, c := range companies {
		view := CompanyView{Company: c}
		if view.Recruiters, err = s.ListRecruitersByCompany(ctx, c.ID); err != nil {
			return nil, err
		}
		if view.Positions, err = s.ListPositionsByCompany(ctx, c.ID); err != nil {
			return nil, err
		}
		if view.Events, err = s.ListInvitedEvents(ctx, c.ID); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// RecruiterHome runs the recruiter aggregation flow for every recruiter
// matching the name pair: company, approved applications with candidate,
// position and résumé status, and interviews.
func (s *Store) RecruiterHome(ctx context.Context, firstName, lastName string) ([]RecruiterView, error) {
	recruiters, err := s.FindRecruitersByName(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if len(recruiters) == 0 {
		return nil, notFoundErr("No result found.")
	}
	views := make([]RecruiterView, 0, len(recruiters))
	for _, r := range recruiters {
		view := RecruiterView{Recruiter: r}
		if view.Company, err = s.GetCompany(ctx, r.CompanyID); err != nil {
			return nil, err
		}
		appIDs, err := s.ListApprovedApplicationIDs(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range appIDs {
			app, err := s.GetApplication(ctx, id)
			if err != nil {
				return nil, err
			}
			candidate, err := s.GetCandidate(ctx, app.CandidateID)
			if err != nil {
				return nil, err
			}
			position, err := s.GetPosition(ctx, app.PositionID)
			if err != nil {
				return nil, err
			}
			view.Applications = append(view.Applications, RecruiterApplication{
				Date:         app.Date,
				Time:         app.Time,
				ResumeStatus: resumeStatus(app.Resume),
				Candidate:    candidate,
				Position:     position,
			})
		}
		if view.Interviews, err = s.ListRecruiterInterviews(ctx, r.ID); err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
