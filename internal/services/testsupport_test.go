package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"talentlink/internal/marketplace"
	"talentlink/internal/models"
	"talentlink/internal/session"
	"talentlink/internal/validator"
)

// fakeMarketplace is an in-memory stand-in for the remote marketplace API.
// It serves the same routes with the same trailing-slash convention and
// lets tests flip individual endpoints into failure.
type fakeMarketplace struct {
	mu sync.Mutex

	profiles      []models.Profile
	projects      []models.Project
	proposals     []models.Proposal
	contracts     []models.Contract
	reviews       []models.Review
	notifications []models.Notification

	nextID int

	rejectLogin        bool
	failContractCreate bool
	failNotifPatch     bool
}

func newFakeMarketplace(t *testing.T) (*fakeMarketplace, *marketplace.Client) {
	t.Helper()
	f := &fakeMarketplace{nextID: 100}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, marketplace.NewClient(srv.URL, 5*time.Second)
}

func (f *fakeMarketplace) allocID() int {
	f.nextID++
	return f.nextID
}

func (f *fakeMarketplace) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	parts := strings.SplitN(path, "/", 2)
	resource := parts[0]
	id := 0
	if len(parts) == 2 {
		id, _ = strconv.Atoi(parts[1])
	}

	switch resource {
	case "login":
		if f.rejectLogin {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "No active account found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access": "fake-access", "refresh": "fake-refresh"})
	case "register":
		writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
	case "profiles":
		f.serveProfiles(w, r, id)
	case "projects":
		f.serveProjects(w, r, id)
	case "proposals":
		f.serveProposals(w, r, id)
	case "contracts":
		f.serveContracts(w, r, id)
	case "reviews":
		f.serveReviews(w, r)
	case "notifications":
		f.serveNotifications(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeMarketplace) serveProfiles(w http.ResponseWriter, r *http.Request, id int) {
	switch {
	case r.Method == http.MethodGet && id == 0:
		writeJSON(w, http.StatusOK, f.profiles)
	case r.Method == http.MethodGet:
		for _, p := range f.profiles {
			if p.ID == id {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodPut:
		var update models.ProfileUpdate
		json.NewDecoder(r.Body).Decode(&update)
		for i := range f.profiles {
			if f.profiles[i].ID == id {
				p := &f.profiles[i]
				p.UserName = update.UserName
				p.Email = update.Email
				p.Bio = update.Bio
				p.Portfolio = update.Portfolio
				p.HourlyRate = update.HourlyRate
				p.Availability = update.Availability
				p.IsClient = update.IsClient
				p.IsFreelancer = update.IsFreelancer
				if update.SkillNames != nil {
					p.Skills = nil
					for _, name := range update.SkillNames {
						p.Skills = append(p.Skills, models.Skill{ID: f.allocID(), Name: name})
					}
				}
				writeJSON(w, http.StatusOK, *p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeMarketplace) serveProjects(w http.ResponseWriter, r *http.Request, id int) {
	switch {
	case r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, f.projects)
	case r.Method == http.MethodPost:
		var write models.ProjectWrite
		json.NewDecoder(r.Body).Decode(&write)
		project := projectFromWrite(write)
		project.ID = f.allocID()
		for _, name := range write.Skills {
			project.SkillsRequired = append(project.SkillsRequired, models.Skill{ID: f.allocID(), Name: name})
		}
		f.projects = append(f.projects, project)
		writeJSON(w, http.StatusCreated, project)
	case r.Method == http.MethodPut:
		var write models.ProjectWrite
		json.NewDecoder(r.Body).Decode(&write)
		for i := range f.projects {
			if f.projects[i].ID == id {
				updated := projectFromWrite(write)
				updated.ID = id
				f.projects[i] = updated
				writeJSON(w, http.StatusOK, updated)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodDelete:
		for i := range f.projects {
			if f.projects[i].ID == id {
				f.projects = append(f.projects[:i], f.projects[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func projectFromWrite(write models.ProjectWrite) models.Project {
	return models.Project{
		Title:       write.Title,
		Description: write.Description,
		Budget:      write.Budget,
		Duration:    write.Duration,
		Owner:       write.Owner,
	}
}

func (f *fakeMarketplace) serveProposals(w http.ResponseWriter, r *http.Request, id int) {
	switch {
	case r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, f.proposals)
	case r.Method == http.MethodPost:
		var write models.ProposalWrite
		json.NewDecoder(r.Body).Decode(&write)
		proposal := models.Proposal{
			ID:          f.allocID(),
			Project:     write.Project,
			Freelancer:  write.Freelancer,
			Description: write.Description,
			Price:       write.Price,
			Status:      models.ProposalStatusPending,
		}
		for _, p := range f.projects {
			if p.ID == write.Project {
				proposal.ProjectTitle = p.Title
			}
		}
		f.proposals = append(f.proposals, proposal)
		writeJSON(w, http.StatusCreated, proposal)
	case r.Method == http.MethodPatch:
		var body map[string]models.ProposalStatus
		json.NewDecoder(r.Body).Decode(&body)
		for i := range f.proposals {
			if f.proposals[i].ID == id {
				f.proposals[i].Status = body["status"]
				writeJSON(w, http.StatusOK, f.proposals[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeMarketplace) serveContracts(w http.ResponseWriter, r *http.Request, id int) {
	switch {
	case r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, f.contracts)
	case r.Method == http.MethodPost:
		if f.failContractCreate {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var write models.ContractWrite
		json.NewDecoder(r.Body).Decode(&write)
		contract := models.Contract{
			ID:             f.allocID(),
			Proposal:       write.Proposal,
			ProjectTitle:   write.ProjectTitle,
			FreelancerName: write.FreelancerName,
			ClientName:     write.ClientName,
			StartDate:      write.StartDate,
			EndDate:        write.EndDate,
			Status:         write.Status,
			Terms:          write.Terms,
		}
		f.contracts = append(f.contracts, contract)
		writeJSON(w, http.StatusCreated, contract)
	case r.Method == http.MethodPatch:
		var body map[string]models.ContractStatus
		json.NewDecoder(r.Body).Decode(&body)
		for i := range f.contracts {
			if f.contracts[i].ID == id {
				f.contracts[i].Status = body["status"]
				writeJSON(w, http.StatusOK, f.contracts[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeMarketplace) serveReviews(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, f.reviews)
	case http.MethodPost:
		var write models.ReviewWrite
		json.NewDecoder(r.Body).Decode(&write)
		review := models.Review{
			ID:       f.allocID(),
			Reviewer: write.Reviewer,
			Reviewee: write.Reviewee,
			Project:  write.Project,
			Rating:   write.Rating,
			Comment:  write.Comment,
		}
		f.reviews = append(f.reviews, review)
		writeJSON(w, http.StatusCreated, review)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeMarketplace) serveNotifications(w http.ResponseWriter, r *http.Request, id int) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, f.notifications)
	case http.MethodPatch:
		if f.failNotifPatch {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		for i := range f.notifications {
			if f.notifications[i].ID == id {
				f.notifications[i].IsRead = true
				writeJSON(w, http.StatusOK, f.notifications[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ---------------- Session fixtures ----------------

func clientSession(profileID int, name string) *session.Session {
	return &session.Session{
		ID:                "test-client-session",
		Access:            "fake-access",
		LoggedUser:        name,
		ProfileID:         profileID,
		ProfileName:       name,
		ClientProfileName: name,
		Role:              session.RoleClient,
		CreatedAt:         time.Now(),
		ExpiresAt:         time.Now().Add(time.Hour),
	}
}

func freelancerSession(profileID int, name string) *session.Session {
	return &session.Session{
		ID:                    "test-freelancer-session",
		Access:                "fake-access",
		LoggedUser:            name,
		ProfileID:             profileID,
		ProfileName:           name,
		FreelancerProfileName: name,
		Role:                  session.RoleFreelancer,
		CreatedAt:             time.Now(),
		ExpiresAt:             time.Now().Add(time.Hour),
	}
}

func testValidator() *validator.Validator {
	return validator.New()
}

func strPtr(s string) *string {
	return &s
}
