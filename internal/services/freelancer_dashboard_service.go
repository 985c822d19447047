package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"talentlink/internal/logger"
	"talentlink/internal/marketplace"
	"talentlink/internal/models"
	"talentlink/internal/services/dto"
	"talentlink/internal/session"
	"talentlink/internal/validator"
	"talentlink/pkg/apperrors"
)

// FreelancerDashboardService is the freelancer workspace view-model:
// browsable projects with in-memory filtering, own proposals, contracts and
// received reviews.
type FreelancerDashboardService interface {
	Load(ctx context.Context, sess *session.Session) (*dto.FreelancerDashboard, error)
	FilterProjects(sess *session.Session, filter *dto.ProjectFilter) []models.Project
	ResetFilter(sess *session.Session) []models.Project
	SubmitProposal(ctx context.Context, sess *session.Session, draft *dto.ProposalDraft) (*models.Proposal, error)
	UpdateProfile(ctx context.Context, sess *session.Session, draft *dto.ProfileDraft) (*models.Profile, error)
	Teardown(sessionID string)
}

type freelancerState struct {
	mu      sync.Mutex
	profile *models.Profile

	// projects is the full browsable list; filtered is the current derived
	// view (nil means unfiltered). Filtering never re-fetches.
	projects []models.Project
	filtered []models.Project

	proposals []models.Proposal
	contracts []models.Contract
	reviews   []models.Review
}

type freelancerDashboardService struct {
	client   *marketplace.Client
	validate *validator.Validator

	mu     sync.RWMutex
	states map[string]*freelancerState
}

func NewFreelancerDashboardService(client *marketplace.Client, validate *validator.Validator) FreelancerDashboardService {
	return &freelancerDashboardService{
		client:   client,
		validate: validate,
		states:   make(map[string]*freelancerState),
	}
}

func (s *freelancerDashboardService) state(sess *session.Session) *freelancerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sess.ID]
	if !ok {
		st = &freelancerState{}
		s.states[sess.ID] = st
	}
	return st
}

func (s *freelancerDashboardService) Teardown(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

// ---------------- Initial load ----------------

// Load fans out the five independent fetches; one failure never blocks the
// others. The reviewee join for reviews tolerates the profile fetch failing:
// name matching uses the session display name, not the profile object.
func (s *freelancerDashboardService) Load(ctx context.Context, sess *session.Session) (*dto.FreelancerDashboard, error) {
	st := s.state(sess)
	c := s.client.WithToken(sess.Access)

	var (
		wg        sync.WaitGroup
		profile   *models.Profile
		projects  []models.Project
		proposals []models.Proposal
		contracts []models.Contract
		reviews   []models.Review
		errMu     sync.Mutex
		failed    []string
	)

	fail := func(collection string, err error) {
		logger.WithError(err).Error("freelancer dashboard fetch failed", "collection", collection)
		errMu.Lock()
		failed = append(failed, collection)
		errMu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		p, err := c.GetProfile(ctx, sess.ProfileID)
		if err != nil {
			fail("profile", err)
			return
		}
		profile = p
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListProjects(ctx)
		if err != nil {
			fail("projects", err)
			return
		}
		projects = all
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListProposals(ctx)
		if err != nil {
			fail("proposals", err)
			return
		}
		proposals = ownProposals(all, sess.ProfileID)
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListContracts(ctx)
		if err != nil {
			fail("contracts", err)
			return
		}
		contracts = freelancerContracts(all, sess)
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListReviews(ctx)
		if err != nil {
			fail("reviews", err)
			return
		}
		reviews = receivedReviews(all, sess)
	}()
	wg.Wait()

	st.mu.Lock()
	defer st.mu.Unlock()
	if profile != nil {
		st.profile = profile
	}
	if projects != nil {
		st.projects = projects
		st.filtered = nil
	}
	if proposals != nil {
		st.proposals = proposals
	}
	if contracts != nil {
		st.contracts = contracts
	}
	if reviews != nil {
		st.reviews = reviews
	}
	return &dto.FreelancerDashboard{
		Profile:   st.profile,
		Projects:  st.currentProjectsLocked(),
		Proposals: st.proposals,
		Contracts: st.contracts,
		Reviews:   st.reviews,
		Failed:    failed,
	}, nil
}

func (st *freelancerState) currentProjectsLocked() []models.Project {
	if st.filtered != nil {
		return st.filtered
	}
	return st.projects
}

func ownProposals(all []models.Proposal, profileID int) []models.Proposal {
	mine := make([]models.Proposal, 0, len(all))
	for _, p := range all {
		if p.Freelancer == profileID {
			mine = append(mine, p)
		}
	}
	return mine
}

// freelancerContracts prefers the stable freelancer id when the record
// carries one and falls back to the case-insensitive name match.
func freelancerContracts(all []models.Contract, sess *session.Session) []models.Contract {
	mine := make([]models.Contract, 0, len(all))
	for _, c := range all {
		if c.Freelancer == sess.ProfileID || (c.FreelancerName != "" && sess.MatchesName(c.FreelancerName)) {
			mine = append(mine, c)
		}
	}
	return mine
}

func receivedReviews(all []models.Review, sess *session.Session) []models.Review {
	mine := make([]models.Review, 0, len(all))
	for _, r := range all {
		if sess.MatchesName(r.RevieweeName) {
			mine = append(mine, r)
		}
	}
	return mine
}

// ---------------- Browse + filter ----------------

// FilterProjects runs entirely against the already-fetched list: skill and
// duration by case-insensitive substring, budget by numeric less-or-equal.
// An unparsable project budget counts as 0 and always passes.
func (s *freelancerDashboardService) FilterProjects(sess *session.Session, filter *dto.ProjectFilter) []models.Project {
	st := s.state(sess)
	st.mu.Lock()
	defer st.mu.Unlock()

	results := make([]models.Project, 0, len(st.projects))
	results = append(results, st.projects...)

	if q := strings.ToLower(strings.TrimSpace(filter.Skill)); q != "" {
		results = filterBy(results, func(p models.Project) bool {
			for _, sk := range p.SkillsRequired {
				if strings.Contains(strings.ToLower(sk.Name), q) {
					return true
				}
			}
			return false
		})
	}
	if b := strings.TrimSpace(filter.MaxBudget); b != "" {
		max := parseBudget(b)
		results = filterBy(results, func(p models.Project) bool {
			return parseBudget(p.Budget) <= max
		})
	}
	if q := strings.ToLower(strings.TrimSpace(filter.Duration)); q != "" {
		results = filterBy(results, func(p models.Project) bool {
			return strings.Contains(strings.ToLower(p.Duration), q)
		})
	}

	st.filtered = results
	return results
}

// ResetFilter restores the unfiltered list.
func (s *freelancerDashboardService) ResetFilter(sess *session.Session) []models.Project {
	st := s.state(sess)
	st.mu.Lock()
	defer st.mu.Unlock()
	st.filtered = nil
	return st.projects
}

func filterBy(projects []models.Project, keep func(models.Project) bool) []models.Project {
	out := projects[:0:0]
	for _, p := range projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// parseBudget treats anything unparsable as 0.
func parseBudget(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ---------------- Proposals ----------------

// SubmitProposal requires both a description and a price; on success the
// draft is cleared by the caller and the proposal list is re-fetched.
func (s *freelancerDashboardService) SubmitProposal(ctx context.Context, sess *session.Session, draft *dto.ProposalDraft) (*models.Proposal, error) {
	if err := s.validate.Validate(draft); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	c := s.client.WithToken(sess.Access)
	proposal, err := c.CreateProposal(ctx, models.ProposalWrite{
		Project:     draft.Project,
		Freelancer:  sess.ProfileID,
		Description: draft.Description,
		Price:       draft.Price,
	})
	if err != nil {
		return nil, err
	}

	st := s.state(sess)
	proposals, fetchErr := c.ListProposals(ctx)
	if fetchErr != nil {
		logger.WithError(fetchErr).Error("proposal re-fetch failed after submit")
		return proposal, nil
	}
	st.mu.Lock()
	st.proposals = ownProposals(proposals, sess.ProfileID)
	st.mu.Unlock()
	return proposal, nil
}

// ---------------- Profile ----------------

// UpdateProfile merges the draft and sends a full-resource PUT with the
// freelancer defaults the dashboard always supplied.
func (s *freelancerDashboardService) UpdateProfile(ctx context.Context, sess *session.Session, draft *dto.ProfileDraft) (*models.Profile, error) {
	if err := s.validate.Validate(draft); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	st := s.state(sess)
	c := s.client.WithToken(sess.Access)

	st.mu.Lock()
	current := st.profile
	st.mu.Unlock()
	if current == nil {
		fetched, err := c.GetProfile(ctx, sess.ProfileID)
		if err != nil {
			return nil, err
		}
		current = fetched
	}

	update := mergeProfileDraft(current, draft)
	update.IsClient = false
	update.IsFreelancer = true
	if update.HourlyRate == "" {
		update.HourlyRate = "500"
	}
	if update.Availability == "" {
		update.Availability = models.AvailabilityAvailable
	}
	if update.SkillNames == nil {
		update.SkillNames = skillNames(current.Skills)
	}

	if _, err := c.UpdateProfile(ctx, sess.ProfileID, update); err != nil {
		return nil, err
	}

	fresh, err := c.GetProfile(ctx, sess.ProfileID)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.profile = fresh
	st.mu.Unlock()
	return fresh, nil
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, sk := range skills {
		names = append(names, sk.Name)
	}
	return names
}
