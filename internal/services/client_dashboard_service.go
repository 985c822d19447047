package services

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"talentlink/internal/logger"
	"talentlink/internal/marketplace"
	"talentlink/internal/models"
	"talentlink/internal/services/dto"
	"talentlink/internal/session"
	"talentlink/internal/validator"
	"talentlink/pkg/apperrors"
)

// placeholderEndDate seeds new contracts; the marketplace has no contract
// negotiation flow, so the end date is a fixed placeholder.
const placeholderEndDate = "2025-12-31"

const standardTerms = "Standard terms apply."

// ClientDashboardService is the client workspace view-model: it mirrors the
// remote collections in memory, narrows them to the session identity and
// runs the client-side mutations. Every mutation is a remote write followed
// by a re-fetch; there are no optimistic updates.
type ClientDashboardService interface {
	Load(ctx context.Context, sess *session.Session) (*dto.ClientDashboard, error)
	SaveProject(ctx context.Context, sess *session.Session, draft *dto.ProjectDraft) (*dto.ClientDashboard, error)
	EditProject(sess *session.Session, projectID int) (*dto.ProjectDraft, error)
	DeleteProject(ctx context.Context, sess *session.Session, projectID int) error
	DecideProposal(ctx context.Context, sess *session.Session, proposalID int, status models.ProposalStatus) error
	RetryContract(ctx context.Context, sess *session.Session, proposalID int) error
	CompleteContract(ctx context.Context, sess *session.Session, contractID int) error
	SubmitReview(ctx context.Context, sess *session.Session, draft *dto.ReviewDraft) (*models.Review, error)
	UpdateProfile(ctx context.Context, sess *session.Session, draft *dto.ProfileDraft) (*models.Profile, error)
	Teardown(sessionID string)
}

// clientState is the per-session in-memory view-model state.
type clientState struct {
	mu        sync.Mutex
	profile   *models.Profile
	projects  []models.Project
	proposals []models.Proposal
	contracts []models.Contract

	activeView string
	editingID  int

	// pendingContracts holds contract payloads whose POST failed after the
	// proposal accept succeeded, keyed by proposal id, awaiting retry.
	pendingContracts map[int]models.ContractWrite

	// reviewed guards against duplicate review submission for one contract
	// within this session.
	reviewed map[int]bool
}

type clientDashboardService struct {
	client   *marketplace.Client
	validate *validator.Validator

	mu     sync.RWMutex
	states map[string]*clientState
}

func NewClientDashboardService(client *marketplace.Client, validate *validator.Validator) ClientDashboardService {
	return &clientDashboardService{
		client:   client,
		validate: validate,
		states:   make(map[string]*clientState),
	}
}

func (s *clientDashboardService) state(sess *session.Session) *clientState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[sess.ID]
	if !ok {
		st = &clientState{
			activeView:       "profile",
			pendingContracts: make(map[int]models.ContractWrite),
			reviewed:         make(map[int]bool),
		}
		s.states[sess.ID] = st
	}
	return st
}

// Teardown drops the view-model state. In-flight fetches still holding the
// old state object write into an orphan, which is a harmless no-op.
func (s *clientDashboardService) Teardown(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
}

// ---------------- Initial load ----------------

// Load fetches profile, projects, proposals and contracts concurrently.
// Each fetch is independent: a failure is logged, reported in Failed and
// leaves that collection in its last-known (or empty) state.
func (s *clientDashboardService) Load(ctx context.Context, sess *session.Session) (*dto.ClientDashboard, error) {
	st := s.state(sess)
	c := s.client.WithToken(sess.Access)

	var (
		wg        sync.WaitGroup
		profile   *models.Profile
		projects  []models.Project
		proposals []models.Proposal
		contracts []models.Contract
		errMu     sync.Mutex
		failed    []string
	)

	fail := func(collection string, err error) {
		logger.WithError(err).Error("client dashboard fetch failed", "collection", collection)
		errMu.Lock()
		failed = append(failed, collection)
		errMu.Unlock()
	}

	wg.Add(4)
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
		projects = ownedProjects(all, sess.ProfileID)
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListProposals(ctx)
		if err != nil {
			fail("proposals", err)
			return
		}
		proposals = all
	}()
	go func() {
		defer wg.Done()
		all, err := c.ListContracts(ctx)
		if err != nil {
			fail("contracts", err)
			return
		}
		contracts = clientContracts(all, sess)
	}()
	wg.Wait()

	st.mu.Lock()
	defer st.mu.Unlock()
	if profile != nil {
		st.profile = profile
	}
	if projects != nil {
		st.projects = projects
	}
	if proposals != nil {
		st.proposals = proposals
	}
	if contracts != nil {
		st.contracts = contracts
	}
	return s.snapshotLocked(st, failed), nil
}

func (s *clientDashboardService) snapshotLocked(st *clientState, failed []string) *dto.ClientDashboard {
	return &dto.ClientDashboard{
		Profile:    st.profile,
		Projects:   st.projects,
		Proposals:  st.proposals,
		Contracts:  st.contracts,
		ActiveView: st.activeView,
		Failed:     failed,
	}
}

// ownedProjects narrows the global list to the session's own projects by
// numeric owner comparison.
func ownedProjects(all []models.Project, profileID int) []models.Project {
	owned := make([]models.Project, 0, len(all))
	for _, p := range all {
		if p.Owner == profileID {
			owned = append(owned, p)
		}
	}
	return owned
}

// clientContracts narrows contracts by case-insensitive client_name match
// against the session display name. Name-based correlation is a marketplace
// contract; ids are not present on the client side of the record.
func clientContracts(all []models.Contract, sess *session.Session) []models.Contract {
	mine := make([]models.Contract, 0, len(all))
	for _, c := range all {
		if sess.MatchesName(c.ClientName) {
			mine = append(mine, c)
		}
	}
	return mine
}

// ---------------- Projects ----------------

// EditProject loads an owned project into the draft form and switches the
// view to the post-project tab.
func (s *clientDashboardService) EditProject(sess *session.Session, projectID int) (*dto.ProjectDraft, error) {
	st := s.state(sess)
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, p := range st.projects {
		if p.ID == projectID {
			skills := make([]string, 0, len(p.SkillsRequired))
			for _, sk := range p.SkillsRequired {
				skills = append(skills, sk.Name)
			}
			st.editingID = p.ID
			st.activeView = "post"
			return &dto.ProjectDraft{
				Title:       p.Title,
				Description: p.Description,
				Budget:      p.Budget,
				Duration:    p.Duration,
				Skills:      skills,
			}, nil
		}
	}
	return nil, apperrors.NewNotFoundError("projects", "Project not found in your workspace")
}

// SaveProject creates a new project or updates the one being edited. On
// success the draft is cleared and the active view switches to the project
// list; on failure the edit state stays so the caller can retry the draft.
func (s *clientDashboardService) SaveProject(ctx context.Context, sess *session.Session, draft *dto.ProjectDraft) (*dto.ClientDashboard, error) {
	if err := s.validate.Validate(draft); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	st := s.state(sess)
	st.mu.Lock()
	editingID := st.editingID
	st.mu.Unlock()

	write := models.ProjectWrite{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Budget:      draft.Budget,
		Duration:    draft.Duration,
		Owner:       sess.ProfileID,
		Skills:      trimSkills(draft.Skills),
	}

	c := s.client.WithToken(sess.Access)
	var err error
	if editingID != 0 {
		_, err = c.UpdateProject(ctx, editingID, write)
	} else {
		_, err = c.CreateProject(ctx, write)
	}
	if err != nil {
		// Draft stays with the caller for retry; nothing local changed.
		return nil, err
	}

	projects, fetchErr := c.ListProjects(ctx)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.editingID = 0
	st.activeView = "my-projects"
	var failed []string
	if fetchErr != nil {
		logger.WithError(fetchErr).Error("project re-fetch failed after save")
		failed = append(failed, "projects")
	} else {
		st.projects = ownedProjects(projects, sess.ProfileID)
	}
	return s.snapshotLocked(st, failed), nil
}

func (s *clientDashboardService) DeleteProject(ctx context.Context, sess *session.Session, projectID int) error {
	c := s.client.WithToken(sess.Access)
	if err := c.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	projects, err := c.ListProjects(ctx)
	if err != nil {
		logger.WithError(err).Error("project re-fetch failed after delete")
		return nil
	}
	st := s.state(sess)
	st.mu.Lock()
	st.projects = ownedProjects(projects, sess.ProfileID)
	st.mu.Unlock()
	return nil
}

func trimSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, sk := range skills {
		if trimmed := strings.TrimSpace(sk); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ---------------- Proposals and contracts ----------------

// DecideProposal flips a pending proposal to accepted or rejected. Accepting
// additionally creates the contract. The two writes are not atomic upstream:
// when the contract POST fails after the accept succeeded, the payload is
// parked for RetryContract and the caller gets CONTRACT_PENDING instead of a
// generic failure.
func (s *clientDashboardService) DecideProposal(ctx context.Context, sess *session.Session, proposalID int, status models.ProposalStatus) error {
	if status != models.ProposalStatusAccepted && status != models.ProposalStatusRejected {
		return apperrors.New(apperrors.CodeInvalidStatus, "proposals",
			"Proposal can only move to accepted or rejected", http.StatusBadRequest)
	}

	st := s.state(sess)
	proposal, err := s.findProposal(ctx, sess, st, proposalID)
	if err != nil {
		return err
	}
	if proposal.Status != models.ProposalStatusPending {
		return apperrors.New(apperrors.CodeInvalidStatus, "proposals",
			"Proposal is no longer pending", http.StatusConflict)
	}

	c := s.client.WithToken(sess.Access)
	if err := c.PatchProposalStatus(ctx, proposalID, status); err != nil {
		return err
	}

	if status == models.ProposalStatusAccepted {
		write := models.ContractWrite{
			Proposal:       proposal.ID,
			ProjectTitle:   proposal.ProjectTitle,
			FreelancerName: proposal.FreelancerName,
			ClientName:     sess.DisplayName(),
			StartDate:      time.Now().Format("2006-01-02"),
			EndDate:        placeholderEndDate,
			Status:         models.ContractStatusActive,
			Terms:          standardTerms,
		}
		if _, err := c.CreateContract(ctx, write); err != nil {
			st.mu.Lock()
			st.pendingContracts[proposal.ID] = write
			st.mu.Unlock()
			s.refreshProposals(ctx, sess, st)
			return apperrors.Wrap(err, apperrors.CodeContractPending, "contracts",
				"Proposal accepted; contract creation pending retry", http.StatusBadGateway).
				WithDetails(map[string]int{"proposal_id": proposal.ID})
		}
		s.refreshContracts(ctx, sess, st)
	}

	s.refreshProposals(ctx, sess, st)
	return nil
}

// RetryContract re-runs a contract creation parked by a partial accept.
func (s *clientDashboardService) RetryContract(ctx context.Context, sess *session.Session, proposalID int) error {
	st := s.state(sess)
	st.mu.Lock()
	write, ok := st.pendingContracts[proposalID]
	st.mu.Unlock()
	if !ok {
		return apperrors.NewNotFoundError("contracts", "No pending contract for this proposal")
	}

	c := s.client.WithToken(sess.Access)
	if _, err := c.CreateContract(ctx, write); err != nil {
		return apperrors.Wrap(err, apperrors.CodeContractPending, "contracts",
			"Contract creation still failing; retry again", http.StatusBadGateway).
			WithDetails(map[string]int{"proposal_id": proposalID})
	}

	st.mu.Lock()
	delete(st.pendingContracts, proposalID)
	st.mu.Unlock()
	s.refreshContracts(ctx, sess, st)
	return nil
}

// CompleteContract marks a contract completed. The transition is one-way
// and repeating it is harmless; the marketplace state does not change.
func (s *clientDashboardService) CompleteContract(ctx context.Context, sess *session.Session, contractID int) error {
	c := s.client.WithToken(sess.Access)
	if err := c.PatchContractStatus(ctx, contractID, models.ContractStatusCompleted); err != nil {
		return err
	}
	s.refreshContracts(ctx, sess, s.state(sess))
	return nil
}

func (s *clientDashboardService) findProposal(ctx context.Context, sess *session.Session, st *clientState, proposalID int) (*models.Proposal, error) {
	st.mu.Lock()
	for i := range st.proposals {
		if st.proposals[i].ID == proposalID {
			p := st.proposals[i]
			st.mu.Unlock()
			return &p, nil
		}
	}
	st.mu.Unlock()

	// Not in the mirror yet; reconcile with the marketplace.
	proposals, err := s.client.WithToken(sess.Access).ListProposals(ctx)
	if err != nil {
		return nil, err
	}
	st.mu.Lock()
	st.proposals = proposals
	st.mu.Unlock()
	for i := range proposals {
		if proposals[i].ID == proposalID {
			return &proposals[i], nil
		}
	}
	return nil, apperrors.NewNotFoundError("proposals", "Proposal not found")
}

func (s *clientDashboardService) refreshProposals(ctx context.Context, sess *session.Session, st *clientState) {
	proposals, err := s.client.WithToken(sess.Access).ListProposals(ctx)
	if err != nil {
		logger.WithError(err).Error("proposal re-fetch failed")
		return
	}
	st.mu.Lock()
	st.proposals = proposals
	st.mu.Unlock()
}

func (s *clientDashboardService) refreshContracts(ctx context.Context, sess *session.Session, st *clientState) {
	contracts, err := s.client.WithToken(sess.Access).ListContracts(ctx)
	if err != nil {
		logger.WithError(err).Error("contract re-fetch failed")
		return
	}
	st.mu.Lock()
	st.contracts = clientContracts(contracts, sess)
	st.mu.Unlock()
}

// ---------------- Reviews ----------------

// SubmitReview resolves the reviewee by scanning the profile list for the
// contract's freelancer name. A lookup miss aborts with a visible error and
// no review write happens. One review per contract per session.
func (s *clientDashboardService) SubmitReview(ctx context.Context, sess *session.Session, draft *dto.ReviewDraft) (*models.Review, error) {
	if err := s.validate.Validate(draft); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	st := s.state(sess)
	st.mu.Lock()
	if st.reviewed[draft.ContractID] {
		st.mu.Unlock()
		return nil, apperrors.New(apperrors.CodeAlreadyExists, "reviews",
			"A review for this contract was already submitted", http.StatusConflict)
	}
	var contract *models.Contract
	for i := range st.contracts {
		if st.contracts[i].ID == draft.ContractID {
			c := st.contracts[i]
			contract = &c
			break
		}
	}
	proposals := st.proposals
	st.mu.Unlock()

	if contract == nil {
		return nil, apperrors.NewNotFoundError("contracts", "Contract not found in your workspace")
	}

	c := s.client.WithToken(sess.Access)
	profiles, err := c.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	revieweeID := 0
	for _, p := range profiles {
		if strings.EqualFold(strings.TrimSpace(p.UserName), strings.TrimSpace(contract.FreelancerName)) {
			revieweeID = p.ID
			break
		}
	}
	if revieweeID == 0 {
		return nil, apperrors.New(apperrors.CodeLookupFailed, "reviews",
			"Freelancer not found", http.StatusUnprocessableEntity).
			WithDetails(map[string]string{"freelancer_name": contract.FreelancerName})
	}

	comment := draft.Comment
	if comment == "" {
		comment = "Great work!"
	}

	review, err := c.CreateReview(ctx, models.ReviewWrite{
		Reviewer: sess.ProfileID,
		Reviewee: revieweeID,
		Project:  projectForContract(contract, proposals),
		Rating:   draft.Rating,
		Comment:  comment,
	})
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.reviewed[draft.ContractID] = true
	st.mu.Unlock()
	return review, nil
}

// projectForContract resolves the project id through the source proposal;
// the contract record itself only carries the proposal reference.
func projectForContract(contract *models.Contract, proposals []models.Proposal) int {
	for _, p := range proposals {
		if p.ID == contract.Proposal {
			return p.Project
		}
	}
	return contract.ID
}

// ---------------- Profile ----------------

// UpdateProfile merges the draft into the mirrored profile and sends a
// full-resource PUT, then re-fetches to reconcile with the server copy.
func (s *clientDashboardService) UpdateProfile(ctx context.Context, sess *session.Session, draft *dto.ProfileDraft) (*models.Profile, error) {
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
	update.IsClient = true
	update.IsFreelancer = false

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

// mergeProfileDraft overlays edited fields onto the current profile; nil
// fields keep their current value.
func mergeProfileDraft(current *models.Profile, draft *dto.ProfileDraft) models.ProfileUpdate {
	update := models.ProfileUpdate{
		UserName:     current.UserName,
		Email:        current.Email,
		Bio:          current.Bio,
		Portfolio:    current.Portfolio,
		HourlyRate:   current.HourlyRate,
		Availability: current.Availability,
		IsClient:     current.IsClient,
		IsFreelancer: current.IsFreelancer,
	}
	if draft.UserName != nil {
		update.UserName = *draft.UserName
	}
	if draft.Email != nil {
		update.Email = *draft.Email
	}
	if draft.Bio != nil {
		update.Bio = *draft.Bio
	}
	if draft.Portfolio != nil {
		update.Portfolio = *draft.Portfolio
	}
	if draft.HourlyRate != nil {
		update.HourlyRate = *draft.HourlyRate
	}
	if draft.Availability != nil {
		update.Availability = models.Availability(*draft.Availability)
	}
	if draft.SkillNames != nil {
		update.SkillNames = trimSkills(draft.SkillNames)
	}
	return update
}
