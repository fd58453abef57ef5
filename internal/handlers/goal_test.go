package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jdmartel/finance-tracker/internal/dto"
	"github.com/jdmartel/finance-tracker/internal/models"
)

type stubGoalService struct {
	lastUID string
	lastID  string
	lastReq any
	goals   []dto.GoalWithProgress
	goal    *models.Goal
	result  *dto.GoalWithProgress
	err     error
}

func (s *stubGoalService) List(ctx context.Context, uid string) ([]dto.GoalWithProgress, error) {
	s.lastUID = uid
	return s.goals, s.err
}

func (s *stubGoalService) Create(ctx context.Context, uid string, req dto.CreateGoalRequest) (*models.Goal, error) {
	s.lastUID = uid
	s.lastReq = req
	return s.goal, s.err
}

func (s *stubGoalService) Update(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	s.lastUID = uid
	s.lastID = goalID
	s.lastReq = req
	return s.goal, s.err
}

func (s *stubGoalService) Delete(ctx context.Context, uid, goalID string) error {
	s.lastUID = uid
	s.lastID = goalID
	return s.err
}

func (s *stubGoalService) AddContribution(ctx context.Context, uid, goalID string, req dto.AddContributionRequest) (*dto.GoalWithProgress, error) {
	s.lastUID = uid
	s.lastID = goalID
	s.lastReq = req
	return s.result, s.err
}

func TestAddContributionRoute(t *testing.T) {
	svc := &stubGoalService{
		result: &dto.GoalWithProgress{
			Goal:     models.Goal{GoalID: "g1", CurrentAmount: 550},
			Progress: dto.GoalProgress{Progress: 55},
		},
	}
	resp := &stubResponseHandler{}
	h := NewGoalHandlers(&Deps{ResponseHandler: resp, GoalSvc: svc})
	router := h.GoalRoutes()

	req := authedRequest(http.MethodPost, "/g1/contributions", `{"amount":150,"note":"bonus"}`)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if svc.lastID != "g1" {
		t.Fatalf("goal id not extracted from path: %q", svc.lastID)
	}
	contrib, ok := svc.lastReq.(dto.AddContributionRequest)
	if !ok || contrib.Amount != 150 || contrib.Note != "bonus" {
		t.Fatalf("request not decoded: %#v", svc.lastReq)
	}
	result, ok := resp.writeSuccessData.(*dto.GoalWithProgress)
	if !ok || result.Goal.CurrentAmount != 550 {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

func TestCreateGoalInvalidJSON(t *testing.T) {
	svc := &stubGoalService{}
	resp := &stubResponseHandler{}
	h := NewGoalHandlers(&Deps{ResponseHandler: resp, GoalSvc: svc})

	req := authedRequest(http.MethodPost, "/goals", "not-json")
	rr := httptest.NewRecorder()
	h.CreateGoal(rr, req)

	if svc.lastUID != "" {
		t.Fatalf("service should not be called on invalid JSON")
	}
	if !resp.handleErrorCalled {
		t.Fatalf("HandleError should be called")
	}
}

func TestListGoals(t *testing.T) {
	svc := &stubGoalService{
		goals: []dto.GoalWithProgress{{Goal: models.Goal{GoalID: "g1"}}},
	}
	resp := &stubResponseHandler{}
	h := NewGoalHandlers(&Deps{ResponseHandler: resp, GoalSvc: svc})

	req := authedRequest(http.MethodGet, "/goals", "")
	rr := httptest.NewRecorder()
	h.ListGoals(rr, req)

	if svc.lastUID != "uid-123" {
		t.Fatalf("uid: got %q", svc.lastUID)
	}
	goals, ok := resp.writeSuccessData.([]dto.GoalWithProgress)
	if !ok || len(goals) != 1 {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}
