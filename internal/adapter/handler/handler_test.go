package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/giinwatch/giin-watch/internal/domain/entities"
	"github.com/giinwatch/giin-watch/internal/domain/repositories"
	"github.com/giinwatch/giin-watch/internal/usecase/aggregate"
	"github.com/giinwatch/giin-watch/internal/usecase/whip"
	"github.com/giinwatch/giin-watch/pkg/validator"
)

type fakeMemberRepo struct {
	members []*entities.Member
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id string) (*entities.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, entities.ErrMemberNotFound
}

func (f *fakeMemberRepo) List(_ context.Context, _ repositories.MemberFilters) ([]*entities.Member, error) {
	return f.members, nil
}

func (f *fakeMemberRepo) ListActive(_ context.Context) ([]*entities.Member, error) {
	var active []*entities.Member
	for _, m := range f.members {
		if m.IsActive {
			active = append(active, m)
		}
	}
	return active, nil
}

func (f *fakeMemberRepo) ListByParty(_ context.Context, party string) ([]*entities.Member, error) {
	var matched []*entities.Member
	for _, m := range f.members {
		if m.IsActive && m.Party == party {
			matched = append(matched, m)
		}
	}
	return matched, nil
}

func (f *fakeMemberRepo) UpdateCounters(_ context.Context, _ string, _, _, _ int) error {
	return nil
}

type fakeVoteRepo struct {
	votes []*entities.Vote
}

func (f *fakeVoteRepo) ListByMember(_ context.Context, memberID string) ([]*entities.Vote, error) {
	var matched []*entities.Vote
	for _, v := range f.votes {
		if v.MemberID == memberID {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (f *fakeVoteRepo) ListByMembers(_ context.Context, memberIDs []string) ([]*entities.Vote, error) {
	allowed := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		allowed[id] = struct{}{}
	}
	var matched []*entities.Vote
	for _, v := range f.votes {
		if _, ok := allowed[v.MemberID]; ok {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (f *fakeVoteRepo) ListByBill(_ context.Context, billID string) ([]*entities.Vote, error) {
	var matched []*entities.Vote
	for _, v := range f.votes {
		if v.BillID == billID {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

type fakeSpeechRepo struct {
	speeches []*entities.Speech
}

func (f *fakeSpeechRepo) ListByMember(_ context.Context, memberID string, _ repositories.SpeechListOptions) ([]*entities.Speech, error) {
	var matched []*entities.Speech
	for _, sp := range f.speeches {
		if sp.MemberID == memberID {
			matched = append(matched, sp)
		}
	}
	return matched, nil
}

func (f *fakeSpeechRepo) ListPage(_ context.Context, offset, limit int) ([]*entities.Speech, error) {
	if offset >= len(f.speeches) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.speeches) {
		end = len(f.speeches)
	}
	return f.speeches[offset:end], nil
}

type fakeQuestionRepo struct {
	questions []*entities.Question
}

func (f *fakeQuestionRepo) ListByMember(_ context.Context, memberID string) ([]*entities.Question, error) {
	var matched []*entities.Question
	for _, q := range f.questions {
		if q.MemberID == memberID {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (f *fakeQuestionRepo) ListPage(_ context.Context, offset, limit int) ([]*entities.Question, error) {
	if offset >= len(f.questions) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.questions) {
		end = len(f.questions)
	}
	return f.questions[offset:end], nil
}

type fakeCommitteeRepo struct {
	memberships []*entities.CommitteeMembership
}

func (f *fakeCommitteeRepo) ListByMember(_ context.Context, memberID string) ([]*entities.CommitteeMembership, error) {
	var matched []*entities.CommitteeMembership
	for _, cm := range f.memberships {
		if cm.MemberID == memberID {
			matched = append(matched, cm)
		}
	}
	return matched, nil
}

func (f *fakeCommitteeRepo) ListPage(_ context.Context, offset, limit int) ([]*entities.CommitteeMembership, error) {
	if offset >= len(f.memberships) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.memberships) {
		end = len(f.memberships)
	}
	return f.memberships[offset:end], nil
}

type fakeScoreRepo struct {
	scores []*entities.ActivityScore
}

func (f *fakeScoreRepo) FindByMember(_ context.Context, memberID string) (*entities.ActivityScore, error) {
	for _, s := range f.scores {
		if s.MemberID == memberID {
			return s, nil
		}
	}
	return nil, entities.ErrScoreNotFound
}

func (f *fakeScoreRepo) ListAll(_ context.Context) ([]*entities.ActivityScore, error) {
	return f.scores, nil
}

func (f *fakeScoreRepo) Upsert(_ context.Context, score *entities.ActivityScore) error {
	f.scores = append(f.scores, score)
	return nil
}

type fakeBillRepo struct {
	bills []*entities.Bill
}

func (f *fakeBillRepo) FindByID(_ context.Context, id string) (*entities.Bill, error) {
	for _, b := range f.bills {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, entities.ErrBillNotFound
}

func (f *fakeBillRepo) ListByMember(_ context.Context, memberID string) ([]*entities.Bill, error) {
	var matched []*entities.Bill
	for _, b := range f.bills {
		if b.SubmittedBy(memberID) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (f *fakeBillRepo) ListPage(_ context.Context, offset, limit int) ([]*entities.Bill, error) {
	if offset >= len(f.bills) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.bills) {
		end = len(f.bills)
	}
	return f.bills[offset:end], nil
}

type fakeWhipRepo struct {
	records []*entities.PartyWhipRecord
}

func (f *fakeWhipRepo) FindByBillAndParty(_ context.Context, billID, party string) (*entities.PartyWhipRecord, error) {
	for _, r := range f.records {
		if r.BillID == billID && r.Party == party {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeWhipRepo) ListByBills(_ context.Context, billIDs []string) ([]*entities.PartyWhipRecord, error) {
	allowed := make(map[string]struct{}, len(billIDs))
	for _, id := range billIDs {
		allowed[id] = struct{}{}
	}
	var matched []*entities.PartyWhipRecord
	for _, r := range f.records {
		if _, ok := allowed[r.BillID]; ok {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeWhipRepo) Upsert(_ context.Context, record *entities.PartyWhipRecord) error {
	f.records = append(f.records, record)
	return nil
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func TestWhipDeviations_DefaultHidesUnknownConfidence(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	stanceYes := entities.VoteYes

	memberRepo := &fakeMemberRepo{members: []*entities.Member{
		{ID: "m1", Name: "山田太郎", Party: "自由民主党", House: entities.HouseCouncillors, IsActive: true},
	}}
	voteRepo := &fakeVoteRepo{votes: []*entities.Vote{
		{ID: "v1", MemberID: "m1", BillID: "b1", Choice: entities.VoteNo, VoteDate: date, House: entities.HouseCouncillors},
		{ID: "v2", MemberID: "m1", BillID: "b2", Choice: entities.VoteNo, VoteDate: date, House: entities.HouseCouncillors},
	}}
	whipRepo := &fakeWhipRepo{records: []*entities.PartyWhipRecord{
		{BillID: "b1", Party: "自由民主党", OfficialStance: &stanceYes, StanceConfidence: entities.ConfidenceInferred},
		{BillID: "b2", Party: "自由民主党", OfficialStance: &stanceYes, StanceConfidence: entities.ConfidenceUnknown},
	}}

	service := whip.NewService(memberRepo, voteRepo, &fakeBillRepo{}, whipRepo, zap.NewNop())
	h := NewWhip(service, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/party-whip/deviations", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Deviations(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected 1 deviation got %d", len(body.Data))
	}
	if body.Data[0]["bill_id"] != "b1" {
		t.Errorf("unexpected bill %v", body.Data[0]["bill_id"])
	}
}

func TestWhipDeviations_IncludeUnknownOverride(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	stanceYes := entities.VoteYes

	memberRepo := &fakeMemberRepo{members: []*entities.Member{
		{ID: "m1", Name: "山田太郎", Party: "自由民主党", House: entities.HouseCouncillors, IsActive: true},
	}}
	voteRepo := &fakeVoteRepo{votes: []*entities.Vote{
		{ID: "v1", MemberID: "m1", BillID: "b1", Choice: entities.VoteNo, VoteDate: date, House: entities.HouseCouncillors},
	}}
	whipRepo := &fakeWhipRepo{records: []*entities.PartyWhipRecord{
		{BillID: "b1", Party: "自由民主党", OfficialStance: &stanceYes, StanceConfidence: entities.ConfidenceUnknown},
	}}

	service := whip.NewService(memberRepo, voteRepo, &fakeBillRepo{}, whipRepo, zap.NewNop())
	h := NewWhip(service, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/party-whip/deviations?includeUnknown=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Deviations(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected 1 deviation got %d", len(body.Data))
	}
	if body.Data[0]["stance_confidence"] != "unknown" {
		t.Errorf("unexpected confidence %v", body.Data[0]["stance_confidence"])
	}
}

func TestWhipBackfill_WritesInferredStance(t *testing.T) {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	memberRepo := &fakeMemberRepo{members: []*entities.Member{
		{ID: "m1", Name: "山田太郎", Party: "自由民主党", House: entities.HouseCouncillors, IsActive: true},
		{ID: "m2", Name: "佐藤花子", Party: "自由民主党", House: entities.HouseCouncillors, IsActive: true},
		{ID: "m3", Name: "鈴木一郎", Party: "自由民主党", House: entities.HouseCouncillors, IsActive: true},
	}}
	voteRepo := &fakeVoteRepo{votes: []*entities.Vote{
		{ID: "v1", MemberID: "m1", BillID: "b1", Choice: entities.VoteYes, VoteDate: date, House: entities.HouseCouncillors},
		{ID: "v2", MemberID: "m2", BillID: "b1", Choice: entities.VoteYes, VoteDate: date, House: entities.HouseCouncillors},
		{ID: "v3", MemberID: "m3", BillID: "b1", Choice: entities.VoteYes, VoteDate: date, House: entities.HouseCouncillors},
	}}
	billRepo := &fakeBillRepo{bills: []*entities.Bill{
		{ID: "b1", Title: "環境基本法改正案", House: entities.HouseCouncillors},
	}}
	whipRepo := &fakeWhipRepo{}

	service := whip.NewService(memberRepo, voteRepo, billRepo, whipRepo, zap.NewNop())
	h := NewWhip(service, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/whip/backfill?billId=b1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Backfill(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if len(whipRepo.records) != 1 {
		t.Fatalf("expected 1 record written got %d", len(whipRepo.records))
	}
	r := whipRepo.records[0]
	if r.StanceConfidence != entities.ConfidenceInferred {
		t.Errorf("unexpected confidence %s", r.StanceConfidence)
	}
	if r.OfficialStance == nil || *r.OfficialStance != entities.VoteYes {
		t.Errorf("unexpected stance %v", r.OfficialStance)
	}
	if r.BillName != "環境基本法改正案" {
		t.Errorf("unexpected bill name %s", r.BillName)
	}
}

func TestWhipBackfill_UnknownBill(t *testing.T) {
	service := whip.NewService(&fakeMemberRepo{}, &fakeVoteRepo{}, &fakeBillRepo{}, &fakeWhipRepo{}, zap.NewNop())
	h := NewWhip(service, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/whip/backfill?billId=missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Backfill(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestRankings_InvalidMetricRejected(t *testing.T) {
	memberRepo := &fakeMemberRepo{}
	h := NewMember(memberRepo, nil, nil, nil, nil, nil, nil, nil, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings?metric=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Rankings(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestRankings_ZeroExcludedByDefault(t *testing.T) {
	memberRepo := &fakeMemberRepo{members: []*entities.Member{
		{ID: "m1", Name: "山田太郎", NameReading: "やまだたろう", Party: "p", IsActive: true, SessionCount: 4},
		{ID: "m2", Name: "佐藤花子", NameReading: "さとうはなこ", Party: "p", IsActive: true, SessionCount: 0},
	}}
	h := NewMember(memberRepo, nil, nil, nil, nil, nil, nil, nil, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/rankings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Rankings(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Data) != 1 {
		t.Fatalf("expected 1 ranked member got %d", len(body.Data))
	}
	if body.Data[0]["id"] != "m1" {
		t.Errorf("unexpected member %v", body.Data[0]["id"])
	}
}

func TestMemberDetail_IncludesLiveCounters(t *testing.T) {
	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	memberRepo := &fakeMemberRepo{members: []*entities.Member{
		{ID: "m1", Name: "山田太郎", Party: "立憲民主党", House: entities.HouseCouncillors, IsActive: true},
	}}
	speechRepo := &fakeSpeechRepo{speeches: []*entities.Speech{
		{ID: "s1", MemberID: "m1", SpokenAt: &date, Committee: "予算委員会", House: entities.HouseCouncillors},
		{ID: "s2", MemberID: "m1", SpokenAt: &date, Committee: "予算委員会", House: entities.HouseCouncillors},
		{ID: "s3", MemberID: "m1", SpokenAt: &date, Committee: "予算委員会", House: entities.HouseCouncillors, IsProcedural: true},
	}}
	questionRepo := &fakeQuestionRepo{questions: []*entities.Question{
		{ID: "q1", MemberID: "m1", Session: 217, Title: "年金制度に関する質問主意書", House: entities.HouseCouncillors},
	}}
	committeeRepo := &fakeCommitteeRepo{memberships: []*entities.CommitteeMembership{
		{ID: 1, MemberID: "m1", Committee: "予算委員会", Role: entities.RoleChair, House: entities.HouseCouncillors},
		{ID: 2, MemberID: "m1", Committee: "環境委員会", Role: entities.RoleDirector, House: entities.HouseCouncillors},
	}}
	voteRepo := &fakeVoteRepo{}
	billRepo := &fakeBillRepo{}
	scoreRepo := &fakeScoreRepo{}

	aggregator := aggregate.NewService(memberRepo, speechRepo, questionRepo, committeeRepo, scoreRepo, zap.NewNop())
	h := NewMember(memberRepo, speechRepo, questionRepo, voteRepo, billRepo, committeeRepo, scoreRepo, aggregator, zap.NewNop())
	e := newEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/members/m1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("m1")

	if err := h.Detail(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Member struct {
				ID         string `json:"id"`
				PartyColor string `json:"party_color"`
			} `json:"member"`
			Counters struct {
				SpeechCount         int `json:"speech_count"`
				SessionCount        int `json:"session_count"`
				QuestionCount       int `json:"question_count"`
				CommitteeChairCount int `json:"committee_chair_count"`
				CommitteeExecCount  int `json:"committee_exec_count"`
			} `json:"counters"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Data.Member.PartyColor != "#2980b9" {
		t.Errorf("unexpected party color %s", body.Data.Member.PartyColor)
	}
	got := body.Data.Counters
	if got.SpeechCount != 2 {
		t.Errorf("expected 2 speeches got %d", got.SpeechCount)
	}
	if got.SessionCount != 1 {
		t.Errorf("expected 1 session got %d", got.SessionCount)
	}
	if got.QuestionCount != 1 {
		t.Errorf("expected 1 question got %d", got.QuestionCount)
	}
	if got.CommitteeChairCount != 1 {
		t.Errorf("expected 1 chair role got %d", got.CommitteeChairCount)
	}
	if got.CommitteeExecCount != 1 {
		t.Errorf("expected 1 exec role got %d", got.CommitteeExecCount)
	}
}
