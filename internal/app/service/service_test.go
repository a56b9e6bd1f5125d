package service

import (
	"context"
	"testing"
	"time"

	"dsa_tracker/internal/app/notify"
	"dsa_tracker/internal/common"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/domain/model"
	"dsa_tracker/internal/domain/repository"
	"dsa_tracker/internal/domain/tracker"
	"dsa_tracker/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestRepos() repository.Repositories {
	return repository.NewMemoryRepositories(seed.Load(fixedNow))
}

func TestQuestionServiceToggle(t *testing.T) {
	rec := notify.NewRecorder(10)
	svc := NewQuestionService(newTestRepos().Questions, rec)
	svc.SetClock(fixedClock)
	ctx := context.Background()

	res, err := svc.Toggle(ctx, "2")
	require.NoError(t, err)
	require.True(t, res.Changed)
	assert.True(t, res.Question.Completed)

	notes := rec.All()
	require.Len(t, notes, 1)
	assert.Equal(t, "Question marked as completed", notes[0].Headline)
	assert.Equal(t, "Valid Parentheses", notes[0].Detail)
	assert.True(t, notes[0].CreatedAt.Equal(fixedNow))

	res, err = svc.Toggle(ctx, "2")
	require.NoError(t, err)
	assert.False(t, res.Question.Completed)
	assert.Equal(t, "Question marked as pending", rec.All()[0].Headline)

	res, err = svc.Toggle(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Nil(t, res.Question)
	assert.Len(t, rec.All(), 2, "unknown ids emit nothing")
}

func TestQuestionServiceFilter(t *testing.T) {
	svc := NewQuestionService(newTestRepos().Questions, nil)

	res, err := svc.Filter(context.Background(), tracker.QuestionFilter{
		Search:    "dp",
		Completed: tracker.Any[bool](),
	})
	require.NoError(t, err)
	assert.True(t, res.Empty)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, 4, res.CompletedCount)

	res, err = svc.Filter(context.Background(), tracker.QuestionFilter{
		Search:     "dynamic",
		Difficulty: tracker.Exactly(model.DifficultyMedium),
		Completed:  tracker.Exactly(false),
	})
	require.NoError(t, err)
	require.Equal(t, 2, res.Matched)
	assert.Equal(t, "4", res.Questions[0].ID)
	assert.Equal(t, "5", res.Questions[1].ID)
}

func TestContestServiceGrouped(t *testing.T) {
	rec := notify.NewRecorder(10)
	svc := NewContestService(newTestRepos().Contests, rec)
	svc.SetClock(fixedClock)
	ctx := context.Background()

	all, err := svc.Grouped(ctx, ContestViewAll)
	require.NoError(t, err)
	assert.Equal(t, 6, all.Total)
	assert.Equal(t, []string{"1", "2", "3", "5", "6"}, contestIDs(all.ThisWeek))
	assert.Equal(t, []string{"4"}, contestIDs(all.NextWeek))
	assert.Empty(t, all.Upcoming)

	reg, err := svc.Grouped(ctx, ContestViewRegistered)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "6"}, contestIDs(reg.ThisWeek))
	assert.Equal(t, []string{"4"}, contestIDs(reg.NextWeek))
	assert.Equal(t, 3, reg.Total)

	res, err := svc.ToggleRegistration(ctx, "2")
	require.NoError(t, err)
	require.True(t, res.Changed)
	assert.Equal(t, "Registered for contest", rec.All()[0].Headline)
	assert.Equal(t, "Biweekly Contest 124", rec.All()[0].Detail)

	reg, err = svc.Grouped(ctx, ContestViewRegistered)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "6"}, contestIDs(reg.ThisWeek))

	res, err = svc.ToggleRegistration(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestParseContestView(t *testing.T) {
	v, err := ParseContestView("")
	require.NoError(t, err)
	assert.Equal(t, ContestViewAll, v)

	v, err = ParseContestView("Registered")
	require.NoError(t, err)
	assert.Equal(t, ContestViewRegistered, v)

	_, err = ParseContestView("past")
	assert.ErrorIs(t, err, common.ErrBadRequest)
}

func TestSheetServiceCreate(t *testing.T) {
	rec := notify.NewRecorder(10)
	repos := newTestRepos()
	svc := NewSheetService(repos.Sheets, repos.Questions, rec)
	svc.SetClock(fixedClock)
	ctx := context.Background()

	_, err := svc.Create(ctx, tracker.NewSheetInput{Title: "   "})
	assert.ErrorIs(t, err, common.ErrValidation)
	require.Len(t, rec.All(), 1)
	assert.Equal(t, "Title Required", rec.All()[0].Headline)
	assert.Equal(t, model.SeverityDestructive, rec.All()[0].Severity)

	sheets, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sheets, 3, "rejected sheets are not stored")

	created, err := svc.Create(ctx, tracker.NewSheetInput{Title: "  Prep  ", Description: "mock rounds"})
	require.NoError(t, err)
	assert.Equal(t, "Prep", created.Title)
	assert.Equal(t, "prep", created.Slug)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Questions)
	assert.Equal(t, 0, created.Progress)
	assert.True(t, created.CreatedAt.Equal(fixedNow))
	assert.Equal(t, "Sheet Created", rec.All()[0].Headline)

	sheets, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, sheets, 4)
	assert.Equal(t, created.ID, sheets[0].ID)
	assert.Equal(t, model.SheetDetailRoute(created.ID), sheets[0].Route)
}

func TestSheetServiceGetAndMembership(t *testing.T) {
	repos := newTestRepos()
	svc := NewSheetService(repos.Sheets, repos.Questions, nil)
	svc.SetClock(fixedClock)
	ctx := context.Background()

	detail, err := svc.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 70, detail.Progress, "stored progress is kept")
	assert.Equal(t, 40, detail.DerivedProgress)
	assert.Len(t, detail.Members, 10)
	assert.Empty(t, detail.MissingIDs)

	bySlug, err := svc.Get(ctx, "graph-algorithms")
	require.NoError(t, err)
	assert.Equal(t, "2", bySlug.ID)
	assert.Equal(t, 0, bySlug.DerivedProgress)
	assert.Len(t, bySlug.MissingIDs, 5)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	view, err := svc.SetQuestions(ctx, "2", []string{"1", "2", "1", " ", "3", "99"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "99"}, view.Questions)
	assert.Equal(t, 50, view.Progress)
	assert.Equal(t, 50, view.DerivedProgress)
	assert.True(t, view.UpdatedAt.Equal(fixedNow))

	_, err = svc.SetQuestions(ctx, "nope", []string{"1"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSheetServiceDuplicateAndDelete(t *testing.T) {
	rec := notify.NewRecorder(10)
	repos := newTestRepos()
	svc := NewSheetService(repos.Sheets, repos.Questions, rec)
	svc.SetClock(fixedClock)
	ctx := context.Background()

	dup, err := svc.Duplicate(ctx, "3")
	require.NoError(t, err)
	require.True(t, dup.Changed)
	assert.Equal(t, "Dynamic Programming (Copy)", dup.Sheet.Title)
	assert.NotEqual(t, "3", dup.Sheet.ID)
	assert.Equal(t, 15, dup.Sheet.Progress)
	assert.Equal(t, `Created a copy of "Dynamic Programming"`, rec.All()[0].Detail)

	sheets, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, dup.Sheet.ID, sheets[0].ID)

	del, err := svc.Delete(ctx, "3")
	require.NoError(t, err)
	require.True(t, del.Changed)
	assert.Equal(t, `"Dynamic Programming" has been deleted`, rec.All()[0].Detail)

	before := len(rec.All())
	del, err = svc.Delete(ctx, "3")
	require.NoError(t, err)
	assert.False(t, del.Changed)

	dup, err = svc.Duplicate(ctx, "3")
	require.NoError(t, err)
	assert.False(t, dup.Changed)
	assert.Len(t, rec.All(), before)
}

func TestOverviewService(t *testing.T) {
	svc := NewOverviewService(newTestRepos(), 300, 3)
	svc.SetClock(fixedClock)

	ov, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 53, ov.Metrics.Overall)
	assert.Equal(t, 46, ov.Metrics.ByDifficulty[model.DifficultyEasy])
	assert.Equal(t, 40, ov.Metrics.ByDifficulty[model.DifficultyMedium])
	assert.Equal(t, 15, ov.Metrics.ByDifficulty[model.DifficultyHard])
	assert.Len(t, ov.RecentQuestions, 3)
	assert.Len(t, ov.UpcomingContests, 5)
	assert.Equal(t, "/dashboard", ov.Navigation.Overview)
}

func TestAuthService(t *testing.T) {
	hash, err := security.HashPassword("hunter2")
	require.NoError(t, err)
	issuer := security.NewTokenIssuer([]byte("test-secret"), time.Hour)
	ctx := context.Background()

	disabled := NewAuthService("me", "", issuer)
	_, err = disabled.Login(ctx, LoginRequest{Password: "hunter2"})
	assert.ErrorIs(t, err, common.ErrServiceUnavailable)

	svc := NewAuthService("me", hash, issuer)
	_, err = svc.Login(ctx, LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = svc.Login(ctx, LoginRequest{})
	assert.ErrorIs(t, err, common.ErrBadRequest)

	resp, err := svc.Login(ctx, LoginRequest{Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "me", resp.Owner)

	token, err := issuer.Auth.Decode(resp.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(ctx)
	require.NoError(t, err)
	role, err := security.GetUserRoleFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, security.RoleOwner, role)
}

func TestNotificationServiceDefaultsLimit(t *testing.T) {
	rec := notify.NewRecorder(100)
	for i := 0; i < 30; i++ {
		rec.Notify(context.Background(), model.Notification{Headline: "n"})
	}
	items, err := NewNotificationService(rec).Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, defaultFeedLimit)
}

func contestIDs(cs []model.Contest) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.ID)
	}
	return ids
}
