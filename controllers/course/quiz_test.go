package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	controllers "lms/controllers/course"
	"lms/database"
	"lms/models"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &courseModels.Quiz{}, &courseModels.Result{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()

	// Stub auth: every request acts as user 1
	stubAuth := func(c *fiber.Ctx) error {
		c.Locals("userId", uint(1))
		return c.Next()
	}

	quizGroup := app.Group("/quiz")
	quizGroup.Get("/my-scores", stubAuth, courseValidator.MyScores(), controllers.MyScores)

	return app
}

type envelope struct {
	Status  bool                       `json:"status"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func getScores(t *testing.T, app *fiber.App, query string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/quiz/my-scores"+query, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
	return resp.StatusCode, env
}

func TestMyScoresReportsLatestAttemptPerQuiz(t *testing.T) {
	app := newTestApp(t)
	db := database.Database.Db

	user := models.User{Name: "Learner", Email: "learner@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	base := time.Now().Add(-time.Hour)
	attempts := []courseModels.Result{
		{UserID: user.ID, QuizID: 1, Score: 40, Passed: false},
		{UserID: user.ID, QuizID: 1, Score: 85, Passed: true},
		{UserID: user.ID, QuizID: 2, Score: 55, Passed: false},
	}
	for i := range attempts {
		attempts[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := db.Create(&attempts[i]).Error; err != nil {
			t.Fatalf("create result: %v", err)
		}
	}

	status, env := getScores(t, app, "?quiz_ids=1,2,3")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if !env.Status {
		t.Fatalf("expected success envelope, got message %q", env.Message)
	}

	type score struct {
		Score  int  `json:"score"`
		Passed bool `json:"passed"`
	}
	want := map[string]score{
		"1": {Score: 85, Passed: true},
		"2": {Score: 55, Passed: false},
		"3": {Score: 0, Passed: false},
	}
	if len(env.Data) != len(want) {
		t.Fatalf("got %d entries, want %d", len(env.Data), len(want))
	}
	for id, expected := range want {
		raw, ok := env.Data[id]
		if !ok {
			t.Fatalf("missing entry for quiz %s", id)
		}
		var got score
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("decode entry %s: %v", id, err)
		}
		if got != expected {
			t.Errorf("quiz %s = %+v, want %+v", id, got, expected)
		}
	}
}

func TestMyScoresEmptyQueryReturnsEmptyMap(t *testing.T) {
	app := newTestApp(t)
	db := database.Database.Db

	user := models.User{Name: "Learner", Email: "learner@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	status, env := getScores(t, app, "")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(env.Data) != 0 {
		t.Fatalf("got %d entries, want 0", len(env.Data))
	}
}

func TestMyScoresRejectsNonNumericIDs(t *testing.T) {
	app := newTestApp(t)
	db := database.Database.Db

	user := models.User{Name: "Learner", Email: "learner@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	status, env := getScores(t, app, "?quiz_ids=1,abc")
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", status, http.StatusUnprocessableEntity)
	}
	if env.Status {
		t.Fatal("expected failure envelope")
	}
}
