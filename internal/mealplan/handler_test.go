package mealplan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStructureEndpoint(t *testing.T) {
	r := newTestRouter(&Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/structure", gin.H{"mealCount": 3, "snackCount": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got Structure
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalItems != 5 || len(got.Slots) != 5 {
		t.Fatalf("structure = %+v", got)
	}
}

func TestStructureEndpointRejectsNegativeCounts(t *testing.T) {
	r := newTestRouter(&Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}})
	w := doJSON(t, r, http.MethodPost, "/api/v1/structure", gin.H{"mealCount": -1, "snackCount": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	assertErrorCode(t, w, ErrorCodeValidation)
}

func TestGeneratePlanEndpoint(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{responses: []string{fiveMealResponse()}}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plans", gin.H{
		"targets":    testTargets,
		"mealCount":  3,
		"snackCount": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got struct {
		ID    string `json:"id"`
		Meals []struct {
			Meal       Meal `json:"meal"`
			MatchScore *int `json:"matchScore"`
		} `json:"meals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" || len(got.Meals) != 5 {
		t.Fatalf("payload = %s", w.Body.String())
	}
	if got.Meals[0].MatchScore == nil {
		t.Fatal("matchScore missing with full targets set")
	}
	if *got.Meals[0].MatchScore != 100 {
		t.Fatalf("matchScore = %d, want 100 for an exact slot match", *got.Meals[0].MatchScore)
	}
}

func TestGeneratePlanEndpointLLMFailure(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{err: errors.New("boom")}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plans", gin.H{
		"targets": testTargets, "mealCount": 3, "snackCount": 2,
	})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
	assertErrorCode(t, w, ErrorCodeLLM)
}

func TestGeneratePlanEndpointContractRejection(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{responses: []string{`{"meals": []}`}}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/v1/plans", gin.H{
		"targets": testTargets, "mealCount": 3, "snackCount": 2,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	assertErrorCode(t, w, ErrorCodeAIContract)
}

func TestGetPlanEndpointNotFound(t *testing.T) {
	r := newTestRouter(&Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}})
	w := doJSON(t, r, http.MethodGet, "/api/v1/plans/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	assertErrorCode(t, w, ErrorCodeNotFound)
}

func TestReplaceEndpoint(t *testing.T) {
	llm := &fakeLLM{responses: []string{fiveMealResponse()}}
	svc := &Service{Repo: NewMemoryRepo(), LLM: llm}
	r := newTestRouter(svc)

	plan, err := svc.Generate(context.Background(), validGenerateInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	llm.responses = append(llm.responses,
		fmt.Sprintf(`{"meals": [%s]}`, mealJSON("Swap", "snack", 240, 18, 24, 8)))

	w := doJSON(t, r, http.MethodPost, "/api/v1/plans/"+plan.ID+"/meals/1/replace", gin.H{"rebalance": false})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var got struct {
		Rebalanced bool `json:"rebalanced"`
		Meals      []struct {
			Meal Meal `json:"meal"`
		} `json:"meals"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Rebalanced {
		t.Fatal("rebalanced flag set without rebalance")
	}
	if got.Meals[1].Meal.Name != "Swap" {
		t.Fatalf("slot 1 = %q", got.Meals[1].Meal.Name)
	}
}

func TestReplaceEndpointNonIntegerIndex(t *testing.T) {
	r := newTestRouter(&Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}})
	w := doJSON(t, r, http.MethodPost, "/api/v1/plans/some-id/meals/abc/replace", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	assertErrorCode(t, w, ErrorCodeValidation)
}

func assertErrorCode(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != want {
		t.Fatalf("error code = %q, want %q", body.Error.Code, want)
	}
}
