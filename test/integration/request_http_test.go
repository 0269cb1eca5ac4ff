//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/d-fine/dataland-sourcing-service/internal/config"
	"github.com/d-fine/dataland-sourcing-service/internal/domain"
	"github.com/d-fine/dataland-sourcing-service/internal/handler"
	infradb "github.com/d-fine/dataland-sourcing-service/internal/infrastructure/database"
	"github.com/d-fine/dataland-sourcing-service/internal/router"
	"github.com/d-fine/dataland-sourcing-service/internal/usecase"
	dbpkg "github.com/d-fine/dataland-sourcing-service/pkg/database"
)

const testJWTSecret = "integration-test-secret-0123456789abcdef"

// Full HTTP workflow test against a real MySQL instance.
// Run with: make test-integration
// Requires: MySQL (localhost:3306)
func TestRequestWorkflowHTTP(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host: "127.0.0.1",
			Port: 18080,
		},
		Database: config.DatabaseConfig{
			Driver:          "mysql",
			Host:            getEnvOrDefault("DB_HOST", "127.0.0.1"),
			Port:            3306,
			User:            getEnvOrDefault("DB_USER", "sourcing_user"),
			Password:        getEnvOrDefault("DB_PASSWORD", "sourcing_pass"),
			Database:        getEnvOrDefault("DB_NAME", "sourcing_db"),
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	dbClient, dbPool, err := dbpkg.NewClient(cfg.Database, logger)
	if err != nil {
		t.Skipf("database not reachable, skipping: %v", err)
	}
	defer dbClient.Close()

	requestRepo := infradb.NewRequestRepository(dbClient)
	dataSourcingRepo := infradb.NewDataSourcingRepository(dbClient)
	revisionStore := infradb.NewRevisionStore(dbClient)

	grouper := usecase.NewDimensionGrouper(dataSourcingRepo, logger)
	requestUC := usecase.NewRequestUsecase(requestRepo, grouper, allowAllDimensions{}, logger)
	sourcingUC := usecase.NewDataSourcingUsecase(dataSourcingRepo, requestRepo, revisionStore, noRoles{}, logger)
	reconciler := usecase.NewHistoryReconciler(1000)
	historyUC := usecase.NewHistoryUsecase(requestRepo, revisionStore, reconciler, logger)
	rebalanceUC := usecase.NewRebalanceUsecase(requestRepo, nobodyPremium{}, 100, logger)

	auth := handler.NewAuth(testJWTSecret, logger)
	requestHandler := handler.NewRequestHandler(requestUC, historyUC, logger)
	sourcingHandler := handler.NewDataSourcingHandler(sourcingUC, logger)
	adminHandler := handler.NewAdminHandler(rebalanceUC, logger)
	healthHandler := handler.NewHealthHandler(dbPool)

	h := server.New(
		server.WithHostPorts(fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)),
		server.WithTransport(netpoll.NewTransporter),
	)
	router.Setup(h, auth, requestHandler, sourcingHandler, adminHandler, healthHandler)

	go func() {
		if err := h.Run(); err != nil {
			logger.Error("server failed", "error", err)
		}
	}()
	time.Sleep(2 * time.Second)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Shutdown(ctx)
	}()

	baseURL := fmt.Sprintf("http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	memberID := uuid.New().String()
	memberToken := mintToken(t, memberID, nil)
	adminToken := mintToken(t, uuid.New().String(), []string{"admin"})

	// Unique dimension per run keeps reruns independent
	reportingPeriod := fmt.Sprintf("it-%d", time.Now().UnixNano())

	var requestID string
	t.Run("create request", func(t *testing.T) {
		body := map[string]string{
			"companyId":       "company-integration",
			"dataType":        "sfdr",
			"reportingPeriod": reportingPeriod,
		}
		data := doJSON(t, baseURL+"/api/v1/requests", "POST", memberToken, body, http.StatusCreated)

		requestID = data["id"].(string)
		if got := data["state"]; got != "Open" {
			t.Errorf("expected state Open, got %v", got)
		}
		if got := data["priority"]; got != "Low" {
			t.Errorf("expected priority Low, got %v", got)
		}
	})

	t.Run("duplicate create is rejected", func(t *testing.T) {
		body := map[string]string{
			"companyId":       "company-integration",
			"dataType":        "sfdr",
			"reportingPeriod": reportingPeriod,
		}
		doJSON(t, baseURL+"/api/v1/requests", "POST", memberToken, body, http.StatusConflict)
	})

	var dataSourcingID string
	t.Run("admin moves request into processing", func(t *testing.T) {
		body := map[string]string{"state": "Processing"}
		data := doJSON(t, baseURL+"/api/v1/requests/"+requestID+"/state", "PATCH", adminToken, body, http.StatusOK)

		if got := data["state"]; got != "Processing" {
			t.Fatalf("expected state Processing, got %v", got)
		}
		id, ok := data["dataSourcingId"].(string)
		if !ok || id == "" {
			t.Fatal("expected a data sourcing id after grouping")
		}
		dataSourcingID = id
	})

	t.Run("sourcing lifecycle cascades onto the request", func(t *testing.T) {
		for _, state := range []string{"DocumentSourcing", "DataExtraction", "Done"} {
			body := map[string]string{"state": state}
			doJSON(t, baseURL+"/api/v1/data-sourcings/"+dataSourcingID+"/state", "PATCH", adminToken, body, http.StatusOK)
		}

		data := doJSON(t, baseURL+"/api/v1/requests/"+requestID, "GET", memberToken, nil, http.StatusOK)
		if got := data["state"]; got != "Processed" {
			t.Errorf("expected request Processed after Done, got %v", got)
		}
	})

	t.Run("history shows the displayed state timeline", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/api/v1/requests/"+requestID+"/history", nil)
		req.Header.Set("Authorization", "Bearer "+memberToken)

		resp, err := (&http.Client{Timeout: 30 * time.Second}).Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		var envelope struct {
			Data []struct {
				Timestamp      int64  `json:"timestamp"`
				DisplayedState string `json:"displayedState"`
			} `json:"data"`
		}
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &envelope); err != nil {
			t.Fatalf("failed to unmarshal history: %v", err)
		}

		if len(envelope.Data) == 0 {
			t.Fatal("expected at least one history entry")
		}
		if first := envelope.Data[0].DisplayedState; first != "Open" {
			t.Errorf("expected timeline to start Open, got %s", first)
		}
		if last := envelope.Data[len(envelope.Data)-1].DisplayedState; last != "Processed" {
			t.Errorf("expected timeline to end Processed, got %s", last)
		}
		for i := 1; i < len(envelope.Data); i++ {
			if envelope.Data[i].Timestamp < envelope.Data[i-1].Timestamp {
				t.Error("history entries are not sorted ascending")
			}
		}
	})

	t.Run("member cannot trigger rebalance", func(t *testing.T) {
		doJSON(t, baseURL+"/api/v1/admin/rebalance", "POST", memberToken, nil, http.StatusForbidden)
	})

	t.Run("admin triggers rebalance", func(t *testing.T) {
		doJSON(t, baseURL+"/api/v1/admin/rebalance", "POST", adminToken, nil, http.StatusOK)
	})
}

// doJSON sends one request and returns the data object of the envelope.
func doJSON(t *testing.T, url, method, token string, body interface{}, wantStatus int) map[string]interface{} {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := (&http.Client{Timeout: 30 * time.Second}).Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		t.Fatalf("expected status %d, got %d, body: %s", wantStatus, resp.StatusCode, raw)
	}

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			t.Fatalf("failed to unmarshal response: %v, body: %s", err, raw)
		}
	}
	return envelope.Data
}

// mintToken signs a platform-style token for the test identity.
func mintToken(t *testing.T, userID string, roles []string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// allowAllDimensions accepts every company/data-type pairing.
type allowAllDimensions struct{}

func (allowAllDimensions) IsValidDimension(ctx context.Context, companyID, dataType string) (bool, error) {
	return true, nil
}

// noRoles reports no company roles for anyone.
type noRoles struct{}

func (noRoles) GetRolesOf(ctx context.Context, userID, companyID string) ([]domain.Role, error) {
	return nil, nil
}

// nobodyPremium reports every user as standard tier.
type nobodyPremium struct{}

func (nobodyPremium) IsPremium(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
