package testutils

import (
	"fmt"
	"testing"

	"resource-planner-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Base suite types
// ------------------------------

type BaseTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

type ServiceTestSuite struct {
	*BaseTestSuite
	Mocks map[string]interface{}
}

type RepositoryTestSuite struct {
	*BaseTestSuite
	Repositories map[string]interface{}
}

// ------------------------------
// Public helpers
// ------------------------------

// SetupTestSuite opens a fresh in-memory store for one suite. Every suite gets
// its own database; nothing is shared between test processes or suites.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	// Unique name so parallel suites in one process never share a store
	dsn := fmt.Sprintf("file:test_%s?mode=memory&cache=shared", uuid.New().String())
	db, err := database.Initialize(dsn, nil)
	if err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return &BaseTestSuite{DB: db}
}

// RunWithTestSuite is a convenience wrapper to run a function with a ready suite.
func RunWithTestSuite(t *testing.T, testFunc func(*BaseTestSuite)) {
	s := SetupTestSuite(t)
	defer s.TeardownTestSuite()
	testFunc(s)
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite closes the suite's store.
func (s *BaseTestSuite) TeardownTestSuite() {
	s.CleanTestDB()
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// CleanTestDB empties known tables if they exist. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"team_members",
		"planning_components",
		"budget_rules",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `";`)
		}
	}
}
