package services

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/unirate/unirate/internal/common"
	"github.com/unirate/unirate/internal/dbx"
	"github.com/unirate/unirate/internal/logging"
	"github.com/unirate/unirate/internal/server/auth"
	"github.com/unirate/unirate/internal/server/models"
	"github.com/unirate/unirate/internal/server/repositories/repomanager"
)

const (
	seedUniversityCount = 80
	seedProfessorCount  = 150
	seedStudentCount    = 99
	seedCommentCount    = 400

	// Every seeded student gets this password so the demo data is usable.
	seedStudentPassword = "password123"
)

// SeedResult reports what a seed or unseed run touched.
type SeedResult struct {
	Message      string `json:"message"`
	Universities int64  `json:"universities"`
	Professors   int64  `json:"professors"`
	Users        int64  `json:"users"`
	Comments     int64  `json:"comments"`
}

// SeedService fills the database with demo data and tears it down again.
// Seed refuses to run on a non-pristine database; Unseed removes everything
// except the bootstrap administrator.
type SeedService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	users    *UsersService
	logger   logging.Logger
	hashCost int
}

func NewSeedService(db *sql.DB, m repomanager.RepositoryManager, users *UsersService, hashCost int, logger logging.Logger) *SeedService {
	return &SeedService{
		db:       db,
		repos:    m,
		users:    users,
		logger:   logger.With("module", "seed_service"),
		hashCost: hashCost,
	}
}

// Seed populates universities, professors, student accounts, and comments.
// It runs in a single transaction, so a failure leaves the database as it
// was. A database that already holds data is left untouched.
func (s *SeedService) Seed(ctx context.Context) (*SeedResult, error) {
	pristine, err := s.isPristine(ctx)
	if err != nil {
		return nil, s.internal(ctx, err, "seed precheck")
	}
	if !pristine {
		return &SeedResult{
			Message: "Database already has seed data. Run unseed first to reset it.",
		}, nil
	}

	studentHash, err := auth.HashPassword(seedStudentPassword, s.hashCost)
	if err != nil {
		return nil, s.internal(ctx, err, "seed password hash")
	}

	// rand.Rand is not safe for concurrent use; each run gets its own source.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var result *SeedResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		result, txErr = s.populate(ctx, tx, studentHash, rng)
		return txErr
	})
	if err != nil {
		return nil, s.internal(ctx, err, "seed")
	}

	s.logger.Info(ctx, "seed completed",
		"universities", result.Universities,
		"professors", result.Professors,
		"users", result.Users,
		"comments", result.Comments)
	return result, nil
}

// Unseed deletes comments, professors, universities, and every account other
// than the bootstrap administrator, in one transaction.
func (s *SeedService) Unseed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{Message: "Seed data removed."}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		if result.Comments, txErr = s.repos.Comments(tx).DeleteAll(ctx); txErr != nil {
			return txErr
		}
		if result.Professors, txErr = s.repos.Professors(tx).DeleteAll(ctx); txErr != nil {
			return txErr
		}
		if result.Universities, txErr = s.repos.Universities(tx).DeleteAll(ctx); txErr != nil {
			return txErr
		}
		result.Users, txErr = s.repos.Users(tx).DeleteOthers(ctx, s.users.AdminEmail())
		return txErr
	})
	if err != nil {
		return nil, s.internal(ctx, err, "unseed")
	}

	s.logger.Info(ctx, "unseed completed",
		"universities", result.Universities,
		"professors", result.Professors,
		"users", result.Users,
		"comments", result.Comments)
	return result, nil
}

func (s *SeedService) isPristine(ctx context.Context) (bool, error) {
	if n, err := s.repos.Universities(s.db).Count(ctx); err != nil || n > 0 {
		return false, err
	}
	if n, err := s.repos.Professors(s.db).Count(ctx); err != nil || n > 0 {
		return false, err
	}
	if n, err := s.repos.Comments(s.db).Count(ctx); err != nil || n > 0 {
		return false, err
	}
	n, err := s.repos.Users(s.db).CountOthers(ctx, s.users.AdminEmail())
	if err != nil || n > 0 {
		return false, err
	}
	return true, nil
}

func (s *SeedService) populate(ctx context.Context, tx dbx.DBTX, studentHash string, rng *rand.Rand) (*SeedResult, error) {
	unis := make([]*models.University, 0, seedUniversityCount)
	uniRepo := s.repos.Universities(tx)
	for i := 0; i < seedUniversityCount; i++ {
		u, err := uniRepo.Create(ctx, &models.University{
			Name:     fmt.Sprintf("%s %s", pick(rng, universityPrefixes), pick(rng, universitySuffixes)),
			Location: pick(rng, cities),
		})
		if err != nil {
			return nil, err
		}
		unis = append(unis, u)
	}

	profs := make([]*models.Professor, 0, seedProfessorCount)
	profRepo := s.repos.Professors(tx)
	for i := 0; i < seedProfessorCount; i++ {
		p, err := profRepo.Create(ctx, &models.Professor{
			Name:       fmt.Sprintf("%s %s", pick(rng, firstNames), pick(rng, lastNames)),
			Department: pick(rng, departments),
			University: pick(rng, unis),
		})
		if err != nil {
			return nil, err
		}
		profs = append(profs, p)
	}

	students := make([]*models.User, 0, seedStudentCount)
	userRepo := s.repos.Users(tx)
	for i := 0; i < seedStudentCount; i++ {
		first, last := pick(rng, firstNames), pick(rng, lastNames)
		student := &models.User{
			// The counter keeps generated emails unique even when names repeat.
			Email:        fmt.Sprintf("%s.%s%d@student.example.com", first, last, i),
			FullName:     fmt.Sprintf("%s %s", first, last),
			PasswordHash: studentHash,
			IsActive:     true,
			Roles:        auth.DefaultRoles(),
		}
		student.Normalize()
		created, err := userRepo.Create(ctx, student)
		if err != nil {
			return nil, err
		}
		students = append(students, created)
	}

	commentRepo := s.repos.Comments(tx)
	used := make(map[string]struct{}, seedCommentCount)
	for i := 0; i < seedCommentCount; i++ {
		var prof *models.Professor
		var student *models.User
		// Re-roll until the (professor, student) pair is fresh; the pool is far
		// larger than the comment count so this terminates quickly.
		for {
			prof, student = pick(rng, profs), pick(rng, students)
			key := prof.ID + "|" + student.ID
			if _, ok := used[key]; !ok {
				used[key] = struct{}{}
				break
			}
		}
		if _, err := commentRepo.Create(ctx, &models.Comment{
			Content:   pick(rng, commentPhrases),
			Rating:    1 + rng.Intn(5),
			Professor: prof,
			Student:   student,
		}); err != nil {
			return nil, err
		}
	}

	return &SeedResult{
		Message:      "Seed executed.",
		Universities: seedUniversityCount,
		Professors:   seedProfessorCount,
		Users:        seedStudentCount,
		Comments:     seedCommentCount,
	}, nil
}

func (s *SeedService) internal(ctx context.Context, err error, op string) error {
	s.logger.Error(ctx, "unexpected storage failure", "op", op, "error", err.Error())
	return common.ErrInternal
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
