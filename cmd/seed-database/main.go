package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strconv"

	"github.com/architect/learnpath/internal/common/database"
	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/services"
	"github.com/architect/learnpath/pkg/config"
	"github.com/architect/learnpath/pkg/logger"
	"gorm.io/gorm"
)

var (
	numUsers = flag.Int("users", 10, "Number of demo users to generate")
	attempts = flag.Int("attempts", 2, "Quiz attempts per user")
	seed     = flag.Int64("seed", 42, "RNG seed for reproducible data")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Starting data seeding...")

	rng := rand.New(rand.NewSource(*seed))
	engineCfg := cfg.Recommendation
	engineCfg.Seed = *seed
	engine := services.NewRecommendationEngine(db, engineCfg, logger.L())
	svc := services.NewAssessmentService(db, engine, logger.L())

	userIDs, err := seedUsers(db, *numUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Created %d users", len(userIDs))

	total := 0
	for _, userID := range userIDs {
		for i := 0; i < *attempts; i++ {
			if err := seedAttempt(svc, rng, userID); err != nil {
				log.Fatalf("Failed to seed attempt for user %d: %v", userID, err)
			}
			total++
		}
	}
	log.Printf("Created %d quiz attempts with recommendations", total)
	log.Println("Seeding complete")
}

func seedUsers(db *gorm.DB, n int) ([]uint, error) {
	ids := make([]uint, 0, n)
	for i := 1; i <= n; i++ {
		user := models.User{
			Email: fmt.Sprintf("demo%d@learnpath.dev", i),
			Name:  fmt.Sprintf("Demo User %d", i),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// seedAttempt submits a randomized diagnostic through the real
// scoring and recommendation path. Roughly 60% of answers are
// correct and 10% of shown questions are skipped.
func seedAttempt(svc *services.AssessmentService, rng *rand.Rand, userID uint) error {
	answers := make(map[string]int)
	var skipped, shown []uint

	for _, q := range catalog.Questions() {
		shown = append(shown, q.ID)
		roll := rng.Float64()
		switch {
		case roll < 0.1:
			skipped = append(skipped, q.ID)
		case roll < 0.7:
			answers[strconv.FormatUint(uint64(q.ID), 10)] = q.CorrectIndex
		default:
			wrong := (q.CorrectIndex + 1 + rng.Intn(len(q.Options)-1)) % len(q.Options)
			answers[strconv.FormatUint(uint64(q.ID), 10)] = wrong
		}
	}

	_, err := svc.SubmitAssessment(userID, models.SubmitAssessmentRequest{
		Answers:  answers,
		Skipped:  skipped,
		Shown:    shown,
		QuizType: models.QuizTypeDiagnostic,
	})
	return err
}
